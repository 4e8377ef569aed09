package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/workforcehq/workforce-backend-go/internal/domain/settings"
	"github.com/workforcehq/workforce-backend-go/internal/handler/http/response"
)

type SettingsHandler interface {
	GetGeofence(w http.ResponseWriter, r *http.Request)
	UpdateGeofence(w http.ResponseWriter, r *http.Request)
	GetPolicy(w http.ResponseWriter, r *http.Request)
}

type settingsHandlerImpl struct {
	settingsService settings.SettingsService
}

func NewSettingsHandler(settingsService settings.SettingsService) SettingsHandler {
	return &settingsHandlerImpl{
		settingsService: settingsService,
	}
}

// GetGeofence implements SettingsHandler.
func (h *settingsHandlerImpl) GetGeofence(w http.ResponseWriter, r *http.Request) {
	result, err := h.settingsService.GetGeofence(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	// Unconfigured geofence returns null data.
	response.Success(w, result)
}

// UpdateGeofence implements SettingsHandler.
func (h *settingsHandlerImpl) UpdateGeofence(w http.ResponseWriter, r *http.Request) {
	var req settings.UpdateGeofenceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.settingsService.UpdateGeofence(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Geofence updated", result)
}

// GetPolicy implements SettingsHandler.
func (h *settingsHandlerImpl) GetPolicy(w http.ResponseWriter, r *http.Request) {
	result, err := h.settingsService.GetPolicy(r.Context(), chi.URLParam(r, "key"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
