package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/workforcehq/workforce-backend-go/internal/domain/document"
	"github.com/workforcehq/workforce-backend-go/internal/handler/http/response"
)

type DocumentHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
}

type documentHandlerImpl struct {
	documentService document.DocumentService
}

func NewDocumentHandler(documentService document.DocumentService) DocumentHandler {
	return &documentHandlerImpl{
		documentService: documentService,
	}
}

// List implements DocumentHandler.
func (h *documentHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.documentService.List(r.Context(), queryInt(r, "page", 1), queryInt(r, "limit", 20))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, result.Documents, &response.Meta{
		Page:       result.Page,
		Limit:      result.Limit,
		TotalItems: result.TotalCount,
	})
}

// Get implements DocumentHandler.
func (h *documentHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	result, err := h.documentService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
