package http

import (
	"encoding/json"
	"net/http"

	"github.com/workforcehq/workforce-backend-go/internal/domain/notice"
	"github.com/workforcehq/workforce-backend-go/internal/handler/http/response"
)

type NoticeHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
}

type noticeHandlerImpl struct {
	noticeService notice.NoticeService
}

func NewNoticeHandler(noticeService notice.NoticeService) NoticeHandler {
	return &noticeHandlerImpl{
		noticeService: noticeService,
	}
}

// List implements NoticeHandler.
func (h *noticeHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.noticeService.List(r.Context(), queryInt(r, "page", 1), queryInt(r, "limit", 20))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, result.Notices, &response.Meta{
		Page:       result.Page,
		Limit:      result.Limit,
		TotalItems: result.TotalCount,
	})
}

// Create implements NoticeHandler.
func (h *noticeHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req notice.CreateNoticeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.noticeService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Notice published", result)
}
