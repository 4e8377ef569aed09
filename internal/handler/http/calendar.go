package http

import (
	"net/http"

	"github.com/workforcehq/workforce-backend-go/internal/domain/calendar"
	"github.com/workforcehq/workforce-backend-go/internal/handler/http/response"
)

type CalendarHandler interface {
	ListHolidays(w http.ResponseWriter, r *http.Request)
}

type calendarHandlerImpl struct {
	holidayService calendar.HolidayService
}

func NewCalendarHandler(holidayService calendar.HolidayService) CalendarHandler {
	return &calendarHandlerImpl{
		holidayService: holidayService,
	}
}

// ListHolidays implements CalendarHandler.
func (h *calendarHandlerImpl) ListHolidays(w http.ResponseWriter, r *http.Request) {
	result, err := h.holidayService.ListBetween(r.Context(), r.URL.Query().Get("start_date"), r.URL.Query().Get("end_date"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
