package http

import (
	"net/http"

	"github.com/cmlabs-hris/timeclock-backend-go/internal/domain/exception"
	"github.com/cmlabs-hris/timeclock-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type ExceptionHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	ListByTimeEntry(w http.ResponseWriter, r *http.Request)
}

type ExceptionHandlerImpl struct {
	exceptionService exception.ExceptionService
}

func NewExceptionHandler(exceptionService exception.ExceptionService) ExceptionHandler {
	return &ExceptionHandlerImpl{exceptionService: exceptionService}
}

// List implements ExceptionHandler.
func (h *ExceptionHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := exception.Filter{
		EmployeeID: optionalQuery(r, "employee_id"),
		Type:       optionalQuery(r, "type"),
		Severity:   optionalQuery(r, "severity"),
		StartDate:  optionalQuery(r, "start_date"),
		EndDate:    optionalQuery(r, "end_date"),
		Page:       intQuery(r, "page", 1),
		Limit:      intQuery(r, "limit", 20),
	}

	result, err := h.exceptionService.ListExceptions(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, result.Records, &response.Meta{
		Page:       result.Page,
		Limit:      result.Limit,
		TotalItems: result.TotalCount,
	})
}

// ListByTimeEntry implements ExceptionHandler.
func (h *ExceptionHandlerImpl) ListByTimeEntry(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Time entry ID is required", nil)
		return
	}

	result, err := h.exceptionService.ListByTimeEntry(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
