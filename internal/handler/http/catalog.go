package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/timeclock-backend-go/internal/domain/rounding"
	"github.com/cmlabs-hris/timeclock-backend-go/internal/domain/shift"
	"github.com/cmlabs-hris/timeclock-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type CatalogHandler interface {
	CreateShift(w http.ResponseWriter, r *http.Request)
	GetShift(w http.ResponseWriter, r *http.Request)
	ListShifts(w http.ResponseWriter, r *http.Request)
	DeactivateShift(w http.ResponseWriter, r *http.Request)

	CreateAssignment(w http.ResponseWriter, r *http.Request)
	ListAssignments(w http.ResponseWriter, r *http.Request)
	DeleteAssignment(w http.ResponseWriter, r *http.Request)

	CreateRoundingRule(w http.ResponseWriter, r *http.Request)
	ListRoundingRules(w http.ResponseWriter, r *http.Request)
	DeleteRoundingRule(w http.ResponseWriter, r *http.Request)
}

type CatalogHandlerImpl struct {
	catalogService shift.CatalogService
}

func NewCatalogHandler(catalogService shift.CatalogService) CatalogHandler {
	return &CatalogHandlerImpl{catalogService: catalogService}
}

// CreateShift implements CatalogHandler.
func (h *CatalogHandlerImpl) CreateShift(w http.ResponseWriter, r *http.Request) {
	var req shift.CreateShiftRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateShift decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.catalogService.CreateShift(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Shift definition created successfully", result)
}

// GetShift implements CatalogHandler.
func (h *CatalogHandlerImpl) GetShift(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Shift ID is required", nil)
		return
	}

	result, err := h.catalogService.GetShift(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ListShifts implements CatalogHandler.
func (h *CatalogHandlerImpl) ListShifts(w http.ResponseWriter, r *http.Request) {
	result, err := h.catalogService.ListShifts(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// DeactivateShift implements CatalogHandler.
func (h *CatalogHandlerImpl) DeactivateShift(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Shift ID is required", nil)
		return
	}

	if err := h.catalogService.DeactivateShift(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Shift definition deactivated successfully", nil)
}

// CreateAssignment implements CatalogHandler.
func (h *CatalogHandlerImpl) CreateAssignment(w http.ResponseWriter, r *http.Request) {
	var req shift.CreateAssignmentRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateAssignment decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.catalogService.CreateAssignment(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Schedule assignment created successfully", result)
}

// ListAssignments implements CatalogHandler.
func (h *CatalogHandlerImpl) ListAssignments(w http.ResponseWriter, r *http.Request) {
	filter := shift.AssignmentFilter{
		EmployeeID: optionalQuery(r, "employee_id"),
		StartDate:  optionalQuery(r, "start_date"),
		EndDate:    optionalQuery(r, "end_date"),
		Page:       intQuery(r, "page", 1),
		Limit:      intQuery(r, "limit", 20),
	}

	result, err := h.catalogService.ListAssignments(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, result.Assignments, &response.Meta{
		Page:       result.Page,
		Limit:      result.Limit,
		TotalItems: result.TotalCount,
	})
}

// DeleteAssignment implements CatalogHandler.
func (h *CatalogHandlerImpl) DeleteAssignment(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Assignment ID is required", nil)
		return
	}

	if err := h.catalogService.DeleteAssignment(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Schedule assignment deleted successfully", nil)
}

// CreateRoundingRule implements CatalogHandler.
func (h *CatalogHandlerImpl) CreateRoundingRule(w http.ResponseWriter, r *http.Request) {
	var req rounding.CreateRuleRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateRoundingRule decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.catalogService.CreateRoundingRule(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Rounding rule created successfully", result)
}

// ListRoundingRules implements CatalogHandler.
func (h *CatalogHandlerImpl) ListRoundingRules(w http.ResponseWriter, r *http.Request) {
	result, err := h.catalogService.ListRoundingRules(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// DeleteRoundingRule implements CatalogHandler.
func (h *CatalogHandlerImpl) DeleteRoundingRule(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Rounding rule ID is required", nil)
		return
	}

	if err := h.catalogService.DeleteRoundingRule(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Rounding rule deleted successfully", nil)
}
