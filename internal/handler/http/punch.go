package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/cmlabs-hris/timeclock-backend-go/internal/domain/punch"
	"github.com/cmlabs-hris/timeclock-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type PunchHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Reconcile(w http.ResponseWriter, r *http.Request)
}

type PunchHandlerImpl struct {
	reconciliationService punch.ReconciliationService
}

func NewPunchHandler(reconciliationService punch.ReconciliationService) PunchHandler {
	return &PunchHandlerImpl{reconciliationService: reconciliationService}
}

// Create implements PunchHandler.
func (h *PunchHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req punch.CreatePunchRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreatePunch decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.reconciliationService.CreatePunch(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Time entry created successfully", result)
}

// Get implements PunchHandler.
func (h *PunchHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Time entry ID is required", nil)
		return
	}

	result, err := h.reconciliationService.GetPunch(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// List implements PunchHandler.
func (h *PunchHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := punch.PunchFilter{
		EmployeeID:   optionalQuery(r, "employee_id"),
		StartDate:    optionalQuery(r, "start_date"),
		EndDate:      optionalQuery(r, "end_date"),
		MatchQuality: optionalQuery(r, "match_quality"),
		Page:         intQuery(r, "page", 1),
		Limit:        intQuery(r, "limit", 20),
		SortBy:       r.URL.Query().Get("sort_by"),
		SortOrder:    r.URL.Query().Get("sort_order"),
	}

	result, err := h.reconciliationService.ListPunches(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, result.Punches, &response.Meta{
		Page:       result.Page,
		Limit:      result.Limit,
		TotalItems: result.TotalCount,
		TotalPages: result.TotalPages,
	})
}

// Reconcile implements PunchHandler.
func (h *PunchHandlerImpl) Reconcile(w http.ResponseWriter, r *http.Request) {
	var req punch.ReconcileRequest

	// An empty body means "reconcile everything pending in the window".
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			slog.Error("Reconcile decode error", "error", err)
			response.BadRequest(w, "Invalid request format", nil)
			return
		}
	}

	summary, err := h.reconciliationService.Reconcile(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Reconciliation run completed", summary)
}

func optionalQuery(r *http.Request, key string) *string {
	value := r.URL.Query().Get(key)
	if value == "" {
		return nil
	}
	return &value
}

func intQuery(r *http.Request, key string, fallback int) int {
	value := r.URL.Query().Get(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil || parsed < 1 {
		return fallback
	}
	return parsed
}
