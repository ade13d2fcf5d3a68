package response

import (
	"errors"
	"net/http"

	"github.com/cmlabs-hris/timeclock-backend-go/internal/domain/punch"
	"github.com/cmlabs-hris/timeclock-backend-go/internal/domain/rounding"
	"github.com/cmlabs-hris/timeclock-backend-go/internal/domain/shift"
	"github.com/cmlabs-hris/timeclock-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Punch domain errors
	case errors.Is(err, punch.ErrPunchNotFound):
		NotFound(w, "Time entry not found")
	case errors.Is(err, punch.ErrAlreadyReconciled):
		Conflict(w, "Time entry already reconciled")
	case errors.Is(err, punch.ErrMissingClockIn):
		BadRequest(w, "Time entry has no clock-in", nil)

	// Shift catalog domain errors
	case errors.Is(err, shift.ErrShiftNotFound):
		NotFound(w, "Shift definition not found")
	case errors.Is(err, shift.ErrAssignmentNotFound):
		NotFound(w, "Schedule assignment not found")
	case errors.Is(err, shift.ErrAssignmentExists):
		Conflict(w, "Schedule assignment already exists for this employee and date")

	// Rounding rule domain errors
	case errors.Is(err, rounding.ErrRuleNotFound):
		NotFound(w, "Rounding rule not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
