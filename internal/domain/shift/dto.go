package shift

import (
	"github.com/cmlabs-hris/timeclock-backend-go/internal/pkg/validator"
)

// ========================================
// SHIFT CATALOG DTOs
// ========================================

type CreateShiftRequest struct {
	Name                 string  `json:"name"`
	StartTime            string  `json:"start_time"`
	EndTime              string  `json:"end_time"`
	ApplicableDays       []int   `json:"applicable_days"`
	StandardHours        float64 `json:"standard_hours"`
	BreakDurationMinutes int     `json:"break_duration_minutes"`
}

func (r *CreateShiftRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if _, _, ok := validator.ParseClock(r.StartTime); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "start_time",
			Message: "start_time must be in HH:MM format",
		})
	}

	if _, _, ok := validator.ParseClock(r.EndTime); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "end_time",
			Message: "end_time must be in HH:MM format",
		})
	}

	if len(r.ApplicableDays) == 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "applicable_days",
			Message: "applicable_days is required",
		})
	}
	for _, day := range r.ApplicableDays {
		if day < 0 || day > 6 {
			errs = append(errs, validator.ValidationError{
				Field:   "applicable_days",
				Message: "applicable_days must contain values between 0 (Sunday) and 6 (Saturday)",
			})
			break
		}
	}

	if r.StandardHours <= 0 || r.StandardHours > 24 {
		errs = append(errs, validator.ValidationError{
			Field:   "standard_hours",
			Message: "standard_hours must be between 0 and 24",
		})
	}

	if r.BreakDurationMinutes < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "break_duration_minutes",
			Message: "break_duration_minutes must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ShiftResponse struct {
	ID                   string  `json:"id"`
	Name                 string  `json:"name"`
	StartTime            string  `json:"start_time"`
	EndTime              string  `json:"end_time"`
	ApplicableDays       []int   `json:"applicable_days"`
	StandardHours        float64 `json:"standard_hours"`
	BreakDurationMinutes int     `json:"break_duration_minutes"`
	IsActive             bool    `json:"is_active"`
	CreatedAt            string  `json:"created_at"`
	UpdatedAt            string  `json:"updated_at"`
}

type CreateAssignmentRequest struct {
	EmployeeID string `json:"employee_id"`
	ShiftID    string `json:"shift_id"`
	Date       string `json:"date"`
}

func (r *CreateAssignmentRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if validator.IsEmpty(r.ShiftID) {
		errs = append(errs, validator.ValidationError{
			Field:   "shift_id",
			Message: "shift_id is required",
		})
	}

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type AssignmentResponse struct {
	ID         string `json:"id"`
	EmployeeID string `json:"employee_id"`
	ShiftID    string `json:"shift_id"`
	Date       string `json:"date"`
	CreatedAt  string `json:"created_at"`
}

type AssignmentFilter struct {
	EmployeeID *string
	StartDate  *string
	EndDate    *string
	Page       int
	Limit      int
}

func (f *AssignmentFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.StartDate != nil && *f.StartDate != "" {
		if _, ok := validator.IsValidDate(*f.StartDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "start_date",
				Message: "start_date must be in YYYY-MM-DD format",
			})
		}
	}

	if f.EndDate != nil && *f.EndDate != "" {
		if _, ok := validator.IsValidDate(*f.EndDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date must be in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ListAssignmentResponse struct {
	TotalCount  int64                `json:"total_count"`
	Page        int                  `json:"page"`
	Limit       int                  `json:"limit"`
	Assignments []AssignmentResponse `json:"assignments"`
}
