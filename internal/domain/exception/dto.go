package exception

import (
	"github.com/cmlabs-hris/timeclock-backend-go/internal/pkg/validator"
)

type Filter struct {
	EmployeeID *string
	Type       *string
	Severity   *string
	StartDate  *string
	EndDate    *string
	Page       int
	Limit      int
}

func (f *Filter) Validate() error {
	var errs validator.ValidationErrors

	if f.Type != nil && *f.Type != "" {
		if !validator.IsInSlice(*f.Type, TypeValues) {
			errs = append(errs, validator.ValidationError{
				Field:   "type",
				Message: "unknown exception type",
			})
		}
	}

	if f.Severity != nil && *f.Severity != "" {
		if !validator.IsInSlice(*f.Severity, SeverityValues) {
			errs = append(errs, validator.ValidationError{
				Field:   "severity",
				Message: "severity must be one of: info, warning, critical",
			})
		}
	}

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

type RecordResponse struct {
	ID              string  `json:"id"`
	EmployeeID      string  `json:"employee_id"`
	TimeEntryID     string  `json:"time_entry_id"`
	ShiftID         *string `json:"shift_id,omitempty"`
	ExceptionDate   string  `json:"exception_date"`
	Type            string  `json:"exception_type"`
	Severity        string  `json:"severity"`
	ScheduledTime   *string `json:"scheduled_time,omitempty"`
	ActualTime      *string `json:"actual_time,omitempty"`
	VarianceMinutes int     `json:"variance_minutes"`
	CreatedAt       string  `json:"created_at"`
}

type ListRecordResponse struct {
	TotalCount int64            `json:"total_count"`
	Page       int              `json:"page"`
	Limit      int              `json:"limit"`
	Records    []RecordResponse `json:"records"`
}
