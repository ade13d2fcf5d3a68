package punch

import (
	"time"

	"github.com/cmlabs-hris/timeclock-backend-go/internal/pkg/validator"
)

// ========================================
// PUNCH DTOs
// ========================================

type CreatePunchRequest struct {
	EmployeeID           string  `json:"employee_id"`
	ClockIn              string  `json:"clock_in"`
	ClockOut             *string `json:"clock_out,omitempty"`
	BreakDurationMinutes int     `json:"break_duration_minutes"`
}

func (r *CreatePunchRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if _, ok := validator.IsValidDateTime(r.ClockIn); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "clock_in",
			Message: "clock_in must be a valid ISO8601 timestamp",
		})
	}

	if r.ClockOut != nil {
		if _, ok := validator.IsValidDateTime(*r.ClockOut); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "clock_out",
				Message: "clock_out must be a valid ISO8601 timestamp",
			})
		}
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

// ReconcileRequest triggers one reconciliation run. Explicit entry ids
// take precedence over the lookback window; ProcessAll lifts the window.
type ReconcileRequest struct {
	EntryIDs   []string `json:"entry_ids,omitempty"`
	ProcessAll bool     `json:"process_all,omitempty"`
}

func (r *ReconcileRequest) Validate() error {
	var errs validator.ValidationErrors

	for _, id := range r.EntryIDs {
		if validator.IsEmpty(id) {
			errs = append(errs, validator.ValidationError{
				Field:   "entry_ids",
				Message: "entry_ids must not contain empty ids",
			})
			break
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type PunchFilter struct {
	EmployeeID   *string
	StartDate    *string
	EndDate      *string
	MatchQuality *string
	Page         int
	Limit        int
	SortBy       string
	SortOrder    string
}

func (f *PunchFilter) Validate() error {
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

	if f.MatchQuality != nil && *f.MatchQuality != "" {
		if !validator.IsInSlice(*f.MatchQuality, MatchQualityValues) {
			errs = append(errs, validator.ValidationError{
				Field:   "match_quality",
				Message: "match_quality must be one of: exact, close, unmatched",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type PunchResponse struct {
	ID                   string   `json:"id"`
	EmployeeID           string   `json:"employee_id"`
	ClockIn              string   `json:"clock_in"`
	ClockOut             *string  `json:"clock_out,omitempty"`
	BreakDurationMinutes int      `json:"break_duration_minutes"`
	ShiftID              *string  `json:"shift_id,omitempty"`
	MatchedAt            *string  `json:"matched_at,omitempty"`
	MatchQuality         string   `json:"match_quality,omitempty"`
	ScheduledStart       *string  `json:"scheduled_start,omitempty"`
	ScheduledEnd         *string  `json:"scheduled_end,omitempty"`
	RoundedClockIn       *string  `json:"rounded_clock_in,omitempty"`
	RoundedClockOut      *string  `json:"rounded_clock_out,omitempty"`
	RoundingRuleApplied  *string  `json:"rounding_rule_applied,omitempty"`
	BreakMinutesExpected *int     `json:"break_minutes_expected,omitempty"`
	RegularHours         string   `json:"regular_hours"`
	OvertimeHours        string   `json:"overtime_hours"`
	ExceptionsDetected   []string `json:"exceptions_detected,omitempty"`
	CreatedAt            string   `json:"created_at"`
	UpdatedAt            string   `json:"updated_at"`
}

type ListPunchResponse struct {
	TotalCount int64           `json:"total_count"`
	Page       int             `json:"page"`
	Limit      int             `json:"limit"`
	TotalPages int             `json:"total_pages"`
	Punches    []PunchResponse `json:"punches"`
}

// RunSummary is the run-level report consumed by operational tooling.
type RunSummary struct {
	RunID            string         `json:"run_id"`
	CompanyID        string         `json:"company_id"`
	StartedAt        time.Time      `json:"started_at"`
	Processed        int            `json:"processed"`
	Matched          int            `json:"matched"`
	Exact            int            `json:"exact"`
	Close            int            `json:"close"`
	Unmatched        int            `json:"unmatched"`
	Skipped          int            `json:"skipped"`
	Failed           int            `json:"failed"`
	ExceptionsByType map[string]int `json:"exceptions_by_type"`
}
