package rounding

import (
	"github.com/cmlabs-hris/timeclock-backend-go/internal/pkg/validator"
)

// ========================================
// ROUNDING RULE DTOs
// ========================================

type CreateRuleRequest struct {
	ShiftID         *string `json:"shift_id,omitempty"`
	RuleType        string  `json:"rule_type"`
	IntervalMinutes int     `json:"rounding_interval_minutes"`
	Direction       string  `json:"rounding_direction"`
	GraceMinutes    int     `json:"grace_period_minutes"`
	GraceDirection  string  `json:"grace_period_direction"`
	ApplyToOvertime bool    `json:"apply_to_overtime"`
}

func (r *CreateRuleRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsInSlice(r.RuleType, RuleTypeValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "rule_type",
			Message: "rule_type must be one of: clock_in, clock_out, both",
		})
	}

	if r.IntervalMinutes < 0 || r.IntervalMinutes > 60 {
		errs = append(errs, validator.ValidationError{
			Field:   "rounding_interval_minutes",
			Message: "rounding_interval_minutes must be between 0 and 60",
		})
	}

	if !validator.IsInSlice(r.Direction, DirectionValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "rounding_direction",
			Message: "rounding_direction must be one of: nearest, up, down, favor_employer, favor_employee",
		})
	}

	if r.GraceMinutes < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "grace_period_minutes",
			Message: "grace_period_minutes must not be negative",
		})
	}

	if !validator.IsInSlice(r.GraceDirection, GraceDirectionValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "grace_period_direction",
			Message: "grace_period_direction must be one of: before, after, both",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type RuleResponse struct {
	ID              string  `json:"id"`
	ShiftID         *string `json:"shift_id,omitempty"`
	RuleType        string  `json:"rule_type"`
	IntervalMinutes int     `json:"rounding_interval_minutes"`
	Direction       string  `json:"rounding_direction"`
	GraceMinutes    int     `json:"grace_period_minutes"`
	GraceDirection  string  `json:"grace_period_direction"`
	ApplyToOvertime bool    `json:"apply_to_overtime"`
	CreatedAt       string  `json:"created_at"`
}
