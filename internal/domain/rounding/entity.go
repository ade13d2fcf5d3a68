package rounding

import "time"

// RuleType selects which punch side a rule rounds.
type RuleType string

const (
	RuleClockIn  RuleType = "clock_in"
	RuleClockOut RuleType = "clock_out"
	RuleBoth     RuleType = "both"
)

var RuleTypeValues = []string{
	string(RuleClockIn),
	string(RuleClockOut),
	string(RuleBoth),
}

// Direction is the interval-rounding policy. favor_employer always
// reduces paid time relative to the anchor; favor_employee is its mirror.
type Direction string

const (
	DirectionNearest       Direction = "nearest"
	DirectionUp            Direction = "up"
	DirectionDown          Direction = "down"
	DirectionFavorEmployer Direction = "favor_employer"
	DirectionFavorEmployee Direction = "favor_employee"
)

var DirectionValues = []string{
	string(DirectionNearest),
	string(DirectionUp),
	string(DirectionDown),
	string(DirectionFavorEmployer),
	string(DirectionFavorEmployee),
}

// GraceDirection says on which side of the anchor the grace window sits.
type GraceDirection string

const (
	GraceBefore GraceDirection = "before"
	GraceAfter  GraceDirection = "after"
	GraceBoth   GraceDirection = "both"
)

var GraceDirectionValues = []string{
	string(GraceBefore),
	string(GraceAfter),
	string(GraceBoth),
}

// Rule is a company-owned time-rounding policy. A nil ShiftID makes it
// part of the company default set; shift-scoped rules strictly shadow
// the defaults, they are never merged.
type Rule struct {
	ID              string
	CompanyID       string
	ShiftID         *string
	RuleType        RuleType
	IntervalMinutes int
	Direction       Direction
	GraceMinutes    int
	GraceDirection  GraceDirection
	ApplyToOvertime bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// CoversClockIn reports whether the rule rounds the clock-in side.
func (r Rule) CoversClockIn() bool {
	return r.RuleType == RuleClockIn || r.RuleType == RuleBoth
}

// CoversClockOut reports whether the rule rounds the clock-out side.
func (r Rule) CoversClockOut() bool {
	return r.RuleType == RuleClockOut || r.RuleType == RuleBoth
}
