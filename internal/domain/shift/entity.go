package shift

import (
	"time"

	"github.com/shopspring/decimal"
)

// Definition is a reusable shift template owned by a company. Start and
// end are stored as "HH:MM" clock strings and projected onto a concrete
// calendar date at match time; an end at or before the start means the
// shift crosses midnight.
type Definition struct {
	ID                   string
	CompanyID            string
	Name                 string
	StartTime            string // "HH:MM"
	EndTime              string // "HH:MM"
	ApplicableDays       []int  // 0=Sunday ... 6=Saturday
	StandardHours        decimal.Decimal
	BreakDurationMinutes int
	IsActive             bool
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// Assignment binds one employee to one shift definition on one specific
// calendar date. It takes precedence over generic weekday matching.
type Assignment struct {
	ID         string
	CompanyID  string
	EmployeeID string
	ShiftID    string
	Date       time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
