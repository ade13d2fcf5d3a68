package punch

import (
	"time"

	"github.com/shopspring/decimal"
)

// MatchQuality classifies how closely a punch's raw clock-in aligns with
// its matched shift's scheduled start.
type MatchQuality string

const (
	MatchExact     MatchQuality = "exact"
	MatchClose     MatchQuality = "close"
	MatchUnmatched MatchQuality = "unmatched"
)

var MatchQualityValues = []string{
	string(MatchExact),
	string(MatchClose),
	string(MatchUnmatched),
}

// Punch is one clock-in/clock-out pair for one employee on one calendar
// day. Raw fields come from the time-clock capture subsystem; the
// reconciliation engine fills in everything from ShiftID onwards.
type Punch struct {
	ID                   string
	EmployeeID           string
	CompanyID            string
	ClockIn              time.Time
	ClockOut             *time.Time
	BreakDurationMinutes int

	// Reconciliation results. MatchedAt doubles as the idempotency
	// marker: while it is NULL the record is eligible for processing.
	ShiftID              *string
	MatchedAt            *time.Time
	MatchQuality         MatchQuality
	ScheduledStart       *time.Time
	ScheduledEnd         *time.Time
	RoundedClockIn       *time.Time
	RoundedClockOut      *time.Time
	RoundingRuleApplied  *string
	BreakMinutesExpected *int
	RegularHours         decimal.Decimal
	OvertimeHours        decimal.Decimal
	ExceptionsDetected   []string

	CreatedAt time.Time
	UpdatedAt time.Time
}
