package exception

import "time"

// Type is the attendance exception classification.
type Type string

const (
	TypeLateArrival     Type = "late_arrival"
	TypeEarlyDeparture  Type = "early_departure"
	TypeMissingBreak    Type = "missing_break"
	TypeLongBreak       Type = "long_break"
	TypeShortBreak      Type = "short_break"
	TypeOvertime        Type = "overtime"
	TypeUnscheduledWork Type = "unscheduled_work"
	TypeMissedPunch     Type = "missed_punch"
)

var TypeValues = []string{
	string(TypeLateArrival),
	string(TypeEarlyDeparture),
	string(TypeMissingBreak),
	string(TypeLongBreak),
	string(TypeShortBreak),
	string(TypeOvertime),
	string(TypeUnscheduledWork),
	string(TypeMissedPunch),
}

type Severity string

const (
	SeverityInfo     Severity = "info"
	SeverityWarning  Severity = "warning"
	SeverityCritical Severity = "critical"
)

var SeverityValues = []string{
	string(SeverityInfo),
	string(SeverityWarning),
	string(SeverityCritical),
}

// Record is one detected anomaly tied to one punch. Records are created
// fresh on every reconciliation run; a punch may raise several of
// different types in the same pass.
type Record struct {
	ID              string
	CompanyID       string
	EmployeeID      string
	TimeEntryID     string
	ShiftID         *string
	ExceptionDate   time.Time
	Type            Type
	Severity        Severity
	ScheduledTime   *time.Time
	ActualTime      *time.Time
	VarianceMinutes int
	CreatedAt       time.Time
}
