package reconcile

import (
	"time"

	"github.com/cmlabs-hris/timeclock-backend-go/internal/domain/exception"
	"github.com/cmlabs-hris/timeclock-backend-go/internal/domain/punch"
	"github.com/shopspring/decimal"
)

const (
	lateGraceMinutes          = 5
	lateCriticalMinutes       = 15
	earlyLeaveGraceMinutes    = 5
	earlyLeaveCriticalMinutes = 30
	breakToleranceMinutes     = 10
	missedPunchElapsedHours   = 12
)

var overtimeWarningHours = decimal.NewFromInt(2)

// detectExceptions classifies deviations for one punch after matching,
// rounding and hour derivation. Checks are independent and non-exclusive.
// Schedule-relative checks (late, early leave, breaks, overtime) fire
// only when a shift matched; unmatched punches get unscheduled_work and,
// independently, missed_punch.
func detectExceptions(p punch.Punch, match *MatchResult, hours HoursResult, now time.Time, loc *time.Location) []exception.Record {
	var records []exception.Record

	base := func(typ exception.Type, severity exception.Severity) exception.Record {
		rec := exception.Record{
			CompanyID:     p.CompanyID,
			EmployeeID:    p.EmployeeID,
			TimeEntryID:   p.ID,
			ExceptionDate: dayOf(p.ClockIn, loc),
			Type:          typ,
			Severity:      severity,
		}
		if match != nil {
			shiftID := match.ShiftID
			rec.ShiftID = &shiftID
		}
		return rec
	}

	if match != nil {
		// Late arrival is judged on the raw clock-in; the rounded result
		// may absorb the variance but the exception still records it.
		lateBy := p.ClockIn.Sub(match.ScheduledStart).Minutes()
		if lateBy > lateGraceMinutes {
			severity := exception.SeverityWarning
			if lateBy > lateCriticalMinutes {
				severity = exception.SeverityCritical
			}
			rec := base(exception.TypeLateArrival, severity)
			scheduled := match.ScheduledStart
			actual := p.ClockIn
			rec.ScheduledTime = &scheduled
			rec.ActualTime = &actual
			rec.VarianceMinutes = int(lateBy)
			records = append(records, rec)
		}

		if p.ClockOut != nil {
			earlyBy := match.ScheduledEnd.Sub(*p.ClockOut).Minutes()
			if earlyBy > earlyLeaveGraceMinutes {
				severity := exception.SeverityWarning
				if earlyBy > earlyLeaveCriticalMinutes {
					severity = exception.SeverityCritical
				}
				rec := base(exception.TypeEarlyDeparture, severity)
				scheduled := match.ScheduledEnd
				actual := *p.ClockOut
				rec.ScheduledTime = &scheduled
				rec.ActualTime = &actual
				rec.VarianceMinutes = int(earlyBy)
				records = append(records, rec)
			}

			expected := match.BreakMinutesExpected
			actualBreak := p.BreakDurationMinutes
			switch {
			case expected > 0 && actualBreak == 0:
				rec := base(exception.TypeMissingBreak, exception.SeverityWarning)
				rec.VarianceMinutes = expected
				records = append(records, rec)
			case actualBreak > 0 && actualBreak-expected > breakToleranceMinutes:
				rec := base(exception.TypeLongBreak, exception.SeverityInfo)
				rec.VarianceMinutes = actualBreak - expected
				records = append(records, rec)
			case actualBreak > 0 && expected-actualBreak > breakToleranceMinutes:
				rec := base(exception.TypeShortBreak, exception.SeverityInfo)
				rec.VarianceMinutes = expected - actualBreak
				records = append(records, rec)
			}
		}

		if hours.OvertimeHours.IsPositive() {
			severity := exception.SeverityInfo
			if hours.OvertimeHours.GreaterThan(overtimeWarningHours) {
				severity = exception.SeverityWarning
			}
			rec := base(exception.TypeOvertime, severity)
			rec.VarianceMinutes = int(hours.OvertimeHours.Mul(decimal.NewFromInt(60)).IntPart())
			records = append(records, rec)
		}
	} else {
		rec := base(exception.TypeUnscheduledWork, exception.SeverityInfo)
		actual := p.ClockIn
		rec.ActualTime = &actual
		records = append(records, rec)
	}

	if p.ClockOut == nil {
		elapsed := now.Sub(p.ClockIn)
		if elapsed > missedPunchElapsedHours*time.Hour {
			rec := base(exception.TypeMissedPunch, exception.SeverityCritical)
			actual := p.ClockIn
			rec.ActualTime = &actual
			rec.VarianceMinutes = int(elapsed.Minutes())
			records = append(records, rec)
		}
	}

	return records
}

// dayOf truncates a timestamp to its calendar day in the deployment
// timezone.
func dayOf(t time.Time, loc *time.Location) time.Time {
	local := t.In(loc)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
}
