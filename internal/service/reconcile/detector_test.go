package reconcile

import (
	"testing"
	"time"

	"github.com/cmlabs-hris/timeclock-backend-go/internal/domain/exception"
	"github.com/cmlabs-hris/timeclock-backend-go/internal/domain/punch"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dayMatch() *MatchResult {
	return &MatchResult{
		ShiftID:              "shift-a",
		Quality:              punch.MatchExact,
		ScheduledStart:       mondayAt(9, 0),
		ScheduledEnd:         mondayAt(17, 0),
		StandardHours:        decimal.NewFromInt(8),
		BreakMinutesExpected: 60,
	}
}

func punchAt(in time.Time, out *time.Time, breakMinutes int) punch.Punch {
	return punch.Punch{
		ID:                   "entry-1",
		CompanyID:            "company-1",
		EmployeeID:           "emp-1",
		ClockIn:              in,
		ClockOut:             out,
		BreakDurationMinutes: breakMinutes,
	}
}

func findRecord(records []exception.Record, typ exception.Type) *exception.Record {
	for i := range records {
		if records[i].Type == typ {
			return &records[i]
		}
	}
	return nil
}

func TestDetectExceptions_LateArrivalBoundaries(t *testing.T) {
	out := mondayAt(17, 0)

	tests := []struct {
		name        string
		lateMinutes int
		severity    exception.Severity
		flagged     bool
	}{
		{"within grace", 5, "", false},
		{"just over grace", 6, exception.SeverityWarning, true},
		{"warning boundary", 15, exception.SeverityWarning, true},
		{"over warning boundary", 16, exception.SeverityCritical, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := mondayAt(9, tt.lateMinutes)
			p := punchAt(in, &out, 60)

			records := detectExceptions(p, dayMatch(), HoursResult{}, mondayAt(18, 0), time.UTC)

			rec := findRecord(records, exception.TypeLateArrival)
			if !tt.flagged {
				assert.Nil(t, rec)
				return
			}
			require.NotNil(t, rec)
			assert.Equal(t, tt.severity, rec.Severity)
			assert.Equal(t, tt.lateMinutes, rec.VarianceMinutes)
			require.NotNil(t, rec.ScheduledTime)
			assert.Equal(t, mondayAt(9, 0), *rec.ScheduledTime)
			require.NotNil(t, rec.ActualTime)
			assert.Equal(t, in, *rec.ActualTime)
			require.NotNil(t, rec.ShiftID)
			assert.Equal(t, "shift-a", *rec.ShiftID)
		})
	}
}

func TestDetectExceptions_EarlyDepartureBoundaries(t *testing.T) {
	tests := []struct {
		name         string
		earlyMinutes int
		severity     exception.Severity
		flagged      bool
	}{
		{"within grace", 5, "", false},
		{"just over grace", 6, exception.SeverityWarning, true},
		{"warning boundary", 30, exception.SeverityWarning, true},
		{"over warning boundary", 31, exception.SeverityCritical, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := mondayAt(17, 0).Add(-time.Duration(tt.earlyMinutes) * time.Minute)
			p := punchAt(mondayAt(9, 0), &out, 60)

			records := detectExceptions(p, dayMatch(), HoursResult{}, mondayAt(18, 0), time.UTC)

			rec := findRecord(records, exception.TypeEarlyDeparture)
			if !tt.flagged {
				assert.Nil(t, rec)
				return
			}
			require.NotNil(t, rec)
			assert.Equal(t, tt.severity, rec.Severity)
			assert.Equal(t, tt.earlyMinutes, rec.VarianceMinutes)
		})
	}
}

func TestDetectExceptions_BreakAnomalies(t *testing.T) {
	out := mondayAt(17, 0)

	tests := []struct {
		name         string
		breakMinutes int
		wantType     exception.Type
		severity     exception.Severity
		variance     int
	}{
		{"no break taken", 0, exception.TypeMissingBreak, exception.SeverityWarning, 60},
		{"long break", 75, exception.TypeLongBreak, exception.SeverityInfo, 15},
		{"short break", 45, exception.TypeShortBreak, exception.SeverityInfo, 15},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := punchAt(mondayAt(9, 0), &out, tt.breakMinutes)

			records := detectExceptions(p, dayMatch(), HoursResult{}, mondayAt(18, 0), time.UTC)

			rec := findRecord(records, tt.wantType)
			require.NotNil(t, rec)
			assert.Equal(t, tt.severity, rec.Severity)
			assert.Equal(t, tt.variance, rec.VarianceMinutes)
		})
	}
}

func TestDetectExceptions_BreakWithinTolerance(t *testing.T) {
	out := mondayAt(17, 0)

	for _, breakMinutes := range []int{50, 60, 70} {
		p := punchAt(mondayAt(9, 0), &out, breakMinutes)

		records := detectExceptions(p, dayMatch(), HoursResult{}, mondayAt(18, 0), time.UTC)

		assert.Nil(t, findRecord(records, exception.TypeMissingBreak), "break %d", breakMinutes)
		assert.Nil(t, findRecord(records, exception.TypeLongBreak), "break %d", breakMinutes)
		assert.Nil(t, findRecord(records, exception.TypeShortBreak), "break %d", breakMinutes)
	}
}

func TestDetectExceptions_OvertimeSeverity(t *testing.T) {
	out := mondayAt(19, 0)
	p := punchAt(mondayAt(9, 0), &out, 60)

	tests := []struct {
		name     string
		overtime decimal.Decimal
		severity exception.Severity
		variance int
	}{
		{"mild overtime", decimal.NewFromFloat(1.5), exception.SeverityInfo, 90},
		{"two hours exactly", decimal.NewFromInt(2), exception.SeverityInfo, 120},
		{"heavy overtime", decimal.NewFromFloat(2.5), exception.SeverityWarning, 150},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hours := HoursResult{OvertimeHours: tt.overtime, RegularHours: decimal.NewFromInt(8)}

			records := detectExceptions(p, dayMatch(), hours, mondayAt(20, 0), time.UTC)

			rec := findRecord(records, exception.TypeOvertime)
			require.NotNil(t, rec)
			assert.Equal(t, tt.severity, rec.Severity)
			assert.Equal(t, tt.variance, rec.VarianceMinutes)
		})
	}
}

func TestDetectExceptions_UnscheduledAndMissedPunch(t *testing.T) {
	// No shift matched, no clock-out, and 14 hours have passed.
	in := mondayAt(8, 0)
	p := punchAt(in, nil, 0)

	records := detectExceptions(p, nil, HoursResult{}, mondayAt(22, 0), time.UTC)

	unscheduled := findRecord(records, exception.TypeUnscheduledWork)
	require.NotNil(t, unscheduled)
	assert.Equal(t, exception.SeverityInfo, unscheduled.Severity)
	assert.Nil(t, unscheduled.ShiftID)

	missed := findRecord(records, exception.TypeMissedPunch)
	require.NotNil(t, missed)
	assert.Equal(t, exception.SeverityCritical, missed.Severity)
	assert.Equal(t, 14*60, missed.VarianceMinutes)

	assert.Len(t, records, 2)
}

func TestDetectExceptions_OpenPunchWithinElapsedWindow(t *testing.T) {
	p := punchAt(mondayAt(9, 0), nil, 0)

	records := detectExceptions(p, dayMatch(), HoursResult{}, mondayAt(13, 0), time.UTC)

	assert.Nil(t, findRecord(records, exception.TypeMissedPunch))
}

func TestDetectExceptions_CleanDayProducesNothing(t *testing.T) {
	out := mondayAt(17, 0)
	p := punchAt(mondayAt(9, 0), &out, 60)

	records := detectExceptions(p, dayMatch(), HoursResult{}, mondayAt(18, 0), time.UTC)

	assert.Empty(t, records)
}
