package reconcile

import (
	"testing"
	"time"

	"github.com/cmlabs-hris/timeclock-backend-go/internal/domain/punch"
	"github.com/cmlabs-hris/timeclock-backend-go/internal/domain/shift"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allDays = []int{0, 1, 2, 3, 4, 5, 6}

func dayShift(id, start, end string, days []int) shift.Definition {
	return shift.Definition{
		ID:                   id,
		CompanyID:            "company-1",
		Name:                 "Shift " + id,
		StartTime:            start,
		EndTime:              end,
		ApplicableDays:       days,
		StandardHours:        decimal.NewFromInt(8),
		BreakDurationMinutes: 60,
		IsActive:             true,
	}
}

// 2026-08-31 is a Monday.
func mondayAt(hour, min int) time.Time {
	return time.Date(2026, 8, 31, hour, min, 0, 0, time.UTC)
}

func TestMatchShift_QualityThresholds(t *testing.T) {
	defs := []shift.Definition{dayShift("shift-a", "09:00", "17:00", allDays)}

	tests := []struct {
		name    string
		clockIn time.Time
		want    punch.MatchQuality
		matched bool
	}{
		{"on the minute", mondayAt(9, 0), punch.MatchExact, true},
		{"five minutes late", mondayAt(9, 5), punch.MatchExact, true},
		{"five minutes early", mondayAt(8, 55), punch.MatchExact, true},
		{"six minutes late", mondayAt(9, 6), punch.MatchClose, true},
		{"window edge", mondayAt(11, 0), punch.MatchClose, true},
		{"just outside window", mondayAt(11, 1), punch.MatchUnmatched, false},
		{"too early", mondayAt(6, 59), punch.MatchUnmatched, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := matchShift(tt.clockIn, nil, defs, time.UTC)
			if !tt.matched {
				assert.Nil(t, result)
				return
			}
			require.NotNil(t, result)
			assert.Equal(t, "shift-a", result.ShiftID)
			assert.Equal(t, tt.want, result.Quality)
		})
	}
}

func TestMatchShift_AssignmentTakesPrecedence(t *testing.T) {
	defs := []shift.Definition{
		dayShift("shift-a", "09:00", "17:00", allDays),
		// Not reachable through weekday matching.
		dayShift("shift-b", "10:00", "18:00", nil),
	}
	assignments := []shift.Assignment{
		{ID: "assign-1", CompanyID: "company-1", EmployeeID: "emp-1", ShiftID: "shift-b", Date: mondayAt(0, 0)},
	}

	result := matchShift(mondayAt(9, 50), assignments, defs, time.UTC)

	require.NotNil(t, result)
	assert.Equal(t, "shift-b", result.ShiftID)
	assert.Equal(t, mondayAt(10, 0), result.ScheduledStart)
}

func TestMatchShift_AssignmentOnOtherDayIgnored(t *testing.T) {
	defs := []shift.Definition{
		dayShift("shift-a", "09:00", "17:00", allDays),
		dayShift("shift-b", "10:00", "18:00", nil),
	}
	sunday := mondayAt(0, 0).AddDate(0, 0, -1)
	assignments := []shift.Assignment{
		{ID: "assign-1", ShiftID: "shift-b", Date: sunday},
	}

	result := matchShift(mondayAt(9, 50), assignments, defs, time.UTC)

	require.NotNil(t, result)
	assert.Equal(t, "shift-a", result.ShiftID)
}

func TestMatchShift_AssignmentWithUnknownShiftSkipped(t *testing.T) {
	defs := []shift.Definition{dayShift("shift-a", "09:00", "17:00", allDays)}
	assignments := []shift.Assignment{
		{ID: "assign-1", ShiftID: "deleted-shift", Date: mondayAt(0, 0)},
	}

	result := matchShift(mondayAt(9, 0), assignments, defs, time.UTC)

	require.NotNil(t, result)
	assert.Equal(t, "shift-a", result.ShiftID)
}

func TestMatchShift_InactiveDefinitionSkipped(t *testing.T) {
	inactive := dayShift("shift-a", "09:00", "17:00", allDays)
	inactive.IsActive = false

	result := matchShift(mondayAt(9, 0), nil, []shift.Definition{inactive}, time.UTC)

	assert.Nil(t, result)
}

func TestMatchShift_WeekdayFilter(t *testing.T) {
	tuesdayOnly := dayShift("shift-a", "09:00", "17:00", []int{2})

	result := matchShift(mondayAt(9, 0), nil, []shift.Definition{tuesdayOnly}, time.UTC)
	assert.Nil(t, result)

	tuesday := mondayAt(9, 0).AddDate(0, 0, 1)
	result = matchShift(tuesday, nil, []shift.Definition{tuesdayOnly}, time.UTC)
	require.NotNil(t, result)
	assert.Equal(t, "shift-a", result.ShiftID)
}

func TestMatchShift_FirstCandidateByID(t *testing.T) {
	// Both definitions are inside the window for a 09:30 punch; matching
	// must walk them in id order no matter how the store returned them.
	defs := []shift.Definition{
		dayShift("shift-b", "09:00", "17:00", allDays),
		dayShift("shift-a", "10:00", "18:00", allDays),
	}

	result := matchShift(mondayAt(9, 30), nil, defs, time.UTC)

	require.NotNil(t, result)
	assert.Equal(t, "shift-a", result.ShiftID)
}

func TestMatchShift_OvernightShiftEndsNextDay(t *testing.T) {
	defs := []shift.Definition{dayShift("shift-night", "22:00", "06:00", allDays)}

	result := matchShift(mondayAt(22, 10), nil, defs, time.UTC)

	require.NotNil(t, result)
	assert.Equal(t, punch.MatchClose, result.Quality)
	assert.Equal(t, mondayAt(22, 0), result.ScheduledStart)
	assert.Equal(t, mondayAt(6, 0).AddDate(0, 0, 1), result.ScheduledEnd)
}

func TestMatchShift_UnparseableTimesSkipped(t *testing.T) {
	broken := dayShift("shift-a", "9am", "17:00", allDays)

	result := matchShift(mondayAt(9, 0), nil, []shift.Definition{broken}, time.UTC)

	assert.Nil(t, result)
}

func TestMatchShift_CarriesDefinitionValues(t *testing.T) {
	def := dayShift("shift-a", "09:00", "17:00", allDays)
	def.StandardHours = decimal.NewFromFloat(7.5)
	def.BreakDurationMinutes = 45

	result := matchShift(mondayAt(9, 2), nil, []shift.Definition{def}, time.UTC)

	require.NotNil(t, result)
	assert.True(t, result.StandardHours.Equal(decimal.NewFromFloat(7.5)))
	assert.Equal(t, 45, result.BreakMinutesExpected)
}
