package reconcile

import (
	"testing"
	"time"

	"github.com/cmlabs-hris/timeclock-backend-go/internal/domain/rounding"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestComputeHours_RegularDay(t *testing.T) {
	// Rounded 09:00-17:45 with a 60 minute break is 7h45m worked, all
	// inside the 8 hour standard.
	in := mondayAt(9, 0)
	out := mondayAt(17, 45)

	result := computeHours(in, &out, 60, decimal.NewFromInt(8))

	assert.Equal(t, 465, result.TotalMinutes)
	assert.True(t, result.RegularHours.Equal(decimal.NewFromFloat(7.75)), "got %s", result.RegularHours)
	assert.True(t, result.OvertimeHours.IsZero(), "got %s", result.OvertimeHours)
}

func TestComputeHours_Overtime(t *testing.T) {
	in := mondayAt(8, 0)
	out := mondayAt(18, 0)

	result := computeHours(in, &out, 30, decimal.NewFromInt(8))

	assert.Equal(t, 570, result.TotalMinutes)
	assert.True(t, result.RegularHours.Equal(decimal.NewFromInt(8)))
	assert.True(t, result.OvertimeHours.Equal(decimal.NewFromFloat(1.5)))
}

func TestComputeHours_MissingClockOut(t *testing.T) {
	result := computeHours(mondayAt(9, 0), nil, 60, decimal.NewFromInt(8))

	assert.Equal(t, 0, result.TotalMinutes)
	assert.True(t, result.RegularHours.IsZero())
	assert.True(t, result.OvertimeHours.IsZero())
}

func TestComputeHours_BreakExceedsWindow(t *testing.T) {
	in := mondayAt(9, 0)
	out := mondayAt(9, 30)

	result := computeHours(in, &out, 60, decimal.NewFromInt(8))

	assert.Equal(t, 0, result.TotalMinutes)
	assert.True(t, result.RegularHours.IsZero())
	assert.True(t, result.OvertimeHours.IsZero())
}

func TestComputeHours_SplitReconstructsTotal(t *testing.T) {
	in := mondayAt(7, 0)
	standard := decimal.NewFromInt(8)

	for _, worked := range []time.Duration{4 * time.Hour, 8 * time.Hour, 11*time.Hour + 30*time.Minute} {
		out := in.Add(worked)
		result := computeHours(in, &out, 0, standard)

		total := decimal.NewFromInt(int64(result.TotalMinutes)).Div(decimal.NewFromInt(60))
		sum := result.RegularHours.Add(result.OvertimeHours)
		assert.True(t, sum.Equal(total), "worked %s: %s + %s != %s",
			worked, result.RegularHours, result.OvertimeHours, total)
	}
}

func TestRoundingAndHours_FullDayScenario(t *testing.T) {
	// 09:07 in / 17:40 out against a 09:00-17:00 shift with nearest-15
	// rounding and a 5 minute grace window on both sides.
	rule := roundingRule(rounding.DirectionNearest, 15, 5, rounding.GraceBoth)

	in := roundTime(mondayAt(9, 7), mondayAt(9, 0), rule)
	out := roundTime(mondayAt(17, 40), mondayAt(17, 0), rule)

	assert.Equal(t, mondayAt(9, 0), in)
	assert.Equal(t, mondayAt(17, 45), out)

	result := computeHours(in, &out, 60, decimal.NewFromInt(8))

	assert.True(t, result.RegularHours.Equal(decimal.NewFromFloat(7.75)), "got %s", result.RegularHours)
	assert.True(t, result.OvertimeHours.IsZero(), "got %s", result.OvertimeHours)
}

func TestComputeHours_OvernightWindow(t *testing.T) {
	in := mondayAt(22, 0)
	out := mondayAt(6, 0).AddDate(0, 0, 1)

	result := computeHours(in, &out, 30, decimal.NewFromInt(8))

	assert.Equal(t, 450, result.TotalMinutes)
	assert.True(t, result.RegularHours.Equal(decimal.NewFromFloat(7.5)))
	assert.True(t, result.OvertimeHours.IsZero())
}
