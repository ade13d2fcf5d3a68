package reconcile

import (
	"testing"
	"time"

	"github.com/cmlabs-hris/timeclock-backend-go/internal/domain/rounding"
	"github.com/stretchr/testify/assert"
)

func roundingRule(direction rounding.Direction, interval, grace int, graceDir rounding.GraceDirection) rounding.Rule {
	return rounding.Rule{
		ID:              "rule-1",
		CompanyID:       "company-1",
		RuleType:        rounding.RuleBoth,
		IntervalMinutes: interval,
		Direction:       direction,
		GraceMinutes:    grace,
		GraceDirection:  graceDir,
	}
}

func TestRoundTime_GraceSnapsToAnchor(t *testing.T) {
	anchor := mondayAt(9, 0)
	rule := roundingRule(rounding.DirectionUp, 15, 5, rounding.GraceBoth)

	tests := []struct {
		name string
		raw  time.Time
		want time.Time
	}{
		{"four late snaps", mondayAt(9, 4), anchor},
		{"five late snaps", mondayAt(9, 5), anchor},
		{"four early snaps", mondayAt(8, 56), anchor},
		{"six late rounds up", mondayAt(9, 6), mondayAt(9, 15)},
		{"six early rounds up", mondayAt(8, 54), mondayAt(9, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, roundTime(tt.raw, anchor, rule))
		})
	}
}

func TestRoundTime_GraceDirectionSides(t *testing.T) {
	anchor := mondayAt(9, 0)

	before := roundingRule(rounding.DirectionUp, 15, 5, rounding.GraceBefore)
	// Early punch inside the window snaps; late punch does not.
	assert.Equal(t, anchor, roundTime(mondayAt(8, 57), anchor, before))
	assert.Equal(t, mondayAt(9, 15), roundTime(mondayAt(9, 3), anchor, before))

	after := roundingRule(rounding.DirectionUp, 15, 5, rounding.GraceAfter)
	assert.Equal(t, anchor, roundTime(mondayAt(9, 3), anchor, after))
	assert.Equal(t, mondayAt(9, 0), roundTime(mondayAt(8, 57), anchor, after))
}

func TestRoundTime_NearestRoundsHalfUp(t *testing.T) {
	anchor := mondayAt(9, 0)
	rule := roundingRule(rounding.DirectionNearest, 15, 0, rounding.GraceBoth)

	// 09:07 is below the midpoint, 09:07:30 is exactly on it.
	assert.Equal(t, mondayAt(9, 0), roundTime(mondayAt(9, 7), anchor, rule))
	midpoint := time.Date(2026, 8, 31, 9, 7, 30, 0, time.UTC)
	assert.Equal(t, mondayAt(9, 15), roundTime(midpoint, anchor, rule))
	assert.Equal(t, mondayAt(9, 15), roundTime(mondayAt(9, 8), anchor, rule))
}

func TestRoundTime_UpAndDown(t *testing.T) {
	anchor := mondayAt(9, 0)

	up := roundingRule(rounding.DirectionUp, 10, 0, rounding.GraceBoth)
	assert.Equal(t, mondayAt(9, 10), roundTime(mondayAt(9, 1), anchor, up))
	assert.Equal(t, mondayAt(9, 10), roundTime(mondayAt(9, 10), anchor, up))

	down := roundingRule(rounding.DirectionDown, 10, 0, rounding.GraceBoth)
	assert.Equal(t, mondayAt(9, 0), roundTime(mondayAt(9, 9), anchor, down))
	assert.Equal(t, mondayAt(9, 10), roundTime(mondayAt(9, 10), anchor, down))
}

func TestRoundTime_FavorDirections(t *testing.T) {
	anchor := mondayAt(9, 0)
	employer := roundingRule(rounding.DirectionFavorEmployer, 15, 0, rounding.GraceBoth)
	employee := roundingRule(rounding.DirectionFavorEmployee, 15, 0, rounding.GraceBoth)

	// Early punch: employer-favorable rounds up, dropping the early
	// minutes; employee-favorable keeps them.
	early := mondayAt(8, 50)
	assert.Equal(t, mondayAt(9, 0), roundTime(early, anchor, employer))
	assert.Equal(t, mondayAt(8, 45), roundTime(early, anchor, employee))

	// Late punch: the directions swap.
	late := mondayAt(9, 10)
	assert.Equal(t, mondayAt(9, 0), roundTime(late, anchor, employer))
	assert.Equal(t, mondayAt(9, 15), roundTime(late, anchor, employee))
}

func TestRoundTime_FavorEmployerNeverLaterThanEmployee(t *testing.T) {
	anchor := mondayAt(9, 0)
	employer := roundingRule(rounding.DirectionFavorEmployer, 15, 0, rounding.GraceBoth)
	employee := roundingRule(rounding.DirectionFavorEmployee, 15, 0, rounding.GraceBoth)

	for offset := -40; offset <= 40; offset++ {
		raw := anchor.Add(time.Duration(offset) * time.Minute)
		er := roundTime(raw, anchor, employer)
		ee := roundTime(raw, anchor, employee)

		// Both policies land on opposite sides of the raw time, so the
		// employer result is never farther from the anchor.
		assert.LessOrEqual(t,
			er.Sub(anchor).Abs(),
			ee.Sub(anchor).Abs(),
			"offset %d", offset)
	}
}

func TestRoundTime_NoIntervalPassthrough(t *testing.T) {
	anchor := mondayAt(9, 0)
	rule := roundingRule(rounding.DirectionNearest, 0, 0, rounding.GraceBoth)

	raw := mondayAt(9, 11)
	assert.Equal(t, raw, roundTime(raw, anchor, rule))
}
