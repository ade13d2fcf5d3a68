package reconcile

import (
	"math"
	"time"

	"github.com/cmlabs-hris/timeclock-backend-go/internal/domain/rounding"
)

// roundTime applies one resolved rule to a raw timestamp relative to its
// scheduled anchor.
//
// The grace period is a hard short-circuit: when the signed variance
// (raw minus anchor) falls inside the configured window the result snaps
// exactly to the anchor and interval rounding never runs. Otherwise the
// raw time's minute-of-day is rounded to the rule's interval.
func roundTime(raw, anchor time.Time, rule rounding.Rule) time.Time {
	variance := raw.Sub(anchor).Minutes()

	if rule.GraceMinutes > 0 && withinGrace(variance, rule) {
		return anchor
	}

	if rule.IntervalMinutes <= 0 {
		return raw
	}

	dayStart := time.Date(raw.Year(), raw.Month(), raw.Day(), 0, 0, 0, 0, raw.Location())
	minuteOfDay := raw.Sub(dayStart).Minutes()
	interval := float64(rule.IntervalMinutes)

	var rounded float64
	switch rule.Direction {
	case rounding.DirectionNearest:
		// Ties round half-up.
		rounded = math.Floor(minuteOfDay/interval+0.5) * interval
	case rounding.DirectionUp:
		rounded = math.Ceil(minuteOfDay/interval) * interval
	case rounding.DirectionDown:
		rounded = math.Floor(minuteOfDay/interval) * interval
	case rounding.DirectionFavorEmployer:
		// Early punches round up, late punches round down: either way
		// the employee's paid time shrinks toward the anchor.
		if variance < 0 {
			rounded = math.Ceil(minuteOfDay/interval) * interval
		} else {
			rounded = math.Floor(minuteOfDay/interval) * interval
		}
	case rounding.DirectionFavorEmployee:
		if variance < 0 {
			rounded = math.Floor(minuteOfDay/interval) * interval
		} else {
			rounded = math.Ceil(minuteOfDay/interval) * interval
		}
	default:
		return raw
	}

	return dayStart.Add(time.Duration(rounded * float64(time.Minute)))
}

// withinGrace reports whether the signed variance sits inside the rule's
// grace window. "before" covers early punches, "after" covers late ones.
func withinGrace(variance float64, rule rounding.Rule) bool {
	grace := float64(rule.GraceMinutes)
	switch rule.GraceDirection {
	case rounding.GraceBefore:
		return variance >= -grace && variance <= 0
	case rounding.GraceAfter:
		return variance >= 0 && variance <= grace
	case rounding.GraceBoth:
		return math.Abs(variance) <= grace
	default:
		return false
	}
}
