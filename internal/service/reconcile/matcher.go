package reconcile

import (
	"sort"
	"time"

	"github.com/cmlabs-hris/timeclock-backend-go/internal/domain/punch"
	"github.com/cmlabs-hris/timeclock-backend-go/internal/domain/shift"
	"github.com/cmlabs-hris/timeclock-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

const (
	// A candidate shift is acceptable when its scheduled start is within
	// this many minutes of the raw clock-in.
	matchWindowMinutes = 120

	// At or under this difference the match quality is exact.
	exactThresholdMinutes = 5
)

// MatchResult is the scheduled window a punch was matched against.
type MatchResult struct {
	ShiftID              string
	Quality              punch.MatchQuality
	ScheduledStart       time.Time
	ScheduledEnd         time.Time
	StandardHours        decimal.Decimal
	BreakMinutesExpected int
}

// matchShift finds the best shift occurrence for a raw clock-in.
// Tier 1 tries the employee's date-specific assignments; tier 2 falls
// back to active definitions whose weekday set covers the punch day.
// Candidates are walked in id order and the first one inside the match
// window wins, so results are stable regardless of store ordering.
// A nil result means the punch is unscheduled work.
func matchShift(clockIn time.Time, assignments []shift.Assignment, defs []shift.Definition, loc *time.Location) *MatchResult {
	local := clockIn.In(loc)

	defsByID := make(map[string]shift.Definition, len(defs))
	for _, def := range defs {
		defsByID[def.ID] = def
	}

	// Tier 1: specific assignments dated to this calendar day.
	sorted := make([]shift.Assignment, len(assignments))
	copy(sorted, assignments)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].ID < sorted[j].ID })

	for _, a := range sorted {
		def, ok := defsByID[a.ShiftID]
		if !ok {
			continue
		}
		if !sameDay(a.Date, local) {
			continue
		}
		if result := tryCandidate(local, def, loc); result != nil {
			return result
		}
	}

	// Tier 2: generic weekday patterns on active definitions.
	sortedDefs := make([]shift.Definition, len(defs))
	copy(sortedDefs, defs)
	sort.Slice(sortedDefs, func(i, j int) bool { return sortedDefs[i].ID < sortedDefs[j].ID })

	weekday := int(local.Weekday())
	for _, def := range sortedDefs {
		if !def.IsActive {
			continue
		}
		if !containsDay(def.ApplicableDays, weekday) {
			continue
		}
		if result := tryCandidate(local, def, loc); result != nil {
			return result
		}
	}

	return nil
}

// tryCandidate projects the definition's time-of-day onto the punch's
// calendar day and accepts it when the clock-in lands inside the match
// window. Definitions with unparseable times are skipped, never fatal.
func tryCandidate(local time.Time, def shift.Definition, loc *time.Location) *MatchResult {
	startHour, startMin, ok := validator.ParseClock(def.StartTime)
	if !ok {
		return nil
	}
	endHour, endMin, ok := validator.ParseClock(def.EndTime)
	if !ok {
		return nil
	}

	scheduledStart := time.Date(local.Year(), local.Month(), local.Day(), startHour, startMin, 0, 0, loc)
	scheduledEnd := time.Date(local.Year(), local.Month(), local.Day(), endHour, endMin, 0, 0, loc)

	// Overnight shift: checkout lands on the next day.
	if !scheduledEnd.After(scheduledStart) {
		scheduledEnd = scheduledEnd.Add(24 * time.Hour)
	}

	diff := local.Sub(scheduledStart).Minutes()
	if diff < 0 {
		diff = -diff
	}
	if diff > matchWindowMinutes {
		return nil
	}

	quality := punch.MatchClose
	if diff <= exactThresholdMinutes {
		quality = punch.MatchExact
	}

	return &MatchResult{
		ShiftID:              def.ID,
		Quality:              quality,
		ScheduledStart:       scheduledStart,
		ScheduledEnd:         scheduledEnd,
		StandardHours:        def.StandardHours,
		BreakMinutesExpected: def.BreakDurationMinutes,
	}
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

func containsDay(days []int, day int) bool {
	for _, d := range days {
		if d == day {
			return true
		}
	}
	return false
}
