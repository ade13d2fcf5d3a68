package reconcile

import (
	"sort"

	"github.com/cmlabs-hris/timeclock-backend-go/internal/domain/rounding"
)

// resolveRules returns the ordered rule set for a matched shift (or none).
// Shift-specific rules strictly shadow the company default set; the two
// tiers are never merged for the same punch. An empty result means no
// rounding: rounded time equals raw time.
func resolveRules(rules []rounding.Rule, shiftID *string) []rounding.Rule {
	var specific, defaults []rounding.Rule
	for _, r := range rules {
		switch {
		case r.ShiftID == nil:
			defaults = append(defaults, r)
		case shiftID != nil && *r.ShiftID == *shiftID:
			specific = append(specific, r)
		}
	}

	resolved := defaults
	if len(specific) > 0 {
		resolved = specific
	}

	sort.Slice(resolved, func(i, j int) bool { return resolved[i].ID < resolved[j].ID })
	return resolved
}

// clockInRule picks the first resolved rule that rounds the clock-in side.
func clockInRule(resolved []rounding.Rule) *rounding.Rule {
	for i := range resolved {
		if resolved[i].CoversClockIn() {
			return &resolved[i]
		}
	}
	return nil
}

// clockOutRule picks the first resolved rule that rounds the clock-out side.
func clockOutRule(resolved []rounding.Rule) *rounding.Rule {
	for i := range resolved {
		if resolved[i].CoversClockOut() {
			return &resolved[i]
		}
	}
	return nil
}
