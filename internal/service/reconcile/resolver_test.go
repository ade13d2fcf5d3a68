package reconcile

import (
	"testing"

	"github.com/cmlabs-hris/timeclock-backend-go/internal/domain/rounding"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func companyRule(id string, shiftID *string, ruleType rounding.RuleType) rounding.Rule {
	return rounding.Rule{
		ID:              id,
		CompanyID:       "company-1",
		ShiftID:         shiftID,
		RuleType:        ruleType,
		IntervalMinutes: 15,
		Direction:       rounding.DirectionNearest,
	}
}

func TestResolveRules_SpecificShadowsDefaults(t *testing.T) {
	shiftA := "shift-a"
	rules := []rounding.Rule{
		companyRule("rule-default", nil, rounding.RuleBoth),
		companyRule("rule-a", &shiftA, rounding.RuleClockIn),
	}

	resolved := resolveRules(rules, &shiftA)

	// The default set must not leak in alongside the shift-scoped rule,
	// even though it covers a side the specific set does not.
	require.Len(t, resolved, 1)
	assert.Equal(t, "rule-a", resolved[0].ID)
	assert.Nil(t, clockOutRule(resolved))
}

func TestResolveRules_FallsBackToDefaults(t *testing.T) {
	shiftA := "shift-a"
	shiftB := "shift-b"
	rules := []rounding.Rule{
		companyRule("rule-default", nil, rounding.RuleBoth),
		companyRule("rule-a", &shiftA, rounding.RuleBoth),
	}

	resolved := resolveRules(rules, &shiftB)

	require.Len(t, resolved, 1)
	assert.Equal(t, "rule-default", resolved[0].ID)

	resolved = resolveRules(rules, nil)
	require.Len(t, resolved, 1)
	assert.Equal(t, "rule-default", resolved[0].ID)
}

func TestResolveRules_OrderedByID(t *testing.T) {
	rules := []rounding.Rule{
		companyRule("rule-b", nil, rounding.RuleClockOut),
		companyRule("rule-a", nil, rounding.RuleClockIn),
	}

	resolved := resolveRules(rules, nil)

	require.Len(t, resolved, 2)
	assert.Equal(t, "rule-a", resolved[0].ID)

	in := clockInRule(resolved)
	require.NotNil(t, in)
	assert.Equal(t, "rule-a", in.ID)

	out := clockOutRule(resolved)
	require.NotNil(t, out)
	assert.Equal(t, "rule-b", out.ID)
}

func TestResolveRules_EmptyMeansNoRounding(t *testing.T) {
	resolved := resolveRules(nil, nil)

	assert.Empty(t, resolved)
	assert.Nil(t, clockInRule(resolved))
	assert.Nil(t, clockOutRule(resolved))
}
