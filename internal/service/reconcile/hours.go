package reconcile

import (
	"time"

	"github.com/shopspring/decimal"
)

// Applied when a punch matched no shift and there is no standard-hours
// value to read from a definition.
var defaultStandardHours = decimal.NewFromInt(8)

// HoursResult carries the derived hour split for one punch.
type HoursResult struct {
	TotalMinutes  int
	RegularHours  decimal.Decimal
	OvertimeHours decimal.Decimal
}

// computeHours derives regular and overtime hours from the rounded
// window. A missing clock-out yields zeros for this pass; the record
// stays eligible for a later run once the clock-out arrives.
func computeHours(roundedIn time.Time, roundedOut *time.Time, breakMinutes int, standardHours decimal.Decimal) HoursResult {
	if roundedOut == nil {
		return HoursResult{
			RegularHours:  decimal.Zero,
			OvertimeHours: decimal.Zero,
		}
	}

	totalMinutes := int(roundedOut.Sub(roundedIn).Minutes()) - breakMinutes
	if totalMinutes < 0 {
		totalMinutes = 0
	}

	totalHours := decimal.NewFromInt(int64(totalMinutes)).Div(decimal.NewFromInt(60))
	regular := decimal.Min(totalHours, standardHours)
	overtime := decimal.Max(decimal.Zero, totalHours.Sub(standardHours))

	return HoursResult{
		TotalMinutes:  totalMinutes,
		RegularHours:  regular,
		OvertimeHours: overtime,
	}
}
