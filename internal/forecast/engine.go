package forecast

import (
	"time"

	"cashcast/internal/model"
)

// itemState is the per-item simulation state. due is the "next
// occurrence" cursor for fixed-date items; it lives here instead of
// on the BudgetItem so a run never mutates caller-held items and the
// same item list can be forecast repeatedly.
type itemState struct {
	item *model.BudgetItem
	due  time.Time
}

// cycleStep advances a fixed date by one occurrence of the cycle.
// Only BIWEEKLY, BIMONTHLY, QUARTERLY and YEARLY advance; the
// remaining cycles return ok=false and leave fixed dates where they
// are. That asymmetry is long-standing behavior: a DAILY, WEEKLY or
// MONTHLY rule is expected to use the Daily/WeekDay/DateNumber kinds
// instead of a fixed date.
func cycleStep(c model.Cycle, d time.Time) (next time.Time, ok bool) {
	switch c {
	case model.Biweekly:
		return AddWeeks(d, 2), true
	case model.Bimonthly:
		return AddMonths(d, 2), true
	case model.Quarterly:
		return AddMonths(d, 3), true
	case model.Yearly:
		return AddMonths(d, 12), true
	default:
		return d, false
	}
}

// Forecast simulates the daily balance over weeks*7 consecutive days
// starting at start. Items are matched against each day by their
// due-date kind; every match adds the item amount to the running
// balance and records it in that day's transaction map. The input
// items are not modified.
func Forecast(balance float64, start time.Time, weeks int, items []*model.BudgetItem) *model.ForecastResult {
	start = model.Midnight(start)
	days := weeks * 7

	states := make([]itemState, len(items))
	for i, it := range items {
		states[i] = itemState{item: it, due: it.DueDate}
	}

	// Pull overdue fixed dates forward into (or past) the window.
	// Each step strictly increases the date, so this terminates.
	for i := range states {
		st := &states[i]
		if st.item.Kind != model.KindDate {
			continue
		}
		for st.due.Before(start) {
			next, ok := cycleStep(st.item.Cycle, st.due)
			if !ok {
				break
			}
			st.due = next
		}
	}

	result := &model.ForecastResult{
		Start:    start,
		End:      start.AddDate(0, 0, days),
		Entries:  make([]model.ForecastEntry, 0, days),
		Balances: make([]float64, 0, days),
	}

	running := balance
	for n := 0; n < days; n++ {
		t := start.AddDate(0, 0, n)
		trans := make(map[string]float64)

		for i := range states {
			st := &states[i]
			it := st.item

			switch it.Kind {
			case model.KindWeekDay:
				if model.ISOWeekday(t) != it.Weekday {
					continue
				}
			case model.KindDateNumber:
				if t.Day() != it.DayOfMonth {
					continue
				}
			case model.KindDate:
				if !st.due.Equal(t) {
					continue
				}
				// Fires once per occurrence, then self-reschedules.
				if next, ok := cycleStep(it.Cycle, st.due); ok {
					st.due = next
				}
			case model.KindDaily:
				// always matches
			}

			running += it.Amount
			trans[it.Name] = it.Amount
		}

		result.Entries = append(result.Entries, model.ForecastEntry{
			Date:         t,
			Balance:      running,
			Transactions: trans,
		})
		result.Balances = append(result.Balances, running)
	}

	result.Final = running
	return result
}
