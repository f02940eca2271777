package model

import "time"

// ForecastEntry is one simulated day: the date, the balance after all
// of that day's items applied, and the transactions that fired keyed
// by item name. Two items sharing a name leave only the later one in
// the map; both still hit the balance.
type ForecastEntry struct {
	Date         time.Time
	Balance      float64
	Transactions map[string]float64
}

// ForecastResult is the full output of one simulation run. Entries is
// ordered chronologically, one per calendar day of the window.
// Balances carries the same end-of-day balances as a flat series for
// charting.
type ForecastResult struct {
	Start    time.Time
	End      time.Time // day after the last simulated day
	Entries  []ForecastEntry
	Balances []float64
	Final    float64
}

// Lowest returns the minimum end-of-day balance and its date.
func (r *ForecastResult) Lowest() (time.Time, float64) {
	if len(r.Entries) == 0 {
		return time.Time{}, 0
	}
	low := r.Entries[0]
	for _, e := range r.Entries[1:] {
		if e.Balance < low.Balance {
			low = e
		}
	}
	return low.Date, low.Balance
}
