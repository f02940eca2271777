// Package forecast implements the day-by-day balance simulation and
// the recurrence date arithmetic it is built on.
package forecast

import "time"

// AddWeeks returns the date shifted by 7*n days. n may be negative.
func AddWeeks(d time.Time, n int) time.Time {
	return d.AddDate(0, 0, 7*n)
}

// AddMonths returns the date with its month advanced by n, wrapping
// the year as needed. The day-of-month is clamped to the last valid
// day of the target month, so Jan 31 + 1 month is Feb 28 (or 29).
//
// time.Time.AddDate would normalize Jan 31 + 1 month to Mar 2/3
// instead, which is the wrong behavior for due dates.
func AddMonths(d time.Time, n int) time.Time {
	month := int(d.Month()) - 1 + n
	year := d.Year() + month/12
	month = month % 12
	if month < 0 {
		month += 12
		year--
	}
	m := time.Month(month + 1)

	day := d.Day()
	if last := daysIn(year, m); day > last {
		day = last
	}
	return time.Date(year, m, day, 0, 0, 0, 0, time.UTC)
}

// daysIn returns the number of days in the given month.
func daysIn(year int, m time.Month) int {
	// Day 0 of the next month normalizes to the last day of m.
	return time.Date(year, m+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
