package forecast

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestAddWeeks(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		n    int
		want time.Time
	}{
		{"one week", date(2025, 6, 2), 1, date(2025, 6, 9)},
		{"two weeks", date(2025, 6, 2), 2, date(2025, 6, 16)},
		{"across month end", date(2025, 1, 28), 1, date(2025, 2, 4)},
		{"across year end", date(2024, 12, 30), 1, date(2025, 1, 6)},
		{"zero", date(2025, 6, 2), 0, date(2025, 6, 2)},
		{"negative", date(2025, 6, 16), -2, date(2025, 6, 2)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AddWeeks(tt.in, tt.n)
			if !got.Equal(tt.want) {
				t.Errorf("AddWeeks(%v, %d) = %v, want %v", tt.in, tt.n, got, tt.want)
			}
			// AddWeeks is always exactly 7n days.
			if days := int(got.Sub(tt.in).Hours() / 24); days != 7*tt.n {
				t.Errorf("AddWeeks(%v, %d) moved %d days, want %d", tt.in, tt.n, days, 7*tt.n)
			}
		})
	}
}

func TestAddMonths(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		n    int
		want time.Time
	}{
		{"plain", date(2025, 6, 15), 1, date(2025, 7, 15)},
		{"clamp to leap feb", date(2024, 1, 31), 1, date(2024, 2, 29)},
		{"clamp to non-leap feb", date(2023, 1, 31), 1, date(2023, 2, 28)},
		{"clamp to 30-day month", date(2025, 3, 31), 1, date(2025, 4, 30)},
		{"year wrap forward", date(2019, 11, 15), 3, date(2020, 2, 15)},
		{"twelve months", date(2019, 4, 14), 12, date(2020, 4, 14)},
		{"zero", date(2025, 6, 15), 0, date(2025, 6, 15)},
		{"negative", date(2024, 1, 15), -2, date(2023, 11, 15)},
		{"negative clamp", date(2024, 3, 31), -1, date(2024, 2, 29)},
		{"negative year wrap", date(2024, 1, 15), -13, date(2022, 12, 15)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AddMonths(tt.in, tt.n)
			if !got.Equal(tt.want) {
				t.Errorf("AddMonths(%v, %d) = %v, want %v", tt.in, tt.n, got, tt.want)
			}
		})
	}
}

func TestAddMonths_RoundTripSameMonth(t *testing.T) {
	// Without clamping, adding then subtracting n months lands back in
	// the starting month.
	d := date(2025, 6, 15)
	for n := 1; n <= 24; n++ {
		back := AddMonths(AddMonths(d, n), -n)
		if back.Month() != d.Month() || back.Year() != d.Year() {
			t.Errorf("n=%d: round trip landed on %v, want month %v %d", n, back, d.Month(), d.Year())
		}
	}
}
