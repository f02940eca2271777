// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// Currency is the symbol prepended to money values. Overridden from
// config at startup.
var Currency = "$"

// FormatMoney formats a currency amount with comma grouping and two
// decimals. e.g., 1234.5 -> "$1,234.50", -20 -> "-$20.00"
func FormatMoney(v float64) string {
	if math.Signbit(v) {
		return "-" + FormatMoney(-v)
	}

	whole := int64(v)
	cents := int64(math.Round((v - float64(whole)) * 100))
	if cents >= 100 {
		// Rounding carried into the next whole unit.
		whole++
		cents -= 100
	}
	return fmt.Sprintf("%s%s.%02d", Currency, groupThousands(whole), cents)
}

// FormatSignedMoney is FormatMoney with an explicit leading + for
// non-negative values, for transaction listings.
func FormatSignedMoney(v float64) string {
	if math.Signbit(v) {
		return FormatMoney(v)
	}
	return "+" + FormatMoney(v)
}

// FormatDate renders a date for table rows.
func FormatDate(t time.Time) string {
	return t.Format("2006-01-02")
}

// FormatDayOfWeek returns a 3-letter day abbreviation from a weekday number.
func FormatDayOfWeek(weekday int) string {
	days := []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}
	if weekday >= 0 && weekday < 7 {
		return days[weekday]
	}
	return "???"
}

// FormatTransactions renders a day's transaction map compactly,
// expenses and incomes signed, in stable name order.
func FormatTransactions(trans map[string]float64, names []string) string {
	if len(trans) == 0 {
		return ""
	}
	parts := make([]string, 0, len(trans))
	for _, name := range names {
		amount, ok := trans[name]
		if !ok {
			continue
		}
		parts = append(parts, fmt.Sprintf("%s %s", name, FormatSignedMoney(amount)))
	}
	return strings.Join(parts, ", ")
}

func groupThousands(n int64) string {
	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}

	var result strings.Builder
	remainder := len(s) % 3
	if remainder > 0 {
		result.WriteString(s[:remainder])
	}
	for i := remainder; i < len(s); i += 3 {
		if result.Len() > 0 {
			result.WriteByte(',')
		}
		result.WriteString(s[i : i+3])
	}
	return result.String()
}
