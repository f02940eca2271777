// Package model defines the budget item entity and the forecast output types.
package model

import (
	"fmt"
	"time"
)

// Cycle is the recurrence frequency of a budget item.
type Cycle int

const (
	Daily Cycle = iota
	Weekly
	Biweekly
	Monthly
	Bimonthly
	Quarterly
	Yearly
)

var cycleNames = []string{"DAILY", "WEEKLY", "BIWEEKLY", "MONTHLY", "BIMONTHLY", "QUARTERLY", "YEARLY"}

func (c Cycle) String() string {
	if c < 0 || int(c) >= len(cycleNames) {
		return "UNKNOWN"
	}
	return cycleNames[c]
}

// ParseCycle maps a cycle name to its Cycle value.
func ParseCycle(name string) (Cycle, bool) {
	for i, n := range cycleNames {
		if n == name {
			return Cycle(i), true
		}
	}
	return 0, false
}

// DueDateKind discriminates how an item's due date is matched against
// a calendar day.
type DueDateKind int

const (
	// KindWeekDay matches any day with the item's ISO weekday.
	KindWeekDay DueDateKind = iota
	// KindDateNumber matches any day whose day-of-month equals the
	// item's number. Numbers past the end of a month simply never
	// match that month; there is no clamping.
	KindDateNumber
	// KindDate matches one concrete calendar date, then reschedules
	// for cycles that advance.
	KindDate
	// KindDaily matches every day.
	KindDaily
)

var kindNames = []string{"WeekDay", "DateNumber", "Date", "Daily"}

func (k DueDateKind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "Unknown"
	}
	return kindNames[k]
}

// ParseDueDateKind maps a kind name to its DueDateKind value.
func ParseDueDateKind(name string) (DueDateKind, bool) {
	for i, n := range kindNames {
		if n == name {
			return DueDateKind(i), true
		}
	}
	return 0, false
}

// Weekday is an ISO day of week: Monday=1 .. Sunday=7.
type Weekday int

const (
	Monday Weekday = 1 + iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

var weekdayNames = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

func (w Weekday) String() string {
	if w < Monday || w > Sunday {
		return "Unknown"
	}
	return weekdayNames[w-1]
}

// ParseWeekday maps a day name to its Weekday value.
func ParseWeekday(name string) (Weekday, bool) {
	for i, n := range weekdayNames {
		if n == name {
			return Weekday(i + 1), true
		}
	}
	return 0, false
}

// ISOWeekday converts a time.Time to the Monday=1..Sunday=7 convention.
func ISOWeekday(t time.Time) Weekday {
	wd := int(t.Weekday())
	if wd == 0 {
		wd = 7
	}
	return Weekday(wd)
}

// BudgetItem is one recurring income (positive amount) or expense
// (negative amount) rule. Exactly one due-date payload field is
// meaningful, selected by Kind.
type BudgetItem struct {
	Name   string
	Amount float64
	Cycle  Cycle
	Kind   DueDateKind

	DayOfMonth int       // KindDateNumber
	Weekday    Weekday   // KindWeekDay
	DueDate    time.Time // KindDate
}

// NewItem builds a BudgetItem, deriving the due-date kind from the
// runtime type of due: int selects a day-of-month rule, Weekday a
// day-of-week rule, time.Time a fixed date, and nil an every-day rule.
// Any other type is rejected with an InvalidDueDateError.
func NewItem(name string, amount float64, cycle Cycle, due any) (*BudgetItem, error) {
	item := &BudgetItem{Name: name, Amount: amount, Cycle: cycle}

	switch d := due.(type) {
	case int:
		item.Kind = KindDateNumber
		item.DayOfMonth = d
	case Weekday:
		item.Kind = KindWeekDay
		item.Weekday = d
	case time.Time:
		item.Kind = KindDate
		item.DueDate = Midnight(d)
	case nil:
		item.Kind = KindDaily
	default:
		return nil, &InvalidDueDateError{Name: name, Value: due}
	}

	return item, nil
}

// Midnight truncates a time to its calendar date in UTC. All engine
// date comparisons are done on midnight-UTC values.
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// String renders the item for item listings; the shape varies by kind.
func (b *BudgetItem) String() string {
	switch b.Kind {
	case KindWeekDay:
		return fmt.Sprintf("%s: %.2f, %s, %s", b.Name, b.Amount, b.Weekday, b.Cycle)
	case KindDateNumber:
		return fmt.Sprintf("%s: %.2f, %d, %s", b.Name, b.Amount, b.DayOfMonth, b.Cycle)
	case KindDate:
		return fmt.Sprintf("%s: %.2f, %s, %s", b.Name, b.Amount, b.DueDate.Format("2006-01-02"), b.Cycle)
	default:
		return fmt.Sprintf("%s: %.2f, %s", b.Name, b.Amount, b.Cycle)
	}
}

// DueLabel renders just the due-date portion, for table columns.
func (b *BudgetItem) DueLabel() string {
	switch b.Kind {
	case KindWeekDay:
		return b.Weekday.String()
	case KindDateNumber:
		return fmt.Sprintf("day %d", b.DayOfMonth)
	case KindDate:
		return b.DueDate.Format("2006-01-02")
	default:
		return "every day"
	}
}
