package model

import (
	"errors"
	"testing"
	"time"
)

func TestNewItem_KindDispatch(t *testing.T) {
	due := time.Date(2019, time.January, 10, 15, 30, 0, 0, time.Local)

	tests := []struct {
		name     string
		due      any
		wantKind DueDateKind
	}{
		{"int is date number", 25, KindDateNumber},
		{"weekday is week day", Friday, KindWeekDay},
		{"time is date", due, KindDate},
		{"nil is daily", nil, KindDaily},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item, err := NewItem("x", 1, Monthly, tt.due)
			if err != nil {
				t.Fatalf("NewItem: %v", err)
			}
			if item.Kind != tt.wantKind {
				t.Errorf("Kind = %v, want %v", item.Kind, tt.wantKind)
			}
		})
	}
}

func TestNewItem_NormalizesDateToMidnightUTC(t *testing.T) {
	due := time.Date(2019, time.January, 10, 15, 30, 0, 0, time.UTC)
	item, err := NewItem("Sewer", -165, Quarterly, due)
	if err != nil {
		t.Fatal(err)
	}
	want := time.Date(2019, time.January, 10, 0, 0, 0, 0, time.UTC)
	if !item.DueDate.Equal(want) {
		t.Errorf("DueDate = %v, want %v", item.DueDate, want)
	}
}

func TestNewItem_RejectsUnsupportedType(t *testing.T) {
	_, err := NewItem("x", 1, Weekly, "Friday")

	var ide *InvalidDueDateError
	if !errors.As(err, &ide) {
		t.Fatalf("err = %v, want InvalidDueDateError", err)
	}
}

func TestParseCycle(t *testing.T) {
	for _, c := range []Cycle{Daily, Weekly, Biweekly, Monthly, Bimonthly, Quarterly, Yearly} {
		got, ok := ParseCycle(c.String())
		if !ok || got != c {
			t.Errorf("ParseCycle(%q) = %v, %v", c.String(), got, ok)
		}
	}
	if _, ok := ParseCycle("HOURLY"); ok {
		t.Error("ParseCycle accepted HOURLY")
	}
}

func TestParseWeekday(t *testing.T) {
	for wd := Monday; wd <= Sunday; wd++ {
		got, ok := ParseWeekday(wd.String())
		if !ok || got != wd {
			t.Errorf("ParseWeekday(%q) = %v, %v", wd.String(), got, ok)
		}
	}
	if _, ok := ParseWeekday("Funday"); ok {
		t.Error("ParseWeekday accepted Funday")
	}
}

func TestISOWeekday(t *testing.T) {
	// 2025-06-02 is a Monday, 2025-06-08 a Sunday.
	if got := ISOWeekday(time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)); got != Monday {
		t.Errorf("Monday = %v", got)
	}
	if got := ISOWeekday(time.Date(2025, 6, 8, 0, 0, 0, 0, time.UTC)); got != Sunday {
		t.Errorf("Sunday = %v, want 7", got)
	}
}

func TestBudgetItemString(t *testing.T) {
	date := time.Date(2019, time.April, 14, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		due  any
		want string
	}{
		{"weekday includes day name", Friday, "Salary: 1000.00, Friday, WEEKLY"},
		{"date number includes literal", 25, "Salary: 1000.00, 25, WEEKLY"},
		{"date includes literal", date, "Salary: 1000.00, 2019-04-14, WEEKLY"},
		{"daily omits due date", nil, "Salary: 1000.00, WEEKLY"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item, err := NewItem("Salary", 1000, Weekly, tt.due)
			if err != nil {
				t.Fatal(err)
			}
			if got := item.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}
