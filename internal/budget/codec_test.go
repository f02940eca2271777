package budget

import (
	"errors"
	"strings"
	"testing"
	"time"

	"cashcast/internal/model"
)

const validBudget = `[
  {"name": "Salary", "amount": 1000, "cycle": "WEEKLY", "due_date_type": "WeekDay", "due_date": "Friday"},
  {"name": "Insurance", "amount": -200.99, "cycle": "MONTHLY", "due_date_type": "DateNumber", "due_date": 25},
  {"name": "Food", "amount": -36, "cycle": "DAILY", "due_date_type": "Daily"},
  {"name": "Sewer", "amount": -165, "cycle": "QUARTERLY", "due_date_type": "Date", "due_date": {"year": 2019, "month": 1, "day": 10}}
]`

func TestDecode_Valid(t *testing.T) {
	items, err := Decode([]byte(validBudget))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if len(items) != 4 {
		t.Fatalf("decoded %d items, want 4", len(items))
	}

	salary := items[0]
	if salary.Kind != model.KindWeekDay || salary.Weekday != model.Friday {
		t.Errorf("Salary = kind %v weekday %v, want WeekDay Friday", salary.Kind, salary.Weekday)
	}
	if salary.Cycle != model.Weekly || salary.Amount != 1000 {
		t.Errorf("Salary = cycle %v amount %v, want WEEKLY 1000", salary.Cycle, salary.Amount)
	}

	insurance := items[1]
	if insurance.Kind != model.KindDateNumber || insurance.DayOfMonth != 25 {
		t.Errorf("Insurance = kind %v day %d, want DateNumber 25", insurance.Kind, insurance.DayOfMonth)
	}

	food := items[2]
	if food.Kind != model.KindDaily {
		t.Errorf("Food kind = %v, want Daily", food.Kind)
	}

	sewer := items[3]
	wantDue := time.Date(2019, time.January, 10, 0, 0, 0, 0, time.UTC)
	if sewer.Kind != model.KindDate || !sewer.DueDate.Equal(wantDue) {
		t.Errorf("Sewer = kind %v due %v, want Date %v", sewer.Kind, sewer.DueDate, wantDue)
	}
}

func TestDecode_MissingFields(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantField string
	}{
		{
			"missing name",
			`[{"amount": 1, "cycle": "DAILY", "due_date_type": "Daily"}]`,
			"name",
		},
		{
			"missing amount",
			`[{"name": "x", "cycle": "DAILY", "due_date_type": "Daily"}]`,
			"amount",
		},
		{
			"missing cycle",
			`[{"name": "x", "amount": 1, "due_date_type": "Daily"}]`,
			"cycle",
		},
		{
			"missing due_date_type",
			`[{"name": "x", "amount": 1, "cycle": "DAILY"}]`,
			"due_date_type",
		},
		{
			"missing due_date for non-daily",
			`[{"name": "x", "amount": 1, "cycle": "WEEKLY", "due_date_type": "WeekDay"}]`,
			"due_date",
		},
		{
			"date payload missing year",
			`[{"name": "x", "amount": 1, "cycle": "YEARLY", "due_date_type": "Date", "due_date": {"month": 1, "day": 2}}]`,
			"year",
		},
		{
			"date payload missing day",
			`[{"name": "x", "amount": 1, "cycle": "YEARLY", "due_date_type": "Date", "due_date": {"year": 2025, "month": 1}}]`,
			"day",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode([]byte(tt.input))
			var mfe *MissingFieldError
			if !errors.As(err, &mfe) {
				t.Fatalf("err = %v, want MissingFieldError", err)
			}
			if mfe.Field != tt.wantField {
				t.Errorf("Field = %q, want %q", mfe.Field, tt.wantField)
			}
		})
	}
}

func TestDecode_UnknownEnums(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantKind string
	}{
		{
			"bad cycle",
			`[{"name": "x", "amount": 1, "cycle": "FORTNIGHTLY", "due_date_type": "Daily"}]`,
			"cycle",
		},
		{
			"bad due_date_type",
			`[{"name": "x", "amount": 1, "cycle": "WEEKLY", "due_date_type": "Sometimes"}]`,
			"due_date_type",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode([]byte(tt.input))
			var uee *UnknownEnumError
			if !errors.As(err, &uee) {
				t.Fatalf("err = %v, want UnknownEnumError", err)
			}
			if uee.Kind != tt.wantKind {
				t.Errorf("Kind = %q, want %q", uee.Kind, tt.wantKind)
			}
		})
	}
}

func TestDecode_BadWeekdayName(t *testing.T) {
	input := `[{"name": "x", "amount": 1, "cycle": "WEEKLY", "due_date_type": "WeekDay", "due_date": "Funday"}]`
	_, err := Decode([]byte(input))

	var ide *model.InvalidDueDateError
	if !errors.As(err, &ide) {
		t.Fatalf("err = %v, want InvalidDueDateError", err)
	}
}

func TestDecode_MalformedDatePayload(t *testing.T) {
	input := `[{"name": "x", "amount": 1, "cycle": "YEARLY", "due_date_type": "Date", "due_date": 5}]`
	_, err := Decode([]byte(input))

	var mde *MalformedDatePayloadError
	if !errors.As(err, &mde) {
		t.Fatalf("err = %v, want MalformedDatePayloadError", err)
	}
}

func TestDecode_AllOrNothing(t *testing.T) {
	// One bad record rejects the whole batch.
	input := `[
	  {"name": "ok", "amount": 1, "cycle": "DAILY", "due_date_type": "Daily"},
	  {"name": "bad", "cycle": "DAILY", "due_date_type": "Daily"}
	]`
	items, err := Decode([]byte(input))
	if err == nil {
		t.Fatal("expected error for batch with bad record")
	}
	if items != nil {
		t.Errorf("items = %v, want nil (no partial results)", items)
	}
}

func TestRoundTrip(t *testing.T) {
	items, err := Decode([]byte(validBudget))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}

	encoded, err := Encode(items)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	again, err := Decode(encoded)
	if err != nil {
		t.Fatalf("Decode(Encode(...)): %v", err)
	}

	if len(again) != len(items) {
		t.Fatalf("round trip item count = %d, want %d", len(again), len(items))
	}
	for i := range items {
		a, b := items[i], again[i]
		if a.Name != b.Name || a.Amount != b.Amount || a.Cycle != b.Cycle || a.Kind != b.Kind {
			t.Errorf("item %d: %+v != %+v", i, a, b)
		}
		if a.DayOfMonth != b.DayOfMonth || a.Weekday != b.Weekday || !a.DueDate.Equal(b.DueDate) {
			t.Errorf("item %d payload: %+v != %+v", i, a, b)
		}
	}
}

func TestEncode_DailyOmitsDueDate(t *testing.T) {
	item, err := model.NewItem("Food", -36, model.Daily, nil)
	if err != nil {
		t.Fatal(err)
	}
	data, err := Encode([]*model.BudgetItem{item})
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if strings.Contains(string(data), `"due_date"`) {
		t.Errorf("Daily record should omit due_date: %s", data)
	}
}

func TestExample_DecodableAfterEncode(t *testing.T) {
	data, err := Encode(Example())
	if err != nil {
		t.Fatalf("Encode(Example()): %v", err)
	}
	items, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if len(items) != len(Example()) {
		t.Errorf("decoded %d items, want %d", len(items), len(Example()))
	}
}

// FuzzDecode checks that arbitrary input never panics the decoder,
// since budget files are user-supplied.
func FuzzDecode(f *testing.F) {
	f.Add([]byte(validBudget))
	f.Add([]byte(`[]`))
	f.Add([]byte(`not json`))
	f.Add([]byte(`[{"name": null}]`))
	f.Add([]byte(`[{"name": "x", "amount": "NaN"}]`))
	f.Add([]byte(`[{"name": "x", "amount": 1, "cycle": "YEARLY", "due_date_type": "Date", "due_date": {}}]`))
	f.Add([]byte(``))

	f.Fuzz(func(t *testing.T, data []byte) {
		items, err := Decode(data)
		if err != nil && items != nil {
			t.Errorf("error with partial results: %v", err)
		}
	})
}
