// Package budget converts budget items to and from their JSON record
// form and supplies the built-in example budget.
package budget

import (
	"encoding/json"
	"fmt"
	"time"

	"cashcast/internal/model"
)

// ItemRecord is the wire form of one budget item. Pointer fields
// distinguish "absent" from zero values during decode.
type ItemRecord struct {
	Name        *string         `json:"name"`
	Amount      *float64        `json:"amount"`
	Cycle       *string         `json:"cycle"`
	DueDateType *string         `json:"due_date_type"`
	DueDate     json.RawMessage `json:"due_date,omitempty"`
}

// datePayload is the {year, month, day} object carried by Date items.
type datePayload struct {
	Year  *int `json:"year"`
	Month *int `json:"month"`
	Day   *int `json:"day"`
}

// MissingFieldError reports a required key absent from a record.
type MissingFieldError struct {
	Field  string
	Record string // compact rendering of the offending record
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing field %q while parsing %s", e.Field, e.Record)
}

// UnknownEnumError reports a cycle or due_date_type name that matches
// no known variant.
type UnknownEnumError struct {
	Kind  string // "cycle" or "due_date_type"
	Value string
}

func (e *UnknownEnumError) Error() string {
	return fmt.Sprintf("unknown %s %q", e.Kind, e.Value)
}

// MalformedDatePayloadError reports a Date due_date whose payload is
// not a {year, month, day} object.
type MalformedDatePayloadError struct {
	Record string
}

func (e *MalformedDatePayloadError) Error() string {
	return fmt.Sprintf("due_date is not a {year, month, day} object while parsing %s", e.Record)
}

// Decode parses a JSON array of item records into budget items. The
// first invalid record aborts the whole batch; there are no partial
// results.
func Decode(data []byte) ([]*model.BudgetItem, error) {
	var records []ItemRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parsing budget: %w", err)
	}
	return decodeRecords(records)
}

func decodeRecords(records []ItemRecord) ([]*model.BudgetItem, error) {
	items := make([]*model.BudgetItem, 0, len(records))
	for _, rec := range records {
		item, err := decodeRecord(rec)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

func decodeRecord(rec ItemRecord) (*model.BudgetItem, error) {
	switch {
	case rec.Name == nil:
		return nil, &MissingFieldError{Field: "name", Record: renderRecord(rec)}
	case rec.Amount == nil:
		return nil, &MissingFieldError{Field: "amount", Record: renderRecord(rec)}
	case rec.Cycle == nil:
		return nil, &MissingFieldError{Field: "cycle", Record: renderRecord(rec)}
	case rec.DueDateType == nil:
		return nil, &MissingFieldError{Field: "due_date_type", Record: renderRecord(rec)}
	}

	cycle, ok := model.ParseCycle(*rec.Cycle)
	if !ok {
		return nil, &UnknownEnumError{Kind: "cycle", Value: *rec.Cycle}
	}
	kind, ok := model.ParseDueDateKind(*rec.DueDateType)
	if !ok {
		return nil, &UnknownEnumError{Kind: "due_date_type", Value: *rec.DueDateType}
	}

	if kind == model.KindDaily {
		return model.NewItem(*rec.Name, *rec.Amount, cycle, nil)
	}

	if len(rec.DueDate) == 0 {
		return nil, &MissingFieldError{Field: "due_date", Record: renderRecord(rec)}
	}

	switch kind {
	case model.KindDateNumber:
		var day int
		if err := json.Unmarshal(rec.DueDate, &day); err != nil {
			return nil, &model.InvalidDueDateError{Name: *rec.Name, Value: string(rec.DueDate)}
		}
		return model.NewItem(*rec.Name, *rec.Amount, cycle, day)

	case model.KindWeekDay:
		var name string
		if err := json.Unmarshal(rec.DueDate, &name); err != nil {
			return nil, &model.InvalidDueDateError{Name: *rec.Name, Value: string(rec.DueDate)}
		}
		wd, ok := model.ParseWeekday(name)
		if !ok {
			return nil, &model.InvalidDueDateError{Name: *rec.Name, Value: name}
		}
		return model.NewItem(*rec.Name, *rec.Amount, cycle, wd)

	default: // model.KindDate
		var p datePayload
		if err := json.Unmarshal(rec.DueDate, &p); err != nil {
			return nil, &MalformedDatePayloadError{Record: renderRecord(rec)}
		}
		switch {
		case p.Day == nil:
			return nil, &MissingFieldError{Field: "day", Record: renderRecord(rec)}
		case p.Month == nil:
			return nil, &MissingFieldError{Field: "month", Record: renderRecord(rec)}
		case p.Year == nil:
			return nil, &MissingFieldError{Field: "year", Record: renderRecord(rec)}
		}
		due := time.Date(*p.Year, time.Month(*p.Month), *p.Day, 0, 0, 0, 0, time.UTC)
		return model.NewItem(*rec.Name, *rec.Amount, cycle, due)
	}
}

// Encode renders budget items as a JSON array of item records.
func Encode(items []*model.BudgetItem) ([]byte, error) {
	records := make([]ItemRecord, 0, len(items))
	for _, item := range items {
		rec, err := encodeItem(item)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return json.MarshalIndent(records, "", "  ")
}

func encodeItem(item *model.BudgetItem) (ItemRecord, error) {
	name := item.Name
	amount := item.Amount
	cycle := item.Cycle.String()
	kind := item.Kind.String()
	rec := ItemRecord{Name: &name, Amount: &amount, Cycle: &cycle, DueDateType: &kind}

	var payload any
	switch item.Kind {
	case model.KindDateNumber:
		payload = item.DayOfMonth
	case model.KindWeekDay:
		payload = item.Weekday.String()
	case model.KindDate:
		payload = map[string]int{
			"year":  item.DueDate.Year(),
			"month": int(item.DueDate.Month()),
			"day":   item.DueDate.Day(),
		}
	case model.KindDaily:
		return rec, nil
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return rec, fmt.Errorf("encoding due_date for %q: %w", item.Name, err)
	}
	rec.DueDate = raw
	return rec, nil
}

// renderRecord gives a compact one-line rendering of a record for
// error messages.
func renderRecord(rec ItemRecord) string {
	raw, err := json.Marshal(rec)
	if err != nil {
		return "<unprintable record>"
	}
	return string(raw)
}
