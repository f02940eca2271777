package model

import "fmt"

// InvalidDueDateError reports a due-date value whose type (or value)
// matches none of the supported due-date kinds.
type InvalidDueDateError struct {
	Name  string // item name, when known
	Value any
}

func (e *InvalidDueDateError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("item %q: unsupported due_date value %v (%T)", e.Name, e.Value, e.Value)
	}
	return fmt.Sprintf("unsupported due_date value %v (%T)", e.Value, e.Value)
}
