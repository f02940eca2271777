package budget

import (
	"fmt"
	"os"

	"cashcast/internal/model"
)

// LoadFile reads and decodes a budget JSON file.
func LoadFile(path string) ([]*model.BudgetItem, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading budget file: %w", err)
	}
	items, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	return items, nil
}

// WriteFile encodes items and writes them to path.
func WriteFile(path string, items []*model.BudgetItem) error {
	data, err := Encode(items)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o600); err != nil {
		return fmt.Errorf("writing budget file: %w", err)
	}
	return nil
}
