// Package store provides a SQLite-backed home for imported budget items.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"cashcast/internal/model"

	_ "modernc.org/sqlite" // register sqlite driver
)

// Store holds the budget item database.
type Store struct {
	db *sql.DB
}

// DefaultPath returns the XDG-compliant database location.
func DefaultPath() string {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "cashcast", "budget.db")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "share", "cashcast", "budget.db")
}

// Open opens or creates the item database at the given path.
func Open(dbPath string) (*Store, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)")
	if err != nil {
		return nil, fmt.Errorf("opening item db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Replace swaps the stored item set for the given one. Positions
// preserve the original ordering so forecasts replay items in import
// order.
func (s *Store) Replace(items []*model.BudgetItem) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec("DELETE FROM items"); err != nil {
		return err
	}

	now := time.Now().UTC().Format(time.RFC3339)
	for i, item := range items {
		var dayOfMonth sql.NullInt64
		var weekday, dueDate sql.NullString

		switch item.Kind {
		case model.KindDateNumber:
			dayOfMonth = sql.NullInt64{Int64: int64(item.DayOfMonth), Valid: true}
		case model.KindWeekDay:
			weekday = sql.NullString{String: item.Weekday.String(), Valid: true}
		case model.KindDate:
			dueDate = sql.NullString{String: item.DueDate.Format("2006-01-02"), Valid: true}
		}

		_, err := tx.Exec(`INSERT INTO items
			(position, name, amount, cycle, due_date_type, day_of_month, weekday, due_date, imported_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			i, item.Name, item.Amount, item.Cycle.String(), item.Kind.String(),
			dayOfMonth, weekday, dueDate, now,
		)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

// LoadAll reads all stored items in import order.
func (s *Store) LoadAll() ([]*model.BudgetItem, error) {
	rows, err := s.db.Query(`SELECT name, amount, cycle, due_date_type, day_of_month, weekday, due_date
		FROM items ORDER BY position`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var items []*model.BudgetItem
	for rows.Next() {
		var name, cycleName, kindName string
		var amount float64
		var dayOfMonth sql.NullInt64
		var weekday, dueDate sql.NullString

		if err := rows.Scan(&name, &amount, &cycleName, &kindName, &dayOfMonth, &weekday, &dueDate); err != nil {
			return nil, err
		}

		cycle, ok := model.ParseCycle(cycleName)
		if !ok {
			return nil, fmt.Errorf("stored item %q has unknown cycle %q", name, cycleName)
		}
		kind, ok := model.ParseDueDateKind(kindName)
		if !ok {
			return nil, fmt.Errorf("stored item %q has unknown due_date_type %q", name, kindName)
		}

		var due any
		switch kind {
		case model.KindDateNumber:
			due = int(dayOfMonth.Int64)
		case model.KindWeekDay:
			wd, ok := model.ParseWeekday(weekday.String)
			if !ok {
				return nil, fmt.Errorf("stored item %q has unknown weekday %q", name, weekday.String)
			}
			due = wd
		case model.KindDate:
			d, err := time.Parse("2006-01-02", dueDate.String)
			if err != nil {
				return nil, fmt.Errorf("stored item %q has bad due date: %w", name, err)
			}
			due = d
		}

		item, err := model.NewItem(name, amount, cycle, due)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// Count returns the number of stored items.
func (s *Store) Count() (int, error) {
	var count int
	err := s.db.QueryRow("SELECT COUNT(*) FROM items").Scan(&count)
	return count, err
}
