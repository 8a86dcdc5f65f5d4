package store

import (
	"context"
	"database/sql"
	"fmt"
)

// TargetStore defines the interface for daily target persistence.
type TargetStore interface {
	Set(ctx context.Context, date string, target int) error
	Get(ctx context.Context, date string) (int, bool, error)
}

// SQLiteTargetStore implements TargetStore backed by SQLite.
type SQLiteTargetStore struct {
	db *sql.DB
}

// NewSQLiteTargetStore creates a new SQLiteTargetStore.
func NewSQLiteTargetStore(db *sql.DB) *SQLiteTargetStore {
	return &SQLiteTargetStore{db: db}
}

// Set upserts the target for a date. The latest set wins.
func (s *SQLiteTargetStore) Set(ctx context.Context, date string, target int) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO daily_targets (date, target) VALUES (?, ?)
		 ON CONFLICT(date) DO UPDATE SET target = excluded.target`,
		date, target,
	)
	if err != nil {
		return fmt.Errorf("set target: %w", err)
	}
	return nil
}

// Get returns the target for a date and whether one has been set.
func (s *SQLiteTargetStore) Get(ctx context.Context, date string) (int, bool, error) {
	var target int
	err := s.db.QueryRowContext(ctx,
		`SELECT target FROM daily_targets WHERE date = ?`, date,
	).Scan(&target)
	if err != nil {
		if err == sql.ErrNoRows {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("get target: %w", err)
	}
	return target, true, nil
}
