package store

import (
	"context"
	"database/sql"
	"fmt"
)

// Call represents a single call attempt against a contact name.
type Call struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Outcome   string `json:"outcome"`
	Date      string `json:"date"`
	CreatedAt string `json:"created_at"`
}

// Stats holds per-date call counts grouped by outcome. All outcome counters
// are present (zero-filled) whether or not any such call exists.
type Stats struct {
	A          int `json:"A"`
	B          int `json:"B"`
	C          int `json:"C"`
	NA         int `json:"NA"`
	DNP        int `json:"DNP"`
	CatchUp    int `json:"CATCHUP"`
	Total      int `json:"total"`
	Successful int `json:"successful"`
}

// CallStore defines the interface for call persistence and aggregation.
type CallStore interface {
	Add(ctx context.Context, name, outcome, date string) (int64, error)
	UpdateOutcome(ctx context.Context, id int64, outcome string) error
	Delete(ctx context.Context, id int64) error
	ListForDate(ctx context.Context, date string) ([]Call, error)
	StatsForDate(ctx context.Context, date string) (Stats, error)
	MonthAchievements(ctx context.Context, year, month int) (map[string]bool, error)
}

// SQLiteCallStore implements CallStore backed by SQLite.
type SQLiteCallStore struct {
	db *sql.DB
}

// NewSQLiteCallStore creates a new SQLiteCallStore.
func NewSQLiteCallStore(db *sql.DB) *SQLiteCallStore {
	return &SQLiteCallStore{db: db}
}

// Add inserts a new call and returns its id.
func (s *SQLiteCallStore) Add(ctx context.Context, name, outcome, date string) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO calls (name, outcome, date, created_at) VALUES (?, ?, ?, ?)`,
		name, outcome, date, now(),
	)
	if err != nil {
		return 0, fmt.Errorf("insert call: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("last insert id: %w", err)
	}
	return id, nil
}

// UpdateOutcome changes the outcome of an existing call.
func (s *SQLiteCallStore) UpdateOutcome(ctx context.Context, id int64, outcome string) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE calls SET outcome = ? WHERE id = ?`, outcome, id,
	)
	if err != nil {
		return fmt.Errorf("update call: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("call %d: %w", id, ErrNotFound)
	}
	return nil
}

// Delete removes a call by id.
func (s *SQLiteCallStore) Delete(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM calls WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete call: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("call %d: %w", id, ErrNotFound)
	}
	return nil
}

// ListForDate returns all calls for a date, newest first.
func (s *SQLiteCallStore) ListForDate(ctx context.Context, date string) ([]Call, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, outcome, date, created_at FROM calls
		 WHERE date = ? ORDER BY created_at DESC, id DESC`, date,
	)
	if err != nil {
		return nil, fmt.Errorf("list calls: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var calls []Call
	for rows.Next() {
		var c Call
		if err := rows.Scan(&c.ID, &c.Name, &c.Outcome, &c.Date, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan call: %w", err)
		}
		calls = append(calls, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration: %w", err)
	}
	return calls, nil
}

// StatsForDate returns call counts for a date grouped by outcome.
func (s *SQLiteCallStore) StatsForDate(ctx context.Context, date string) (Stats, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT outcome, COUNT(*) FROM calls WHERE date = ? GROUP BY outcome`, date,
	)
	if err != nil {
		return Stats{}, fmt.Errorf("stats for date: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var stats Stats
	for rows.Next() {
		var outcome string
		var count int
		if err := rows.Scan(&outcome, &count); err != nil {
			return Stats{}, fmt.Errorf("scan stats: %w", err)
		}

		switch outcome {
		case OutcomeA:
			stats.A = count
		case OutcomeB:
			stats.B = count
		case OutcomeC:
			stats.C = count
		case OutcomeNA:
			stats.NA = count
		case OutcomeDNP:
			stats.DNP = count
		case OutcomeCatchUp:
			stats.CatchUp = count
		}
		stats.Total += count
		if successful(outcome) {
			stats.Successful += count
		}
	}
	if err := rows.Err(); err != nil {
		return Stats{}, fmt.Errorf("rows iteration: %w", err)
	}
	return stats, nil
}

// MonthAchievements reports, for each date in the month that has a target,
// whether the successful call count reached it. Dates without a target row
// produce no entry.
func (s *SQLiteCallStore) MonthAchievements(ctx context.Context, year, month int) (map[string]bool, error) {
	start := fmt.Sprintf("%04d-%02d-01", year, month)
	var end string
	if month == 12 {
		end = fmt.Sprintf("%04d-01-01", year+1)
	} else {
		end = fmt.Sprintf("%04d-%02d-01", year, month+1)
	}

	targets := map[string]int{}
	rows, err := s.db.QueryContext(ctx,
		`SELECT date, target FROM daily_targets WHERE date >= ? AND date < ?`, start, end,
	)
	if err != nil {
		return nil, fmt.Errorf("month targets: %w", err)
	}
	defer func() { _ = rows.Close() }()
	for rows.Next() {
		var date string
		var target int
		if err := rows.Scan(&date, &target); err != nil {
			return nil, fmt.Errorf("scan target: %w", err)
		}
		targets[date] = target
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration: %w", err)
	}

	counts := map[string]int{}
	rows2, err := s.db.QueryContext(ctx,
		`SELECT date, COUNT(*) FROM calls
		 WHERE date >= ? AND date < ? AND outcome IN ('A', 'B', 'C')
		 GROUP BY date`, start, end,
	)
	if err != nil {
		return nil, fmt.Errorf("month successful counts: %w", err)
	}
	defer func() { _ = rows2.Close() }()
	for rows2.Next() {
		var date string
		var count int
		if err := rows2.Scan(&date, &count); err != nil {
			return nil, fmt.Errorf("scan count: %w", err)
		}
		counts[date] = count
	}
	if err := rows2.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration: %w", err)
	}

	achievements := make(map[string]bool, len(targets))
	for date, target := range targets {
		achievements[date] = counts[date] >= target
	}
	return achievements, nil
}
