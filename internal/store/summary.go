package store

import (
	"context"
	"database/sql"
	"fmt"
	"sort"
)

// ContactSummary is one row of the cross-date summary view.
type ContactSummary struct {
	ID             int64  `json:"id"`
	Name           string `json:"name"`
	AddedDate      string `json:"added_date"`
	LatestOutcome  string `json:"latest_outcome,omitempty"`
	LastCalledDate string `json:"last_called_date,omitempty"`
	DNPCount       int    `json:"dnp_count"`
	DisplayOutcome string `json:"display_outcome"`
}

// SummaryStore defines the interface for the cross-date contact summary.
type SummaryStore interface {
	All(ctx context.Context, filters []string) ([]ContactSummary, error)
	History(ctx context.Context, name string) ([]Call, error)
}

// SQLiteSummaryStore implements SummaryStore backed by SQLite.
type SQLiteSummaryStore struct {
	db *sql.DB
}

// NewSQLiteSummaryStore creates a new SQLiteSummaryStore.
func NewSQLiteSummaryStore(db *sql.DB) *SQLiteSummaryStore {
	return &SQLiteSummaryStore{db: db}
}

// summaryCallAgg holds the per-name reduction over all calls: the most recent
// call by (date, created_at, id) and the all-time DNP count.
type summaryCallAgg struct {
	latest   Call
	dnpCount int
}

// All returns one summary row per distinct contact name. The representative
// contact row per name is the first-inserted one, so ids stay stable as a
// contact gets re-added to later days. With a non-empty filter set, only rows
// whose display outcome is in the set are returned.
func (s *SQLiteSummaryStore) All(ctx context.Context, filters []string) ([]ContactSummary, error) {
	agg, err := s.aggregateCalls(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `SELECT id, name, date FROM contacts ORDER BY id ASC`)
	if err != nil {
		return nil, fmt.Errorf("load contacts: %w", err)
	}
	defer func() { _ = rows.Close() }()

	seen := map[string]bool{}
	var result []ContactSummary
	for rows.Next() {
		var id int64
		var name, date string
		if err := rows.Scan(&id, &name, &date); err != nil {
			return nil, fmt.Errorf("scan contact: %w", err)
		}
		if seen[name] {
			continue
		}
		seen[name] = true

		row := ContactSummary{
			ID:             id,
			Name:           name,
			AddedDate:      date,
			DisplayOutcome: OutcomeUnattempted,
		}
		if a, ok := agg[name]; ok {
			row.LatestOutcome = a.latest.Outcome
			row.LastCalledDate = a.latest.Date
			row.DNPCount = a.dnpCount
			row.DisplayOutcome = a.latest.Outcome
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration: %w", err)
	}

	// Un-attempted rows sort last; attempted rows by most recent call first,
	// ties by name.
	sort.SliceStable(result, func(i, j int) bool {
		ui := result[i].LatestOutcome == ""
		uj := result[j].LatestOutcome == ""
		if ui != uj {
			return uj
		}
		if result[i].LastCalledDate != result[j].LastCalledDate {
			return result[i].LastCalledDate > result[j].LastCalledDate
		}
		return result[i].Name < result[j].Name
	})

	if len(filters) == 0 {
		return result, nil
	}

	keep := map[string]bool{}
	for _, f := range filters {
		keep[f] = true
	}
	filtered := make([]ContactSummary, 0, len(result))
	for _, row := range result {
		if keep[row.DisplayOutcome] {
			filtered = append(filtered, row)
		}
	}
	return filtered, nil
}

// History returns all calls ever logged against a name, newest first.
func (s *SQLiteSummaryStore) History(ctx context.Context, name string) ([]Call, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, outcome, date, created_at FROM calls
		 WHERE name = ? ORDER BY date DESC, created_at DESC, id DESC`, name,
	)
	if err != nil {
		return nil, fmt.Errorf("call history: %w", err)
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

func (s *SQLiteSummaryStore) aggregateCalls(ctx context.Context) (map[string]*summaryCallAgg, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, name, outcome, date, created_at FROM calls`)
	if err != nil {
		return nil, fmt.Errorf("load calls: %w", err)
	}
	defer func() { _ = rows.Close() }()

	agg := map[string]*summaryCallAgg{}
	for rows.Next() {
		var c Call
		if err := rows.Scan(&c.ID, &c.Name, &c.Outcome, &c.Date, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan call: %w", err)
		}

		a, ok := agg[c.Name]
		if !ok {
			a = &summaryCallAgg{latest: c}
			agg[c.Name] = a
		} else if laterCall(c, a.latest) {
			a.latest = c
		}
		if c.Outcome == OutcomeDNP {
			a.dnpCount++
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration: %w", err)
	}
	return agg, nil
}
