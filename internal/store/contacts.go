package store

import (
	"context"
	"database/sql"
	"fmt"
	"sort"
	"strings"
)

// Contact represents a name registered for a specific day's call list.
type Contact struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Date      string `json:"date"`
	CreatedAt string `json:"created_at"`
}

// ContactRef is a minimal contact listing entry.
type ContactRef struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// DayContact is one entry in a day's resolved call list.
type DayContact struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	AddedDate    string `json:"added_date"`
	HasCallToday bool   `json:"has_call_today"`
}

// ContactStore defines the interface for contact persistence and the
// carry-forward resolution for a day's call list.
type ContactStore interface {
	Add(ctx context.Context, name, date string, skipGlobalCheck bool) (int64, error)
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]ContactRef, error)
	Names(ctx context.Context, date string) (map[string]struct{}, error)
	ForDate(ctx context.Context, date string) ([]DayContact, error)
}

// SQLiteContactStore implements ContactStore backed by SQLite.
type SQLiteContactStore struct {
	db *sql.DB
}

// NewSQLiteContactStore creates a new SQLiteContactStore.
func NewSQLiteContactStore(db *sql.DB) *SQLiteContactStore {
	return &SQLiteContactStore{db: db}
}

// Add inserts a contact for a date. Existence checks are case-insensitive but
// the given casing is stored. The per-date check always runs; the any-date
// check runs unless skipGlobalCheck is set (re-adding a known contact to a new
// day's list). Check and insert share one transaction so concurrent adds
// cannot both pass the check; the UNIQUE(name, date) constraint backstops it.
func (s *SQLiteContactStore) Add(ctx context.Context, name, date string, skipGlobalCheck bool) (int64, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin add contact: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var one int
	err = tx.QueryRowContext(ctx,
		`SELECT 1 FROM contacts WHERE LOWER(name) = LOWER(?) AND date = ?`, name, date,
	).Scan(&one)
	if err == nil {
		return 0, fmt.Errorf("contact %q already in list for %s: %w", name, date, ErrDuplicate)
	}
	if err != sql.ErrNoRows {
		return 0, fmt.Errorf("check contact for date: %w", err)
	}

	if !skipGlobalCheck {
		err = tx.QueryRowContext(ctx,
			`SELECT 1 FROM contacts WHERE LOWER(name) = LOWER(?)`, name,
		).Scan(&one)
		if err == nil {
			return 0, fmt.Errorf("contact %q already exists: %w", name, ErrDuplicate)
		}
		if err != sql.ErrNoRows {
			return 0, fmt.Errorf("check contact anywhere: %w", err)
		}
	}

	res, err := tx.ExecContext(ctx,
		`INSERT INTO contacts (name, date, created_at) VALUES (?, ?, ?)`,
		name, date, now(),
	)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return 0, fmt.Errorf("contact %q already in list for %s: %w", name, date, ErrDuplicate)
		}
		return 0, fmt.Errorf("insert contact: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("last insert id: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit add contact: %w", err)
	}
	return id, nil
}

// Delete removes a contact by id.
func (s *SQLiteContactStore) Delete(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM contacts WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete contact: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("contact %d: %w", id, ErrNotFound)
	}
	return nil
}

// List returns all contact rows ordered by name.
func (s *SQLiteContactStore) List(ctx context.Context) ([]ContactRef, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, name FROM contacts ORDER BY name ASC, id ASC`)
	if err != nil {
		return nil, fmt.Errorf("list contacts: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var refs []ContactRef
	for rows.Next() {
		var ref ContactRef
		if err := rows.Scan(&ref.ID, &ref.Name); err != nil {
			return nil, fmt.Errorf("scan contact: %w", err)
		}
		refs = append(refs, ref)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration: %w", err)
	}
	return refs, nil
}

// Names returns the set of contact names registered on a date.
func (s *SQLiteContactStore) Names(ctx context.Context, date string) (map[string]struct{}, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT name FROM contacts WHERE date = ?`, date)
	if err != nil {
		return nil, fmt.Errorf("contact names: %w", err)
	}
	defer func() { _ = rows.Close() }()

	names := map[string]struct{}{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scan name: %w", err)
		}
		names[name] = struct{}{}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration: %w", err)
	}
	return names, nil
}

// dayCallAgg is the per-name call aggregate ForDate needs to apply the
// carry-forward rules.
type dayCallAgg struct {
	latest      Call
	hasOnTarget bool
}

// ForDate resolves the deduplicated call list for a date.
//
// A contact row is included when it was registered on the date itself, or it
// was registered earlier and either was never called, or its most recent call
// anywhere is DNP, or it has a call logged on the date. Included rows are then
// grouped by exact name. The latest-call lookup is a per-name reduction in Go
// rather than a windowed query, keeping the logic portable across stores.
func (s *SQLiteContactStore) ForDate(ctx context.Context, date string) ([]DayContact, error) {
	agg, err := aggregateDayCalls(ctx, s.db, date)
	if err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, date, created_at FROM contacts ORDER BY id ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("load contacts: %w", err)
	}
	defer func() { _ = rows.Close() }()

	type group struct {
		id         int64
		name       string
		addedDate  string
		minCreated string
	}
	groups := map[string]*group{}
	var order []string

	for rows.Next() {
		var c Contact
		if err := rows.Scan(&c.ID, &c.Name, &c.Date, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan contact: %w", err)
		}

		a := agg[c.Name]
		include := false
		switch {
		case c.Date == date:
			include = true
		case c.Date < date && a == nil:
			// Registered earlier, never attempted.
			include = true
		case c.Date < date && a.latest.Outcome == OutcomeDNP:
			include = true
		case c.Date < date && a.hasOnTarget:
			include = true
		}
		if !include {
			continue
		}

		g, ok := groups[c.Name]
		if !ok {
			groups[c.Name] = &group{id: c.ID, name: c.Name, addedDate: c.Date, minCreated: c.CreatedAt}
			order = append(order, c.Name)
			continue
		}
		// Deterministic representative: max registration date, ties by max id.
		if c.Date > g.addedDate || (c.Date == g.addedDate && c.ID > g.id) {
			g.id = c.ID
			g.addedDate = c.Date
		}
		if c.CreatedAt < g.minCreated {
			g.minCreated = c.CreatedAt
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration: %w", err)
	}

	result := make([]DayContact, 0, len(order))
	for _, name := range order {
		g := groups[name]
		a := agg[name]
		result = append(result, DayContact{
			ID:           g.id,
			Name:         g.name,
			AddedDate:    g.addedDate,
			HasCallToday: a != nil && a.hasOnTarget,
		})
	}

	minCreated := func(name string) string { return groups[name].minCreated }
	sort.SliceStable(result, func(i, j int) bool {
		if result[i].HasCallToday != result[j].HasCallToday {
			return result[i].HasCallToday
		}
		ci, cj := minCreated(result[i].Name), minCreated(result[j].Name)
		if ci != cj {
			return ci < cj
		}
		return result[i].Name < result[j].Name
	})

	return result, nil
}

// aggregateDayCalls reduces the calls table to the per-name facts the
// carry-forward rules depend on: the most recent call (max date, created_at,
// id) and whether any call exists on targetDate.
func aggregateDayCalls(ctx context.Context, db *sql.DB, targetDate string) (map[string]*dayCallAgg, error) {
	rows, err := db.QueryContext(ctx, `SELECT id, name, outcome, date, created_at FROM calls`)
	if err != nil {
		return nil, fmt.Errorf("load calls: %w", err)
	}
	defer func() { _ = rows.Close() }()

	agg := map[string]*dayCallAgg{}
	for rows.Next() {
		var c Call
		if err := rows.Scan(&c.ID, &c.Name, &c.Outcome, &c.Date, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan call: %w", err)
		}

		a, ok := agg[c.Name]
		if !ok {
			a = &dayCallAgg{latest: c}
			agg[c.Name] = a
		} else if laterCall(c, a.latest) {
			a.latest = c
		}
		if c.Date == targetDate {
			a.hasOnTarget = true
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration: %w", err)
	}
	return agg, nil
}

// laterCall reports whether a is more recent than b by (date, created_at, id).
func laterCall(a, b Call) bool {
	if a.Date != b.Date {
		return a.Date > b.Date
	}
	if a.CreatedAt != b.CreatedAt {
		return a.CreatedAt > b.CreatedAt
	}
	return a.ID > b.ID
}
