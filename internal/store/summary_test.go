package store_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/Venkatasai-102/agenda-tracker/internal/database"
	"github.com/Venkatasai-102/agenda-tracker/internal/store"
	"github.com/Venkatasai-102/agenda-tracker/internal/testhelpers"
)

var _ store.SummaryStore = (*store.SQLiteSummaryStore)(nil)

func setupSummaryStore(t *testing.T) (*store.SQLiteSummaryStore, *sql.DB) {
	t.Helper()
	db := testhelpers.NewTestDB(t)
	ctx := context.Background()

	if err := database.Migrate(ctx, db); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	return store.NewSQLiteSummaryStore(db), db
}

func TestSummaryUnattempted(t *testing.T) {
	s, db := setupSummaryStore(t)
	ctx := context.Background()

	seedContact(t, db, "Alice", "2024-01-15", "2024-01-15T09:00:00.000Z")

	rows, err := s.All(ctx, nil)
	if err != nil {
		t.Fatalf("all: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}

	row := rows[0]
	if row.LatestOutcome != "" {
		t.Errorf("latest outcome = %q, want empty", row.LatestOutcome)
	}
	if row.DisplayOutcome != store.OutcomeUnattempted {
		t.Errorf("display outcome = %q, want UN", row.DisplayOutcome)
	}
	if row.DNPCount != 0 {
		t.Errorf("dnp count = %d, want 0", row.DNPCount)
	}
}

func TestSummaryLatestOutcome(t *testing.T) {
	s, db := setupSummaryStore(t)
	ctx := context.Background()

	seedContact(t, db, "Alice", "2024-01-14", "2024-01-14T09:00:00.000Z")
	seedCall(t, db, "Alice", "A", "2024-01-14", "2024-01-14T10:00:00.000Z")
	seedCall(t, db, "Alice", "DNP", "2024-01-15", "2024-01-15T10:00:00.000Z")

	rows, err := s.All(ctx, nil)
	if err != nil {
		t.Fatalf("all: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}

	row := rows[0]
	if row.LatestOutcome != "DNP" {
		t.Errorf("latest outcome = %q, want DNP", row.LatestOutcome)
	}
	if row.LastCalledDate != "2024-01-15" {
		t.Errorf("last called = %q, want 2024-01-15", row.LastCalledDate)
	}
	if row.DisplayOutcome != "DNP" {
		t.Errorf("display outcome = %q, want DNP", row.DisplayOutcome)
	}
}

func TestSummaryDNPCountIndependentOfLatest(t *testing.T) {
	s, db := setupSummaryStore(t)
	ctx := context.Background()

	seedContact(t, db, "Alice", "2024-01-13", "2024-01-13T09:00:00.000Z")
	seedCall(t, db, "Alice", "DNP", "2024-01-13", "2024-01-13T10:00:00.000Z")
	seedCall(t, db, "Alice", "DNP", "2024-01-14", "2024-01-14T10:00:00.000Z")
	seedCall(t, db, "Alice", "A", "2024-01-15", "2024-01-15T10:00:00.000Z")

	rows, err := s.All(ctx, nil)
	if err != nil {
		t.Fatalf("all: %v", err)
	}

	row := rows[0]
	if row.LatestOutcome != "A" {
		t.Errorf("latest outcome = %q, want A", row.LatestOutcome)
	}
	if row.DNPCount != 2 {
		t.Errorf("dnp count = %d, want 2 (all DNP calls count regardless of latest)", row.DNPCount)
	}
}

func TestSummaryFilter(t *testing.T) {
	s, db := setupSummaryStore(t)
	ctx := context.Background()

	// Alice: latest DNP with two historical DNPs. Bob: latest A. Carol: never called.
	seedContact(t, db, "Alice", "2024-01-13", "2024-01-13T09:00:00.000Z")
	seedCall(t, db, "Alice", "DNP", "2024-01-13", "2024-01-13T10:00:00.000Z")
	seedCall(t, db, "Alice", "DNP", "2024-01-14", "2024-01-14T10:00:00.000Z")
	seedContact(t, db, "Bob", "2024-01-13", "2024-01-13T09:01:00.000Z")
	seedCall(t, db, "Bob", "A", "2024-01-14", "2024-01-14T11:00:00.000Z")
	seedContact(t, db, "Carol", "2024-01-13", "2024-01-13T09:02:00.000Z")

	rows, err := s.All(ctx, []string{"DNP"})
	if err != nil {
		t.Fatalf("all: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected only Alice, got %d rows", len(rows))
	}
	if rows[0].Name != "Alice" || rows[0].DNPCount != 2 {
		t.Errorf("row = %+v, want Alice with dnp count 2", rows[0])
	}

	// UN is a filterable sentinel.
	unRows, err := s.All(ctx, []string{store.OutcomeUnattempted})
	if err != nil {
		t.Fatalf("all UN: %v", err)
	}
	if len(unRows) != 1 || unRows[0].Name != "Carol" {
		t.Fatalf("UN filter = %+v, want only Carol", unRows)
	}

	// Empty filter keeps everything.
	all, err := s.All(ctx, nil)
	if err != nil {
		t.Fatalf("all unfiltered: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("expected 3 rows unfiltered, got %d", len(all))
	}
}

func TestSummaryOrdering(t *testing.T) {
	s, db := setupSummaryStore(t)
	ctx := context.Background()

	// Two attempted on different dates, two tied on the same date, one never.
	seedContact(t, db, "Old", "2024-01-10", "2024-01-10T09:00:00.000Z")
	seedCall(t, db, "Old", "A", "2024-01-11", "2024-01-11T10:00:00.000Z")
	seedContact(t, db, "Zara", "2024-01-10", "2024-01-10T09:01:00.000Z")
	seedCall(t, db, "Zara", "B", "2024-01-14", "2024-01-14T10:00:00.000Z")
	seedContact(t, db, "Ben", "2024-01-10", "2024-01-10T09:02:00.000Z")
	seedCall(t, db, "Ben", "DNP", "2024-01-14", "2024-01-14T11:00:00.000Z")
	seedContact(t, db, "Never", "2024-01-10", "2024-01-10T09:03:00.000Z")

	rows, err := s.All(ctx, nil)
	if err != nil {
		t.Fatalf("all: %v", err)
	}

	got := make([]string, len(rows))
	for i, r := range rows {
		got[i] = r.Name
	}
	// Most recent call first; 2024-01-14 tie broken by name; UN last.
	want := []string{"Ben", "Zara", "Old", "Never"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order = %v, want %v", got, want)
		}
	}
}

func TestSummaryStableIDAcrossReAdds(t *testing.T) {
	s, db := setupSummaryStore(t)
	ctx := context.Background()

	firstID := seedContact(t, db, "Alice", "2024-01-14", "2024-01-14T09:00:00.000Z")
	seedContact(t, db, "Alice", "2024-01-15", "2024-01-15T09:00:00.000Z")

	rows, err := s.All(ctx, nil)
	if err != nil {
		t.Fatalf("all: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected 1 deduplicated row, got %d", len(rows))
	}
	if rows[0].ID != firstID {
		t.Errorf("id = %d, want first-inserted row %d", rows[0].ID, firstID)
	}
	if rows[0].AddedDate != "2024-01-14" {
		t.Errorf("added date = %q, want 2024-01-14", rows[0].AddedDate)
	}
}

func TestHistory(t *testing.T) {
	s, db := setupSummaryStore(t)
	ctx := context.Background()

	seedCall(t, db, "Alice", "DNP", "2024-01-14", "2024-01-14T10:00:00.000Z")
	seedCall(t, db, "Alice", "A", "2024-01-15", "2024-01-15T10:00:00.000Z")
	seedCall(t, db, "Bob", "B", "2024-01-15", "2024-01-15T11:00:00.000Z")

	calls, err := s.History(ctx, "Alice")
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(calls) != 2 {
		t.Fatalf("expected 2 calls, got %d", len(calls))
	}
	if calls[0].Outcome != "A" || calls[1].Outcome != "DNP" {
		t.Errorf("order = %s, %s; want newest first", calls[0].Outcome, calls[1].Outcome)
	}
}
