package store_test

import (
	"context"
	"testing"

	"github.com/Venkatasai-102/agenda-tracker/internal/database"
	"github.com/Venkatasai-102/agenda-tracker/internal/store"
	"github.com/Venkatasai-102/agenda-tracker/internal/testhelpers"
)

var _ store.TargetStore = (*store.SQLiteTargetStore)(nil)

func setupTargetStore(t *testing.T) *store.SQLiteTargetStore {
	t.Helper()
	db := testhelpers.NewTestDB(t)
	ctx := context.Background()

	if err := database.Migrate(ctx, db); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	return store.NewSQLiteTargetStore(db)
}

func TestTargetSetAndGet(t *testing.T) {
	s := setupTargetStore(t)
	ctx := context.Background()

	if err := s.Set(ctx, "2024-01-15", 5); err != nil {
		t.Fatalf("set: %v", err)
	}

	target, ok, err := s.Get(ctx, "2024-01-15")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !ok {
		t.Fatal("expected a target to exist")
	}
	if target != 5 {
		t.Errorf("target = %d, want 5", target)
	}
}

func TestTargetUpsert(t *testing.T) {
	s := setupTargetStore(t)
	ctx := context.Background()

	if err := s.Set(ctx, "2024-01-15", 5); err != nil {
		t.Fatalf("first set: %v", err)
	}
	if err := s.Set(ctx, "2024-01-15", 8); err != nil {
		t.Fatalf("second set: %v", err)
	}

	target, ok, err := s.Get(ctx, "2024-01-15")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !ok {
		t.Fatal("expected a target to exist")
	}
	if target != 8 {
		t.Errorf("target = %d, want 8 (latest set wins)", target)
	}
}

func TestTargetGetUnset(t *testing.T) {
	s := setupTargetStore(t)
	ctx := context.Background()

	_, ok, err := s.Get(ctx, "2024-01-15")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if ok {
		t.Error("expected no target for unset date")
	}
}
