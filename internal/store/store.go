package store

import "database/sql"

// Store holds all sub-stores used by the application.
type Store struct {
	DB       *sql.DB
	Targets  TargetStore
	Calls    CallStore
	Contacts ContactStore
	Summary  SummaryStore
}

// New creates a Store with all sub-stores initialized.
func New(db *sql.DB) *Store {
	return &Store{
		DB:       db,
		Targets:  NewSQLiteTargetStore(db),
		Calls:    NewSQLiteCallStore(db),
		Contacts: NewSQLiteContactStore(db),
		Summary:  NewSQLiteSummaryStore(db),
	}
}
