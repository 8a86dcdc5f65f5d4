package database

// migrations is an ordered list of SQL migration groups. Each entry is a slice
// of SQL statements that are executed together in a single transaction. The
// version number is the 1-based index into this slice.
var migrations = [][]string{
	// Migration 1: all core tables
	{
		`CREATE TABLE daily_targets (
			date TEXT PRIMARY KEY,
			target INTEGER NOT NULL
		)`,

		// CATCHUP is a legacy outcome: still valid in storage, never written
		// by any current code path.
		`CREATE TABLE calls (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			outcome TEXT NOT NULL CHECK(outcome IN ('A', 'B', 'C', 'NA', 'DNP', 'CATCHUP')),
			date TEXT NOT NULL,
			created_at TEXT NOT NULL
		)`,
		`CREATE INDEX idx_calls_date ON calls(date)`,
		`CREATE INDEX idx_calls_name ON calls(name, date)`,

		`CREATE TABLE contacts (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			date TEXT NOT NULL,
			created_at TEXT NOT NULL,
			UNIQUE(name, date)
		)`,
		`CREATE INDEX idx_contacts_date ON contacts(date)`,
	},
}
