package store

import "fmt"

// ErrNotFound is returned when an id has no matching row.
var ErrNotFound = fmt.Errorf("not found")

// ErrDuplicate is returned when a contact name already exists in the checked
// scope (per-date always, any-date unless the caller skips the global check).
var ErrDuplicate = fmt.Errorf("duplicate contact")
