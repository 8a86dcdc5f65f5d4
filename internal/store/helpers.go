package store

import "time"

// now returns the current UTC time as a lexicographically sortable timestamp.
// Same-day call ordering relies on string comparison of these values.
func now() string {
	return time.Now().UTC().Format("2006-01-02T15:04:05.000Z")
}

// Today returns the current calendar day in the server's local timezone as an
// ISO-8601 date. Computed at call time, never cached.
func Today() string {
	return time.Now().Format("2006-01-02")
}

// Call outcomes. CatchUp is legacy: valid in storage, never written by any
// current operation.
const (
	OutcomeA       = "A"
	OutcomeB       = "B"
	OutcomeC       = "C"
	OutcomeNA      = "NA"
	OutcomeDNP     = "DNP"
	OutcomeCatchUp = "CATCHUP"

	// OutcomeUnattempted is the summary sentinel for a contact with no calls.
	OutcomeUnattempted = "UN"
)

// ValidOutcome reports whether outcome may be written to a new or updated
// call. CATCHUP is deliberately excluded.
func ValidOutcome(outcome string) bool {
	switch outcome {
	case OutcomeA, OutcomeB, OutcomeC, OutcomeNA, OutcomeDNP:
		return true
	}
	return false
}

// successful reports whether an outcome counts toward the daily target.
func successful(outcome string) bool {
	return outcome == OutcomeA || outcome == OutcomeB || outcome == OutcomeC
}
