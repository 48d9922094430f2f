package primary

import "errors"

// Error taxonomy for all store operations. Services and the SQLite
// adapters both classify failures onto these sentinels, so callers can
// branch with errors.Is regardless of which layer caught the problem.
var (
	// ErrValidation marks malformed input: blank names, bad color
	// format, non-positive time ranges.
	ErrValidation = errors.New("validation failed")

	// ErrConflict marks uniqueness violations and deletions blocked by
	// a non-cascading reference.
	ErrConflict = errors.New("conflict")

	// ErrNotFound marks a referenced category, tag or activity ID that
	// does not exist.
	ErrNotFound = errors.New("not found")
)
