// Package activity contains the pure business logic for activity operations.
// Guards are pure functions that evaluate preconditions without side effects.
package activity

import (
	"fmt"
	"time"
)

// GuardResult represents the outcome of a guard evaluation.
type GuardResult struct {
	Allowed bool
	Reason  string
}

// Error converts the guard result to an error if not allowed.
func (r GuardResult) Error() error {
	if r.Allowed {
		return nil
	}
	return fmt.Errorf("%s", r.Reason)
}

// ValidateTimeRange evaluates whether an activity time range is usable.
// Rules:
// - End must be strictly after start (zero-length activities are invalid)
func ValidateTimeRange(start, end time.Time) GuardResult {
	if !end.After(start) {
		return GuardResult{
			Allowed: false,
			Reason: fmt.Sprintf("end time %s must be after start time %s",
				end.Format(time.RFC3339), start.Format(time.RFC3339)),
		}
	}

	return GuardResult{Allowed: true}
}

// DurationMinutes returns the whole minutes between start and end,
// truncating partial minutes. Matches the duration_minutes column of
// activities_view.
func DurationMinutes(start, end time.Time) int {
	return int(end.Sub(start).Seconds()) / 60
}

// Overlaps reports whether the two half-open ranges [aStart, aEnd) and
// [bStart, bEnd) share any time. Back-to-back activities (one ending
// exactly when the next starts) do not overlap.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && aEnd.After(bStart)
}
