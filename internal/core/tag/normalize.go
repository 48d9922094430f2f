// Package tag contains the pure business logic for tag operations.
package tag

import (
	"fmt"
	"regexp"
	"strings"
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

// separatorRuns matches every run of hyphens, underscores and whitespace.
var separatorRuns = regexp.MustCompile(`[-_\s]+`)

// Normalize returns the canonical form of a tag name. The canonical
// separator is a single space: "Deep-Work", "deep_work" and " Deep  Work "
// all normalize to "deep work". Applied before every tag create, rename
// and lookup so the normalized form is the only one ever stored.
func Normalize(name string) string {
	s := separatorRuns.ReplaceAllString(name, " ")
	s = strings.TrimSpace(s)
	return strings.ToLower(s)
}

// ValidateName evaluates whether a normalized tag name is usable.
// Rules:
// - Name must be non-blank after normalization
func ValidateName(normalized string) GuardResult {
	if normalized == "" {
		return GuardResult{
			Allowed: false,
			Reason:  "tag name must not be blank",
		}
	}

	return GuardResult{Allowed: true}
}
