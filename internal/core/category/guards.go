// Package category contains the pure business logic for category operations.
// Guards are pure functions that evaluate preconditions without side effects.
package category

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

// colorPattern matches a 6-digit hex color like #3366FF.
var colorPattern = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// CleanName returns the category name with surrounding whitespace removed.
// Category names keep their internal separators and case; uniqueness is
// compared case-insensitively by the store.
func CleanName(name string) string {
	return strings.TrimSpace(name)
}

// ValidateName evaluates whether a category name is usable.
// Rules:
// - Name must be non-blank after trimming
func ValidateName(name string) GuardResult {
	if CleanName(name) == "" {
		return GuardResult{
			Allowed: false,
			Reason:  "category name must not be blank",
		}
	}

	return GuardResult{Allowed: true}
}

// ValidateColor evaluates whether a category color is usable.
// Rules:
// - Empty is allowed (color is optional)
// - Otherwise must be a 6-digit hex string in #RRGGBB form
func ValidateColor(color string) GuardResult {
	if color == "" {
		return GuardResult{Allowed: true}
	}

	if !colorPattern.MatchString(color) {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("invalid color '%s': expected #RRGGBB", color),
		}
	}

	return GuardResult{Allowed: true}
}

// DeleteContext provides context for category deletion guards.
type DeleteContext struct {
	CategoryID    string
	ActivityCount int
}

// CanDelete evaluates whether a category can be deleted.
// Rules:
// - No activity may still reference the category (the reference is
//   non-cascading; tags and their associations cascade instead)
func CanDelete(ctx DeleteContext) GuardResult {
	if ctx.ActivityCount > 0 {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("category %s is referenced by %d activities", ctx.CategoryID, ctx.ActivityCount),
		}
	}

	return GuardResult{Allowed: true}
}
