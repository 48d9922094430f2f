// Package cli implements the tlog command tree. Commands translate
// between the terminal and the primary ports; they hold no business
// logic of their own.
package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"
)

// FormatDuration renders whole minutes as "1h 30m", or "45m" under an
// hour. Zero renders as "0m".
func FormatDuration(minutes int) string {
	if minutes <= 0 {
		return "0m"
	}
	hours := minutes / 60
	mins := minutes % 60
	if hours == 0 {
		return fmt.Sprintf("%dm", mins)
	}
	return fmt.Sprintf("%dh %dm", hours, mins)
}

// FormatClock renders a timestamp as a compact 12-hour clock: "9:30am",
// "12:00pm".
func FormatClock(t time.Time) string {
	s := t.Format("3:04PM")
	return strings.ToLower(s)
}

// FormatDateShort renders "MM/DD" for dense listings.
func FormatDateShort(t time.Time) string {
	return t.Format("01/02")
}

// colorizeID renders an entity ID in cyan.
func colorizeID(id string) string {
	return color.New(color.FgCyan).Sprint(id)
}

// colorizeSwatch renders a block in the category's color, falling back
// to plain text when the hex value is absent or unparsable.
func colorizeSwatch(hex string) string {
	if len(hex) != 7 || hex[0] != '#' {
		return ""
	}
	var r, g, b int
	if _, err := fmt.Sscanf(hex[1:], "%02x%02x%02x", &r, &g, &b); err != nil {
		return ""
	}
	return color.RGB(r, g, b).Sprint("■")
}
