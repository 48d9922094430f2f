package cli

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// clockPattern matches "9:30", "09:30", "9:30am", "9:30 pm", "14:30".
var clockPattern = regexp.MustCompile(`^(\d{1,2}):(\d{2})\s*(am|pm)?$`)

// ParseClock parses a wall-clock string onto the given base date.
// Accepted forms:
//   - "9:30" or "09:30" (no am/pm defaults to AM; "14:30" is 24-hour)
//   - "9:30am", "9:30 am", "2:00pm", "2:00 pm"
//   - "12:00pm" is noon, "12:00am" is midnight
func ParseClock(value string, baseDate time.Time) (time.Time, error) {
	match := clockPattern.FindStringSubmatch(strings.ToLower(strings.TrimSpace(value)))
	if match == nil {
		return time.Time{}, fmt.Errorf("invalid time %q: expected HH:MM with optional am/pm", value)
	}

	hour, _ := strconv.Atoi(match[1])
	minute, _ := strconv.Atoi(match[2])
	period := match[3]

	if minute > 59 {
		return time.Time{}, fmt.Errorf("invalid time %q: minute out of range", value)
	}

	switch period {
	case "pm":
		if hour != 12 {
			hour += 12
		}
	case "am":
		if hour == 12 {
			hour = 0
		}
	}
	if hour > 23 {
		return time.Time{}, fmt.Errorf("invalid time %q: hour out of range", value)
	}

	return time.Date(baseDate.Year(), baseDate.Month(), baseDate.Day(),
		hour, minute, 0, 0, baseDate.Location()), nil
}

// ParseDate parses a date flag. Accepts "today", "yesterday" and
// "YYYY-MM-DD"; empty means today.
func ParseDate(value string, now time.Time) (time.Time, error) {
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "today":
		return day, nil
	case "yesterday":
		return day.AddDate(0, 0, -1), nil
	}

	parsed, err := time.ParseInLocation("2006-01-02", value, now.Location())
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD, today or yesterday", value)
	}
	return parsed, nil
}

// weekStartOf returns the most recent week boundary at or before day.
func weekStartOf(day time.Time, weekStart string) time.Time {
	target := time.Monday
	if weekStart == "sunday" {
		target = time.Sunday
	}
	for day.Weekday() != target {
		day = day.AddDate(0, 0, -1)
	}
	return day
}
