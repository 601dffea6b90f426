package domain

import (
	"fmt"
	"time"
)

// DayLayout is the calendar-date key format used for active-day sets and
// week-grid matching.
const DayLayout = "2006-01-02"

// DayKeyUTC returns the UTC calendar date key for a timestamp.
func DayKeyUTC(t time.Time) string {
	return t.UTC().Format(DayLayout)
}

// ISOWeekOf returns the ISO 8601 year and week number of a timestamp.
// Standalone on purpose: grouping code must not hang helpers off a shared
// date type.
func ISOWeekOf(t time.Time) (year, week int) {
	return t.ISOWeek()
}

// WeekKey returns a sortable "YYYY-Www" key for the ISO week of t.
func WeekKey(t time.Time) string {
	year, week := ISOWeekOf(t)
	return fmt.Sprintf("%04d-W%02d", year, week)
}
