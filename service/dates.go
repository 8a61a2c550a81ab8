package service

import "time"

// DateOnly truncates a timestamp to its calendar date in UTC. Every date
// column in the store is written through this, so equality filters work
// across drivers.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// calendarDaysUntil returns the whole calendar days from a to b, ignoring
// time of day.
func calendarDaysUntil(a, b time.Time) int {
	return int(DateOnly(b).Sub(DateOnly(a)).Hours() / 24)
}

// weekStartOf returns the date the week containing t starts on.
func weekStartOf(t time.Time, weekStart time.Weekday) time.Time {
	d := DateOnly(t)
	offset := (int(d.Weekday()) - int(weekStart) + 7) % 7
	return d.AddDate(0, 0, -offset)
}

// monthBounds returns [first day of t's month, first day of the next month).
func monthBounds(t time.Time) (time.Time, time.Time) {
	start := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 1, 0)
}
