package services

import "time"

// Calendar math for streaks and weekly challenges. Everything is pinned to
// UTC so the same instant yields the same day/week id on every host,
// regardless of locale or server timezone.

const dayLayout = "2006-01-02"

// StartOfWeek normalizes t to the Monday 00:00:00 UTC of its week.
// Sunday maps to the previous Monday (ISO weekday convention).
func StartOfWeek(t time.Time) time.Time {
	t = t.UTC()
	diff := int(t.Weekday()) - int(time.Monday)
	if diff < 0 {
		diff += 7 // Sunday
	}
	monday := t.AddDate(0, 0, -diff)
	return time.Date(monday.Year(), monday.Month(), monday.Day(), 0, 0, 0, 0, time.UTC)
}

// WeekID returns the Monday of t's week as YYYY-MM-DD. Consumers compare it
// for equality only; it is never parsed back into a date.
func WeekID(t time.Time) string {
	return StartOfWeek(t).Format(dayLayout)
}

// DayID returns t's UTC calendar date as YYYY-MM-DD.
func DayID(t time.Time) string {
	return t.UTC().Format(dayLayout)
}

// Yesterday returns the day id of the day before t.
func Yesterday(t time.Time) string {
	return DayID(t.UTC().AddDate(0, 0, -1))
}
