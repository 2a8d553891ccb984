// Package datepkg provides calendar-window helpers for time-bucketed
// aggregations. Every function takes the reference instant explicitly so
// callers control the clock.
package datepkg

import (
	"fmt"
	"time"
)

// HoursPerYear approximates a year as 365.25 days.
const HoursPerYear = 365.25 * 24

// MonthsBack returns the instant the given number of months before now.
// Month arithmetic is normalized, so going back over a year boundary
// lands in the previous year.
func MonthsBack(now time.Time, months int) time.Time {
	return time.Date(
		now.Year(), now.Month()-time.Month(months), now.Day(),
		now.Hour(), now.Minute(), now.Second(), now.Nanosecond(), now.Location(),
	)
}

// MonthStart returns midnight on the first day of t's month.
func MonthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// NextMonthStart returns midnight on the first day of the month after t's.
func NextMonthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month()+1, 1, 0, 0, 0, 0, t.Location())
}

// YearStart returns midnight on January 1st of t's year.
func YearStart(t time.Time) time.Time {
	return time.Date(t.Year(), time.January, 1, 0, 0, 0, 0, t.Location())
}

// NextYearStart returns midnight on January 1st of the year after t's.
func NextYearStart(t time.Time) time.Time {
	return time.Date(t.Year()+1, time.January, 1, 0, 0, 0, 0, t.Location())
}

// MonthKey renders a (year, month) pair as "YYYY-MM".
func MonthKey(year int, month time.Month) string {
	return fmt.Sprintf("%04d-%02d", year, int(month))
}

// Age returns whole years elapsed between birth and now using the
// 365.25-day-per-year approximation, not calendar-exact age.
func Age(birth, now time.Time) int {
	return int(now.Sub(birth).Hours() / HoursPerYear)
}
