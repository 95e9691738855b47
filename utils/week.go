package utils

import "time"

// WeekStartKey returns the YYYY-MM-DD date of the Monday that starts t's
// week, in t's location with time-of-day truncated. Every timestamp inside
// the same Monday-to-Sunday span maps to the same key, and the key rolls
// over at Monday midnight. Weekly counters are partitioned on it.
func WeekStartKey(t time.Time) string {
	weekday := int(t.Weekday()) // Sunday = 0
	var shift int
	if weekday == 0 {
		// Sunday belongs to the week that started six days earlier.
		shift = -6
	} else {
		shift = -(weekday - 1)
	}
	monday := time.Date(t.Year(), t.Month(), t.Day()+shift, 0, 0, 0, 0, t.Location())
	return monday.Format("2006-01-02")
}

// DayKey returns t's calendar date as YYYY-MM-DD in t's location.
func DayKey(t time.Time) string {
	return t.Format("2006-01-02")
}
