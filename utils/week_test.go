package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWeekStartKeySameWeek(t *testing.T) {
	// Monday 2024-03-04 through Sunday 2024-03-10 share a window.
	monday := time.Date(2024, 3, 4, 0, 0, 0, 0, time.Local)
	for offset := 0; offset < 7; offset++ {
		day := monday.AddDate(0, 0, offset)
		assert.Equal(t, "2024-03-04", WeekStartKey(day), "day %s", day.Weekday())
	}
}

func TestWeekStartKeyTimeOfDayIgnored(t *testing.T) {
	morning := time.Date(2024, 3, 6, 0, 0, 1, 0, time.Local)
	night := time.Date(2024, 3, 10, 23, 59, 59, 0, time.Local)
	assert.Equal(t, WeekStartKey(morning), WeekStartKey(night))
}

func TestWeekStartKeyMondayBoundary(t *testing.T) {
	sundayNight := time.Date(2024, 3, 10, 23, 59, 59, 0, time.Local)
	mondayMidnight := time.Date(2024, 3, 11, 0, 0, 0, 0, time.Local)

	assert.Equal(t, "2024-03-04", WeekStartKey(sundayNight))
	assert.Equal(t, "2024-03-11", WeekStartKey(mondayMidnight))
	assert.NotEqual(t, WeekStartKey(sundayNight), WeekStartKey(mondayMidnight))
}

func TestWeekStartKeySundayBelongsToPreviousWeek(t *testing.T) {
	sunday := time.Date(2024, 3, 10, 12, 0, 0, 0, time.Local)
	assert.Equal(t, "2024-03-04", WeekStartKey(sunday))
}

func TestWeekStartKeyAcrossMonthBoundary(t *testing.T) {
	// Friday 2024-03-01 belongs to the week of Monday 2024-02-26.
	friday := time.Date(2024, 3, 1, 9, 0, 0, 0, time.Local)
	assert.Equal(t, "2024-02-26", WeekStartKey(friday))
}

func TestDayKey(t *testing.T) {
	day := time.Date(2024, 12, 31, 18, 30, 0, 0, time.Local)
	assert.Equal(t, "2024-12-31", DayKey(day))
}
