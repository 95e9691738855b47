package gamification

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testWeekKey = "2024-03-04"

func TestWeeklyLeaderboardDeterministic(t *testing.T) {
	first := WeeklyLeaderboard(testWeekKey, "Alex", 300)
	second := WeeklyLeaderboard(testWeekKey, "Alex", 300)
	assert.Equal(t, first, second)
}

func TestWeeklyLeaderboardReseedsAcrossWeeks(t *testing.T) {
	first := WeeklyLeaderboard("2024-03-04", "Alex", 300)
	second := WeeklyLeaderboard("2024-03-11", "Alex", 300)
	assert.NotEqual(t, first, second)
}

func TestWeeklyLeaderboardSortedDescending(t *testing.T) {
	entries := WeeklyLeaderboard(testWeekKey, "Alex", 300)
	require.Len(t, entries, 10)
	for i := 1; i < len(entries); i++ {
		assert.GreaterOrEqual(t, entries[i-1].Points, entries[i].Points)
	}
}

func TestWeeklyLeaderboardContainsUser(t *testing.T) {
	entries := WeeklyLeaderboard(testWeekKey, "Alex", 5000)

	userCount := 0
	for _, entry := range entries {
		if entry.IsUser {
			userCount++
			assert.Equal(t, "Alex", entry.Name)
			assert.Equal(t, 5000, entry.Points)
			assert.Equal(t, 1, entry.Rank, "5000 points outruns the whole roster")
		}
	}
	assert.Equal(t, 1, userCount)
}

func TestWeeklyLeaderboardZeroPointsNoReplacement(t *testing.T) {
	// Roster scores are at least 50, so a zero-point user sorts last and
	// must not displace the tenth entry.
	entries := WeeklyLeaderboard(testWeekKey, "Alex", 0)
	for _, entry := range entries {
		assert.False(t, entry.IsUser)
	}
}

func TestWeeklyLeaderboardLowScoringUserShownAtTrueRank(t *testing.T) {
	// One point puts the user below every competitor but above zero, so
	// the tenth slot carries the user at rank 11.
	entries := WeeklyLeaderboard(testWeekKey, "Alex", 1)
	require.Len(t, entries, 10)

	last := entries[9]
	assert.True(t, last.IsUser)
	assert.Equal(t, 11, last.Rank, "true rank is kept even when discontinuous")
	assert.Equal(t, 1, last.Points)

	// Ranks 1-9 remain contiguous.
	for i := 0; i < 9; i++ {
		assert.Equal(t, i+1, entries[i].Rank)
	}
}

func TestSeededRandomRange(t *testing.T) {
	for seed := -100; seed <= 100; seed++ {
		v := seededRandom(float64(seed))
		assert.GreaterOrEqual(t, v, 0.0)
		assert.Less(t, v, 1.0)
	}
}

func TestWeekKeySeedSumsComponents(t *testing.T) {
	assert.Equal(t, 2024+3+4, weekKeySeed("2024-03-04"))
}
