package gamification

import (
	"math"
	"sort"
	"strconv"
	"strings"
)

type LeaderboardEntry struct {
	Rank   int    `json:"rank"`
	Name   string `json:"name"`
	Points int    `json:"points"`
	IsUser bool   `json:"isUser"`
}

// Fixed roster of synthetic competitors. Their scores reshuffle weekly but
// stay stable inside one week window.
var rosterNames = []string{
	"Maya R.",
	"Jordan K.",
	"Priya S.",
	"Tom W.",
	"Elena V.",
	"Chris B.",
	"Aisha M.",
	"Leo F.",
	"Nina P.",
	"Sam D.",
}

const leaderboardSize = 10

// seededRandom is a deterministic sine-based hash into [0, 1).
func seededRandom(seed float64) float64 {
	v := math.Sin(seed) * 10000
	return v - math.Floor(v)
}

func weekKeySeed(weekKey string) int {
	seed := 0
	for _, part := range strings.Split(weekKey, "-") {
		if n, err := strconv.Atoi(part); err == nil {
			seed += n
		}
	}
	return seed
}

// WeeklyLeaderboard ranks the synthetic roster plus the real user for the
// given week window. If the user lands outside the top ten with a non-zero
// score, the tenth slot shows the user at their true rank, so the last
// displayed rank can jump past 10. That is the intended always-show-
// yourself behavior, not a sorting bug.
func WeeklyLeaderboard(weekKey, userName string, userWeeklyPoints int) []LeaderboardEntry {
	seed := weekKeySeed(weekKey)

	entries := make([]LeaderboardEntry, 0, len(rosterNames)+1)
	for i, name := range rosterNames {
		points := int(seededRandom(float64(seed+i))*1500) + 50
		entries = append(entries, LeaderboardEntry{Name: name, Points: points})
	}
	entries = append(entries, LeaderboardEntry{
		Name:   userName,
		Points: userWeeklyPoints,
		IsUser: true,
	})

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Points > entries[j].Points
	})
	for i := range entries {
		entries[i].Rank = i + 1
	}

	top := make([]LeaderboardEntry, leaderboardSize)
	copy(top, entries[:leaderboardSize])

	userIndex := -1
	for i, entry := range entries {
		if entry.IsUser {
			userIndex = i
			break
		}
	}
	if userIndex >= leaderboardSize && userWeeklyPoints > 0 {
		top[leaderboardSize-1] = entries[userIndex]
	}
	return top
}
