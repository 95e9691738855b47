package gamification

import (
	"log"
	"time"

	"github.com/reality-check/api-go/storage"
	"github.com/reality-check/api-go/types"
	"github.com/reality-check/api-go/utils"
)

type Streak struct {
	Count       int    `json:"count"`
	LastLogDate string `json:"lastLogDate"`
}

type Stats struct {
	TotalAnalyses      int `json:"totalAnalyses"`
	TotalSwaps         int `json:"totalSwaps"`
	TotalCaloriesSaved int `json:"totalCaloriesSaved"`
	TotalAiAnalyses    int `json:"totalAiAnalyses"`
}

// Profile is the per-user gamification record. WellnessPoints only moves
// through events and reward claims, never recomputed from scratch.
type Profile struct {
	WellnessPoints       int             `json:"wellnessPoints"`
	WeeklyWellnessPoints int             `json:"weeklyWellnessPoints"`
	WeekStartDate        string          `json:"weekStartDate"`
	MindfulEatingStreak  Streak          `json:"mindfulEatingStreak"`
	Achievements         map[string]bool `json:"achievements"`
	Stats                Stats           `json:"stats"`
	ClaimedRewards       map[string]bool `json:"claimedRewards"`
}

// Event is the tagged union of things the ledger reacts to. Each variant
// carries only the fields its effect needs.
type Event interface {
	Kind() string
}

type AnalysisComplete struct{}

func (AnalysisComplete) Kind() string { return "analysis_complete" }

type AIAnalysis struct{}

func (AIAnalysis) Kind() string { return "ai_analysis" }

type HealthySwap struct {
	CaloriesSaved int
}

func (HealthySwap) Kind() string { return "healthy_swap" }

// Ledger applies gamification events against the blob store. Now is
// swappable so streak and weekend logic can be pinned in tests.
type Ledger struct {
	Store *storage.Store
	Now   func() time.Time
}

func NewLedger(store *storage.Store) *Ledger {
	return &Ledger{Store: store, Now: time.Now}
}

func profileKey(userKey string) string {
	return "gamification:" + userKey
}

// Profile returns the user's record, lazily created with zeroed defaults.
// A stale week-window key zeroes the weekly counter right here on the read
// path, so merely opening the app in a new week resets it.
func (l *Ledger) Profile(userKey string) Profile {
	profile := l.load(userKey, l.Now())
	l.save(userKey, profile)
	return profile
}

func (l *Ledger) load(userKey string, now time.Time) Profile {
	profile := Profile{
		WeekStartDate:  utils.WeekStartKey(now),
		Achievements:   map[string]bool{},
		ClaimedRewards: map[string]bool{},
	}
	l.Store.Get(profileKey(userKey), &profile)
	if profile.Achievements == nil {
		profile.Achievements = map[string]bool{}
	}
	if profile.ClaimedRewards == nil {
		profile.ClaimedRewards = map[string]bool{}
	}
	if currentWeek := utils.WeekStartKey(now); profile.WeekStartDate != currentWeek {
		profile.WeeklyWellnessPoints = 0
		profile.WeekStartDate = currentWeek
	}
	return profile
}

func (l *Ledger) save(userKey string, profile Profile) {
	if err := l.Store.Set(profileKey(userKey), profile); err != nil {
		// Best effort: the returned profile stays authoritative for the
		// current request even when the write fails.
		log.Printf("gamification: persist profile for %q: %v", userKey, err)
	}
}

// ApplyEvent mutates the profile per the event table, evaluates achievement
// unlocks, persists, and reports which achievements fired on this event.
func (l *Ledger) ApplyEvent(userKey string, event Event) (Profile, []string) {
	now := l.Now()
	profile := l.load(userKey, now)

	points := 0
	isAnalysis := false

	switch e := event.(type) {
	case AnalysisComplete:
		isAnalysis = true
		if profile.Stats.TotalAnalyses == 0 {
			points += types.FIRST_ANALYSIS_BONUS_POINTS
		}
		// Stats update precedes the streak mutation.
		profile.Stats.TotalAnalyses++
		today := utils.DayKey(now)
		if profile.MindfulEatingStreak.LastLogDate != today {
			yesterday := utils.DayKey(now.AddDate(0, 0, -1))
			if profile.MindfulEatingStreak.LastLogDate == yesterday {
				profile.MindfulEatingStreak.Count++
			} else {
				profile.MindfulEatingStreak.Count = 1
			}
			profile.MindfulEatingStreak.LastLogDate = today
		}

	case AIAnalysis:
		points += types.AI_ANALYSIS_POINTS
		profile.Stats.TotalAiAnalyses++

	case HealthySwap:
		if e.CaloriesSaved > 0 {
			points += types.HEALTHY_SWAP_BASE_POINTS + e.CaloriesSaved/types.SWAP_CALORIES_PER_POINT
			profile.Stats.TotalSwaps++
			profile.Stats.TotalCaloriesSaved += e.CaloriesSaved
		}
	}

	profile.WellnessPoints += points
	profile.WeeklyWellnessPoints += points

	weekday := now.Weekday()
	weekend := weekday == time.Saturday || weekday == time.Sunday
	unlocked := unlockAchievements(&profile, isAnalysis && weekend)

	l.save(userKey, profile)
	return profile, unlocked
}

func unlockAchievements(profile *Profile, weekendAnalysis bool) []string {
	checks := []struct {
		key string
		hit bool
	}{
		{types.ACHIEVEMENT_FIRST_STEP, profile.Stats.TotalAnalyses >= 1},
		{types.ACHIEVEMENT_SAVVY_SWAPPER, profile.Stats.TotalSwaps >= 1},
		{types.ACHIEVEMENT_CALORIE_COMMANDO, profile.Stats.TotalCaloriesSaved >= 1000},
		{types.ACHIEVEMENT_AI_ANALYST, profile.Stats.TotalAiAnalyses >= 5},
		{types.ACHIEVEMENT_WEEKEND_WARRIOR, weekendAnalysis},
	}

	var unlocked []string
	for _, check := range checks {
		if check.hit && !profile.Achievements[check.key] {
			profile.Achievements[check.key] = true
			unlocked = append(unlocked, check.key)
		}
	}
	return unlocked
}

// ClaimReward marks the reward claimed unconditionally; affordability is
// the caller's gate.
func (l *Ledger) ClaimReward(userKey, rewardID string) Profile {
	profile := l.load(userKey, l.Now())
	profile.ClaimedRewards[rewardID] = true
	l.save(userKey, profile)
	return profile
}

// SpendPoints deducts from the lifetime total only; weekly points measure
// activity, not balance.
func (l *Ledger) SpendPoints(userKey string, points int) Profile {
	profile := l.load(userKey, l.Now())
	profile.WellnessPoints -= points
	l.save(userKey, profile)
	return profile
}
