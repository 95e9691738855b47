package gamification

import (
	"log"

	"github.com/reality-check/api-go/utils"
)

// WeeklyChallengeProgress tracks calories saved through healthy swaps for
// the current week window; it zeroes when the stored week key goes stale.
type WeeklyChallengeProgress struct {
	SavedCalories int    `json:"savedCalories"`
	WeekStartDate string `json:"weekStartDate"`
}

func challengeKey(userKey string) string {
	return "weekly-challenge:" + userKey
}

func (l *Ledger) WeeklyChallenge(userKey string) WeeklyChallengeProgress {
	progress := l.loadChallenge(userKey)
	l.saveChallenge(userKey, progress)
	return progress
}

func (l *Ledger) AddSavedCalories(userKey string, calories int) WeeklyChallengeProgress {
	progress := l.loadChallenge(userKey)
	progress.SavedCalories += calories
	l.saveChallenge(userKey, progress)
	return progress
}

func (l *Ledger) loadChallenge(userKey string) WeeklyChallengeProgress {
	currentWeek := utils.WeekStartKey(l.Now())
	progress := WeeklyChallengeProgress{WeekStartDate: currentWeek}
	l.Store.Get(challengeKey(userKey), &progress)
	if progress.WeekStartDate != currentWeek {
		progress = WeeklyChallengeProgress{WeekStartDate: currentWeek}
	}
	return progress
}

func (l *Ledger) saveChallenge(userKey string, progress WeeklyChallengeProgress) {
	if err := l.Store.Set(challengeKey(userKey), progress); err != nil {
		log.Printf("gamification: persist weekly challenge for %q: %v", userKey, err)
	}
}
