package gamification

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWeeklyChallengeAccumulates(t *testing.T) {
	ledger := newTestLedger(wednesday)

	progress := ledger.AddSavedCalories(testUser, 120)
	assert.Equal(t, 120, progress.SavedCalories)
	assert.Equal(t, "2024-03-04", progress.WeekStartDate)

	progress = ledger.AddSavedCalories(testUser, 80)
	assert.Equal(t, 200, progress.SavedCalories)
}

func TestWeeklyChallengeResetsOnNewWeek(t *testing.T) {
	ledger := newTestLedger(wednesday)
	ledger.AddSavedCalories(testUser, 200)

	ledger.Now = func() time.Time { return time.Date(2024, 3, 12, 8, 0, 0, 0, time.Local) }
	progress := ledger.WeeklyChallenge(testUser)
	assert.Zero(t, progress.SavedCalories)
	assert.Equal(t, "2024-03-11", progress.WeekStartDate)
}
