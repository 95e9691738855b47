package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/reality-check/api-go/gamification"
	"github.com/reality-check/api-go/storage"
	"github.com/reality-check/api-go/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const claimTestUser = "user@example.com"

// smoothie-10 is the cheapest catalog entry at 500 points.
const smoothieRewardID = "smoothie-10"
const smoothieRewardCost = 500

func newClaimLedger() *gamification.Ledger {
	return gamification.NewLedger(storage.NewStore(storage.NewMemoryKV()))
}

func performClaim(t *testing.T, ledger *gamification.Ledger, rewardID string) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/gamification/rewards/"+rewardID+"/claim", nil)
	c.Params = gin.Params{{Key: "rewardId", Value: rewardID}}
	c.Set(string(utils.UserContextKey), &utils.UserClaims{UserID: 1, Email: claimTestUser})

	NewGamificationController(nil, ledger).ClaimReward(c)
	return w
}

func TestClaimRewardRefusedWhenUnaffordable(t *testing.T) {
	ledger := newClaimLedger()
	// 54 points, well under the 500 the reward costs.
	ledger.ApplyEvent(claimTestUser, gamification.HealthySwap{CaloriesSaved: 45})

	w := performClaim(t, ledger, smoothieRewardID)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	profile := ledger.Profile(claimTestUser)
	assert.False(t, profile.ClaimedRewards[smoothieRewardID])
	assert.Equal(t, 54, profile.WellnessPoints, "a refused claim must not spend points")
}

func TestClaimRewardSpendsExactlyTheCost(t *testing.T) {
	ledger := newClaimLedger()
	// 50 + floor(4500/10) = 500 points, exactly affordable.
	ledger.ApplyEvent(claimTestUser, gamification.HealthySwap{CaloriesSaved: 4500})

	w := performClaim(t, ledger, smoothieRewardID)
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Success bool `json:"success"`
		Profile struct {
			WellnessPoints int             `json:"wellnessPoints"`
			ClaimedRewards map[string]bool `json:"claimedRewards"`
		} `json:"profile"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.True(t, body.Profile.ClaimedRewards[smoothieRewardID])
	assert.Equal(t, 0, body.Profile.WellnessPoints, "claim deducts exactly the reward cost")
}

func TestClaimRewardSecondClaimConflicts(t *testing.T) {
	ledger := newClaimLedger()
	// Enough for two claims so only the claimed flag can refuse.
	ledger.ApplyEvent(claimTestUser, gamification.HealthySwap{CaloriesSaved: 14500})

	first := performClaim(t, ledger, smoothieRewardID)
	require.Equal(t, http.StatusOK, first.Code)

	second := performClaim(t, ledger, smoothieRewardID)
	assert.Equal(t, http.StatusConflict, second.Code)

	profile := ledger.Profile(claimTestUser)
	assert.Equal(t, 1500-smoothieRewardCost, profile.WellnessPoints, "the conflicting claim must not double-spend")
}

func TestClaimRewardUnknownRewardNotFound(t *testing.T) {
	ledger := newClaimLedger()
	w := performClaim(t, ledger, "no-such-reward")
	assert.Equal(t, http.StatusNotFound, w.Code)
}
