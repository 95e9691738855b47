package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/reality-check/api-go/gamification"
	"github.com/reality-check/api-go/models"
	"github.com/reality-check/api-go/types"
	"github.com/reality-check/api-go/utils"
	"gorm.io/gorm"
)

type GamificationController struct {
	DB     *gorm.DB
	Ledger *gamification.Ledger
}

func NewGamificationController(db *gorm.DB, ledger *gamification.Ledger) *GamificationController {
	return &GamificationController{DB: db, Ledger: ledger}
}

// GetProfile reads the gamification profile; the read alone resets weekly
// points when a new week has started.
func (gc *GamificationController) GetProfile(c *gin.Context) {
	claims := utils.GetUser(c)
	profile := gc.Ledger.Profile(claims.Email)
	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"profile":      profile,
		"achievements": types.GetAchievementCatalog(),
	})
}

func (gc *GamificationController) GetLeaderboard(c *gin.Context) {
	claims := utils.GetUser(c)

	var user models.User
	if err := gc.DB.First(&user, claims.UserID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found", "success": false})
		return
	}

	profile := gc.Ledger.Profile(claims.Email)
	weekKey := utils.WeekStartKey(time.Now())
	entries := gamification.WeeklyLeaderboard(weekKey, user.Name, profile.WeeklyWellnessPoints)

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"weekStart":   weekKey,
		"leaderboard": entries,
	})
}

func (gc *GamificationController) GetWeeklyChallenge(c *gin.Context) {
	claims := utils.GetUser(c)
	progress := gc.Ledger.WeeklyChallenge(claims.Email)
	c.JSON(http.StatusOK, gin.H{"success": true, "weeklyChallenge": progress})
}

func (gc *GamificationController) GetRewards(c *gin.Context) {
	claims := utils.GetUser(c)
	profile := gc.Ledger.Profile(claims.Email)

	type rewardStatus struct {
		types.Reward
		Claimed    bool `json:"claimed"`
		Affordable bool `json:"affordable"`
	}

	catalog := types.GetRewardCatalog()
	rewards := make([]rewardStatus, 0, len(catalog))
	for _, reward := range catalog {
		rewards = append(rewards, rewardStatus{
			Reward:     reward,
			Claimed:    profile.ClaimedRewards[reward.ID],
			Affordable: profile.WellnessPoints >= reward.PointsRequired,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"success":        true,
		"rewards":        rewards,
		"wellnessPoints": profile.WellnessPoints,
	})
}

// ClaimReward gates on affordability and prior claims, then spends the
// points and marks the reward claimed.
func (gc *GamificationController) ClaimReward(c *gin.Context) {
	claims := utils.GetUser(c)
	rewardID := c.Param("rewardId")

	reward, ok := types.FindReward(rewardID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Unknown reward", "success": false})
		return
	}

	profile := gc.Ledger.Profile(claims.Email)
	if profile.ClaimedRewards[reward.ID] {
		c.JSON(http.StatusConflict, gin.H{"error": "Reward already claimed", "success": false})
		return
	}
	if profile.WellnessPoints < reward.PointsRequired {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Not enough wellness points", "success": false})
		return
	}

	gc.Ledger.SpendPoints(claims.Email, reward.PointsRequired)
	profile = gc.Ledger.ClaimReward(claims.Email, reward.ID)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"reward":  reward,
		"profile": profile,
	})
}
