package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/reality-check/api-go/controllers"
)

func SetupGamificationRoutes(r *gin.RouterGroup, gamificationController *controllers.GamificationController) {
	gamification := r.Group("/gamification")
	{
		gamification.GET("/profile", gamificationController.GetProfile)
		gamification.GET("/leaderboard", gamificationController.GetLeaderboard)
		gamification.GET("/challenge", gamificationController.GetWeeklyChallenge)
		gamification.GET("/rewards", gamificationController.GetRewards)
		gamification.POST("/rewards/:rewardId/claim", gamificationController.ClaimReward)
	}
}
