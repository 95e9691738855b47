package controllers

import (
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/reality-check/api-go/gamification"
	"github.com/reality-check/api-go/providers/genai"
	"github.com/reality-check/api-go/storage"
	"github.com/reality-check/api-go/types"
	"github.com/reality-check/api-go/utils"
	"gorm.io/gorm"
)

type AnalysisController struct {
	DB     *gorm.DB
	Store  *storage.Store
	Ledger *gamification.Ledger
	AI     *genai.Client
}

func NewAnalysisController(db *gorm.DB, store *storage.Store, ledger *gamification.Ledger) *AnalysisController {
	return &AnalysisController{
		DB:     db,
		Store:  store,
		Ledger: ledger,
		AI: &genai.Client{
			APIKey: os.Getenv("GENAI_API_KEY"),
			Model:  os.Getenv("GENAI_MODEL"),
		},
	}
}

// AnalyzeScenario validates the food list, hands the scenario to the AI
// provider, and credits the analysis event. A provider failure aborts with
// no state committed.
func (anc *AnalysisController) AnalyzeScenario(c *gin.Context) {
	claims := utils.GetUser(c)

	var scenario types.Scenario
	if err := c.ShouldBindJSON(&scenario); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "success": false})
		return
	}

	if err := scenario.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "success": false})
		return
	}

	computation, err := anc.AI.AnalyzeScenario(c.Request.Context(), scenario)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Analysis failed, please try again", "success": false})
		return
	}

	profile, newAchievements := anc.Ledger.ApplyEvent(claims.Email, gamification.AnalysisComplete{})

	c.JSON(http.StatusOK, gin.H{
		"success":         true,
		"computation":     computation,
		"profile":         profile,
		"newAchievements": newAchievements,
	})
}

// AnalyzeImage sends a food photo to the AI provider, records it in the
// bounded image history, and credits the AI analysis event.
func (anc *AnalysisController) AnalyzeImage(c *gin.Context) {
	claims := utils.GetUser(c)

	var input struct {
		Image    string `json:"image" binding:"required"` // base64
		MimeType string `json:"mimeType" binding:"required"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "success": false})
		return
	}

	foods, err := anc.AI.AnalyzeImage(c.Request.Context(), input.Image, input.MimeType)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Image analysis failed, please try again", "success": false})
		return
	}

	history := storage.AppendImageHistory(anc.Store, claims.Email, storage.ImageAnalysis{
		Image:      input.Image,
		Foods:      foods,
		AnalyzedAt: time.Now(),
	})

	profile, newAchievements := anc.Ledger.ApplyEvent(claims.Email, gamification.AIAnalysis{})

	c.JSON(http.StatusOK, gin.H{
		"success":         true,
		"foods":           foods,
		"history":         history,
		"profile":         profile,
		"newAchievements": newAchievements,
	})
}

func (anc *AnalysisController) GetImageHistory(c *gin.Context) {
	claims := utils.GetUser(c)
	history := storage.GetImageHistory(anc.Store, claims.Email)
	c.JSON(http.StatusOK, gin.H{"success": true, "history": history})
}

// RecordSwap credits a healthy-swap event and rolls the saved calories
// into the weekly challenge.
func (anc *AnalysisController) RecordSwap(c *gin.Context) {
	claims := utils.GetUser(c)

	var input struct {
		CaloriesSaved int    `json:"caloriesSaved"`
		FromFood      string `json:"fromFood"`
		ToFood        string `json:"toFood"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "success": false})
		return
	}
	if input.CaloriesSaved < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "caloriesSaved cannot be negative", "success": false})
		return
	}

	profile, newAchievements := anc.Ledger.ApplyEvent(claims.Email, gamification.HealthySwap{CaloriesSaved: input.CaloriesSaved})

	challenge := anc.Ledger.WeeklyChallenge(claims.Email)
	if input.CaloriesSaved > 0 {
		challenge = anc.Ledger.AddSavedCalories(claims.Email, input.CaloriesSaved)
	}

	c.JSON(http.StatusOK, gin.H{
		"success":         true,
		"profile":         profile,
		"newAchievements": newAchievements,
		"weeklyChallenge": challenge,
	})
}
