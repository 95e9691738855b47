package controllers

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/reality-check/api-go/storage"
	"github.com/reality-check/api-go/types"
	"github.com/reality-check/api-go/utils"
)

type ActivityController struct {
	Store *storage.Store
}

func NewActivityController(store *storage.Store) *ActivityController {
	return &ActivityController{Store: store}
}

func activitiesKey(userKey string) string {
	return "custom-activities:" + userKey
}

func (atc *ActivityController) loadActivities(userKey string) []types.CustomActivity {
	var activities []types.CustomActivity
	atc.Store.Get(activitiesKey(userKey), &activities)
	return activities
}

func (atc *ActivityController) saveActivities(userKey string, activities []types.CustomActivity) {
	if err := atc.Store.Set(activitiesKey(userKey), activities); err != nil {
		log.Printf("activities: persist for %q: %v", userKey, err)
	}
}

func (atc *ActivityController) ListActivities(c *gin.Context) {
	claims := utils.GetUser(c)
	c.JSON(http.StatusOK, gin.H{"success": true, "activities": atc.loadActivities(claims.Email)})
}

func (atc *ActivityController) CreateActivity(c *gin.Context) {
	claims := utils.GetUser(c)

	var input struct {
		Label    string   `json:"label" binding:"required"`
		Met      float64  `json:"met" binding:"required"`
		SpeedKmh *float64 `json:"speedKmh"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "success": false})
		return
	}
	if input.Met <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "MET must be a positive number", "success": false})
		return
	}

	activity := types.CustomActivity{
		Key:      fmt.Sprintf("custom_%d", time.Now().UnixMilli()),
		Label:    input.Label,
		Met:      input.Met,
		SpeedKmh: input.SpeedKmh,
	}

	activities := append(atc.loadActivities(claims.Email), activity)
	atc.saveActivities(claims.Email, activities)

	c.JSON(http.StatusCreated, gin.H{"success": true, "activity": activity})
}

func (atc *ActivityController) UpdateActivity(c *gin.Context) {
	claims := utils.GetUser(c)
	key := c.Param("key")

	var input struct {
		Label    *string  `json:"label"`
		Met      *float64 `json:"met"`
		SpeedKmh *float64 `json:"speedKmh"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "success": false})
		return
	}
	if input.Met != nil && *input.Met <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "MET must be a positive number", "success": false})
		return
	}

	activities := atc.loadActivities(claims.Email)
	for i := range activities {
		if activities[i].Key != key {
			continue
		}
		if input.Label != nil {
			activities[i].Label = *input.Label
		}
		if input.Met != nil {
			activities[i].Met = *input.Met
		}
		if input.SpeedKmh != nil {
			activities[i].SpeedKmh = input.SpeedKmh
		}
		atc.saveActivities(claims.Email, activities)
		c.JSON(http.StatusOK, gin.H{"success": true, "activity": activities[i]})
		return
	}

	c.JSON(http.StatusNotFound, gin.H{"error": "Activity not found", "success": false})
}

func (atc *ActivityController) DeleteActivity(c *gin.Context) {
	claims := utils.GetUser(c)
	key := c.Param("key")

	activities := atc.loadActivities(claims.Email)
	kept := activities[:0]
	found := false
	for _, activity := range activities {
		if activity.Key == key {
			found = true
			continue
		}
		kept = append(kept, activity)
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Activity not found", "success": false})
		return
	}

	atc.saveActivities(claims.Email, kept)
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Activity deleted"})
}
