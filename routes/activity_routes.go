package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/reality-check/api-go/controllers"
)

func SetupActivityRoutes(r *gin.RouterGroup, activityController *controllers.ActivityController) {
	activities := r.Group("/activities")
	{
		activities.GET("", activityController.ListActivities)
		activities.POST("", activityController.CreateActivity)
		activities.PUT("/:key", activityController.UpdateActivity)
		activities.DELETE("/:key", activityController.DeleteActivity)
	}
}
