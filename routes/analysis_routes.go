package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/reality-check/api-go/controllers"
)

func SetupAnalysisRoutes(r *gin.RouterGroup, analysisController *controllers.AnalysisController) {
	analysis := r.Group("/analysis")
	{
		analysis.POST("", analysisController.AnalyzeScenario)
		analysis.POST("/image", analysisController.AnalyzeImage)
		analysis.GET("/history", analysisController.GetImageHistory)
	}

	r.POST("/swaps", analysisController.RecordSwap)
}
