package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/reality-check/api-go/controllers"
)

func SetupUploadRoutes(r *gin.RouterGroup, uploadController *controllers.UploadController) {
	upload := r.Group("/upload")
	{
		// Food photo upload URL generation
		upload.POST("/presigned-url", uploadController.GetPresignedURL)

		// Confirm upload completion
		upload.POST("/confirm", uploadController.ConfirmUpload)

		// Delete uploaded file
		upload.DELETE("/file/:key", uploadController.DeleteFile)
	}
}
