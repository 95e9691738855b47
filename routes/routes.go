package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/reality-check/api-go/controllers"
	"github.com/reality-check/api-go/gamification"
	"github.com/reality-check/api-go/middleware"
	"github.com/reality-check/api-go/storage"
	"gorm.io/gorm"
)

func SetupRoutes(r *gin.Engine, db *gorm.DB) {
	store := storage.NewStore(storage.NewGormKV(db))
	ledger := gamification.NewLedger(store)

	// Initialize controllers
	authController := controllers.NewAuthController(db)
	analysisController := controllers.NewAnalysisController(db, store, ledger)
	gamificationController := controllers.NewGamificationController(db, ledger)
	activityController := controllers.NewActivityController(store)
	barcodeController := controllers.NewBarcodeController()
	contactController := controllers.NewContactController(db)
	uploadController := controllers.NewUploadController(db)

	// Public routes
	public := r.Group("/api")
	{
		public.POST("/register", authController.Register)
		public.POST("/login", authController.Login)
		public.POST("/google-signin", authController.GoogleSignIn)
		public.POST("/newsletter", contactController.Subscribe)
	}

	// Protected routes
	protected := r.Group("/api")
	protected.Use(middleware.AuthMiddleware())
	{
		protected.POST("/logout", authController.Logout)
		protected.POST("/refresh-token", authController.RefreshToken)
		protected.GET("/profile", authController.GetProfile)
		protected.PUT("/profile", authController.UpdateProfile)

		protected.GET("/barcode/:code", barcodeController.LookupBarcode)

		SetupAnalysisRoutes(protected, analysisController)
		SetupGamificationRoutes(protected, gamificationController)
		SetupActivityRoutes(protected, activityController)
		SetupUploadRoutes(protected, uploadController)
	}
}
