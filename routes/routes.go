// File: /routes/routes.go
package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"programlaz-api/config"
	"programlaz-api/controllers"
	"programlaz-api/middleware"
	"programlaz-api/repositories"
	"programlaz-api/services"
)

// SetupCORS returns the CORS middleware for browser clients
func SetupCORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}

func SetupRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {
	// Repositories
	placeRepo := repositories.NewPlaceRepository(db)
	categoryRepo := repositories.NewCategoryRepository(db)
	filterRepo := repositories.NewFilterRepository(db)
	reviewRepo := repositories.NewReviewRepository(db)
	messagingRepo := repositories.NewMessagingRepository(db)

	// Services
	pipeline := services.NewPipeline(services.NewRouteRefiner(cfg.MapboxToken))
	placeService := services.NewPlaceService(placeRepo)
	categoryService := services.NewCategoryService(categoryRepo)
	emailService := services.NewEmailService(cfg)
	pushService := services.NewPushService(cfg, messagingRepo)

	// Controllers
	authController := controllers.NewAuthController(db, cfg.JWTSecret)
	placeController := controllers.NewPlaceController(placeRepo, pipeline, cfg)
	categoryController := controllers.NewCategoryController(categoryRepo, filterRepo)
	reviewController := controllers.NewReviewController(reviewRepo, placeRepo)
	favoriteController := controllers.NewFavoriteController(db)
	notificationController := controllers.NewNotificationController(messagingRepo, pushService)
	newsletterController := controllers.NewNewsletterController(messagingRepo, emailService)
	statisticsController := controllers.NewStatisticsController(db, messagingRepo)
	adminPlaceController := controllers.NewAdminPlaceController(placeRepo, placeService)
	adminCategoryController := controllers.NewAdminCategoryController(categoryRepo, categoryService)
	adminFilterController := controllers.NewAdminFilterController(filterRepo)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
			"status":  "healthy",
		})
	})

	// API version 1
	v1 := r.Group("/api/v1")

	// Auth routes (public)
	auth := v1.Group("/auth")
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
	}

	// Public catalog routes
	v1.GET("/places", placeController.GetPlaces)
	v1.GET("/places/featured", placeController.GetFeatured)
	v1.GET("/places/:slug", placeController.GetPlace)
	v1.GET("/categories", categoryController.GetCategories)
	v1.GET("/categories/:slug", categoryController.GetCategory)
	v1.GET("/places/:slug/reviews", reviewController.GetReviews)

	// Newsletter (public)
	newsletter := v1.Group("/newsletter")
	{
		newsletter.POST("/subscribe", newsletterController.Subscribe)
		newsletter.POST("/unsubscribe", newsletterController.Unsubscribe)
		newsletter.GET("/unsubscribe", newsletterController.Unsubscribe)
	}

	// Push subscriptions (anonymous visitors allowed)
	push := v1.Group("/push")
	push.Use(middleware.OptionalAuth(cfg.JWTSecret))
	{
		push.POST("/subscribe", notificationController.Subscribe)
		push.POST("/unsubscribe", notificationController.Unsubscribe)
	}

	// Page view tracking (public, rate limited)
	v1.POST("/statistics/track", middleware.RateLimit(60, 10), statisticsController.Track)

	// Protected routes
	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleware(cfg.JWTSecret))
	{
		protected.GET("/profile", authController.GetProfile)

		favorites := protected.Group("/favorites")
		{
			favorites.GET("/", favoriteController.GetFavorites)
			favorites.POST("/:placeId", favoriteController.AddFavorite)
			favorites.DELETE("/:placeId", favoriteController.RemoveFavorite)
		}

		reviews := protected.Group("/reviews")
		{
			reviews.POST("/place/:placeId", reviewController.CreateReview)
			reviews.DELETE("/:id", reviewController.DeleteReview)
		}
	}

	// Admin back-office
	admin := v1.Group("/admin")
	admin.Use(middleware.AuthMiddleware(cfg.JWTSecret), middleware.AdminMiddleware())
	{
		places := admin.Group("/places")
		{
			places.GET("/", adminPlaceController.ListPlaces)
			places.POST("/", adminPlaceController.CreatePlace)
			places.PUT("/:id", adminPlaceController.UpdatePlace)
			places.DELETE("/:id", adminPlaceController.DeletePlace)
			places.GET("/export", adminPlaceController.ExportCSV)
		}

		categories := admin.Group("/categories")
		{
			categories.POST("/", adminCategoryController.CreateCategory)
			categories.PUT("/:id", adminCategoryController.UpdateCategory)
			categories.DELETE("/:id", adminCategoryController.DeleteCategory)
			categories.POST("/:id/move-up", adminCategoryController.MoveUp)
			categories.POST("/:id/move-down", adminCategoryController.MoveDown)
		}

		filters := admin.Group("/filters")
		{
			filters.GET("/groups", adminFilterController.ListGroups)
			filters.POST("/groups", adminFilterController.CreateGroup)
			filters.PUT("/groups/:id", adminFilterController.UpdateGroup)
			filters.DELETE("/groups/:id", adminFilterController.DeleteGroup)
			filters.POST("/", adminFilterController.CreateFilter)
			filters.PUT("/:id", adminFilterController.UpdateFilter)
			filters.DELETE("/:id", adminFilterController.DeleteFilter)
		}

		admin.GET("/reviews", reviewController.ListAllReviews)
		admin.DELETE("/reviews/:id", reviewController.ModerateDeleteReview)

		admin.POST("/push/broadcast", notificationController.Broadcast)
		admin.GET("/push/history", notificationController.GetHistory)
		admin.POST("/newsletter/broadcast", newsletterController.Broadcast)
		admin.GET("/statistics", statisticsController.GetSummary)
	}
}
