package routes

import (
	"net/http"

	"github.com/bit-festival/api-go/config"
	"github.com/bit-festival/api-go/controllers"
	"github.com/bit-festival/api-go/middleware"
	"github.com/bit-festival/api-go/services"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func SetupRoutes(r *gin.Engine, db *gorm.DB) {
	// Wrong verb on a known path is 405, not 404
	r.HandleMethodNotAllowed = true
	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "Method not allowed"})
	})

	// Initialize services
	activityService := services.NewActivityService(db)
	interactionService := services.NewInteractionService(db)
	userService := services.NewUserService(db)
	feedService := services.NewFeedService(activityService, interactionService, config.NewWeatherClient())

	// Initialize controllers
	authController := controllers.NewAuthController(db)
	activityController := controllers.NewActivityController(activityService, userService)
	feedController := controllers.NewFeedController(feedService)
	interactionController := controllers.NewInteractionController(interactionService, userService)
	userController := controllers.NewUserController(userService)

	// Public routes
	public := r.Group("/api")
	{
		public.POST("/register", authController.Register)
		public.POST("/login", authController.Login)
		public.POST("/auth/google", authController.GoogleLogin)
		public.POST("/refresh-token", authController.RefreshToken)
	}

	// Read-only routes serve anonymous callers too
	readable := r.Group("/api")
	readable.Use(middleware.OptionalAuthMiddleware())
	{
		SetupFeedRoutes(readable, feedController)
		readable.GET("/activities", activityController.GetActivities)
		readable.GET("/activities/:id/comments", interactionController.ListComments)
		readable.GET("/users/:uid/activities", activityController.GetUserActivities)
	}

	// Protected routes
	protected := r.Group("/api")
	protected.Use(middleware.AuthMiddleware())
	{
		protected.POST("/logout", authController.Logout)
		protected.GET("/profile", userController.GetProfile)

		SetupActivityRoutes(protected, activityController)
		SetupInteractionRoutes(protected, interactionController)
		SetupUserRoutes(protected, userController)
	}
}
