package routes

import (
	"github.com/bit-festival/api-go/controllers"
	"github.com/gin-gonic/gin"
)

func SetupActivityRoutes(protected *gin.RouterGroup, activityController *controllers.ActivityController) {
	activities := protected.Group("/activities")
	{
		activities.POST("", activityController.CreateActivity)
	}
}
