package routes

import (
	"github.com/bit-festival/api-go/controllers"
	"github.com/gin-gonic/gin"
)

func SetupUserRoutes(protected *gin.RouterGroup, userController *controllers.UserController) {
	users := protected.Group("/users")
	{
		users.POST("/:uid/tags", userController.AddTags)
		users.DELETE("/:uid/tags/:tag", userController.RemoveTag)
	}
}
