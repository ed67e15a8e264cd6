package routes

import (
	"github.com/bit-festival/api-go/controllers"
	"github.com/gin-gonic/gin"
)

func SetupInteractionRoutes(protected *gin.RouterGroup, interactionController *controllers.InteractionController) {
	activities := protected.Group("/activities")
	{
		activities.POST("/:id/like", interactionController.LikeActivity)
		activities.POST("/:id/unlike", interactionController.UnlikeActivity)
		activities.POST("/:id/comments", interactionController.CommentActivity)
		activities.DELETE("/:id/comments/:cid", interactionController.DeleteComment)
	}
}
