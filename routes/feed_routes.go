package routes

import (
	"github.com/bit-festival/api-go/controllers"
	"github.com/gin-gonic/gin"
)

func SetupFeedRoutes(group *gin.RouterGroup, feedController *controllers.FeedController) {
	feed := group.Group("/feed")
	{
		feed.GET("", feedController.GetFeed)
	}
}
