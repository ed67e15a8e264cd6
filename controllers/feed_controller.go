package controllers

import (
	"net/http"

	"github.com/bit-festival/api-go/services"
	"github.com/bit-festival/api-go/utils"
	"github.com/gin-gonic/gin"
)

type FeedController struct {
	Feed *services.FeedService
}

// Lat and Lng are pointers so a missing parameter is distinguishable from an
// explicit 0 (a real coordinate on the equator or prime meridian).
type FeedQuery struct {
	Mode     string   `form:"mode,default=chronological" binding:"omitempty,oneof=chronological weather"`
	Lat      *float64 `form:"lat"`
	Lng      *float64 `form:"lng"`
	PageSize int      `form:"pageSize,default=50" binding:"min=1,max=50"`
}

func NewFeedController(feed *services.FeedService) *FeedController {
	return &FeedController{Feed: feed}
}

// GetFeed godoc
// @Summary Get the activity feed
// @Description Recent activities with like/comment aggregates, chronological or weather-ranked
// @Tags feed
// @Produce json
// @Param mode query string false "Ranking: chronological (default) or weather"
// @Param lat query number false "Latitude, required for weather mode"
// @Param lng query number false "Longitude, required for weather mode"
// @Param pageSize query integer false "Items per page (default: 50, max: 50)"
// @Success 200 {object} map[string]interface{}
// @Router /feed [get]
func (fc *FeedController) GetFeed(c *gin.Context) {
	var query FeedQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if query.Mode == services.RankWeather && (query.Lat == nil || query.Lng == nil) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "weather mode requires lat and lng"})
		return
	}

	// Anonymous callers get the feed too; user_liked just stays false.
	uid := ""
	if user := utils.GetUser(c); user != nil {
		uid = user.UID
	}

	var lat, lng float64
	if query.Lat != nil {
		lat = *query.Lat
	}
	if query.Lng != nil {
		lng = *query.Lng
	}

	feed, err := fc.Feed.Compose(c.Request.Context(), uid, query.PageSize, query.Mode, lat, lng)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"feed": feed})
}
