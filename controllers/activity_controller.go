package controllers

import (
	"net/http"
	"time"

	"github.com/bit-festival/api-go/services"
	"github.com/bit-festival/api-go/utils"
	"github.com/gin-gonic/gin"
)

type ActivityController struct {
	Activities *services.ActivityService
	Users      *services.UserService
}

func NewActivityController(activities *services.ActivityService, users *services.UserService) *ActivityController {
	return &ActivityController{Activities: activities, Users: users}
}

type CreateActivityRequest struct {
	FriendUID   string     `json:"friend_uid"`
	Tags        []string   `json:"tags"`
	Description string     `json:"description"`
	Lat         *float64   `json:"lat"`
	Lng         *float64   `json:"lng"`
	TimeEnd     *time.Time `json:"time_end"`
}

// CreateActivity godoc
// @Summary Record a shared activity
// @Description Creates an activity for the verified caller and an optional friend
// @Tags activities
// @Accept json
// @Produce json
// @Param activity body CreateActivityRequest true "Activity creation request"
// @Success 200 {object} map[string]interface{}
// @Router /activities [post]
func (ac *ActivityController) CreateActivity(c *gin.Context) {
	user := utils.GetUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context"})
		return
	}

	var req CreateActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if _, err := ac.Users.EnsureProfile(user.UID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	activity, err := ac.Activities.Create(services.CreateActivityInput{
		Participants: []string{user.UID, req.FriendUID},
		Tags:         req.Tags,
		Description:  req.Description,
		Lat:          req.Lat,
		Lng:          req.Lng,
		TimeEnd:      req.TimeEnd,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "activity_id": activity.ID})
}

// GetActivities godoc
// @Summary Filter activities by tag
// @Description Single tag via ?tag=, multi-tag via ?tags=a,b,c with mode=any or all
// @Tags activities
// @Produce json
// @Param tag query string false "Single tag"
// @Param tags query string false "Comma-separated tag list"
// @Param mode query string false "Multi-tag mode: any (default) or all"
// @Success 200 {object} map[string]interface{}
// @Router /activities [get]
func (ac *ActivityController) GetActivities(c *gin.Context) {
	if tag := c.Query("tag"); tag != "" {
		activities, err := ac.Activities.ByTag(tag)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"activities": toActivityResponses(activities)})
		return
	}

	raw := c.Query("tags")
	if raw == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing ?tag= or ?tags="})
		return
	}

	tags := services.SplitTags(raw)
	mode := c.DefaultQuery("mode", "any")

	var err error
	var activities []ActivityResponse
	switch mode {
	case "any":
		found, e := ac.Activities.ByTagsAny(tags)
		activities, err = toActivityResponses(found), e
	case "all":
		found, e := ac.Activities.ByTagsAll(tags)
		activities, err = toActivityResponses(found), e
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "mode must be any or all"})
		return
	}
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"activities": activities})
}

// GetUserActivities godoc
// @Summary Get activities a user participated in
// @Tags activities
// @Produce json
// @Param uid path string true "User ID"
// @Success 200 {object} map[string]interface{}
// @Router /users/{uid}/activities [get]
func (ac *ActivityController) GetUserActivities(c *gin.Context) {
	uid := c.Param("uid")

	activities, err := ac.Activities.ByParticipant(uid)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"activities": toActivityResponses(activities)})
}
