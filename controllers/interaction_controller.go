package controllers

import (
	"net/http"

	"github.com/bit-festival/api-go/services"
	"github.com/bit-festival/api-go/utils"
	"github.com/gin-gonic/gin"
)

type InteractionController struct {
	Interactions *services.InteractionService
	Users        *services.UserService
}

func NewInteractionController(interactions *services.InteractionService, users *services.UserService) *InteractionController {
	return &InteractionController{Interactions: interactions, Users: users}
}

// displayNameFor snapshots the caller's current display name onto the like or
// comment being written. The verified token claim wins; the lazily created
// profile (often still empty) is only a fallback.
func (ic *InteractionController) displayNameFor(user *utils.UserClaims) string {
	profile, err := ic.Users.EnsureProfile(user.UID)
	if user.DisplayName != "" {
		return user.DisplayName
	}
	if err != nil {
		return "User"
	}
	return profile.DisplayNameOrDefault()
}

// LikeActivity godoc
// @Summary Like an activity
// @Description Idempotent: liking twice leaves exactly one like
// @Tags interactions
// @Produce json
// @Param id path string true "Activity ID"
// @Success 200 {object} map[string]interface{}
// @Router /activities/{id}/like [post]
func (ic *InteractionController) LikeActivity(c *gin.Context) {
	user := utils.GetUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context"})
		return
	}
	activityID := c.Param("id")

	if err := ic.Interactions.Like(activityID, user.UID, ic.displayNameFor(user)); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "liked"})
}

// UnlikeActivity godoc
// @Summary Remove a like
// @Description Idempotent: unliking an activity that was never liked succeeds
// @Tags interactions
// @Produce json
// @Param id path string true "Activity ID"
// @Success 200 {object} map[string]interface{}
// @Router /activities/{id}/unlike [post]
func (ic *InteractionController) UnlikeActivity(c *gin.Context) {
	user := utils.GetUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context"})
		return
	}
	activityID := c.Param("id")

	if err := ic.Interactions.Unlike(activityID, user.UID); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "unliked"})
}

type CreateCommentRequest struct {
	Text string `json:"text"`
}

// CommentActivity godoc
// @Summary Comment on an activity
// @Tags interactions
// @Accept json
// @Produce json
// @Param id path string true "Activity ID"
// @Param comment body CreateCommentRequest true "Comment request"
// @Success 200 {object} map[string]interface{}
// @Router /activities/{id}/comments [post]
func (ic *InteractionController) CommentActivity(c *gin.Context) {
	user := utils.GetUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context"})
		return
	}
	activityID := c.Param("id")

	var req CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	comment, err := ic.Interactions.AddComment(activityID, user.UID, ic.displayNameFor(user), req.Text)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "comment_added", "comment_id": comment.ID})
}

// ListComments godoc
// @Summary List an activity's comments, newest first
// @Tags interactions
// @Produce json
// @Param id path string true "Activity ID"
// @Success 200 {object} map[string]interface{}
// @Router /activities/{id}/comments [get]
func (ic *InteractionController) ListComments(c *gin.Context) {
	activityID := c.Param("id")

	comments, err := ic.Interactions.ListComments(activityID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"comments": comments})
}

// DeleteComment godoc
// @Summary Delete a comment
// @Description Only the comment's author may delete it
// @Tags interactions
// @Produce json
// @Param id path string true "Activity ID"
// @Param cid path string true "Comment ID"
// @Success 200 {object} map[string]interface{}
// @Router /activities/{id}/comments/{cid} [delete]
func (ic *InteractionController) DeleteComment(c *gin.Context) {
	user := utils.GetUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context"})
		return
	}
	activityID := c.Param("id")
	commentID := c.Param("cid")

	if err := ic.Interactions.DeleteComment(activityID, commentID, user.UID); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "comment_deleted"})
}
