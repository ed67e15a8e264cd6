package controllers

import (
	"net/http"

	"github.com/bit-festival/api-go/services"
	"github.com/bit-festival/api-go/utils"
	"github.com/gin-gonic/gin"
)

type UserController struct {
	Users *services.UserService
}

func NewUserController(users *services.UserService) *UserController {
	return &UserController{Users: users}
}

type AddTagsRequest struct {
	Tags []string `json:"tags" binding:"required"`
}

// AddTags godoc
// @Summary Add tags to a user profile
// @Description Set-union: adding an existing tag is a no-op success
// @Tags users
// @Accept json
// @Produce json
// @Param uid path string true "User ID"
// @Param tags body AddTagsRequest true "Tags to add"
// @Success 200 {object} map[string]interface{}
// @Router /users/{uid}/tags [post]
func (uc *UserController) AddTags(c *gin.Context) {
	uid := c.Param("uid")

	var req AddTagsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := uc.Users.AddTags(uid, req.Tags)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "tags_added", "uid": uid, "tags": user.Tags})
}

// RemoveTag godoc
// @Summary Remove a tag from a user profile
// @Description Set-difference: removing an absent tag is a no-op success
// @Tags users
// @Produce json
// @Param uid path string true "User ID"
// @Param tag path string true "Tag to remove"
// @Success 200 {object} map[string]interface{}
// @Router /users/{uid}/tags/{tag} [delete]
func (uc *UserController) RemoveTag(c *gin.Context) {
	uid := c.Param("uid")
	tag := c.Param("tag")

	user, err := uc.Users.RemoveTag(uid, tag)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "tag_removed", "uid": uid, "tags": user.Tags})
}

// GetProfile godoc
// @Summary Get the caller's profile
// @Description Lazily creates an empty profile on first use
// @Tags users
// @Produce json
// @Success 200 {object} models.User
// @Router /profile [get]
func (uc *UserController) GetProfile(c *gin.Context) {
	user := utils.GetUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context"})
		return
	}

	profile, err := uc.Users.EnsureProfile(user.UID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": profile})
}
