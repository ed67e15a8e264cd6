package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/bit-festival/api-go/models"
	"github.com/bit-festival/api-go/services"
	"github.com/gin-gonic/gin"
)

// ActivityResponse is the wire shape of one activity outside the feed.
type ActivityResponse struct {
	ID           string           `json:"id"`
	Participants []string         `json:"participants"`
	Tags         []string         `json:"tags"`
	Description  string           `json:"description"`
	Location     *models.Location `json:"location"`
	TimeStart    time.Time        `json:"time_start"`
	TimeEnd      *time.Time       `json:"time_end"`
}

func toActivityResponse(a models.Activity) ActivityResponse {
	return ActivityResponse{
		ID:           a.ID,
		Participants: []string(a.Participants),
		Tags:         []string(a.Tags),
		Description:  a.Description,
		Location:     a.Location(),
		TimeStart:    a.TimeStart,
		TimeEnd:      a.TimeEnd,
	}
}

func toActivityResponses(activities []models.Activity) []ActivityResponse {
	out := make([]ActivityResponse, 0, len(activities))
	for _, a := range activities {
		out = append(out, toActivityResponse(a))
	}
	return out
}

// respondServiceError maps service sentinel errors onto HTTP statuses. Every
// error body is the single {"error": message} shape.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrNotOwner):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
