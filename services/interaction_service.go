package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/bit-festival/api-go/models"
	"github.com/bit-festival/api-go/utils/log"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// InteractionSummary is the aggregated social state of one activity, as seen
// by an optional requesting user.
type InteractionSummary struct {
	LikesCount    int64           `json:"likes_count"`
	CommentsCount int64           `json:"comments_count"`
	UserLiked     bool            `json:"user_liked"`
	LastComment   *models.Comment `json:"last_comment"`
}

// InteractionService computes like/comment aggregates and performs the social
// mutations (like, unlike, comment, delete comment).
type InteractionService struct {
	DB *gorm.DB
}

func NewInteractionService(db *gorm.DB) *InteractionService {
	return &InteractionService{DB: db}
}

// Aggregate is read-only and best-effort: a sub-query that fails degrades to
// its zero value (0 / false / nil) instead of failing the surrounding feed
// item. uid may be empty for anonymous callers, which makes UserLiked false.
func (s *InteractionService) Aggregate(activityID, uid string) InteractionSummary {
	var out InteractionSummary

	if n, err := s.LikesCount(activityID); err == nil {
		out.LikesCount = n
	} else {
		log.Log.WithError(err).WithField("activity_id", activityID).Warn("likes count failed")
	}

	if n, err := s.CommentsCount(activityID); err == nil {
		out.CommentsCount = n
	} else {
		log.Log.WithError(err).WithField("activity_id", activityID).Warn("comments count failed")
	}

	if uid != "" {
		if liked, err := s.UserLiked(activityID, uid); err == nil {
			out.UserLiked = liked
		} else {
			log.Log.WithError(err).WithField("activity_id", activityID).Warn("user liked lookup failed")
		}
	}

	if c, err := s.LastComment(activityID); err == nil {
		out.LastComment = c
	} else {
		log.Log.WithError(err).WithField("activity_id", activityID).Warn("last comment lookup failed")
	}

	return out
}

// LikesCount prefers COUNT(*) and falls back to enumerating the rows. Both
// paths return the same value for the same state.
func (s *InteractionService) LikesCount(activityID string) (int64, error) {
	var n int64
	if err := s.DB.Model(&models.Like{}).Where("activity_id = ?", activityID).Count(&n).Error; err != nil {
		return s.LikesCountSlow(activityID)
	}
	return n, nil
}

// LikesCountSlow is the enumeration path.
func (s *InteractionService) LikesCountSlow(activityID string) (int64, error) {
	var likes []models.Like
	if err := s.DB.Where("activity_id = ?", activityID).Find(&likes).Error; err != nil {
		return 0, err
	}
	return int64(len(likes)), nil
}

func (s *InteractionService) CommentsCount(activityID string) (int64, error) {
	var n int64
	if err := s.DB.Model(&models.Comment{}).Where("activity_id = ?", activityID).Count(&n).Error; err != nil {
		return s.CommentsCountSlow(activityID)
	}
	return n, nil
}

func (s *InteractionService) CommentsCountSlow(activityID string) (int64, error) {
	var comments []models.Comment
	if err := s.DB.Where("activity_id = ?", activityID).Find(&comments).Error; err != nil {
		return 0, err
	}
	return int64(len(comments)), nil
}

// UserLiked reports whether a like keyed by uid exists on the activity.
func (s *InteractionService) UserLiked(activityID, uid string) (bool, error) {
	if uid == "" {
		return false, nil
	}
	var n int64
	err := s.DB.Model(&models.Like{}).
		Where("activity_id = ? AND user_id = ?", activityID, uid).
		Count(&n).Error
	return n > 0, err
}

// LastComment returns the newest comment or nil when there are none.
// Identical timestamps tie-break on comment id, which keeps the result stable
// across calls.
func (s *InteractionService) LastComment(activityID string) (*models.Comment, error) {
	var comment models.Comment
	err := s.DB.
		Where("activity_id = ?", activityID).
		Order("created_at DESC, id ASC").
		First(&comment).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

// Like records the user's endorsement. The (activity_id, user_id) primary key
// makes the write an upsert: re-liking refreshes the snapshot fields instead
// of duplicating the row.
func (s *InteractionService) Like(activityID, uid, displayName string) error {
	if err := s.requireActivity(activityID); err != nil {
		return err
	}
	like := models.Like{
		ActivityID:      activityID,
		UserID:          uid,
		UserDisplayName: displayName,
		CreatedAt:       time.Now().UTC(),
	}
	return s.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "activity_id"}, {Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"user_display_name", "created_at"}),
	}).Create(&like).Error
}

// Unlike removes the like if present. Deleting an absent like is a no-op.
func (s *InteractionService) Unlike(activityID, uid string) error {
	return s.DB.
		Where("activity_id = ? AND user_id = ?", activityID, uid).
		Delete(&models.Like{}).Error
}

// AddComment appends a comment. Text is trimmed and must be non-empty.
func (s *InteractionService) AddComment(activityID, uid, displayName, text string) (*models.Comment, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, fmt.Errorf("%w: empty comment", ErrValidation)
	}
	if err := s.requireActivity(activityID); err != nil {
		return nil, err
	}
	comment := models.Comment{
		ActivityID:      activityID,
		UserID:          uid,
		UserDisplayName: displayName,
		Text:            text,
		CreatedAt:       time.Now().UTC(),
	}
	if err := s.DB.Create(&comment).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}

// ListComments returns the activity's comments newest first.
func (s *InteractionService) ListComments(activityID string) ([]models.Comment, error) {
	var comments []models.Comment
	err := s.DB.
		Where("activity_id = ?", activityID).
		Order("created_at DESC, id ASC").
		Find(&comments).Error
	return comments, err
}

// DeleteComment removes a comment. Only the author may delete; existence is
// checked before ownership so an absent comment is 404, not 403.
func (s *InteractionService) DeleteComment(activityID, commentID, uid string) error {
	var comment models.Comment
	err := s.DB.First(&comment, "id = ? AND activity_id = ?", commentID, activityID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%w: comment %s", ErrNotFound, commentID)
	}
	if err != nil {
		return err
	}
	if comment.UserID != uid {
		return fmt.Errorf("%w: comment belongs to another user", ErrNotOwner)
	}
	return s.DB.Delete(&comment).Error
}

func (s *InteractionService) requireActivity(activityID string) error {
	var n int64
	if err := s.DB.Model(&models.Activity{}).Where("id = ?", activityID).Count(&n).Error; err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%w: activity %s", ErrNotFound, activityID)
	}
	return nil
}
