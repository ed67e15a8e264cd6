package services

import (
	"errors"
	"fmt"

	"github.com/bit-festival/api-go/models"
	"github.com/lib/pq"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// UserService maintains the denormalized profile records and their tag sets.
type UserService struct {
	DB *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{DB: db}
}

// EnsureProfile lazily creates an empty profile for uid if none exists and
// returns the current record either way.
func (s *UserService) EnsureProfile(uid string) (*models.User, error) {
	blank := models.User{UID: uid, Tags: pq.StringArray{}}
	err := s.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "uid"}},
		DoNothing: true,
	}).Create(&blank).Error
	if err != nil {
		return nil, err
	}
	return s.GetProfile(uid)
}

func (s *UserService) GetProfile(uid string) (*models.User, error) {
	var user models.User
	if err := s.DB.First(&user, "uid = ?", uid).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: user %s", ErrNotFound, uid)
		}
		return nil, err
	}
	return &user, nil
}

// AddTags unions tags into the profile's tag set. Each tag is appended with a
// single UPDATE guarded by a containment check, so the mutation is atomic per
// statement and idempotent: adding a present tag is a no-op success, and
// concurrent adds from different requests compose without lost updates.
func (s *UserService) AddTags(uid string, tags []string) (*models.User, error) {
	cleaned := CleanTags(tags)
	if len(cleaned) == 0 {
		return nil, fmt.Errorf("%w: empty tag list", ErrValidation)
	}
	if _, err := s.GetProfile(uid); err != nil {
		return nil, err
	}
	for _, tag := range cleaned {
		err := s.DB.Model(&models.User{}).
			Where("uid = ? AND NOT (tags @> ?::text[])", uid, pq.StringArray{tag}).
			Update("tags", gorm.Expr("array_append(tags, ?)", tag)).Error
		if err != nil {
			return nil, err
		}
	}
	return s.GetProfile(uid)
}

// RemoveTag drops the tag from the profile's set. Removing an absent tag is a
// no-op success.
func (s *UserService) RemoveTag(uid, tag string) (*models.User, error) {
	if _, err := s.GetProfile(uid); err != nil {
		return nil, err
	}
	err := s.DB.Model(&models.User{}).
		Where("uid = ?", uid).
		Update("tags", gorm.Expr("array_remove(tags, ?)", tag)).Error
	if err != nil {
		return nil, err
	}
	return s.GetProfile(uid)
}
