package services

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/bit-festival/api-go/models"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// DefaultPageLimit bounds every activity listing.
const DefaultPageLimit = 50

// ActivityService owns the activity lifecycle and the tag/participant
// queries. Activities are immutable once created: there is no update or
// delete path here.
type ActivityService struct {
	DB *gorm.DB
}

func NewActivityService(db *gorm.DB) *ActivityService {
	return &ActivityService{DB: db}
}

type CreateActivityInput struct {
	Participants []string
	Tags         []string
	Description  string
	Lat          *float64
	Lng          *float64
	TimeEnd      *time.Time
}

// Create persists a new activity. Null/empty participant entries are dropped
// and at least one must remain. time_start is always the server clock, never
// caller input; time_end is stored as given without cross-checking.
func (s *ActivityService) Create(in CreateActivityInput) (*models.Activity, error) {
	participants := make([]string, 0, len(in.Participants))
	for _, p := range in.Participants {
		if strings.TrimSpace(p) != "" {
			participants = append(participants, p)
		}
	}
	if len(participants) == 0 {
		return nil, fmt.Errorf("%w: at least one participant is required", ErrValidation)
	}

	tags := in.Tags
	if tags == nil {
		tags = []string{}
	}

	activity := models.Activity{
		Participants: pq.StringArray(participants),
		Tags:         pq.StringArray(tags),
		Description:  in.Description,
		Latitude:     in.Lat,
		Longitude:    in.Lng,
		TimeStart:    time.Now().UTC(),
		TimeEnd:      in.TimeEnd,
	}

	if err := s.DB.Create(&activity).Error; err != nil {
		return nil, err
	}
	return &activity, nil
}

func (s *ActivityService) GetByID(id string) (*models.Activity, error) {
	var activity models.Activity
	if err := s.DB.First(&activity, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: activity %s", ErrNotFound, id)
		}
		return nil, err
	}
	return &activity, nil
}

// Recent returns the page of most recent activities by time_start descending.
// Ties fall back to the store's natural order.
func (s *ActivityService) Recent(limit int) ([]models.Activity, error) {
	if limit <= 0 || limit > DefaultPageLimit {
		limit = DefaultPageLimit
	}
	var activities []models.Activity
	err := s.DB.Order("time_start DESC").Limit(limit).Find(&activities).Error
	return activities, err
}

// ByParticipant returns activities the user took part in, newest first.
func (s *ActivityService) ByParticipant(uid string) ([]models.Activity, error) {
	var activities []models.Activity
	err := s.DB.
		Where("participants @> ?::text[]", pq.StringArray{uid}).
		Order("time_start DESC").
		Limit(DefaultPageLimit).
		Find(&activities).Error
	return activities, err
}

// ByTag returns activities containing the tag, newest first.
func (s *ActivityService) ByTag(tag string) ([]models.Activity, error) {
	if strings.TrimSpace(tag) == "" {
		return nil, fmt.Errorf("%w: missing tag", ErrValidation)
	}
	var activities []models.Activity
	err := s.DB.
		Where("tags @> ?::text[]", pq.StringArray{tag}).
		Order("time_start DESC").
		Limit(DefaultPageLimit).
		Find(&activities).Error
	return activities, err
}

// ByTagsAny returns activities containing at least one of the tags.
func (s *ActivityService) ByTagsAny(tags []string) ([]models.Activity, error) {
	return s.byTags(tags, MatchAnyTag)
}

// ByTagsAll returns activities containing every tag.
func (s *ActivityService) ByTagsAll(tags []string) ([]models.Activity, error) {
	return s.byTags(tags, MatchAllTags)
}

// The store behind the original system accepted a single containment clause
// per query, so multi-tag matching queries on the first tag and narrows the
// rest in memory, then re-sorts. Kept in that shape so result semantics stay
// identical.
func (s *ActivityService) byTags(tags []string, match func(models.Activity, []string) bool) ([]models.Activity, error) {
	cleaned := CleanTags(tags)
	if len(cleaned) == 0 {
		return nil, fmt.Errorf("%w: empty tag list", ErrValidation)
	}

	var candidates []models.Activity
	err := s.DB.
		Where("tags @> ?::text[]", pq.StringArray{cleaned[0]}).
		Find(&candidates).Error
	if err != nil {
		return nil, err
	}
	return FilterByTags(candidates, cleaned, match), nil
}

// FilterByTags narrows candidates with the given predicate and re-sorts by
// time_start descending, since the in-memory pass may reorder.
func FilterByTags(candidates []models.Activity, tags []string, match func(models.Activity, []string) bool) []models.Activity {
	out := make([]models.Activity, 0, len(candidates))
	for _, a := range candidates {
		if match(a, tags) {
			out = append(out, a)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].TimeStart.After(out[j].TimeStart)
	})
	return out
}

func MatchAnyTag(a models.Activity, tags []string) bool {
	for _, t := range tags {
		if a.HasTag(t) {
			return true
		}
	}
	return false
}

func MatchAllTags(a models.Activity, tags []string) bool {
	for _, t := range tags {
		if !a.HasTag(t) {
			return false
		}
	}
	return true
}

// CleanTags trims entries and drops empties, preserving order.
func CleanTags(raw []string) []string {
	out := make([]string, 0, len(raw))
	for _, t := range raw {
		if trimmed := strings.TrimSpace(t); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// SplitTags parses a comma-separated tag list as sent in query strings.
func SplitTags(raw string) []string {
	return CleanTags(strings.Split(raw, ","))
}
