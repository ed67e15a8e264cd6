package services

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/bit-festival/api-go/config"
	"github.com/bit-festival/api-go/models"
)

// Ranking modes for Compose.
const (
	RankChronological = "chronological"
	RankWeather       = "weather"
)

const (
	baselineScore = 50
	minScore      = 1
	maxScore      = 100
)

// FeedItem is one activity merged with its aggregated interaction data.
type FeedItem struct {
	ID            string           `json:"id"`
	Participants  []string         `json:"participants"`
	Tags          []string         `json:"tags"`
	Description   string           `json:"description"`
	Location      *models.Location `json:"location"`
	TimeStart     time.Time        `json:"time_start"`
	TimeEnd       *time.Time       `json:"time_end"`
	LikesCount    int64            `json:"likes_count"`
	CommentsCount int64            `json:"comments_count"`
	UserLiked     bool             `json:"user_liked"`
	LastComment   *models.Comment  `json:"last_comment"`
	Score         int              `json:"score,omitempty"`
}

// ActivitySource is the slice of ActivityService the composer needs.
type ActivitySource interface {
	Recent(limit int) ([]models.Activity, error)
}

// InteractionSource is the slice of InteractionService the composer needs.
type InteractionSource interface {
	Aggregate(activityID, uid string) InteractionSummary
}

// WeatherSource yields one current-conditions snapshot per page.
type WeatherSource interface {
	Current(ctx context.Context, lat, lng float64) config.Weather
}

// FeedService composes the feed: a page of recent activities, each merged
// with its interaction aggregate, optionally re-ranked by weather score.
type FeedService struct {
	Activities   ActivitySource
	Interactions InteractionSource
	Weather      WeatherSource
}

func NewFeedService(activities ActivitySource, interactions InteractionSource, weather WeatherSource) *FeedService {
	return &FeedService{
		Activities:   activities,
		Interactions: interactions,
		Weather:      weather,
	}
}

// Compose builds the ordered feed for an optional requesting user.
// Chronological mode preserves the store's newest-first order. Weather mode
// fetches a single snapshot for the caller's coordinates, scores every
// activity in the page against that same snapshot, and re-sorts by score
// descending with a stable sort, so equal scores keep chronological order.
// A missing snapshot degrades every item to the baseline score.
func (s *FeedService) Compose(ctx context.Context, uid string, pageSize int, mode string, lat, lng float64) ([]FeedItem, error) {
	activities, err := s.Activities.Recent(pageSize)
	if err != nil {
		return nil, err
	}

	items := make([]FeedItem, 0, len(activities))
	for _, a := range activities {
		agg := s.Interactions.Aggregate(a.ID, uid)
		items = append(items, FeedItem{
			ID:            a.ID,
			Participants:  []string(a.Participants),
			Tags:          []string(a.Tags),
			Description:   a.Description,
			Location:      a.Location(),
			TimeStart:     a.TimeStart,
			TimeEnd:       a.TimeEnd,
			LikesCount:    agg.LikesCount,
			CommentsCount: agg.CommentsCount,
			UserLiked:     agg.UserLiked,
			LastComment:   agg.LastComment,
		})
	}

	if mode == RankWeather {
		var snapshot config.Weather
		if s.Weather != nil {
			snapshot = s.Weather.Current(ctx, lat, lng)
		}
		for i := range items {
			items[i].Score = WeatherScore(items[i].Tags, snapshot)
		}
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].Score > items[j].Score
		})
	}

	return items, nil
}

// WeatherScore rates how well an activity's tags suit the current conditions,
// in [1,100]. The empty snapshot scores exactly the baseline.
func WeatherScore(tags []string, w config.Weather) int {
	score := baselineScore

	if w.Temperature != nil {
		t := *w.Temperature
		switch {
		case t < 5:
			score -= 15
		case t <= 15:
			score += 5
		case t <= 25:
			score += 10
		case t > 30:
			score -= 10
		}
	}

	outdoor := hasTag(tags, "outdoor")
	indoor := hasTag(tags, "indoor")
	switch {
	case hasPrecipitation(w.Condition):
		if outdoor {
			score -= 20
		}
		if indoor {
			score += 10
		}
	case isClear(w.Condition):
		if outdoor || hasTag(tags, "nature") || hasTag(tags, "sport") {
			score += 15
		}
	}

	if score < minScore {
		score = minScore
	}
	if score > maxScore {
		score = maxScore
	}
	return score
}

func hasPrecipitation(condition string) bool {
	c := strings.ToLower(condition)
	for _, kw := range []string{"rain", "snow", "drizzle", "shower", "storm", "thunder"} {
		if strings.Contains(c, kw) {
			return true
		}
	}
	return false
}

func isClear(condition string) bool {
	c := strings.ToLower(condition)
	return strings.Contains(c, "clear") || strings.Contains(c, "sunny")
}

func hasTag(tags []string, tag string) bool {
	for _, t := range tags {
		if t == tag {
			return true
		}
	}
	return false
}
