package services

import (
	"testing"
	"time"

	"github.com/bit-festival/api-go/models"
	"github.com/stretchr/testify/require"
)

func taggedActivities() []models.Activity {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	return []models.Activity{
		{ID: "a1", Tags: []string{"outdoor", "fitness"}, TimeStart: base},
		{ID: "a2", Tags: []string{"outdoor"}, TimeStart: base.Add(2 * time.Hour)},
		{ID: "a3", Tags: []string{"outdoor", "fitness", "nature"}, TimeStart: base.Add(time.Hour)},
	}
}

func ids(activities []models.Activity) []string {
	out := make([]string, 0, len(activities))
	for _, a := range activities {
		out = append(out, a.ID)
	}
	return out
}

func TestFilterByTagsAny(t *testing.T) {
	got := FilterByTags(taggedActivities(), []string{"outdoor", "fitness"}, MatchAnyTag)
	// Re-sorted newest first after filtering.
	require.Equal(t, []string{"a2", "a3", "a1"}, ids(got))
}

func TestFilterByTagsAll(t *testing.T) {
	got := FilterByTags(taggedActivities(), []string{"outdoor", "fitness"}, MatchAllTags)
	require.Equal(t, []string{"a3", "a1"}, ids(got))
}

func TestAllMatchesAreSubsetOfAnyMatches(t *testing.T) {
	activities := taggedActivities()
	tagLists := [][]string{
		{"outdoor"},
		{"fitness", "nature"},
		{"outdoor", "fitness", "nature"},
		{"missing"},
	}

	for _, tags := range tagLists {
		anyIDs := map[string]bool{}
		for _, a := range FilterByTags(activities, tags, MatchAnyTag) {
			anyIDs[a.ID] = true
		}
		for _, a := range FilterByTags(activities, tags, MatchAllTags) {
			require.True(t, anyIDs[a.ID], "all-match %s missing from any-match for tags %v", a.ID, tags)
		}
	}
}

func TestCleanTags(t *testing.T) {
	require.Equal(t, []string{"a", "b"}, CleanTags([]string{" a ", "", "b", "  "}))
	require.Empty(t, CleanTags(nil))
	require.Empty(t, CleanTags([]string{"", "   "}))
}

func TestSplitTags(t *testing.T) {
	require.Equal(t, []string{"outdoor", "fitness"}, SplitTags("outdoor, fitness"))
	require.Equal(t, []string{"solo"}, SplitTags("solo"))
	require.Empty(t, SplitTags(",, ,"))
}
