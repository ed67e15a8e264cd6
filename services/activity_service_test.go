package services

import (
	"testing"
	"time"

	"github.com/bit-festival/api-go/utils"
	"github.com/stretchr/testify/require"
)

func TestCreateRejectsEmptyParticipants(t *testing.T) {
	// Validation happens before any store access.
	svc := NewActivityService(nil)

	_, err := svc.Create(CreateActivityInput{Participants: []string{"", "  "}})
	require.ErrorIs(t, err, ErrValidation)

	_, err = svc.Create(CreateActivityInput{})
	require.ErrorIs(t, err, ErrValidation)
}

func TestCreateFiltersEmptyParticipants(t *testing.T) {
	db := utils.CreateTempDB(t)
	svc := NewActivityService(db)

	activity, err := svc.Create(CreateActivityInput{
		Participants: []string{"u1", "", "u2"},
		Tags:         []string{"outdoor"},
		Description:  "morning walk",
	})
	require.NoError(t, err)
	require.NotEmpty(t, activity.ID)
	require.Equal(t, []string{"u1", "u2"}, []string(activity.Participants))
	require.False(t, activity.TimeStart.IsZero())
	require.Nil(t, activity.TimeEnd)

	fetched, err := svc.GetByID(activity.ID)
	require.NoError(t, err)
	require.Equal(t, activity.ID, fetched.ID)
}

func TestGetByIDNotFound(t *testing.T) {
	db := utils.CreateTempDB(t)
	svc := NewActivityService(db)

	_, err := svc.GetByID("11111111-1111-1111-1111-111111111111")
	require.ErrorIs(t, err, ErrNotFound)

	// Ids are opaque strings, so a lookup with an arbitrary one just misses.
	_, err = svc.GetByID("abc")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestRecentNewestFirst(t *testing.T) {
	db := utils.CreateTempDB(t)
	svc := NewActivityService(db)

	for i := 0; i < 3; i++ {
		_, err := svc.Create(CreateActivityInput{Participants: []string{"u1"}})
		require.NoError(t, err)
		time.Sleep(5 * time.Millisecond) // distinct time_start values
	}

	activities, err := svc.Recent(50)
	require.NoError(t, err)
	require.Len(t, activities, 3)
	for i := 0; i < len(activities)-1; i++ {
		require.True(t, activities[i].TimeStart.After(activities[i+1].TimeStart))
	}

	limited, err := svc.Recent(2)
	require.NoError(t, err)
	require.Len(t, limited, 2)
	require.Equal(t, activities[0].ID, limited[0].ID)
}

func TestByParticipant(t *testing.T) {
	db := utils.CreateTempDB(t)
	svc := NewActivityService(db)

	shared, err := svc.Create(CreateActivityInput{Participants: []string{"u1", "u2"}})
	require.NoError(t, err)
	_, err = svc.Create(CreateActivityInput{Participants: []string{"u2"}})
	require.NoError(t, err)

	activities, err := svc.ByParticipant("u1")
	require.NoError(t, err)
	require.Len(t, activities, 1)
	require.Equal(t, shared.ID, activities[0].ID)

	activities, err = svc.ByParticipant("u2")
	require.NoError(t, err)
	require.Len(t, activities, 2)

	activities, err = svc.ByParticipant("nobody")
	require.NoError(t, err)
	require.Empty(t, activities)
}

func TestByTagQueries(t *testing.T) {
	db := utils.CreateTempDB(t)
	svc := NewActivityService(db)

	_, err := svc.Create(CreateActivityInput{Participants: []string{"u1"}, Tags: []string{"outdoor", "fitness"}})
	require.NoError(t, err)
	time.Sleep(5 * time.Millisecond)
	_, err = svc.Create(CreateActivityInput{Participants: []string{"u2"}, Tags: []string{"outdoor"}})
	require.NoError(t, err)
	time.Sleep(5 * time.Millisecond)
	_, err = svc.Create(CreateActivityInput{Participants: []string{"u3"}, Tags: []string{"drink"}})
	require.NoError(t, err)

	single, err := svc.ByTag("outdoor")
	require.NoError(t, err)
	require.Len(t, single, 2)
	require.True(t, single[0].TimeStart.After(single[1].TimeStart))

	_, err = svc.ByTag("  ")
	require.ErrorIs(t, err, ErrValidation)

	// any: everything containing outdoor or fitness
	anyMatch, err := svc.ByTagsAny([]string{"outdoor", "fitness"})
	require.NoError(t, err)
	require.Len(t, anyMatch, 2)

	// all: only the activity carrying both
	allMatch, err := svc.ByTagsAll([]string{"outdoor", "fitness"})
	require.NoError(t, err)
	require.Len(t, allMatch, 1)
	require.Equal(t, []string{"outdoor", "fitness"}, []string(allMatch[0].Tags))

	// empty tag list is a validation error, never match-everything
	_, err = svc.ByTagsAny(nil)
	require.ErrorIs(t, err, ErrValidation)
	_, err = svc.ByTagsAll([]string{"", " "})
	require.ErrorIs(t, err, ErrValidation)
}
