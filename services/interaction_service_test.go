package services

import (
	"testing"
	"time"

	"github.com/bit-festival/api-go/models"
	"github.com/bit-festival/api-go/utils"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func createTestActivity(t *testing.T, db *gorm.DB, participants ...string) *models.Activity {
	t.Helper()
	activity, err := NewActivityService(db).Create(CreateActivityInput{
		Participants: participants,
		Tags:         []string{"outdoor"},
	})
	require.NoError(t, err)
	return activity
}

func TestLikeIsIdempotent(t *testing.T) {
	db := utils.CreateTempDB(t)
	svc := NewInteractionService(db)
	activity := createTestActivity(t, db, "u1", "u2")

	require.NoError(t, svc.Like(activity.ID, "u1", "Alice"))
	require.NoError(t, svc.Like(activity.ID, "u1", "Alice"))

	n, err := svc.LikesCount(activity.ID)
	require.NoError(t, err)
	require.Equal(t, int64(1), n)

	require.NoError(t, svc.Unlike(activity.ID, "u1"))
	// Unliking again is not an error.
	require.NoError(t, svc.Unlike(activity.ID, "u1"))

	n, err = svc.LikesCount(activity.ID)
	require.NoError(t, err)
	require.Equal(t, int64(0), n)
}

func TestLikeMissingActivity(t *testing.T) {
	db := utils.CreateTempDB(t)
	svc := NewInteractionService(db)

	err := svc.Like("11111111-1111-1111-1111-111111111111", "u1", "Alice")
	require.ErrorIs(t, err, ErrNotFound)

	// Arbitrary opaque ids miss the same way well-formed ones do.
	err = svc.Like("abc", "u1", "Alice")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestLikeUnlikeScenario(t *testing.T) {
	db := utils.CreateTempDB(t)
	svc := NewInteractionService(db)
	activity := createTestActivity(t, db, "u1", "u2")

	require.NoError(t, svc.Like(activity.ID, "u1", "Alice"))
	require.NoError(t, svc.Like(activity.ID, "u2", "Bob"))
	require.NoError(t, svc.Unlike(activity.ID, "u1"))

	n, err := svc.LikesCount(activity.ID)
	require.NoError(t, err)
	require.Equal(t, int64(1), n)

	liked, err := svc.UserLiked(activity.ID, "u1")
	require.NoError(t, err)
	require.False(t, liked)

	liked, err = svc.UserLiked(activity.ID, "u2")
	require.NoError(t, err)
	require.True(t, liked)
}

func TestCountFastAndSlowPathsAgree(t *testing.T) {
	db := utils.CreateTempDB(t)
	svc := NewInteractionService(db)
	activity := createTestActivity(t, db, "u1")

	for _, uid := range []string{"u1", "u2", "u3"} {
		require.NoError(t, svc.Like(activity.ID, uid, "User"))
	}
	_, err := svc.AddComment(activity.ID, "u1", "Alice", "nice one")
	require.NoError(t, err)

	fast, err := svc.LikesCount(activity.ID)
	require.NoError(t, err)
	slow, err := svc.LikesCountSlow(activity.ID)
	require.NoError(t, err)
	require.Equal(t, fast, slow)
	require.Equal(t, int64(3), fast)

	fastC, err := svc.CommentsCount(activity.ID)
	require.NoError(t, err)
	slowC, err := svc.CommentsCountSlow(activity.ID)
	require.NoError(t, err)
	require.Equal(t, fastC, slowC)
	require.Equal(t, int64(1), fastC)
}

func TestCommentsNewestFirstAndLastComment(t *testing.T) {
	db := utils.CreateTempDB(t)
	svc := NewInteractionService(db)
	activity := createTestActivity(t, db, "u1", "u2")

	first, err := svc.AddComment(activity.ID, "u1", "Alice", "hi")
	require.NoError(t, err)
	time.Sleep(5 * time.Millisecond)
	second, err := svc.AddComment(activity.ID, "u2", "Bob", "hi")
	require.NoError(t, err)

	comments, err := svc.ListComments(activity.ID)
	require.NoError(t, err)
	require.Len(t, comments, 2)
	require.Equal(t, second.ID, comments[0].ID)
	require.Equal(t, first.ID, comments[1].ID)

	last, err := svc.LastComment(activity.ID)
	require.NoError(t, err)
	require.NotNil(t, last)
	require.Equal(t, "u2", last.UserID)
	require.Equal(t, "Bob", last.UserDisplayName)
}

func TestAddCommentValidation(t *testing.T) {
	db := utils.CreateTempDB(t)
	svc := NewInteractionService(db)
	activity := createTestActivity(t, db, "u1")

	_, err := svc.AddComment(activity.ID, "u1", "Alice", "   ")
	require.ErrorIs(t, err, ErrValidation)

	comment, err := svc.AddComment(activity.ID, "u1", "Alice", "  trimmed  ")
	require.NoError(t, err)
	require.Equal(t, "trimmed", comment.Text)

	_, err = svc.AddComment("11111111-1111-1111-1111-111111111111", "u1", "Alice", "hello")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteCommentOwnership(t *testing.T) {
	db := utils.CreateTempDB(t)
	svc := NewInteractionService(db)
	activity := createTestActivity(t, db, "u1", "u2")

	comment, err := svc.AddComment(activity.ID, "u1", "Alice", "mine")
	require.NoError(t, err)

	// A non-author is rejected and the comment survives.
	err = svc.DeleteComment(activity.ID, comment.ID, "u2")
	require.ErrorIs(t, err, ErrNotOwner)
	n, err := svc.CommentsCount(activity.ID)
	require.NoError(t, err)
	require.Equal(t, int64(1), n)

	// The author succeeds and the comment is gone.
	require.NoError(t, svc.DeleteComment(activity.ID, comment.ID, "u1"))
	n, err = svc.CommentsCount(activity.ID)
	require.NoError(t, err)
	require.Equal(t, int64(0), n)

	// Absent comments are 404, checked before ownership.
	err = svc.DeleteComment(activity.ID, comment.ID, "u2")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestAggregate(t *testing.T) {
	db := utils.CreateTempDB(t)
	svc := NewInteractionService(db)
	activity := createTestActivity(t, db, "u1", "u2")

	require.NoError(t, svc.Like(activity.ID, "u2", "Bob"))
	_, err := svc.AddComment(activity.ID, "u1", "Alice", "first")
	require.NoError(t, err)
	time.Sleep(5 * time.Millisecond)
	_, err = svc.AddComment(activity.ID, "u2", "Bob", "second")
	require.NoError(t, err)

	summary := svc.Aggregate(activity.ID, "u2")
	require.Equal(t, int64(1), summary.LikesCount)
	require.Equal(t, int64(2), summary.CommentsCount)
	require.True(t, summary.UserLiked)
	require.NotNil(t, summary.LastComment)
	require.Equal(t, "second", summary.LastComment.Text)

	// Anonymous view: user_liked stays false, nothing errors.
	anon := svc.Aggregate(activity.ID, "")
	require.False(t, anon.UserLiked)
	require.Equal(t, int64(1), anon.LikesCount)

	// An unknown activity aggregates to all zero values.
	empty := svc.Aggregate("11111111-1111-1111-1111-111111111111", "u1")
	require.Equal(t, int64(0), empty.LikesCount)
	require.Equal(t, int64(0), empty.CommentsCount)
	require.False(t, empty.UserLiked)
	require.Nil(t, empty.LastComment)
}
