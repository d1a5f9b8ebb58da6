package commands

import (
	"context"
	"testing"
	"time"

	"spacehub/internal/domain/review"
	"spacehub/internal/pkg/clock"
	"spacehub/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReviewCommands_Create(t *testing.T) {
	ctx := context.Background()
	guestID := uuid.New()
	spaceID := uuid.New()
	reservationID := uuid.New()
	now := time.Date(2026, 3, 20, 12, 0, 0, 0, time.UTC)
	reservedDate := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)

	input := func() CreateReviewInput {
		return CreateReviewInput{
			ReservationID: reservationID,
			Rating:        5,
			Content:       "great light, quiet room",
			ImageURLs:     []string{"http://localhost:8080/uploads/a.jpg"},
		}
	}

	setup := func(status string, owner uuid.UUID) (*fakeTx, ReviewCommands) {
		tx := newFakeTx()
		tx.reads.reservation = &shared.ReservationSnapshot{
			ID:        reservationID,
			SpaceID:   spaceID,
			GuestID:   owner,
			Date:      reservedDate,
			StartHour: 9,
			EndHour:   11,
			Status:    status,
		}
		tx.spaces.lockSpace = lockableSpace(spaceID, 4, 12000)
		tx.reviews.createdID = uuid.New()
		return tx, NewReviewCommands(&fakeUoW{tx: tx}, clock.NewMockClock(now))
	}

	t.Run("creates and recomputes the average", func(t *testing.T) {
		tx, cmds := setup("COMPLETED", guestID)
		tx.reviews.ratings = []review.Rating{5}

		id, err := cmds.Create(ctx, guestID, input())
		require.NoError(t, err)
		assert.Equal(t, tx.reviews.createdID, id)
		require.NotNil(t, tx.reviews.created)
		assert.Equal(t, reservedDate, tx.reviews.created.ReservedDate())
		assert.Equal(t, []ratingWrite{{spaceID: spaceID, avg: 5}}, tx.spaces.ratingWrites)
	})

	t.Run("ratings of five and four write back 4.5", func(t *testing.T) {
		tx, cmds := setup("COMPLETED", guestID)
		tx.reviews.ratings = []review.Rating{5, 4}

		_, err := cmds.Create(ctx, guestID, input())
		require.NoError(t, err)
		require.Len(t, tx.spaces.ratingWrites, 1)
		assert.Equal(t, spaceID, tx.spaces.ratingWrites[0].spaceID)
		assert.InDelta(t, 4.5, tx.spaces.ratingWrites[0].avg, 1e-9)
		assert.InDelta(t, 4.5, tx.spaces.lockSpace.AvgRating(), 1e-9)
	})

	t.Run("accepted past its end counts as completed", func(t *testing.T) {
		tx, cmds := setup("ACCEPTED", guestID)
		tx.reads.reservation.Date = time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

		_, err := cmds.Create(ctx, guestID, input())
		require.NoError(t, err)
	})

	t.Run("someone else's reservation", func(t *testing.T) {
		_, cmds := setup("COMPLETED", uuid.New())
		_, err := cmds.Create(ctx, guestID, input())
		assert.ErrorIs(t, err, ErrNoPermission)
	})

	t.Run("pending reservation", func(t *testing.T) {
		_, cmds := setup("PENDING", guestID)
		_, err := cmds.Create(ctx, guestID, input())
		assert.ErrorIs(t, err, ErrReservationNotCompleted)
	})

	t.Run("accepted slot still in the future", func(t *testing.T) {
		tx, cmds := setup("ACCEPTED", guestID)
		tx.reads.reservation.Date = time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)

		_, err := cmds.Create(ctx, guestID, input())
		assert.ErrorIs(t, err, ErrReservationNotCompleted)
	})

	t.Run("second review for the reservation", func(t *testing.T) {
		tx, cmds := setup("COMPLETED", guestID)
		tx.reviews.exists = true

		_, err := cmds.Create(ctx, guestID, input())
		assert.ErrorIs(t, err, ErrDuplicateReview)
	})

	t.Run("insert race maps the unique violation", func(t *testing.T) {
		tx, cmds := setup("COMPLETED", guestID)
		tx.reviews.createErr = duplicateErr()

		_, err := cmds.Create(ctx, guestID, input())
		assert.ErrorIs(t, err, ErrDuplicateReview)
	})

	t.Run("rating out of range", func(t *testing.T) {
		_, cmds := setup("COMPLETED", guestID)
		in := input()
		in.Rating = 6

		_, err := cmds.Create(ctx, guestID, in)
		assert.ErrorIs(t, err, ErrDomainValidation)
	})
}

func TestReviewCommands_UpdateDelete(t *testing.T) {
	ctx := context.Background()
	guestID := uuid.New()
	spaceID := uuid.New()
	reviewID := uuid.New()
	now := time.Date(2026, 3, 20, 12, 0, 0, 0, time.UTC)

	setup := func(owner uuid.UUID) (*fakeTx, ReviewCommands) {
		tx := newFakeTx()
		tx.reads.review = &shared.ReviewSnapshot{
			ID:            reviewID,
			ReservationID: uuid.New(),
			GuestID:       owner,
			SpaceID:       spaceID,
			Rating:        4,
			Content:       "fine",
			ReservedDate:  time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC),
		}
		tx.spaces.lockSpace = lockableSpace(spaceID, 4, 12000)
		return tx, NewReviewCommands(&fakeUoW{tx: tx}, clock.NewMockClock(now))
	}

	t.Run("update rewrites content and recomputes", func(t *testing.T) {
		tx, cmds := setup(guestID)
		tx.reviews.ratings = []review.Rating{5}

		err := cmds.Update(ctx, guestID, reviewID, UpdateReviewInput{Rating: 5, Content: "even better"})
		require.NoError(t, err)
		require.NotNil(t, tx.reviews.updated)
		assert.Equal(t, 5, tx.reviews.updated.Rating().Int())
		assert.Equal(t, "even better", tx.reviews.updated.Content().String())
		assert.Equal(t, []ratingWrite{{spaceID: spaceID, avg: 5}}, tx.spaces.ratingWrites)
	})

	t.Run("delete soft deletes and recomputes", func(t *testing.T) {
		tx, cmds := setup(guestID)

		require.NoError(t, cmds.Delete(ctx, guestID, reviewID))
		assert.Equal(t, []uuid.UUID{reviewID}, tx.reviews.deleted)
		// No live reviews remain, so the space reads as unrated again.
		assert.Equal(t, []ratingWrite{{spaceID: spaceID, avg: 0}}, tx.spaces.ratingWrites)
	})

	t.Run("someone else's review", func(t *testing.T) {
		_, cmds := setup(uuid.New())
		err := cmds.Update(ctx, guestID, reviewID, UpdateReviewInput{Rating: 5, Content: "x"})
		assert.ErrorIs(t, err, ErrNoPermission)
	})

	t.Run("missing review", func(t *testing.T) {
		tx, cmds := setup(guestID)
		tx.reads.review = nil
		tx.reads.reviewErr = notFoundErr()

		assert.ErrorIs(t, cmds.Delete(ctx, guestID, reviewID), ErrReviewNotFound)
	})
}

func TestReviewCommentCommands(t *testing.T) {
	ctx := context.Background()
	hostID := uuid.New()
	spaceID := uuid.New()
	reviewID := uuid.New()
	commentID := uuid.New()
	now := time.Date(2026, 3, 20, 12, 0, 0, 0, time.UTC)

	setup := func(owner uuid.UUID) (*fakeTx, ReviewCommentCommands) {
		tx := newFakeTx()
		tx.reads.review = &shared.ReviewSnapshot{ID: reviewID, SpaceID: spaceID}
		tx.reads.space = &shared.SpaceSnapshot{ID: spaceID, HostID: owner}
		tx.reads.comment = &shared.CommentSnapshot{ID: commentID, ReviewID: reviewID, HostID: owner, SpaceID: spaceID}
		tx.comments.createdID = uuid.New()
		return tx, NewReviewCommentCommands(&fakeUoW{tx: tx}, clock.NewMockClock(now))
	}

	t.Run("host replies once", func(t *testing.T) {
		tx, cmds := setup(hostID)

		id, err := cmds.Create(ctx, hostID, reviewID, "thanks for coming")
		require.NoError(t, err)
		assert.Equal(t, tx.comments.createdID, id)
	})

	t.Run("not the space's host", func(t *testing.T) {
		_, cmds := setup(uuid.New())
		_, err := cmds.Create(ctx, hostID, reviewID, "thanks")
		assert.ErrorIs(t, err, ErrNoPermission)
	})

	t.Run("second reply", func(t *testing.T) {
		tx, cmds := setup(hostID)
		tx.comments.exists = true

		_, err := cmds.Create(ctx, hostID, reviewID, "thanks")
		assert.ErrorIs(t, err, ErrDuplicateComment)
	})

	t.Run("update own comment", func(t *testing.T) {
		tx, cmds := setup(hostID)

		require.NoError(t, cmds.Update(ctx, hostID, commentID, "updated reply"))
		require.NotNil(t, tx.comments.updated)
	})

	t.Run("delete own comment", func(t *testing.T) {
		tx, cmds := setup(hostID)

		require.NoError(t, cmds.Delete(ctx, hostID, commentID))
		assert.Equal(t, []uuid.UUID{commentID}, tx.comments.deleted)
	})

	t.Run("someone else's comment", func(t *testing.T) {
		tx, cmds := setup(hostID)
		tx.reads.comment.HostID = uuid.New()

		assert.ErrorIs(t, cmds.Delete(ctx, hostID, commentID), ErrNoPermission)
	})
}
