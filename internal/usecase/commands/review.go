package commands

import (
	"context"

	"spacehub/internal/domain/reservation"
	"spacehub/internal/domain/review"
	"spacehub/internal/domain/space"
	"spacehub/internal/infra"
	"spacehub/internal/pkg/clock"
	"spacehub/internal/pkg/errs"
	"spacehub/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrReviewNotFound          = errs.New("review not found")
	ErrDuplicateReview         = errs.New("review already exists for reservation")
	ErrReservationNotCompleted = errs.New("reservation is not completed")
	ErrCommentNotFound         = errs.New("review comment not found")
	ErrDuplicateComment        = errs.New("comment already exists for review")
)

type CreateReviewInput struct {
	ReservationID uuid.UUID
	Rating        int
	Content       string
	ImageURLs     []string
}

type UpdateReviewInput struct {
	Rating    int
	Content   string
	ImageURLs []string
}

type ReviewCommands interface {
	Create(ctx context.Context, guestID uuid.UUID, in CreateReviewInput) (uuid.UUID, error)
	Update(ctx context.Context, guestID, reviewID uuid.UUID, in UpdateReviewInput) error
	Delete(ctx context.Context, guestID, reviewID uuid.UUID) error
}

type reviewCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewReviewCommands(uow shared.UnitOfWork, clock clock.Clock) ReviewCommands {
	return &reviewCommandsImpl{uow: uow, clock: clock}
}

// Create checks eligibility, writes the review, then recomputes the space's
// average rating. The space row lock keeps concurrent review writes from
// racing the recompute.
func (c *reviewCommandsImpl) Create(ctx context.Context, guestID uuid.UUID, in CreateReviewInput) (uuid.UUID, error) {
	rating, err := review.NewRating(in.Rating)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrDomainValidation)
	}
	content, err := review.NewContent(in.Content)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrDomainValidation)
	}

	var createdID uuid.UUID
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Reads().ReservationByID(ctx, in.ReservationID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrReservationNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if snap.GuestID != guestID {
			return ErrNoPermission
		}

		status := reservation.Status(snap.Status).Derived(c.clock.Now(), snap.Date, snap.EndHour)
		if status != reservation.StatusCompleted {
			return ErrReservationNotCompleted
		}

		exists, err := tx.Reviews().ExistsForReservation(ctx, tx.DB(), in.ReservationID)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if exists {
			return ErrDuplicateReview
		}

		sp, err := tx.Spaces().LockByID(ctx, tx.DB(), snap.SpaceID)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		entity := review.NewReview(
			in.ReservationID, guestID, snap.SpaceID,
			rating, content, snap.Date, in.ImageURLs,
		)
		createdID, err = tx.Reviews().Create(ctx, tx.DB(), entity)
		if err != nil {
			// The partial unique index closes the check-then-insert race.
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return ErrDuplicateReview
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		return recalcSpaceRating(ctx, tx, sp)
	})
	if err != nil {
		return uuid.Nil, err
	}
	return createdID, nil
}

func (c *reviewCommandsImpl) Update(ctx context.Context, guestID, reviewID uuid.UUID, in UpdateReviewInput) error {
	rating, err := review.NewRating(in.Rating)
	if err != nil {
		return errs.Mark(err, ErrDomainValidation)
	}
	content, err := review.NewContent(in.Content)
	if err != nil {
		return errs.Mark(err, ErrDomainValidation)
	}

	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := c.ownedReview(ctx, tx, guestID, reviewID)
		if err != nil {
			return err
		}

		sp, err := tx.Spaces().LockByID(ctx, tx.DB(), snap.SpaceID)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		entity := reviewFromSnapshot(snap)
		entity.Update(rating, content, in.ImageURLs)
		if err := tx.Reviews().Update(ctx, tx.DB(), entity); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return recalcSpaceRating(ctx, tx, sp)
	})
}

func (c *reviewCommandsImpl) Delete(ctx context.Context, guestID, reviewID uuid.UUID) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := c.ownedReview(ctx, tx, guestID, reviewID)
		if err != nil {
			return err
		}

		sp, err := tx.Spaces().LockByID(ctx, tx.DB(), snap.SpaceID)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		if err := tx.Reviews().SoftDelete(ctx, tx.DB(), reviewID, c.clock.Now()); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		// The soft-deleted review drops out of the average immediately.
		return recalcSpaceRating(ctx, tx, sp)
	})
}

func (c *reviewCommandsImpl) ownedReview(ctx context.Context, tx shared.Tx, guestID, reviewID uuid.UUID) (*shared.ReviewSnapshot, error) {
	snap, err := tx.Reads().ReviewByID(ctx, reviewID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrReviewNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if snap.GuestID != guestID {
		return nil, ErrNoPermission
	}
	return snap, nil
}

func reviewFromSnapshot(snap *shared.ReviewSnapshot) *review.Review {
	return review.ReconstructReview(
		snap.ID, snap.ReservationID, snap.GuestID, snap.SpaceID,
		review.Rating(snap.Rating), review.Content(snap.Content),
		snap.ReservedDate, snap.ImageURLs,
		snap.CreatedAt, snap.UpdatedAt, nil,
	)
}

// recalcSpaceRating rereads the live ratings and writes the mean back through
// the space entity. The caller must hold the space row lock so concurrent
// review writes cannot interleave between the read and the write.
func recalcSpaceRating(ctx context.Context, tx shared.Tx, sp *space.Space) error {
	ratings, err := tx.Reviews().RatingsForSpace(ctx, tx.DB(), sp.ID())
	if err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	sp.UpdateAvgRating(review.AverageRating(ratings))
	if err := tx.Spaces().UpdateAvgRating(ctx, tx.DB(), sp.ID(), sp.AvgRating()); err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

type ReviewCommentCommands interface {
	Create(ctx context.Context, hostID, reviewID uuid.UUID, content string) (uuid.UUID, error)
	Update(ctx context.Context, hostID, commentID uuid.UUID, content string) error
	Delete(ctx context.Context, hostID, commentID uuid.UUID) error
}

type reviewCommentCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewReviewCommentCommands(uow shared.UnitOfWork, clock clock.Clock) ReviewCommentCommands {
	return &reviewCommentCommandsImpl{uow: uow, clock: clock}
}

func (c *reviewCommentCommandsImpl) Create(ctx context.Context, hostID, reviewID uuid.UUID, content string) (uuid.UUID, error) {
	vo, err := review.NewContent(content)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrDomainValidation)
	}

	var createdID uuid.UUID
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Reads().ReviewByID(ctx, reviewID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrReviewNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		sp, err := tx.Reads().SpaceByID(ctx, snap.SpaceID)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if sp.HostID != hostID {
			return ErrNoPermission
		}

		exists, err := tx.ReviewComments().ExistsForReview(ctx, tx.DB(), reviewID)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if exists {
			return ErrDuplicateComment
		}

		createdID, err = tx.ReviewComments().Create(ctx, tx.DB(), review.NewComment(reviewID, hostID, vo))
		if err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return ErrDuplicateComment
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	return createdID, nil
}

func (c *reviewCommentCommandsImpl) Update(ctx context.Context, hostID, commentID uuid.UUID, content string) error {
	vo, err := review.NewContent(content)
	if err != nil {
		return errs.Mark(err, ErrDomainValidation)
	}

	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := c.ownedComment(ctx, tx, hostID, commentID)
		if err != nil {
			return err
		}

		entity := review.ReconstructComment(
			snap.ID, snap.ReviewID, snap.HostID, review.Content(snap.Content),
			snap.CreatedAt, snap.UpdatedAt, nil,
		)
		entity.UpdateContent(vo)
		if err := tx.ReviewComments().Update(ctx, tx.DB(), entity); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
}

func (c *reviewCommentCommandsImpl) Delete(ctx context.Context, hostID, commentID uuid.UUID) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := c.ownedComment(ctx, tx, hostID, commentID); err != nil {
			return err
		}
		if err := tx.ReviewComments().SoftDelete(ctx, tx.DB(), commentID, c.clock.Now()); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
}

func (c *reviewCommentCommandsImpl) ownedComment(ctx context.Context, tx shared.Tx, hostID, commentID uuid.UUID) (*shared.CommentSnapshot, error) {
	snap, err := tx.Reads().CommentByID(ctx, commentID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrCommentNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if snap.HostID != hostID {
		return nil, ErrNoPermission
	}
	return snap, nil
}
