package queries

import (
	"context"
	"time"

	"spacehub/internal/infra"
	"spacehub/internal/pkg/clock"
	"spacehub/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrReviewNotFound = errs.New("review not found")

type ReviewReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ReviewView, error)
	FindWrittenByGuest(ctx context.Context, guestID uuid.UUID, limit, offset int32) ([]*ReviewView, error)
	// FindReviewableByGuest: completed reservations without a live review.
	FindReviewableByGuest(ctx context.Context, guestID uuid.UUID, now time.Time, limit, offset int32) ([]*ReviewableItem, error)
}

type ReviewQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ReviewView, error)
	// ListReviewable returns an empty page as success; having nothing to
	// review is not an error.
	ListReviewable(ctx context.Context, guestID uuid.UUID, page Page) ([]*ReviewableItem, error)
	ListWritten(ctx context.Context, guestID uuid.UUID, page Page) ([]*ReviewView, error)
	// GetReservationForReview backs the review form with the reservation
	// being reviewed.
	GetReservationForReview(ctx context.Context, guestID, reservationID uuid.UUID) (*ReservationView, error)
}

type reviewQueriesImpl struct {
	reviews      ReviewReadStore
	reservations ReservationReadStore
	clock        clock.Clock
}

func NewReviewQueries(reviews ReviewReadStore, reservations ReservationReadStore, clock clock.Clock) ReviewQueries {
	return &reviewQueriesImpl{reviews: reviews, reservations: reservations, clock: clock}
}

func (q *reviewQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*ReviewView, error) {
	view, err := q.reviews.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrReviewNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *reviewQueriesImpl) ListReviewable(ctx context.Context, guestID uuid.UUID, page Page) ([]*ReviewableItem, error) {
	items, err := q.reviews.FindReviewableByGuest(ctx, guestID, q.clock.Now(), page.Limit(), page.Offset())
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []*ReviewableItem{}
	}
	return items, nil
}

func (q *reviewQueriesImpl) ListWritten(ctx context.Context, guestID uuid.UUID, page Page) ([]*ReviewView, error) {
	views, err := q.reviews.FindWrittenByGuest(ctx, guestID, page.Limit(), page.Offset())
	if err != nil {
		return nil, err
	}
	if len(views) == 0 {
		return nil, ErrReviewNotFound
	}
	return views, nil
}

func (q *reviewQueriesImpl) GetReservationForReview(ctx context.Context, guestID, reservationID uuid.UUID) (*ReservationView, error) {
	row, err := q.reservations.FindByID(ctx, reservationID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, err
	}
	if row.GuestID != guestID {
		return nil, ErrReservationNotFound
	}
	return toReservationView(row, q.clock.Now()), nil
}
