package shared

import (
	"context"
	"time"

	"spacehub/internal/domain/reservation"
	"spacehub/internal/domain/review"
	"spacehub/internal/domain/space"
	"spacehub/internal/infra/db"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error
	// WithDB: single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error
	// CommandReads: direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Users() UserRepository
	Spaces() SpaceRepository
	Reservations() ReservationRepository
	Reviews() ReviewRepository
	ReviewComments() ReviewCommentRepository
	Reads() CommandReads
	DB() db.DBTX
}

type CommandReads interface {
	SpaceByID(ctx context.Context, id uuid.UUID) (*SpaceSnapshot, error)
	WindowsFor(ctx context.Context, spaceID uuid.UUID, date time.Time) ([]*space.AvailableTime, error)
	ReservationByID(ctx context.Context, id uuid.UUID) (*ReservationSnapshot, error)
	ReviewByID(ctx context.Context, id uuid.UUID) (*ReviewSnapshot, error)
	CommentByID(ctx context.Context, id uuid.UUID) (*CommentSnapshot, error)
}

type UserRepository interface {
	Create(ctx context.Context, tx db.DBTX, params CreateUserParams) (uuid.UUID, error)
	FindByLoginID(ctx context.Context, tx db.DBTX, loginID string) (*UserRecord, error)
	FindByID(ctx context.Context, tx db.DBTX, id uuid.UUID) (*UserRecord, error)
	SoftDelete(ctx context.Context, tx db.DBTX, id uuid.UUID, now time.Time) error
}

type SpaceRepository interface {
	// LockByID takes a row lock on the space so overlap checks and inserts
	// within the same transaction serialize per space.
	LockByID(ctx context.Context, tx db.DBTX, id uuid.UUID) (*space.Space, error)
	UpdateAvgRating(ctx context.Context, tx db.DBTX, spaceID uuid.UUID, avg float64) error
}

type ReservationRepository interface {
	Create(ctx context.Context, tx db.DBTX, res *reservation.Reservation) (uuid.UUID, error)
	// HasBlockingOverlap reports whether any live, non-rejected reservation
	// intersects [startHour, endHour) on the date.
	HasBlockingOverlap(ctx context.Context, tx db.DBTX, spaceID uuid.UUID, date time.Time, startHour, endHour int) (bool, error)
	UpdateStatus(ctx context.Context, tx db.DBTX, id uuid.UUID, status reservation.Status) error
}

type ReviewRepository interface {
	Create(ctx context.Context, tx db.DBTX, rev *review.Review) (uuid.UUID, error)
	Update(ctx context.Context, tx db.DBTX, rev *review.Review) error
	SoftDelete(ctx context.Context, tx db.DBTX, reviewID uuid.UUID, now time.Time) error
	ExistsForReservation(ctx context.Context, tx db.DBTX, reservationID uuid.UUID) (bool, error)
	// RatingsForSpace lists the live ratings feeding the space's average.
	RatingsForSpace(ctx context.Context, tx db.DBTX, spaceID uuid.UUID) ([]review.Rating, error)
}

type ReviewCommentRepository interface {
	Create(ctx context.Context, tx db.DBTX, c *review.Comment) (uuid.UUID, error)
	Update(ctx context.Context, tx db.DBTX, c *review.Comment) error
	SoftDelete(ctx context.Context, tx db.DBTX, commentID uuid.UUID, now time.Time) error
	ExistsForReview(ctx context.Context, tx db.DBTX, reviewID uuid.UUID) (bool, error)
}
