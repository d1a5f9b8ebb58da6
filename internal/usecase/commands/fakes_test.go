package commands

import (
	"context"
	"time"

	"spacehub/internal/domain/reservation"
	"spacehub/internal/domain/review"
	"spacehub/internal/domain/space"
	"spacehub/internal/infra"
	"spacehub/internal/infra/db"
	"spacehub/internal/pkg/errs"
	"spacehub/internal/usecase/shared"

	"github.com/google/uuid"
)

// In-memory doubles for the unit of work and its repositories. Commands only
// see the shared interfaces, so the fakes never touch a database.

func notFoundErr() error {
	return infra.WrapRepoErr(infra.KindNotFound, "not found", errs.New("no rows"))
}

func duplicateErr() error {
	return infra.WrapRepoErr(infra.KindDuplicateKey, "duplicate", errs.New("unique violation"))
}

type fakeReads struct {
	space          *shared.SpaceSnapshot
	spaceErr       error
	windows        []*space.AvailableTime
	windowsErr     error
	reservation    *shared.ReservationSnapshot
	reservationErr error
	review         *shared.ReviewSnapshot
	reviewErr      error
	comment        *shared.CommentSnapshot
	commentErr     error
}

func (r *fakeReads) SpaceByID(_ context.Context, _ uuid.UUID) (*shared.SpaceSnapshot, error) {
	return r.space, r.spaceErr
}

func (r *fakeReads) WindowsFor(_ context.Context, _ uuid.UUID, _ time.Time) ([]*space.AvailableTime, error) {
	return r.windows, r.windowsErr
}

func (r *fakeReads) ReservationByID(_ context.Context, _ uuid.UUID) (*shared.ReservationSnapshot, error) {
	return r.reservation, r.reservationErr
}

func (r *fakeReads) ReviewByID(_ context.Context, _ uuid.UUID) (*shared.ReviewSnapshot, error) {
	return r.review, r.reviewErr
}

func (r *fakeReads) CommentByID(_ context.Context, _ uuid.UUID) (*shared.CommentSnapshot, error) {
	return r.comment, r.commentErr
}

type fakeUserRepo struct {
	record    *shared.UserRecord
	findErr   error
	createdID uuid.UUID
	created   *shared.CreateUserParams
	createErr error
	deleted   []uuid.UUID
	deleteErr error
}

func (f *fakeUserRepo) Create(_ context.Context, _ db.DBTX, params shared.CreateUserParams) (uuid.UUID, error) {
	if f.createErr != nil {
		return uuid.Nil, f.createErr
	}
	f.created = &params
	return f.createdID, nil
}

func (f *fakeUserRepo) FindByLoginID(_ context.Context, _ db.DBTX, _ string) (*shared.UserRecord, error) {
	return f.record, f.findErr
}

func (f *fakeUserRepo) FindByID(_ context.Context, _ db.DBTX, _ uuid.UUID) (*shared.UserRecord, error) {
	return f.record, f.findErr
}

func (f *fakeUserRepo) SoftDelete(_ context.Context, _ db.DBTX, id uuid.UUID, _ time.Time) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleted = append(f.deleted, id)
	return nil
}

type ratingWrite struct {
	spaceID uuid.UUID
	avg     float64
}

type fakeSpaceRepo struct {
	lockSpace    *space.Space
	lockErr      error
	lockCalls    int
	ratingWrites []ratingWrite
}

func (f *fakeSpaceRepo) LockByID(_ context.Context, _ db.DBTX, _ uuid.UUID) (*space.Space, error) {
	f.lockCalls++
	return f.lockSpace, f.lockErr
}

func (f *fakeSpaceRepo) UpdateAvgRating(_ context.Context, _ db.DBTX, spaceID uuid.UUID, avg float64) error {
	f.ratingWrites = append(f.ratingWrites, ratingWrite{spaceID: spaceID, avg: avg})
	return nil
}

// lockableSpace builds a live space entity the way the lock query would
// rehydrate one.
func lockableSpace(id uuid.UUID, maxCapacity, pricePerHour int) *space.Space {
	return space.ReconstructSpace(
		id, uuid.New(), "Atelier 3", space.CategoryStudy, space.UseMeeting,
		maxCapacity, "Seoul", "", pricePerHour, "", 0, 0, 0,
		time.Time{}, time.Time{},
	)
}

type statusUpdate struct {
	id     uuid.UUID
	status reservation.Status
}

type fakeReservationRepo struct {
	overlap       bool
	createdID     uuid.UUID
	created       *reservation.Reservation
	statusUpdates []statusUpdate
}

func (f *fakeReservationRepo) Create(_ context.Context, _ db.DBTX, res *reservation.Reservation) (uuid.UUID, error) {
	f.created = res
	return f.createdID, nil
}

func (f *fakeReservationRepo) HasBlockingOverlap(_ context.Context, _ db.DBTX, _ uuid.UUID, _ time.Time, _, _ int) (bool, error) {
	return f.overlap, nil
}

func (f *fakeReservationRepo) UpdateStatus(_ context.Context, _ db.DBTX, id uuid.UUID, status reservation.Status) error {
	f.statusUpdates = append(f.statusUpdates, statusUpdate{id: id, status: status})
	return nil
}

type fakeReviewRepo struct {
	exists    bool
	createdID uuid.UUID
	created   *review.Review
	createErr error
	updated   *review.Review
	deleted   []uuid.UUID
	ratings   []review.Rating
}

func (f *fakeReviewRepo) Create(_ context.Context, _ db.DBTX, rev *review.Review) (uuid.UUID, error) {
	if f.createErr != nil {
		return uuid.Nil, f.createErr
	}
	f.created = rev
	return f.createdID, nil
}

func (f *fakeReviewRepo) Update(_ context.Context, _ db.DBTX, rev *review.Review) error {
	f.updated = rev
	return nil
}

func (f *fakeReviewRepo) SoftDelete(_ context.Context, _ db.DBTX, reviewID uuid.UUID, _ time.Time) error {
	f.deleted = append(f.deleted, reviewID)
	return nil
}

func (f *fakeReviewRepo) ExistsForReservation(_ context.Context, _ db.DBTX, _ uuid.UUID) (bool, error) {
	return f.exists, nil
}

func (f *fakeReviewRepo) RatingsForSpace(_ context.Context, _ db.DBTX, _ uuid.UUID) ([]review.Rating, error) {
	return f.ratings, nil
}

type fakeCommentRepo struct {
	exists    bool
	createdID uuid.UUID
	created   *review.Comment
	createErr error
	updated   *review.Comment
	deleted   []uuid.UUID
}

func (f *fakeCommentRepo) Create(_ context.Context, _ db.DBTX, c *review.Comment) (uuid.UUID, error) {
	if f.createErr != nil {
		return uuid.Nil, f.createErr
	}
	f.created = c
	return f.createdID, nil
}

func (f *fakeCommentRepo) Update(_ context.Context, _ db.DBTX, c *review.Comment) error {
	f.updated = c
	return nil
}

func (f *fakeCommentRepo) SoftDelete(_ context.Context, _ db.DBTX, commentID uuid.UUID, _ time.Time) error {
	f.deleted = append(f.deleted, commentID)
	return nil
}

func (f *fakeCommentRepo) ExistsForReview(_ context.Context, _ db.DBTX, _ uuid.UUID) (bool, error) {
	return f.exists, nil
}

type fakeTx struct {
	users        *fakeUserRepo
	spaces       *fakeSpaceRepo
	reservations *fakeReservationRepo
	reviews      *fakeReviewRepo
	comments     *fakeCommentRepo
	reads        *fakeReads
}

func newFakeTx() *fakeTx {
	return &fakeTx{
		users:        &fakeUserRepo{},
		spaces:       &fakeSpaceRepo{},
		reservations: &fakeReservationRepo{},
		reviews:      &fakeReviewRepo{},
		comments:     &fakeCommentRepo{},
		reads:        &fakeReads{},
	}
}

func (t *fakeTx) Users() shared.UserRepository                   { return t.users }
func (t *fakeTx) Spaces() shared.SpaceRepository                 { return t.spaces }
func (t *fakeTx) Reservations() shared.ReservationRepository     { return t.reservations }
func (t *fakeTx) Reviews() shared.ReviewRepository               { return t.reviews }
func (t *fakeTx) ReviewComments() shared.ReviewCommentRepository { return t.comments }
func (t *fakeTx) Reads() shared.CommandReads                     { return t.reads }
func (t *fakeTx) DB() db.DBTX                                    { return nil }

type fakeUoW struct {
	tx *fakeTx
}

func (u *fakeUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return fn(ctx, u.tx)
}

func (u *fakeUoW) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error {
	return fn(ctx, nil)
}

func (u *fakeUoW) WithDB(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error {
	return fn(ctx, nil)
}

func (u *fakeUoW) CommandReads() shared.CommandReads {
	return u.tx.reads
}
