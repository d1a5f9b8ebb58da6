package queries

import (
	"context"
	"time"

	"spacehub/internal/domain/reservation"
	"spacehub/internal/infra"
	"spacehub/internal/pkg/clock"
	"spacehub/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrReservationNotFound = errs.New("reservation not found")
	ErrNoHostSpace         = errs.New("host has no spaces")
	ErrNoPermission        = errs.New("no permission")
)

// ReservationRow is the raw shape read from storage. Status is stored, not
// derived; hours are unformatted.
type ReservationRow struct {
	ID             uuid.UUID
	SpaceID        uuid.UUID
	SpaceName      string
	GuestID        uuid.UUID
	GuestNickname  string
	Date           time.Time
	StartHour      int
	EndHour        int
	GuestCount     int
	Price          int
	UsagePurpose   string
	RequestMessage string
	Status         string
	CreatedAt      time.Time
}

type ReservationReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ReservationRow, error)
	// FindCurrentByGuest: non-rejected rows whose end has not passed.
	FindCurrentByGuest(ctx context.Context, guestID uuid.UUID, now time.Time, limit, offset int32) ([]*ReservationRow, error)
	// FindPastByGuest: accepted or completed rows whose end has passed.
	FindPastByGuest(ctx context.Context, guestID uuid.UUID, now time.Time, limit, offset int32) ([]*ReservationRow, error)
	// FindByGuestAndStatus matches against the derived status.
	FindByGuestAndStatus(ctx context.Context, guestID uuid.UUID, status string, now time.Time, limit, offset int32) ([]*ReservationRow, error)
	FindByHostAndDate(ctx context.Context, hostID uuid.UUID, date time.Time, limit, offset int32) ([]*ReservationRow, error)
	FindBySpaceAndDate(ctx context.Context, spaceID uuid.UUID, date time.Time, limit, offset int32) ([]*ReservationRow, error)
}

type SpaceReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*SpaceView, error)
	FindByHost(ctx context.Context, hostID uuid.UUID) ([]*SpaceView, error)
}

type ReservationQueries interface {
	GetByID(ctx context.Context, guestID, id uuid.UUID) (*ReservationView, error)
	ListCurrent(ctx context.Context, guestID uuid.UUID, page Page) ([]*ReservationView, error)
	ListPast(ctx context.Context, guestID uuid.UUID, page Page) ([]*ReservationView, error)
	ListByStatus(ctx context.Context, guestID uuid.UUID, status reservation.Status, page Page) ([]*ReservationView, error)
}

type reservationQueriesImpl struct {
	store ReservationReadStore
	clock clock.Clock
}

func NewReservationQueries(store ReservationReadStore, clock clock.Clock) ReservationQueries {
	return &reservationQueriesImpl{store: store, clock: clock}
}

func (q *reservationQueriesImpl) GetByID(ctx context.Context, guestID, id uuid.UUID) (*ReservationView, error) {
	row, err := q.store.FindByID(ctx, id)
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

func (q *reservationQueriesImpl) ListCurrent(ctx context.Context, guestID uuid.UUID, page Page) ([]*ReservationView, error) {
	now := q.clock.Now()
	rows, err := q.store.FindCurrentByGuest(ctx, guestID, now, page.Limit(), page.Offset())
	if err != nil {
		return nil, err
	}
	return toReservationViews(rows, now)
}

func (q *reservationQueriesImpl) ListPast(ctx context.Context, guestID uuid.UUID, page Page) ([]*ReservationView, error) {
	now := q.clock.Now()
	rows, err := q.store.FindPastByGuest(ctx, guestID, now, page.Limit(), page.Offset())
	if err != nil {
		return nil, err
	}
	return toReservationViews(rows, now)
}

func (q *reservationQueriesImpl) ListByStatus(ctx context.Context, guestID uuid.UUID, status reservation.Status, page Page) ([]*ReservationView, error) {
	now := q.clock.Now()
	rows, err := q.store.FindByGuestAndStatus(ctx, guestID, status.String(), now, page.Limit(), page.Offset())
	if err != nil {
		return nil, err
	}
	return toReservationViews(rows, now)
}

type HostReservationQueries interface {
	ListSpaces(ctx context.Context, hostID uuid.UUID) ([]*SpaceView, error)
	ListByDate(ctx context.Context, hostID uuid.UUID, date time.Time, page Page) ([]*ReservationView, error)
	ListBySpaceAndDate(ctx context.Context, hostID, spaceID uuid.UUID, date time.Time, page Page) ([]*ReservationView, error)
}

type hostReservationQueriesImpl struct {
	reservations ReservationReadStore
	spaces       SpaceReadStore
	clock        clock.Clock
}

func NewHostReservationQueries(reservations ReservationReadStore, spaces SpaceReadStore, clock clock.Clock) HostReservationQueries {
	return &hostReservationQueriesImpl{reservations: reservations, spaces: spaces, clock: clock}
}

func (q *hostReservationQueriesImpl) ListSpaces(ctx context.Context, hostID uuid.UUID) ([]*SpaceView, error) {
	spaces, err := q.spaces.FindByHost(ctx, hostID)
	if err != nil {
		return nil, err
	}
	if len(spaces) == 0 {
		return nil, ErrNoHostSpace
	}
	return spaces, nil
}

func (q *hostReservationQueriesImpl) ListByDate(ctx context.Context, hostID uuid.UUID, date time.Time, page Page) ([]*ReservationView, error) {
	now := q.clock.Now()
	rows, err := q.reservations.FindByHostAndDate(ctx, hostID, truncateToDate(date), page.Limit(), page.Offset())
	if err != nil {
		return nil, err
	}
	return toHostReservationViews(rows, now)
}

func (q *hostReservationQueriesImpl) ListBySpaceAndDate(ctx context.Context, hostID, spaceID uuid.UUID, date time.Time, page Page) ([]*ReservationView, error) {
	sp, err := q.spaces.FindByID(ctx, spaceID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrSpaceNotFound
		}
		return nil, err
	}
	if sp.HostID != hostID {
		return nil, ErrNoPermission
	}

	now := q.clock.Now()
	rows, err := q.reservations.FindBySpaceAndDate(ctx, spaceID, truncateToDate(date), page.Limit(), page.Offset())
	if err != nil {
		return nil, err
	}
	return toHostReservationViews(rows, now)
}

func toReservationViews(rows []*ReservationRow, now time.Time) ([]*ReservationView, error) {
	if len(rows) == 0 {
		return nil, ErrReservationNotFound
	}
	views := make([]*ReservationView, len(rows))
	for i, row := range rows {
		views[i] = toReservationView(row, now)
	}
	return views, nil
}

// Host listings only surface accepted and completed bookings.
func toHostReservationViews(rows []*ReservationRow, now time.Time) ([]*ReservationView, error) {
	views := make([]*ReservationView, 0, len(rows))
	for _, row := range rows {
		v := toReservationView(row, now)
		if v.Status != reservation.StatusAccepted.String() && v.Status != reservation.StatusCompleted.String() {
			continue
		}
		views = append(views, v)
	}
	if len(views) == 0 {
		return nil, ErrReservationNotFound
	}
	return views, nil
}

func toReservationView(row *ReservationRow, now time.Time) *ReservationView {
	status := reservation.Status(row.Status).Derived(now, row.Date, row.EndHour)

	currentUsing := false
	if status == reservation.StatusAccepted &&
		truncateToDate(row.Date).Equal(truncateToDate(now)) &&
		now.Hour() >= row.StartHour && now.Hour() < row.EndHour {
		currentUsing = true
	}

	return &ReservationView{
		ID:             row.ID,
		SpaceID:        row.SpaceID,
		SpaceName:      row.SpaceName,
		GuestID:        row.GuestID,
		GuestNickname:  row.GuestNickname,
		Date:           row.Date,
		StartTime:      reservation.FormatHour(row.StartHour),
		EndTime:        reservation.FormatHour(row.EndHour),
		GuestCount:     row.GuestCount,
		Price:          row.Price,
		UsagePurpose:   row.UsagePurpose,
		RequestMessage: row.RequestMessage,
		Status:         status.String(),
		CurrentUsing:   currentUsing,
		CreatedAt:      row.CreatedAt,
	}
}
