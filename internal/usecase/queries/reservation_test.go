package queries

import (
	"context"
	"testing"
	"time"

	"spacehub/internal/domain/reservation"
	"spacehub/internal/infra"
	"spacehub/internal/pkg/clock"
	"spacehub/internal/pkg/errs"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeReservationReadStore struct {
	byID    *ReservationRow
	byIDErr error
	rows    []*ReservationRow
}

func (s *fakeReservationReadStore) FindByID(_ context.Context, _ uuid.UUID) (*ReservationRow, error) {
	return s.byID, s.byIDErr
}

func (s *fakeReservationReadStore) FindCurrentByGuest(_ context.Context, _ uuid.UUID, _ time.Time, _, _ int32) ([]*ReservationRow, error) {
	return s.rows, nil
}

func (s *fakeReservationReadStore) FindPastByGuest(_ context.Context, _ uuid.UUID, _ time.Time, _, _ int32) ([]*ReservationRow, error) {
	return s.rows, nil
}

func (s *fakeReservationReadStore) FindByGuestAndStatus(_ context.Context, _ uuid.UUID, _ string, _ time.Time, _, _ int32) ([]*ReservationRow, error) {
	return s.rows, nil
}

func (s *fakeReservationReadStore) FindByHostAndDate(_ context.Context, _ uuid.UUID, _ time.Time, _, _ int32) ([]*ReservationRow, error) {
	return s.rows, nil
}

func (s *fakeReservationReadStore) FindBySpaceAndDate(_ context.Context, _ uuid.UUID, _ time.Time, _, _ int32) ([]*ReservationRow, error) {
	return s.rows, nil
}

type fakeSpaceReadStore struct {
	byID    *SpaceView
	byIDErr error
	byHost  []*SpaceView
}

func (s *fakeSpaceReadStore) FindByID(_ context.Context, _ uuid.UUID) (*SpaceView, error) {
	return s.byID, s.byIDErr
}

func (s *fakeSpaceReadStore) FindByHost(_ context.Context, _ uuid.UUID) ([]*SpaceView, error) {
	return s.byHost, nil
}

func notFound() error {
	return infra.WrapRepoErr(infra.KindNotFound, "not found", errs.New("no rows"))
}

func sampleRow(guestID uuid.UUID, date time.Time, startHour, endHour int, status reservation.Status) *ReservationRow {
	return &ReservationRow{
		ID:            uuid.New(),
		SpaceID:       uuid.New(),
		SpaceName:     "Studio A",
		GuestID:       guestID,
		GuestNickname: "mina",
		Date:          date,
		StartHour:     startHour,
		EndHour:       endHour,
		GuestCount:    2,
		Price:         30000,
		UsagePurpose:  "GROUP_MEETING",
		Status:        status.String(),
		CreatedAt:     date.AddDate(0, 0, -7),
	}
}

func TestReservationQueries_GetByID(t *testing.T) {
	ctx := context.Background()
	guestID := uuid.New()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	date := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)

	t.Run("returns own reservation", func(t *testing.T) {
		row := sampleRow(guestID, date, 14, 16, reservation.StatusPending)
		q := NewReservationQueries(&fakeReservationReadStore{byID: row}, clock.NewMockClock(now))

		view, err := q.GetByID(ctx, guestID, row.ID)
		require.NoError(t, err)
		assert.Equal(t, "14:00:00", view.StartTime)
		assert.Equal(t, "16:00:00", view.EndTime)
		assert.Equal(t, "PENDING", view.Status)
	})

	t.Run("someone else's reservation reads as missing", func(t *testing.T) {
		row := sampleRow(uuid.New(), date, 14, 16, reservation.StatusPending)
		q := NewReservationQueries(&fakeReservationReadStore{byID: row}, clock.NewMockClock(now))

		_, err := q.GetByID(ctx, guestID, row.ID)
		assert.ErrorIs(t, err, ErrReservationNotFound)
	})

	t.Run("missing row", func(t *testing.T) {
		q := NewReservationQueries(&fakeReservationReadStore{byIDErr: notFound()}, clock.NewMockClock(now))
		_, err := q.GetByID(ctx, guestID, uuid.New())
		assert.ErrorIs(t, err, ErrReservationNotFound)
	})
}

func TestReservationQueries_EmptyListings(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	q := NewReservationQueries(&fakeReservationReadStore{}, clock.NewMockClock(now))

	_, err := q.ListCurrent(ctx, uuid.New(), NewPage(0, 20))
	assert.ErrorIs(t, err, ErrReservationNotFound)

	_, err = q.ListPast(ctx, uuid.New(), NewPage(0, 20))
	assert.ErrorIs(t, err, ErrReservationNotFound)

	_, err = q.ListByStatus(ctx, uuid.New(), reservation.StatusPending, NewPage(0, 20))
	assert.ErrorIs(t, err, ErrReservationNotFound)
}

func TestToReservationView_DerivedStatus(t *testing.T) {
	guestID := uuid.New()
	date := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	t.Run("accepted past end derives completed", func(t *testing.T) {
		row := sampleRow(guestID, date, 9, 11, reservation.StatusAccepted)
		v := toReservationView(row, time.Date(2026, 3, 1, 11, 0, 0, 0, time.UTC))
		assert.Equal(t, "COMPLETED", v.Status)
		assert.False(t, v.CurrentUsing)
	})

	t.Run("accepted in progress is current", func(t *testing.T) {
		row := sampleRow(guestID, date, 9, 11, reservation.StatusAccepted)
		v := toReservationView(row, time.Date(2026, 3, 1, 10, 30, 0, 0, time.UTC))
		assert.Equal(t, "ACCEPTED", v.Status)
		assert.True(t, v.CurrentUsing)
	})

	t.Run("pending never current even inside slot", func(t *testing.T) {
		row := sampleRow(guestID, date, 9, 11, reservation.StatusPending)
		v := toReservationView(row, time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC))
		assert.False(t, v.CurrentUsing)
	})

	t.Run("rejected stays rejected after end", func(t *testing.T) {
		row := sampleRow(guestID, date, 9, 11, reservation.StatusRejected)
		v := toReservationView(row, time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC))
		assert.Equal(t, "REJECTED", v.Status)
	})
}

func TestToReservationView_Mapping(t *testing.T) {
	guestID := uuid.New()
	date := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	row := sampleRow(guestID, date, 14, 16, reservation.StatusPending)
	got := toReservationView(row, now)

	want := &ReservationView{
		ID:            row.ID,
		SpaceID:       row.SpaceID,
		SpaceName:     "Studio A",
		GuestID:       guestID,
		GuestNickname: "mina",
		Date:          date,
		StartTime:     "14:00:00",
		EndTime:       "16:00:00",
		GuestCount:    2,
		Price:         30000,
		UsagePurpose:  "GROUP_MEETING",
		Status:        "PENDING",
		CurrentUsing:  false,
		CreatedAt:     row.CreatedAt,
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ReservationView mismatch (-want +got):\n%s", diff)
	}
}

func TestHostReservationQueries(t *testing.T) {
	ctx := context.Background()
	hostID := uuid.New()
	spaceID := uuid.New()
	now := time.Date(2026, 3, 20, 12, 0, 0, 0, time.UTC)
	date := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)

	t.Run("no spaces", func(t *testing.T) {
		q := NewHostReservationQueries(&fakeReservationReadStore{}, &fakeSpaceReadStore{}, clock.NewMockClock(now))
		_, err := q.ListSpaces(ctx, hostID)
		assert.ErrorIs(t, err, ErrNoHostSpace)
	})

	t.Run("pending rows are filtered out", func(t *testing.T) {
		rows := []*ReservationRow{
			sampleRow(uuid.New(), date, 9, 11, reservation.StatusAccepted),
			sampleRow(uuid.New(), date, 11, 13, reservation.StatusPending),
			sampleRow(uuid.New(), date, 13, 15, reservation.StatusRejected),
		}
		q := NewHostReservationQueries(&fakeReservationReadStore{rows: rows}, &fakeSpaceReadStore{}, clock.NewMockClock(now))

		views, err := q.ListByDate(ctx, hostID, date, NewPage(0, 20))
		require.NoError(t, err)
		require.Len(t, views, 1)
		assert.Equal(t, "COMPLETED", views[0].Status)
	})

	t.Run("space owned by another host", func(t *testing.T) {
		spaces := &fakeSpaceReadStore{byID: &SpaceView{ID: spaceID, HostID: uuid.New()}}
		q := NewHostReservationQueries(&fakeReservationReadStore{}, spaces, clock.NewMockClock(now))

		_, err := q.ListBySpaceAndDate(ctx, hostID, spaceID, date, NewPage(0, 20))
		assert.ErrorIs(t, err, ErrNoPermission)
	})

	t.Run("unknown space", func(t *testing.T) {
		spaces := &fakeSpaceReadStore{byIDErr: notFound()}
		q := NewHostReservationQueries(&fakeReservationReadStore{}, spaces, clock.NewMockClock(now))

		_, err := q.ListBySpaceAndDate(ctx, hostID, spaceID, date, NewPage(0, 20))
		assert.ErrorIs(t, err, ErrSpaceNotFound)
	})
}
