package commands

import (
	"context"
	"testing"
	"time"

	"spacehub/internal/domain/reservation"
	"spacehub/internal/domain/space"
	"spacehub/internal/pkg/clock"
	"spacehub/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReservationCommands_Create(t *testing.T) {
	ctx := context.Background()
	guestID := uuid.New()
	spaceID := uuid.New()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	date := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)

	sp := lockableSpace(spaceID, 3, 15000)
	window := space.ReconstructAvailableTime(uuid.New(), spaceID, date, 9, 18)

	validInput := func() CreateReservationInput {
		return CreateReservationInput{
			SpaceID:      spaceID,
			Date:         date,
			StartHour:    14,
			EndHour:      16,
			GuestCount:   2,
			Price:        30000,
			UsagePurpose: "GROUP_MEETING",
		}
	}

	setup := func() (*fakeTx, ReservationCommands) {
		tx := newFakeTx()
		tx.spaces.lockSpace = sp
		tx.reads.windows = []*space.AvailableTime{window}
		tx.reservations.createdID = uuid.New()
		return tx, NewReservationCommands(&fakeUoW{tx: tx}, clock.NewMockClock(now))
	}

	t.Run("creates a pending reservation", func(t *testing.T) {
		tx, cmds := setup()

		id, err := cmds.Create(ctx, guestID, validInput())
		require.NoError(t, err)
		assert.Equal(t, tx.reservations.createdID, id)
		require.NotNil(t, tx.reservations.created)
		assert.Equal(t, reservation.StatusPending, tx.reservations.created.Status())
		assert.Equal(t, 1, tx.spaces.lockCalls)
	})

	t.Run("unknown space", func(t *testing.T) {
		tx, cmds := setup()
		tx.spaces.lockSpace = nil
		tx.spaces.lockErr = notFoundErr()

		_, err := cmds.Create(ctx, guestID, validInput())
		assert.ErrorIs(t, err, ErrSpaceNotFound)
	})

	t.Run("guest count over capacity", func(t *testing.T) {
		_, cmds := setup()
		in := validInput()
		in.GuestCount = 4

		_, err := cmds.Create(ctx, guestID, in)
		assert.ErrorIs(t, err, ErrInvalidCapacity)
	})

	t.Run("price mismatch", func(t *testing.T) {
		_, cmds := setup()
		in := validInput()
		in.Price = 15000

		_, err := cmds.Create(ctx, guestID, in)
		assert.ErrorIs(t, err, ErrInvalidPrice)
	})

	t.Run("slot outside declared window", func(t *testing.T) {
		_, cmds := setup()
		in := validInput()
		in.StartHour = 17
		in.EndHour = 19
		in.Price = 30000

		_, err := cmds.Create(ctx, guestID, in)
		assert.ErrorIs(t, err, ErrAvailableTimeNotFound)
	})

	t.Run("no window declared for the date", func(t *testing.T) {
		tx, cmds := setup()
		tx.reads.windows = nil

		_, err := cmds.Create(ctx, guestID, validInput())
		assert.ErrorIs(t, err, ErrAvailableTimeNotFound)
	})

	t.Run("overlapping booking", func(t *testing.T) {
		tx, cmds := setup()
		tx.reservations.overlap = true

		_, err := cmds.Create(ctx, guestID, validInput())
		assert.ErrorIs(t, err, ErrTimeUnavailable)
	})

	t.Run("past date", func(t *testing.T) {
		_, cmds := setup()
		in := validInput()
		in.Date = time.Date(2026, 2, 20, 0, 0, 0, 0, time.UTC)

		_, err := cmds.Create(ctx, guestID, in)
		assert.ErrorIs(t, err, ErrAvailableTimeNotFound)
	})

	t.Run("inverted hour range", func(t *testing.T) {
		_, cmds := setup()
		in := validInput()
		in.StartHour = 16
		in.EndHour = 14

		_, err := cmds.Create(ctx, guestID, in)
		assert.ErrorIs(t, err, ErrDomainValidation)
	})
}

func TestReservationCommands_Cancel(t *testing.T) {
	ctx := context.Background()
	guestID := uuid.New()
	reservationID := uuid.New()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	date := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)

	snap := func(owner uuid.UUID, status string, d time.Time) *shared.ReservationSnapshot {
		return &shared.ReservationSnapshot{
			ID:        reservationID,
			SpaceID:   uuid.New(),
			GuestID:   owner,
			Date:      d,
			StartHour: 14,
			EndHour:   16,
			Status:    status,
		}
	}

	t.Run("pending cancels to rejected", func(t *testing.T) {
		tx := newFakeTx()
		tx.reads.reservation = snap(guestID, "PENDING", date)
		cmds := NewReservationCommands(&fakeUoW{tx: tx}, clock.NewMockClock(now))

		require.NoError(t, cmds.Cancel(ctx, guestID, reservationID))
		require.Len(t, tx.reservations.statusUpdates, 1)
		assert.Equal(t, reservation.StatusRejected, tx.reservations.statusUpdates[0].status)
	})

	t.Run("someone else's reservation reads as missing", func(t *testing.T) {
		tx := newFakeTx()
		tx.reads.reservation = snap(uuid.New(), "PENDING", date)
		cmds := NewReservationCommands(&fakeUoW{tx: tx}, clock.NewMockClock(now))

		assert.ErrorIs(t, cmds.Cancel(ctx, guestID, reservationID), ErrReservationNotFound)
	})

	t.Run("accepted cannot cancel", func(t *testing.T) {
		tx := newFakeTx()
		tx.reads.reservation = snap(guestID, "ACCEPTED", date)
		cmds := NewReservationCommands(&fakeUoW{tx: tx}, clock.NewMockClock(now))

		assert.ErrorIs(t, cmds.Cancel(ctx, guestID, reservationID), ErrCannotCancel)
	})

	t.Run("missing reservation", func(t *testing.T) {
		tx := newFakeTx()
		tx.reads.reservationErr = notFoundErr()
		cmds := NewReservationCommands(&fakeUoW{tx: tx}, clock.NewMockClock(now))

		assert.ErrorIs(t, cmds.Cancel(ctx, guestID, reservationID), ErrReservationNotFound)
	})
}

func TestHostReservationCommands_Decide(t *testing.T) {
	ctx := context.Background()
	hostID := uuid.New()
	spaceID := uuid.New()
	reservationID := uuid.New()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	date := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)

	setup := func(status string, owner uuid.UUID) (*fakeTx, HostReservationCommands) {
		tx := newFakeTx()
		tx.reads.reservation = &shared.ReservationSnapshot{
			ID:        reservationID,
			SpaceID:   spaceID,
			GuestID:   uuid.New(),
			Date:      date,
			StartHour: 14,
			EndHour:   16,
			Status:    status,
		}
		tx.reads.space = &shared.SpaceSnapshot{ID: spaceID, HostID: owner}
		return tx, NewHostReservationCommands(&fakeUoW{tx: tx}, clock.NewMockClock(now))
	}

	t.Run("accept pending", func(t *testing.T) {
		tx, cmds := setup("PENDING", hostID)

		require.NoError(t, cmds.Accept(ctx, hostID, reservationID))
		require.Len(t, tx.reservations.statusUpdates, 1)
		assert.Equal(t, reservation.StatusAccepted, tx.reservations.statusUpdates[0].status)
	})

	t.Run("reject pending", func(t *testing.T) {
		tx, cmds := setup("PENDING", hostID)

		require.NoError(t, cmds.Reject(ctx, hostID, reservationID))
		require.Len(t, tx.reservations.statusUpdates, 1)
		assert.Equal(t, reservation.StatusRejected, tx.reservations.statusUpdates[0].status)
	})

	t.Run("another host's space", func(t *testing.T) {
		_, cmds := setup("PENDING", uuid.New())
		assert.ErrorIs(t, cmds.Accept(ctx, hostID, reservationID), ErrNoPermission)
	})

	t.Run("already accepted", func(t *testing.T) {
		_, cmds := setup("ACCEPTED", hostID)
		assert.ErrorIs(t, cmds.Accept(ctx, hostID, reservationID), ErrReservationNotPending)
	})

	t.Run("pending past its end derives completed", func(t *testing.T) {
		tx, cmds := setup("PENDING", hostID)
		tx.reads.reservation.Date = time.Date(2026, 2, 20, 0, 0, 0, 0, time.UTC)

		// PENDING does not auto-complete, so an old pending row still decides.
		require.NoError(t, cmds.Accept(ctx, hostID, reservationID))
	})
}
