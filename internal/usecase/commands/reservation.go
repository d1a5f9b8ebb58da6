package commands

import (
	"context"
	"errors"
	"time"

	"spacehub/internal/domain/reservation"
	"spacehub/internal/infra"
	"spacehub/internal/pkg/clock"
	"spacehub/internal/pkg/errs"
	"spacehub/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrSpaceNotFound           = errs.New("space not found")
	ErrInvalidCapacity         = errs.New("guest count exceeds capacity")
	ErrInvalidPrice            = errs.New("price mismatch")
	ErrAvailableTimeNotFound   = errs.New("no available time for the requested slot")
	ErrTimeUnavailable         = errs.New("time slot already reserved")
	ErrReservationNotFound     = errs.New("reservation not found")
	ErrCannotCancel            = errs.New("reservation cannot be cancelled")
	ErrReservationNotPending   = errs.New("reservation is not pending")
	ErrNoPermission            = errs.New("no permission")
	ErrDomainValidation        = errs.New("domain validation error")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

type CreateReservationInput struct {
	SpaceID        uuid.UUID
	Date           time.Time
	StartHour      int
	EndHour        int
	GuestCount     int
	Price          int
	UsagePurpose   string
	RequestMessage string
}

type ReservationCommands interface {
	Create(ctx context.Context, guestID uuid.UUID, in CreateReservationInput) (uuid.UUID, error)
	Cancel(ctx context.Context, guestID, reservationID uuid.UUID) error
}

type reservationCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewReservationCommands(uow shared.UnitOfWork, clock clock.Clock) ReservationCommands {
	return &reservationCommandsImpl{uow: uow, clock: clock}
}

// Create validates in order: space, capacity, price, declared window, then
// conflicts. The space row lock makes the overlap check and insert atomic
// against concurrent bookings of the same space.
func (c *reservationCommandsImpl) Create(ctx context.Context, guestID uuid.UUID, in CreateReservationInput) (uuid.UUID, error) {
	hours, err := reservation.NewHourRange(in.StartHour, in.EndHour)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrDomainValidation)
	}
	purpose, err := reservation.NewUsagePurpose(in.UsagePurpose)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrDomainValidation)
	}

	var createdID uuid.UUID
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		sp, err := tx.Spaces().LockByID(ctx, tx.DB(), in.SpaceID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrSpaceNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		entity, err := reservation.NewReservation(
			in.SpaceID, guestID, in.Date, hours,
			in.GuestCount, in.Price, purpose, in.RequestMessage,
			reservation.SpaceSpec{MaxCapacity: sp.MaxCapacity(), PricePerHour: sp.PricePerHour()},
			c.clock.Now(),
		)
		if err != nil {
			return mapReservationDomainErr(err)
		}

		covered, err := c.windowCovers(ctx, tx, in.SpaceID, entity.Date(), hours)
		if err != nil {
			return err
		}
		if !covered {
			return ErrAvailableTimeNotFound
		}

		conflict, err := tx.Reservations().HasBlockingOverlap(
			ctx, tx.DB(), in.SpaceID, entity.Date(), hours.Start(), hours.End(),
		)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if conflict {
			return ErrTimeUnavailable
		}

		createdID, err = tx.Reservations().Create(ctx, tx.DB(), entity)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	return createdID, nil
}

func (c *reservationCommandsImpl) windowCovers(ctx context.Context, tx shared.Tx, spaceID uuid.UUID, date time.Time, hours reservation.HourRange) (bool, error) {
	windows, err := tx.Reads().WindowsFor(ctx, spaceID, date)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return false, nil
		}
		return false, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	for _, w := range windows {
		if w.Covers(hours.Start(), hours.End()) {
			return true, nil
		}
	}
	return false, nil
}

func (c *reservationCommandsImpl) Cancel(ctx context.Context, guestID, reservationID uuid.UUID) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Reads().ReservationByID(ctx, reservationID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrReservationNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		entity, err := reservationFromSnapshot(snap)
		if err != nil {
			return err
		}
		if !entity.IsOwnedBy(guestID) {
			return ErrReservationNotFound
		}

		// Cancellation keeps the row; it stays visible in status listings.
		if err := entity.Cancel(c.clock.Now()); err != nil {
			return errs.Mark(err, ErrCannotCancel)
		}

		if err := tx.Reservations().UpdateStatus(ctx, tx.DB(), reservationID, entity.Status()); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
}

type HostReservationCommands interface {
	Accept(ctx context.Context, hostID, reservationID uuid.UUID) error
	Reject(ctx context.Context, hostID, reservationID uuid.UUID) error
}

type hostReservationCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewHostReservationCommands(uow shared.UnitOfWork, clock clock.Clock) HostReservationCommands {
	return &hostReservationCommandsImpl{uow: uow, clock: clock}
}

func (c *hostReservationCommandsImpl) Accept(ctx context.Context, hostID, reservationID uuid.UUID) error {
	return c.decide(ctx, hostID, reservationID, (*reservation.Reservation).Accept)
}

func (c *hostReservationCommandsImpl) Reject(ctx context.Context, hostID, reservationID uuid.UUID) error {
	return c.decide(ctx, hostID, reservationID, (*reservation.Reservation).Reject)
}

func (c *hostReservationCommandsImpl) decide(ctx context.Context, hostID, reservationID uuid.UUID, transition func(*reservation.Reservation, time.Time) error) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Reads().ReservationByID(ctx, reservationID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrReservationNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		sp, err := tx.Reads().SpaceByID(ctx, snap.SpaceID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrSpaceNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if sp.HostID != hostID {
			return ErrNoPermission
		}

		entity, err := reservationFromSnapshot(snap)
		if err != nil {
			return err
		}
		if err := transition(entity, c.clock.Now()); err != nil {
			return errs.Mark(err, ErrReservationNotPending)
		}

		if err := tx.Reservations().UpdateStatus(ctx, tx.DB(), reservationID, entity.Status()); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
}

// reservationFromSnapshot rehydrates the entity so state transitions run
// through its guards rather than being re-derived over raw columns.
func reservationFromSnapshot(snap *shared.ReservationSnapshot) (*reservation.Reservation, error) {
	hours, err := reservation.NewHourRange(snap.StartHour, snap.EndHour)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return reservation.ReconstructReservation(
		snap.ID, snap.SpaceID, snap.GuestID, snap.Date, hours,
		snap.GuestCount, snap.Price,
		reservation.UsagePurpose(snap.UsagePurpose), snap.RequestMessage,
		reservation.Status(snap.Status),
		snap.CreatedAt, snap.UpdatedAt, nil,
	), nil
}

func mapReservationDomainErr(err error) error {
	switch {
	case errors.Is(err, reservation.ErrExceedsCapacity):
		return errs.Mark(err, ErrInvalidCapacity)
	case errors.Is(err, reservation.ErrPriceMismatch):
		return errs.Mark(err, ErrInvalidPrice)
	case errors.Is(err, reservation.ErrPastReservation):
		return errs.Mark(err, ErrAvailableTimeNotFound)
	default:
		return errs.Mark(err, ErrDomainValidation)
	}
}
