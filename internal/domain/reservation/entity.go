package reservation

import (
	"time"

	"spacehub/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrExceedsCapacity = errs.New("guest count exceeds space capacity")
	ErrPriceMismatch   = errs.New("price does not match hourly rate")
	ErrPastReservation = errs.New("reservation time is in the past")
	ErrNotCancellable  = errs.New("reservation can no longer be cancelled")
	ErrNotPending      = errs.New("reservation is not pending")
)

// SpaceSpec is the slice of space state a reservation is validated against.
// It is a snapshot taken at booking time, not a reference to the live space.
type SpaceSpec struct {
	MaxCapacity  int
	PricePerHour int
}

type Reservation struct {
	id           uuid.UUID
	spaceID      uuid.UUID
	guestID      uuid.UUID
	date         time.Time
	hours        HourRange
	guestCount   int
	price        int
	usagePurpose UsagePurpose
	requestMsg   string
	status       Status
	createdAt    time.Time
	updatedAt    time.Time
	deletedAt    *time.Time
}

// NewReservation validates a booking request against the space snapshot.
// Capacity is checked before price so the caller surfaces the more specific
// error when both are wrong.
func NewReservation(
	spaceID, guestID uuid.UUID,
	date time.Time,
	hours HourRange,
	guestCount int,
	price int,
	purpose UsagePurpose,
	requestMsg string,
	spec SpaceSpec,
	now time.Time,
) (*Reservation, error) {
	if guestCount <= 0 || guestCount > spec.MaxCapacity {
		return nil, ErrExceedsCapacity
	}
	if price != spec.PricePerHour*hours.Hours() {
		return nil, ErrPriceMismatch
	}
	if !hours.StartsAfter(now, date) {
		return nil, ErrPastReservation
	}

	return &Reservation{
		id:           uuid.New(),
		spaceID:      spaceID,
		guestID:      guestID,
		date:         truncateToDate(date),
		hours:        hours,
		guestCount:   guestCount,
		price:        price,
		usagePurpose: purpose,
		requestMsg:   requestMsg,
		status:       StatusPending,
	}, nil
}

func ReconstructReservation(
	id, spaceID, guestID uuid.UUID,
	date time.Time,
	hours HourRange,
	guestCount int,
	price int,
	purpose UsagePurpose,
	requestMsg string,
	status Status,
	createdAt, updatedAt time.Time,
	deletedAt *time.Time,
) *Reservation {
	return &Reservation{
		id:           id,
		spaceID:      spaceID,
		guestID:      guestID,
		date:         truncateToDate(date),
		hours:        hours,
		guestCount:   guestCount,
		price:        price,
		usagePurpose: purpose,
		requestMsg:   requestMsg,
		status:       status,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
		deletedAt:    deletedAt,
	}
}

func (r *Reservation) ID() uuid.UUID              { return r.id }
func (r *Reservation) SpaceID() uuid.UUID         { return r.spaceID }
func (r *Reservation) GuestID() uuid.UUID         { return r.guestID }
func (r *Reservation) Date() time.Time            { return r.date }
func (r *Reservation) Hours() HourRange           { return r.hours }
func (r *Reservation) GuestCount() int            { return r.guestCount }
func (r *Reservation) Price() int                 { return r.price }
func (r *Reservation) UsagePurpose() UsagePurpose { return r.usagePurpose }
func (r *Reservation) RequestMessage() string     { return r.requestMsg }
func (r *Reservation) Status() Status             { return r.status }
func (r *Reservation) CreatedAt() time.Time       { return r.createdAt }
func (r *Reservation) UpdatedAt() time.Time       { return r.updatedAt }
func (r *Reservation) DeletedAt() *time.Time      { return r.deletedAt }

func (r *Reservation) IsOwnedBy(guestID uuid.UUID) bool {
	return r.guestID == guestID
}

// DerivedStatus applies the lazy completion rule for this reservation.
func (r *Reservation) DerivedStatus(now time.Time) Status {
	return r.status.Derived(now, r.date, r.hours.End())
}

// Cancel flips a pending reservation to rejected. The row is kept so the
// guest can still see it in status listings; cancellation is not a delete.
func (r *Reservation) Cancel(now time.Time) error {
	if r.DerivedStatus(now) != StatusPending {
		return ErrNotCancellable
	}
	r.status = StatusRejected
	return nil
}

func (r *Reservation) Accept(now time.Time) error {
	if r.DerivedStatus(now) != StatusPending {
		return ErrNotPending
	}
	r.status = StatusAccepted
	return nil
}

func (r *Reservation) Reject(now time.Time) error {
	if r.DerivedStatus(now) != StatusPending {
		return ErrNotPending
	}
	r.status = StatusRejected
	return nil
}

func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
