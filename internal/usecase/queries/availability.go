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
	ErrSpaceNotFound         = errs.New("space not found")
	ErrAvailableTimeNotFound = errs.New("available time not found")
)

// Window is a host-declared bookable range for one date.
type Window struct {
	StartHour int
	EndHour   int
}

// BookedRange is an existing reservation's slice of a date.
type BookedRange struct {
	StartHour int
	EndHour   int
	Status    reservation.Status
}

type AvailabilityReadStore interface {
	SpaceExists(ctx context.Context, spaceID uuid.UUID) (bool, error)
	WindowsFor(ctx context.Context, spaceID uuid.UUID, date time.Time) ([]Window, error)
	BookedRangesFor(ctx context.Context, spaceID uuid.UUID, date time.Time) ([]BookedRange, error)
}

type AvailabilityQueries interface {
	// ListSlots returns the bookable hour starts for a space on a date,
	// formatted "HH:00:00" ascending. An empty list is a valid answer for a
	// fully booked day.
	ListSlots(ctx context.Context, spaceID uuid.UUID, date time.Time) ([]string, error)
}

type availabilityQueriesImpl struct {
	store AvailabilityReadStore
	clock clock.Clock
}

func NewAvailabilityQueries(store AvailabilityReadStore, clock clock.Clock) AvailabilityQueries {
	return &availabilityQueriesImpl{store: store, clock: clock}
}

func (q *availabilityQueriesImpl) ListSlots(ctx context.Context, spaceID uuid.UUID, date time.Time) ([]string, error) {
	exists, err := q.store.SpaceExists(ctx, spaceID)
	if err != nil {
		return nil, errs.Mark(err, ErrSpaceNotFound)
	}
	if !exists {
		return nil, ErrSpaceNotFound
	}

	now := q.clock.Now()
	today := truncateToDate(now)
	target := truncateToDate(date.In(now.Location()))

	// Past dates never have availability, even if a window row exists.
	if target.Before(today) {
		return nil, ErrAvailableTimeNotFound
	}

	windows, err := q.store.WindowsFor(ctx, spaceID, target)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrAvailableTimeNotFound
		}
		return nil, err
	}
	if len(windows) == 0 {
		return nil, ErrAvailableTimeNotFound
	}

	booked, err := q.store.BookedRangesFor(ctx, spaceID, target)
	if err != nil {
		return nil, err
	}

	open := make([]bool, 24)
	for _, w := range windows {
		for h := w.StartHour; h < w.EndHour; h++ {
			open[h] = true
		}
	}

	// Today only offers hours strictly after the current one.
	if target.Equal(today) {
		for h := 0; h <= now.Hour() && h < 24; h++ {
			open[h] = false
		}
	}

	for _, b := range booked {
		if !b.Status.BlocksAvailability() {
			continue
		}
		for h := b.StartHour; h < b.EndHour; h++ {
			open[h] = false
		}
	}

	slots := make([]string, 0, 24)
	for h := 0; h < 24; h++ {
		if open[h] {
			slots = append(slots, reservation.FormatHour(h))
		}
	}
	return slots, nil
}

func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
