package space

import (
	"time"

	"spacehub/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrInvalidWindow = errs.New("start hour must be before end hour")

// AvailableTime is a host-declared bookable window for one date, at hour
// granularity. The window is half-open: [startHour, endHour).
type AvailableTime struct {
	id        uuid.UUID
	spaceID   uuid.UUID
	date      time.Time
	startHour int
	endHour   int
}

func NewAvailableTime(spaceID uuid.UUID, date time.Time, startHour, endHour int) (*AvailableTime, error) {
	if startHour < 0 || endHour > 24 || startHour >= endHour {
		return nil, ErrInvalidWindow
	}
	return &AvailableTime{
		id:        uuid.New(),
		spaceID:   spaceID,
		date:      truncateToDate(date),
		startHour: startHour,
		endHour:   endHour,
	}, nil
}

func ReconstructAvailableTime(id, spaceID uuid.UUID, date time.Time, startHour, endHour int) *AvailableTime {
	return &AvailableTime{
		id:        id,
		spaceID:   spaceID,
		date:      truncateToDate(date),
		startHour: startHour,
		endHour:   endHour,
	}
}

func (a *AvailableTime) ID() uuid.UUID      { return a.id }
func (a *AvailableTime) SpaceID() uuid.UUID { return a.spaceID }
func (a *AvailableTime) Date() time.Time    { return a.date }
func (a *AvailableTime) StartHour() int     { return a.startHour }
func (a *AvailableTime) EndHour() int       { return a.endHour }

// Covers reports whether [startHour, endHour) lies entirely inside the window.
func (a *AvailableTime) Covers(startHour, endHour int) bool {
	return startHour >= a.startHour && endHour <= a.endHour
}

func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
