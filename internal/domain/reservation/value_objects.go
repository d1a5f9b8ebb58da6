package reservation

import (
	"fmt"
	"time"

	"spacehub/internal/pkg/errs"
)

var ErrInvalidHourRange = errs.New("start hour must be before end hour")

// HourRange is a half-open [start, end) range of whole hours within one day.
// All booking arithmetic in the system is hour-granular.
type HourRange struct {
	start int
	end   int
}

func NewHourRange(start, end int) (HourRange, error) {
	if start < 0 || end > 24 || start >= end {
		return HourRange{}, ErrInvalidHourRange
	}
	return HourRange{start: start, end: end}, nil
}

func (r HourRange) Start() int { return r.start }
func (r HourRange) End() int   { return r.end }

func (r HourRange) Hours() int {
	return r.end - r.start
}

// Overlaps uses the half-open interval test: a touches b only when
// a.start < b.end and a.end > b.start. Back-to-back ranges do not overlap.
func (r HourRange) Overlaps(other HourRange) bool {
	return r.start < other.end && r.end > other.start
}

func (r HourRange) Contains(hour int) bool {
	return hour >= r.start && hour < r.end
}

// EndsBy reports whether the range has fully elapsed on the given date.
func (r HourRange) EndsBy(now time.Time, date time.Time) bool {
	end := time.Date(date.Year(), date.Month(), date.Day(), r.end, 0, 0, 0, now.Location())
	return !now.Before(end)
}

// StartsAfter reports whether the range begins strictly after the given
// moment on the given date. Same-hour starts count as past.
func (r HourRange) StartsAfter(now time.Time, date time.Time) bool {
	start := time.Date(date.Year(), date.Month(), date.Day(), r.start, 0, 0, 0, now.Location())
	return start.After(now)
}

func (r HourRange) StartString() string { return FormatHour(r.start) }
func (r HourRange) EndString() string   { return FormatHour(r.end) }

// FormatHour renders an hour in the "HH:00:00" wire format used by the API.
func FormatHour(h int) string {
	return fmt.Sprintf("%02d:00:00", h)
}
