package request

import (
	"strconv"
	"strings"
	"time"

	"spacehub/internal/pkg/errs"
	"spacehub/internal/usecase/commands"

	"github.com/google/uuid"
)

var (
	ErrInvalidDate = errs.New("date must be formatted yyyy-mm-dd")
	ErrInvalidTime = errs.New("time must be formatted HH:00:00")
)

type CreateReservationRequest struct {
	Date           string `json:"date" binding:"required"`
	StartTime      string `json:"start_time" binding:"required"`
	EndTime        string `json:"end_time" binding:"required"`
	GuestCount     int    `json:"guest_count" binding:"required,min=1"`
	Price          int    `json:"price" binding:"required,min=0"`
	UsagePurpose   string `json:"usage_purpose" binding:"required"`
	RequestMessage string `json:"request_message"`
}

func (r CreateReservationRequest) ToInput(spaceID uuid.UUID) (commands.CreateReservationInput, error) {
	date, err := ParseDate(r.Date)
	if err != nil {
		return commands.CreateReservationInput{}, err
	}
	start, err := ParseHour(r.StartTime)
	if err != nil {
		return commands.CreateReservationInput{}, err
	}
	end, err := ParseHour(r.EndTime)
	if err != nil {
		return commands.CreateReservationInput{}, err
	}

	return commands.CreateReservationInput{
		SpaceID:        spaceID,
		Date:           date,
		StartHour:      start,
		EndHour:        end,
		GuestCount:     r.GuestCount,
		Price:          r.Price,
		UsagePurpose:   r.UsagePurpose,
		RequestMessage: r.RequestMessage,
	}, nil
}

func ParseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation("2006-01-02", s, time.Local)
	if err != nil {
		return time.Time{}, errs.Mark(err, ErrInvalidDate)
	}
	return t, nil
}

// ParseHour accepts "HH:00:00" and returns the hour. Minutes and seconds
// must be zero; the system is hour granular.
func ParseHour(s string) (int, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 3 || parts[1] != "00" || parts[2] != "00" {
		return 0, ErrInvalidTime
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 24 {
		return 0, ErrInvalidTime
	}
	return h, nil
}
