package reservation

import (
	"errors"
	"time"
)

var (
	ErrInvalidStatus       = errors.New("invalid reservation status")
	ErrInvalidUsagePurpose = errors.New("invalid usage purpose")
)

type Status string

const (
	StatusPending   Status = "PENDING"
	StatusAccepted  Status = "ACCEPTED"
	StatusRejected  Status = "REJECTED"
	StatusCompleted Status = "COMPLETED"
)

func NewStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusPending, StatusAccepted, StatusRejected, StatusCompleted:
		return Status(s), nil
	default:
		return "", ErrInvalidStatus
	}
}

func (s Status) String() string { return string(s) }

// BlocksAvailability reports whether a reservation in this status occupies
// its time slot. Only rejected reservations free the slot.
func (s Status) BlocksAvailability() bool {
	return s != StatusRejected
}

func (s Status) IsTerminal() bool {
	return s == StatusRejected || s == StatusCompleted
}

// Derived applies the lazy completion rule: an accepted reservation whose end
// has passed reads as COMPLETED. There is no background job writing this
// transition; every read path must derive it the same way.
func (s Status) Derived(now time.Time, date time.Time, endHour int) Status {
	if s != StatusAccepted {
		return s
	}
	end := time.Date(date.Year(), date.Month(), date.Day(), endHour, 0, 0, 0, now.Location())
	if !now.Before(end) {
		return StatusCompleted
	}
	return s
}

type UsagePurpose string

const (
	PurposeBaristaTraining UsagePurpose = "BARISTA_TRAINING"
	PurposeCooking         UsagePurpose = "COOKING_PRACTICE"
	PurposeFilming         UsagePurpose = "FILMING"
	PurposeGroupMeeting    UsagePurpose = "GROUP_MEETING"
	PurposeStudy           UsagePurpose = "STUDY"
	PurposeParty           UsagePurpose = "PARTY"
	PurposeEtc             UsagePurpose = "ETC"
)

func NewUsagePurpose(s string) (UsagePurpose, error) {
	switch UsagePurpose(s) {
	case PurposeBaristaTraining, PurposeCooking, PurposeFilming,
		PurposeGroupMeeting, PurposeStudy, PurposeParty, PurposeEtc:
		return UsagePurpose(s), nil
	default:
		return "", ErrInvalidUsagePurpose
	}
}

func (p UsagePurpose) String() string { return string(p) }
