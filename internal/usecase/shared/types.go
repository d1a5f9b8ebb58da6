package shared

import (
	"time"

	"github.com/google/uuid"
)

// Minimal snapshots for command-side validation reads.

type SpaceSnapshot struct {
	ID           uuid.UUID
	HostID       uuid.UUID
	Name         string
	MaxCapacity  int
	PricePerHour int
	AvgRating    float64
}

type ReservationSnapshot struct {
	ID             uuid.UUID
	SpaceID        uuid.UUID
	GuestID        uuid.UUID
	Date           time.Time
	StartHour      int
	EndHour        int
	GuestCount     int
	Price          int
	UsagePurpose   string
	RequestMessage string
	Status         string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type ReviewSnapshot struct {
	ID            uuid.UUID
	ReservationID uuid.UUID
	GuestID       uuid.UUID
	SpaceID       uuid.UUID
	Rating        int
	Content       string
	ReservedDate  time.Time
	ImageURLs     []string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type CommentSnapshot struct {
	ID        uuid.UUID
	ReviewID  uuid.UUID
	HostID    uuid.UUID
	SpaceID   uuid.UUID
	Content   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type CreateUserParams struct {
	LoginID      string
	PasswordHash string
	Name         string
	Nickname     string
	Email        string
	Phone        string
	BirthDay     *time.Time
	Role         string
}

type UserRecord struct {
	ID           uuid.UUID
	LoginID      string
	PasswordHash string
	Name         string
	Nickname     string
	Email        string
	Phone        string
	BirthDay     *time.Time
	Role         string
	CreatedAt    time.Time
}
