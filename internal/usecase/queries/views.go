package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)

type SpaceView struct {
	ID            uuid.UUID `json:"id"`
	HostID        uuid.UUID `json:"host_id"`
	Name          string    `json:"name"`
	Category      string    `json:"category"`
	UseCategory   string    `json:"use_category"`
	MaxCapacity   int       `json:"max_capacity"`
	Address       string    `json:"address"`
	DetailAddress string    `json:"detail_address"`
	PricePerHour  int       `json:"price_per_hour"`
	ThumbnailURL  string    `json:"thumbnail_url"`
	AvgRating     float64   `json:"avg_rating"`
}

type ReservationView struct {
	ID             uuid.UUID `json:"id"`
	SpaceID        uuid.UUID `json:"space_id"`
	SpaceName      string    `json:"space_name"`
	GuestID        uuid.UUID `json:"guest_id"`
	GuestNickname  string    `json:"guest_nickname"`
	Date           time.Time `json:"date"`
	StartTime      string    `json:"start_time"`
	EndTime        string    `json:"end_time"`
	GuestCount     int       `json:"guest_count"`
	Price          int       `json:"price"`
	UsagePurpose   string    `json:"usage_purpose"`
	RequestMessage string    `json:"request_message"`
	Status         string    `json:"status"`
	CurrentUsing   bool      `json:"current_using"`
	CreatedAt      time.Time `json:"created_at"`
}

type ReviewableItem struct {
	ReservationID uuid.UUID `json:"reservation_id"`
	SpaceID       uuid.UUID `json:"space_id"`
	SpaceName     string    `json:"space_name"`
	Date          time.Time `json:"date"`
	StartTime     string    `json:"start_time"`
	EndTime       string    `json:"end_time"`
}

type ReviewView struct {
	ID            uuid.UUID    `json:"id"`
	ReservationID uuid.UUID    `json:"reservation_id"`
	SpaceID       uuid.UUID    `json:"space_id"`
	SpaceName     string       `json:"space_name"`
	GuestNickname string       `json:"guest_nickname"`
	Rating        int          `json:"rating"`
	Content       string       `json:"content"`
	ReservedDate  time.Time    `json:"reserved_date"`
	ImageURLs     []string     `json:"image_urls"`
	Comment       *CommentView `json:"comment,omitempty"`
	CreatedAt     time.Time    `json:"created_at"`
	UpdatedAt     time.Time    `json:"updated_at"`
}

type CommentView struct {
	ID           uuid.UUID `json:"id"`
	ReviewID     uuid.UUID `json:"review_id"`
	HostNickname string    `json:"host_nickname"`
	Content      string    `json:"content"`
	CreatedAt    time.Time `json:"created_at"`
}
