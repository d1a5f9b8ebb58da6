package space

import (
	"time"

	"spacehub/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrInvalidCapacity = errs.New("max capacity must be positive")
	ErrNegativePrice   = errs.New("price per hour cannot be negative")
	ErrEmptyName       = errs.New("space name cannot be empty")
)

type Space struct {
	id           uuid.UUID
	hostID       uuid.UUID
	name         string
	category     Category
	useCategory  UseCategory
	maxCapacity  int
	address      string
	detailAddr   string
	pricePerHour int
	thumbnailURL string
	latitude     float64
	longitude    float64
	avgRating    float64
	createdAt    time.Time
	updatedAt    time.Time
}

func NewSpace(
	hostID uuid.UUID,
	name string,
	category Category,
	useCategory UseCategory,
	maxCapacity int,
	address, detailAddr string,
	pricePerHour int,
	thumbnailURL string,
	latitude, longitude float64,
) (*Space, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	if maxCapacity <= 0 {
		return nil, ErrInvalidCapacity
	}
	if pricePerHour < 0 {
		return nil, ErrNegativePrice
	}

	return &Space{
		id:           uuid.New(),
		hostID:       hostID,
		name:         name,
		category:     category,
		useCategory:  useCategory,
		maxCapacity:  maxCapacity,
		address:      address,
		detailAddr:   detailAddr,
		pricePerHour: pricePerHour,
		thumbnailURL: thumbnailURL,
		latitude:     latitude,
		longitude:    longitude,
		avgRating:    0,
	}, nil
}

func ReconstructSpace(
	id, hostID uuid.UUID,
	name string,
	category Category,
	useCategory UseCategory,
	maxCapacity int,
	address, detailAddr string,
	pricePerHour int,
	thumbnailURL string,
	latitude, longitude float64,
	avgRating float64,
	createdAt, updatedAt time.Time,
) *Space {
	return &Space{
		id:           id,
		hostID:       hostID,
		name:         name,
		category:     category,
		useCategory:  useCategory,
		maxCapacity:  maxCapacity,
		address:      address,
		detailAddr:   detailAddr,
		pricePerHour: pricePerHour,
		thumbnailURL: thumbnailURL,
		latitude:     latitude,
		longitude:    longitude,
		avgRating:    avgRating,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

func (s *Space) ID() uuid.UUID            { return s.id }
func (s *Space) HostID() uuid.UUID        { return s.hostID }
func (s *Space) Name() string             { return s.name }
func (s *Space) Category() Category       { return s.category }
func (s *Space) UseCategory() UseCategory { return s.useCategory }
func (s *Space) MaxCapacity() int         { return s.maxCapacity }
func (s *Space) Address() string          { return s.address }
func (s *Space) DetailAddress() string    { return s.detailAddr }
func (s *Space) PricePerHour() int        { return s.pricePerHour }
func (s *Space) ThumbnailURL() string     { return s.thumbnailURL }
func (s *Space) Latitude() float64        { return s.latitude }
func (s *Space) Longitude() float64       { return s.longitude }
func (s *Space) AvgRating() float64       { return s.avgRating }
func (s *Space) CreatedAt() time.Time     { return s.createdAt }
func (s *Space) UpdatedAt() time.Time     { return s.updatedAt }

func (s *Space) IsOwnedBy(hostID uuid.UUID) bool {
	return s.hostID == hostID
}

// avgRating is derived state; it is only ever written by the rating
// recalculation, never by space edits.
func (s *Space) UpdateAvgRating(rating float64) {
	s.avgRating = rating
}
