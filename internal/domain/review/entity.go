package review

import (
	"time"

	"github.com/google/uuid"
)

// Review is a guest's write-up of a completed reservation. reservedDate is
// copied from the reservation at creation so listings survive reservation
// soft-deletes without a join.
type Review struct {
	id            uuid.UUID
	reservationID uuid.UUID
	guestID       uuid.UUID
	spaceID       uuid.UUID
	rating        Rating
	content       Content
	reservedDate  time.Time
	imageURLs     []string
	createdAt     time.Time
	updatedAt     time.Time
	deletedAt     *time.Time
}

func NewReview(
	reservationID, guestID, spaceID uuid.UUID,
	rating Rating,
	content Content,
	reservedDate time.Time,
	imageURLs []string,
) *Review {
	return &Review{
		id:            uuid.New(),
		reservationID: reservationID,
		guestID:       guestID,
		spaceID:       spaceID,
		rating:        rating,
		content:       content,
		reservedDate:  truncateToDate(reservedDate),
		imageURLs:     imageURLs,
	}
}

func ReconstructReview(
	id, reservationID, guestID, spaceID uuid.UUID,
	rating Rating,
	content Content,
	reservedDate time.Time,
	imageURLs []string,
	createdAt, updatedAt time.Time,
	deletedAt *time.Time,
) *Review {
	return &Review{
		id:            id,
		reservationID: reservationID,
		guestID:       guestID,
		spaceID:       spaceID,
		rating:        rating,
		content:       content,
		reservedDate:  truncateToDate(reservedDate),
		imageURLs:     imageURLs,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		deletedAt:     deletedAt,
	}
}

func (r *Review) ID() uuid.UUID            { return r.id }
func (r *Review) ReservationID() uuid.UUID { return r.reservationID }
func (r *Review) GuestID() uuid.UUID       { return r.guestID }
func (r *Review) SpaceID() uuid.UUID       { return r.spaceID }
func (r *Review) Rating() Rating           { return r.rating }
func (r *Review) Content() Content         { return r.content }
func (r *Review) ReservedDate() time.Time  { return r.reservedDate }
func (r *Review) ImageURLs() []string      { return r.imageURLs }
func (r *Review) CreatedAt() time.Time     { return r.createdAt }
func (r *Review) UpdatedAt() time.Time     { return r.updatedAt }
func (r *Review) DeletedAt() *time.Time    { return r.deletedAt }

func (r *Review) IsOwnedBy(guestID uuid.UUID) bool {
	return r.guestID == guestID
}

// Update replaces rating, content and the full image set. Partial image
// edits are not supported; the client always sends the complete list.
func (r *Review) Update(rating Rating, content Content, imageURLs []string) {
	r.rating = rating
	r.content = content
	r.imageURLs = imageURLs
}

func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
