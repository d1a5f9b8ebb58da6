package review

import (
	"time"

	"github.com/google/uuid"
)

// Comment is a host's single reply to a review of their space.
type Comment struct {
	id        uuid.UUID
	reviewID  uuid.UUID
	hostID    uuid.UUID
	content   Content
	createdAt time.Time
	updatedAt time.Time
	deletedAt *time.Time
}

func NewComment(reviewID, hostID uuid.UUID, content Content) *Comment {
	return &Comment{
		id:       uuid.New(),
		reviewID: reviewID,
		hostID:   hostID,
		content:  content,
	}
}

func ReconstructComment(
	id, reviewID, hostID uuid.UUID,
	content Content,
	createdAt, updatedAt time.Time,
	deletedAt *time.Time,
) *Comment {
	return &Comment{
		id:        id,
		reviewID:  reviewID,
		hostID:    hostID,
		content:   content,
		createdAt: createdAt,
		updatedAt: updatedAt,
		deletedAt: deletedAt,
	}
}

func (c *Comment) ID() uuid.UUID         { return c.id }
func (c *Comment) ReviewID() uuid.UUID   { return c.reviewID }
func (c *Comment) HostID() uuid.UUID     { return c.hostID }
func (c *Comment) Content() Content      { return c.content }
func (c *Comment) CreatedAt() time.Time  { return c.createdAt }
func (c *Comment) UpdatedAt() time.Time  { return c.updatedAt }
func (c *Comment) DeletedAt() *time.Time { return c.deletedAt }

func (c *Comment) IsOwnedBy(hostID uuid.UUID) bool {
	return c.hostID == hostID
}

func (c *Comment) UpdateContent(content Content) {
	c.content = content
}
