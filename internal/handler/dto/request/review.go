package request

import (
	"github.com/google/uuid"

	"spacehub/internal/usecase/commands"
)

type CreateReviewRequest struct {
	ReservationID uuid.UUID `json:"reservation_id" binding:"required"`
	Rating        int       `json:"rating" binding:"required,min=1,max=5"`
	Content       string    `json:"content" binding:"required"`
	ImageURLs     []string  `json:"image_urls"`
}

func (r CreateReviewRequest) ToInput() commands.CreateReviewInput {
	return commands.CreateReviewInput{
		ReservationID: r.ReservationID,
		Rating:        r.Rating,
		Content:       r.Content,
		ImageURLs:     r.ImageURLs,
	}
}

type UpdateReviewRequest struct {
	Rating    int      `json:"rating" binding:"required,min=1,max=5"`
	Content   string   `json:"content" binding:"required"`
	ImageURLs []string `json:"image_urls"`
}

func (r UpdateReviewRequest) ToInput() commands.UpdateReviewInput {
	return commands.UpdateReviewInput{
		Rating:    r.Rating,
		Content:   r.Content,
		ImageURLs: r.ImageURLs,
	}
}

type ReviewCommentRequest struct {
	Content string `json:"content" binding:"required,max=500"`
}
