package repository

import (
	"context"
	"time"

	"spacehub/internal/domain/review"
	"spacehub/internal/infra/db"

	"github.com/google/uuid"
)

type ReviewRepository struct{}

func NewReviewRepository() *ReviewRepository {
	return &ReviewRepository{}
}

const createReviewSQL = `
INSERT INTO reviews (id, reservation_id, guest_id, space_id, rating, content, reserved_date)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING id`

func (r *ReviewRepository) Create(ctx context.Context, tx db.DBTX, rev *review.Review) (uuid.UUID, error) {
	var id uuid.UUID
	err := tx.QueryRow(ctx, createReviewSQL,
		rev.ID(),
		rev.ReservationID(),
		rev.GuestID(),
		rev.SpaceID(),
		rev.Rating().Int(),
		rev.Content().String(),
		rev.ReservedDate(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, wrapPgErr("failed to create review", err)
	}

	if err := r.replaceImages(ctx, tx, id, rev.ImageURLs()); err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

const updateReviewSQL = `
UPDATE reviews SET rating = $2, content = $3, updated_at = now()
WHERE id = $1 AND deleted_at IS NULL`

// Update rewrites rating, content and the full image set; the image list in
// the entity is authoritative.
func (r *ReviewRepository) Update(ctx context.Context, tx db.DBTX, rev *review.Review) error {
	tag, err := tx.Exec(ctx, updateReviewSQL, rev.ID(), rev.Rating().Int(), rev.Content().String())
	if err != nil {
		return wrapPgErr("failed to update review", err)
	}
	if tag.RowsAffected() == 0 {
		return notFoundErr("review not found for update")
	}
	return r.replaceImages(ctx, tx, rev.ID(), rev.ImageURLs())
}

const softDeleteReviewSQL = `
UPDATE reviews SET deleted_at = $2, updated_at = $2
WHERE id = $1 AND deleted_at IS NULL`

const softDeleteReviewImagesSQL = `
UPDATE review_images SET deleted_at = $2
WHERE review_id = $1 AND deleted_at IS NULL`

// SoftDelete retires the review and its images together; an image must never
// outlive its review in the live set.
func (r *ReviewRepository) SoftDelete(ctx context.Context, tx db.DBTX, reviewID uuid.UUID, now time.Time) error {
	tag, err := tx.Exec(ctx, softDeleteReviewSQL, reviewID, now)
	if err != nil {
		return wrapPgErr("failed to soft delete review", err)
	}
	if tag.RowsAffected() == 0 {
		return notFoundErr("review not found for delete")
	}
	if _, err := tx.Exec(ctx, softDeleteReviewImagesSQL, reviewID, now); err != nil {
		return wrapPgErr("failed to soft delete review images", err)
	}
	return nil
}

const reviewExistsSQL = `
SELECT EXISTS (
    SELECT 1 FROM reviews
    WHERE reservation_id = $1 AND deleted_at IS NULL
)`

func (r *ReviewRepository) ExistsForReservation(ctx context.Context, tx db.DBTX, reservationID uuid.UUID) (bool, error) {
	var exists bool
	err := tx.QueryRow(ctx, reviewExistsSQL, reservationID).Scan(&exists)
	if err != nil {
		return false, wrapPgErr("failed to check review existence", err)
	}
	return exists, nil
}

const ratingsForSpaceSQL = `
SELECT rating FROM reviews
WHERE space_id = $1 AND deleted_at IS NULL`

// RatingsForSpace reads live ratings only, so a soft-deleted review drops
// out of the average on the next recompute.
func (r *ReviewRepository) RatingsForSpace(ctx context.Context, tx db.DBTX, spaceID uuid.UUID) ([]review.Rating, error) {
	rows, err := tx.Query(ctx, ratingsForSpaceSQL, spaceID)
	if err != nil {
		return nil, wrapPgErr("failed to query ratings", err)
	}
	defer rows.Close()

	var ratings []review.Rating
	for rows.Next() {
		var v int
		if err := rows.Scan(&v); err != nil {
			return nil, wrapPgErr("failed to scan rating", err)
		}
		ratings = append(ratings, review.Rating(v))
	}
	if err := rows.Err(); err != nil {
		return nil, wrapPgErr("failed to read ratings", err)
	}
	return ratings, nil
}

const retireReviewImagesSQL = `
UPDATE review_images SET deleted_at = now()
WHERE review_id = $1 AND deleted_at IS NULL`

const insertReviewImageSQL = `
INSERT INTO review_images (review_id, url) VALUES ($1, $2)`

// replaceImages retires the current live set and inserts the new one.
// Replaced images are soft-deleted like every other row in this schema.
func (r *ReviewRepository) replaceImages(ctx context.Context, tx db.DBTX, reviewID uuid.UUID, urls []string) error {
	if _, err := tx.Exec(ctx, retireReviewImagesSQL, reviewID); err != nil {
		return wrapPgErr("failed to retire review images", err)
	}
	for _, url := range urls {
		if _, err := tx.Exec(ctx, insertReviewImageSQL, reviewID, url); err != nil {
			return wrapPgErr("failed to insert review image", err)
		}
	}
	return nil
}
