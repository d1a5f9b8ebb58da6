package repository

import (
	"context"
	"time"

	"spacehub/internal/domain/review"
	"spacehub/internal/infra/db"

	"github.com/google/uuid"
)

type ReviewCommentRepository struct{}

func NewReviewCommentRepository() *ReviewCommentRepository {
	return &ReviewCommentRepository{}
}

const createCommentSQL = `
INSERT INTO review_comments (id, review_id, host_id, content)
VALUES ($1, $2, $3, $4)
RETURNING id`

func (r *ReviewCommentRepository) Create(ctx context.Context, tx db.DBTX, c *review.Comment) (uuid.UUID, error) {
	var id uuid.UUID
	err := tx.QueryRow(ctx, createCommentSQL,
		c.ID(), c.ReviewID(), c.HostID(), c.Content().String(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, wrapPgErr("failed to create review comment", err)
	}
	return id, nil
}

const updateCommentSQL = `
UPDATE review_comments SET content = $2, updated_at = now()
WHERE id = $1 AND deleted_at IS NULL`

func (r *ReviewCommentRepository) Update(ctx context.Context, tx db.DBTX, c *review.Comment) error {
	tag, err := tx.Exec(ctx, updateCommentSQL, c.ID(), c.Content().String())
	if err != nil {
		return wrapPgErr("failed to update review comment", err)
	}
	if tag.RowsAffected() == 0 {
		return notFoundErr("review comment not found for update")
	}
	return nil
}

const softDeleteCommentSQL = `
UPDATE review_comments SET deleted_at = $2, updated_at = $2
WHERE id = $1 AND deleted_at IS NULL`

func (r *ReviewCommentRepository) SoftDelete(ctx context.Context, tx db.DBTX, commentID uuid.UUID, now time.Time) error {
	tag, err := tx.Exec(ctx, softDeleteCommentSQL, commentID, now)
	if err != nil {
		return wrapPgErr("failed to soft delete review comment", err)
	}
	if tag.RowsAffected() == 0 {
		return notFoundErr("review comment not found for delete")
	}
	return nil
}

const commentExistsSQL = `
SELECT EXISTS (
    SELECT 1 FROM review_comments
    WHERE review_id = $1 AND deleted_at IS NULL
)`

func (r *ReviewCommentRepository) ExistsForReview(ctx context.Context, tx db.DBTX, reviewID uuid.UUID) (bool, error) {
	var exists bool
	err := tx.QueryRow(ctx, commentExistsSQL, reviewID).Scan(&exists)
	if err != nil {
		return false, wrapPgErr("failed to check review comment existence", err)
	}
	return exists, nil
}
