package repository

import (
	"context"
	"time"

	"spacehub/internal/domain/space"
	"spacehub/internal/infra"
	"spacehub/internal/infra/db"

	"github.com/google/uuid"
)

type SpaceRepository struct{}

func NewSpaceRepository() *SpaceRepository {
	return &SpaceRepository{}
}

const lockSpaceSQL = `
SELECT id, host_id, name, category, use_category, max_capacity, address, detail_address,
       price_per_hour, thumbnail_url, latitude, longitude, avg_rating, created_at, updated_at
FROM spaces
WHERE id = $1 AND deleted_at IS NULL
FOR UPDATE`

// LockByID serializes concurrent writes per space: the overlap check and
// reservation insert, and the rating recompute, run under this row lock.
func (r *SpaceRepository) LockByID(ctx context.Context, tx db.DBTX, id uuid.UUID) (*space.Space, error) {
	var spaceID, hostID uuid.UUID
	var name, categoryRaw, useCategoryRaw, address, detailAddr, thumbnailURL string
	var maxCapacity, pricePerHour int
	var latitude, longitude, avgRating float64
	var createdAt, updatedAt time.Time

	err := tx.QueryRow(ctx, lockSpaceSQL, id).Scan(
		&spaceID, &hostID, &name, &categoryRaw, &useCategoryRaw, &maxCapacity,
		&address, &detailAddr, &pricePerHour, &thumbnailURL,
		&latitude, &longitude, &avgRating, &createdAt, &updatedAt,
	)
	if err != nil {
		return nil, wrapPgErr("failed to lock space", err)
	}

	category, err := space.NewCategory(categoryRaw)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "stored space category is invalid", err)
	}
	useCategory, err := space.NewUseCategory(useCategoryRaw)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "stored space use category is invalid", err)
	}

	return space.ReconstructSpace(
		spaceID, hostID, name, category, useCategory, maxCapacity,
		address, detailAddr, pricePerHour, thumbnailURL,
		latitude, longitude, avgRating, createdAt, updatedAt,
	), nil
}

const updateAvgRatingSQL = `
UPDATE spaces SET avg_rating = $2, updated_at = now()
WHERE id = $1 AND deleted_at IS NULL`

func (r *SpaceRepository) UpdateAvgRating(ctx context.Context, tx db.DBTX, spaceID uuid.UUID, avg float64) error {
	tag, err := tx.Exec(ctx, updateAvgRatingSQL, spaceID, avg)
	if err != nil {
		return wrapPgErr("failed to update avg rating", err)
	}
	if tag.RowsAffected() == 0 {
		return notFoundErr("space not found for rating update")
	}
	return nil
}
