package readstore

import (
	"context"

	"spacehub/internal/infra"
	"spacehub/internal/infra/db"
	"spacehub/internal/pkg/pgconv"
	"spacehub/internal/usecase/queries"

	"github.com/google/uuid"
)

type SpaceReadStore struct {
	db db.DBTX
}

func NewSpaceReadStore(dbtx db.DBTX) *SpaceReadStore {
	return &SpaceReadStore{db: dbtx}
}

const spaceViewColumns = `
id, host_id, name, category, use_category, max_capacity,
address, detail_address, price_per_hour, thumbnail_url, avg_rating`

const findSpaceViewByIDSQL = `
SELECT ` + spaceViewColumns + `
FROM spaces
WHERE id = $1 AND deleted_at IS NULL`

func (r *SpaceReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.SpaceView, error) {
	var v queries.SpaceView
	err := r.db.QueryRow(ctx, findSpaceViewByIDSQL, id).Scan(
		&v.ID, &v.HostID, &v.Name, &v.Category, &v.UseCategory, &v.MaxCapacity,
		&v.Address, &v.DetailAddress, &v.PricePerHour, &v.ThumbnailURL, &v.AvgRating,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr(infra.KindNotFound, "space not found", err)
		}
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to find space", err)
	}
	return &v, nil
}

const findSpacesByHostSQL = `
SELECT ` + spaceViewColumns + `
FROM spaces
WHERE host_id = $1 AND deleted_at IS NULL
ORDER BY created_at`

func (r *SpaceReadStore) FindByHost(ctx context.Context, hostID uuid.UUID) ([]*queries.SpaceView, error) {
	rows, err := r.db.Query(ctx, findSpacesByHostSQL, hostID)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to query host spaces", err)
	}
	defer rows.Close()

	var views []*queries.SpaceView
	for rows.Next() {
		var v queries.SpaceView
		if err := rows.Scan(
			&v.ID, &v.HostID, &v.Name, &v.Category, &v.UseCategory, &v.MaxCapacity,
			&v.Address, &v.DetailAddress, &v.PricePerHour, &v.ThumbnailURL, &v.AvgRating,
		); err != nil {
			return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to scan space", err)
		}
		views = append(views, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to read host spaces", err)
	}
	return views, nil
}
