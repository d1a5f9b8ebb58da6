package readstore

import (
	"context"
	"time"

	"spacehub/internal/domain/space"
	"spacehub/internal/infra"
	"spacehub/internal/infra/db"
	"spacehub/internal/pkg/pgconv"
	"spacehub/internal/usecase/shared"

	"github.com/google/uuid"
)

// SnapshotReadStore serves the command side's validation reads. It returns
// minimal snapshots, not full views, and runs on whatever handle the
// transaction provides.
type SnapshotReadStore struct {
	db db.DBTX
}

func NewSnapshotReadStore(dbtx db.DBTX) *SnapshotReadStore {
	return &SnapshotReadStore{db: dbtx}
}

const spaceSnapshotSQL = `
SELECT id, host_id, name, max_capacity, price_per_hour, avg_rating
FROM spaces
WHERE id = $1 AND deleted_at IS NULL`

func (r *SnapshotReadStore) SpaceByID(ctx context.Context, id uuid.UUID) (*shared.SpaceSnapshot, error) {
	var s shared.SpaceSnapshot
	err := r.db.QueryRow(ctx, spaceSnapshotSQL, id).Scan(
		&s.ID, &s.HostID, &s.Name, &s.MaxCapacity, &s.PricePerHour, &s.AvgRating,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr(infra.KindNotFound, "space not found", err)
		}
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to find space snapshot", err)
	}
	return &s, nil
}

const windowSnapshotSQL = `
SELECT id, space_id, date, start_hour, end_hour
FROM available_times
WHERE space_id = $1 AND date = $2
ORDER BY start_hour`

func (r *SnapshotReadStore) WindowsFor(ctx context.Context, spaceID uuid.UUID, date time.Time) ([]*space.AvailableTime, error) {
	rows, err := r.db.Query(ctx, windowSnapshotSQL, spaceID, date)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to query windows", err)
	}
	defer rows.Close()

	var windows []*space.AvailableTime
	for rows.Next() {
		var id, sid uuid.UUID
		var day time.Time
		var startHour, endHour int
		if err := rows.Scan(&id, &sid, &day, &startHour, &endHour); err != nil {
			return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to scan window", err)
		}
		windows = append(windows, space.ReconstructAvailableTime(id, sid, day, startHour, endHour))
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to read windows", err)
	}
	return windows, nil
}

const reservationSnapshotSQL = `
SELECT id, space_id, guest_id, date, start_hour, end_hour, guest_count, price,
       usage_purpose, request_message, status, created_at, updated_at
FROM reservations
WHERE id = $1 AND deleted_at IS NULL`

func (r *SnapshotReadStore) ReservationByID(ctx context.Context, id uuid.UUID) (*shared.ReservationSnapshot, error) {
	var s shared.ReservationSnapshot
	err := r.db.QueryRow(ctx, reservationSnapshotSQL, id).Scan(
		&s.ID, &s.SpaceID, &s.GuestID, &s.Date, &s.StartHour, &s.EndHour,
		&s.GuestCount, &s.Price, &s.UsagePurpose, &s.RequestMessage, &s.Status,
		&s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr(infra.KindNotFound, "reservation not found", err)
		}
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to find reservation snapshot", err)
	}
	return &s, nil
}

const reviewSnapshotSQL = `
SELECT rv.id, rv.reservation_id, rv.guest_id, rv.space_id, rv.rating, rv.content, rv.reserved_date,
       rv.created_at, rv.updated_at,
       COALESCE(array_agg(ri.url ORDER BY ri.created_at) FILTER (WHERE ri.id IS NOT NULL), '{}')
FROM reviews rv
LEFT JOIN review_images ri ON ri.review_id = rv.id AND ri.deleted_at IS NULL
WHERE rv.id = $1 AND rv.deleted_at IS NULL
GROUP BY rv.id`

func (r *SnapshotReadStore) ReviewByID(ctx context.Context, id uuid.UUID) (*shared.ReviewSnapshot, error) {
	var s shared.ReviewSnapshot
	err := r.db.QueryRow(ctx, reviewSnapshotSQL, id).Scan(
		&s.ID, &s.ReservationID, &s.GuestID, &s.SpaceID, &s.Rating, &s.Content,
		&s.ReservedDate, &s.CreatedAt, &s.UpdatedAt, &s.ImageURLs,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr(infra.KindNotFound, "review not found", err)
		}
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to find review snapshot", err)
	}
	return &s, nil
}

const commentSnapshotSQL = `
SELECT rc.id, rc.review_id, rc.host_id, rv.space_id, rc.content, rc.created_at, rc.updated_at
FROM review_comments rc
JOIN reviews rv ON rv.id = rc.review_id
WHERE rc.id = $1 AND rc.deleted_at IS NULL`

func (r *SnapshotReadStore) CommentByID(ctx context.Context, id uuid.UUID) (*shared.CommentSnapshot, error) {
	var s shared.CommentSnapshot
	err := r.db.QueryRow(ctx, commentSnapshotSQL, id).Scan(
		&s.ID, &s.ReviewID, &s.HostID, &s.SpaceID, &s.Content, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr(infra.KindNotFound, "review comment not found", err)
		}
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to find comment snapshot", err)
	}
	return &s, nil
}
