package readstore

import (
	"context"
	"time"

	"spacehub/internal/domain/reservation"
	"spacehub/internal/infra"
	"spacehub/internal/infra/db"
	"spacehub/internal/usecase/queries"

	"github.com/google/uuid"
)

type AvailabilityReadStore struct {
	db db.DBTX
}

func NewAvailabilityReadStore(dbtx db.DBTX) *AvailabilityReadStore {
	return &AvailabilityReadStore{db: dbtx}
}

const spaceExistsSQL = `
SELECT EXISTS (SELECT 1 FROM spaces WHERE id = $1 AND deleted_at IS NULL)`

func (r *AvailabilityReadStore) SpaceExists(ctx context.Context, spaceID uuid.UUID) (bool, error) {
	var exists bool
	if err := r.db.QueryRow(ctx, spaceExistsSQL, spaceID).Scan(&exists); err != nil {
		return false, infra.WrapRepoErr(infra.KindDBFailure, "failed to check space existence", err)
	}
	return exists, nil
}

const windowsForSQL = `
SELECT start_hour, end_hour
FROM available_times
WHERE space_id = $1 AND date = $2
ORDER BY start_hour`

func (r *AvailabilityReadStore) WindowsFor(ctx context.Context, spaceID uuid.UUID, date time.Time) ([]queries.Window, error) {
	rows, err := r.db.Query(ctx, windowsForSQL, spaceID, date)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to query available times", err)
	}
	defer rows.Close()

	var windows []queries.Window
	for rows.Next() {
		var w queries.Window
		if err := rows.Scan(&w.StartHour, &w.EndHour); err != nil {
			return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to scan available time", err)
		}
		windows = append(windows, w)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to read available times", err)
	}
	return windows, nil
}

const bookedRangesForSQL = `
SELECT start_hour, end_hour, status
FROM reservations
WHERE space_id = $1 AND date = $2 AND status <> 'REJECTED' AND deleted_at IS NULL
ORDER BY start_hour`

func (r *AvailabilityReadStore) BookedRangesFor(ctx context.Context, spaceID uuid.UUID, date time.Time) ([]queries.BookedRange, error) {
	rows, err := r.db.Query(ctx, bookedRangesForSQL, spaceID, date)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to query booked ranges", err)
	}
	defer rows.Close()

	var booked []queries.BookedRange
	for rows.Next() {
		var b queries.BookedRange
		var status string
		if err := rows.Scan(&b.StartHour, &b.EndHour, &status); err != nil {
			return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to scan booked range", err)
		}
		b.Status = reservation.Status(status)
		booked = append(booked, b)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to read booked ranges", err)
	}
	return booked, nil
}
