package readstore

import (
	"context"
	"time"

	"spacehub/internal/infra"
	"spacehub/internal/infra/db"
	"spacehub/internal/pkg/pgconv"
	"spacehub/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type ReservationReadStore struct {
	db db.DBTX
}

func NewReservationReadStore(dbtx db.DBTX) *ReservationReadStore {
	return &ReservationReadStore{db: dbtx}
}

const reservationRowSelect = `
SELECT r.id, r.space_id, s.name, r.guest_id, u.nickname,
       r.date, r.start_hour, r.end_hour, r.guest_count, r.price,
       r.usage_purpose, r.request_message, r.status, r.created_at
FROM reservations r
JOIN spaces s ON s.id = r.space_id AND s.deleted_at IS NULL
JOIN users u ON u.id = r.guest_id`

const findReservationByIDSQL = reservationRowSelect + `
WHERE r.id = $1 AND r.deleted_at IS NULL`

func (r *ReservationReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ReservationRow, error) {
	row, err := scanReservationRow(r.db.QueryRow(ctx, findReservationByIDSQL, id))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr(infra.KindNotFound, "reservation not found", err)
		}
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to find reservation", err)
	}
	return row, nil
}

// end_moment is the reservation's end as a timestamp for passed/upcoming
// comparisons against now.
const findCurrentByGuestSQL = reservationRowSelect + `
WHERE r.guest_id = $1
  AND r.deleted_at IS NULL
  AND r.status <> 'REJECTED'
  AND (r.date + r.end_hour * interval '1 hour') > $2
ORDER BY r.date, r.start_hour
LIMIT $3 OFFSET $4`

func (r *ReservationReadStore) FindCurrentByGuest(ctx context.Context, guestID uuid.UUID, now time.Time, limit, offset int32) ([]*queries.ReservationRow, error) {
	return r.queryRows(ctx, findCurrentByGuestSQL, guestID, now, limit, offset)
}

const findPastByGuestSQL = reservationRowSelect + `
WHERE r.guest_id = $1
  AND r.deleted_at IS NULL
  AND r.status IN ('ACCEPTED', 'COMPLETED')
  AND (r.date + r.end_hour * interval '1 hour') <= $2
ORDER BY r.date DESC, r.start_hour DESC
LIMIT $3 OFFSET $4`

func (r *ReservationReadStore) FindPastByGuest(ctx context.Context, guestID uuid.UUID, now time.Time, limit, offset int32) ([]*queries.ReservationRow, error) {
	return r.queryRows(ctx, findPastByGuestSQL, guestID, now, limit, offset)
}

// Status matching happens against the derived status so an accepted row
// whose end has passed answers as COMPLETED.
const findByGuestAndStatusSQL = reservationRowSelect + `
WHERE r.guest_id = $1
  AND r.deleted_at IS NULL
  AND (CASE WHEN r.status = 'ACCEPTED' AND (r.date + r.end_hour * interval '1 hour') <= $3
            THEN 'COMPLETED' ELSE r.status END) = $2
ORDER BY r.date, r.start_hour
LIMIT $4 OFFSET $5`

func (r *ReservationReadStore) FindByGuestAndStatus(ctx context.Context, guestID uuid.UUID, status string, now time.Time, limit, offset int32) ([]*queries.ReservationRow, error) {
	return r.queryRows(ctx, findByGuestAndStatusSQL, guestID, status, now, limit, offset)
}

const findByHostAndDateSQL = reservationRowSelect + `
WHERE s.host_id = $1
  AND r.date = $2
  AND r.deleted_at IS NULL
  AND r.status IN ('ACCEPTED', 'COMPLETED')
ORDER BY r.start_hour
LIMIT $3 OFFSET $4`

func (r *ReservationReadStore) FindByHostAndDate(ctx context.Context, hostID uuid.UUID, date time.Time, limit, offset int32) ([]*queries.ReservationRow, error) {
	return r.queryRows(ctx, findByHostAndDateSQL, hostID, date, limit, offset)
}

const findBySpaceAndDateSQL = reservationRowSelect + `
WHERE r.space_id = $1
  AND r.date = $2
  AND r.deleted_at IS NULL
  AND r.status IN ('ACCEPTED', 'COMPLETED')
ORDER BY r.start_hour
LIMIT $3 OFFSET $4`

func (r *ReservationReadStore) FindBySpaceAndDate(ctx context.Context, spaceID uuid.UUID, date time.Time, limit, offset int32) ([]*queries.ReservationRow, error) {
	return r.queryRows(ctx, findBySpaceAndDateSQL, spaceID, date, limit, offset)
}

func (r *ReservationReadStore) queryRows(ctx context.Context, sql string, args ...any) ([]*queries.ReservationRow, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to query reservations", err)
	}
	defer rows.Close()

	var result []*queries.ReservationRow
	for rows.Next() {
		row, err := scanReservationRow(rows)
		if err != nil {
			return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to scan reservation", err)
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to read reservations", err)
	}
	return result, nil
}

func scanReservationRow(row pgx.Row) (*queries.ReservationRow, error) {
	var v queries.ReservationRow
	err := row.Scan(
		&v.ID, &v.SpaceID, &v.SpaceName, &v.GuestID, &v.GuestNickname,
		&v.Date, &v.StartHour, &v.EndHour, &v.GuestCount, &v.Price,
		&v.UsagePurpose, &v.RequestMessage, &v.Status, &v.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
