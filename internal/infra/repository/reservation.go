package repository

import (
	"context"
	"time"

	"spacehub/internal/domain/reservation"
	"spacehub/internal/infra/db"

	"github.com/google/uuid"
)

type ReservationRepository struct{}

func NewReservationRepository() *ReservationRepository {
	return &ReservationRepository{}
}

const createReservationSQL = `
INSERT INTO reservations (
    id, space_id, guest_id, date, start_hour, end_hour,
    guest_count, price, usage_purpose, request_message, status
)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
RETURNING id`

func (r *ReservationRepository) Create(ctx context.Context, tx db.DBTX, res *reservation.Reservation) (uuid.UUID, error) {
	var id uuid.UUID
	err := tx.QueryRow(ctx, createReservationSQL,
		res.ID(),
		res.SpaceID(),
		res.GuestID(),
		res.Date(),
		res.Hours().Start(),
		res.Hours().End(),
		res.GuestCount(),
		res.Price(),
		res.UsagePurpose().String(),
		res.RequestMessage(),
		res.Status().String(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, wrapPgErr("failed to create reservation", err)
	}
	return id, nil
}

const blockingOverlapSQL = `
SELECT EXISTS (
    SELECT 1 FROM reservations
    WHERE space_id = $1
      AND date = $2
      AND start_hour < $4
      AND end_hour > $3
      AND status <> 'REJECTED'
      AND deleted_at IS NULL
)`

func (r *ReservationRepository) HasBlockingOverlap(ctx context.Context, tx db.DBTX, spaceID uuid.UUID, date time.Time, startHour, endHour int) (bool, error) {
	var exists bool
	err := tx.QueryRow(ctx, blockingOverlapSQL, spaceID, date, startHour, endHour).Scan(&exists)
	if err != nil {
		return false, wrapPgErr("failed to check reservation overlap", err)
	}
	return exists, nil
}

const updateReservationStatusSQL = `
UPDATE reservations SET status = $2, updated_at = now()
WHERE id = $1 AND deleted_at IS NULL`

func (r *ReservationRepository) UpdateStatus(ctx context.Context, tx db.DBTX, id uuid.UUID, status reservation.Status) error {
	tag, err := tx.Exec(ctx, updateReservationStatusSQL, id, status.String())
	if err != nil {
		return wrapPgErr("failed to update reservation status", err)
	}
	if tag.RowsAffected() == 0 {
		return notFoundErr("reservation not found for status update")
	}
	return nil
}
