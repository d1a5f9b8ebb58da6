package readstore

import (
	"context"
	"time"

	"spacehub/internal/domain/reservation"
	"spacehub/internal/infra"
	"spacehub/internal/infra/db"
	"spacehub/internal/pkg/pgconv"
	"spacehub/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type ReviewReadStore struct {
	db db.DBTX
}

func NewReviewReadStore(dbtx db.DBTX) *ReviewReadStore {
	return &ReviewReadStore{db: dbtx}
}

// The image list is aggregated in SQL; the host reply is joined as nullable
// columns and folded into CommentView when present.
const reviewViewSelect = `
SELECT rv.id, rv.reservation_id, rv.space_id, s.name, u.nickname,
       rv.rating, rv.content, rv.reserved_date, rv.created_at, rv.updated_at,
       COALESCE(array_agg(ri.url ORDER BY ri.created_at) FILTER (WHERE ri.id IS NOT NULL), '{}'),
       rc.id, rc.content, rc.created_at, h.nickname
FROM reviews rv
JOIN spaces s ON s.id = rv.space_id
JOIN users u ON u.id = rv.guest_id
LEFT JOIN review_images ri ON ri.review_id = rv.id AND ri.deleted_at IS NULL
LEFT JOIN review_comments rc ON rc.review_id = rv.id AND rc.deleted_at IS NULL
LEFT JOIN users h ON h.id = rc.host_id`

const reviewViewGroupBy = `
GROUP BY rv.id, s.name, u.nickname, rc.id, rc.content, rc.created_at, h.nickname`

const findReviewViewByIDSQL = reviewViewSelect + `
WHERE rv.id = $1 AND rv.deleted_at IS NULL` + reviewViewGroupBy

func (r *ReviewReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ReviewView, error) {
	view, err := scanReviewView(r.db.QueryRow(ctx, findReviewViewByIDSQL, id))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr(infra.KindNotFound, "review not found", err)
		}
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to find review", err)
	}
	return view, nil
}

const findWrittenByGuestSQL = reviewViewSelect + `
WHERE rv.guest_id = $1 AND rv.deleted_at IS NULL` + reviewViewGroupBy + `
ORDER BY rv.created_at DESC
LIMIT $2 OFFSET $3`

func (r *ReviewReadStore) FindWrittenByGuest(ctx context.Context, guestID uuid.UUID, limit, offset int32) ([]*queries.ReviewView, error) {
	rows, err := r.db.Query(ctx, findWrittenByGuestSQL, guestID, limit, offset)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to query written reviews", err)
	}
	defer rows.Close()

	var views []*queries.ReviewView
	for rows.Next() {
		view, err := scanReviewView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to scan review", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to read written reviews", err)
	}
	return views, nil
}

// Reviewable: completed (stored or derived from an accepted row whose end
// passed), live, and without a live review.
const findReviewableByGuestSQL = `
SELECT r.id, r.space_id, s.name, r.date, r.start_hour, r.end_hour
FROM reservations r
JOIN spaces s ON s.id = r.space_id AND s.deleted_at IS NULL
WHERE r.guest_id = $1
  AND r.deleted_at IS NULL
  AND (r.status = 'COMPLETED'
       OR (r.status = 'ACCEPTED' AND (r.date + r.end_hour * interval '1 hour') <= $2))
  AND NOT EXISTS (
      SELECT 1 FROM reviews rv
      WHERE rv.reservation_id = r.id AND rv.deleted_at IS NULL
  )
ORDER BY r.date DESC, r.start_hour DESC
LIMIT $3 OFFSET $4`

func (r *ReviewReadStore) FindReviewableByGuest(ctx context.Context, guestID uuid.UUID, now time.Time, limit, offset int32) ([]*queries.ReviewableItem, error) {
	rows, err := r.db.Query(ctx, findReviewableByGuestSQL, guestID, now, limit, offset)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to query reviewable reservations", err)
	}
	defer rows.Close()

	var items []*queries.ReviewableItem
	for rows.Next() {
		var item queries.ReviewableItem
		var startHour, endHour int
		if err := rows.Scan(&item.ReservationID, &item.SpaceID, &item.SpaceName, &item.Date, &startHour, &endHour); err != nil {
			return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to scan reviewable reservation", err)
		}
		item.StartTime = reservation.FormatHour(startHour)
		item.EndTime = reservation.FormatHour(endHour)
		items = append(items, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to read reviewable reservations", err)
	}
	return items, nil
}

func scanReviewView(row pgx.Row) (*queries.ReviewView, error) {
	var v queries.ReviewView
	var commentID *uuid.UUID
	var commentContent, commentHost *string
	var commentCreatedAt *time.Time

	err := row.Scan(
		&v.ID, &v.ReservationID, &v.SpaceID, &v.SpaceName, &v.GuestNickname,
		&v.Rating, &v.Content, &v.ReservedDate, &v.CreatedAt, &v.UpdatedAt,
		&v.ImageURLs,
		&commentID, &commentContent, &commentCreatedAt, &commentHost,
	)
	if err != nil {
		return nil, err
	}

	if commentID != nil {
		cv := queries.CommentView{ID: *commentID, ReviewID: v.ID}
		if commentHost != nil {
			cv.HostNickname = *commentHost
		}
		if commentContent != nil {
			cv.Content = *commentContent
		}
		if commentCreatedAt != nil {
			cv.CreatedAt = *commentCreatedAt
		}
		v.Comment = &cv
	}
	return &v, nil
}
