package readstore

import (
	"context"

	"spacehub/internal/infra"
	"spacehub/internal/infra/db"
	"spacehub/internal/pkg/pgconv"
	"spacehub/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserReadStore struct {
	db db.DBTX
}

func NewUserReadStore(dbtx db.DBTX) *UserReadStore {
	return &UserReadStore{db: dbtx}
}

const findUserViewByIDSQL = `
SELECT id, login_id, name, nickname, email, phone, role, created_at
FROM users
WHERE id = $1 AND deleted_at IS NULL`

func (r *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.UserView, error) {
	var v queries.UserView
	err := r.db.QueryRow(ctx, findUserViewByIDSQL, id).Scan(
		&v.ID, &v.LoginID, &v.Name, &v.Nickname, &v.Email, &v.Phone, &v.Role, &v.CreatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr(infra.KindNotFound, "user not found", err)
		}
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to find user", err)
	}
	return &v, nil
}
