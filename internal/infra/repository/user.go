package repository

import (
	"context"
	"time"

	"spacehub/internal/infra/db"
	"spacehub/internal/usecase/shared"

	"github.com/google/uuid"
)

type UserRepository struct{}

func NewUserRepository() *UserRepository {
	return &UserRepository{}
}

const createUserSQL = `
INSERT INTO users (login_id, password_hash, name, nickname, email, phone, birth_day, role)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING id`

func (r *UserRepository) Create(ctx context.Context, tx db.DBTX, params shared.CreateUserParams) (uuid.UUID, error) {
	var id uuid.UUID
	err := tx.QueryRow(ctx, createUserSQL,
		params.LoginID,
		params.PasswordHash,
		params.Name,
		params.Nickname,
		params.Email,
		params.Phone,
		params.BirthDay,
		params.Role,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, wrapPgErr("failed to create user", err)
	}
	return id, nil
}

const findUserByLoginIDSQL = `
SELECT id, login_id, password_hash, name, nickname, email, phone, birth_day, role, created_at
FROM users
WHERE login_id = $1 AND deleted_at IS NULL`

func (r *UserRepository) FindByLoginID(ctx context.Context, tx db.DBTX, loginID string) (*shared.UserRecord, error) {
	return scanUser(tx.QueryRow(ctx, findUserByLoginIDSQL, loginID), "failed to find user by login id")
}

const findUserByIDSQL = `
SELECT id, login_id, password_hash, name, nickname, email, phone, birth_day, role, created_at
FROM users
WHERE id = $1 AND deleted_at IS NULL`

func (r *UserRepository) FindByID(ctx context.Context, tx db.DBTX, id uuid.UUID) (*shared.UserRecord, error) {
	return scanUser(tx.QueryRow(ctx, findUserByIDSQL, id), "failed to find user by id")
}

const softDeleteUserSQL = `
UPDATE users SET deleted_at = $2, updated_at = $2
WHERE id = $1 AND deleted_at IS NULL`

func (r *UserRepository) SoftDelete(ctx context.Context, tx db.DBTX, id uuid.UUID, now time.Time) error {
	tag, err := tx.Exec(ctx, softDeleteUserSQL, id, now)
	if err != nil {
		return wrapPgErr("failed to soft delete user", err)
	}
	if tag.RowsAffected() == 0 {
		return notFoundErr("user not found for delete")
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner, msg string) (*shared.UserRecord, error) {
	var u shared.UserRecord
	err := row.Scan(
		&u.ID, &u.LoginID, &u.PasswordHash, &u.Name, &u.Nickname,
		&u.Email, &u.Phone, &u.BirthDay, &u.Role, &u.CreatedAt,
	)
	if err != nil {
		return nil, wrapPgErr(msg, err)
	}
	return &u, nil
}
