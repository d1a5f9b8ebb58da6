package commands

import (
	"context"
	"time"

	"spacehub/internal/domain/user"
	"spacehub/internal/infra"
	"spacehub/internal/infra/db"
	"spacehub/internal/pkg/clock"
	"spacehub/internal/pkg/errs"
	"spacehub/internal/pkg/jwt"
	"spacehub/internal/pkg/password"
	"spacehub/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrAuthenticationFailed = errs.New("invalid login id or password")
	ErrDuplicateUser        = errs.New("login id or email already in use")
	ErrUserNotFound         = errs.New("user not found")
)

type SignupInput struct {
	LoginID  string
	Password string
	Name     string
	Nickname string
	Email    string
	Phone    string
	BirthDay *time.Time
	Role     string
}

type AuthResult struct {
	Token    string
	UserID   uuid.UUID
	Role     string
	Nickname string
}

type AuthCommands interface {
	Signup(ctx context.Context, in SignupInput) (uuid.UUID, error)
	Login(ctx context.Context, loginID, plainPassword string) (*AuthResult, error)
	// Withdraw soft-deletes the account; the partial unique indexes let the
	// login id and email be reused by a later signup.
	Withdraw(ctx context.Context, userID uuid.UUID) error
}

type authCommandsImpl struct {
	uow   shared.UnitOfWork
	users shared.UserRepository
	jwt   *jwt.Service
	clock clock.Clock
}

func NewAuthCommands(uow shared.UnitOfWork, users shared.UserRepository, jwtService *jwt.Service, clock clock.Clock) AuthCommands {
	return &authCommandsImpl{uow: uow, users: users, jwt: jwtService, clock: clock}
}

func (c *authCommandsImpl) Signup(ctx context.Context, in SignupInput) (uuid.UUID, error) {
	creds, err := user.NewCredentials(in.LoginID, in.Password)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrDomainValidation)
	}
	email, err := user.NewEmail(in.Email)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrDomainValidation)
	}
	role, err := user.NewRole(in.Role)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrDomainValidation)
	}

	hash, err := password.Hash(creds.Password().Value())
	if err != nil {
		return uuid.Nil, errs.Wrap(err, "failed to hash password")
	}

	var createdID uuid.UUID
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		createdID, err = tx.Users().Create(ctx, tx.DB(), shared.CreateUserParams{
			LoginID:      creds.LoginID().String(),
			PasswordHash: hash,
			Name:         in.Name,
			Nickname:     in.Nickname,
			Email:        email.String(),
			Phone:        in.Phone,
			BirthDay:     in.BirthDay,
			Role:         role.String(),
		})
		if err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return ErrDuplicateUser
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	return createdID, nil
}

func (c *authCommandsImpl) Login(ctx context.Context, loginID, plainPassword string) (*AuthResult, error) {
	var record *shared.UserRecord
	err := c.uow.WithDB(ctx, func(ctx context.Context, dbtx db.DBTX) error {
		var err error
		record, err = c.users.FindByLoginID(ctx, dbtx, loginID)
		return err
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrAuthenticationFailed
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if err := password.Compare(record.PasswordHash, plainPassword); err != nil {
		return nil, ErrAuthenticationFailed
	}

	role, err := user.NewRole(record.Role)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	token, err := c.jwt.GenerateToken(record.ID, role)
	if err != nil {
		return nil, errs.Wrap(err, "failed to generate token")
	}

	return &AuthResult{
		Token:    token,
		UserID:   record.ID,
		Role:     record.Role,
		Nickname: record.Nickname,
	}, nil
}

func (c *authCommandsImpl) Withdraw(ctx context.Context, userID uuid.UUID) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Users().SoftDelete(ctx, tx.DB(), userID, c.clock.Now()); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrUserNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
}
