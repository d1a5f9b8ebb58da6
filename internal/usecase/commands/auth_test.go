package commands

import (
	"context"
	"testing"
	"time"

	"spacehub/internal/pkg/clock"
	"spacehub/internal/pkg/jwt"
	"spacehub/internal/pkg/password"
	"spacehub/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthCommands_Signup(t *testing.T) {
	ctx := context.Background()
	tokens := jwt.NewService("test-secret", time.Hour)
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	input := func() SignupInput {
		return SignupInput{
			LoginID:  "mina01",
			Password: "correct horse",
			Name:     "Mina Park",
			Nickname: "mina",
			Email:    "mina@example.com",
			Role:     "GUEST",
		}
	}

	setup := func() (*fakeTx, AuthCommands) {
		tx := newFakeTx()
		tx.users.createdID = uuid.New()
		return tx, NewAuthCommands(&fakeUoW{tx: tx}, tx.users, tokens, clock.NewMockClock(now))
	}

	t.Run("creates the account with a hashed password", func(t *testing.T) {
		tx, cmds := setup()

		id, err := cmds.Signup(ctx, input())
		require.NoError(t, err)
		assert.Equal(t, tx.users.createdID, id)
		require.NotNil(t, tx.users.created)
		assert.Equal(t, "mina01", tx.users.created.LoginID)
		assert.Equal(t, "GUEST", tx.users.created.Role)
		assert.NoError(t, password.Compare(tx.users.created.PasswordHash, "correct horse"))
	})

	t.Run("taken login id or email", func(t *testing.T) {
		tx, cmds := setup()
		tx.users.createErr = duplicateErr()

		_, err := cmds.Signup(ctx, input())
		assert.ErrorIs(t, err, ErrDuplicateUser)
	})

	t.Run("malformed email", func(t *testing.T) {
		_, cmds := setup()
		in := input()
		in.Email = "not-an-email"

		_, err := cmds.Signup(ctx, in)
		assert.ErrorIs(t, err, ErrDomainValidation)
	})

	t.Run("short password", func(t *testing.T) {
		_, cmds := setup()
		in := input()
		in.Password = "short"

		_, err := cmds.Signup(ctx, in)
		assert.ErrorIs(t, err, ErrDomainValidation)
	})
}

func TestAuthCommands_Login(t *testing.T) {
	ctx := context.Background()
	tokens := jwt.NewService("test-secret", time.Hour)
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	hash, err := password.Hash("correct horse")
	require.NoError(t, err)

	record := &shared.UserRecord{
		ID:           uuid.New(),
		LoginID:      "mina01",
		PasswordHash: hash,
		Nickname:     "mina",
		Role:         "GUEST",
	}

	newCmds := func(users *fakeUserRepo) AuthCommands {
		return NewAuthCommands(&fakeUoW{tx: newFakeTx()}, users, tokens, clock.NewMockClock(now))
	}

	t.Run("valid credentials return a token", func(t *testing.T) {
		cmds := newCmds(&fakeUserRepo{record: record})

		result, err := cmds.Login(ctx, "mina01", "correct horse")
		require.NoError(t, err)
		assert.Equal(t, record.ID, result.UserID)
		assert.Equal(t, "GUEST", result.Role)
		assert.Equal(t, "mina", result.Nickname)

		claims, err := tokens.ValidateToken(result.Token)
		require.NoError(t, err)
		assert.Equal(t, record.ID, claims.UserID)
		assert.Equal(t, "GUEST", claims.Role)
	})

	t.Run("wrong password", func(t *testing.T) {
		cmds := newCmds(&fakeUserRepo{record: record})

		_, err := cmds.Login(ctx, "mina01", "wrong")
		assert.ErrorIs(t, err, ErrAuthenticationFailed)
	})

	t.Run("unknown login id", func(t *testing.T) {
		cmds := newCmds(&fakeUserRepo{findErr: notFoundErr()})

		_, err := cmds.Login(ctx, "nobody", "whatever")
		assert.ErrorIs(t, err, ErrAuthenticationFailed)
	})
}

func TestAuthCommands_Withdraw(t *testing.T) {
	ctx := context.Background()
	tokens := jwt.NewService("test-secret", time.Hour)
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	userID := uuid.New()

	t.Run("soft deletes the account", func(t *testing.T) {
		tx := newFakeTx()
		cmds := NewAuthCommands(&fakeUoW{tx: tx}, tx.users, tokens, clock.NewMockClock(now))

		require.NoError(t, cmds.Withdraw(ctx, userID))
		assert.Equal(t, []uuid.UUID{userID}, tx.users.deleted)
	})

	t.Run("already withdrawn", func(t *testing.T) {
		tx := newFakeTx()
		tx.users.deleteErr = notFoundErr()
		cmds := NewAuthCommands(&fakeUoW{tx: tx}, tx.users, tokens, clock.NewMockClock(now))

		assert.ErrorIs(t, cmds.Withdraw(ctx, userID), ErrUserNotFound)
	})
}
