package services

import (
	"context"
	"testing"
	"time"

	"recipe-app/models"
	"recipe-app/repositories"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func newAuthFixture(t *testing.T, ttl time.Duration) (IUserService, IAuthService) {
	t.Helper()
	db := newTestDB(t)
	users := repositories.NewUserRepository(db)
	hasher := newTestHasher()
	return NewUserService(users, hasher),
		NewAuthService(users, repositories.NewTokenRepository(db), hasher, testSecret, ttl)
}

func TestLogin_ReturnsTokenForUser(t *testing.T) {
	users, auth := newAuthFixture(t, time.Hour)
	ctx := context.Background()

	created, err := users.CreateUser(ctx, "test@mail.com", "testpass")
	require.NoError(t, err)

	token, err := auth.Login(ctx, "TEST@mail.com", "testpass")
	require.NoError(t, err)
	require.NotNil(t, token)

	user, err := auth.GetUserFromToken(ctx, *token)
	require.NoError(t, err)
	assert.Equal(t, created.ID, user.ID)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	users, auth := newAuthFixture(t, time.Hour)
	ctx := context.Background()

	_, err := users.CreateUser(ctx, "test@mail.com", "testpass")
	require.NoError(t, err)

	_, err = auth.Login(ctx, "test@mail.com", "wrong")
	assert.ErrorIs(t, err, models.ErrInvalidCredentials)

	_, err = auth.Login(ctx, "nobody@mail.com", "testpass")
	assert.ErrorIs(t, err, models.ErrInvalidCredentials)
}

func TestGetUserFromToken_Expired(t *testing.T) {
	users, auth := newAuthFixture(t, -time.Minute)
	ctx := context.Background()

	user, err := users.CreateUser(ctx, "test@mail.com", "testpass")
	require.NoError(t, err)

	token, err := auth.CreateToken(user)
	require.NoError(t, err)

	_, err = auth.GetUserFromToken(ctx, *token)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestGetUserFromToken_WrongSecret(t *testing.T) {
	users, auth := newAuthFixture(t, time.Hour)
	ctx := context.Background()

	user, err := users.CreateUser(ctx, "test@mail.com", "testpass")
	require.NoError(t, err)

	other := NewAuthService(nil, nil, newTestHasher(), "other-secret", time.Hour)
	token, err := other.CreateToken(user)
	require.NoError(t, err)

	_, err = auth.GetUserFromToken(ctx, *token)
	assert.Error(t, err)
}

func TestLogout_BlacklistsToken(t *testing.T) {
	users, auth := newAuthFixture(t, time.Hour)
	ctx := context.Background()

	_, err := users.CreateUser(ctx, "test@mail.com", "testpass")
	require.NoError(t, err)
	token, err := auth.Login(ctx, "test@mail.com", "testpass")
	require.NoError(t, err)

	require.NoError(t, auth.Logout(ctx, *token))

	_, err = auth.GetUserFromToken(ctx, *token)
	assert.ErrorIs(t, err, models.ErrTokenBlacklisted)
}

func TestLogout_InvalidToken(t *testing.T) {
	_, auth := newAuthFixture(t, time.Hour)
	assert.ErrorIs(t, auth.Logout(context.Background(), "not-a-jwt"), models.ErrInvalidToken)
}
