package biz

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/openmart/storegate/internal/store"
	"github.com/openmart/storegate/internal/store/memstore"
)

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := HashPassword("s3cret")
	require.NoError(t, err)
	require.NotEqual(t, "s3cret", hash)

	require.NoError(t, VerifyPassword(hash, "s3cret"))
	require.Error(t, VerifyPassword(hash, "wrong"))
}

func TestAuthenticateUser(t *testing.T) {
	s := memstore.New()
	svc := newAuthServiceForTest(s)

	hash, err := HashPassword("s3cret")
	require.NoError(t, err)

	s.SeedUser(&store.User{
		Email:    "alice@test.com",
		Password: hash,
		Role:     roleAuthenticated,
	})

	blockedHash, err := HashPassword("s3cret")
	require.NoError(t, err)

	s.SeedUser(&store.User{
		Email:    "blocked@test.com",
		Password: blockedHash,
		Blocked:  true,
	})

	ctx := context.Background()

	t.Run("valid credentials", func(t *testing.T) {
		user, err := svc.AuthenticateUser(ctx, "alice@test.com", "s3cret")
		require.NoError(t, err)
		require.Equal(t, "alice@test.com", user.Email)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.AuthenticateUser(ctx, "alice@test.com", "wrong")
		require.ErrorIs(t, err, ErrInvalidPassword)
	})

	t.Run("unknown email gets the same error as wrong password", func(t *testing.T) {
		_, err := svc.AuthenticateUser(ctx, "nobody@test.com", "s3cret")
		require.ErrorIs(t, err, ErrInvalidPassword)
	})

	t.Run("blocked account", func(t *testing.T) {
		_, err := svc.AuthenticateUser(ctx, "blocked@test.com", "s3cret")
		require.ErrorIs(t, err, ErrInvalidPassword)
	})
}

func TestJWTTokenRoundTrip(t *testing.T) {
	s := memstore.New()
	svc := newAuthServiceForTest(s)

	user := newTestUser(s, "alice@test.com", roleAuthenticated)
	ctx := context.Background()

	token, err := svc.GenerateJWTToken(ctx, user)
	require.NoError(t, err)

	identity, err := svc.AuthenticateJWTToken(ctx, token)
	require.NoError(t, err)
	require.Equal(t, user.ID, identity.ID)
	require.Equal(t, "authenticated", identity.Role.Type)
	require.False(t, identity.IsElevated())
}

func TestAuthenticateJWTToken(t *testing.T) {
	s := memstore.New()
	svc := newAuthServiceForTest(s)
	ctx := context.Background()

	t.Run("garbage token", func(t *testing.T) {
		_, err := svc.AuthenticateJWTToken(ctx, "not-a-token")
		require.ErrorIs(t, err, ErrInvalidJWT)
	})

	t.Run("token signed with another secret", func(t *testing.T) {
		user := newTestUser(s, "alice@test.com", roleAuthenticated)

		other := NewAuthService(AuthServiceParams{
			Store:  s,
			Config: AuthConfig{SecretKey: "other-secret"},
		})

		token, err := other.GenerateJWTToken(ctx, user)
		require.NoError(t, err)

		_, err = svc.AuthenticateJWTToken(ctx, token)
		require.ErrorIs(t, err, ErrInvalidJWT)
	})

	t.Run("token for a deleted user", func(t *testing.T) {
		ghost := &store.User{ID: 9999}
		token, err := svc.GenerateJWTToken(ctx, ghost)
		require.NoError(t, err)

		_, err = svc.AuthenticateJWTToken(ctx, token)
		require.ErrorIs(t, err, ErrInvalidJWT)
	})
}
