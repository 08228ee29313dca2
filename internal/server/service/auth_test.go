package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/acadeval/encuestas/internal/server/domain"
	"github.com/acadeval/encuestas/internal/server/store"
	"github.com/acadeval/encuestas/internal/server/store/sqlite"
	"github.com/acadeval/encuestas/pkg/jwtx"
)

var svcDBCounter int

func newTestStore(t *testing.T) store.Store {
	t.Helper()

	svcDBCounter++
	dsn := fmt.Sprintf("file:service_test_%d?mode=memory&cache=shared", svcDBCounter)

	s, err := sqlite.NewStore(dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	require.NoError(t, s.ApplyMigrations())
	return s
}

func newTokenService() *TokenService {
	return &TokenService{
		AccessKey:  []byte("access-key-for-tests"),
		RefreshKey: []byte("refresh-key-for-tests"),
		Issuer:     "encuestas-test",
		AccessTTL:  jwtx.DefaultAccessTokenTTL,
		RefreshTTL: jwtx.DefaultRefreshTokenTTL,
	}
}

func seedUser(t *testing.T, s store.Store, username, password string, role domain.Role) domain.User {
	t.Helper()

	users := &UserService{Store: s}
	u, err := users.Create(context.Background(), username, password, role)
	require.NoError(t, err)
	return u
}

func TestAuthServiceLogin(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	tokens := newTokenService()
	auth := &AuthService{Store: s, Tokens: tokens}

	u := seedUser(t, s, "juan123", "s3cret", domain.RoleAdministrador)

	t.Run("valid credentials issue a pair", func(t *testing.T) {
		pair, err := auth.Login(ctx, "juan123", "s3cret")
		require.NoError(t, err)
		require.NotEmpty(t, pair.AccessToken)
		require.NotEmpty(t, pair.RefreshToken)

		claims, err := tokens.VerifyAccess(pair.AccessToken)
		require.NoError(t, err)
		require.Equal(t, u.ID, claims.UserID())
		require.Equal(t, "juan123", claims.Username)
		require.Equal(t, string(domain.RoleAdministrador), claims.Role)
	})

	t.Run("wrong password and unknown user look identical", func(t *testing.T) {
		_, errWrongPass := auth.Login(ctx, "juan123", "nope")
		_, errNoUser := auth.Login(ctx, "ghost", "s3cret")

		require.ErrorIs(t, errWrongPass, ErrInvalidCredentials)
		require.ErrorIs(t, errNoUser, ErrInvalidCredentials)
	})

	t.Run("soft-deleted user cannot log in", func(t *testing.T) {
		deleted := seedUser(t, s, "borrado", "pw123", domain.RoleGestor)
		require.NoError(t, s.Users().SoftDeleteUser(ctx, deleted.ID))

		_, err := auth.Login(ctx, "borrado", "pw123")
		require.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestAuthServiceRefresh(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	tokens := newTokenService()
	auth := &AuthService{Store: s, Tokens: tokens}

	u := seedUser(t, s, "ana", "pw123", domain.RoleGestor)

	t.Run("valid refresh issues a fresh access token", func(t *testing.T) {
		pair, err := auth.Login(ctx, "ana", "pw123")
		require.NoError(t, err)

		access, err := auth.Refresh(ctx, pair.RefreshToken)
		require.NoError(t, err)
		require.NotEmpty(t, access)

		claims, err := tokens.VerifyAccess(access)
		require.NoError(t, err)
		require.Equal(t, u.ID, claims.UserID())
	})

	t.Run("access token is not a refresh token", func(t *testing.T) {
		pair, err := auth.Login(ctx, "ana", "pw123")
		require.NoError(t, err)

		_, err = auth.Refresh(ctx, pair.AccessToken)
		require.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("expired refresh is reported as expired", func(t *testing.T) {
		stale, err := tokens.IssueRefreshToken(u, time.Now().Add(-25*time.Hour))
		require.NoError(t, err)

		_, err = auth.Refresh(ctx, stale)
		require.ErrorIs(t, err, ErrTokenExpired)
	})

	t.Run("refresh picks up role changes", func(t *testing.T) {
		pair, err := auth.Login(ctx, "ana", "pw123")
		require.NoError(t, err)

		users := &UserService{Store: s}
		_, err = users.Update(ctx, u.ID, "ana", "pw123", domain.RoleAdministrador)
		require.NoError(t, err)

		access, err := auth.Refresh(ctx, pair.RefreshToken)
		require.NoError(t, err)

		claims, err := tokens.VerifyAccess(access)
		require.NoError(t, err)
		require.Equal(t, string(domain.RoleAdministrador), claims.Role)
	})

	t.Run("deleted user refreshes into not found", func(t *testing.T) {
		gone := seedUser(t, s, "temporal", "pw123", domain.RoleGestor)
		pair, err := auth.Login(ctx, "temporal", "pw123")
		require.NoError(t, err)

		require.NoError(t, s.Users().SoftDeleteUser(ctx, gone.ID))

		_, err = auth.Refresh(ctx, pair.RefreshToken)
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("garbage is invalid", func(t *testing.T) {
		_, err := auth.Refresh(ctx, "not-a-token")
		require.ErrorIs(t, err, ErrInvalidToken)
	})
}

func TestUserServiceDuplicateUsername(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	users := &UserService{Store: s}

	_, err := users.Create(ctx, "repetido", "pw123", domain.RoleGestor)
	require.NoError(t, err)

	_, err = users.Create(ctx, "repetido", "otra", domain.RoleAdministrador)
	require.ErrorIs(t, err, ErrUsernameTaken)
}
