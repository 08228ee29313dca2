package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/acadeval/encuestas/internal/server/domain"
	"github.com/acadeval/encuestas/internal/server/store"
	"github.com/acadeval/encuestas/pkg/cryptox"
	"github.com/acadeval/encuestas/pkg/jwtx"
	"github.com/acadeval/encuestas/pkg/slogx"
)

var (
	// ErrInvalidCredentials covers both an unknown username and a wrong
	// password. Login never reveals which one failed.
	ErrInvalidCredentials = errors.New("invalid_credentials")

	ErrTokenExpired = errors.New("token_expired")
	ErrInvalidToken = errors.New("invalid_token")
)

type AuthService struct {
	Store  store.Store
	Tokens *TokenService
}

// Login verifies the username/password pair and issues a fresh token pair.
func (s *AuthService) Login(ctx context.Context, username, password string) (domain.TokenPair, error) {
	l := slogx.FromContext(ctx)

	u, err := s.Store.Users().GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			l.Info("login rejected, unknown username", slog.String("username", username))
			return domain.TokenPair{}, ErrInvalidCredentials
		}
		return domain.TokenPair{}, err
	}

	if err := cryptox.VerifyPassword(password, u.PasswordHash); err != nil {
		l.Info("login rejected, wrong password", slog.String("username", username))
		return domain.TokenPair{}, ErrInvalidCredentials
	}

	return s.Tokens.IssuePair(u, time.Now())
}

// Refresh validates a refresh token and issues a new access token. The user
// row is re-read so a username or role change made after issuance lands in
// the new token; a soft-deleted user refreshes into store.ErrNotFound. The
// refresh token itself is not rotated; it stays valid until its own expiry.
func (s *AuthService) Refresh(ctx context.Context, rawRefresh string) (string, error) {
	claims, err := s.Tokens.VerifyRefresh(rawRefresh)
	if err != nil {
		if errors.Is(err, jwtx.ErrTokenExpired) {
			return "", ErrTokenExpired
		}
		return "", ErrInvalidToken
	}

	u, err := s.Store.Users().GetUserByID(ctx, claims.UserID())
	if err != nil {
		return "", err
	}

	return s.Tokens.IssueAccessToken(u, time.Now())
}

// Identity returns the active user behind an access token's subject. Used by
// the session endpoint.
func (s *AuthService) Identity(ctx context.Context, userID string) (domain.User, error) {
	return s.Store.Users().GetUserByID(ctx, userID)
}
