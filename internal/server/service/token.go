package service

import (
	"time"

	"github.com/acadeval/encuestas/internal/server/domain"
	"github.com/acadeval/encuestas/pkg/jwtx"
)

// TokenService signs and verifies the two JWT families. Access and refresh
// tokens use distinct symmetric keys, so one can never pass for the other.
type TokenService struct {
	AccessKey  []byte
	RefreshKey []byte
	Issuer     string
	AccessTTL  time.Duration
	RefreshTTL time.Duration
}

func (s *TokenService) IssueAccessToken(u domain.User, now time.Time) (string, error) {
	claims := jwtx.NewClaims(u.ID, u.Username, string(u.Role), s.Issuer, s.AccessTTL, now)
	return jwtx.Sign(claims, s.AccessKey)
}

func (s *TokenService) IssueRefreshToken(u domain.User, now time.Time) (string, error) {
	claims := jwtx.NewClaims(u.ID, u.Username, string(u.Role), s.Issuer, s.RefreshTTL, now)
	return jwtx.Sign(claims, s.RefreshKey)
}

// IssuePair signs both tokens against the same instant so their lifetimes
// line up.
func (s *TokenService) IssuePair(u domain.User, now time.Time) (domain.TokenPair, error) {
	access, err := s.IssueAccessToken(u, now)
	if err != nil {
		return domain.TokenPair{}, err
	}
	refresh, err := s.IssueRefreshToken(u, now)
	if err != nil {
		return domain.TokenPair{}, err
	}
	return domain.TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

// VerifyAccess checks signature and expiry against the access key. It returns
// jwtx.ErrTokenExpired or jwtx.ErrInvalidToken, which callers map to their
// own failure modes.
func (s *TokenService) VerifyAccess(raw string) (jwtx.Claims, error) {
	return jwtx.Verify(raw, s.AccessKey)
}

func (s *TokenService) VerifyRefresh(raw string) (jwtx.Claims, error) {
	return jwtx.Verify(raw, s.RefreshKey)
}
