// Package jwtx wraps github.com/golang-jwt/jwt/v5 with the claim shape and
// error taxonomy used across the service. Access and refresh tokens share the
// same structure and differ only by signing key and lifetime.
package jwtx

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	// DefaultAccessTokenTTL is the lifetime of an access token.
	DefaultAccessTokenTTL = time.Hour

	// DefaultRefreshTokenTTL is the lifetime of a refresh token.
	DefaultRefreshTokenTTL = 24 * time.Hour
)

var (
	// ErrTokenExpired reports a token whose signature verified but whose
	// expiry has passed. Callers surface this distinctly so clients can
	// prompt for re-login instead of treating it as a forgery.
	ErrTokenExpired = errors.New("jwtx: token expired")

	// ErrInvalidToken reports a malformed token or a signature mismatch.
	ErrInvalidToken = errors.New("jwtx: invalid token")
)

// Claims carried by both access and refresh tokens: the user id (sub), the
// username and the role. Role is re-read from the store on refresh, so the
// value embedded here is only trusted for the token's own lifetime.
type Claims struct {
	jwt.RegisteredClaims

	Username string `json:"username"`
	Role     string `json:"role"`
}

// UserID returns the subject claim.
func (c *Claims) UserID() string { return c.Subject }

// NewClaims builds the claim set for a user with the given ttl.
func NewClaims(userID, username, role, issuer string, ttl time.Duration, now time.Time) Claims {
	return Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		Username: username,
		Role:     role,
	}
}

// Sign produces a compact HS256 JWT for the given claims.
func Sign(claims Claims, key []byte) (string, error) {
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString(key)
	if err != nil {
		return "", err
	}
	return signed, nil
}

// Verify parses and validates a compact JWT against the given key.
// Expired-but-authentic tokens return ErrTokenExpired; everything else that
// fails validation (bad signature, wrong algorithm, garbage input) returns
// ErrInvalidToken.
func Verify(raw string, key []byte) (Claims, error) {
	var claims Claims

	_, err := jwt.ParseWithClaims(raw, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return key, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return Claims{}, ErrTokenExpired
		}
		return Claims{}, ErrInvalidToken
	}

	return claims, nil
}
