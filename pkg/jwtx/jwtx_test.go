package jwtx

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var (
	accessKey  = []byte("test-access-key")
	refreshKey = []byte("test-refresh-key")
)

func TestSignVerifyRoundTrip(t *testing.T) {
	t.Parallel()

	now := time.Now()
	claims := NewClaims("01JC0000000000000000000000", "juan123", "administrador", "encuestas", time.Hour, now)

	raw, err := Sign(claims, accessKey)
	require.NoError(t, err)

	got, err := Verify(raw, accessKey)
	require.NoError(t, err)
	require.Equal(t, "01JC0000000000000000000000", got.UserID())
	require.Equal(t, "juan123", got.Username)
	require.Equal(t, "administrador", got.Role)
}

func TestVerifyExpired(t *testing.T) {
	t.Parallel()

	issued := time.Now().Add(-25 * time.Hour)
	claims := NewClaims("u1", "juan123", "gestor", "encuestas", 24*time.Hour, issued)

	raw, err := Sign(claims, refreshKey)
	require.NoError(t, err)

	_, err = Verify(raw, refreshKey)
	require.ErrorIs(t, err, ErrTokenExpired)
}

func TestVerifyTampered(t *testing.T) {
	t.Parallel()

	claims := NewClaims("u1", "juan123", "gestor", "encuestas", time.Hour, time.Now())
	raw, err := Sign(claims, accessKey)
	require.NoError(t, err)

	// Flip one byte in the payload segment.
	b := []byte(raw)
	mid := len(b) / 2
	if b[mid] == 'a' {
		b[mid] = 'b'
	} else {
		b[mid] = 'a'
	}

	_, err = Verify(string(b), accessKey)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyWrongKey(t *testing.T) {
	t.Parallel()

	claims := NewClaims("u1", "juan123", "gestor", "encuestas", time.Hour, time.Now())

	access, err := Sign(claims, accessKey)
	require.NoError(t, err)
	refresh, err := Sign(claims, refreshKey)
	require.NoError(t, err)

	// Access tokens never verify against the refresh key and vice versa.
	_, err = Verify(access, refreshKey)
	require.ErrorIs(t, err, ErrInvalidToken)
	_, err = Verify(refresh, accessKey)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyGarbage(t *testing.T) {
	t.Parallel()

	_, err := Verify("not-a-jwt", accessKey)
	require.ErrorIs(t, err, ErrInvalidToken)

	_, err = Verify("", accessKey)
	require.ErrorIs(t, err, ErrInvalidToken)
}
