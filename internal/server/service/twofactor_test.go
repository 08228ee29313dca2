package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/pquerna/otp/totp"
	"github.com/stretchr/testify/require"

	"github.com/acadeval/encuestas/internal/server/domain"
)

func TestTwoFactorEnrollment(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	twofa := &TwoFactorService{Store: s, Issuer: "Encuestas"}

	u := seedUser(t, s, "juan123", "s3cret", domain.RoleAdministrador)

	t.Run("generate produces secret and qr data url", func(t *testing.T) {
		enr, err := twofa.GenerateSecret(ctx, u.ID)
		require.NoError(t, err)
		require.NotEmpty(t, enr.Secret)
		require.True(t, strings.HasPrefix(enr.QRCode, "data:image/png;base64,"))

		got, err := s.Users().GetUserByID(ctx, u.ID)
		require.NoError(t, err)
		require.Equal(t, domain.TwoFactorEnrolledUnconfirmed, got.TwoFactorState())
	})

	t.Run("validate refuses before confirmation", func(t *testing.T) {
		err := twofa.ValidateCode(ctx, u.ID, "000000")
		require.ErrorIs(t, err, ErrNotEnabled)
	})

	t.Run("confirm with wrong code fails", func(t *testing.T) {
		err := twofa.ConfirmEnrollment(ctx, u.ID, "000000")
		require.ErrorIs(t, err, ErrInvalidCode)
	})

	t.Run("confirm with valid code enables", func(t *testing.T) {
		got, err := s.Users().GetUserByID(ctx, u.ID)
		require.NoError(t, err)

		code, err := totp.GenerateCode(*got.TwoFactorSecret, time.Now())
		require.NoError(t, err)

		require.NoError(t, twofa.ConfirmEnrollment(ctx, u.ID, code))

		got, err = s.Users().GetUserByID(ctx, u.ID)
		require.NoError(t, err)
		require.Equal(t, domain.TwoFactorEnrolled, got.TwoFactorState())
	})

	t.Run("validate accepts a current code once enabled", func(t *testing.T) {
		got, err := s.Users().GetUserByID(ctx, u.ID)
		require.NoError(t, err)

		code, err := totp.GenerateCode(*got.TwoFactorSecret, time.Now())
		require.NoError(t, err)

		require.NoError(t, twofa.ValidateCode(ctx, u.ID, code))
	})

	t.Run("validate rejects a wrong code once enabled", func(t *testing.T) {
		err := twofa.ValidateCode(ctx, u.ID, "123456")
		if err == nil {
			// Astronomically unlikely collision with the live code.
			t.Skip("generated code happened to match")
		}
		require.ErrorIs(t, err, ErrInvalidCode)
	})

	t.Run("regenerating drops back to unconfirmed", func(t *testing.T) {
		_, err := twofa.GenerateSecret(ctx, u.ID)
		require.NoError(t, err)

		got, err := s.Users().GetUserByID(ctx, u.ID)
		require.NoError(t, err)
		require.Equal(t, domain.TwoFactorEnrolledUnconfirmed, got.TwoFactorState())

		require.ErrorIs(t, twofa.ValidateCode(ctx, u.ID, "123456"), ErrNotEnabled)
	})
}

func TestTwoFactorWithoutSecret(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	twofa := &TwoFactorService{Store: s, Issuer: "Encuestas"}

	u := seedUser(t, s, "sin2fa", "pw123", domain.RoleGestor)

	require.ErrorIs(t, twofa.ConfirmEnrollment(ctx, u.ID, "123456"), ErrNotEnrolled)
	require.ErrorIs(t, twofa.ValidateCode(ctx, u.ID, "123456"), ErrNotEnabled)
}
