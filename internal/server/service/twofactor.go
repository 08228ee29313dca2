package service

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"

	"github.com/pquerna/otp"
	"github.com/pquerna/otp/totp"
	qrcode "github.com/skip2/go-qrcode"

	"github.com/acadeval/encuestas/internal/server/domain"
	"github.com/acadeval/encuestas/internal/server/store"
)

var (
	ErrInvalidCode = errors.New("invalid_totp_code")

	// ErrNotEnrolled means there is no secret at all; the user must call
	// GenerateSecret first.
	ErrNotEnrolled = errors.New("two_factor_not_enrolled")

	// ErrNotEnabled means a secret exists but was never confirmed, or the
	// user disabled 2FA. Login-time validation refuses to run in this state.
	ErrNotEnabled = errors.New("two_factor_not_enabled")
)

type TwoFactorService struct {
	Store  store.Store
	Issuer string
}

// GenerateSecret provisions a fresh TOTP secret for the user and returns it
// alongside a QR code rendered as a PNG data URL. Any previous secret is
// overwritten and the enabled flag cleared, so calling this again always
// restarts enrollment from scratch.
func (s *TwoFactorService) GenerateSecret(ctx context.Context, userID string) (domain.TwoFactorEnrollment, error) {
	u, err := s.Store.Users().GetUserByID(ctx, userID)
	if err != nil {
		return domain.TwoFactorEnrollment{}, err
	}

	key, err := totp.Generate(totp.GenerateOpts{
		Issuer:      s.Issuer,
		AccountName: u.Username,
		SecretSize:  20,
		Period:      30,
		Digits:      otp.DigitsSix,
		Algorithm:   otp.AlgorithmSHA1,
	})
	if err != nil {
		return domain.TwoFactorEnrollment{}, fmt.Errorf("generate totp key: %w", err)
	}

	if err := s.Store.Users().UpdateTwoFactorSecret(ctx, userID, key.Secret()); err != nil {
		return domain.TwoFactorEnrollment{}, err
	}

	dataURL, err := qrDataURL(key.URL())
	if err != nil {
		return domain.TwoFactorEnrollment{}, err
	}

	return domain.TwoFactorEnrollment{
		Secret: key.Secret(),
		QRCode: dataURL,
	}, nil
}

// ConfirmEnrollment checks the first code from the authenticator app and, if
// it matches, marks 2FA enabled for the user.
func (s *TwoFactorService) ConfirmEnrollment(ctx context.Context, userID, code string) error {
	u, err := s.Store.Users().GetUserByID(ctx, userID)
	if err != nil {
		return err
	}

	if u.TwoFactorSecret == nil || *u.TwoFactorSecret == "" {
		return ErrNotEnrolled
	}

	if !totp.Validate(code, *u.TwoFactorSecret) {
		return ErrInvalidCode
	}

	return s.Store.Users().EnableTwoFactor(ctx, userID)
}

// ValidateCode checks a login-time TOTP code. It only runs for users whose
// enrollment was confirmed; an unconfirmed secret is treated as not enabled.
func (s *TwoFactorService) ValidateCode(ctx context.Context, userID, code string) error {
	u, err := s.Store.Users().GetUserByID(ctx, userID)
	if err != nil {
		return err
	}

	if u.TwoFactorState() != domain.TwoFactorEnrolled {
		return ErrNotEnabled
	}

	if !totp.Validate(code, *u.TwoFactorSecret) {
		return ErrInvalidCode
	}
	return nil
}

func qrDataURL(otpauthURL string) (string, error) {
	png, err := qrcode.Encode(otpauthURL, qrcode.Medium, 256)
	if err != nil {
		return "", fmt.Errorf("encode qr code: %w", err)
	}

	var b bytes.Buffer
	b.WriteString("data:image/png;base64,")
	b.WriteString(base64.StdEncoding.EncodeToString(png))
	return b.String(), nil
}
