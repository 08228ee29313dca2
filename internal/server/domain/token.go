package domain

// TokenPair is what a successful login returns: a short-lived access token
// and a longer-lived refresh token, both JWTs carrying {id, username, role}.
type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// TwoFactorEnrollment is returned by secret generation: the base32 secret for
// manual entry and the provisioning QR as a data:image/png;base64 URL.
type TwoFactorEnrollment struct {
	Secret string `json:"secret"`
	QRCode string `json:"qrCode"`
}
