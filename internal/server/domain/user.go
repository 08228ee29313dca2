package domain

import "time"

// User is the credential record. PasswordHash and TwoFactorSecret are never
// serialized; the JSON tags keep the wire names the API has always used.
type User struct {
	ID               string     `json:"id"`
	Username         string     `json:"nombre_usuario"`
	PasswordHash     string     `json:"-"`
	Role             Role       `json:"rol"`
	TwoFactorSecret  *string    `json:"-"`
	TwoFactorEnabled bool       `json:"twoFactorEnabled"`
	CreatedAt        time.Time  `json:"createdAt"`
	UpdatedAt        time.Time  `json:"updatedAt"`
	DeletedAt        *time.Time `json:"deletedAt"`
}

// TwoFactorState is derived from the two persisted fields. Enrollment is a
// two-step handshake: generating a secret lands in EnrolledUnconfirmed, and
// only a successful code verification confirms it.
type TwoFactorState int

const (
	TwoFactorNotEnrolled TwoFactorState = iota
	TwoFactorEnrolledUnconfirmed
	TwoFactorEnrolled
)

func (u User) TwoFactorState() TwoFactorState {
	switch {
	case u.TwoFactorSecret == nil || *u.TwoFactorSecret == "":
		return TwoFactorNotEnrolled
	case !u.TwoFactorEnabled:
		return TwoFactorEnrolledUnconfirmed
	default:
		return TwoFactorEnrolled
	}
}
