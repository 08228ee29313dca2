package domain

import "time"

// Survey (encuesta) is owned by the user who created it.
type Survey struct {
	ID        string     `json:"id"`
	Name      string     `json:"nombre"`
	UserID    *string    `json:"usuarioId"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
	DeletedAt *time.Time `json:"deletedAt"`
}
