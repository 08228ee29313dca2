package domain

import "time"

type Faculty struct {
	ID        string     `json:"id"`
	Name      string     `json:"nombre"`
	Head      string     `json:"responsable"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
	DeletedAt *time.Time `json:"deletedAt"`
}
