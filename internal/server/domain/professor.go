package domain

import "time"

// Professor belongs to a faculty; the FK is nullable and cleared when the
// faculty is removed. Age stays a string because that is what the API has
// always exchanged.
type Professor struct {
	ID        string     `json:"id"`
	Name      string     `json:"nombre"`
	Sex       string     `json:"sexo"`
	Age       string     `json:"edad"`
	Subject   string     `json:"asignatura"`
	Image     *string    `json:"imagen"`
	FacultyID *string    `json:"facultadId"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
	DeletedAt *time.Time `json:"deletedAt"`
}
