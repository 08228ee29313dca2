package domain

import "time"

// Criterion is one axis a survey evaluates professors on.
type Criterion struct {
	ID        string     `json:"id"`
	Name      string     `json:"nombre"`
	SurveyID  *string    `json:"encuestaId"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
	DeletedAt *time.Time `json:"deletedAt"`
}
