package domain

import "time"

// Evaluation is a graded response against a criterion.
type Evaluation struct {
	ID          string     `json:"id"`
	Kind        string     `json:"tipo"`
	CriterionID *string    `json:"criterioId"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
	DeletedAt   *time.Time `json:"deletedAt"`
}
