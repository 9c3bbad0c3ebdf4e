package domain

import "time"

// Place is a planned trip or purchase with an estimated cost, owned by one user.
type Place struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description,omitempty"`
	EstimatedCost float64   `json:"estimated_cost"`
	UserID        string    `json:"-"`
	CreatedAt     time.Time `json:"created_at"`
}
