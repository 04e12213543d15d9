package entity

import "time"

// Review is a rating left by a user.
type Review struct {
	ID        string    `json:"_id"`
	UserEmail string    `json:"userEmail"`
	Name      string    `json:"name"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}
