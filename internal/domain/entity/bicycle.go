package entity

import "time"

// Bicycle is a rentable bicycle in the catalog.
type Bicycle struct {
	ID          string    `json:"_id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Price       float64   `json:"price"`
	ImageURL    string    `json:"img,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}
