package entity

import "time"

// Order status values for a booking.
const (
	OrderPending  = "pending"
	OrderShipped  = "shipped"
	OrderApproved = "approved"
)

// Booking is a rental order placed by a user for a bicycle.
// UserEmail links the booking to the account that placed it; bookings are
// queried by that email, not by account id.
type Booking struct {
	ID          string    `json:"_id"`
	UserEmail   string    `json:"userEmail"`
	UserName    string    `json:"userName,omitempty"`
	BicycleID   string    `json:"bicycleId,omitempty"`
	BicycleName string    `json:"bicycleName"`
	Price       float64   `json:"price"`
	Date        string    `json:"date"`
	Phone       string    `json:"phone,omitempty"`
	Address     string    `json:"address,omitempty"`
	OrderStatus string    `json:"orderStatus"`
	CreatedAt   time.Time `json:"createdAt"`
}
