package domain

import "time"

// Order represents a payment-gateway order created for a booking.
type Order struct {
	ID        string // gateway-assigned order id
	Amount    int64  // minor currency units
	Currency  string
	Receipt   string
	Status    string
	CreatedAt time.Time
}
