package domain

import "time"

// BookingStatus represents the payment status of a booking.
type BookingStatus string

const (
	BookingStatusPending BookingStatus = "pending"
	BookingStatusPaid    BookingStatus = "paid"
)

// Booking represents a reserved trip awaiting or having received payment.
// The booking itself is created by the trip service; this core only
// transitions it from pending to paid.
type Booking struct {
	ID             string
	UserID         string
	TripName       string
	AmountDue      int64 // minor currency units
	Currency       string
	Status         BookingStatus
	PaymentID      string
	GatewayOrderID string
	PaidAt         time.Time
	CreatedAt      time.Time
}
