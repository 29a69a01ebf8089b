package repository

import (
	"context"

	"tripmate/internal/domain"
)

// BookingRepository defines the persistence operations for bookings.
type BookingRepository interface {
	// GetByID retrieves a booking by ID.
	GetByID(ctx context.Context, id string) (*domain.Booking, error)

	// MarkPaid transitions a booking to paid, recording the payment and
	// gateway order identifiers and a server-assigned paid-at timestamp.
	// Marking an already-paid booking is a no-op.
	MarkPaid(ctx context.Context, id, paymentID, gatewayOrderID string) error
}
