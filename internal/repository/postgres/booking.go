package postgres

import (
	"context"
	"database/sql"
	"errors"

	"tripmate/internal/domain"
	"tripmate/internal/repository"
)

// BookingRepository is a PostgreSQL implementation of repository.BookingRepository.
type BookingRepository struct {
	q Querier
}

// NewBookingRepository creates a new PostgreSQL booking repository.
func NewBookingRepository(db *sql.DB) *BookingRepository {
	return &BookingRepository{q: db}
}

// NewBookingRepositoryWithTx creates a booking repository using a transaction.
func NewBookingRepositoryWithTx(tx *sql.Tx) *BookingRepository {
	return &BookingRepository{q: tx}
}

// GetByID retrieves a booking by ID.
func (r *BookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	query := `
		SELECT id, user_id, trip_name, amount_due, currency, status,
		       COALESCE(payment_id, ''), COALESCE(gateway_order_id, ''), paid_at, created_at
		FROM bookings WHERE id = $1
	`

	var booking domain.Booking
	var paidAt sql.NullTime
	err := r.q.QueryRowContext(ctx, query, id).Scan(
		&booking.ID,
		&booking.UserID,
		&booking.TripName,
		&booking.AmountDue,
		&booking.Currency,
		&booking.Status,
		&booking.PaymentID,
		&booking.GatewayOrderID,
		&paidAt,
		&booking.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	if paidAt.Valid {
		booking.PaidAt = paidAt.Time
	}

	return &booking, nil
}

// MarkPaid transitions a booking to paid in a single statement. A booking
// that is already paid keeps its original payment fields and timestamp, so
// concurrent or repeated verifications collapse into one transition.
func (r *BookingRepository) MarkPaid(ctx context.Context, id, paymentID, gatewayOrderID string) error {
	query := `
		UPDATE bookings
		SET status = 'paid',
		    paid_at = CASE WHEN status = 'paid' THEN paid_at ELSE NOW() END,
		    payment_id = CASE WHEN status = 'paid' THEN payment_id ELSE $2 END,
		    gateway_order_id = CASE WHEN status = 'paid' THEN gateway_order_id ELSE $3 END
		WHERE id = $1
	`

	result, err := r.q.ExecContext(ctx, query, id, paymentID, gatewayOrderID)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return repository.ErrNotFound
	}

	return nil
}
