package postgres

import (
	"context"
	"database/sql"
	"errors"

	"tripmate/internal/domain"
)

// OrderRepository is a PostgreSQL implementation of repository.OrderRepository.
type OrderRepository struct {
	q Querier
}

// NewOrderRepository creates a new PostgreSQL order repository.
func NewOrderRepository(db *sql.DB) *OrderRepository {
	return &OrderRepository{q: db}
}

// Create persists a newly created gateway order.
func (r *OrderRepository) Create(ctx context.Context, order *domain.Order) error {
	query := `
		INSERT INTO orders (id, amount, currency, receipt, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.q.ExecContext(ctx, query,
		order.ID,
		order.Amount,
		order.Currency,
		order.Receipt,
		order.Status,
		order.CreatedAt,
	)

	return err
}

// GetByReceipt retrieves an order by its merchant receipt.
// Returns nil if no order exists with the given receipt.
func (r *OrderRepository) GetByReceipt(ctx context.Context, receipt string) (*domain.Order, error) {
	query := `
		SELECT id, amount, currency, receipt, status, created_at
		FROM orders WHERE receipt = $1
	`

	var order domain.Order
	err := r.q.QueryRowContext(ctx, query, receipt).Scan(
		&order.ID,
		&order.Amount,
		&order.Currency,
		&order.Receipt,
		&order.Status,
		&order.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &order, nil
}
