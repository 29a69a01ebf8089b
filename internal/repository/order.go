package repository

import (
	"context"

	"tripmate/internal/domain"
)

// OrderRepository defines the persistence operations for gateway orders.
type OrderRepository interface {
	// Create persists a newly created gateway order.
	Create(ctx context.Context, order *domain.Order) error

	// GetByReceipt retrieves an order by its merchant receipt.
	// Returns nil if no order exists with the given receipt.
	GetByReceipt(ctx context.Context, receipt string) (*domain.Order, error)
}
