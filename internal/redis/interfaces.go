package redis

import "context"

// PaymentStoreInterface defines the interface for verified-payment tracking.
type PaymentStoreInterface interface {
	MarkVerified(ctx context.Context, paymentID string) (bool, error)
	IsVerified(ctx context.Context, paymentID string) (bool, error)
}

// Ensure concrete types implement interfaces.
var _ PaymentStoreInterface = (*PaymentStore)(nil)
