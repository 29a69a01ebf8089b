package redis

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// PaymentStore tracks verified payment ids in Redis so repeated gateway
// callbacks for the same payment are recognised without touching Postgres.
type PaymentStore struct {
	client *redis.Client
}

// NewPaymentStore creates a new PaymentStore.
func NewPaymentStore(client *redis.Client) *PaymentStore {
	return &PaymentStore{client: client}
}

const (
	verifiedPaymentPrefix = "payments:verified:"

	// VerifiedPaymentTTL bounds how long a verified payment id is remembered.
	// Gateway callback retries arrive within minutes; a day is ample.
	VerifiedPaymentTTL = 24 * time.Hour
)

// MarkVerified records a payment id as verified. Returns true when this is
// the first time the payment id was seen.
func (s *PaymentStore) MarkVerified(ctx context.Context, paymentID string) (bool, error) {
	return s.client.SetNX(ctx, verifiedPaymentPrefix+paymentID, "1", VerifiedPaymentTTL).Result()
}

// IsVerified reports whether a payment id was already verified.
func (s *PaymentStore) IsVerified(ctx context.Context, paymentID string) (bool, error) {
	n, err := s.client.Exists(ctx, verifiedPaymentPrefix+paymentID).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
