package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"tripmate/internal/config"
	"tripmate/internal/domain"
	"tripmate/internal/razorpay"
	"tripmate/internal/redis"
	"tripmate/internal/repository"
	"tripmate/internal/signature"
)

// Gateway is the interface to the payment gateway that creates orders.
type Gateway interface {
	CreateOrder(ctx context.Context, params razorpay.OrderParams) (*razorpay.Order, error)
}

// PaymentService creates gateway orders and verifies payment callbacks.
type PaymentService struct {
	creds    config.RazorpayConfig
	gateway  Gateway
	orders   repository.OrderRepository
	bookings repository.BookingRepository
	payments redis.PaymentStoreInterface
	notifier *NotificationService
}

// NewPaymentService creates a new PaymentService.
func NewPaymentService(
	creds config.RazorpayConfig,
	gateway Gateway,
	orders repository.OrderRepository,
	bookings repository.BookingRepository,
	payments redis.PaymentStoreInterface,
	notifier *NotificationService,
) *PaymentService {
	return &PaymentService{
		creds:    creds,
		gateway:  gateway,
		orders:   orders,
		bookings: bookings,
		payments: payments,
		notifier: notifier,
	}
}

// CreateOrderRequest contains the parameters for creating a gateway order.
type CreateOrderRequest struct {
	Amount   int64 // minor currency units
	Currency string
	Receipt  string
	Notes    map[string]string
}

// OrderResult is returned to the caller after an order is created.
// It carries the public key id and never the key secret.
type OrderResult struct {
	OrderID  string
	Amount   int64
	Currency string
	Receipt  string
	Status   string
	KeyID    string
}

// CreateOrder validates the request and creates an order on the gateway.
// A receipt that already has an order returns the original order instead of
// charging the gateway again.
func (s *PaymentService) CreateOrder(ctx context.Context, req CreateOrderRequest) (*OrderResult, error) {
	if req.Amount <= 0 {
		return nil, ErrInvalidAmount
	}
	if req.Currency == "" {
		return nil, ErrMissingCurrency
	}
	if req.Receipt == "" {
		return nil, ErrMissingReceipt
	}
	if !s.creds.Configured() {
		return nil, ErrGatewayNotConfigured
	}

	existing, err := s.orders.GetByReceipt(ctx, req.Receipt)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return s.orderResult(existing), nil
	}

	order, err := s.gateway.CreateOrder(ctx, razorpay.OrderParams{
		Amount:   req.Amount,
		Currency: req.Currency,
		Receipt:  req.Receipt,
		Notes:    req.Notes,
	})
	if err != nil {
		return nil, fmt.Errorf("create gateway order: %w", err)
	}

	record := &domain.Order{
		ID:        order.ID,
		Amount:    order.Amount,
		Currency:  order.Currency,
		Receipt:   order.Receipt,
		Status:    order.Status,
		CreatedAt: time.Now(),
	}
	if err := s.orders.Create(ctx, record); err != nil {
		return nil, fmt.Errorf("persist order: %w", err)
	}

	return s.orderResult(record), nil
}

func (s *PaymentService) orderResult(order *domain.Order) *OrderResult {
	return &OrderResult{
		OrderID:  order.ID,
		Amount:   order.Amount,
		Currency: order.Currency,
		Receipt:  order.Receipt,
		Status:   order.Status,
		KeyID:    s.creds.KeyID,
	}
}

// VerifyPaymentRequest contains the parameters for verifying a payment callback.
type VerifyPaymentRequest struct {
	OrderID   string
	PaymentID string
	Signature string // lowercase hex
	BookingID string // optional; when set, the booking is marked paid
}

// VerifyPayment recomputes the callback signature and compares it to the
// supplied one. A mismatch is a normal negative result, not an error. On a
// match with a booking id, the booking is marked paid in a single update;
// repeating the call for an already-paid booking is a no-op.
func (s *PaymentService) VerifyPayment(ctx context.Context, req VerifyPaymentRequest) (bool, error) {
	if req.OrderID == "" {
		return false, ErrMissingOrderID
	}
	if req.PaymentID == "" {
		return false, ErrMissingPaymentID
	}
	if req.Signature == "" {
		return false, ErrMissingSignature
	}
	if s.creds.KeySecret == "" {
		return false, ErrGatewayNotConfigured
	}

	if !signature.Verify(req.OrderID, req.PaymentID, s.creds.KeySecret, req.Signature) {
		return false, nil
	}

	if req.BookingID != "" {
		if err := s.bookings.MarkPaid(ctx, req.BookingID, req.PaymentID, req.OrderID); err != nil {
			return false, fmt.Errorf("mark booking paid: %w", err)
		}
	}

	first, err := s.payments.MarkVerified(ctx, req.PaymentID)
	if err != nil {
		// The dedupe cache is advisory; a Redis outage must not fail a valid payment.
		log.Printf("payment store: mark verified %s: %v", req.PaymentID, err)
		first = false
	}

	if first && s.notifier != nil {
		_ = s.notifier.NotifyPaymentReceived(ctx, req.BookingID, req.OrderID, req.PaymentID)
	}

	return true, nil
}
