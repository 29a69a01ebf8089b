package tests

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"tripmate/internal/auth"
	"tripmate/internal/domain"
	"tripmate/internal/razorpay"
	"tripmate/internal/repository"
)

// ──────────────────────────────────────────────
// MOCK BOOKING REPOSITORY
// ──────────────────────────────────────────────

// MockBookingRepository is a mock implementation of BookingRepository.
type MockBookingRepository struct {
	mu       sync.RWMutex
	bookings map[string]*domain.Booking

	// Counters for verification
	MarkPaidCallCount int32

	// Error injection
	MarkPaidError error
}

// NewMockBookingRepository creates a new mock booking repository.
func NewMockBookingRepository() *MockBookingRepository {
	return &MockBookingRepository{
		bookings: make(map[string]*domain.Booking),
	}
}

// AddBooking adds a booking to the mock repository.
func (m *MockBookingRepository) AddBooking(booking *domain.Booking) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.bookings[booking.ID] = booking
}

func (m *MockBookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	booking, ok := m.bookings[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	// Return a copy to avoid mutation issues.
	copy := *booking
	return &copy, nil
}

func (m *MockBookingRepository) MarkPaid(ctx context.Context, id, paymentID, gatewayOrderID string) error {
	atomic.AddInt32(&m.MarkPaidCallCount, 1)
	if m.MarkPaidError != nil {
		return m.MarkPaidError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	booking, ok := m.bookings[id]
	if !ok {
		return repository.ErrNotFound
	}
	if booking.Status == domain.BookingStatusPaid {
		// Already paid - no-op, original payment fields stay.
		return nil
	}
	booking.Status = domain.BookingStatusPaid
	booking.PaymentID = paymentID
	booking.GatewayOrderID = gatewayOrderID
	booking.PaidAt = time.Now()
	return nil
}

// GetBooking returns a booking for test assertions.
func (m *MockBookingRepository) GetBooking(id string) *domain.Booking {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.bookings[id]
}

// ──────────────────────────────────────────────
// MOCK ORDER REPOSITORY
// ──────────────────────────────────────────────

// MockOrderRepository is a mock implementation of OrderRepository.
type MockOrderRepository struct {
	mu     sync.RWMutex
	orders map[string]*domain.Order // keyed by receipt

	// Counters for verification
	CreateCallCount int32

	// Error injection
	CreateError       error
	GetByReceiptError error
}

// NewMockOrderRepository creates a new mock order repository.
func NewMockOrderRepository() *MockOrderRepository {
	return &MockOrderRepository{
		orders: make(map[string]*domain.Order),
	}
}

func (m *MockOrderRepository) Create(ctx context.Context, order *domain.Order) error {
	atomic.AddInt32(&m.CreateCallCount, 1)
	if m.CreateError != nil {
		return m.CreateError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	copy := *order
	m.orders[order.Receipt] = &copy
	return nil
}

func (m *MockOrderRepository) GetByReceipt(ctx context.Context, receipt string) (*domain.Order, error) {
	if m.GetByReceiptError != nil {
		return nil, m.GetByReceiptError
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	order, ok := m.orders[receipt]
	if !ok {
		return nil, nil
	}
	copy := *order
	return &copy, nil
}

// CountOrders returns the number of persisted orders.
func (m *MockOrderRepository) CountOrders() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.orders)
}

// ──────────────────────────────────────────────
// MOCK PAYMENT GATEWAY
// ──────────────────────────────────────────────

// MockGateway is a mock implementation of the payment gateway client.
type MockGateway struct {
	mu sync.Mutex

	// NextOrderID is assigned to the next created order.
	NextOrderID string

	// Counters for verification
	CreateOrderCallCount int32

	// Error injection
	CreateOrderError error

	// LastParams records the most recent create call.
	LastParams razorpay.OrderParams
}

// NewMockGateway creates a new mock gateway.
func NewMockGateway() *MockGateway {
	return &MockGateway{NextOrderID: "order_test_1"}
}

func (m *MockGateway) CreateOrder(ctx context.Context, params razorpay.OrderParams) (*razorpay.Order, error) {
	atomic.AddInt32(&m.CreateOrderCallCount, 1)
	if m.CreateOrderError != nil {
		return nil, m.CreateOrderError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.LastParams = params
	return &razorpay.Order{
		ID:       m.NextOrderID,
		Amount:   params.Amount,
		Currency: params.Currency,
		Receipt:  params.Receipt,
		Status:   "created",
	}, nil
}

// ──────────────────────────────────────────────
// MOCK PAYMENT STORE
// ──────────────────────────────────────────────

// MockPaymentStore is an in-memory implementation of PaymentStoreInterface.
type MockPaymentStore struct {
	mu       sync.Mutex
	verified map[string]bool

	// Counters for verification
	MarkVerifiedCallCount int32

	// Error injection
	MarkVerifiedError error
}

// NewMockPaymentStore creates a new mock payment store.
func NewMockPaymentStore() *MockPaymentStore {
	return &MockPaymentStore{verified: make(map[string]bool)}
}

func (m *MockPaymentStore) MarkVerified(ctx context.Context, paymentID string) (bool, error) {
	atomic.AddInt32(&m.MarkVerifiedCallCount, 1)
	if m.MarkVerifiedError != nil {
		return false, m.MarkVerifiedError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.verified[paymentID] {
		return false, nil
	}
	m.verified[paymentID] = true
	return true, nil
}

func (m *MockPaymentStore) IsVerified(ctx context.Context, paymentID string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.verified[paymentID], nil
}

// ──────────────────────────────────────────────
// STATIC AUTHENTICATOR
// ──────────────────────────────────────────────

// ErrBadToken is returned by StaticAuthenticator for unknown tokens.
var ErrBadToken = errors.New("bad token")

// StaticAuthenticator accepts a single fixed token, for handler tests.
type StaticAuthenticator struct {
	Token    string
	Identity auth.Identity
}

func (a *StaticAuthenticator) Verify(token string) (*auth.Identity, error) {
	if token != a.Token {
		return nil, ErrBadToken
	}
	identity := a.Identity
	return &identity, nil
}
