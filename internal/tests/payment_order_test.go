package tests

import (
	"context"
	"errors"
	"testing"

	"tripmate/internal/config"
	"tripmate/internal/service"
)

var testCreds = config.RazorpayConfig{
	KeyID:     "rzp_test_key",
	KeySecret: "s3cr3t",
}

func newPaymentService(creds config.RazorpayConfig, gateway *MockGateway, orders *MockOrderRepository, bookings *MockBookingRepository, payments *MockPaymentStore) *service.PaymentService {
	return service.NewPaymentService(creds, gateway, orders, bookings, payments, service.NewNotificationService())
}

func TestCreateOrder_Success(t *testing.T) {
	t.Parallel()

	gateway := NewMockGateway()
	orders := NewMockOrderRepository()
	svc := newPaymentService(testCreds, gateway, orders, NewMockBookingRepository(), NewMockPaymentStore())

	result, err := svc.CreateOrder(context.Background(), service.CreateOrderRequest{
		Amount:   50000,
		Currency: "INR",
		Receipt:  "booking_b1",
		Notes:    map[string]string{"booking_id": "b1"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.OrderID != "order_test_1" {
		t.Errorf("expected order id order_test_1, got %s", result.OrderID)
	}
	if result.Amount != 50000 || result.Currency != "INR" || result.Receipt != "booking_b1" {
		t.Errorf("unexpected order result: %+v", result)
	}
	if result.KeyID != "rzp_test_key" {
		t.Errorf("expected public key id in result, got %s", result.KeyID)
	}
	if gateway.CreateOrderCallCount != 1 {
		t.Errorf("expected 1 gateway call, got %d", gateway.CreateOrderCallCount)
	}
	if gateway.LastParams.Notes["booking_id"] != "b1" {
		t.Errorf("expected notes forwarded to gateway, got %+v", gateway.LastParams.Notes)
	}
	if orders.CountOrders() != 1 {
		t.Errorf("expected 1 persisted order, got %d", orders.CountOrders())
	}
}

func TestCreateOrder_ValidationFailures(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		req     service.CreateOrderRequest
		wantErr error
	}{
		{"zero amount", service.CreateOrderRequest{Amount: 0, Currency: "INR", Receipt: "r1"}, service.ErrInvalidAmount},
		{"negative amount", service.CreateOrderRequest{Amount: -100, Currency: "INR", Receipt: "r1"}, service.ErrInvalidAmount},
		{"missing currency", service.CreateOrderRequest{Amount: 100, Receipt: "r1"}, service.ErrMissingCurrency},
		{"missing receipt", service.CreateOrderRequest{Amount: 100, Currency: "INR"}, service.ErrMissingReceipt},
	}

	for _, tc := range cases {
		gateway := NewMockGateway()
		svc := newPaymentService(testCreds, gateway, NewMockOrderRepository(), NewMockBookingRepository(), NewMockPaymentStore())

		_, err := svc.CreateOrder(context.Background(), tc.req)
		if !errors.Is(err, tc.wantErr) {
			t.Errorf("%s: expected %v, got %v", tc.name, tc.wantErr, err)
		}
		if gateway.CreateOrderCallCount != 0 {
			t.Errorf("%s: expected no gateway call, got %d", tc.name, gateway.CreateOrderCallCount)
		}
	}
}

func TestCreateOrder_MissingCredentials(t *testing.T) {
	t.Parallel()

	gateway := NewMockGateway()
	svc := newPaymentService(config.RazorpayConfig{}, gateway, NewMockOrderRepository(), NewMockBookingRepository(), NewMockPaymentStore())

	_, err := svc.CreateOrder(context.Background(), service.CreateOrderRequest{
		Amount:   100,
		Currency: "INR",
		Receipt:  "r1",
	})
	if !errors.Is(err, service.ErrGatewayNotConfigured) {
		t.Fatalf("expected ErrGatewayNotConfigured, got %v", err)
	}
	if gateway.CreateOrderCallCount != 0 {
		t.Errorf("expected no gateway call, got %d", gateway.CreateOrderCallCount)
	}
}

func TestCreateOrder_SameReceiptReturnsExistingOrder(t *testing.T) {
	t.Parallel()

	gateway := NewMockGateway()
	orders := NewMockOrderRepository()
	svc := newPaymentService(testCreds, gateway, orders, NewMockBookingRepository(), NewMockPaymentStore())

	req := service.CreateOrderRequest{Amount: 25000, Currency: "INR", Receipt: "booking_b2"}

	first, err := svc.CreateOrder(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	second, err := svc.CreateOrder(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if second.OrderID != first.OrderID {
		t.Errorf("expected same order id on retry, got %s vs %s", second.OrderID, first.OrderID)
	}
	if gateway.CreateOrderCallCount != 1 {
		t.Errorf("expected a single gateway call across retries, got %d", gateway.CreateOrderCallCount)
	}
	if orders.CountOrders() != 1 {
		t.Errorf("expected 1 persisted order, got %d", orders.CountOrders())
	}
}

func TestCreateOrder_GatewayFailure(t *testing.T) {
	t.Parallel()

	gateway := NewMockGateway()
	gateway.CreateOrderError = errors.New("razorpay: order rejected: amount too small")
	orders := NewMockOrderRepository()
	svc := newPaymentService(testCreds, gateway, orders, NewMockBookingRepository(), NewMockPaymentStore())

	_, err := svc.CreateOrder(context.Background(), service.CreateOrderRequest{
		Amount:   1,
		Currency: "INR",
		Receipt:  "r1",
	})
	if err == nil {
		t.Fatal("expected error")
	}
	if orders.CountOrders() != 0 {
		t.Errorf("expected no persisted order after gateway failure, got %d", orders.CountOrders())
	}
}
