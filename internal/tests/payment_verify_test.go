package tests

import (
	"context"
	"errors"
	"testing"

	"tripmate/internal/config"
	"tripmate/internal/domain"
	"tripmate/internal/service"
	"tripmate/internal/signature"
)

func pendingBooking(id string) *domain.Booking {
	return &domain.Booking{
		ID:        id,
		UserID:    "user-1",
		TripName:  "Goa Beach Escape",
		AmountDue: 50000,
		Currency:  "INR",
		Status:    domain.BookingStatusPending,
	}
}

func TestVerifyPayment_ValidSignature(t *testing.T) {
	t.Parallel()

	bookings := NewMockBookingRepository()
	bookings.AddBooking(pendingBooking("b1"))
	payments := NewMockPaymentStore()
	svc := newPaymentService(testCreds, NewMockGateway(), NewMockOrderRepository(), bookings, payments)

	sig := signature.Sign("order_1", "pay_1", "s3cr3t")

	valid, err := svc.VerifyPayment(context.Background(), service.VerifyPaymentRequest{
		OrderID:   "order_1",
		PaymentID: "pay_1",
		Signature: sig,
		BookingID: "b1",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !valid {
		t.Fatal("expected valid signature")
	}

	booking := bookings.GetBooking("b1")
	if booking.Status != domain.BookingStatusPaid {
		t.Errorf("expected booking paid, got %s", booking.Status)
	}
	if booking.PaymentID != "pay_1" || booking.GatewayOrderID != "order_1" {
		t.Errorf("unexpected payment fields: %+v", booking)
	}
	if booking.PaidAt.IsZero() {
		t.Error("expected paid timestamp to be set")
	}
	if seen, _ := payments.IsVerified(context.Background(), "pay_1"); !seen {
		t.Error("expected payment id recorded as verified")
	}
}

func TestVerifyPayment_InvalidSignature(t *testing.T) {
	t.Parallel()

	bookings := NewMockBookingRepository()
	bookings.AddBooking(pendingBooking("b1"))
	svc := newPaymentService(testCreds, NewMockGateway(), NewMockOrderRepository(), bookings, NewMockPaymentStore())

	valid, err := svc.VerifyPayment(context.Background(), service.VerifyPaymentRequest{
		OrderID:   "order_1",
		PaymentID: "pay_1",
		Signature: "deadbeef",
		BookingID: "b1",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if valid {
		t.Fatal("expected invalid signature")
	}

	booking := bookings.GetBooking("b1")
	if booking.Status != domain.BookingStatusPending {
		t.Errorf("expected booking untouched, got status %s", booking.Status)
	}
	if bookings.MarkPaidCallCount != 0 {
		t.Errorf("expected no store mutation, got %d MarkPaid calls", bookings.MarkPaidCallCount)
	}
}

func TestVerifyPayment_ValidationFailures(t *testing.T) {
	t.Parallel()

	svc := newPaymentService(testCreds, NewMockGateway(), NewMockOrderRepository(), NewMockBookingRepository(), NewMockPaymentStore())

	cases := []struct {
		name    string
		req     service.VerifyPaymentRequest
		wantErr error
	}{
		{"missing order id", service.VerifyPaymentRequest{PaymentID: "p", Signature: "s"}, service.ErrMissingOrderID},
		{"missing payment id", service.VerifyPaymentRequest{OrderID: "o", Signature: "s"}, service.ErrMissingPaymentID},
		{"missing signature", service.VerifyPaymentRequest{OrderID: "o", PaymentID: "p"}, service.ErrMissingSignature},
	}

	for _, tc := range cases {
		if _, err := svc.VerifyPayment(context.Background(), tc.req); !errors.Is(err, tc.wantErr) {
			t.Errorf("%s: expected %v, got %v", tc.name, tc.wantErr, err)
		}
	}
}

func TestVerifyPayment_MissingSecret(t *testing.T) {
	t.Parallel()

	bookings := NewMockBookingRepository()
	bookings.AddBooking(pendingBooking("b1"))
	svc := newPaymentService(config.RazorpayConfig{KeyID: "rzp_test_key"}, NewMockGateway(), NewMockOrderRepository(), bookings, NewMockPaymentStore())

	_, err := svc.VerifyPayment(context.Background(), service.VerifyPaymentRequest{
		OrderID:   "order_1",
		PaymentID: "pay_1",
		Signature: "deadbeef",
		BookingID: "b1",
	})
	if !errors.Is(err, service.ErrGatewayNotConfigured) {
		t.Fatalf("expected ErrGatewayNotConfigured, got %v", err)
	}
	if bookings.MarkPaidCallCount != 0 {
		t.Error("expected no store mutation without configured secret")
	}
}

func TestVerifyPayment_RepeatedCallIsIdempotent(t *testing.T) {
	t.Parallel()

	bookings := NewMockBookingRepository()
	bookings.AddBooking(pendingBooking("b1"))
	svc := newPaymentService(testCreds, NewMockGateway(), NewMockOrderRepository(), bookings, NewMockPaymentStore())

	req := service.VerifyPaymentRequest{
		OrderID:   "order_1",
		PaymentID: "pay_1",
		Signature: signature.Sign("order_1", "pay_1", "s3cr3t"),
		BookingID: "b1",
	}

	for i := 0; i < 2; i++ {
		valid, err := svc.VerifyPayment(context.Background(), req)
		if err != nil {
			t.Fatalf("call %d: unexpected error: %v", i+1, err)
		}
		if !valid {
			t.Fatalf("call %d: expected valid", i+1)
		}
	}

	booking := bookings.GetBooking("b1")
	if booking.Status != domain.BookingStatusPaid {
		t.Errorf("expected booking paid, got %s", booking.Status)
	}
	firstPaidAt := booking.PaidAt

	// A third call must not move the paid timestamp.
	if _, err := svc.VerifyPayment(context.Background(), req); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bookings.GetBooking("b1").PaidAt.Equal(firstPaidAt) {
		t.Error("expected paid timestamp to be preserved on repeat verification")
	}
}

func TestVerifyPayment_StoreFailureIsNotSuccess(t *testing.T) {
	t.Parallel()

	bookings := NewMockBookingRepository()
	bookings.AddBooking(pendingBooking("b1"))
	bookings.MarkPaidError = errors.New("store unavailable")
	svc := newPaymentService(testCreds, NewMockGateway(), NewMockOrderRepository(), bookings, NewMockPaymentStore())

	valid, err := svc.VerifyPayment(context.Background(), service.VerifyPaymentRequest{
		OrderID:   "order_1",
		PaymentID: "pay_1",
		Signature: signature.Sign("order_1", "pay_1", "s3cr3t"),
		BookingID: "b1",
	})
	if err == nil {
		t.Fatal("expected error when the booking update fails after a valid signature")
	}
	if valid {
		t.Error("expected valid=false on store failure")
	}
}

func TestVerifyPayment_NoBookingID(t *testing.T) {
	t.Parallel()

	bookings := NewMockBookingRepository()
	svc := newPaymentService(testCreds, NewMockGateway(), NewMockOrderRepository(), bookings, NewMockPaymentStore())

	valid, err := svc.VerifyPayment(context.Background(), service.VerifyPaymentRequest{
		OrderID:   "order_1",
		PaymentID: "pay_1",
		Signature: signature.Sign("order_1", "pay_1", "s3cr3t"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !valid {
		t.Fatal("expected valid signature")
	}
	if bookings.MarkPaidCallCount != 0 {
		t.Errorf("expected no booking update without a booking id, got %d", bookings.MarkPaidCallCount)
	}
}

func TestOrderThenVerify_RoundTrip(t *testing.T) {
	t.Parallel()

	gateway := NewMockGateway()
	gateway.NextOrderID = "order_roundtrip"
	bookings := NewMockBookingRepository()
	bookings.AddBooking(pendingBooking("b9"))
	svc := newPaymentService(testCreds, gateway, NewMockOrderRepository(), bookings, NewMockPaymentStore())

	result, err := svc.CreateOrder(context.Background(), service.CreateOrderRequest{
		Amount:   50000,
		Currency: "INR",
		Receipt:  "booking_b9",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// The gateway signs order id + payment id with the shared secret.
	sig := signature.Sign(result.OrderID, "pay_roundtrip", "s3cr3t")

	valid, err := svc.VerifyPayment(context.Background(), service.VerifyPaymentRequest{
		OrderID:   result.OrderID,
		PaymentID: "pay_roundtrip",
		Signature: sig,
		BookingID: "b9",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !valid {
		t.Fatal("expected round-trip verification to succeed")
	}
	if bookings.GetBooking("b9").Status != domain.BookingStatusPaid {
		t.Error("expected booking paid after round trip")
	}
}
