package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
)

// NotificationType represents the type of notification.
type NotificationType string

const (
	NotificationPaymentReceived NotificationType = "PAYMENT_RECEIVED"
	NotificationBookingPaid     NotificationType = "BOOKING_PAID"
)

// Notification represents a notification to be sent.
type Notification struct {
	ID          string
	Type        NotificationType
	RecipientID string // booking or user ID
	Title       string
	Message     string
	Data        map[string]interface{}
	CreatedAt   time.Time
}

// NotificationService handles notification delivery.
type NotificationService struct {
	// In a real system, this would have:
	// - Push notification client (FCM, APNS)
	// - Email client for payment receipts
}

// NewNotificationService creates a new NotificationService.
func NewNotificationService() *NotificationService {
	return &NotificationService{}
}

// NotifyPaymentReceived notifies the traveller that their payment was received.
func (s *NotificationService) NotifyPaymentReceived(ctx context.Context, bookingID, orderID, paymentID string) error {
	notification := Notification{
		ID:          uuid.New().String(),
		Type:        NotificationPaymentReceived,
		RecipientID: bookingID,
		Title:       "Payment Received",
		Message:     fmt.Sprintf("Payment %s for your booking was received.", paymentID),
		Data: map[string]interface{}{
			"booking_id": bookingID,
			"order_id":   orderID,
			"payment_id": paymentID,
		},
		CreatedAt: time.Now(),
	}
	return s.send(ctx, notification)
}

// NotifyBookingPaid notifies the traveller that their booking is confirmed as paid.
func (s *NotificationService) NotifyBookingPaid(ctx context.Context, bookingID string) error {
	notification := Notification{
		ID:          uuid.New().String(),
		Type:        NotificationBookingPaid,
		RecipientID: bookingID,
		Title:       "Booking Confirmed",
		Message:     "Your booking is confirmed. Have a great trip!",
		Data: map[string]interface{}{
			"booking_id": bookingID,
		},
		CreatedAt: time.Now(),
	}
	return s.send(ctx, notification)
}

// send delivers a notification (mock implementation).
func (s *NotificationService) send(ctx context.Context, notification Notification) error {
	// In a real implementation, this would:
	// 1. Store notification in database
	// 2. Send push notification via FCM/APNS
	// 3. Send email receipt if enabled

	log.Printf("[NOTIFICATION] Type=%s, Recipient=%s, Title=%s, Message=%s",
		notification.Type, notification.RecipientID, notification.Title, notification.Message)

	return nil
}
