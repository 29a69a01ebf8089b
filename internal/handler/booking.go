package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"tripmate/internal/repository"
)

// BookingHandler handles HTTP requests for bookings.
type BookingHandler struct {
	bookingRepo repository.BookingRepository
}

// NewBookingHandler creates a new BookingHandler.
func NewBookingHandler(bookingRepo repository.BookingRepository) *BookingHandler {
	return &BookingHandler{bookingRepo: bookingRepo}
}

// BookingResponse is the HTTP response for booking data.
type BookingResponse struct {
	ID             string     `json:"id"`
	TripName       string     `json:"trip_name"`
	AmountDue      int64      `json:"amount_due"`
	Currency       string     `json:"currency"`
	Status         string     `json:"status"`
	PaymentID      string     `json:"payment_id,omitempty"`
	GatewayOrderID string     `json:"gateway_order_id,omitempty"`
	PaidAt         *time.Time `json:"paid_at,omitempty"`
}

// GetBooking handles GET /v1/bookings/:id
func (h *BookingHandler) GetBooking(c *gin.Context) {
	bookingID := c.Param("id")

	booking, err := h.bookingRepo.GetByID(c.Request.Context(), bookingID)
	if err != nil {
		respondError(c, err)
		return
	}

	resp := BookingResponse{
		ID:             booking.ID,
		TripName:       booking.TripName,
		AmountDue:      booking.AmountDue,
		Currency:       booking.Currency,
		Status:         string(booking.Status),
		PaymentID:      booking.PaymentID,
		GatewayOrderID: booking.GatewayOrderID,
	}
	if !booking.PaidAt.IsZero() {
		paidAt := booking.PaidAt
		resp.PaidAt = &paidAt
	}

	respondJSON(c, http.StatusOK, resp)
}
