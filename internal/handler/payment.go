package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tripmate/internal/service"
)

// PaymentHandler handles HTTP requests for payment orders and verification.
type PaymentHandler struct {
	paymentService *service.PaymentService
}

// NewPaymentHandler creates a new PaymentHandler.
func NewPaymentHandler(paymentService *service.PaymentService) *PaymentHandler {
	return &PaymentHandler{paymentService: paymentService}
}

// CreateOrderRequest is the HTTP request body for creating a gateway order.
type CreateOrderRequest struct {
	Amount   int64             `json:"amount"`
	Currency string            `json:"currency"`
	Receipt  string            `json:"receipt"`
	Notes    map[string]string `json:"notes"`
}

// OrderResponse is the HTTP response for a created order. It carries the
// public key id the app needs to open the gateway checkout; the key secret
// never appears here.
type OrderResponse struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
	Status   string `json:"status"`
	Key      string `json:"key"`
}

// VerifyRequest is the HTTP request body for verifying a payment callback.
type VerifyRequest struct {
	OrderID   string `json:"order_id"`
	PaymentID string `json:"payment_id"`
	Signature string `json:"signature"`
	BookingID string `json:"booking_id"`
}

// VerifyResponse is the HTTP response for a verification request.
type VerifyResponse struct {
	Valid bool `json:"valid"`
}

// CreateOrder handles POST /v1/payments/orders
func (h *PaymentHandler) CreateOrder(c *gin.Context) {
	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body", Kind: KindInvalidArgument})
		return
	}

	result, err := h.paymentService.CreateOrder(c.Request.Context(), service.CreateOrderRequest{
		Amount:   req.Amount,
		Currency: req.Currency,
		Receipt:  req.Receipt,
		Notes:    req.Notes,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusCreated, OrderResponse{
		ID:       result.OrderID,
		Amount:   result.Amount,
		Currency: result.Currency,
		Receipt:  result.Receipt,
		Status:   result.Status,
		Key:      result.KeyID,
	})
}

// VerifyPayment handles POST /v1/payments/verify
func (h *PaymentHandler) VerifyPayment(c *gin.Context) {
	var req VerifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body", Kind: KindInvalidArgument})
		return
	}

	valid, err := h.paymentService.VerifyPayment(c.Request.Context(), service.VerifyPaymentRequest{
		OrderID:   req.OrderID,
		PaymentID: req.PaymentID,
		Signature: req.Signature,
		BookingID: req.BookingID,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, VerifyResponse{Valid: valid})
}

// compatCreateOrderRequest mirrors the request body the released app builds
// still send to the standalone Express server.
type compatCreateOrderRequest struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
}

// compatVerifyRequest mirrors the gateway checkout's callback field names.
type compatVerifyRequest struct {
	RazorpayOrderID   string `json:"razorpay_order_id"`
	RazorpayPaymentID string `json:"razorpay_payment_id"`
	RazorpaySignature string `json:"razorpay_signature"`
	BookingID         string `json:"bookingId"`
}

// CreateOrderCompat handles POST /create-order
//
// Every failure is reported as a bare 500 {error} object, matching the
// server the app shipped against.
func (h *PaymentHandler) CreateOrderCompat(c *gin.Context) {
	var req compatCreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "invalid request body"})
		return
	}

	if req.Currency == "" {
		req.Currency = "INR"
	}

	result, err := h.paymentService.CreateOrder(c.Request.Context(), service.CreateOrderRequest{
		Amount:   req.Amount,
		Currency: req.Currency,
		Receipt:  req.Receipt,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	respondJSON(c, http.StatusOK, OrderResponse{
		ID:       result.OrderID,
		Amount:   result.Amount,
		Currency: result.Currency,
		Receipt:  result.Receipt,
		Status:   result.Status,
		Key:      result.KeyID,
	})
}

// VerifyPaymentCompat handles POST /verify-payment
func (h *PaymentHandler) VerifyPaymentCompat(c *gin.Context) {
	var req compatVerifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "invalid request body"})
		return
	}

	valid, err := h.paymentService.VerifyPayment(c.Request.Context(), service.VerifyPaymentRequest{
		OrderID:   req.RazorpayOrderID,
		PaymentID: req.RazorpayPaymentID,
		Signature: req.RazorpaySignature,
		BookingID: req.BookingID,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if !valid {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}
