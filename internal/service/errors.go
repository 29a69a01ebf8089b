package service

import "errors"

var (
	// ErrInvalidAmount is returned when the order amount is zero or negative.
	ErrInvalidAmount = errors.New("amount must be a positive number of minor currency units")

	// ErrMissingCurrency is returned when the order currency is empty.
	ErrMissingCurrency = errors.New("currency is required")

	// ErrMissingReceipt is returned when the order receipt is empty.
	ErrMissingReceipt = errors.New("receipt is required")

	// ErrMissingOrderID is returned when a verification request has no order id.
	ErrMissingOrderID = errors.New("order id is required")

	// ErrMissingPaymentID is returned when a verification request has no payment id.
	ErrMissingPaymentID = errors.New("payment id is required")

	// ErrMissingSignature is returned when a verification request has no signature.
	ErrMissingSignature = errors.New("signature is required")

	// ErrGatewayNotConfigured is returned when the gateway credentials are absent.
	ErrGatewayNotConfigured = errors.New("payment gateway credentials not configured")
)
