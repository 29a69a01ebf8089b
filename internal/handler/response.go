package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"tripmate/internal/repository"
	"tripmate/internal/service"
)

// Error kinds exposed on the v1 API.
const (
	KindUnauthenticated    = "unauthenticated"
	KindInvalidArgument    = "invalid-argument"
	KindFailedPrecondition = "failed-precondition"
	KindNotFound           = "not-found"
	KindInternal           = "internal"
)

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind,omitempty"`
}

// respondError sends an error response with the appropriate HTTP status code
// and kind tag.
func respondError(c *gin.Context, err error) {
	code, kind := classifyError(err)
	c.JSON(code, ErrorResponse{Error: err.Error(), Kind: kind})
}

// respondJSON sends a JSON response with the given status code.
func respondJSON(c *gin.Context, code int, data any) {
	c.JSON(code, data)
}

// classifyError maps service/repository errors to an HTTP status and kind.
func classifyError(err error) (int, string) {
	switch {
	// Not found errors
	case errors.Is(err, repository.ErrNotFound):
		return http.StatusNotFound, KindNotFound

	// Validation errors - Bad Request
	case errors.Is(err, service.ErrInvalidAmount),
		errors.Is(err, service.ErrMissingCurrency),
		errors.Is(err, service.ErrMissingReceipt),
		errors.Is(err, service.ErrMissingOrderID),
		errors.Is(err, service.ErrMissingPaymentID),
		errors.Is(err, service.ErrMissingSignature):
		return http.StatusBadRequest, KindInvalidArgument

	// Missing server configuration
	case errors.Is(err, service.ErrGatewayNotConfigured):
		return http.StatusPreconditionFailed, KindFailedPrecondition

	// Default to internal server error
	default:
		return http.StatusInternalServerError, KindInternal
	}
}
