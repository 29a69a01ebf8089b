package signature

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// Sign computes the gateway callback signature for an order/payment pair:
// lowercase hex of HMAC-SHA256 over "orderID|paymentID" keyed by secret.
// The message layout must match the gateway's own signing scheme byte for byte.
func Sign(orderID, paymentID, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

// Verify reports whether provided matches the expected signature for the
// given order/payment pair. The comparison is constant-time.
func Verify(orderID, paymentID, secret, provided string) bool {
	expected := Sign(orderID, paymentID, secret)
	return hmac.Equal([]byte(expected), []byte(provided))
}
