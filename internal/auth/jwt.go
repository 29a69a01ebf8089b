package auth

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"

	"tripmate/internal/config"
)

var (
	// ErrInvalidToken is returned when a token is malformed or fails verification.
	ErrInvalidToken = errors.New("invalid token")

	// ErrNotConfigured is returned when no verification secret is configured.
	ErrNotConfigured = errors.New("auth secret not configured")
)

// Identity is the verified caller identity attached to a request.
type Identity struct {
	UserID string
	Email  string
}

// Claims are the token claims issued by the app's auth service.
type Claims struct {
	Email string `json:"email,omitempty"`
	jwt.RegisteredClaims
}

// Verifier validates bearer tokens for the v1 API. Tokens are issued
// elsewhere; this service only checks them.
type Verifier struct {
	secret []byte
	issuer string
}

// NewVerifier creates a Verifier from the auth configuration.
func NewVerifier(cfg config.AuthConfig) *Verifier {
	return &Verifier{
		secret: []byte(cfg.JWTSecret),
		issuer: cfg.Issuer,
	}
}

// Verify parses and validates a token and returns the caller identity.
func (v *Verifier) Verify(tokenString string) (*Identity, error) {
	if len(v.secret) == 0 {
		return nil, ErrNotConfigured
	}

	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return v.secret, nil
	}, jwt.WithIssuer(v.issuer))
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || claims.Subject == "" {
		return nil, ErrInvalidToken
	}

	return &Identity{UserID: claims.Subject, Email: claims.Email}, nil
}
