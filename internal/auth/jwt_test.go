package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"tripmate/internal/config"
)

func issueToken(t *testing.T, secret, issuer, subject string, expiresIn time.Duration) string {
	t.Helper()

	claims := Claims{
		Email: "traveler@example.com",
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   subject,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiresIn)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func TestVerify_ValidToken(t *testing.T) {
	t.Parallel()

	verifier := NewVerifier(config.AuthConfig{JWTSecret: "test-secret", Issuer: "tripmate"})
	token := issueToken(t, "test-secret", "tripmate", "user-1", time.Hour)

	identity, err := verifier.Verify(token)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if identity.UserID != "user-1" {
		t.Errorf("expected user-1, got %s", identity.UserID)
	}
	if identity.Email != "traveler@example.com" {
		t.Errorf("expected traveler@example.com, got %s", identity.Email)
	}
}

func TestVerify_Rejections(t *testing.T) {
	t.Parallel()

	verifier := NewVerifier(config.AuthConfig{JWTSecret: "test-secret", Issuer: "tripmate"})

	cases := []struct {
		name  string
		token string
	}{
		{"garbage", "not-a-token"},
		{"wrong secret", issueToken(t, "other-secret", "tripmate", "user-1", time.Hour)},
		{"wrong issuer", issueToken(t, "test-secret", "someone-else", "user-1", time.Hour)},
		{"expired", issueToken(t, "test-secret", "tripmate", "user-1", -time.Minute)},
		{"missing subject", issueToken(t, "test-secret", "tripmate", "", time.Hour)},
	}

	for _, tc := range cases {
		if _, err := verifier.Verify(tc.token); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("%s: expected ErrInvalidToken, got %v", tc.name, err)
		}
	}
}

func TestVerify_NoSecretConfigured(t *testing.T) {
	t.Parallel()

	verifier := NewVerifier(config.AuthConfig{Issuer: "tripmate"})

	if _, err := verifier.Verify("whatever"); !errors.Is(err, ErrNotConfigured) {
		t.Errorf("expected ErrNotConfigured, got %v", err)
	}
}
