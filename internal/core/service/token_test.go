package service

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/swipe-labs/swipe-api/internal/core/domain"
)

func validClaims() domain.Claims {
	return domain.Claims{
		UserID:               "user_1",
		Username:             "alice",
		Role:                 domain.RoleFreelancer,
		ProfileSetupComplete: false,
	}
}

func TestTokenCodec_RoundTrip(t *testing.T) {
	codec := NewTokenCodec("secret", time.Hour)

	token, err := codec.Issue(validClaims())
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	claims, err := codec.Parse(token)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if claims.UserID != "user_1" || claims.Username != "alice" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
	if claims.Role != domain.RoleFreelancer {
		t.Fatalf("unexpected role: %s", claims.Role)
	}
	if claims.ProfileSetupComplete {
		t.Fatalf("expected profile setup incomplete")
	}
	if claims.IssuedAt.IsZero() || claims.ExpiresAt.IsZero() {
		t.Fatalf("expected issued-at and expiry to be set: %+v", claims)
	}
	if !claims.ExpiresAt.After(claims.IssuedAt) {
		t.Fatalf("expiry must follow issued-at")
	}
}

func TestTokenCodec_TamperedToken(t *testing.T) {
	codec := NewTokenCodec("secret", time.Hour)

	token, err := codec.Issue(validClaims())
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	// Flip one byte in the payload segment.
	parts := strings.Split(token, ".")
	payload := []byte(parts[1])
	if payload[0] == 'A' {
		payload[0] = 'B'
	} else {
		payload[0] = 'A'
	}
	tampered := parts[0] + "." + string(payload) + "." + parts[2]

	if _, err := codec.Parse(tampered); err != domain.ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestTokenCodec_WrongSecret(t *testing.T) {
	issuer := NewTokenCodec("secret", time.Hour)
	verifier := NewTokenCodec("other-secret", time.Hour)

	token, err := issuer.Issue(validClaims())
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	if _, err := verifier.Parse(token); err != domain.ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestTokenCodec_ExpiredToken(t *testing.T) {
	codec := NewTokenCodec("secret", time.Hour)

	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":                   "user_1",
		"username":             "alice",
		"role":                 domain.RoleFreelancer,
		"profileSetupComplete": false,
		"iat":                  time.Now().Add(-2 * time.Hour).Unix(),
		"exp":                  time.Now().Add(-time.Hour).Unix(),
	})
	signed, err := expired.SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	if _, err := codec.Parse(signed); err != domain.ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestTokenCodec_MissingExpiry(t *testing.T) {
	codec := NewTokenCodec("secret", time.Hour)

	unbounded := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":       "user_1",
		"username": "alice",
		"role":     domain.RoleFreelancer,
	})
	signed, err := unbounded.SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	if _, err := codec.Parse(signed); err != domain.ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken for unbounded token, got %v", err)
	}
}

func TestTokenCodec_StructurallyInvalidClaims(t *testing.T) {
	codec := NewTokenCodec("secret", time.Hour)

	// Valid signature, valid expiry, but the role is outside the closed enum.
	bogus := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":       "user_1",
		"username": "alice",
		"role":     "superadmin",
		"iat":      time.Now().Unix(),
		"exp":      time.Now().Add(time.Hour).Unix(),
	})
	signed, err := bogus.SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	if _, err := codec.Parse(signed); err != domain.ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken for bad role claim, got %v", err)
	}
}

func TestTokenCodec_WrongAlgorithm(t *testing.T) {
	codec := NewTokenCodec("secret", time.Hour)

	none := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"id":       "user_1",
		"username": "alice",
		"role":     domain.RoleFreelancer,
		"exp":      time.Now().Add(time.Hour).Unix(),
	})
	signed, err := none.SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	if _, err := codec.Parse(signed); err != domain.ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken for alg none, got %v", err)
	}
}

func TestTokenCodec_MissingSecret(t *testing.T) {
	codec := NewTokenCodec("", time.Hour)

	if _, err := codec.Issue(validClaims()); err != domain.ErrNoSigningSecret {
		t.Fatalf("expected ErrNoSigningSecret on issue, got %v", err)
	}
	if _, err := codec.Parse("whatever"); err != domain.ErrNoSigningSecret {
		t.Fatalf("expected ErrNoSigningSecret on parse, got %v", err)
	}
}

func TestTokenCodec_DefaultTTL(t *testing.T) {
	codec := NewTokenCodec("secret", 0)
	if codec.TTL() != time.Hour {
		t.Fatalf("expected 1h default ttl, got %v", codec.TTL())
	}
}
