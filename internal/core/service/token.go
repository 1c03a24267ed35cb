package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/swipe-labs/swipe-api/internal/core/domain"
)

const defaultTokenTTL = time.Hour

// tokenClaims is the wire shape of the claims payload. The private fields use
// the JSON keys the browser client decodes; issued-at and expiry ride on the
// registered claims.
type tokenClaims struct {
	UserID               string `json:"id"`
	Username             string `json:"username"`
	Role                 string `json:"role"`
	ProfileSetupComplete bool   `json:"profileSetupComplete"`
	jwt.RegisteredClaims
}

// TokenCodec signs and verifies HS256 bearer tokens. The secret is fixed at
// construction and never mutated, so a single codec is safe to share across
// concurrent requests.
type TokenCodec struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenCodec creates a codec with the given secret and token lifetime.
// A non-positive ttl falls back to one hour.
func NewTokenCodec(secret string, ttl time.Duration) *TokenCodec {
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	return &TokenCodec{secret: []byte(secret), ttl: ttl}
}

// TTL returns the lifetime stamped on issued tokens.
func (c *TokenCodec) TTL() time.Duration {
	return c.ttl
}

// Issue serializes the claims into a signed token bounded by the codec's ttl.
// A missing secret is a server configuration fault, not a client error.
func (c *TokenCodec) Issue(claims domain.Claims) (string, error) {
	if len(c.secret) == 0 {
		return "", domain.ErrNoSigningSecret
	}

	now := time.Now().UTC()
	tc := tokenClaims{
		UserID:               claims.UserID,
		Username:             claims.Username,
		Role:                 claims.Role,
		ProfileSetupComplete: claims.ProfileSetupComplete,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
		},
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, tc)
	return t.SignedString(c.secret)
}

// Parse verifies the signature before anything else, then expiry, then the
// structural shape of the claims. Every client-caused failure collapses into
// domain.ErrInvalidToken so callers cannot distinguish why a token was bad.
func (c *TokenCodec) Parse(token string) (domain.Claims, error) {
	if len(c.secret) == 0 {
		return domain.Claims{}, domain.ErrNoSigningSecret
	}

	var tc tokenClaims
	parsed, err := jwt.ParseWithClaims(token, &tc, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return c.secret, nil
	}, jwt.WithExpirationRequired(), jwt.WithIssuedAt())
	if err != nil || !parsed.Valid {
		return domain.Claims{}, domain.ErrInvalidToken
	}

	claims := domain.Claims{
		UserID:               tc.UserID,
		Username:             tc.Username,
		Role:                 tc.Role,
		ProfileSetupComplete: tc.ProfileSetupComplete,
	}
	if tc.IssuedAt != nil {
		claims.IssuedAt = tc.IssuedAt.Time
	}
	if tc.ExpiresAt != nil {
		claims.ExpiresAt = tc.ExpiresAt.Time
	}

	if err := claims.Validate(); err != nil {
		return domain.Claims{}, err
	}
	return claims, nil
}
