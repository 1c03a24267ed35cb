package ports

import "github.com/swipe-labs/swipe-api/internal/core/domain"

// TokenCodec creates and parses the signed bearer tokens that carry identity
// claims. Implementations hold the signing secret as immutable state and must
// be safe for concurrent use.
type TokenCodec interface {
	// Issue serializes the claims plus issued-at/expiry into a signed token.
	Issue(claims domain.Claims) (string, error)
	// Parse verifies the signature first, then expiry, then claim structure.
	// Any failure yields domain.ErrInvalidToken, except a missing secret which
	// yields domain.ErrNoSigningSecret.
	Parse(token string) (domain.Claims, error)
}
