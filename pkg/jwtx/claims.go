package jwtx

import (
	"time"

	"github.com/aussiebroadwan/charauth/pkg/idx"
	"github.com/golang-jwt/jwt/v5"
)

// Default token TTL constants. Both can be overridden per-service.
const (
	// DefaultAccessTokenTTL is the default lifetime for access tokens.
	DefaultAccessTokenTTL = time.Hour

	// DefaultRefreshTokenTTL is the default lifetime for refresh tokens.
	DefaultRefreshTokenTTL = 24 * time.Hour
)

// Token types carried in the "typ" claim so one kind can never be presented
// in place of the other.
const (
	TypeAccess  = "access"
	TypeRefresh = "refresh"
)

// Clock returns the current time. Verifiers and signers take one so tests can
// move time forward without sleeping.
type Clock func() time.Time

// AccessClaims are the claims embedded in a short-lived access token.
type AccessClaims struct {
	jwt.RegisteredClaims

	Type   string `json:"typ"`
	UserID int64  `json:"id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
}

// RefreshClaims are the claims embedded in a refresh token. They only
// identify the user, everything else is reloaded from the store on exchange.
type RefreshClaims struct {
	jwt.RegisteredClaims

	Type   string `json:"typ"`
	UserID int64  `json:"id"`
}

// Expiry returns the embedded expiry or the zero time.
func (c AccessClaims) Expiry() time.Time { return expiry(c.RegisteredClaims) }

// Expiry returns the embedded expiry or the zero time.
func (c RefreshClaims) Expiry() time.Time { return expiry(c.RegisteredClaims) }

func expiry(rc jwt.RegisteredClaims) time.Time {
	if rc.ExpiresAt == nil {
		return time.Time{}
	}
	return rc.ExpiresAt.Time
}

// registered builds the time-bounded part of every token. Timestamps are
// truncated to the second so the validity window is exactly [iat, iat+ttl).
func registered(issuer string, ttl time.Duration, now time.Time) jwt.RegisteredClaims {
	iat := now.UTC().Truncate(time.Second)
	return jwt.RegisteredClaims{
		Issuer:    issuer,
		IssuedAt:  jwt.NewNumericDate(iat),
		ExpiresAt: jwt.NewNumericDate(iat.Add(ttl)),
		ID:        NewJTI(),
	}
}

// NewJTI returns a unique identifier for the "jti" claim. It keeps two tokens
// minted for the same user in the same second distinct.
func NewJTI() string {
	return idx.New().String()
}
