package jwtx

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Verification failures. Every error returned by Verifier wraps exactly one
// of these so callers can classify with errors.Is.
var (
	ErrMalformed  = errors.New("jwtx: malformed token")
	ErrInvalidSig = errors.New("jwtx: invalid signature")
	ErrExpired    = errors.New("jwtx: token expired")
	ErrWrongType  = errors.New("jwtx: unexpected token type")
)

// Verifier checks HS256 tokens minted by a Signer sharing the same secret.
// It is pure: it never consults revocation state.
type Verifier struct {
	secret []byte
	now    Clock
}

// NewVerifier creates a verifier for the given secret. A nil clock means
// time.Now.
func NewVerifier(secret string, clock Clock) (*Verifier, error) {
	if secret == "" {
		return nil, ErrEmptySecret
	}
	if clock == nil {
		clock = time.Now
	}
	return &Verifier{secret: []byte(secret), now: clock}, nil
}

// VerifyAccess validates signature and expiry and returns the access claims.
func (v *Verifier) VerifyAccess(token string) (AccessClaims, error) {
	var claims AccessClaims
	if err := v.parse(token, &claims); err != nil {
		return AccessClaims{}, err
	}
	if claims.Type != TypeAccess {
		return AccessClaims{}, ErrWrongType
	}
	return claims, nil
}

// VerifyRefresh validates signature and expiry and returns the refresh claims.
func (v *Verifier) VerifyRefresh(token string) (RefreshClaims, error) {
	var claims RefreshClaims
	if err := v.parse(token, &claims); err != nil {
		return RefreshClaims{}, err
	}
	if claims.Type != TypeRefresh {
		return RefreshClaims{}, ErrWrongType
	}
	return claims, nil
}

func (v *Verifier) parse(token string, claims jwt.Claims) error {
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		// Second granularity, matching the truncated iat/exp we sign with.
		jwt.WithTimeFunc(func() time.Time { return v.now().UTC().Truncate(time.Second) }),
	)

	_, err := parser.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return v.secret, nil
	})
	return classify(err)
}

// classify collapses the jwt library's error tree into our three outcomes.
func classify(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return ErrInvalidSig
	case errors.Is(err, jwt.ErrTokenExpired):
		return ErrExpired
	default:
		return fmt.Errorf("%w: %v", ErrMalformed, err)
	}
}
