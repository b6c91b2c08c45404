package jwtx

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrEmptySecret is returned when a signer or verifier is built without key
// material.
var ErrEmptySecret = errors.New("jwtx: empty signing secret")

// Options configures an HS256 signer.
type Options struct {
	// Issuer is written to the "iss" claim. Empty leaves it unset.
	Issuer string

	// AccessTTL and RefreshTTL default to DefaultAccessTokenTTL and
	// DefaultRefreshTokenTTL when zero.
	AccessTTL  time.Duration
	RefreshTTL time.Duration

	// Clock defaults to time.Now.
	Clock Clock
}

// Signer issues HMAC-SHA256 signed access and refresh tokens with a single
// process-wide secret. It holds no mutable state and is safe for concurrent
// use.
type Signer struct {
	secret     []byte
	issuer     string
	accessTTL  time.Duration
	refreshTTL time.Duration
	now        Clock
}

// NewSigner creates an HS256 signer for the given secret.
func NewSigner(secret string, opts Options) (*Signer, error) {
	if secret == "" {
		return nil, ErrEmptySecret
	}

	s := &Signer{
		secret:     []byte(secret),
		issuer:     opts.Issuer,
		accessTTL:  opts.AccessTTL,
		refreshTTL: opts.RefreshTTL,
		now:        opts.Clock,
	}
	if s.accessTTL <= 0 {
		s.accessTTL = DefaultAccessTokenTTL
	}
	if s.refreshTTL <= 0 {
		s.refreshTTL = DefaultRefreshTokenTTL
	}
	if s.now == nil {
		s.now = time.Now
	}
	return s, nil
}

func (s *Signer) Alg() string                { return jwt.SigningMethodHS256.Alg() }
func (s *Signer) AccessTTL() time.Duration  { return s.accessTTL }
func (s *Signer) RefreshTTL() time.Duration { return s.refreshTTL }

// IssueAccess signs an access token carrying the user's id, email and role.
func (s *Signer) IssueAccess(userID int64, email, role string) (string, error) {
	claims := AccessClaims{
		RegisteredClaims: registered(s.issuer, s.accessTTL, s.now()),
		Type:             TypeAccess,
		UserID:           userID,
		Email:            email,
		Role:             role,
	}
	return s.sign(claims)
}

// IssueRefresh signs a refresh token that only identifies the user.
func (s *Signer) IssueRefresh(userID int64) (string, error) {
	claims := RefreshClaims{
		RegisteredClaims: registered(s.issuer, s.refreshTTL, s.now()),
		Type:             TypeRefresh,
		UserID:           userID,
	}
	return s.sign(claims)
}

func (s *Signer) sign(claims jwt.Claims) (string, error) {
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}
