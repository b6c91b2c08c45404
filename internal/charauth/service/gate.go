package service

import (
	"context"
	"errors"

	"github.com/aussiebroadwan/charauth/internal/charauth/domain"
	"github.com/aussiebroadwan/charauth/pkg/httpx"
	"github.com/aussiebroadwan/charauth/pkg/jwtx"
	"github.com/aussiebroadwan/charauth/pkg/slogx"
)

var (
	// ErrUnauthorized means no usable bearer credential was presented (401).
	ErrUnauthorized = errors.New("missing or malformed bearer token")

	// ErrForbidden means a credential was presented but cannot be trusted:
	// revoked, badly signed, expired or malformed (403).
	ErrForbidden = errors.New("invalid or revoked token")

	// ErrInsufficientPermissions means the principal's role is not allowed (403).
	ErrInsufficientPermissions = errors.New("insufficient permissions")
)

// AccessVerifier is the part of the token service the gate needs.
type AccessVerifier interface {
	VerifyAccess(token string) (jwtx.AccessClaims, error)
}

// Gate turns a raw Authorization header into a Principal and checks roles.
type Gate struct {
	Revocations *RevocationRegistry
	Verifier    AccessVerifier
}

// Authenticate returns the request's principal or one of ErrUnauthorized and
// ErrForbidden. Revocation is consulted before the signature so a logged-out
// token is always rejected the same way.
func (g *Gate) Authenticate(ctx context.Context, authorization string) (domain.Principal, error) {
	log := slogx.FromContext(ctx)

	token, ok := httpx.BearerToken(authorization)
	if !ok {
		return domain.Principal{}, ErrUnauthorized
	}

	revoked, err := g.Revocations.IsRevoked(ctx, token)
	if err != nil {
		log.Error("revocation lookup failed", "error", err)
		return domain.Principal{}, ErrForbidden
	}
	if revoked {
		log.Debug("rejected revoked token")
		return domain.Principal{}, ErrForbidden
	}

	claims, err := g.Verifier.VerifyAccess(token)
	if err != nil {
		log.Debug("rejected access token", "reason", err)
		return domain.Principal{}, ErrForbidden
	}

	role, err := domain.ParseRole(claims.Role)
	if err != nil {
		log.Warn("access token carries unknown role", "role", claims.Role)
		return domain.Principal{}, ErrForbidden
	}

	return domain.Principal{
		ID:        claims.UserID,
		Email:     claims.Email,
		Role:      role,
		Token:     token,
		ExpiresAt: claims.Expiry(),
	}, nil
}

// Authorize allows p iff its role is one of roles. It must only be called
// with a principal produced by Authenticate.
func (g *Gate) Authorize(p domain.Principal, roles ...domain.Role) error {
	if p.Role.In(roles...) {
		return nil
	}
	return ErrInsufficientPermissions
}
