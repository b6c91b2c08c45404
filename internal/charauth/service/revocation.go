package service

import (
	"context"
	"time"

	"github.com/aussiebroadwan/charauth/internal/charauth/domain"
	"github.com/aussiebroadwan/charauth/internal/charauth/store"
	"github.com/aussiebroadwan/charauth/pkg/cryptox"
)

// RevocationRegistry is the set of explicitly invalidated tokens. Entries are
// keyed by the token fingerprint and remembered until the token's own expiry,
// after which the verifier rejects the token anyway.
type RevocationRegistry struct {
	Store store.Store

	// Retention bounds entries revoked without a known expiry.
	Retention time.Duration

	Now func() time.Time
}

func (r *RevocationRegistry) now() time.Time {
	if r.Now != nil {
		return r.Now().UTC()
	}
	return time.Now().UTC()
}

// Revoke adds token to the registry. Revoking a token twice has the same
// effect as revoking it once.
func (r *RevocationRegistry) Revoke(ctx context.Context, token string, expiresAt time.Time) error {
	now := r.now()
	if expiresAt.IsZero() {
		expiresAt = now.Add(r.Retention)
	}

	return r.Store.RevokedTokens().RevokeToken(ctx, domain.RevokedToken{
		TokenHash: cryptox.FingerprintToken(token),
		ExpiresAt: expiresAt,
		RevokedAt: now,
	})
}

func (r *RevocationRegistry) IsRevoked(ctx context.Context, token string) (bool, error) {
	return r.Store.RevokedTokens().IsRevoked(ctx, cryptox.FingerprintToken(token))
}

// Purge forgets entries whose token has expired.
func (r *RevocationRegistry) Purge(ctx context.Context) (int64, error) {
	return r.Store.RevokedTokens().DeleteExpiredRevokedTokens(ctx, r.now())
}
