package sqlite

import (
	"context"
	"time"

	"github.com/aussiebroadwan/charauth/internal/charauth/domain"
)

type revokedTokensRepo struct {
	s *Store
}

func (r *revokedTokensRepo) RevokeToken(ctx context.Context, t domain.RevokedToken) error {
	_, err := r.s.db.ExecContext(ctx,
		`INSERT INTO revoked_tokens (token_hash, expires_at, revoked_at) VALUES (?, ?, ?)
		 ON CONFLICT (token_hash) DO NOTHING`,
		t.TokenHash, unix(t.ExpiresAt), unix(t.RevokedAt),
	)
	return err
}

func (r *revokedTokensRepo) IsRevoked(ctx context.Context, tokenHash string) (bool, error) {
	var exists bool
	err := r.s.db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM revoked_tokens WHERE token_hash = ?)`, tokenHash,
	).Scan(&exists)
	return exists, err
}

func (r *revokedTokensRepo) DeleteExpiredRevokedTokens(ctx context.Context, now time.Time) (int64, error) {
	res, err := r.s.db.ExecContext(ctx, `DELETE FROM revoked_tokens WHERE expires_at <= ?`, unix(now))
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
