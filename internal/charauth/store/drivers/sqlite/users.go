package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/aussiebroadwan/charauth/internal/charauth/domain"
	"github.com/aussiebroadwan/charauth/internal/charauth/store"
)

type usersRepo struct {
	s *Store
}

const userColumns = `id, email, password_hash, role, refresh_token, mfa_secret, mfa_enabled_at, created_at, updated_at`

func scanUser(row interface{ Scan(...any) error }) (domain.Credential, error) {
	var (
		c            domain.Credential
		role         string
		refresh      sql.NullString
		mfaSecret    sql.NullString
		mfaEnabledAt sql.NullInt64
		created      int64
		updated      int64
	)
	err := row.Scan(&c.ID, &c.Email, &c.PasswordHash, &role, &refresh, &mfaSecret, &mfaEnabledAt, &created, &updated)
	if err != nil {
		return domain.Credential{}, mapNotFound(err)
	}

	c.Role = domain.Role(role)
	c.RefreshToken = refresh.String
	if mfaSecret.Valid {
		secret := mfaSecret.String
		c.MFASecret = &secret
	}
	if mfaEnabledAt.Valid {
		at := fromUnix(mfaEnabledAt.Int64)
		c.MFAEnabledAt = &at
	}
	c.CreatedAt = fromUnix(created)
	c.UpdatedAt = fromUnix(updated)
	return c, nil
}

func (r *usersRepo) CreateUser(ctx context.Context, c domain.Credential) (domain.Credential, error) {
	now := r.s.now()
	res, err := r.s.db.ExecContext(ctx,
		`INSERT INTO users (email, password_hash, role, refresh_token, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		c.Email, c.PasswordHash, string(c.Role), nullString(c.RefreshToken), unix(now), unix(now),
	)
	if err != nil {
		return domain.Credential{}, mapConstraint(err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return domain.Credential{}, err
	}
	c.ID = id
	c.CreatedAt = fromUnix(unix(now))
	c.UpdatedAt = c.CreatedAt
	return c, nil
}

func (r *usersRepo) GetUserByID(ctx context.Context, id int64) (domain.Credential, error) {
	return scanUser(r.s.db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE id = ?`, id))
}

func (r *usersRepo) GetUserByEmail(ctx context.Context, email string) (domain.Credential, error) {
	return scanUser(r.s.db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE email = ?`, email))
}

func (r *usersRepo) CountUsers(ctx context.Context) (int64, error) {
	var n int64
	err := r.s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM users`).Scan(&n)
	return n, err
}

func (r *usersRepo) SetRefreshToken(ctx context.Context, email, token string) error {
	return affectedOne(r.s.db.ExecContext(ctx,
		`UPDATE users SET refresh_token = ?, updated_at = ? WHERE email = ?`,
		nullString(token), unix(r.s.now()), email,
	))
}

func (r *usersRepo) SwapRefreshToken(ctx context.Context, userID int64, current, next string) error {
	if current == "" {
		return store.ErrNotFound
	}
	return affectedOne(r.s.db.ExecContext(ctx,
		`UPDATE users SET refresh_token = ?, updated_at = ? WHERE id = ? AND refresh_token = ?`,
		nullString(next), unix(r.s.now()), userID, current,
	))
}

func (r *usersRepo) UpdateMFASecret(ctx context.Context, userID int64, secret string) error {
	return affectedOne(r.s.db.ExecContext(ctx,
		`UPDATE users SET mfa_secret = ?, mfa_enabled_at = NULL, updated_at = ? WHERE id = ?`,
		secret, unix(r.s.now()), userID,
	))
}

func (r *usersRepo) EnableMFA(ctx context.Context, userID int64, at time.Time) error {
	return affectedOne(r.s.db.ExecContext(ctx,
		`UPDATE users SET mfa_enabled_at = ?, updated_at = ? WHERE id = ?`,
		unix(at), unix(r.s.now()), userID,
	))
}
