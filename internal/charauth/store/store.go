package store

import (
	"context"
	"errors"
	"time"

	"github.com/aussiebroadwan/charauth/internal/charauth/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface implemented by the memory and
// sqlite drivers. Every repository method touches exactly one record, so
// there is no transaction API.
type Store interface {
	Users() Users
	RevokedTokens() RevokedTokens
	Characters() Characters

	// ApplyMigrations brings the schema up to date. A no-op for drivers
	// without a schema.
	ApplyMigrations() error

	// Ping verifies the backend is reachable.
	Ping(ctx context.Context) error

	// Close releases any underlying resources.
	Close() error
}

type Users interface {
	// CreateUser inserts c and returns it with its assigned id and
	// timestamps. Emails are unique; a duplicate returns ErrAlreadyExists.
	CreateUser(ctx context.Context, c domain.Credential) (domain.Credential, error)

	GetUserByID(ctx context.Context, id int64) (domain.Credential, error)
	GetUserByEmail(ctx context.Context, email string) (domain.Credential, error)

	// CountUsers is used by bootstrap to detect an empty store.
	CountUsers(ctx context.Context) (int64, error)

	// SetRefreshToken replaces the user's single live refresh token. An empty
	// token clears it.
	SetRefreshToken(ctx context.Context, email, token string) error

	// SwapRefreshToken replaces the refresh token only if it still equals
	// current. A mismatch returns ErrNotFound, which is how concurrent
	// refreshes of the same token lose.
	SwapRefreshToken(ctx context.Context, userID int64, current, next string) error

	// UpdateMFASecret stores a pending TOTP secret and clears any previous
	// enablement.
	UpdateMFASecret(ctx context.Context, userID int64, secret string) error

	// EnableMFA marks MFA as enabled at the given time.
	EnableMFA(ctx context.Context, userID int64, at time.Time) error
}

type RevokedTokens interface {
	// RevokeToken records the fingerprint. Revoking the same fingerprint again
	// is a no-op.
	RevokeToken(ctx context.Context, t domain.RevokedToken) error

	IsRevoked(ctx context.Context, tokenHash string) (bool, error)

	// DeleteExpiredRevokedTokens drops entries whose token expired at or
	// before now and reports how many were removed.
	DeleteExpiredRevokedTokens(ctx context.Context, now time.Time) (int64, error)
}

type Characters interface {
	// CreateCharacter assigns the id and timestamps.
	CreateCharacter(ctx context.Context, c domain.Character) (domain.Character, error)

	GetCharacter(ctx context.Context, id int64) (domain.Character, error)

	// ListCharacters returns every character ordered by id.
	ListCharacters(ctx context.Context) ([]domain.Character, error)

	// UpdateCharacter replaces name and last name and returns the stored row.
	UpdateCharacter(ctx context.Context, c domain.Character) (domain.Character, error)

	DeleteCharacter(ctx context.Context, id int64) error
}
