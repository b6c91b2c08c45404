package sqlite_test

import (
	"path/filepath"
	"testing"

	"github.com/aussiebroadwan/charauth/internal/charauth/domain"
	"github.com/aussiebroadwan/charauth/internal/charauth/store"
	"github.com/aussiebroadwan/charauth/internal/charauth/store/drivers/sqlite"
	"github.com/aussiebroadwan/charauth/internal/charauth/store/storetest"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T, path string) *sqlite.Store {
	t.Helper()

	s, err := sqlite.NewStore(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	require.NoError(t, s.ApplyMigrations())
	return s
}

func TestStore(t *testing.T) {
	storetest.Run(t, func(t *testing.T) store.Store {
		return newTestStore(t, ":memory:")
	})
}

func TestApplyMigrationsIdempotent(t *testing.T) {
	s := newTestStore(t, ":memory:")
	require.NoError(t, s.ApplyMigrations())
	require.NoError(t, s.Ping(t.Context()))
}

func TestStorePersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "charauth.db")
	ctx := t.Context()

	s := newTestStore(t, path)
	_, err := s.RevokedTokens().IsRevoked(ctx, "x")
	require.NoError(t, err)

	u, err := s.Users().CreateUser(ctx, domain.Credential{
		Email:        "p@example.com",
		PasswordHash: "hash",
		Role:         domain.RoleUser,
	})
	require.NoError(t, err)
	require.NoError(t, s.Close())

	reopened := newTestStore(t, path)
	got, err := reopened.Users().GetUserByEmail(ctx, "p@example.com")
	require.NoError(t, err)
	require.Equal(t, u.ID, got.ID)
}
