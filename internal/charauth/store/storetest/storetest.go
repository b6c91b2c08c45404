// Package storetest holds the behaviour every store driver must share.
// Driver packages call Run from their own tests.
package storetest

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/aussiebroadwan/charauth/internal/charauth/domain"
	"github.com/aussiebroadwan/charauth/internal/charauth/store"
	"github.com/stretchr/testify/require"
)

// Factory returns a fresh, migrated store.
type Factory func(t *testing.T) store.Store

// Run executes the full contract suite against stores built by newStore.
func Run(t *testing.T, newStore Factory) {
	t.Run("users", func(t *testing.T) { testUsers(t, newStore(t)) })
	t.Run("refresh tokens", func(t *testing.T) { testRefreshTokens(t, newStore(t)) })
	t.Run("mfa", func(t *testing.T) { testMFA(t, newStore(t)) })
	t.Run("revoked tokens", func(t *testing.T) { testRevokedTokens(t, newStore(t)) })
	t.Run("characters", func(t *testing.T) { testCharacters(t, newStore(t)) })
	t.Run("concurrent create", func(t *testing.T) { testConcurrentCreate(t, newStore(t)) })
}

func newCredential(email string) domain.Credential {
	return domain.Credential{
		Email:        email,
		PasswordHash: "$2a$10$notarealhashbutlongenoughtolooklikeone",
		Role:         domain.RoleUser,
	}
}

func testUsers(t *testing.T, s store.Store) {
	ctx := context.Background()
	users := s.Users()

	n, err := users.CountUsers(ctx)
	require.NoError(t, err)
	require.Zero(t, n)

	a, err := users.CreateUser(ctx, newCredential("a@example.com"))
	require.NoError(t, err)
	require.NotZero(t, a.ID)
	require.False(t, a.CreatedAt.IsZero())

	b, err := users.CreateUser(ctx, newCredential("b@example.com"))
	require.NoError(t, err)
	require.Greater(t, b.ID, a.ID, "ids are monotonic")

	t.Run("duplicate email", func(t *testing.T) {
		dup := newCredential("a@example.com")
		dup.PasswordHash = "different"
		dup.Role = domain.RoleAdmin

		_, err := users.CreateUser(ctx, dup)
		require.ErrorIs(t, err, store.ErrAlreadyExists)

		got, err := users.GetUserByEmail(ctx, "a@example.com")
		require.NoError(t, err)
		require.Equal(t, a.ID, got.ID)
		require.Equal(t, a.PasswordHash, got.PasswordHash)
		require.Equal(t, domain.RoleUser, got.Role)
	})

	t.Run("lookup", func(t *testing.T) {
		got, err := users.GetUserByID(ctx, b.ID)
		require.NoError(t, err)
		require.Equal(t, "b@example.com", got.Email)

		_, err = users.GetUserByID(ctx, 9999)
		require.ErrorIs(t, err, store.ErrNotFound)

		_, err = users.GetUserByEmail(ctx, "nobody@example.com")
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	n, err = users.CountUsers(ctx)
	require.NoError(t, err)
	require.Equal(t, int64(2), n)
}

func testRefreshTokens(t *testing.T, s store.Store) {
	ctx := context.Background()
	users := s.Users()

	u, err := users.CreateUser(ctx, newCredential("r@example.com"))
	require.NoError(t, err)
	require.Empty(t, u.RefreshToken)

	require.ErrorIs(t, users.SetRefreshToken(ctx, "missing@example.com", "x"), store.ErrNotFound)

	require.NoError(t, users.SetRefreshToken(ctx, u.Email, "first"))
	got, err := users.GetUserByEmail(ctx, u.Email)
	require.NoError(t, err)
	require.Equal(t, "first", got.RefreshToken)

	t.Run("swap requires current value", func(t *testing.T) {
		require.ErrorIs(t, users.SwapRefreshToken(ctx, u.ID, "stale", "second"), store.ErrNotFound)
		require.NoError(t, users.SwapRefreshToken(ctx, u.ID, "first", "second"))
		require.ErrorIs(t, users.SwapRefreshToken(ctx, u.ID, "first", "third"), store.ErrNotFound)

		got, err := users.GetUserByID(ctx, u.ID)
		require.NoError(t, err)
		require.Equal(t, "second", got.RefreshToken)
	})

	t.Run("clear", func(t *testing.T) {
		require.NoError(t, users.SetRefreshToken(ctx, u.Email, ""))
		got, err := users.GetUserByID(ctx, u.ID)
		require.NoError(t, err)
		require.Empty(t, got.RefreshToken)

		require.ErrorIs(t, users.SwapRefreshToken(ctx, u.ID, "", "x"), store.ErrNotFound,
			"a cleared token can never be swapped")
	})
}

func testMFA(t *testing.T, s store.Store) {
	ctx := context.Background()
	users := s.Users()

	u, err := users.CreateUser(ctx, newCredential("m@example.com"))
	require.NoError(t, err)
	require.Nil(t, u.MFASecret)

	require.NoError(t, users.UpdateMFASecret(ctx, u.ID, "JBSWY3DPEHPK3PXP"))
	got, err := users.GetUserByID(ctx, u.ID)
	require.NoError(t, err)
	require.NotNil(t, got.MFASecret)
	require.Equal(t, "JBSWY3DPEHPK3PXP", *got.MFASecret)
	require.Nil(t, got.MFAEnabledAt)

	at := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)
	require.NoError(t, users.EnableMFA(ctx, u.ID, at))
	got, err = users.GetUserByID(ctx, u.ID)
	require.NoError(t, err)
	require.NotNil(t, got.MFAEnabledAt)
	require.True(t, got.MFAEnabledAt.Equal(at))

	require.ErrorIs(t, users.EnableMFA(ctx, 9999, at), store.ErrNotFound)
	require.ErrorIs(t, users.UpdateMFASecret(ctx, 9999, "x"), store.ErrNotFound)
}

func testRevokedTokens(t *testing.T, s store.Store) {
	ctx := context.Background()
	revoked := s.RevokedTokens()
	now := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)

	ok, err := revoked.IsRevoked(ctx, "h1")
	require.NoError(t, err)
	require.False(t, ok)

	entry := domain.RevokedToken{TokenHash: "h1", ExpiresAt: now.Add(time.Hour), RevokedAt: now}
	require.NoError(t, revoked.RevokeToken(ctx, entry))
	require.NoError(t, revoked.RevokeToken(ctx, entry), "revoking twice is a no-op")

	ok, err = revoked.IsRevoked(ctx, "h1")
	require.NoError(t, err)
	require.True(t, ok)

	require.NoError(t, revoked.RevokeToken(ctx, domain.RevokedToken{
		TokenHash: "h2", ExpiresAt: now.Add(-time.Minute), RevokedAt: now.Add(-time.Hour),
	}))

	n, err := revoked.DeleteExpiredRevokedTokens(ctx, now)
	require.NoError(t, err)
	require.Equal(t, int64(1), n)

	ok, err = revoked.IsRevoked(ctx, "h2")
	require.NoError(t, err)
	require.False(t, ok)

	ok, err = revoked.IsRevoked(ctx, "h1")
	require.NoError(t, err)
	require.True(t, ok, "unexpired entries survive a purge")
}

func testCharacters(t *testing.T, s store.Store) {
	ctx := context.Background()
	chars := s.Characters()

	list, err := chars.ListCharacters(ctx)
	require.NoError(t, err)
	require.Empty(t, list)

	a, err := chars.CreateCharacter(ctx, domain.Character{Name: "Arthur", LastName: "Dayne", CreatedBy: 1})
	require.NoError(t, err)
	require.NotZero(t, a.ID)

	b, err := chars.CreateCharacter(ctx, domain.Character{Name: "Brienne", LastName: "Tarth", CreatedBy: 1})
	require.NoError(t, err)
	require.Greater(t, b.ID, a.ID)

	got, err := chars.GetCharacter(ctx, a.ID)
	require.NoError(t, err)
	require.Equal(t, "Arthur", got.Name)
	require.Equal(t, int64(1), got.CreatedBy)

	updated, err := chars.UpdateCharacter(ctx, domain.Character{ID: a.ID, Name: "Arthurr", LastName: "Daynee"})
	require.NoError(t, err)
	require.Equal(t, "Arthurr", updated.Name)
	require.Equal(t, int64(1), updated.CreatedBy, "creator is preserved")

	_, err = chars.UpdateCharacter(ctx, domain.Character{ID: 9999, Name: "Nobody", LastName: "Nobody"})
	require.ErrorIs(t, err, store.ErrNotFound)

	list, err = chars.ListCharacters(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	require.Equal(t, a.ID, list[0].ID)

	require.NoError(t, chars.DeleteCharacter(ctx, a.ID))
	require.ErrorIs(t, chars.DeleteCharacter(ctx, a.ID), store.ErrNotFound)
	_, err = chars.GetCharacter(ctx, a.ID)
	require.ErrorIs(t, err, store.ErrNotFound)
}

func testConcurrentCreate(t *testing.T, s store.Store) {
	ctx := context.Background()

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		created int
	)
	for range 10 {
		wg.Go(func() {
			_, err := s.Users().CreateUser(ctx, newCredential("race@example.com"))
			if err == nil {
				mu.Lock()
				created++
				mu.Unlock()
			}
		})
	}
	wg.Wait()

	require.Equal(t, 1, created, "exactly one user per email")
}
