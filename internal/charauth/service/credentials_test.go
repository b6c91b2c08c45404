package service

import (
	"context"
	"strings"
	"sync"
	"testing"

	"github.com/aussiebroadwan/charauth/internal/charauth/domain"
	"github.com/aussiebroadwan/charauth/internal/charauth/store"
	"github.com/stretchr/testify/require"
)

func TestCredentials_RegisterAndVerify(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	pairs := []struct{ email, password string }{
		{"user@example.com", "secret1"},
		{"Mixed.Case@Example.com", "P@ssw0rd!"},
		{"unicode@example.com", "пароль密码"},
	}

	for _, p := range pairs {
		t.Run(p.email, func(t *testing.T) {
			u, err := h.credentials.Register(ctx, p.email, p.password)
			require.NoError(t, err)
			require.NotZero(t, u.ID)
			require.Equal(t, domain.NormalizeEmail(p.email), u.Email)
			require.Equal(t, domain.RoleUser, u.Role)

			ok, err := h.credentials.VerifyPassword(ctx, u, p.password)
			require.NoError(t, err)
			require.True(t, ok)

			ok, err = h.credentials.VerifyPassword(ctx, u, p.password+"!")
			require.NoError(t, err)
			require.False(t, ok)
		})
	}
}

func TestCredentials_HashIsOneWay(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	u, err := h.credentials.Register(ctx, "hash@example.com", "secret1")
	require.NoError(t, err)

	c, err := h.store.Users().GetUserByID(ctx, u.ID)
	require.NoError(t, err)
	require.NotEqual(t, "secret1", c.PasswordHash)
	require.NotContains(t, c.PasswordHash, "secret1")
}

func TestCredentials_RegisterConflict(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	first, err := h.credentials.Register(ctx, "dup@example.com", "secret1")
	require.NoError(t, err)

	_, err = h.credentials.Register(ctx, "DUP@example.com", "other-password")
	require.ErrorIs(t, err, ErrConflict)

	got, err := h.credentials.FindByEmail(ctx, "dup@example.com")
	require.NoError(t, err)
	require.Equal(t, first, got)

	ok, err := h.credentials.VerifyPassword(ctx, got, "secret1")
	require.NoError(t, err)
	require.True(t, ok, "existing password still works")
}

func TestCredentials_ConcurrentRegister(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		ok        int
		conflicts int
	)
	for range 8 {
		wg.Go(func() {
			_, err := h.credentials.Register(ctx, "race@example.com", "secret1")
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				ok++
			case err == ErrConflict:
				conflicts++
			}
		})
	}
	wg.Wait()

	require.Equal(t, 1, ok)
	require.Equal(t, 7, conflicts)
}

func TestCredentials_Authenticate(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	_, err := h.credentials.Register(ctx, "login@example.com", "secret1")
	require.NoError(t, err)

	tests := []struct {
		name     string
		email    string
		password string
		wantErr  error
	}{
		{"valid", "login@example.com", "secret1", nil},
		{"case insensitive email", "LOGIN@example.com", "secret1", nil},
		{"wrong password", "login@example.com", "secret2", ErrInvalidCredentials},
		{"unknown email", "ghost@example.com", "secret1", ErrInvalidCredentials},
		{"too long", "login@example.com", strings.Repeat("a", 73), ErrInvalidCredentials},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, err := h.credentials.Authenticate(ctx, tt.email, tt.password)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, "login@example.com", u.Email)
		})
	}
}

func TestCredentials_RefreshToken(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	u, err := h.credentials.Register(ctx, "r@example.com", "secret1")
	require.NoError(t, err)

	require.ErrorIs(t, h.credentials.SetRefreshToken(ctx, "nobody@example.com", "t"), store.ErrNotFound)

	require.NoError(t, h.credentials.SetRefreshToken(ctx, u.Email, "t1"))
	require.NoError(t, h.credentials.RotateRefreshToken(ctx, u.ID, "t1", "t2"))
	require.ErrorIs(t, h.credentials.RotateRefreshToken(ctx, u.ID, "t1", "t3"), store.ErrNotFound)

	require.NoError(t, h.credentials.ClearRefreshToken(ctx, u.Email))
	c, err := h.store.Users().GetUserByID(ctx, u.ID)
	require.NoError(t, err)
	require.Empty(t, c.RefreshToken)
}
