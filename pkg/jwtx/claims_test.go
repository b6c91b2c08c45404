package jwtx_test

import (
	"testing"
	"time"

	"github.com/aussiebroadwan/charauth/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

func TestNewJTI(t *testing.T) {
	seen := make(map[string]struct{}, 100)
	for range 100 {
		id := jwtx.NewJTI()
		require.NotEmpty(t, id)
		require.NotContains(t, id, "=")
		_, dup := seen[id]
		require.False(t, dup, "jti should be unique")
		seen[id] = struct{}{}
	}
}

func TestClaimsTimeWindow(t *testing.T) {
	now := time.Date(2026, 3, 14, 9, 26, 53, 589_000_000, time.UTC)
	s, err := jwtx.NewSigner("k", jwtx.Options{
		AccessTTL: 30 * time.Minute,
		Clock:     func() time.Time { return now },
	})
	require.NoError(t, err)

	tok, err := s.IssueAccess(1, "a@example.com", "user")
	require.NoError(t, err)

	v, err := jwtx.NewVerifier("k", func() time.Time { return now })
	require.NoError(t, err)

	claims, err := v.VerifyAccess(tok)
	require.NoError(t, err)

	iat := now.Truncate(time.Second)
	require.True(t, claims.IssuedAt.Time.Equal(iat), "iat truncated to the second")
	require.True(t, claims.Expiry().Equal(iat.Add(30*time.Minute)))
	require.NotEmpty(t, claims.ID)
}
