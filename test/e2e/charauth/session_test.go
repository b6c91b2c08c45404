//go:build e2e

package charauth_test

import (
	"testing"

	"github.com/aussiebroadwan/charauth/pkg/authsdk"
	"github.com/stretchr/testify/require"
)

func TestRefreshRotatesTokens(t *testing.T) {
	client := authsdk.NewSDKClient(setupContainer(t, nil))

	session := registerAndLogin(t, client, "rotate@example.com", "rotate-password")
	oldRefresh := session.RefreshToken()

	tokens, err := client.RefreshGrant(t.Context(), oldRefresh)
	require.NoError(t, err)
	require.Equal(t, "Bearer", tokens.TokenType)
	require.NotEqual(t, oldRefresh, tokens.RefreshToken)

	// The old refresh token is spent.
	_, err = client.RefreshGrant(t.Context(), oldRefresh)
	assertAPIError(t, err, authsdk.ErrInvalidGrant)
}

func TestLogoutRevokesAccessToken(t *testing.T) {
	client := authsdk.NewSDKClient(setupContainer(t, nil))

	session := registerAndLogin(t, client, "leaving@example.com", "leaving-password")

	me, err := session.Me(t.Context())
	require.NoError(t, err)
	require.Equal(t, "leaving@example.com", me.Email)

	require.NoError(t, session.Logout(t.Context()))

	_, err = session.Me(t.Context())
	assertAPIError(t, err, authsdk.ErrInvalidToken)
}

func TestRegisterConflict(t *testing.T) {
	client := authsdk.NewSDKClient(setupContainer(t, nil))

	_, err := client.Register(t.Context(), "twice@example.com", "twice-password")
	require.NoError(t, err)

	_, err = client.Register(t.Context(), "twice@example.com", "twice-password")
	assertAPIError(t, err, authsdk.ErrConflict)
}

// TestLoginRateLimited runs against the built-in strict profile; a zero
// override falls back to it.
func TestLoginRateLimited(t *testing.T) {
	client := authsdk.NewSDKClient(setupContainer(t, map[string]string{
		"RATELIMIT_STRICT_REQUESTS": "0",
		"RATELIMIT_STRICT_BURST":    "0",
	}))

	var limited bool
	for range 50 {
		_, err := client.LoginGrant(t.Context(), "nobody@example.com", "wrong-password", "")
		require.Error(t, err)
		var apiErr *authsdk.APIError
		require.ErrorAs(t, err, &apiErr)
		if apiErr.Code == authsdk.ErrorCodeRateLimited {
			limited = true
			break
		}
	}
	require.True(t, limited, "login should be rate limited")
}
