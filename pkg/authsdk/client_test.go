package authsdk_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/aussiebroadwan/charauth/pkg/authsdk"
	"github.com/stretchr/testify/require"
)

func TestAPIErrorIs(t *testing.T) {
	custom := authsdk.ErrInvalidRequest.WithDescription("email: email")
	require.ErrorIs(t, custom, authsdk.ErrInvalidRequest)
	require.NotErrorIs(t, custom, authsdk.ErrConflict)

	// Same code, different status.
	require.NotErrorIs(t, authsdk.ErrMissingToken, authsdk.ErrInvalidToken)
}

func TestWriteError(t *testing.T) {
	t.Run("401 carries a challenge", func(t *testing.T) {
		rec := httptest.NewRecorder()
		authsdk.ErrMissingToken.WriteError(rec)

		require.Equal(t, http.StatusUnauthorized, rec.Code)
		require.Contains(t, rec.Header().Get("WWW-Authenticate"), `error="invalid_token"`)
		require.JSONEq(t,
			`{"error":"invalid_token","error_description":"missing or malformed bearer token"}`,
			rec.Body.String())
	})

	t.Run("403 has no challenge", func(t *testing.T) {
		rec := httptest.NewRecorder()
		authsdk.ErrInsufficientPermissions.WriteError(rec)

		require.Equal(t, http.StatusForbidden, rec.Code)
		require.Empty(t, rec.Header().Get("WWW-Authenticate"))
		require.Equal(t, "no-store", rec.Header().Get("Cache-Control"))
	})
}

func TestLoginErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req authsdk.LoginRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		switch {
		case req.Password != "hunter22":
			authsdk.ErrInvalidCredentials.WriteError(w)
		case req.OTP == "":
			authsdk.ErrMFARequired.WriteError(w)
		default:
			w.WriteHeader(http.StatusBadGateway)
		}
	}))
	defer srv.Close()

	client := authsdk.NewSDKClient(srv.URL + "/")
	ctx := context.Background()

	_, err := client.Login(ctx, "ada@example.com", "wrong", "")
	require.ErrorIs(t, err, authsdk.ErrInvalidCredentials)

	_, err = client.Login(ctx, "ada@example.com", "hunter22", "")
	require.ErrorIs(t, err, authsdk.ErrMFARequired)

	// Bodies without an error field still become an APIError.
	_, err = client.Login(ctx, "ada@example.com", "hunter22", "123456")
	var apiErr *authsdk.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusBadGateway, apiErr.StatusCode)
	require.Equal(t, authsdk.ErrorCodeServerError, apiErr.Code)
}

func TestSessionRefreshesExpiredToken(t *testing.T) {
	var refreshes atomic.Int32
	mux := http.NewServeMux()
	mux.HandleFunc("POST /auth/refresh", func(w http.ResponseWriter, r *http.Request) {
		var req authsdk.RefreshRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		if req.RefreshToken != "r1" {
			authsdk.ErrInvalidGrant.WriteError(w)
			return
		}
		refreshes.Add(1)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(authsdk.TokenResponse{
			AccessToken: "a2", RefreshToken: "r2", TokenType: "Bearer", ExpiresIn: 3600,
		})
	})
	mux.HandleFunc("GET /auth/me", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer a2" {
			authsdk.ErrInvalidToken.WriteError(w)
			return
		}
		_ = json.NewEncoder(w).Encode(authsdk.UserResponse{ID: 7, Email: "ada@example.com", Role: "user"})
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	client := authsdk.NewSDKClient(srv.URL)
	// A lifetime shorter than the buffer means the token counts as expired.
	session := client.NewSessionFromTokens("a1", "r1", 0)

	me, err := session.Me(context.Background())
	require.NoError(t, err)
	require.Equal(t, int64(7), me.ID)
	require.Equal(t, "a2", session.AccessToken())
	require.Equal(t, "r2", session.RefreshToken())

	// The fresh token is reused until it nears expiry.
	_, err = session.Me(context.Background())
	require.NoError(t, err)
	require.EqualValues(t, 1, refreshes.Load())

	// r1 was rotated out, so a forced refresh with it cannot happen again.
	stale := client.NewSessionFromTokens("a1", "r2", 0)
	err = stale.Refresh(context.Background())
	require.ErrorIs(t, err, authsdk.ErrInvalidGrant)
}
