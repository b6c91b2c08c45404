package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestHousekeeping_PurgesExpiredRevocations(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	short, err := h.signer.IssueAccess(1, "a@example.com", "user")
	require.NoError(t, err)
	long, err := h.signer.IssueRefresh(1)
	require.NoError(t, err)

	now := h.clock.Now()
	require.NoError(t, h.revocations.Revoke(ctx, short, now.Add(time.Hour)))
	require.NoError(t, h.revocations.Revoke(ctx, long, now.Add(24*time.Hour)))

	hk := NewHousekeepingService(h.revocations, discardLogger(), time.Minute)
	require.Zero(t, hk.RunOnce(ctx))

	h.clock.Advance(time.Hour)
	require.Equal(t, int64(1), hk.RunOnce(ctx))

	revoked, err := h.revocations.IsRevoked(ctx, long)
	require.NoError(t, err)
	require.True(t, revoked)

	// The purged token is past its expiry, so the gate still refuses it.
	_, err = h.gate.Authenticate(ctx, "Bearer "+short)
	require.ErrorIs(t, err, ErrForbidden)
}

func TestHousekeeping_StartStop(t *testing.T) {
	h := newHarness(t)

	hk := NewHousekeepingService(h.revocations, discardLogger(), 0)
	require.Equal(t, time.Hour, hk.Interval)

	hk.Start()
	hk.Stop()
	hk.Stop()

	idle := NewHousekeepingService(h.revocations, discardLogger(), time.Minute)
	idle.Stop()
	idle.Start() // no worker after Stop
}

func TestRevocation_UnknownExpiryUsesRetention(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	require.NoError(t, h.revocations.Revoke(ctx, "opaque", time.Time{}))

	n, err := h.revocations.Purge(ctx)
	require.NoError(t, err)
	require.Zero(t, n)

	h.clock.Advance(h.revocations.Retention)
	n, err = h.revocations.Purge(ctx)
	require.NoError(t, err)
	require.Equal(t, int64(1), n)
}
