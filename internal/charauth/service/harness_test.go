package service

import (
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/aussiebroadwan/charauth/internal/charauth/store/drivers/memory"
	"github.com/aussiebroadwan/charauth/pkg/cryptox"
	"github.com/aussiebroadwan/charauth/pkg/jwtx"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type testClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *testClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

type harness struct {
	clock       *testClock
	store       *memory.Store
	signer      *jwtx.Signer
	credentials *Credentials
	revocations *RevocationRegistry
	gate        *Gate
	mfa         *MFAService
	auth        *AuthService
}

func newHarness(t *testing.T) *harness {
	t.Helper()

	clock := &testClock{now: time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)}
	st := memory.NewStore()

	signer, err := jwtx.NewSigner("test-secret", jwtx.Options{Clock: clock.Now})
	require.NoError(t, err)
	verifier, err := jwtx.NewVerifier("test-secret", clock.Now)
	require.NoError(t, err)

	creds := &Credentials{Store: st, Hasher: cryptox.NewHasher(bcrypt.MinCost, 4)}
	revs := &RevocationRegistry{Store: st, Retention: time.Hour, Now: clock.Now}
	mfa := &MFAService{Store: st, Issuer: "charauth-test", Now: clock.Now}

	return &harness{
		clock:       clock,
		store:       st,
		signer:      signer,
		credentials: creds,
		revocations: revs,
		gate:        &Gate{Revocations: revs, Verifier: verifier},
		mfa:         mfa,
		auth: &AuthService{
			Credentials: creds,
			Revocations: revs,
			MFA:         mfa,
			Issuer:      signer,
			Verifier:    verifier,
		},
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
