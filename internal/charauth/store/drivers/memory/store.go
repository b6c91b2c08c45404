// Package memory is the default volatile store. State lives for the process
// lifetime only.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/aussiebroadwan/charauth/internal/charauth/domain"
	"github.com/aussiebroadwan/charauth/internal/charauth/store"
)

type Store struct {
	now func() time.Time

	users      *usersRepo
	revoked    *revokedTokensRepo
	characters *charactersRepo
}

var _ store.Store = (*Store)(nil)

// NewStore returns an empty store.
func NewStore() *Store {
	s := &Store{now: func() time.Time { return time.Now().UTC() }}
	s.users = &usersRepo{s: s, byID: map[int64]*domain.Credential{}, byEmail: map[string]int64{}}
	s.revoked = &revokedTokensRepo{entries: map[string]domain.RevokedToken{}}
	s.characters = &charactersRepo{s: s, byID: map[int64]domain.Character{}}
	return s
}

func (s *Store) Users() store.Users                 { return s.users }
func (s *Store) RevokedTokens() store.RevokedTokens { return s.revoked }
func (s *Store) Characters() store.Characters       { return s.characters }

func (s *Store) ApplyMigrations() error         { return nil }
func (s *Store) Ping(ctx context.Context) error { return ctx.Err() }
func (s *Store) Close() error                   { return nil }

type revokedTokensRepo struct {
	mu      sync.RWMutex
	entries map[string]domain.RevokedToken
}

func (r *revokedTokensRepo) RevokeToken(_ context.Context, t domain.RevokedToken) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.entries[t.TokenHash]; !ok {
		r.entries[t.TokenHash] = t
	}
	return nil
}

func (r *revokedTokensRepo) IsRevoked(_ context.Context, tokenHash string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.entries[tokenHash]
	return ok, nil
}

func (r *revokedTokensRepo) DeleteExpiredRevokedTokens(_ context.Context, now time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var n int64
	for hash, t := range r.entries {
		if !t.ExpiresAt.After(now) {
			delete(r.entries, hash)
			n++
		}
	}
	return n, nil
}
