package memory

import (
	"context"
	"sync"
	"time"

	"github.com/aussiebroadwan/charauth/internal/charauth/domain"
	"github.com/aussiebroadwan/charauth/internal/charauth/store"
)

type usersRepo struct {
	s *Store

	mu      sync.RWMutex
	lastID  int64
	byID    map[int64]*domain.Credential
	byEmail map[string]int64
}

func (r *usersRepo) CreateUser(_ context.Context, c domain.Credential) (domain.Credential, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byEmail[c.Email]; ok {
		return domain.Credential{}, store.ErrAlreadyExists
	}

	r.lastID++
	now := r.s.now()
	c.ID = r.lastID
	c.CreatedAt = now
	c.UpdatedAt = now

	stored := c
	r.byID[c.ID] = &stored
	r.byEmail[c.Email] = c.ID
	return c, nil
}

func (r *usersRepo) GetUserByID(_ context.Context, id int64) (domain.Credential, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.byID[id]
	if !ok {
		return domain.Credential{}, store.ErrNotFound
	}
	return *c, nil
}

func (r *usersRepo) GetUserByEmail(_ context.Context, email string) (domain.Credential, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byEmail[email]
	if !ok {
		return domain.Credential{}, store.ErrNotFound
	}
	return *r.byID[id], nil
}

func (r *usersRepo) CountUsers(context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.byID)), nil
}

func (r *usersRepo) SetRefreshToken(_ context.Context, email, token string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	id, ok := r.byEmail[email]
	if !ok {
		return store.ErrNotFound
	}
	c := r.byID[id]
	c.RefreshToken = token
	c.UpdatedAt = r.s.now()
	return nil
}

func (r *usersRepo) SwapRefreshToken(_ context.Context, userID int64, current, next string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.byID[userID]
	if !ok || current == "" || c.RefreshToken != current {
		return store.ErrNotFound
	}
	c.RefreshToken = next
	c.UpdatedAt = r.s.now()
	return nil
}

func (r *usersRepo) UpdateMFASecret(_ context.Context, userID int64, secret string) error {
	return r.update(userID, func(c *domain.Credential) {
		c.MFASecret = &secret
		c.MFAEnabledAt = nil
	})
}

func (r *usersRepo) EnableMFA(_ context.Context, userID int64, at time.Time) error {
	return r.update(userID, func(c *domain.Credential) {
		at := at.UTC()
		c.MFAEnabledAt = &at
	})
}

func (r *usersRepo) update(id int64, fn func(*domain.Credential)) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.byID[id]
	if !ok {
		return store.ErrNotFound
	}
	fn(c)
	c.UpdatedAt = r.s.now()
	return nil
}
