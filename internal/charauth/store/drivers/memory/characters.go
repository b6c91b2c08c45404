package memory

import (
	"context"
	"maps"
	"slices"
	"sync"

	"github.com/aussiebroadwan/charauth/internal/charauth/domain"
	"github.com/aussiebroadwan/charauth/internal/charauth/store"
)

type charactersRepo struct {
	s *Store

	mu     sync.RWMutex
	lastID int64
	byID   map[int64]domain.Character
}

func (r *charactersRepo) CreateCharacter(_ context.Context, c domain.Character) (domain.Character, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.lastID++
	now := r.s.now()
	c.ID = r.lastID
	c.CreatedAt = now
	c.UpdatedAt = now
	r.byID[c.ID] = c
	return c, nil
}

func (r *charactersRepo) GetCharacter(_ context.Context, id int64) (domain.Character, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.byID[id]
	if !ok {
		return domain.Character{}, store.ErrNotFound
	}
	return c, nil
}

func (r *charactersRepo) ListCharacters(context.Context) ([]domain.Character, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Character, 0, len(r.byID))
	for _, id := range slices.Sorted(maps.Keys(r.byID)) {
		out = append(out, r.byID[id])
	}
	return out, nil
}

func (r *charactersRepo) UpdateCharacter(_ context.Context, c domain.Character) (domain.Character, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.byID[c.ID]
	if !ok {
		return domain.Character{}, store.ErrNotFound
	}
	existing.Name = c.Name
	existing.LastName = c.LastName
	existing.UpdatedAt = r.s.now()
	r.byID[c.ID] = existing
	return existing, nil
}

func (r *charactersRepo) DeleteCharacter(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[id]; !ok {
		return store.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}
