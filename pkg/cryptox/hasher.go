package cryptox

import (
	"context"
	"runtime"
	"sync"

	"golang.org/x/sync/semaphore"
)

// Hasher runs bcrypt work through a bounded pool so a burst of logins cannot
// occupy every CPU at once. Callers waiting for a slot give up when their
// context is done.
type Hasher struct {
	cost int
	sem  *semaphore.Weighted

	dummyOnce sync.Once
	dummy     string
}

// NewHasher creates a Hasher with the given bcrypt cost and concurrency.
// A non-positive workers value means GOMAXPROCS.
func NewHasher(cost, workers int) *Hasher {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	return &Hasher{cost: cost, sem: semaphore.NewWeighted(int64(workers))}
}

// Hash hashes password once a pool slot is free.
func (h *Hasher) Hash(ctx context.Context, password string) (string, error) {
	if err := h.sem.Acquire(ctx, 1); err != nil {
		return "", err
	}
	defer h.sem.Release(1)

	return HashPassword(password, h.cost)
}

// Verify checks password against hash once a pool slot is free.
func (h *Hasher) Verify(ctx context.Context, password, hash string) error {
	if err := h.sem.Acquire(ctx, 1); err != nil {
		return err
	}
	defer h.sem.Release(1)

	return VerifyPassword(password, hash)
}

// Burn performs one comparison against a throwaway hash and discards the
// result. Lookups for unknown accounts call it so they take as long as a
// real password check.
func (h *Hasher) Burn(ctx context.Context, password string) {
	h.dummyOnce.Do(func() {
		h.dummy, _ = HashPassword(MustGenerateToken(TokenSize128), h.cost)
	})
	_ = h.Verify(ctx, password, h.dummy)
}
