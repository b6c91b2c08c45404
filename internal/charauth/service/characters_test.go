package service

import (
	"context"
	"testing"

	"github.com/aussiebroadwan/charauth/internal/charauth/domain"
	"github.com/aussiebroadwan/charauth/internal/charauth/store"
	"github.com/stretchr/testify/require"
)

func TestCharacterService(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	svc := &CharacterService{Store: h.store}
	by := domain.Principal{ID: 5, Role: domain.RoleUser}

	c, err := svc.Create(ctx, by, "Arthur", "Dayne")
	require.NoError(t, err)
	require.Equal(t, int64(5), c.CreatedBy)

	got, err := svc.Get(ctx, c.ID)
	require.NoError(t, err)
	require.Equal(t, c.Name, got.Name)

	updated, err := svc.Update(ctx, c.ID, "Arthurr", "Daynee")
	require.NoError(t, err)
	require.Equal(t, "Arthurr", updated.Name)

	list, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)

	require.NoError(t, svc.Delete(ctx, c.ID))
	_, err = svc.Get(ctx, c.ID)
	require.ErrorIs(t, err, store.ErrNotFound)
	_, err = svc.Update(ctx, c.ID, "Nobody", "Nobody")
	require.ErrorIs(t, err, store.ErrNotFound)
}
