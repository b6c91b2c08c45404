package service

import (
	"context"
	"fmt"

	"github.com/aussiebroadwan/charauth/internal/charauth/domain"
	"github.com/aussiebroadwan/charauth/internal/charauth/store"
)

// CharacterService is the protected resource behind the gates. Role checks
// happen before these methods are reached.
type CharacterService struct {
	Store store.Store
}

func (s *CharacterService) List(ctx context.Context) ([]domain.Character, error) {
	return s.Store.Characters().ListCharacters(ctx)
}

// Get returns store.ErrNotFound for unknown ids.
func (s *CharacterService) Get(ctx context.Context, id int64) (domain.Character, error) {
	return s.Store.Characters().GetCharacter(ctx, id)
}

func (s *CharacterService) Create(ctx context.Context, by domain.Principal, name, lastName string) (domain.Character, error) {
	c, err := s.Store.Characters().CreateCharacter(ctx, domain.Character{
		Name:      name,
		LastName:  lastName,
		CreatedBy: by.ID,
	})
	if err != nil {
		return domain.Character{}, fmt.Errorf("create character: %w", err)
	}
	return c, nil
}

// Update returns store.ErrNotFound for unknown ids.
func (s *CharacterService) Update(ctx context.Context, id int64, name, lastName string) (domain.Character, error) {
	return s.Store.Characters().UpdateCharacter(ctx, domain.Character{ID: id, Name: name, LastName: lastName})
}

// Delete returns store.ErrNotFound for unknown ids.
func (s *CharacterService) Delete(ctx context.Context, id int64) error {
	return s.Store.Characters().DeleteCharacter(ctx, id)
}
