package authsdk

import (
	"context"
	"net/http"
	"strconv"
)

// ListCharacters returns every character. Any authenticated role may call it.
func (s *Session) ListCharacters(ctx context.Context) ([]CharacterResponse, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, "/characters", nil)
	if err != nil {
		return nil, err
	}

	var list []CharacterResponse
	if err := decodeJSON(resp, &list, http.StatusOK); err != nil {
		return nil, err
	}
	return list, nil
}

// GetCharacter returns one character, or an error matching ErrNotFound.
func (s *Session) GetCharacter(ctx context.Context, id int64) (*CharacterResponse, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, characterPath(id), nil)
	if err != nil {
		return nil, err
	}
	return decodeCharacter(resp, http.StatusOK)
}

// CreateCharacter requires the admin or user role.
func (s *Session) CreateCharacter(ctx context.Context, req CharacterRequest) (*CharacterResponse, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodPost, "/characters", req)
	if err != nil {
		return nil, err
	}
	return decodeCharacter(resp, http.StatusCreated)
}

// UpdateCharacter replaces both names. Requires the admin role.
func (s *Session) UpdateCharacter(ctx context.Context, id int64, req CharacterRequest) (*CharacterResponse, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodPatch, characterPath(id), req)
	if err != nil {
		return nil, err
	}
	return decodeCharacter(resp, http.StatusOK)
}

// DeleteCharacter requires the admin role.
func (s *Session) DeleteCharacter(ctx context.Context, id int64) error {
	resp, err := s.doAuthRequest(ctx, http.MethodDelete, characterPath(id), nil)
	if err != nil {
		return err
	}

	var msg MessageResponse
	return decodeJSON(resp, &msg, http.StatusOK)
}

func characterPath(id int64) string {
	return "/characters/" + strconv.FormatInt(id, 10)
}

func decodeCharacter(resp *http.Response, status int) (*CharacterResponse, error) {
	var c CharacterResponse
	if err := decodeJSON(resp, &c, status); err != nil {
		return nil, err
	}
	return &c, nil
}
