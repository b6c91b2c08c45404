package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/aussiebroadwan/charauth/internal/charauth/domain"
	"github.com/aussiebroadwan/charauth/internal/charauth/service"
	"github.com/aussiebroadwan/charauth/internal/charauth/store"
	"github.com/aussiebroadwan/charauth/pkg/authsdk"
	"github.com/aussiebroadwan/charauth/pkg/httpx"
	"github.com/aussiebroadwan/charauth/pkg/slogx"
)

// CharactersHandler serves the character resource. Role checks are applied
// by the router before these methods run.
type CharactersHandler struct {
	Characters *service.CharacterService
}

// HandleList handles GET /characters
//
//	@Summary		List characters
//	@Tags			Characters
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		authsdk.CharacterResponse
//	@Failure		401	{object}	authsdk.APIError	"Missing bearer token"
//	@Failure		403	{object}	authsdk.APIError	"Invalid or revoked token"
//	@Router			/characters [get].
func (h *CharactersHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	list, err := h.Characters.List(r.Context())
	if err != nil {
		slogx.FromContext(r.Context()).Error("failed to list characters", "err", err)
		authsdk.ErrServerError.WriteError(w)
		return
	}

	out := make([]authsdk.CharacterResponse, 0, len(list))
	for _, c := range list {
		out = append(out, toCharacterResponse(c))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleGet handles GET /characters/{id}
//
//	@Summary		Get a character
//	@Tags			Characters
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"Character ID"
//	@Success		200	{object}	authsdk.CharacterResponse
//	@Failure		401	{object}	authsdk.APIError	"Missing bearer token"
//	@Failure		403	{object}	authsdk.APIError	"Invalid or revoked token"
//	@Failure		404	{object}	authsdk.APIError	"Not found"
//	@Router			/characters/{id} [get].
func (h *CharactersHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, ok := characterID(w, r)
	if !ok {
		return
	}

	c, err := h.Characters.Get(r.Context(), id)
	if err != nil {
		writeCharacterError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toCharacterResponse(c))
}

// HandleCreate handles POST /characters
//
//	@Summary		Create a character
//	@Description	Requires the admin or user role.
//	@Tags			Characters
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		authsdk.CharacterRequest	true	"Names, at least 6 characters each"
//	@Success		201		{object}	authsdk.CharacterResponse
//	@Failure		400		{object}	authsdk.APIError	"Invalid body"
//	@Failure		401		{object}	authsdk.APIError	"Missing bearer token"
//	@Failure		403		{object}	authsdk.APIError	"Invalid token or insufficient permissions"
//	@Router			/characters [post].
func (h *CharactersHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	p, ok := principalFrom(ctx)
	if !ok {
		authsdk.ErrMissingToken.WriteError(w)
		return
	}

	var req authsdk.CharacterRequest
	if !decodeBody(w, r, &req) {
		return
	}

	c, err := h.Characters.Create(ctx, p, req.Name, req.LastName)
	if err != nil {
		writeCharacterError(w, r, err)
		return
	}

	slogx.FromContext(ctx).Info("character created", "character_id", c.ID)
	httpx.WriteJSON(w, http.StatusCreated, toCharacterResponse(c))
}

// HandleUpdate handles PATCH /characters/{id}
//
//	@Summary		Update a character
//	@Description	Replaces both names. Requires the admin role.
//	@Tags			Characters
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int							true	"Character ID"
//	@Param			request	body		authsdk.CharacterRequest	true	"Names, at least 6 characters each"
//	@Success		200		{object}	authsdk.CharacterResponse
//	@Failure		400		{object}	authsdk.APIError	"Invalid body"
//	@Failure		401		{object}	authsdk.APIError	"Missing bearer token"
//	@Failure		403		{object}	authsdk.APIError	"Invalid token or insufficient permissions"
//	@Failure		404		{object}	authsdk.APIError	"Not found"
//	@Router			/characters/{id} [patch].
func (h *CharactersHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := characterID(w, r)
	if !ok {
		return
	}

	var req authsdk.CharacterRequest
	if !decodeBody(w, r, &req) {
		return
	}

	c, err := h.Characters.Update(r.Context(), id, req.Name, req.LastName)
	if err != nil {
		writeCharacterError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toCharacterResponse(c))
}

// HandleDelete handles DELETE /characters/{id}
//
//	@Summary		Delete a character
//	@Description	Requires the admin role.
//	@Tags			Characters
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"Character ID"
//	@Success		200	{object}	authsdk.MessageResponse
//	@Failure		401	{object}	authsdk.APIError	"Missing bearer token"
//	@Failure		403	{object}	authsdk.APIError	"Invalid token or insufficient permissions"
//	@Failure		404	{object}	authsdk.APIError	"Not found"
//	@Router			/characters/{id} [delete].
func (h *CharactersHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := characterID(w, r)
	if !ok {
		return
	}

	if err := h.Characters.Delete(r.Context(), id); err != nil {
		writeCharacterError(w, r, err)
		return
	}

	slogx.FromContext(r.Context()).Info("character deleted", "character_id", id)
	httpx.WriteJSON(w, http.StatusOK, authsdk.MessageResponse{Message: "character deleted"})
}

func characterID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		authsdk.ErrInvalidRequest.WithDescription("id: must be a positive integer").WriteError(w)
		return 0, false
	}
	return id, true
}

func writeCharacterError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, store.ErrNotFound) {
		authsdk.ErrNotFound.WithDescription("character not found").WriteError(w)
		return
	}
	slogx.FromContext(r.Context()).Error("character operation failed", "err", err)
	authsdk.ErrServerError.WriteError(w)
}

func toCharacterResponse(c domain.Character) authsdk.CharacterResponse {
	return authsdk.CharacterResponse{
		ID:        c.ID,
		Name:      c.Name,
		LastName:  c.LastName,
		CreatedBy: c.CreatedBy,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
