package http

import (
	"errors"
	"net/http"

	"github.com/aussiebroadwan/charauth/internal/charauth/domain"
	"github.com/aussiebroadwan/charauth/internal/charauth/service"
	"github.com/aussiebroadwan/charauth/internal/charauth/store"
	"github.com/aussiebroadwan/charauth/pkg/authsdk"
	"github.com/aussiebroadwan/charauth/pkg/cryptox"
	"github.com/aussiebroadwan/charauth/pkg/httpx"
	"github.com/aussiebroadwan/charauth/pkg/slogx"
)

// AuthHandler serves the /auth endpoints.
type AuthHandler struct {
	Credentials *service.Credentials
	Auth        *service.AuthService
}

// HandleRegister handles POST /auth/register
//
//	@Summary		Register an account
//	@Description	Creates an account with the user role. The password is stored as a bcrypt hash and never returned.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		authsdk.RegisterRequest	true	"Email and password"
//	@Success		201		{object}	authsdk.UserResponse	"Created account"
//	@Failure		400		{object}	authsdk.APIError		"Invalid body"
//	@Failure		409		{object}	authsdk.APIError		"Email already registered"
//	@Failure		429		{object}	authsdk.APIError		"Rate limited"
//	@Router			/auth/register [post].
func (h *AuthHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req authsdk.RegisterRequest
	if !decodeBody(w, r, &req) {
		return
	}

	user, err := h.Credentials.Register(ctx, req.Email, req.Password)
	switch {
	case err == nil:
	case errors.Is(err, service.ErrConflict):
		authsdk.ErrConflict.WriteError(w)
		return
	case errors.Is(err, cryptox.ErrPasswordTooLong):
		authsdk.ErrInvalidRequest.WithDescription("password: max=72 bytes").WriteError(w)
		return
	default:
		log.Error("failed to register user", "err", err)
		authsdk.ErrServerError.WriteError(w)
		return
	}

	log.Info("user registered", "user_id", user.ID)
	httpx.WriteJSON(w, http.StatusCreated, toUserResponse(user))
}

// HandleLogin handles POST /auth/login
//
//	@Summary		Log in
//	@Description	Exchanges email and password for an access and refresh token pair.
//	@Description	Accounts with MFA enabled must also send a current TOTP code in otp.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		authsdk.LoginRequest	true	"Credentials"
//	@Success		200		{object}	authsdk.TokenResponse	"Token pair"
//	@Failure		400		{object}	authsdk.APIError		"Invalid body"
//	@Failure		401		{object}	authsdk.APIError		"Invalid credentials or mfa_required"
//	@Failure		429		{object}	authsdk.APIError		"Rate limited"
//	@Router			/auth/login [post].
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req authsdk.LoginRequest
	if !decodeBody(w, r, &req) {
		return
	}

	pair, err := h.Auth.Login(ctx, req.Email, req.Password, req.OTP)
	switch {
	case err == nil:
	case errors.Is(err, service.ErrInvalidCredentials):
		authsdk.ErrInvalidCredentials.WriteError(w)
		return
	case errors.Is(err, service.ErrMFARequired):
		authsdk.ErrMFARequired.WriteError(w)
		return
	case errors.Is(err, service.ErrInvalidTOTPCode):
		authsdk.ErrInvalidCredentials.WithDescription("invalid TOTP code").WriteError(w)
		return
	default:
		log.Error("login failed", "err", err)
		authsdk.ErrServerError.WriteError(w)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toTokenResponse(pair))
}

// HandleRefresh handles POST /auth/refresh
//
//	@Summary		Refresh tokens
//	@Description	Exchanges the account's current refresh token for a new pair. The presented refresh token is revoked.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		authsdk.RefreshRequest	true	"Refresh token"
//	@Success		200		{object}	authsdk.TokenResponse	"New token pair"
//	@Failure		400		{object}	authsdk.APIError		"Invalid body"
//	@Failure		401		{object}	authsdk.APIError		"Invalid refresh token"
//	@Failure		429		{object}	authsdk.APIError		"Rate limited"
//	@Router			/auth/refresh [post].
func (h *AuthHandler) HandleRefresh(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req authsdk.RefreshRequest
	if !decodeBody(w, r, &req) {
		return
	}

	pair, err := h.Auth.Refresh(ctx, req.RefreshToken)
	switch {
	case err == nil:
	case errors.Is(err, service.ErrInvalidRefreshToken):
		authsdk.ErrInvalidGrant.WriteError(w)
		return
	default:
		slogx.FromContext(ctx).Error("refresh failed", "err", err)
		authsdk.ErrServerError.WriteError(w)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toTokenResponse(pair))
}

// HandleLogout handles POST /auth/logout
//
//	@Summary		Log out
//	@Description	Revokes the presented access token and the account's refresh token.
//	@Description	Tokens that are already invalid are accepted.
//	@Tags			Auth
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	authsdk.MessageResponse	"Logged out"
//	@Failure		401	{object}	authsdk.APIError		"Missing bearer token"
//	@Failure		403	{object}	authsdk.APIError		"Token owner no longer exists"
//	@Router			/auth/logout [post].
func (h *AuthHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	token, ok := httpx.BearerToken(r.Header.Get("Authorization"))
	if !ok {
		authsdk.ErrMissingToken.WriteError(w)
		return
	}

	err := h.Auth.Logout(ctx, token)
	switch {
	case err == nil:
	case errors.Is(err, service.ErrForbidden):
		authsdk.ErrInvalidToken.WriteError(w)
		return
	default:
		slogx.FromContext(ctx).Error("logout failed", "err", err)
		authsdk.ErrServerError.WriteError(w)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, authsdk.MessageResponse{Message: "logged out"})
}

// HandleMe handles GET /auth/me
//
//	@Summary		Current account
//	@Description	Returns the account the access token was issued to.
//	@Tags			Auth
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	authsdk.UserResponse	"Account"
//	@Failure		401	{object}	authsdk.APIError		"Missing bearer token"
//	@Failure		403	{object}	authsdk.APIError		"Invalid or revoked token"
//	@Router			/auth/me [get].
func (h *AuthHandler) HandleMe(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	p, ok := principalFrom(ctx)
	if !ok {
		authsdk.ErrMissingToken.WriteError(w)
		return
	}

	user, err := h.Credentials.FindByID(ctx, p.ID)
	switch {
	case err == nil:
	case errors.Is(err, store.ErrNotFound):
		authsdk.ErrInvalidToken.WriteError(w)
		return
	default:
		slogx.FromContext(ctx).Error("failed to load user", "err", err)
		authsdk.ErrServerError.WriteError(w)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toUserResponse(user))
}

func toUserResponse(u domain.User) authsdk.UserResponse {
	return authsdk.UserResponse{
		ID:         u.ID,
		Email:      u.Email,
		Role:       u.Role.String(),
		MFAEnabled: u.MFAEnabled,
		CreatedAt:  u.CreatedAt,
	}
}

func toTokenResponse(p domain.TokenPair) authsdk.TokenResponse {
	return authsdk.TokenResponse{
		AccessToken:  p.AccessToken,
		RefreshToken: p.RefreshToken,
		TokenType:    p.TokenType,
		ExpiresIn:    p.ExpiresIn,
	}
}
