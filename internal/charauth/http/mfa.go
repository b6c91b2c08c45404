package http

import (
	"errors"
	"net/http"

	"github.com/aussiebroadwan/charauth/internal/charauth/service"
	"github.com/aussiebroadwan/charauth/pkg/authsdk"
	"github.com/aussiebroadwan/charauth/pkg/httpx"
	"github.com/aussiebroadwan/charauth/pkg/slogx"
)

// MFAHandler handles the TOTP enrollment endpoints.
type MFAHandler struct {
	MFAService *service.MFAService
}

// HandleEnroll handles POST /auth/mfa/enroll
//
//	@Summary		Enroll in TOTP MFA
//	@Description	Generates a TOTP secret for the authenticated user. MFA is enforced once the secret is confirmed.
//	@Tags			MFA
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	authsdk.TOTPEnrollResponse	"TOTP secret and otpauth URL"
//	@Failure		400	{object}	authsdk.APIError			"MFA already enabled"
//	@Failure		401	{object}	authsdk.APIError			"Missing bearer token"
//	@Failure		403	{object}	authsdk.APIError			"Invalid or revoked token"
//	@Router			/auth/mfa/enroll [post].
func (h *MFAHandler) HandleEnroll(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	p, ok := principalFrom(ctx)
	if !ok {
		authsdk.ErrMissingToken.WriteError(w)
		return
	}

	enrollment, err := h.MFAService.Enroll(ctx, p.ID)
	switch {
	case err == nil:
	case errors.Is(err, service.ErrMFAAlreadyEnabled):
		authsdk.ErrMFAAlreadyEnabled.WriteError(w)
		return
	default:
		log.Error("failed to enroll TOTP", "err", err)
		authsdk.ErrServerError.WriteError(w)
		return
	}

	log.Info("TOTP enrollment started")
	httpx.WriteJSON(w, http.StatusOK, authsdk.TOTPEnrollResponse{
		Secret:  enrollment.Secret,
		URL:     enrollment.URL,
		Issuer:  enrollment.Issuer,
		Account: enrollment.Account,
	})
}

// HandleVerify handles POST /auth/mfa/verify
//
//	@Summary		Verify TOTP code and enable MFA
//	@Description	Confirms the enrolled secret with a current code. Every later login requires an otp.
//	@Tags			MFA
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		authsdk.TOTPVerifyRequest	true	"TOTP code"
//	@Success		200		{object}	authsdk.MessageResponse		"MFA enabled"
//	@Failure		400		{object}	authsdk.APIError			"Invalid code, not enrolled or already enabled"
//	@Failure		401		{object}	authsdk.APIError			"Missing bearer token"
//	@Failure		403		{object}	authsdk.APIError			"Invalid or revoked token"
//	@Router			/auth/mfa/verify [post].
func (h *MFAHandler) HandleVerify(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	p, ok := principalFrom(ctx)
	if !ok {
		authsdk.ErrMissingToken.WriteError(w)
		return
	}

	var req authsdk.TOTPVerifyRequest
	if !decodeBody(w, r, &req) {
		return
	}

	err := h.MFAService.Verify(ctx, p.ID, req.Code)
	switch {
	case err == nil:
	case errors.Is(err, service.ErrInvalidTOTPCode):
		log.Warn("invalid TOTP code")
		authsdk.ErrInvalidCode.WriteError(w)
		return
	case errors.Is(err, service.ErrMFANotEnrolled):
		authsdk.ErrMFANotEnrolled.WriteError(w)
		return
	case errors.Is(err, service.ErrMFAAlreadyEnabled):
		authsdk.ErrMFAAlreadyEnabled.WriteError(w)
		return
	default:
		log.Error("failed to verify TOTP", "err", err)
		authsdk.ErrServerError.WriteError(w)
		return
	}

	log.Info("MFA enabled")
	httpx.WriteJSON(w, http.StatusOK, authsdk.MessageResponse{Message: "MFA enabled"})
}
