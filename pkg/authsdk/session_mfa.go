package authsdk

import (
	"context"
	"net/http"
)

// EnrollTOTP starts TOTP enrollment for the session's account.
func (s *Session) EnrollTOTP(ctx context.Context) (*TOTPEnrollResponse, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodPost, "/auth/mfa/enroll", nil)
	if err != nil {
		return nil, err
	}

	var enrollResp TOTPEnrollResponse
	if err := decodeJSON(resp, &enrollResp, http.StatusOK); err != nil {
		return nil, err
	}
	return &enrollResp, nil
}

// VerifyTOTP confirms the enrolled secret with a current code. Every later
// login needs an otp.
func (s *Session) VerifyTOTP(ctx context.Context, code string) error {
	resp, err := s.doAuthRequest(ctx, http.MethodPost, "/auth/mfa/verify", TOTPVerifyRequest{Code: code})
	if err != nil {
		return err
	}

	var msg MessageResponse
	return decodeJSON(resp, &msg, http.StatusOK)
}
