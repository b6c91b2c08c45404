package authsdk

import (
	"context"
	"net/http"
)

// Register creates an account with the user role.
func (c *SDKClient) Register(ctx context.Context, email, password string) (*UserResponse, error) {
	resp, err := c.postJSON(ctx, "/auth/register", RegisterRequest{Email: email, Password: password})
	if err != nil {
		return nil, err
	}

	var user UserResponse
	if err := decodeJSON(resp, &user, http.StatusCreated); err != nil {
		return nil, err
	}
	return &user, nil
}

// LoginGrant exchanges email and password (and otp, once MFA is enabled)
// for a token pair.
func (c *SDKClient) LoginGrant(ctx context.Context, email, password, otp string) (*TokenResponse, error) {
	resp, err := c.postJSON(ctx, "/auth/login", LoginRequest{Email: email, Password: password, OTP: otp})
	if err != nil {
		return nil, err
	}
	return decodeToken(resp)
}

// RefreshGrant exchanges a refresh token for a new pair. The old refresh
// token stops working.
func (c *SDKClient) RefreshGrant(ctx context.Context, refreshToken string) (*TokenResponse, error) {
	resp, err := c.postJSON(ctx, "/auth/refresh", RefreshRequest{RefreshToken: refreshToken})
	if err != nil {
		return nil, err
	}
	return decodeToken(resp)
}

func decodeToken(resp *http.Response) (*TokenResponse, error) {
	var tokenResp TokenResponse
	if err := decodeJSON(resp, &tokenResp, http.StatusOK); err != nil {
		return nil, err
	}
	return &tokenResp, nil
}
