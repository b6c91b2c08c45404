package authsdk

import "time"

// ============================================================================
// Auth Types
// ============================================================================

// RegisterRequest is the body of POST /auth/register.
type RegisterRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6,max=72"`
}

// LoginRequest is the body of POST /auth/login. OTP is only needed once the
// account has MFA enabled.
type LoginRequest struct {
	Email    string `json:"email"         validate:"required,email"`
	Password string `json:"password"      validate:"required"`
	OTP      string `json:"otp,omitempty" validate:"omitempty,len=6,numeric"`
}

// RefreshRequest is the body of POST /auth/refresh.
type RefreshRequest struct {
	RefreshToken string `json:"refreshToken" validate:"required"`
}

// TokenResponse is returned by login and refresh.
type TokenResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`

	// TokenType is always "Bearer".
	TokenType string `json:"tokenType"`

	// ExpiresIn is the access token lifetime in seconds.
	ExpiresIn int64 `json:"expiresIn"`
}

// UserResponse is the public view of an account.
type UserResponse struct {
	ID         int64     `json:"id"`
	Email      string    `json:"email"`
	Role       string    `json:"role"`
	MFAEnabled bool      `json:"mfaEnabled"`
	CreatedAt  time.Time `json:"createdAt"`
}

// MessageResponse is returned by endpoints with nothing else to say.
type MessageResponse struct {
	Message string `json:"message"`
}

// ============================================================================
// MFA Types
// ============================================================================

// TOTPEnrollResponse carries the new secret. MFA is not enforced until the
// code is confirmed via POST /auth/mfa/verify.
type TOTPEnrollResponse struct {
	Secret  string `json:"secret"`
	URL     string `json:"url"`
	Issuer  string `json:"issuer"`
	Account string `json:"account"`
}

// TOTPVerifyRequest is the body of POST /auth/mfa/verify.
type TOTPVerifyRequest struct {
	Code string `json:"code" validate:"required,len=6,numeric"`
}

// ============================================================================
// Character Types
// ============================================================================

// CharacterRequest is the body of POST /characters and PATCH /characters/{id}.
// PATCH replaces both names.
type CharacterRequest struct {
	Name     string `json:"name"     validate:"required,min=6"`
	LastName string `json:"lastName" validate:"required,min=6"`
}

// CharacterResponse is a stored character.
type CharacterResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	LastName  string    `json:"lastName"`
	CreatedBy int64     `json:"createdBy"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ============================================================================
// Health Types
// ============================================================================

// HealthResponse is returned by /livez and /readyz. Only /readyz fills Checks.
type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime,omitempty"`
	Version string        `json:"version,omitempty"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}

// HealthChecks reports the state of each dependency /readyz looks at.
type HealthChecks struct {
	Store  string `json:"store"`
	Signer string `json:"signer"`
}
