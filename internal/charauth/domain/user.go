package domain

import (
	"strings"
	"time"
)

// User is the public view of an account. It is the only user type that
// leaves the credentials service and never carries secrets.
type User struct {
	ID         int64     `json:"id"`
	Email      string    `json:"email"`
	Role       Role      `json:"role"`
	MFAEnabled bool      `json:"mfaEnabled"`
	CreatedAt  time.Time `json:"createdAt"`
}

// Credential is the stored account record. Only the store and the
// credentials service see it.
type Credential struct {
	ID           int64
	Email        string
	PasswordHash string // bcrypt
	Role         Role
	RefreshToken string     // empty when logged out
	MFASecret    *string    // base32 TOTP secret
	MFAEnabledAt *time.Time // nil until the first code is confirmed
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Public strips secrets from c.
func (c Credential) Public() User {
	return User{
		ID:         c.ID,
		Email:      c.Email,
		Role:       c.Role,
		MFAEnabled: c.MFAEnabledAt != nil,
		CreatedAt:  c.CreatedAt,
	}
}

// NormalizeEmail is the canonical form used as the identity key.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
