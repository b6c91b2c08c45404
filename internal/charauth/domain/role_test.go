package domain_test

import (
	"testing"
	"time"

	"github.com/aussiebroadwan/charauth/internal/charauth/domain"
	"github.com/stretchr/testify/require"
)

func TestParseRole(t *testing.T) {
	tests := []struct {
		in      string
		want    domain.Role
		wantErr bool
	}{
		{"admin", domain.RoleAdmin, false},
		{"ADMIN", domain.RoleAdmin, false},
		{" user ", domain.RoleUser, false},
		{"root", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := domain.ParseRole(tt.in)
			if tt.wantErr {
				require.ErrorIs(t, err, domain.ErrUnknownRole)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestRoleIn(t *testing.T) {
	require.True(t, domain.RoleAdmin.In(domain.RoleAdmin, domain.RoleUser))
	require.False(t, domain.RoleUser.In(domain.RoleAdmin))
	require.False(t, domain.RoleUser.In())
}

func TestCredentialPublic(t *testing.T) {
	secret := "JBSWY3DPEHPK3PXP"
	now := time.Now()
	c := domain.Credential{
		ID:           3,
		Email:        "a@example.com",
		PasswordHash: "$2a$10$hash",
		Role:         domain.RoleUser,
		RefreshToken: "refresh",
		MFASecret:    &secret,
		MFAEnabledAt: &now,
	}

	u := c.Public()
	require.Equal(t, int64(3), u.ID)
	require.Equal(t, "a@example.com", u.Email)
	require.True(t, u.MFAEnabled)
}

func TestNormalizeEmail(t *testing.T) {
	require.Equal(t, "user@example.com", domain.NormalizeEmail("  User@Example.COM "))
}
