package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/aussiebroadwan/charauth/internal/charauth/domain"
	"github.com/aussiebroadwan/charauth/pkg/cryptox"
	"github.com/aussiebroadwan/charauth/pkg/slogx"
)

// BootstrapService seeds the first administrator. Public registration only
// ever creates plain users, so this is the one way to obtain an admin.
type BootstrapService struct {
	Credentials *Credentials
	Email       string
	Password    string // generated and logged once when empty
}

// EnsureAdmin creates the configured admin unless an account with that email
// already exists. It does nothing when no email is configured.
func (s *BootstrapService) EnsureAdmin(ctx context.Context) (bool, error) {
	l := slogx.FromContext(ctx)

	if s.Email == "" {
		return false, nil
	}

	password := s.Password
	generated := password == ""
	if generated {
		var err error
		if password, err = cryptox.GenerateToken(cryptox.TokenSize128); err != nil {
			return false, err
		}
	}

	admin, err := s.Credentials.RegisterWithRole(ctx, s.Email, password, domain.RoleAdmin)
	if errors.Is(err, ErrConflict) {
		existing, err := s.Credentials.FindByEmail(ctx, s.Email)
		if err != nil {
			return false, err
		}
		if existing.Role != domain.RoleAdmin {
			l.Warn("bootstrap email belongs to a non-admin account, no admin was created",
				slog.Int64("user_id", existing.ID),
				slog.String("email", existing.Email),
				slog.String("role", existing.Role.String()),
			)
			return false, nil
		}
		l.Debug("bootstrap admin already present", slog.String("email", s.Email))
		return false, nil
	}
	if err != nil {
		return false, err
	}

	attrs := []any{slog.Int64("user_id", admin.ID), slog.String("email", admin.Email)}
	if generated {
		// Only chance to learn the password; it is not stored anywhere else.
		attrs = append(attrs, slog.String("password", password))
	}
	l.Warn("bootstrap admin created", attrs...)
	return true, nil
}
