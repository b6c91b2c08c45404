package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/aussiebroadwan/charauth/internal/charauth/domain"
	"github.com/aussiebroadwan/charauth/internal/charauth/store"
	"github.com/aussiebroadwan/charauth/pkg/cryptox"
)

var (
	ErrConflict           = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// Credentials owns user records and their password hashes. Hashes never
// leave this type: every method returns the public domain.User.
type Credentials struct {
	Store  store.Store
	Hasher *cryptox.Hasher
}

// Register creates a user with the user role.
func (s *Credentials) Register(ctx context.Context, email, password string) (domain.User, error) {
	return s.RegisterWithRole(ctx, email, password, domain.RoleUser)
}

// RegisterWithRole creates a user with an explicit role. Only bootstrap uses
// it with RoleAdmin; the public registration route always goes through
// Register.
func (s *Credentials) RegisterWithRole(ctx context.Context, email, password string, role domain.Role) (domain.User, error) {
	email = domain.NormalizeEmail(email)

	// Cheap check first so duplicates don't pay for a bcrypt round.
	if _, err := s.Store.Users().GetUserByEmail(ctx, email); err == nil {
		return domain.User{}, ErrConflict
	} else if !errors.Is(err, store.ErrNotFound) {
		return domain.User{}, fmt.Errorf("lookup user: %w", err)
	}

	hash, err := s.Hasher.Hash(ctx, password)
	if err != nil {
		return domain.User{}, fmt.Errorf("hash password: %w", err)
	}

	created, err := s.Store.Users().CreateUser(ctx, domain.Credential{
		Email:        email,
		PasswordHash: hash,
		Role:         role,
	})
	if errors.Is(err, store.ErrAlreadyExists) {
		return domain.User{}, ErrConflict
	}
	if err != nil {
		return domain.User{}, fmt.Errorf("create user: %w", err)
	}
	return created.Public(), nil
}

// FindByEmail returns store.ErrNotFound when no user has that email.
func (s *Credentials) FindByEmail(ctx context.Context, email string) (domain.User, error) {
	c, err := s.Store.Users().GetUserByEmail(ctx, domain.NormalizeEmail(email))
	if err != nil {
		return domain.User{}, err
	}
	return c.Public(), nil
}

// FindByID returns store.ErrNotFound when no user has that id.
func (s *Credentials) FindByID(ctx context.Context, id int64) (domain.User, error) {
	c, err := s.Store.Users().GetUserByID(ctx, id)
	if err != nil {
		return domain.User{}, err
	}
	return c.Public(), nil
}

// VerifyPassword reports whether password matches the stored hash of user.
func (s *Credentials) VerifyPassword(ctx context.Context, user domain.User, password string) (bool, error) {
	c, err := s.Store.Users().GetUserByID(ctx, user.ID)
	if err != nil {
		return false, err
	}

	err = s.Hasher.Verify(ctx, password, c.PasswordHash)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, cryptox.ErrPasswordMismatch):
		return false, nil
	default:
		return false, err
	}
}

// Authenticate checks an email and password pair. Unknown emails and wrong
// passwords both return ErrInvalidCredentials and cost one bcrypt
// comparison.
func (s *Credentials) Authenticate(ctx context.Context, email, password string) (domain.User, error) {
	// No stored hash can match an input bcrypt refuses to hash.
	if len(password) > cryptox.MaxPasswordBytes {
		return domain.User{}, ErrInvalidCredentials
	}

	c, err := s.Store.Users().GetUserByEmail(ctx, domain.NormalizeEmail(email))
	if errors.Is(err, store.ErrNotFound) {
		s.Hasher.Burn(ctx, password)
		return domain.User{}, ErrInvalidCredentials
	}
	if err != nil {
		return domain.User{}, fmt.Errorf("lookup user: %w", err)
	}

	err = s.Hasher.Verify(ctx, password, c.PasswordHash)
	if errors.Is(err, cryptox.ErrPasswordMismatch) {
		return domain.User{}, ErrInvalidCredentials
	}
	if err != nil {
		return domain.User{}, fmt.Errorf("verify password: %w", err)
	}
	return c.Public(), nil
}

// SetRefreshToken replaces the user's single live refresh token. It returns
// store.ErrNotFound when the email is unknown.
func (s *Credentials) SetRefreshToken(ctx context.Context, email, token string) error {
	return s.Store.Users().SetRefreshToken(ctx, domain.NormalizeEmail(email), token)
}

// ClearRefreshToken drops the user's refresh token, so no refresh exchange
// can succeed until the next login.
func (s *Credentials) ClearRefreshToken(ctx context.Context, email string) error {
	return s.SetRefreshToken(ctx, email, "")
}

// RotateRefreshToken swaps current for next only if current is still the
// live token. It returns store.ErrNotFound otherwise.
func (s *Credentials) RotateRefreshToken(ctx context.Context, userID int64, current, next string) error {
	return s.Store.Users().SwapRefreshToken(ctx, userID, current, next)
}
