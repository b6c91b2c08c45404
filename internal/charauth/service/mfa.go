package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aussiebroadwan/charauth/internal/charauth/domain"
	"github.com/aussiebroadwan/charauth/internal/charauth/store"
	"github.com/pquerna/otp"
	"github.com/pquerna/otp/totp"
)

var (
	ErrInvalidTOTPCode   = errors.New("invalid TOTP code")
	ErrMFANotEnrolled    = errors.New("MFA not enrolled")
	ErrMFAAlreadyEnabled = errors.New("MFA already enabled")
)

var totpOpts = totp.ValidateOpts{
	Period:    30,
	Skew:      1,
	Digits:    otp.DigitsSix,
	Algorithm: otp.AlgorithmSHA1,
}

// MFAService manages the optional TOTP second factor.
type MFAService struct {
	Store  store.Store
	Issuer string // shown in authenticator apps

	Now func() time.Time
}

func (s *MFAService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// Enroll generates and stores a TOTP secret. MFA is not enforced until the
// user proves possession with Verify. Enrolling again before verification
// replaces the pending secret.
func (s *MFAService) Enroll(ctx context.Context, userID int64) (domain.MFAEnrollment, error) {
	c, err := s.Store.Users().GetUserByID(ctx, userID)
	if err != nil {
		return domain.MFAEnrollment{}, fmt.Errorf("lookup user: %w", err)
	}
	if c.MFAEnabledAt != nil {
		return domain.MFAEnrollment{}, ErrMFAAlreadyEnabled
	}

	key, err := totp.Generate(totp.GenerateOpts{
		Issuer:      s.Issuer,
		AccountName: c.Email,
		Period:      totpOpts.Period,
		Digits:      totpOpts.Digits,
		Algorithm:   totpOpts.Algorithm,
	})
	if err != nil {
		return domain.MFAEnrollment{}, fmt.Errorf("generate TOTP key: %w", err)
	}

	if err := s.Store.Users().UpdateMFASecret(ctx, userID, key.Secret()); err != nil {
		return domain.MFAEnrollment{}, fmt.Errorf("store MFA secret: %w", err)
	}

	return domain.MFAEnrollment{
		Secret:  key.Secret(),
		URL:     key.URL(),
		Issuer:  s.Issuer,
		Account: c.Email,
	}, nil
}

// Verify checks code against the pending secret and enables MFA.
func (s *MFAService) Verify(ctx context.Context, userID int64, code string) error {
	c, err := s.Store.Users().GetUserByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("lookup user: %w", err)
	}
	if c.MFASecret == nil || *c.MFASecret == "" {
		return ErrMFANotEnrolled
	}
	if c.MFAEnabledAt != nil {
		return ErrMFAAlreadyEnabled
	}

	if !s.valid(code, *c.MFASecret) {
		return ErrInvalidTOTPCode
	}
	return s.Store.Users().EnableMFA(ctx, userID, s.now())
}

// Validate checks a login code for a user with MFA enabled.
func (s *MFAService) Validate(ctx context.Context, userID int64, code string) error {
	c, err := s.Store.Users().GetUserByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("lookup user: %w", err)
	}
	if c.MFAEnabledAt == nil || c.MFASecret == nil {
		return ErrMFANotEnrolled
	}
	if !s.valid(code, *c.MFASecret) {
		return ErrInvalidTOTPCode
	}
	return nil
}

func (s *MFAService) valid(code, secret string) bool {
	ok, err := totp.ValidateCustom(code, secret, s.now().UTC(), totpOpts)
	return err == nil && ok
}
