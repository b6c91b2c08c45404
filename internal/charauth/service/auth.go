package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aussiebroadwan/charauth/internal/charauth/domain"
	"github.com/aussiebroadwan/charauth/internal/charauth/store"
	"github.com/aussiebroadwan/charauth/pkg/jwtx"
	"github.com/aussiebroadwan/charauth/pkg/slogx"
)

var (
	ErrMFARequired         = errors.New("mfa code required")
	ErrInvalidRefreshToken = errors.New("invalid refresh token")
)

// TokenIssuer is the signing half of the token service.
type TokenIssuer interface {
	IssueAccess(userID int64, email, role string) (string, error)
	IssueRefresh(userID int64) (string, error)
	AccessTTL() time.Duration
}

// TokenVerifier is the verifying half of the token service.
type TokenVerifier interface {
	AccessVerifier
	VerifyRefresh(token string) (jwtx.RefreshClaims, error)
}

// AuthService implements login, refresh and logout on top of the
// credentials store, the token service and the revocation registry.
type AuthService struct {
	Credentials *Credentials
	Revocations *RevocationRegistry
	MFA         *MFAService
	Issuer      TokenIssuer
	Verifier    TokenVerifier
}

// Login checks the password and, once MFA is enabled, the TOTP code, then
// issues a token pair. The refresh token replaces any previous one.
func (s *AuthService) Login(ctx context.Context, email, password, otp string) (domain.TokenPair, error) {
	log := slogx.FromContext(ctx)

	user, err := s.Credentials.Authenticate(ctx, email, password)
	if err != nil {
		return domain.TokenPair{}, err
	}

	if user.MFAEnabled {
		if otp == "" {
			return domain.TokenPair{}, ErrMFARequired
		}
		if err := s.MFA.Validate(ctx, user.ID, otp); err != nil {
			return domain.TokenPair{}, err
		}
	}

	pair, refresh, err := s.issue(user)
	if err != nil {
		return domain.TokenPair{}, err
	}
	if err := s.Credentials.SetRefreshToken(ctx, user.Email, refresh); err != nil {
		return domain.TokenPair{}, fmt.Errorf("store refresh token: %w", err)
	}

	log.Info("user logged in", "user_id", user.ID, "mfa", user.MFAEnabled)
	return pair, nil
}

// Refresh exchanges a refresh token for a new pair. The presented token must
// be the user's live refresh token; it is rotated out and revoked, so each
// refresh token works at most once.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (domain.TokenPair, error) {
	claims, err := s.Verifier.VerifyRefresh(refreshToken)
	if err != nil {
		return domain.TokenPair{}, ErrInvalidRefreshToken
	}

	revoked, err := s.Revocations.IsRevoked(ctx, refreshToken)
	if err != nil {
		return domain.TokenPair{}, fmt.Errorf("revocation lookup: %w", err)
	}
	if revoked {
		return domain.TokenPair{}, ErrInvalidRefreshToken
	}

	user, err := s.Credentials.FindByID(ctx, claims.UserID)
	if errors.Is(err, store.ErrNotFound) {
		return domain.TokenPair{}, ErrInvalidRefreshToken
	}
	if err != nil {
		return domain.TokenPair{}, fmt.Errorf("lookup user: %w", err)
	}

	pair, next, err := s.issue(user)
	if err != nil {
		return domain.TokenPair{}, err
	}

	err = s.Credentials.RotateRefreshToken(ctx, user.ID, refreshToken, next)
	if errors.Is(err, store.ErrNotFound) {
		return domain.TokenPair{}, ErrInvalidRefreshToken
	}
	if err != nil {
		return domain.TokenPair{}, fmt.Errorf("rotate refresh token: %w", err)
	}

	if err := s.Revocations.Revoke(ctx, refreshToken, claims.Expiry()); err != nil {
		return domain.TokenPair{}, fmt.Errorf("revoke refresh token: %w", err)
	}
	return pair, nil
}

// Logout revokes the presented access token and clears the owner's refresh
// token. Tokens that are already revoked or fail verification are unusable
// and are accepted without touching the owner. A verified token whose owner
// no longer exists yields ErrForbidden.
func (s *AuthService) Logout(ctx context.Context, accessToken string) error {
	log := slogx.FromContext(ctx)

	revoked, err := s.Revocations.IsRevoked(ctx, accessToken)
	if err != nil {
		return fmt.Errorf("revocation lookup: %w", err)
	}
	if revoked {
		log.Debug("logout with revoked token")
		return nil
	}

	claims, err := s.Verifier.VerifyAccess(accessToken)
	if err != nil {
		log.Debug("logout with unverifiable token", "reason", err)
		return nil
	}

	if err := s.Revocations.Revoke(ctx, accessToken, claims.Expiry()); err != nil {
		return fmt.Errorf("revoke access token: %w", err)
	}

	err = s.Credentials.ClearRefreshToken(ctx, claims.Email)
	if errors.Is(err, store.ErrNotFound) {
		return ErrForbidden
	}
	if err != nil {
		return fmt.Errorf("clear refresh token: %w", err)
	}

	log.Info("user logged out", "user_id", claims.UserID)
	return nil
}

func (s *AuthService) issue(user domain.User) (domain.TokenPair, string, error) {
	access, err := s.Issuer.IssueAccess(user.ID, user.Email, user.Role.String())
	if err != nil {
		return domain.TokenPair{}, "", fmt.Errorf("issue access token: %w", err)
	}
	refresh, err := s.Issuer.IssueRefresh(user.ID)
	if err != nil {
		return domain.TokenPair{}, "", fmt.Errorf("issue refresh token: %w", err)
	}

	return domain.TokenPair{
		AccessToken:  access,
		RefreshToken: refresh,
		TokenType:    domain.TokenType,
		ExpiresIn:    int64(s.Issuer.AccessTTL().Seconds()),
	}, refresh, nil
}
