//go:build e2e

package charauth_test

import (
	"testing"
	"time"

	"github.com/aussiebroadwan/charauth/pkg/authsdk"
	"github.com/pquerna/otp/totp"
	"github.com/stretchr/testify/require"
)

func TestTOTPEnrollmentAndLogin(t *testing.T) {
	client := authsdk.NewSDKClient(setupContainer(t, nil))

	const email, password = "mfa@example.com", "mfa-password"
	session := registerAndLogin(t, client, email, password)

	enroll, err := session.EnrollTOTP(t.Context())
	require.NoError(t, err)
	require.NotEmpty(t, enroll.Secret)
	require.Contains(t, enroll.URL, "otpauth://totp/")

	code, err := totp.GenerateCode(enroll.Secret, time.Now())
	require.NoError(t, err)
	require.NoError(t, session.VerifyTOTP(t.Context(), code))

	err = session.VerifyTOTP(t.Context(), code)
	assertAPIError(t, err, authsdk.ErrMFAAlreadyEnabled)

	me, err := session.Me(t.Context())
	require.NoError(t, err)
	require.True(t, me.MFAEnabled)

	// Password alone is no longer enough.
	_, err = client.Login(t.Context(), email, password, "")
	assertAPIError(t, err, authsdk.ErrMFARequired)

	code, err = totp.GenerateCode(enroll.Secret, time.Now())
	require.NoError(t, err)
	_, err = client.Login(t.Context(), email, password, code)
	require.NoError(t, err)
}
