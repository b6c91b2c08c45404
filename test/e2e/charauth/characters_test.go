//go:build e2e

package charauth_test

import (
	"testing"

	"github.com/aussiebroadwan/charauth/pkg/authsdk"
	"github.com/stretchr/testify/require"
)

// TestCharacterLifecycle walks a character through every role:
// a user creates it, an admin edits and deletes it, and the user is
// refused the admin-only operations along the way.
func TestCharacterLifecycle(t *testing.T) {
	client := authsdk.NewSDKClient(setupContainer(t, nil))

	user := registerAndLogin(t, client, "player@example.com", "player-password")
	admin := adminSession(t, client)

	created, err := user.CreateCharacter(t.Context(), authsdk.CharacterRequest{Name: "Geralt", LastName: "of Rivia"})
	require.NoError(t, err)
	require.NotZero(t, created.ID)

	list, err := user.ListCharacters(t.Context())
	require.NoError(t, err)
	require.Len(t, list, 1)

	_, err = user.UpdateCharacter(t.Context(), created.ID, authsdk.CharacterRequest{Name: "Cirilla", LastName: "of Cintra"})
	assertAPIError(t, err, authsdk.ErrInsufficientPermissions)

	err = user.DeleteCharacter(t.Context(), created.ID)
	assertAPIError(t, err, authsdk.ErrInsufficientPermissions)

	updated, err := admin.UpdateCharacter(t.Context(), created.ID, authsdk.CharacterRequest{Name: "Cirilla", LastName: "of Cintra"})
	require.NoError(t, err)
	require.Equal(t, "Cirilla", updated.Name)

	require.NoError(t, admin.DeleteCharacter(t.Context(), created.ID))

	_, err = user.GetCharacter(t.Context(), created.ID)
	assertAPIError(t, err, authsdk.ErrNotFound)
}

func TestCharactersRequireToken(t *testing.T) {
	client := authsdk.NewSDKClient(setupContainer(t, nil))

	anonymous := client.NewSessionFromTokens("", "", 3600)
	_, err := anonymous.ListCharacters(t.Context())
	assertAPIError(t, err, authsdk.ErrMissingToken)

	forged := client.NewSessionFromTokens("not.a.jwt", "", 3600)
	_, err = forged.ListCharacters(t.Context())
	assertAPIError(t, err, authsdk.ErrInvalidToken)
}
