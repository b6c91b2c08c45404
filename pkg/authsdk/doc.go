/*
Package authsdk provides a client SDK for the charauth service, together with
the request, response and error types the service itself writes.

# SDKClient vs Session

SDKClient covers the public endpoints and creates sessions:

	client := authsdk.NewSDKClient("http://localhost:3000")

	health, err := client.GetLiveness(ctx)
	user, err := client.Register(ctx, "ada@example.com", "hunter22")
	session, err := client.Login(ctx, "ada@example.com", "hunter22", "")

Session carries the token pair and refreshes the access token shortly before
it expires. Each refresh rotates the refresh token, so a Session should not
be copied between processes.

	me, err := session.Me(ctx)
	c, err := session.CreateCharacter(ctx, authsdk.CharacterRequest{Name: "Geralt", LastName: "ofRivia"})
	err = session.Logout(ctx)

# Errors

Failed calls return an *APIError. The predefined values match with
errors.Is on status code and error code:

	_, err := client.Login(ctx, email, password, "")
	if errors.Is(err, authsdk.ErrMFARequired) {
		session, err = client.Login(ctx, email, password, otp)
	}
*/
package authsdk
