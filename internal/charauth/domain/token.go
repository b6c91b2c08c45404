package domain

import "time"

// TokenType is the scheme clients must use when presenting AccessToken.
const TokenType = "Bearer"

// TokenPair is returned by login and refresh.
type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	TokenType    string `json:"tokenType"`
	ExpiresIn    int64  `json:"expiresIn"` // access token lifetime in seconds
}

// RevokedToken is one entry of the revocation registry. Only the token's
// fingerprint is kept, together with the token's own expiry so the entry
// can be dropped once the token would be rejected as expired anyway.
type RevokedToken struct {
	TokenHash string
	ExpiresAt time.Time
	RevokedAt time.Time
}
