package domain

import "time"

// Principal is the identity attached to an authenticated request. It is
// built from verified access token claims and lives only as long as the
// request.
type Principal struct {
	ID        int64
	Email     string
	Role      Role
	Token     string // raw bearer token, needed to revoke it on logout
	ExpiresAt time.Time
}
