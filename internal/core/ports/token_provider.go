package ports

import (
	"shipments/internal/core/domain/model/kernel"
)

// Claims is the authenticated identity carried by an access token.
// The core trusts these values verbatim; authentication itself happens
// at the boundary.
type Claims struct {
	UserID  kernel.UUID
	IsAdmin bool
}

// TokenProvider issues and verifies access tokens for authenticated calls.
type TokenProvider interface {
	// Issue creates a signed token embedding the claims.
	Issue(claims Claims) (string, error)

	// Verify checks the token's signature and expiry and returns its claims.
	// Returns an error wrapping errs.ErrAccessDenied for any invalid token.
	Verify(token string) (Claims, error)
}
