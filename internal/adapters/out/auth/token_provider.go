// Package auth provides the JWT implementation of the token provider port.
// Tokens are HS256 signed, carry the user ID as subject and an admin flag,
// and expire after a configured lifetime.
package auth

import (
	"time"

	"shipments/internal/core/domain/model/kernel"
	"shipments/internal/core/ports"
	"shipments/internal/pkg/errs"

	"github.com/golang-jwt/jwt/v5"
)

// accessClaims is the signed payload of an access token.
type accessClaims struct {
	IsAdmin bool `json:"is_admin"`
	jwt.RegisteredClaims
}

// JWTTokenProvider issues and verifies HS256 signed access tokens.
type JWTTokenProvider struct {
	secret []byte
	ttl    time.Duration
}

// NewJWTTokenProvider creates a token provider with the given signing secret
// and token lifetime.
func NewJWTTokenProvider(secret string, ttl time.Duration) (*JWTTokenProvider, error) {
	if secret == "" {
		return nil, errs.NewValueIsRequiredError("secret")
	}
	if ttl <= 0 {
		return nil, errs.NewValueIsInvalidError("ttl")
	}

	return &JWTTokenProvider{
		secret: []byte(secret),
		ttl:    ttl,
	}, nil
}

// Issue creates a signed token embedding the claims.
func (p *JWTTokenProvider) Issue(claims ports.Claims) (string, error) {
	if err := claims.UserID.Validate(); err != nil {
		return "", err
	}

	now := time.Now().UTC()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, accessClaims{
		IsAdmin: claims.IsAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   claims.UserID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(p.ttl)),
		},
	})

	return token.SignedString(p.secret)
}

// Verify checks the token's signature and expiry and returns its claims.
// Any parse, signature or expiry failure comes back as an access-denied
// error; the transport layer answers 401 without further inspection.
func (p *JWTTokenProvider) Verify(tokenString string) (ports.Claims, error) {
	var claims accessClaims
	_, err := jwt.ParseWithClaims(tokenString, &claims,
		func(_ *jwt.Token) (any, error) { return p.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return ports.Claims{}, errs.NewAccessDeniedErrorWithCause("token", "api", err)
	}

	userID, err := kernel.UUIDFromString(claims.Subject)
	if err != nil {
		return ports.Claims{}, errs.NewAccessDeniedErrorWithCause("token", "api", err)
	}

	return ports.Claims{UserID: userID, IsAdmin: claims.IsAdmin}, nil
}
