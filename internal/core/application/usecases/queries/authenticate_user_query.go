package queries

import (
	"errors"
	"strings"

	"shipments/internal/core/domain/model/kernel"
	"shipments/internal/pkg/errs"
	"shipments/internal/pkg/guard"
)

var (
	ErrAuthenticateUserQueryIsNotConstructed = errors.New(
		"AuthenticateUserQuery must be created via NewAuthenticateUserQuery constructor",
	)
)

// AuthenticateUserQuery exchanges login credentials for a signed access
// token. A read operation: no state changes on either success or failure.
type AuthenticateUserQuery struct {
	email    string
	password string

	guard guard.ConstructorGuard
}

// NewAuthenticateUserQuery creates a login query.
// Requires both credentials to be present; their correctness is checked by
// the handler.
func NewAuthenticateUserQuery(email, password string) (AuthenticateUserQuery, error) {
	if strings.TrimSpace(email) == "" {
		return AuthenticateUserQuery{}, errs.NewValueIsRequiredError("email")
	}
	if password == "" {
		return AuthenticateUserQuery{}, errs.NewValueIsRequiredError("password")
	}

	return AuthenticateUserQuery{
		email:    email,
		password: password,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrAuthenticateUserQueryIsNotConstructed if validation fails.
func (q AuthenticateUserQuery) Validate() error {
	return q.guard.Validate(ErrAuthenticateUserQueryIsNotConstructed)
}

// Email returns the login email.
func (q AuthenticateUserQuery) Email() string {
	return q.email
}

// Password returns the plain text password to verify.
func (q AuthenticateUserQuery) Password() string {
	return q.password
}

// AuthenticateUserQueryResponse carries the issued token and the profile
// fields the client shows after login.
type AuthenticateUserQueryResponse struct {
	Token     string
	UserID    kernel.UUID
	Email     string
	FirstName string
	LastName  string
	IsAdmin   bool
}
