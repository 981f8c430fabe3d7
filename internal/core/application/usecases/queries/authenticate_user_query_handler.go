package queries

import (
	"context"

	"shipments/internal/core/domain/model/kernel"
	"shipments/internal/core/ports"
	"shipments/internal/pkg/errs"
	"shipments/internal/pkg/password"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AuthenticateUserQueryHandler verifies login credentials and issues tokens.
// An unknown email and a wrong password both come back as access denied so
// the response does not reveal which accounts exist.
type AuthenticateUserQueryHandler struct {
	db            *gorm.DB
	tokenProvider ports.TokenProvider
}

// NewAuthenticateUserQueryHandler creates a handler for login queries.
// Requires a GORM database connection and the token provider that signs
// access tokens.
func NewAuthenticateUserQueryHandler(db *gorm.DB, tokenProvider ports.TokenProvider) AuthenticateUserQueryHandler {
	return AuthenticateUserQueryHandler{db: db, tokenProvider: tokenProvider}
}

// Handle executes the login.
// Returns the signed token and profile on success and an access-denied
// error for any credential failure.
func (h AuthenticateUserQueryHandler) Handle(
	ctx context.Context, query AuthenticateUserQuery,
) (AuthenticateUserQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return AuthenticateUserQueryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT id, email, password_hash, first_name, last_name, is_admin
		FROM users
		WHERE email = ?
	`, query.Email()).Rows()
	if err != nil {
		return AuthenticateUserQueryResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return AuthenticateUserQueryResponse{}, err
		}
		return AuthenticateUserQueryResponse{}, errs.NewAccessDeniedError("credentials", query.Email())
	}

	var id uuid.UUID
	var resp AuthenticateUserQueryResponse
	var passwordHash string
	if err = rows.Scan(
		&id, &resp.Email, &passwordHash, &resp.FirstName, &resp.LastName, &resp.IsAdmin,
	); err != nil {
		return AuthenticateUserQueryResponse{}, err
	}

	if !password.Verify(passwordHash, query.Password()) {
		return AuthenticateUserQueryResponse{}, errs.NewAccessDeniedError("credentials", query.Email())
	}

	if resp.UserID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return AuthenticateUserQueryResponse{}, err
	}

	resp.Token, err = h.tokenProvider.Issue(ports.Claims{UserID: resp.UserID, IsAdmin: resp.IsAdmin})
	if err != nil {
		return AuthenticateUserQueryResponse{}, err
	}

	return resp, nil
}
