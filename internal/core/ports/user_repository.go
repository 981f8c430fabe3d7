package ports

import (
	"context"

	"shipments/internal/core/domain/model/kernel"
	"shipments/internal/core/domain/model/user"
)

// UserRepository defines the persistence contract for user accounts.
type UserRepository interface {
	// Add persists a new account. Returns an error wrapping errs.ErrConflict
	// if the email is already registered.
	Add(ctx context.Context, aggregate *user.User) error

	// Get retrieves an account by its identifier.
	// Returns an error wrapping errs.ErrObjectNotFound if absent.
	Get(ctx context.Context, id kernel.UUID) (*user.User, error)

	// GetByEmail retrieves an account by its unique login email.
	// Returns an error wrapping errs.ErrObjectNotFound if absent.
	GetByEmail(ctx context.Context, email string) (*user.User, error)
}
