// Package user contains the account aggregate consumed by the booking flows.
// The core only needs a user's identity and admin flag; registration and
// credential storage live here so the auth surface has an owner.
package user

import (
	"errors"
	"net/mail"
	"time"

	"shipments/internal/core/domain/model/kernel"
	"shipments/internal/pkg/errs"
)

// ErrUserIsNotConstructed is returned when a User instance was not created
// through NewUser or RestoreUser.
var ErrUserIsNotConstructed = errors.New("User must be created via NewUser or RestoreUser")

// User is a registered account. Shipments reference users by ID only;
// the admin flag gates the administrative operations.
type User struct {
	id           kernel.UUID
	email        string
	passwordHash string
	firstName    string
	lastName     string
	isAdmin      bool
	createdAt    time.Time

	isConstructed bool
}

// NewUser registers a new account. Accounts are never admin-flagged at
// registration; the flag is granted out of band. The password must already
// be hashed - this type never sees plaintext credentials.
func NewUser(id kernel.UUID, email, passwordHash, firstName, lastName string) (*User, error) {
	u := &User{
		isAdmin:       false,
		createdAt:     time.Now().UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		u.setID(id),
		u.setEmail(email),
		u.setPasswordHash(passwordHash),
		u.setName(firstName, lastName),
	); err != nil {
		return nil, err
	}

	return u, nil
}

// RestoreUser reconstructs an account from persistence.
func RestoreUser(
	id kernel.UUID,
	email, passwordHash, firstName, lastName string,
	isAdmin bool,
	createdAt time.Time,
) (*User, error) {
	u := &User{
		isAdmin:       isAdmin,
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		u.setID(id),
		u.setEmail(email),
		u.setPasswordHash(passwordHash),
		u.setName(firstName, lastName),
	); err != nil {
		return nil, err
	}

	return u, nil
}

// Validate ensures the User instance was properly constructed.
func (u *User) Validate() error {
	if u == nil || !u.isConstructed {
		return ErrUserIsNotConstructed
	}
	return nil
}

// ID returns the account identifier.
func (u *User) ID() kernel.UUID { return u.id }

// Email returns the unique login email.
func (u *User) Email() string { return u.email }

// PasswordHash returns the stored bcrypt hash.
func (u *User) PasswordHash() string { return u.passwordHash }

// FirstName returns the account holder's first name.
func (u *User) FirstName() string { return u.firstName }

// LastName returns the account holder's last name.
func (u *User) LastName() string { return u.lastName }

// IsAdmin reports whether the account may perform administrative operations.
func (u *User) IsAdmin() bool { return u.isAdmin }

// CreatedAt returns the registration timestamp.
func (u *User) CreatedAt() time.Time { return u.createdAt }

func (u *User) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	u.id = id
	return nil
}

func (u *User) setEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("email", err)
	}
	u.email = email
	return nil
}

func (u *User) setPasswordHash(passwordHash string) error {
	if passwordHash == "" {
		return errs.NewValueIsRequiredError("password hash")
	}
	u.passwordHash = passwordHash
	return nil
}

func (u *User) setName(firstName, lastName string) error {
	if firstName == "" {
		return errs.NewValueIsRequiredError("first name")
	}
	if lastName == "" {
		return errs.NewValueIsRequiredError("last name")
	}
	u.firstName = firstName
	u.lastName = lastName
	return nil
}
