package commands

import (
	"errors"
	"strings"

	"shipments/internal/pkg/errs"
	"shipments/internal/pkg/guard"
	"shipments/internal/pkg/password"
)

var (
	ErrRegisterUserCommandIsNotConstructed = errors.New(
		"RegisterUserCommand must be created via NewRegisterUserCommand constructor",
	)
)

// RegisterUserCommand represents a request to create a new user account.
// Carries the plain text password; hashing happens in the handler so the
// command stays cheap to construct and test.
type RegisterUserCommand struct { //nolint:recvcheck //using for validation
	email     string
	password  string
	firstName string
	lastName  string

	guard guard.ConstructorGuard
}

// NewRegisterUserCommand creates a command to register a user.
// Validates that email, name fields are present and that the password
// meets the strength requirements.
func NewRegisterUserCommand(email, plainPassword, firstName, lastName string) (RegisterUserCommand, error) {
	cmd := RegisterUserCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setEmail(email),
		cmd.setPassword(plainPassword),
		cmd.setFirstName(firstName),
		cmd.setLastName(lastName),
	); err != nil {
		return RegisterUserCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrRegisterUserCommandIsNotConstructed if validation fails.
func (c RegisterUserCommand) Validate() error {
	return c.guard.Validate(ErrRegisterUserCommandIsNotConstructed)
}

// Email returns the new account's email address.
func (c RegisterUserCommand) Email() string {
	return c.email
}

// Password returns the plain text password to be hashed.
func (c RegisterUserCommand) Password() string {
	return c.password
}

// FirstName returns the user's first name.
func (c RegisterUserCommand) FirstName() string {
	return c.firstName
}

// LastName returns the user's last name.
func (c RegisterUserCommand) LastName() string {
	return c.lastName
}

func (c *RegisterUserCommand) setEmail(email string) error {
	if strings.TrimSpace(email) == "" {
		return errs.NewValueIsRequiredError("email")
	}
	c.email = email
	return nil
}

func (c *RegisterUserCommand) setPassword(plainPassword string) error {
	if err := password.ValidateStrength(plainPassword); err != nil {
		return err
	}
	c.password = plainPassword
	return nil
}

func (c *RegisterUserCommand) setFirstName(firstName string) error {
	if strings.TrimSpace(firstName) == "" {
		return errs.NewValueIsRequiredError("firstName")
	}
	c.firstName = firstName
	return nil
}

func (c *RegisterUserCommand) setLastName(lastName string) error {
	if strings.TrimSpace(lastName) == "" {
		return errs.NewValueIsRequiredError("lastName")
	}
	c.lastName = lastName
	return nil
}
