// Package userrepo provides data transfer objects and mapping functions for
// user account persistence.
package userrepo

import (
	"time"

	"shipments/internal/core/domain/model/kernel"
	"shipments/internal/core/domain/model/user"

	"github.com/google/uuid"
)

// UserDTO represents the database structure for persisting user accounts.
// The email carries a unique index; the constraint is the only place
// duplicate registrations are decided.
type UserDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email        string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	FirstName    string    `gorm:"type:varchar(128)"`
	LastName     string    `gorm:"type:varchar(128)"`
	IsAdmin      bool      `gorm:"not null;default:false"`
	CreatedAt    time.Time `gorm:"type:timestamptz"`
}

// TableName specifies the database table name for user entities.
func (UserDTO) TableName() string {
	return "users"
}

func fromDomain(account *user.User) UserDTO {
	return UserDTO{
		ID:           account.ID().Bytes(),
		Email:        account.Email(),
		PasswordHash: account.PasswordHash(),
		FirstName:    account.FirstName(),
		LastName:     account.LastName(),
		IsAdmin:      account.IsAdmin(),
		CreatedAt:    account.CreatedAt(),
	}
}

func toDomain(dto UserDTO) (*user.User, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return user.RestoreUser(
		id, dto.Email, dto.PasswordHash, dto.FirstName, dto.LastName, dto.IsAdmin, dto.CreatedAt,
	)
}
