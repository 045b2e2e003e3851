// Package staffrepo reads users and their roles for courier eligibility checks.
package staffrepo

import (
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/staff"

	"github.com/google/uuid"
)

// UserDTO is the users table.
type UserDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"type:varchar(255);not null"`
	Role      string    `gorm:"type:varchar(20);not null;index"`
	IsActive  bool      `gorm:"not null"`
	CreatedAt time.Time `gorm:"not null"`
}

func (UserDTO) TableName() string {
	return "users"
}

func fromDomain(user *staff.User) UserDTO {
	return UserDTO{
		ID:       user.ID().Bytes(),
		Name:     user.Name(),
		Role:     user.Role().String(),
		IsActive: user.IsActive(),
	}
}

func toDomain(dto UserDTO) (*staff.User, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	role, err := staff.ParseRole(dto.Role)
	if err != nil {
		return nil, err
	}
	return staff.NewUser(id, dto.Name, role, dto.IsActive)
}
