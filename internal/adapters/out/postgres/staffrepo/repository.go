package staffrepo

import (
	"context"
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/staff"
	"foodorder/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormStaffDirectory implements ports.StaffDirectory using GORM.
type GormStaffDirectory struct {
	db *gorm.DB
}

func NewGormStaffDirectory(db *gorm.DB) *GormStaffDirectory {
	return &GormStaffDirectory{db: db}
}

// Add registers a user. User management lives elsewhere; this exists for
// seeding and tests.
func (r *GormStaffDirectory) Add(ctx context.Context, user *staff.User) error {
	if err := user.Validate(); err != nil {
		return err
	}

	dto := fromDomain(user)
	return r.db.WithContext(ctx).Create(&dto).Error
}

func (r *GormStaffDirectory) Get(ctx context.Context, id kernel.UUID) (*staff.User, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto UserDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("user", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
