package staff

import (
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

var (
	ErrNameIsRequired       = errs.NewValueIsRequiredError("name")
	ErrUserIsNotConstructed = errors.New("User must be created via NewUser constructor")
)

// User is a person known to the service: a customer or a staff member.
// The order lifecycle only reads users, to check courier eligibility.
type User struct {
	id       kernel.UUID
	name     string
	role     Role
	isActive bool

	guard guard.ConstructorGuard
}

// NewUser validates identity, name and role.
func NewUser(id kernel.UUID, name string, role Role, isActive bool) (*User, error) {
	if err := errors.Join(id.Validate(), role.Validate()); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, ErrNameIsRequired
	}

	return &User{
		id:       id,
		name:     name,
		role:     role,
		isActive: isActive,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (u *User) Validate() error {
	if u == nil {
		return ErrUserIsNotConstructed
	}
	return u.guard.Validate(ErrUserIsNotConstructed)
}

func (u *User) ID() kernel.UUID { return u.id }
func (u *User) Name() string    { return u.name }
func (u *User) Role() Role      { return u.role }
func (u *User) IsActive() bool  { return u.isActive }

// IsActiveCourier reports whether the user may be assigned to deliver orders.
func (u *User) IsActiveCourier() bool {
	return u.isActive && u.role == RoleCourier
}
