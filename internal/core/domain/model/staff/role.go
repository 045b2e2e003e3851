package staff

import (
	"fmt"

	"foodorder/internal/pkg/errs"
)

// Role is the closed set of user roles. Any branching on role goes through this
// type, never through free-form string comparison.
type Role int

const (
	RoleUnknown Role = iota
	RoleClient
	RoleAdmin
	RoleManager
	RoleKitchen
	RolePacker
	RoleCourier
)

var roleNames = map[Role]string{
	RoleClient:  "client",
	RoleAdmin:   "admin",
	RoleManager: "manager",
	RoleKitchen: "kitchen",
	RolePacker:  "packer",
	RoleCourier: "courier",
}

func ParseRole(name string) (Role, error) {
	for r, n := range roleNames {
		if n == name {
			return r, nil
		}
	}
	return RoleUnknown, errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a valid role", name))
}

func (r Role) Validate() error {
	if _, ok := roleNames[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

func (r Role) String() string {
	if name, ok := roleNames[r]; ok {
		return name
	}
	return "unknown"
}

// IsStaff reports whether the role belongs to back-office personnel rather than a customer.
func (r Role) IsStaff() bool {
	switch r {
	case RoleAdmin, RoleManager, RoleKitchen, RolePacker, RoleCourier:
		return true
	case RoleUnknown, RoleClient:
		return false
	}
	return false
}
