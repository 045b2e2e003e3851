package kernel

import (
	"errors"
	"strings"
	"unicode/utf8"

	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

const (
	AddressMinLength = 5
	AddressMaxLength = 500
)

var ErrAddressIsNotConstructed = errors.New("Address must be created via NewAddress")

// Address is a trimmed free-text delivery address.
type Address struct {
	value string
	guard guard.ConstructorGuard
}

func NewAddress(raw string) (Address, error) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return Address{}, errs.NewValueIsRequiredError("address")
	}

	if n := utf8.RuneCountInString(value); n < AddressMinLength || n > AddressMaxLength {
		return Address{}, errs.NewValueIsOutOfRangeError("address length", n, AddressMinLength, AddressMaxLength)
	}

	return Address{value: value, guard: guard.NewConstructorGuard()}, nil
}

func (a Address) Validate() error {
	return a.guard.Validate(ErrAddressIsNotConstructed)
}

func (a Address) String() string {
	return a.value
}
