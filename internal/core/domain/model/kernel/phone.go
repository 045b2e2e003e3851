package kernel

import (
	"errors"
	"fmt"
	"strings"

	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

const (
	phoneMinDigits = 10
	phoneMaxDigits = 15
)

var ErrPhoneIsNotConstructed = errors.New("Phone must be created via NewPhone")

// Phone is a delivery phone number normalized to "+<digits>".
//
// Normalization keeps only digits, requires 10 to 15 of them and rewrites an
// 11-digit national number starting with 8 to the international 7 prefix:
//
//	"8 (912) 345-67-89" -> "+79123456789"
type Phone struct {
	value string
	guard guard.ConstructorGuard
}

func NewPhone(raw string) (Phone, error) {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	digits := b.String()

	if len(digits) < phoneMinDigits || len(digits) > phoneMaxDigits {
		return Phone{}, errs.NewValueIsInvalidErrorWithCause(
			"phone",
			fmt.Errorf("expected %d to %d digits, got %d", phoneMinDigits, phoneMaxDigits, len(digits)),
		)
	}

	if len(digits) == 11 && digits[0] == '8' {
		digits = "7" + digits[1:]
	}

	return Phone{value: "+" + digits, guard: guard.NewConstructorGuard()}, nil
}

func (p Phone) Validate() error {
	return p.guard.Validate(ErrPhoneIsNotConstructed)
}

func (p Phone) String() string {
	return p.value
}

func (p Phone) IsEqual(other Phone) bool {
	return p.value == other.value
}
