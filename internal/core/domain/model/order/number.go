package order

import (
	"errors"
	"fmt"
	"regexp"
	"time"

	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

var (
	ErrNumberIsNotConstructed = errors.New("Number must be created via NewNumber or ParseNumber")

	numberPattern = regexp.MustCompile(`^\d{8}-\d{4,}$`)
)

// Number is the human-facing order identifier "YYYYMMDD-NNNN": the creation date
// in the business timezone followed by the per-day sequence, zero padded to four
// digits. Sequences past 9999 simply grow wider.
type Number struct {
	value string
	guard guard.ConstructorGuard
}

// NewNumber formats the sequence reserved for day. The caller passes day already
// converted to the business timezone.
func NewNumber(day time.Time, sequence int) (Number, error) {
	if day.IsZero() {
		return Number{}, errs.NewValueIsRequiredError("order number date")
	}
	if sequence < 1 {
		return Number{}, errs.NewValueIsInvalidErrorWithCause("order number sequence", fmt.Errorf("%d is not positive", sequence))
	}

	return Number{
		value: fmt.Sprintf("%s-%04d", day.Format("20060102"), sequence),
		guard: guard.NewConstructorGuard(),
	}, nil
}

// ParseNumber validates the format of a number read from storage or a request.
func ParseNumber(s string) (Number, error) {
	if !numberPattern.MatchString(s) {
		return Number{}, errs.NewValueIsInvalidErrorWithCause("order number", fmt.Errorf("%q does not match YYYYMMDD-NNNN", s))
	}
	if _, err := time.Parse("20060102", s[:8]); err != nil {
		return Number{}, errs.NewValueIsInvalidErrorWithCause("order number", err)
	}
	return Number{value: s, guard: guard.NewConstructorGuard()}, nil
}

func (n Number) Validate() error {
	return n.guard.Validate(ErrNumberIsNotConstructed)
}

func (n Number) String() string {
	return n.value
}
