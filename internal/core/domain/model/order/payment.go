package order

import (
	"fmt"

	"foodorder/internal/pkg/errs"
)

// PaymentMethod is how the customer intends to pay.
type PaymentMethod string

const (
	PaymentCash        PaymentMethod = "cash"
	PaymentCardCourier PaymentMethod = "card_courier"
	PaymentTransfer    PaymentMethod = "transfer"
)

func ParsePaymentMethod(s string) (PaymentMethod, error) {
	m := PaymentMethod(s)
	if err := m.Validate(); err != nil {
		return "", err
	}
	return m, nil
}

func (m PaymentMethod) Validate() error {
	switch m {
	case PaymentCash, PaymentCardCourier, PaymentTransfer:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("payment method", fmt.Errorf("%q is not supported", string(m)))
	}
}

// PaymentStatus is recorded at creation and not changed by the lifecycle operations.
type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "pending"
	PaymentPaid     PaymentStatus = "paid"
	PaymentFailed   PaymentStatus = "failed"
	PaymentRefunded PaymentStatus = "refunded"
)

func (s PaymentStatus) Validate() error {
	switch s {
	case PaymentPending, PaymentPaid, PaymentFailed, PaymentRefunded:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("payment status", fmt.Errorf("%q is not supported", string(s)))
	}
}
