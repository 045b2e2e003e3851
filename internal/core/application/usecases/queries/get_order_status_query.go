package queries

import (
	"errors"
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/pkg/guard"
)

var ErrGetOrderStatusQueryIsNotConstructed = errors.New(
	"GetOrderStatusQuery must be created via NewGetOrderStatusQuery constructor",
)

// GetOrderStatusQuery is the public status lookup: a caller who knows the order
// number and the delivery phone may see where the order is.
type GetOrderStatusQuery struct {
	number order.Number
	phone  kernel.Phone

	guard guard.ConstructorGuard
}

func NewGetOrderStatusQuery(number, phone string) (GetOrderStatusQuery, error) {
	parsedNumber, numberErr := order.ParseNumber(number)
	parsedPhone, phoneErr := kernel.NewPhone(phone)
	if err := errors.Join(numberErr, phoneErr); err != nil {
		return GetOrderStatusQuery{}, err
	}

	return GetOrderStatusQuery{
		number: parsedNumber,
		phone:  parsedPhone,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (q GetOrderStatusQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderStatusQueryIsNotConstructed)
}

func (q GetOrderStatusQuery) Number() order.Number { return q.number }
func (q GetOrderStatusQuery) Phone() kernel.Phone  { return q.phone }

// GetOrderStatusQueryResponse exposes no customer data beyond what the caller
// already supplied.
type GetOrderStatusQueryResponse struct {
	Number    string
	Status    order.Status
	Total     kernel.Money
	CreatedAt time.Time
	UpdatedAt time.Time
}
