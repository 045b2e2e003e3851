// Package orderrepo persists order aggregates: the order row, its item snapshots
// and its status audit log.
package orderrepo

import (
	"fmt"
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// OrderDTO is the orders table. Each status after NEW has its own timestamp
// column, set once when the status is first entered.
type OrderDTO struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	OrderNumber string     `gorm:"size:20;not null;uniqueIndex"`
	CustomerID  uuid.UUID  `gorm:"type:uuid;not null;index"`
	CourierID   *uuid.UUID `gorm:"type:uuid;index"`
	Status      string     `gorm:"size:20;not null;index"`
	Version     int        `gorm:"not null;default:1"`

	PaymentMethod string `gorm:"size:20;not null"`
	PaymentStatus string `gorm:"size:20;not null"`

	Subtotal       decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	DeliveryFee    decimal.Decimal `gorm:"type:numeric(10,2);not null;default:0"`
	DiscountAmount decimal.Decimal `gorm:"type:numeric(10,2);not null;default:0"`
	Total          decimal.Decimal `gorm:"type:numeric(10,2);not null"`

	DeliveryAddress string  `gorm:"type:text;not null"`
	DeliveryPhone   string  `gorm:"size:20;not null"`
	DeliveryComment *string `gorm:"type:text"`

	ConfirmedAt  *time.Time
	PaidAt       *time.Time
	InProgressAt *time.Time
	ReadyAt      *time.Time
	PackedAt     *time.Time
	AssignedAt   *time.Time
	InDeliveryAt *time.Time
	DeliveredAt  *time.Time
	CancelledAt  *time.Time

	CancellationReason *string    `gorm:"type:text"`
	CancelledByID      *uuid.UUID `gorm:"type:uuid"`

	CreatedAt time.Time `gorm:"not null;index"`
	UpdatedAt time.Time `gorm:"not null"`

	Items []OrderItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

// ModifierSnapshotDTO is one selected modifier option as stored in the item's
// JSON column.
type ModifierSnapshotDTO struct {
	OptionID        uuid.UUID       `json:"option_id"`
	Name            string          `json:"name"`
	PriceAdjustment decimal.Decimal `json:"price_adjustment"`
}

// OrderItemDTO is the order_items table.
type OrderItemDTO struct {
	ID                  uuid.UUID                                 `gorm:"type:uuid;primaryKey"`
	OrderID             uuid.UUID                                 `gorm:"type:uuid;not null;index"`
	Position            int                                       `gorm:"not null"`
	ProductID           uuid.UUID                                 `gorm:"type:uuid;not null"`
	ProductName         string                                    `gorm:"size:255;not null"`
	ProductPrice        decimal.Decimal                           `gorm:"type:numeric(10,2);not null"`
	Quantity            int                                       `gorm:"not null"`
	Modifiers           datatypes.JSONType[[]ModifierSnapshotDTO] `gorm:"type:jsonb"`
	ModifiersPrice      decimal.Decimal                           `gorm:"type:numeric(10,2);not null;default:0"`
	ItemTotal           decimal.Decimal                           `gorm:"type:numeric(10,2);not null"`
	SpecialInstructions *string                                   `gorm:"type:text"`
}

func (OrderItemDTO) TableName() string {
	return "order_items"
}

// StatusLogDTO is the order_status_logs table. OldStatus is NULL for the
// creation entry.
type StatusLogDTO struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	OrderID     uuid.UUID  `gorm:"type:uuid;not null;index"`
	OldStatus   *string    `gorm:"size:20"`
	NewStatus   string     `gorm:"size:20;not null"`
	ChangedByID *uuid.UUID `gorm:"type:uuid"`
	Reason      *string    `gorm:"type:text"`
	CreatedAt   time.Time  `gorm:"not null;index"`
}

func (StatusLogDTO) TableName() string {
	return "order_status_logs"
}

// StatusColumns maps each status after NEW to its timestamp column.
var StatusColumns = map[order.Status]string{
	order.Confirmed:  "confirmed_at",
	order.Paid:       "paid_at",
	order.InProgress: "in_progress_at",
	order.Ready:      "ready_at",
	order.Packed:     "packed_at",
	order.Assigned:   "assigned_at",
	order.InDelivery: "in_delivery_at",
	order.Delivered:  "delivered_at",
	order.Cancelled:  "cancelled_at",
}

func (dto *OrderDTO) statusTimeFields() map[order.Status]**time.Time {
	return map[order.Status]**time.Time{
		order.Confirmed:  &dto.ConfirmedAt,
		order.Paid:       &dto.PaidAt,
		order.InProgress: &dto.InProgressAt,
		order.Ready:      &dto.ReadyAt,
		order.Packed:     &dto.PackedAt,
		order.Assigned:   &dto.AssignedAt,
		order.InDelivery: &dto.InDeliveryAt,
		order.Delivered:  &dto.DeliveredAt,
		order.Cancelled:  &dto.CancelledAt,
	}
}

func fromDomain(o *order.Order) OrderDTO {
	totals := o.Totals()
	delivery := o.Delivery()

	dto := OrderDTO{
		ID:                 o.ID().Bytes(),
		OrderNumber:        o.Number().String(),
		CustomerID:         o.CustomerID().Bytes(),
		CourierID:          uuidPtr(o.CourierID()),
		Status:             o.Status().String(),
		Version:            o.Version(),
		PaymentMethod:      string(o.PaymentMethod()),
		PaymentStatus:      string(o.PaymentStatus()),
		Subtotal:           totals.Subtotal.Decimal(),
		DeliveryFee:        totals.DeliveryFee.Decimal(),
		DiscountAmount:     totals.Discount.Decimal(),
		Total:              totals.Total.Decimal(),
		DeliveryAddress:    delivery.Address.String(),
		DeliveryPhone:      delivery.Phone.String(),
		DeliveryComment:    delivery.Comment,
		CancellationReason: o.CancellationReason(),
		CancelledByID:      uuidPtr(o.CancelledByID()),
		CreatedAt:          o.CreatedAt(),
		UpdatedAt:          o.UpdatedAt(),
	}

	fields := dto.statusTimeFields()
	for s, at := range o.StatusTimes() {
		if field, ok := fields[s]; ok {
			t := at
			*field = &t
		}
	}

	for i, item := range o.Items() {
		dto.Items = append(dto.Items, itemFromDomain(o.ID(), i, item))
	}

	return dto
}

// updateColumns lists every column a lifecycle operation may change.
func updateColumns(o *order.Order) map[string]any {
	columns := map[string]any{
		"status":              o.Status().String(),
		"version":             o.Version(),
		"courier_id":          uuidValue(o.CourierID()),
		"cancellation_reason": o.CancellationReason(),
		"cancelled_by_id":     uuidValue(o.CancelledByID()),
		"updated_at":          o.UpdatedAt(),
	}
	for s, at := range o.StatusTimes() {
		if column, ok := StatusColumns[s]; ok {
			columns[column] = at
		}
	}
	return columns
}

func itemFromDomain(orderID kernel.UUID, position int, item order.Item) OrderItemDTO {
	modifiers := make([]ModifierSnapshotDTO, 0, len(item.Modifiers()))
	for _, m := range item.Modifiers() {
		modifiers = append(modifiers, ModifierSnapshotDTO{
			OptionID:        m.OptionID.Bytes(),
			Name:            m.Name,
			PriceAdjustment: m.PriceAdjustment.Decimal(),
		})
	}

	return OrderItemDTO{
		ID:                  item.ID().Bytes(),
		OrderID:             orderID.Bytes(),
		Position:            position,
		ProductID:           item.ProductID().Bytes(),
		ProductName:         item.ProductName(),
		ProductPrice:        item.UnitPrice().Decimal(),
		Quantity:            item.Quantity(),
		Modifiers:           datatypes.NewJSONType(modifiers),
		ModifiersPrice:      item.ModifiersPrice().Decimal(),
		ItemTotal:           item.Total().Decimal(),
		SpecialInstructions: item.Instructions(),
	}
}

func logFromDomain(l order.StatusLog) StatusLogDTO {
	dto := StatusLogDTO{
		ID:          l.ID().Bytes(),
		OrderID:     l.OrderID().Bytes(),
		NewStatus:   l.NewStatus().String(),
		ChangedByID: uuidPtr(l.ChangedByID()),
		Reason:      l.Reason(),
		CreatedAt:   l.CreatedAt(),
	}
	if old, ok := l.OldStatus(); ok {
		name := old.String()
		dto.OldStatus = &name
	}
	return dto
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}
	courierID, err := kernelPtr(dto.CourierID)
	if err != nil {
		return nil, err
	}
	cancelledByID, err := kernelPtr(dto.CancelledByID)
	if err != nil {
		return nil, err
	}
	number, err := order.ParseNumber(dto.OrderNumber)
	if err != nil {
		return nil, err
	}
	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}
	paymentMethod, err := order.ParsePaymentMethod(dto.PaymentMethod)
	if err != nil {
		return nil, err
	}
	address, err := kernel.NewAddress(dto.DeliveryAddress)
	if err != nil {
		return nil, err
	}
	phone, err := kernel.NewPhone(dto.DeliveryPhone)
	if err != nil {
		return nil, err
	}
	totals, err := totalsToDomain(dto)
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := itemToDomain(itemDTO)
		if itemErr != nil {
			return nil, fmt.Errorf("order %s item %s: %w", dto.OrderNumber, itemDTO.ID, itemErr)
		}
		items = append(items, item)
	}

	statusTimes := make(map[order.Status]time.Time)
	for s, field := range dto.statusTimeFields() {
		if *field != nil {
			statusTimes[s] = **field
		}
	}

	return order.RestoreOrder(order.State{
		ID:            id,
		Number:        number,
		CustomerID:    customerID,
		Status:        status,
		Version:       dto.Version,
		PaymentMethod: paymentMethod,
		PaymentStatus: order.PaymentStatus(dto.PaymentStatus),
		Totals:        totals,
		Delivery: order.Delivery{
			Address: address,
			Phone:   phone,
			Comment: dto.DeliveryComment,
		},
		CourierID:          courierID,
		StatusTimes:        statusTimes,
		CancellationReason: dto.CancellationReason,
		CancelledByID:      cancelledByID,
		Items:              items,
		CreatedAt:          dto.CreatedAt,
		UpdatedAt:          dto.UpdatedAt,
	})
}

func totalsToDomain(dto OrderDTO) (order.Totals, error) {
	subtotal, err := kernel.NewMoney(dto.Subtotal)
	if err != nil {
		return order.Totals{}, err
	}
	fee, err := kernel.NewMoney(dto.DeliveryFee)
	if err != nil {
		return order.Totals{}, err
	}
	discount, err := kernel.NewMoney(dto.DiscountAmount)
	if err != nil {
		return order.Totals{}, err
	}
	total, err := kernel.NewMoney(dto.Total)
	if err != nil {
		return order.Totals{}, err
	}
	return order.Totals{Subtotal: subtotal, DeliveryFee: fee, Discount: discount, Total: total}, nil
}

func itemToDomain(dto OrderItemDTO) (order.Item, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return order.Item{}, err
	}
	productID, err := kernel.UUIDFromBytes(dto.ProductID[:])
	if err != nil {
		return order.Item{}, err
	}
	unitPrice, err := kernel.NewMoney(dto.ProductPrice)
	if err != nil {
		return order.Item{}, err
	}
	total, err := kernel.NewMoney(dto.ItemTotal)
	if err != nil {
		return order.Item{}, err
	}

	stored := dto.Modifiers.Data()
	modifiers := make([]order.ItemModifier, 0, len(stored))
	for _, m := range stored {
		optionID, optionErr := kernel.UUIDFromBytes(m.OptionID[:])
		if optionErr != nil {
			return order.Item{}, optionErr
		}
		modifiers = append(modifiers, order.ItemModifier{
			OptionID:        optionID,
			Name:            m.Name,
			PriceAdjustment: kernel.NewPriceAdjustment(m.PriceAdjustment),
		})
	}

	return order.RestoreItem(
		id,
		productID,
		dto.ProductName,
		unitPrice,
		dto.Quantity,
		modifiers,
		kernel.NewPriceAdjustment(dto.ModifiersPrice),
		total,
		dto.SpecialInstructions,
	), nil
}

func uuidPtr(id *kernel.UUID) *uuid.UUID {
	if id == nil {
		return nil
	}
	raw := id.Bytes()
	return &raw
}

// uuidValue yields an untyped nil for absent identifiers so the column is set to NULL.
func uuidValue(id *kernel.UUID) any {
	if id == nil {
		return nil
	}
	return id.Bytes()
}

func kernelPtr(id *uuid.UUID) (*kernel.UUID, error) {
	if id == nil {
		return nil, nil //nolint:nilnil // NULL column
	}
	value, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return nil, err
	}
	return &value, nil
}
