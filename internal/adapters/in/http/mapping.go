package http

import (
	"time"

	"foodorder/internal/adapters/in/http/api"
	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/application/usecases/queries"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

func toKernelUUID(id openapi_types.UUID) (kernel.UUID, error) {
	return kernel.UUIDFromBytes(id[:])
}

func toAPIUUID(id *kernel.UUID) *openapi_types.UUID {
	if id == nil {
		return nil
	}
	out := id.Bytes()
	return &out
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func toOrderLineInput(item api.NewOrderItem) (commands.OrderLineInput, error) {
	productID, err := toKernelUUID(item.ProductId)
	if err != nil {
		return commands.OrderLineInput{}, err
	}

	optionIDs := make([]kernel.UUID, len(item.OptionIds))
	for i, raw := range item.OptionIds {
		if optionIDs[i], err = toKernelUUID(raw); err != nil {
			return commands.OrderLineInput{}, err
		}
	}

	return commands.OrderLineInput{
		ProductID:    productID,
		OptionIDs:    optionIDs,
		Quantity:     item.Quantity,
		Instructions: deref(item.Instructions),
	}, nil
}

func toOrder(o *order.Order) api.Order {
	totals := o.Totals()
	delivery := o.Delivery()

	items := make([]api.OrderItem, 0, len(o.Items()))
	for _, item := range o.Items() {
		modifiers := make([]api.ItemModifier, 0, len(item.Modifiers()))
		for _, m := range item.Modifiers() {
			modifiers = append(modifiers, api.ItemModifier{
				OptionId:        m.OptionID.Bytes(),
				Name:            m.Name,
				PriceAdjustment: m.PriceAdjustment.String(),
			})
		}
		items = append(items, api.OrderItem{
			Id:             item.ID().Bytes(),
			ProductId:      item.ProductID().Bytes(),
			ProductName:    item.ProductName(),
			UnitPrice:      item.UnitPrice().String(),
			Quantity:       item.Quantity(),
			Modifiers:      modifiers,
			ModifiersPrice: item.ModifiersPrice().String(),
			Total:          item.Total().String(),
			Instructions:   item.Instructions(),
		})
	}

	statusTimes := make(map[string]time.Time)
	for s, at := range o.StatusTimes() {
		statusTimes[s.String()] = at
	}

	return api.Order{
		Id:                 o.ID().Bytes(),
		OrderNumber:        o.Number().String(),
		CustomerId:         o.CustomerID().Bytes(),
		CourierId:          toAPIUUID(o.CourierID()),
		Status:             o.Status().String(),
		Version:            o.Version(),
		PaymentMethod:      string(o.PaymentMethod()),
		PaymentStatus:      string(o.PaymentStatus()),
		Subtotal:           totals.Subtotal.String(),
		DeliveryFee:        totals.DeliveryFee.String(),
		DiscountAmount:     totals.Discount.String(),
		Total:              totals.Total.String(),
		DeliveryAddress:    delivery.Address.String(),
		Phone:              delivery.Phone.String(),
		Comment:            delivery.Comment,
		CancellationReason: o.CancellationReason(),
		CancelledById:      toAPIUUID(o.CancelledByID()),
		Items:              items,
		StatusTimes:        statusTimes,
		CreatedAt:          o.CreatedAt(),
		UpdatedAt:          o.UpdatedAt(),
	}
}

func toOrderSummary(row queries.ListOrdersQueryResponse) api.OrderSummary {
	return api.OrderSummary{
		Id:          row.ID.Bytes(),
		OrderNumber: row.Number,
		CustomerId:  row.CustomerID.Bytes(),
		Status:      row.Status.String(),
		Total:       row.Total.String(),
		CourierId:   toAPIUUID(row.CourierID),
		CreatedAt:   row.CreatedAt,
	}
}

func toStatusLogEntry(entry queries.GetOrderHistoryQueryResponse) api.StatusLogEntry {
	var oldStatus *string
	if entry.OldStatus != nil {
		name := entry.OldStatus.String()
		oldStatus = &name
	}

	return api.StatusLogEntry{
		Id:          entry.ID.Bytes(),
		OldStatus:   oldStatus,
		NewStatus:   entry.NewStatus.String(),
		ChangedById: toAPIUUID(entry.ChangedByID),
		Reason:      entry.Reason,
		CreatedAt:   entry.CreatedAt,
	}
}
