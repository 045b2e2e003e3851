package order

import (
	"errors"
	"fmt"
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Delivery is the contact snapshot captured when the order is placed.
type Delivery struct {
	Address kernel.Address
	Phone   kernel.Phone
	Comment *string
}

// Totals are the monetary fields of an order. They are fixed at creation.
//
//	Total = Subtotal + DeliveryFee - Discount
type Totals struct {
	Subtotal    kernel.Money
	DeliveryFee kernel.Money
	Discount    kernel.Money
	Total       kernel.Money
}

// State is the full persisted form of an order, used to rebuild the aggregate.
type State struct {
	ID                 kernel.UUID
	Number             Number
	CustomerID         kernel.UUID
	Status             Status
	Version            int
	PaymentMethod      PaymentMethod
	PaymentStatus      PaymentStatus
	Totals             Totals
	Delivery           Delivery
	CourierID          *kernel.UUID
	StatusTimes        map[Status]time.Time
	CancellationReason *string
	CancelledByID      *kernel.UUID
	Items              []Item
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// Order is the aggregate root of the order lifecycle.
//
// Order follows these invariants:
//   - status is always one of the defined statuses and only changes along an
//     edge of the workflow graph
//   - version starts at 1 and grows by exactly 1 per mutation
//   - every status change queues exactly one StatusLog entry
//   - each per-status timestamp is set once, when the status is first entered
//   - the courier is assigned at most once
//   - items, totals and delivery details never change after creation
//
// Mutations only touch the in-memory aggregate. The repository persists them with
// a write conditioned on ExpectedVersion, which is how concurrent writers that
// loaded the same version are detected.
type Order struct {
	id            kernel.UUID
	number        Number
	customerID    kernel.UUID
	status        Status
	paymentMethod PaymentMethod
	paymentStatus PaymentStatus
	totals        Totals
	delivery      Delivery
	items         []Item
	createdAt     time.Time
	updatedAt     time.Time

	// courierID is the assigned courier (nil until AssignCourier)
	courierID *kernel.UUID

	// statusTimes holds the moment each non-NEW status was entered
	statusTimes map[Status]time.Time

	cancellationReason *string
	cancelledByID      *kernel.UUID

	// version is the current optimistic-lock token, expectedVersion the one the
	// stored row must still carry for the next write to succeed
	version         int
	expectedVersion int

	// pendingLogs are audit entries not yet written to storage
	pendingLogs []StatusLog

	isConstructed bool
}

// NewOrder creates an order in status New at version 1 and queues its creation log
// entry (no previous status, changed by the customer).
//
// Totals must be consistent with the items: Subtotal equals the sum of item totals
// and Total equals Subtotal + DeliveryFee - Discount.
//
// Example:
//
//	number, _ := order.NewNumber(now, 17)
//	o, err := order.NewOrder(kernel.NewUUID(), number, customerID, items, delivery, order.PaymentCash, totals, now)
//	if err != nil {
//	    // Handle validation error
//	}
func NewOrder(
	id kernel.UUID,
	number Number,
	customerID kernel.UUID,
	items []Item,
	delivery Delivery,
	paymentMethod PaymentMethod,
	totals Totals,
	now time.Time,
) (*Order, error) {
	if err := errors.Join(
		id.Validate(),
		number.Validate(),
		customerID.Validate(),
		delivery.Address.Validate(),
		delivery.Phone.Validate(),
		paymentMethod.Validate(),
		validateItems(items),
	); err != nil {
		return nil, err
	}

	if err := validateTotals(items, totals); err != nil {
		return nil, err
	}

	o := &Order{
		id:            id,
		number:        number,
		customerID:    customerID,
		status:        New,
		paymentMethod: paymentMethod,
		paymentStatus: PaymentPending,
		totals:        totals,
		delivery:      delivery,
		items:         append([]Item(nil), items...),
		createdAt:     now,
		updatedAt:     now,
		statusTimes:   make(map[Status]time.Time),
		version:       1,
		isConstructed: true,
	}

	actor := customerID
	o.pendingLogs = append(o.pendingLogs, o.newLog(Unknown, New, &actor, nil, now))

	return o, nil
}

// RestoreOrder rebuilds an order loaded from storage. The loaded version becomes
// the expected version of the next write.
func RestoreOrder(state State) (*Order, error) {
	if err := errors.Join(
		state.ID.Validate(),
		state.Number.Validate(),
		state.CustomerID.Validate(),
		state.Status.Validate(),
		state.PaymentMethod.Validate(),
		state.PaymentStatus.Validate(),
	); err != nil {
		return nil, err
	}
	if state.Version < 1 {
		return nil, errs.NewValueIsInvalidErrorWithCause("version", fmt.Errorf("%d is less than 1", state.Version))
	}

	statusTimes := make(map[Status]time.Time, len(state.StatusTimes))
	for s, at := range state.StatusTimes {
		statusTimes[s] = at
	}

	return &Order{
		id:                 state.ID,
		number:             state.Number,
		customerID:         state.CustomerID,
		status:             state.Status,
		paymentMethod:      state.PaymentMethod,
		paymentStatus:      state.PaymentStatus,
		totals:             state.Totals,
		delivery:           state.Delivery,
		items:              state.Items,
		createdAt:          state.CreatedAt,
		updatedAt:          state.UpdatedAt,
		courierID:          state.CourierID,
		statusTimes:        statusTimes,
		cancellationReason: state.CancellationReason,
		cancelledByID:      state.CancelledByID,
		version:            state.Version,
		expectedVersion:    state.Version,
		isConstructed:      true,
	}, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by identifier.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID              { return o.id }
func (o *Order) Number() Number               { return o.number }
func (o *Order) CustomerID() kernel.UUID      { return o.customerID }
func (o *Order) Status() Status               { return o.status }
func (o *Order) PaymentMethod() PaymentMethod { return o.paymentMethod }
func (o *Order) PaymentStatus() PaymentStatus { return o.paymentStatus }
func (o *Order) Totals() Totals               { return o.totals }
func (o *Order) Delivery() Delivery           { return o.delivery }
func (o *Order) CourierID() *kernel.UUID      { return o.courierID }
func (o *Order) CancellationReason() *string  { return o.cancellationReason }
func (o *Order) CancelledByID() *kernel.UUID  { return o.cancelledByID }
func (o *Order) CreatedAt() time.Time         { return o.createdAt }
func (o *Order) UpdatedAt() time.Time         { return o.updatedAt }

// Items returns a copy of the order lines.
func (o *Order) Items() []Item {
	return append([]Item(nil), o.items...)
}

// Version is the optimistic-lock token after all in-memory mutations.
func (o *Order) Version() int {
	return o.version
}

// ExpectedVersion is the version the stored row must carry for the pending
// changes to be written. It is 0 for an order that was never persisted.
func (o *Order) ExpectedVersion() int {
	return o.expectedVersion
}

// EnteredAt returns when the order entered status s. New has no dedicated
// timestamp and reports CreatedAt.
func (o *Order) EnteredAt(s Status) (time.Time, bool) {
	if s == New {
		return o.createdAt, true
	}
	at, ok := o.statusTimes[s]
	return at, ok
}

// StatusTimes returns a copy of the per-status timestamps.
func (o *Order) StatusTimes() map[Status]time.Time {
	out := make(map[Status]time.Time, len(o.statusTimes))
	for s, at := range o.statusTimes {
		out[s] = at
	}
	return out
}

// PendingLogs returns the audit entries that must be written together with the
// next persisted change.
func (o *Order) PendingLogs() []StatusLog {
	return append([]StatusLog(nil), o.pendingLogs...)
}

// MarkPersisted is called by the repository once the row and its pending log
// entries are durably written.
func (o *Order) MarkPersisted() {
	o.expectedVersion = o.version
	o.pendingLogs = nil
}

// TransitionTo moves the order along one edge of the workflow graph.
//
// Business rules:
//   - target must be a successor of the current status, otherwise
//     InvalidStateTransitionError names both statuses and nothing changes
//   - moving to Cancelled also applies the cancellation policy and records the
//     actor and reason (see Cancel); a nil or blank reason fails with
//     ValueIsRequiredError
//   - the timestamp mapped to target is set unless it already exists; Assigned may
//     have been stamped earlier by AssignCourier
//
// actorID may be nil for system-initiated changes.
func (o *Order) TransitionTo(target Status, actorID *kernel.UUID, reason *string, now time.Time) error {
	if !o.status.CanTransitionTo(target) {
		return errs.NewInvalidStateTransitionError(o.status.String(), target.String())
	}

	if target == Cancelled {
		return o.cancel(actorID, reason, now)
	}

	o.apply(target, actorID, reason, now)
	return nil
}

// Cancel moves the order to Cancelled on behalf of actorID.
//
// The cancellation policy is stricter than the graph: orders that are Delivered,
// Cancelled or already InDelivery cannot be cancelled, and the attempt fails with
// a validation error. The reason is required.
func (o *Order) Cancel(actorID kernel.UUID, reason string, now time.Time) error {
	if err := actorID.Validate(); err != nil {
		return err
	}
	text, err := kernel.RequiredText("cancellation reason", reason, kernel.ReasonMaxLength)
	if err != nil {
		return err
	}

	return o.cancel(&actorID, &text, now)
}

func (o *Order) cancel(actorID *kernel.UUID, reason *string, now time.Time) error {
	if !o.status.CanBeCancelled() {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("order in status %s cannot be cancelled", o.status),
		)
	}
	if reason == nil {
		return errs.NewValueIsRequiredError("cancellation reason")
	}
	text, err := kernel.RequiredText("cancellation reason", *reason, kernel.ReasonMaxLength)
	if err != nil {
		return err
	}
	reason = &text

	o.cancelledByID = actorID
	o.cancellationReason = reason
	o.apply(Cancelled, actorID, reason, now)
	return nil
}

// AssignCourier records the courier responsible for delivery. It does not change
// the status; callers usually follow with a transition to Assigned.
//
// Business rules:
//   - a courier can be set only once
//   - terminal orders cannot receive a courier
//   - assigned_at is stamped now unless the Assigned status already set it
//
// The change bumps the version like any other mutation but writes no log entry,
// since the status is unchanged.
func (o *Order) AssignCourier(courierID kernel.UUID, now time.Time) error {
	if err := courierID.Validate(); err != nil {
		return err
	}
	if o.courierID != nil {
		return errs.NewValueIsInvalidErrorWithCause(
			"courier",
			fmt.Errorf("order %s already has courier %s", o.number, o.courierID),
		)
	}
	if o.status.IsTerminal() {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("cannot assign a courier to an order in status %s", o.status),
		)
	}

	o.courierID = &courierID
	o.stamp(Assigned, now)
	o.version++
	o.updatedAt = now
	return nil
}

func (o *Order) apply(target Status, actorID *kernel.UUID, reason *string, now time.Time) {
	previous := o.status
	o.status = target
	o.stamp(target, now)
	o.version++
	o.updatedAt = now
	o.pendingLogs = append(o.pendingLogs, o.newLog(previous, target, actorID, reason, now))
}

func (o *Order) stamp(s Status, now time.Time) {
	if _, ok := o.statusTimes[s]; !ok {
		o.statusTimes[s] = now
	}
}

func (o *Order) newLog(from, to Status, actorID *kernel.UUID, reason *string, now time.Time) StatusLog {
	return StatusLog{
		id:          kernel.NewUUID(),
		orderID:     o.id,
		oldStatus:   from,
		newStatus:   to,
		changedByID: actorID,
		reason:      reason,
		createdAt:   now,
	}
}

func validateItems(items []Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	for i, item := range items {
		if err := item.Validate(); err != nil {
			return fmt.Errorf("item %d: %w", i, err)
		}
	}
	return nil
}

func validateTotals(items []Item, totals Totals) error {
	if err := errors.Join(
		totals.Subtotal.Validate(),
		totals.DeliveryFee.Validate(),
		totals.Discount.Validate(),
		totals.Total.Validate(),
	); err != nil {
		return err
	}

	subtotal := kernel.ZeroMoney()
	for _, item := range items {
		subtotal = subtotal.Add(item.Total())
	}
	if !subtotal.IsEqual(totals.Subtotal) {
		return errs.NewValueIsInvalidErrorWithCause(
			"subtotal",
			fmt.Errorf("%s does not match item total %s", totals.Subtotal, subtotal),
		)
	}

	expected := totals.Subtotal.Add(totals.DeliveryFee).Sub(totals.Discount)
	if !expected.IsEqual(totals.Total) {
		return errs.NewValueIsInvalidErrorWithCause(
			"total",
			fmt.Errorf("%s does not match %s", totals.Total, expected),
		)
	}
	return nil
}
