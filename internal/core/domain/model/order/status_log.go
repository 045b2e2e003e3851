package order

import (
	"time"

	"foodorder/internal/core/domain/model/kernel"
)

// StatusLog is one append-only audit entry. It is written in the same
// transaction as the status change it records and never modified afterwards.
type StatusLog struct {
	id          kernel.UUID
	orderID     kernel.UUID
	oldStatus   Status
	newStatus   Status
	changedByID *kernel.UUID
	reason      *string
	createdAt   time.Time
}

// RestoreStatusLog rebuilds an entry read from storage. Pass Unknown as
// oldStatus for the creation entry.
func RestoreStatusLog(
	id, orderID kernel.UUID,
	oldStatus, newStatus Status,
	changedByID *kernel.UUID,
	reason *string,
	createdAt time.Time,
) StatusLog {
	return StatusLog{
		id:          id,
		orderID:     orderID,
		oldStatus:   oldStatus,
		newStatus:   newStatus,
		changedByID: changedByID,
		reason:      reason,
		createdAt:   createdAt,
	}
}

func (l StatusLog) ID() kernel.UUID {
	return l.id
}

func (l StatusLog) OrderID() kernel.UUID {
	return l.orderID
}

func (l StatusLog) NewStatus() Status {
	return l.newStatus
}

func (l StatusLog) ChangedByID() *kernel.UUID {
	return l.changedByID
}

func (l StatusLog) Reason() *string {
	return l.reason
}

func (l StatusLog) CreatedAt() time.Time {
	return l.createdAt
}

// OldStatus returns false for the creation entry, which has no previous status.
func (l StatusLog) OldStatus() (Status, bool) {
	return l.oldStatus, l.oldStatus != Unknown
}
