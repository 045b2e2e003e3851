package order

import (
	"fmt"

	"foodorder/internal/pkg/errs"
)

// Status is the lifecycle state of an order.
//
// The workflow is linear. Every non-terminal status has exactly two outgoing
// edges: the next stage, or Cancelled.
//
//	New -> Confirmed -> Paid -> InProgress -> Ready -> Packed -> Assigned -> InDelivery -> Delivered
//	 \________\__________\________\____________\________\_________\____________\_______-> Cancelled
//
// Delivered and Cancelled are terminal. No edge skips a stage, moves backward
// or re-enters the same status.
type Status int

const (
	// Unknown catches uninitialized values. It is never persisted.
	Unknown Status = iota
	New
	Confirmed
	Paid
	InProgress
	Ready
	Packed
	Assigned
	InDelivery
	Delivered
	Cancelled
)

var statusNames = map[Status]string{
	New:        "NEW",
	Confirmed:  "CONFIRMED",
	Paid:       "PAID",
	InProgress: "IN_PROGRESS",
	Ready:      "READY",
	Packed:     "PACKED",
	Assigned:   "ASSIGNED",
	InDelivery: "IN_DELIVERY",
	Delivered:  "DELIVERED",
	Cancelled:  "CANCELLED",
}

// transitions is the single source of truth for legal moves. It is never
// mutated after package initialization, so concurrent reads need no locking.
var transitions = map[Status][]Status{
	New:        {Confirmed, Cancelled},
	Confirmed:  {Paid, Cancelled},
	Paid:       {InProgress, Cancelled},
	InProgress: {Ready, Cancelled},
	Ready:      {Packed, Cancelled},
	Packed:     {Assigned, Cancelled},
	Assigned:   {InDelivery, Cancelled},
	InDelivery: {Delivered, Cancelled},
}

// Statuses returns every defined status in workflow order, Cancelled last.
func Statuses() []Status {
	return []Status{New, Confirmed, Paid, InProgress, Ready, Packed, Assigned, InDelivery, Delivered, Cancelled}
}

// ParseStatus converts the persisted/wire name ("IN_PROGRESS") back to a Status.
func ParseStatus(name string) (Status, error) {
	for s, n := range statusNames {
		if n == name {
			return s, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", name))
}

// Validate rejects Unknown and any value outside the defined set.
func (s Status) Validate() error {
	if _, ok := statusNames[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the upper snake case name, or "UNKNOWN".
func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return "UNKNOWN"
}

// CanTransitionTo reports whether target is a legal successor of s.
// Unknown and terminal statuses have no successors, so the answer is false.
func (s Status) CanTransitionTo(target Status) bool {
	for _, next := range transitions[s] {
		if next == target {
			return true
		}
	}
	return false
}

// AllowedTransitions returns the successors of s. The slice is a copy and is
// empty for terminal or unknown statuses.
func (s Status) AllowedTransitions() []Status {
	next := transitions[s]
	out := make([]Status, len(next))
	copy(out, next)
	return out
}

// IsTerminal reports whether s has no outgoing edges. Unknown counts as terminal.
func (s Status) IsTerminal() bool {
	return len(transitions[s]) == 0
}

// CanBeCancelled applies the cancellation policy, which is stricter than the
// graph: an order already handed to the courier (InDelivery) cannot be cancelled.
func (s Status) CanBeCancelled() bool {
	return s.CanTransitionTo(Cancelled) && s != InDelivery
}
