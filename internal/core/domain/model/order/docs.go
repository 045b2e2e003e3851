// Package order provides the Order aggregate and the workflow graph that governs
// its status.
//
// The package includes:
//   - Status: the ten lifecycle statuses and the static transition graph
//   - Order: the aggregate root, mutated only through TransitionTo, Cancel and AssignCourier
//   - Item: frozen product snapshot with computed line total
//   - StatusLog: append-only audit entry queued with every status change
//   - Number: the daily sequential "YYYYMMDD-NNNN" order number
//   - PaymentMethod, PaymentStatus
//
// Key business rules:
//   - every non-terminal status moves either to the next stage or to Cancelled
//   - Delivered and Cancelled are terminal
//   - an order in delivery cannot be cancelled even though the graph allows it
//   - the version grows by one per mutation and gates the persisted write
package order
