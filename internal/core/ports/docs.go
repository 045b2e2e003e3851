// Package ports defines the contracts between the order lifecycle core and its
// infrastructure: persistence with a unit of work, the order number sequence,
// catalog and staff lookups, and event publishing.
package ports
