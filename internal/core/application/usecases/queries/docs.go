// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Aggregate lookups go through the order repository; list, history and count
// queries read their own projections with SQL.
package queries
