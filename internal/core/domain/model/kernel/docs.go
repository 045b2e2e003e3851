// Package kernel provides the value objects shared by the order domain.
//
// The package includes:
//   - UUID: identifier for orders, customers, staff, products and modifier options
//   - Money: non-negative fixed-point amount with two fractional digits
//   - Phone: delivery phone normalized to "+<digits>"
//   - Address: trimmed delivery address of 5 to 500 characters
//   - OptionalText / RequiredText: trimming and length rules for comments,
//     cooking instructions and cancellation reasons
//
// Value objects are immutable. Zero values fail Validate, so a constructor must be used.
package kernel
