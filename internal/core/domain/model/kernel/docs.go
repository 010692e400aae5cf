// Package kernel provides the shared value objects of the marketplace domain.
//
// The package includes:
//   - UUID: identifiers for every aggregate
//   - Money: shilling amounts backed by shopspring/decimal, rounded to cents
//   - Location: a buyer's county resolved to its province via the static county table
//   - Role and PaymentType: the acting user role and the order payment timing
//
// Values are immutable and safe for concurrent use.
package kernel
