// Package order provides the Order aggregate and its two state machines.
//
// The package includes:
//   - Order: placed checkout with immutable line snapshots and money totals
//   - Status: fulfillment lifecycle PENDING -> ... -> DELIVERED, or CANCELLED / REJECTED
//   - PaymentStatus: UNPAID -> SUBMITTED -> APPROVED | REJECTED
//
// Key business rules:
//   - Transitions are strictly forward and never skip a step
//   - Illegal transitions fail with errs.InvalidTransitionError, they are never coerced
//   - BEFORE_DELIVERY orders stay PENDING until their payment is approved
//   - AFTER_DELIVERY orders advance regardless of payment
//
// The delivery lifecycle lives in package delivery; the application layer links
// the two.
package order
