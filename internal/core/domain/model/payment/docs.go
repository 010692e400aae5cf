// Package payment holds payment records that live outside the order aggregate:
// the admin approval audit trail and tip payments settled by the M-Pesa gateway.
//
// Tip settlement is idempotent. The gateway callback and the expiry job both
// go through Tip.ApplyResult, and only a PENDING tip can move.
package payment
