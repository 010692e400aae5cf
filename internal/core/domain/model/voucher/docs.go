// Package voucher implements discount codes: eligibility rules, pricing and the
// redemption audit record.
//
// Key business rules:
//   - Codes are unique and compared case-insensitively
//   - Evaluation never changes the usage counter; previewing is free
//   - Redemption is a conditional increment performed by the repository inside
//     the order transaction, so usedCount never exceeds maxUses
//   - FREE_SHIPPING discounts nothing on goods and zeroes all delivery fees
package voucher
