package kernel

import (
	"fmt"

	"marketplace/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// moneyScale is the number of minor-unit digits kept for shillings.
const moneyScale = 2

// Money is an amount in Kenyan shillings rounded to cents.
// The zero value is Ksh 0 and is valid.
type Money struct {
	amount decimal.Decimal
}

// NewMoney validates that amount is not negative and rounds it to cents.
func NewMoney(amount decimal.Decimal) (Money, error) {
	if amount.IsNegative() {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"amount", fmt.Errorf("%s is negative", amount.String()))
	}
	return Money{amount: amount.Round(moneyScale)}, nil
}

// NewMoneyFromFloat is a convenience for request payloads.
func NewMoneyFromFloat(amount float64) (Money, error) {
	return NewMoney(decimal.NewFromFloat(amount))
}

// Shillings returns a whole-shilling amount. Negative input yields zero.
func Shillings(amount int64) Money {
	if amount < 0 {
		return Money{}
	}
	return Money{amount: decimal.NewFromInt(amount)}
}

// Decimal exposes the underlying value for persistence.
func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount)}
}

// Sub floors the result at zero; callers that need the signed difference compare first.
func (m Money) Sub(other Money) Money {
	diff := m.amount.Sub(other.amount)
	if diff.IsNegative() {
		return Money{}
	}
	return Money{amount: diff}
}

// Times multiplies by a line quantity.
func (m Money) Times(quantity int) Money {
	return Money{amount: m.amount.Mul(decimal.NewFromInt(int64(quantity)))}
}

// Percent returns percent/100 of m rounded to cents.
func (m Money) Percent(percent decimal.Decimal) Money {
	return Money{amount: m.amount.Mul(percent).Div(decimal.NewFromInt(100)).Round(moneyScale)}
}

// Min returns the smaller of m and other.
func (m Money) Min(other Money) Money {
	if other.amount.LessThan(m.amount) {
		return other
	}
	return m
}

func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

func (m Money) Equal(other Money) bool {
	return m.amount.Equal(other.amount)
}

func (m Money) LessThan(other Money) bool {
	return m.amount.LessThan(other.amount)
}

func (m Money) GreaterThan(other Money) bool {
	return m.amount.GreaterThan(other.amount)
}

func (m Money) GreaterThanOrEqual(other Money) bool {
	return m.amount.GreaterThanOrEqual(other.amount)
}

// Float64 is used at the JSON boundary only.
func (m Money) Float64() float64 {
	f, _ := m.amount.Float64()
	return f
}

// String renders "Ksh 200" for whole amounts and "Ksh 200.50" otherwise.
func (m Money) String() string {
	if m.amount.IsInteger() {
		return "Ksh " + m.amount.String()
	}
	return "Ksh " + m.amount.StringFixed(moneyScale)
}

// MarshalJSON writes the amount as a bare JSON number.
func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(m.amount.Round(moneyScale).String()), nil
}
