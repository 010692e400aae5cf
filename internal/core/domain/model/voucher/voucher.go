package voucher

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrVoucherIsNotConstructed = errors.New("Voucher must be created via NewVoucher constructor")

// Params holds the stored attributes of a voucher.
type Params struct {
	ID                     kernel.UUID
	Code                   string
	DiscountType           DiscountType
	Value                  decimal.Decimal
	MinOrderAmount         kernel.Money
	MaxDiscountAmount      *kernel.Money
	ValidFrom              time.Time
	ValidUntil             time.Time
	MaxUses                int
	UsedCount              int
	ApplicableRoles        []kernel.Role
	ApplicableProductTypes []string
	Active                 bool
}

// Voucher is a discount code with eligibility and usage constraints.
//
// Invariant: 0 <= usedCount <= maxUses. The counter is only ever advanced by the
// repository's conditional increment, so a loaded Voucher is a snapshot and
// Evaluate on it never consumes a use.
type Voucher struct {
	id                     kernel.UUID
	code                   string
	discountType           DiscountType
	value                  decimal.Decimal
	minOrderAmount         kernel.Money
	maxDiscountAmount      *kernel.Money
	validFrom              time.Time
	validUntil             time.Time
	maxUses                int
	usedCount              int
	applicableRoles        []kernel.Role
	applicableProductTypes []string
	active                 bool
	guard                  guard.ConstructorGuard
}

// ApplicationContext is what a voucher is evaluated against.
type ApplicationContext struct {
	Role         kernel.Role
	ProductTypes []string
	Subtotal     kernel.Money
}

// Discount is the priced outcome of a successful evaluation.
type Discount struct {
	VoucherID    kernel.UUID
	Code         string
	Type         DiscountType
	Amount       kernel.Money
	FreeShipping bool
}

// NormalizeCode is the lookup form of a voucher code: trimmed and upper-cased.
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

func NewVoucher(p Params) (*Voucher, error) {
	v := &Voucher{
		id:                     p.ID,
		code:                   NormalizeCode(p.Code),
		discountType:           p.DiscountType,
		value:                  p.Value,
		minOrderAmount:         p.MinOrderAmount,
		maxDiscountAmount:      p.MaxDiscountAmount,
		validFrom:              p.ValidFrom,
		validUntil:             p.ValidUntil,
		maxUses:                p.MaxUses,
		usedCount:              p.UsedCount,
		applicableRoles:        append([]kernel.Role(nil), p.ApplicableRoles...),
		applicableProductTypes: normalizeTypes(p.ApplicableProductTypes),
		active:                 p.Active,
		guard:                  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		v.id.Validate(),
		v.validateCode(),
		v.validateValue(),
		v.validateWindow(),
		v.validateUsage(),
		v.validateRoles(),
	); err != nil {
		return nil, err
	}
	return v, nil
}

func (v *Voucher) Validate() error {
	if v == nil {
		return ErrVoucherIsNotConstructed
	}
	return v.guard.Validate(ErrVoucherIsNotConstructed)
}

func (v *Voucher) ID() kernel.UUID                  { return v.id }
func (v *Voucher) Code() string                     { return v.code }
func (v *Voucher) DiscountType() DiscountType       { return v.discountType }
func (v *Voucher) Value() decimal.Decimal           { return v.value }
func (v *Voucher) MinOrderAmount() kernel.Money     { return v.minOrderAmount }
func (v *Voucher) MaxDiscountAmount() *kernel.Money { return v.maxDiscountAmount }
func (v *Voucher) ValidFrom() time.Time             { return v.validFrom }
func (v *Voucher) ValidUntil() time.Time            { return v.validUntil }
func (v *Voucher) MaxUses() int                     { return v.maxUses }
func (v *Voucher) UsedCount() int                   { return v.usedCount }
func (v *Voucher) IsActive() bool                   { return v.active }

func (v *Voucher) ApplicableRoles() []kernel.Role {
	return append([]kernel.Role(nil), v.applicableRoles...)
}

func (v *Voucher) ApplicableProductTypes() []string {
	return append([]string(nil), v.applicableProductTypes...)
}

// Evaluate checks the voucher against ctx at instant now and prices the discount.
//
// Rules are checked in a fixed order and the first failure is returned as an
// *errs.VoucherInvalidError:
//  1. active, else VOUCHER_NOT_FOUND
//  2. validity window, else VOUCHER_NOT_YET_ACTIVE or VOUCHER_EXPIRED
//  3. usedCount < maxUses, else VOUCHER_EXHAUSTED
//  4. role allowed, else VOUCHER_NOT_APPLICABLE_TO_ROLE
//  5. product types intersect, else VOUCHER_NOT_APPLICABLE_TO_PRODUCTS
//  6. subtotal >= minOrderAmount, else VOUCHER_MINIMUM_NOT_MET
//
// Empty role or product-type restrictions allow everything.
func (v *Voucher) Evaluate(ctx ApplicationContext, now time.Time) (Discount, error) {
	switch {
	case !v.active:
		return Discount{}, errs.NewVoucherInvalidError(v.code, errs.VoucherNotFound)
	case now.Before(v.validFrom):
		return Discount{}, errs.NewVoucherInvalidError(v.code, errs.VoucherNotYetActive)
	case now.After(v.validUntil):
		return Discount{}, errs.NewVoucherInvalidError(v.code, errs.VoucherExpired)
	case v.usedCount >= v.maxUses:
		return Discount{}, errs.NewVoucherInvalidError(v.code, errs.VoucherExhausted)
	case !v.allowsRole(ctx.Role):
		return Discount{}, errs.NewVoucherInvalidError(v.code, errs.VoucherNotApplicableToRole)
	case !v.allowsAnyType(ctx.ProductTypes):
		return Discount{}, errs.NewVoucherInvalidError(v.code, errs.VoucherNotApplicableToProducts)
	case ctx.Subtotal.LessThan(v.minOrderAmount):
		return Discount{}, errs.NewVoucherInvalidErrorWithDetail(v.code, errs.VoucherMinimumNotMet,
			fmt.Sprintf("minimum order is %s", v.minOrderAmount))
	}

	return Discount{
		VoucherID:    v.id,
		Code:         v.code,
		Type:         v.discountType,
		Amount:       v.price(ctx.Subtotal),
		FreeShipping: v.discountType == FreeShipping,
	}, nil
}

func (v *Voucher) price(subtotal kernel.Money) kernel.Money {
	switch v.discountType {
	case Percentage:
		amount := subtotal.Percent(v.value)
		if v.maxDiscountAmount != nil {
			amount = amount.Min(*v.maxDiscountAmount)
		}
		return amount
	case FixedAmount:
		fixed, _ := kernel.NewMoney(v.value)
		return fixed.Min(subtotal)
	default:
		return kernel.Money{}
	}
}

func (v *Voucher) allowsRole(role kernel.Role) bool {
	if len(v.applicableRoles) == 0 {
		return true
	}
	for _, r := range v.applicableRoles {
		if r == role {
			return true
		}
	}
	return false
}

func (v *Voucher) allowsAnyType(types []string) bool {
	if len(v.applicableProductTypes) == 0 {
		return true
	}
	for _, t := range types {
		normalized := strings.ToLower(strings.TrimSpace(t))
		for _, allowed := range v.applicableProductTypes {
			if allowed == normalized {
				return true
			}
		}
	}
	return false
}

func (v *Voucher) validateCode() error {
	if v.code == "" {
		return errs.NewValueIsRequiredError("voucher code")
	}
	return nil
}

func (v *Voucher) validateValue() error {
	if err := v.discountType.Validate(); err != nil {
		return err
	}
	switch v.discountType {
	case Percentage:
		if !v.value.IsPositive() || v.value.GreaterThan(decimal.NewFromInt(100)) {
			return errs.NewValueIsOutOfRangeError("percentage", v.value, 0, 100)
		}
	case FixedAmount:
		if !v.value.IsPositive() {
			return errs.NewValueIsInvalidErrorWithCause("discount value", fmt.Errorf("%s is not positive", v.value))
		}
	}
	return nil
}

func (v *Voucher) validateWindow() error {
	if v.validFrom.IsZero() || v.validUntil.IsZero() {
		return errs.NewValueIsRequiredError("validity window")
	}
	if v.validUntil.Before(v.validFrom) {
		return errs.NewValueIsInvalidErrorWithCause("validity window",
			fmt.Errorf("validUntil %s is before validFrom %s", v.validUntil, v.validFrom))
	}
	return nil
}

func (v *Voucher) validateUsage() error {
	if v.maxUses < 1 {
		return errs.NewValueIsOutOfRangeError("maxUses", v.maxUses, 1, "unbounded")
	}
	if v.usedCount < 0 || v.usedCount > v.maxUses {
		return errs.NewValueIsOutOfRangeError("usedCount", v.usedCount, 0, v.maxUses)
	}
	return nil
}

func (v *Voucher) validateRoles() error {
	for _, r := range v.applicableRoles {
		if err := r.Validate(); err != nil {
			return err
		}
	}
	return nil
}

func normalizeTypes(types []string) []string {
	out := make([]string, 0, len(types))
	for _, t := range types {
		if t = strings.ToLower(strings.TrimSpace(t)); t != "" {
			out = append(out, t)
		}
	}
	return out
}
