package queries

import (
	"errors"

	"marketplace/internal/core/domain/model/cart"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/voucher"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrPreviewVoucherQueryIsNotConstructed = errors.New(
	"PreviewVoucherQuery must be created via NewPreviewVoucherQuery constructor",
)

// PreviewVoucherQuery prices a voucher against a cart without consuming a use.
type PreviewVoucherQuery struct { //nolint:recvcheck //using for validation
	code   string
	county string
	items  []cart.Item
	role   kernel.Role

	guard guard.ConstructorGuard
}

func NewPreviewVoucherQuery(code, county string, items []cart.Item, role kernel.Role) (PreviewVoucherQuery, error) {
	q := PreviewVoucherQuery{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		q.setCode(code),
		q.setCart(county, items),
		role.Validate(),
	); err != nil {
		return PreviewVoucherQuery{}, err
	}
	q.role = role

	return q, nil
}

func (q PreviewVoucherQuery) Validate() error {
	return q.guard.Validate(ErrPreviewVoucherQueryIsNotConstructed)
}

func (q PreviewVoucherQuery) Code() string       { return q.code }
func (q PreviewVoucherQuery) County() string     { return q.county }
func (q PreviewVoucherQuery) Role() kernel.Role  { return q.role }
func (q PreviewVoucherQuery) Items() []cart.Item { return append([]cart.Item(nil), q.items...) }

func (q *PreviewVoucherQuery) setCode(code string) error {
	code = voucher.NormalizeCode(code)
	if code == "" {
		return errs.NewValueIsRequiredError("code")
	}
	q.code = code
	return nil
}

func (q *PreviewVoucherQuery) setCart(county string, items []cart.Item) error {
	county, items, err := requireCart(county, items)
	if err != nil {
		return err
	}
	q.county = county
	q.items = items
	return nil
}

// PreviewVoucherResponse is the discount breakdown of an accepted voucher.
// DeliveryFee already reflects free shipping.
type PreviewVoucherResponse struct {
	Code         string
	DiscountType voucher.DiscountType
	Discount     kernel.Money
	FreeShipping bool
	Subtotal     kernel.Money
	DeliveryFee  kernel.Money
	Total        kernel.Money
}
