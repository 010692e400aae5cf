package cart

import (
	"errors"
	"math"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

// MinQuantity is the only bound on a cart line; stock is the catalog's concern.
const MinQuantity = 1

var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// Item is one requested cart line: a product and how many units of it.
type Item struct {
	productID kernel.UUID
	quantity  int
	guard     guard.ConstructorGuard
}

func NewItem(productID kernel.UUID, quantity int) (Item, error) {
	if err := productID.Validate(); err != nil {
		return Item{}, errs.NewValueIsRequiredErrorWithCause("productId", err)
	}
	if quantity < MinQuantity {
		return Item{}, errs.NewValueIsOutOfRangeError("quantity", quantity, MinQuantity, math.MaxInt)
	}
	return Item{
		productID: productID,
		quantity:  quantity,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (i Item) Validate() error {
	return i.guard.Validate(ErrItemIsNotConstructed)
}

func (i Item) ProductID() kernel.UUID {
	return i.productID
}

func (i Item) Quantity() int {
	return i.quantity
}
