package order

import (
	"errors"
	"fmt"

	"pharmadelivery/internal/core/domain/model/kernel"
	"pharmadelivery/internal/pkg/errs"
	"pharmadelivery/internal/pkg/guard"
)

// ErrLineItemIsNotConstructed is returned when a LineItem was not created
// through the NewLineItem constructor.
var ErrLineItemIsNotConstructed = errors.New("LineItem must be created via NewLineItem constructor")

// LineItem is a value object representing one purchased product position on
// an order: the product, the quantity, and the unit price fixed at checkout.
// All money amounts are integer cents.
type LineItem struct {
	productID kernel.UUID
	quantity  int
	unitPrice int64

	guard guard.ConstructorGuard
}

// NewLineItem creates a validated line item.
// Quantity must be positive and unit price must not be negative.
func NewLineItem(productID kernel.UUID, quantity int, unitPrice int64) (LineItem, error) {
	if err := productID.Validate(); err != nil {
		return LineItem{}, err
	}
	if quantity <= 0 {
		return LineItem{}, errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	if unitPrice < 0 {
		return LineItem{}, errs.NewValueIsInvalidErrorWithCause("unitPrice",
			fmt.Errorf("%d is negative", unitPrice))
	}

	return LineItem{
		productID: productID,
		quantity:  quantity,
		unitPrice: unitPrice,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the line item was created through the constructor.
func (li LineItem) Validate() error {
	return li.guard.Validate(ErrLineItemIsNotConstructed)
}

// ProductID returns the purchased product's identifier.
func (li LineItem) ProductID() kernel.UUID {
	return li.productID
}

// Quantity returns the number of units purchased.
func (li LineItem) Quantity() int {
	return li.quantity
}

// UnitPrice returns the per-unit price in cents, fixed at checkout.
func (li LineItem) UnitPrice() int64 {
	return li.unitPrice
}

// Subtotal returns quantity times unit price in cents.
func (li LineItem) Subtotal() int64 {
	return int64(li.quantity) * li.unitPrice
}
