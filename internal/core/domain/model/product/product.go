// Package product provides the stock ledger entry for a saleable product.
// Quantity on hand is decremented exactly once per order line item at
// placement and is floor-checked: a decrement that would go negative is
// rejected rather than recorded.
package product

import (
	"errors"
	"fmt"

	"pharmadelivery/internal/core/domain/model/kernel"
	"pharmadelivery/internal/pkg/errs"
	"pharmadelivery/internal/pkg/guard"
)

var (
	// ErrProductIsNotConstructed is returned when a Product was not created
	// through NewProduct or RestoreProduct.
	ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct or RestoreProduct constructor")

	// ErrNameIsRequired is returned when creating a product without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
)

// Product is the stock ledger entry for one saleable product.
// InStock is always derived from the quantity on hand, never stored
// independently.
type Product struct {
	id             kernel.UUID
	name           string
	unitPrice      int64
	quantityOnHand int

	guard guard.ConstructorGuard
}

// NewProduct creates a ledger entry with an initial quantity on hand.
func NewProduct(id kernel.UUID, name string, unitPrice int64, quantityOnHand int) (*Product, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, ErrNameIsRequired
	}
	if unitPrice < 0 {
		return nil, errs.NewValueIsInvalidError("unitPrice")
	}
	if quantityOnHand < 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("quantityOnHand",
			fmt.Errorf("%d is negative", quantityOnHand))
	}

	return &Product{
		id:             id,
		name:           name,
		unitPrice:      unitPrice,
		quantityOnHand: quantityOnHand,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// RestoreProduct reconstructs a ledger entry from persistence.
func RestoreProduct(id kernel.UUID, name string, unitPrice int64, quantityOnHand int) (*Product, error) {
	return NewProduct(id, name, unitPrice, quantityOnHand)
}

// Validate ensures the Product was properly constructed.
func (p *Product) Validate() error {
	if p == nil {
		return ErrProductIsNotConstructed
	}
	return p.guard.Validate(ErrProductIsNotConstructed)
}

// ID returns the product's unique identifier.
func (p *Product) ID() kernel.UUID {
	return p.id
}

// Name returns the product's display name.
func (p *Product) Name() string {
	return p.name
}

// UnitPrice returns the current list price in cents.
func (p *Product) UnitPrice() int64 {
	return p.unitPrice
}

// QuantityOnHand returns the saleable quantity.
func (p *Product) QuantityOnHand() int {
	return p.quantityOnHand
}

// InStock reports whether any saleable quantity remains. Derived, never stored.
func (p *Product) InStock() bool {
	return p.quantityOnHand > 0
}

// Decrement removes qty units from the ledger. A decrement that would take
// the quantity below zero is rejected with InsufficientStockError and the
// ledger is left untouched.
func (p *Product) Decrement(qty int) error {
	if qty <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", qty))
	}
	if qty > p.quantityOnHand {
		return errs.NewInsufficientStockError(p.id.String(), qty, p.quantityOnHand)
	}
	p.quantityOnHand -= qty
	return nil
}

// Increment returns qty units to the ledger. Used only by the configurable
// restock-on-cancel policy.
func (p *Product) Increment(qty int) error {
	if qty <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", qty))
	}
	p.quantityOnHand += qty
	return nil
}
