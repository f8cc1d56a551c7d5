// Package productrepo provides data transfer objects and mapping functions
// for the stock ledger. The decrement path never loads the aggregate; it is
// a single floor-guarded conditional UPDATE.
package productrepo

import (
	"pharmadelivery/internal/core/domain/model/kernel"
	"pharmadelivery/internal/core/domain/model/product"

	"github.com/google/uuid"
)

// ProductDTO represents the database structure for the stock ledger.
// in_stock is never stored; it is always derived from quantity_on_hand.
type ProductDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name           string    `gorm:"type:varchar(255)"`
	UnitPrice      int64
	QuantityOnHand int
}

// TableName specifies the database table name for stock ledger entries.
func (ProductDTO) TableName() string {
	return "products"
}

// toDomain converts a database DTO to a product ledger entry.
func toDomain(dto ProductDTO) (*product.Product, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return product.RestoreProduct(id, dto.Name, dto.UnitPrice, dto.QuantityOnHand)
}
