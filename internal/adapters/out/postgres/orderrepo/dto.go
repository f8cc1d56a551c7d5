// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. It implements the repository pattern for the order
// aggregate, handling the conversion between domain entities and database
// rows across the orders, order_items and deliveries tables.
package orderrepo

import (
	"time"

	"pharmadelivery/internal/core/domain/model/kernel"
	"pharmadelivery/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Status is stored as its closed enum string; rider_id is null until a rider
// is bound, which the claim predicate relies on.
type OrderDTO struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey"`
	CustomerID uuid.UUID  `gorm:"type:uuid;index"`
	AddressID  uuid.UUID  `gorm:"type:uuid"`
	RiderID    *uuid.UUID `gorm:"type:uuid;index"`
	Status     string     `gorm:"type:varchar(32);index"`

	Subtotal int64
	Tax      int64
	Shipping int64
	Total    int64

	Archived bool `gorm:"index"`

	CreatedAt        time.Time
	ConfirmedAt      *time.Time
	PreparingAt      *time.Time
	ReadyAt          *time.Time
	RiderReceivedAt  *time.Time
	OutForDeliveryAt *time.Time
	DeliveredAt      *time.Time

	DeliveryPhotoURL string

	Items    []OrderItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	Delivery *DeliveryDTO   `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO represents one persisted line item. Line items are immutable
// after placement and are written only on Add.
type OrderItemDTO struct {
	ID        uint      `gorm:"primaryKey;autoIncrement"`
	OrderID   uuid.UUID `gorm:"type:uuid;index"`
	ProductID uuid.UUID `gorm:"type:uuid"`
	Quantity  int
	UnitPrice int64
}

// TableName specifies the database table name for line items.
func (OrderItemDTO) TableName() string {
	return "order_items"
}

// DeliveryDTO represents the persisted delivery satellite record.
type DeliveryDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID        uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	AddressID      uuid.UUID `gorm:"type:uuid"`
	Status         string    `gorm:"type:varchar(16)"`
	TrackingNumber string    `gorm:"type:varchar(32)"`
	EstimatedDate  time.Time
	DeliveredAt    *time.Time
}

// TableName specifies the database table name for delivery records.
func (DeliveryDTO) TableName() string {
	return "deliveries"
}

// fromDomain converts an order aggregate to its database representation,
// including line items and the delivery record.
func fromDomain(aggregate *order.Order) OrderDTO {
	var riderID *uuid.UUID
	if id, assigned := aggregate.Assignment().RiderID(); assigned {
		raw := id.Bytes()
		riderID = &raw
	}

	items := make([]OrderItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, OrderItemDTO{
			OrderID:   aggregate.ID().Bytes(),
			ProductID: item.ProductID().Bytes(),
			Quantity:  item.Quantity(),
			UnitPrice: item.UnitPrice(),
		})
	}

	delivery := aggregate.Delivery()
	deliveryDTO := &DeliveryDTO{
		ID:             delivery.ID().Bytes(),
		OrderID:        delivery.OrderID().Bytes(),
		AddressID:      delivery.AddressID().Bytes(),
		Status:         delivery.Status().String(),
		TrackingNumber: delivery.TrackingNumber(),
		EstimatedDate:  delivery.EstimatedDate(),
		DeliveredAt:    delivery.DeliveredAt(),
	}

	return OrderDTO{
		ID:               aggregate.ID().Bytes(),
		CustomerID:       aggregate.CustomerID().Bytes(),
		AddressID:        aggregate.AddressID().Bytes(),
		RiderID:          riderID,
		Status:           aggregate.Status().String(),
		Subtotal:         aggregate.Subtotal(),
		Tax:              aggregate.Tax(),
		Shipping:         aggregate.Shipping(),
		Total:            aggregate.Total(),
		Archived:         aggregate.Archived(),
		CreatedAt:        aggregate.CreatedAt(),
		ConfirmedAt:      aggregate.ConfirmedAt(),
		PreparingAt:      aggregate.PreparingAt(),
		ReadyAt:          aggregate.ReadyAt(),
		RiderReceivedAt:  aggregate.RiderReceivedAt(),
		OutForDeliveryAt: aggregate.OutForDeliveryAt(),
		DeliveredAt:      aggregate.DeliveredAt(),
		DeliveryPhotoURL: aggregate.DeliveryPhotoURL(),
		Items:            items,
		Delivery:         deliveryDTO,
	}
}

// toDomain converts a database DTO to an order aggregate using RestoreOrder,
// which re-checks the aggregate invariants.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}
	addressID, err := kernel.UUIDFromBytes(dto.AddressID[:])
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	assignment := order.Unassigned()
	if dto.RiderID != nil {
		riderID, riderErr := kernel.UUIDFromBytes((*dto.RiderID)[:])
		if riderErr != nil {
			return nil, riderErr
		}
		assignment, err = order.AssignedTo(riderID)
		if err != nil {
			return nil, err
		}
	}

	items := make([]order.LineItem, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		productID, itemErr := kernel.UUIDFromBytes(itemDTO.ProductID[:])
		if itemErr != nil {
			return nil, itemErr
		}
		item, itemErr := order.NewLineItem(productID, itemDTO.Quantity, itemDTO.UnitPrice)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	delivery, err := deliveryToDomain(dto.Delivery)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(order.RestoreOrderParams{
		ID:               id,
		CustomerID:       customerID,
		AddressID:        addressID,
		Items:            items,
		Subtotal:         dto.Subtotal,
		Tax:              dto.Tax,
		Shipping:         dto.Shipping,
		Total:            dto.Total,
		Status:           status,
		Assignment:       assignment,
		Archived:         dto.Archived,
		CreatedAt:        dto.CreatedAt,
		ConfirmedAt:      dto.ConfirmedAt,
		PreparingAt:      dto.PreparingAt,
		ReadyAt:          dto.ReadyAt,
		RiderReceivedAt:  dto.RiderReceivedAt,
		OutForDeliveryAt: dto.OutForDeliveryAt,
		DeliveredAt:      dto.DeliveredAt,
		DeliveryPhotoURL: dto.DeliveryPhotoURL,
		Delivery:         delivery,
	})
}

func deliveryToDomain(dto *DeliveryDTO) (*order.Delivery, error) {
	if dto == nil {
		return nil, order.ErrDeliveryIsNotConstructed
	}

	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}
	addressID, err := kernel.UUIDFromBytes(dto.AddressID[:])
	if err != nil {
		return nil, err
	}

	status, err := order.DeliveryStatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return order.RestoreDelivery(id, orderID, addressID, status, dto.EstimatedDate, dto.TrackingNumber, dto.DeliveredAt)
}
