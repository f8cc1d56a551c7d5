// Package notificationrepo provides data transfer objects and mapping
// functions for notification persistence.
package notificationrepo

import (
	"time"

	"pharmadelivery/internal/core/domain/model/kernel"
	"pharmadelivery/internal/core/domain/model/notification"

	"github.com/google/uuid"
)

// NotificationDTO represents the database structure for notifications.
type NotificationDTO struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	RecipientID uuid.UUID  `gorm:"type:uuid;index"`
	Type        string     `gorm:"type:varchar(32)"`
	Title       string     `gorm:"type:varchar(255)"`
	Message     string     `gorm:"type:text"`
	OrderID     *uuid.UUID `gorm:"type:uuid;index"`
	Read        bool       `gorm:"index"`
	CreatedAt   time.Time  `gorm:"index"`
}

// TableName specifies the database table name for notifications.
func (NotificationDTO) TableName() string {
	return "notifications"
}

// fromDomain converts a notification entity to its database representation.
func fromDomain(aggregate *notification.Notification) NotificationDTO {
	var orderID *uuid.UUID
	if id := aggregate.OrderID(); id != nil {
		raw := id.Bytes()
		orderID = &raw
	}

	return NotificationDTO{
		ID:          aggregate.ID().Bytes(),
		RecipientID: aggregate.RecipientID().Bytes(),
		Type:        aggregate.Type().String(),
		Title:       aggregate.Title(),
		Message:     aggregate.Message(),
		OrderID:     orderID,
		Read:        aggregate.Read(),
		CreatedAt:   aggregate.CreatedAt(),
	}
}

// toDomain converts a database DTO to a notification entity.
func toDomain(dto NotificationDTO) (*notification.Notification, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	recipientID, err := kernel.UUIDFromBytes(dto.RecipientID[:])
	if err != nil {
		return nil, err
	}

	kind, err := notification.TypeFromString(dto.Type)
	if err != nil {
		return nil, err
	}

	var orderID *kernel.UUID
	if dto.OrderID != nil {
		linkedID, orderErr := kernel.UUIDFromBytes((*dto.OrderID)[:])
		if orderErr != nil {
			return nil, orderErr
		}
		orderID = &linkedID
	}

	return notification.RestoreNotification(
		id, recipientID, kind, dto.Title, dto.Message, orderID, dto.Read, dto.CreatedAt)
}
