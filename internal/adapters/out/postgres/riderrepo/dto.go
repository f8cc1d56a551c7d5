// Package riderrepo provides data transfer objects and mapping functions for
// rider persistence.
package riderrepo

import (
	"pharmadelivery/internal/core/domain/model/kernel"
	"pharmadelivery/internal/core/domain/model/rider"

	"github.com/google/uuid"
)

// RiderDTO represents the database structure for persisting rider aggregates.
type RiderDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name         string    `gorm:"type:varchar(255)"`
	Phone        string    `gorm:"type:varchar(32)"`
	VehicleType  string    `gorm:"type:varchar(32)"`
	VehiclePlate string    `gorm:"type:varchar(16)"`
	Status       string    `gorm:"type:varchar(16);index"`
}

// TableName specifies the database table name for rider entities.
func (RiderDTO) TableName() string {
	return "riders"
}

// fromDomain converts a rider aggregate to its database representation.
func fromDomain(aggregate *rider.Rider) RiderDTO {
	return RiderDTO{
		ID:           aggregate.ID().Bytes(),
		Name:         aggregate.Name(),
		Phone:        aggregate.Phone(),
		VehicleType:  aggregate.VehicleType(),
		VehiclePlate: aggregate.VehiclePlate(),
		Status:       aggregate.Status().String(),
	}
}

// toDomain converts a database DTO to a rider aggregate.
func toDomain(dto RiderDTO) (*rider.Rider, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	status, err := rider.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return rider.RestoreRider(id, dto.Name, dto.Phone, dto.VehicleType, dto.VehiclePlate, status)
}
