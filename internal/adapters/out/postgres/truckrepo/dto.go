// Package truckrepo maps trucks to the trucks table.
package truckrepo

import (
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/truck"
)

// TruckDTO represents the database structure for persisting trucks.
// Identifiers are assigned by the engine, not by a database sequence.
type TruckDTO struct {
	ID              int64   `gorm:"primaryKey;autoIncrement:false"`
	Registration    string  `gorm:"type:varchar(32);not null"`
	Capacity        float64 `gorm:"type:double precision;not null"`
	FuelConsumption float64 `gorm:"type:double precision;not null"`
	Status          string  `gorm:"type:varchar(16);not null;index"`
}

// TableName overrides GORM's default "truck_dtos".
func (TruckDTO) TableName() string {
	return "trucks"
}

func fromDomain(t *truck.Truck) TruckDTO {
	return TruckDTO{
		ID:              int64(t.ID()),
		Registration:    t.Registration(),
		Capacity:        t.Capacity(),
		FuelConsumption: t.FuelConsumption(),
		Status:          t.Status().String(),
	}
}

func toDomain(dto TruckDTO) (*truck.Truck, error) {
	status, err := truck.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}
	return truck.RestoreTruck(kernel.ID(dto.ID), dto.Registration, dto.Capacity, dto.FuelConsumption, status)
}
