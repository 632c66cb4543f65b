// Package shipmentrepo maps shipments to the shipments table.
package shipmentrepo

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/shipment"
)

// ShipmentDTO represents the database structure for persisting shipments.
// Cargo is flattened into the row; truck and driver references are plain
// columns without foreign keys because deleting a resource never touches
// the shipments that reference it.
type ShipmentDTO struct {
	ID            int64           `gorm:"primaryKey;autoIncrement:false"`
	OrderNumber   uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex"`
	Cargo         CargoDTO        `gorm:"embedded;embeddedPrefix:cargo_"`
	TruckID       *int64          `gorm:"index"`
	DriverID      *int64          `gorm:"index"`
	Distance      float64         `gorm:"type:double precision;not null"`
	PlannedDate   time.Time       `gorm:"type:timestamptz;not null;index"`
	DepartureTime *time.Time      `gorm:"type:timestamptz"`
	ArrivalTime   *time.Time      `gorm:"type:timestamptz"`
	Status        string          `gorm:"type:varchar(16);not null;index"`
	Cost          decimal.Decimal `gorm:"type:numeric(14,2);not null"`
}

// CargoDTO is embedded into the shipments table.
type CargoDTO struct {
	Description  string  `gorm:"type:text;not null"`
	Weight       float64 `gorm:"type:double precision;not null"`
	Refrigerated bool    `gorm:"not null"`
}

func (ShipmentDTO) TableName() string {
	return "shipments"
}

func fromDomain(s *shipment.Shipment) ShipmentDTO {
	cargo := s.Cargo()
	return ShipmentDTO{
		ID:          int64(s.ID()),
		OrderNumber: s.OrderNumber().UUID(),
		Cargo: CargoDTO{
			Description:  cargo.Description(),
			Weight:       cargo.Weight(),
			Refrigerated: cargo.Refrigerated(),
		},
		TruckID:       fromID(s.TruckID()),
		DriverID:      fromID(s.DriverID()),
		Distance:      s.Distance(),
		PlannedDate:   s.PlannedDate(),
		DepartureTime: s.DepartureTime(),
		ArrivalTime:   s.ArrivalTime(),
		Status:        s.Status().String(),
		Cost:          s.Cost().Amount(),
	}
}

func toDomain(dto ShipmentDTO) (*shipment.Shipment, error) {
	orderNumber, err := kernel.OrderNumberFromString(dto.OrderNumber.String())
	if err != nil {
		return nil, err
	}

	cargo, err := shipment.NewCargo(dto.Cargo.Description, dto.Cargo.Weight, dto.Cargo.Refrigerated)
	if err != nil {
		return nil, err
	}

	status, err := shipment.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	return shipment.RestoreShipment(
		kernel.ID(dto.ID),
		orderNumber,
		cargo,
		toID(dto.TruckID),
		toID(dto.DriverID),
		dto.Distance,
		dto.PlannedDate,
		dto.DepartureTime,
		dto.ArrivalTime,
		status,
		kernel.NewMoney(dto.Cost),
	)
}

func fromID(id *kernel.ID) *int64 {
	if id == nil {
		return nil
	}
	v := int64(*id)
	return &v
}

func toID(v *int64) *kernel.ID {
	if v == nil {
		return nil
	}
	return kernel.ID(*v).Ptr()
}
