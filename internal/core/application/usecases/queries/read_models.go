// Package queries contains read operations for retrieving engine state.
// Queries never change the stores; they return read models detached from the
// domain objects so callers cannot mutate what the engine holds.
package queries

import (
	"context"
	"time"

	"freight/internal/core/domain/model/driver"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/shipment"
	"freight/internal/core/domain/model/truck"
)

// Readers are the read halves of the repositories. Query handlers read
// outside any unit of work.
type (
	TruckReader interface {
		Get(ctx context.Context, id kernel.ID) (*truck.Truck, error)
		GetAll(ctx context.Context) ([]*truck.Truck, error)
	}

	DriverReader interface {
		Get(ctx context.Context, id kernel.ID) (*driver.Driver, error)
		GetAll(ctx context.Context) ([]*driver.Driver, error)
	}

	ShipmentReader interface {
		Get(ctx context.Context, id kernel.ID) (*shipment.Shipment, error)
		GetAll(ctx context.Context) ([]*shipment.Shipment, error)
	}
)

// TruckResponse represents a truck in the read model.
type TruckResponse struct {
	ID              kernel.ID
	Registration    string
	Capacity        float64
	FuelConsumption float64
	Status          truck.Status
}

// DriverResponse represents a driver in the read model.
type DriverResponse struct {
	ID        kernel.ID
	FullName  string
	License   string
	Available bool
}

// ShipmentResponse represents a shipment in the read model.
// TruckID and DriverID are nil until resources are assigned; DepartureTime and
// ArrivalTime are nil until the shipment starts and completes.
type ShipmentResponse struct {
	ID            kernel.ID
	OrderNumber   string
	Description   string
	Weight        float64
	Refrigerated  bool
	TruckID       *kernel.ID
	DriverID      *kernel.ID
	Distance      float64
	PlannedDate   time.Time
	DepartureTime *time.Time
	ArrivalTime   *time.Time
	Status        shipment.Status
	Cost          kernel.Money
}

func newTruckResponse(t *truck.Truck) TruckResponse {
	return TruckResponse{
		ID:              t.ID(),
		Registration:    t.Registration(),
		Capacity:        t.Capacity(),
		FuelConsumption: t.FuelConsumption(),
		Status:          t.Status(),
	}
}

func newDriverResponse(d *driver.Driver) DriverResponse {
	return DriverResponse{
		ID:        d.ID(),
		FullName:  d.FullName(),
		License:   d.License(),
		Available: d.IsAvailable(),
	}
}

func newShipmentResponse(s *shipment.Shipment) ShipmentResponse {
	cargo := s.Cargo()
	return ShipmentResponse{
		ID:            s.ID(),
		OrderNumber:   s.OrderNumber().String(),
		Description:   cargo.Description(),
		Weight:        cargo.Weight(),
		Refrigerated:  cargo.Refrigerated(),
		TruckID:       s.TruckID(),
		DriverID:      s.DriverID(),
		Distance:      s.Distance(),
		PlannedDate:   s.PlannedDate(),
		DepartureTime: s.DepartureTime(),
		ArrivalTime:   s.ArrivalTime(),
		Status:        s.Status(),
		Cost:          s.Cost(),
	}
}

func mapAll[T any, R any](items []T, convert func(T) R) []R {
	result := make([]R, 0, len(items))
	for _, item := range items {
		result = append(result, convert(item))
	}
	return result
}
