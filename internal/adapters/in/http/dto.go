package http

import (
	"time"

	"freight/internal/core/application/usecases/queries"
	"freight/internal/core/domain/model/kernel"
)

// Error is the body of every non-2xx response.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type NewTruck struct {
	Registration    string  `json:"registration" validate:"required"`
	Capacity        float64 `json:"capacity" validate:"gt=0"`
	FuelConsumption float64 `json:"fuel_consumption" validate:"gte=0"`
}

type TruckStatusChange struct {
	Status string `json:"status" validate:"required,oneof=Available OnRoute Maintenance"`
}

type Truck struct {
	ID              kernel.ID `json:"id"`
	Registration    string    `json:"registration"`
	Capacity        float64   `json:"capacity"`
	FuelConsumption float64   `json:"fuel_consumption"`
	Status          string    `json:"status"`
}

type NewDriver struct {
	FullName string `json:"full_name" validate:"required"`
	License  string `json:"license" validate:"required"`
}

// DriverAvailabilityChange uses a pointer so an omitted field is told apart
// from an explicit false.
type DriverAvailabilityChange struct {
	Available *bool `json:"available" validate:"required"`
}

type Driver struct {
	ID        kernel.ID `json:"id"`
	FullName  string    `json:"full_name"`
	License   string    `json:"license"`
	Available bool      `json:"available"`
}

// NewShipment carries the planned date either as a calendar date (2006-01-02)
// or as an RFC 3339 timestamp.
type NewShipment struct {
	Description  string  `json:"description"`
	Weight       float64 `json:"weight" validate:"gt=0"`
	Refrigerated bool    `json:"refrigerated"`
	Distance     float64 `json:"distance" validate:"gt=0"`
	PlannedDate  string  `json:"planned_date" validate:"required"`
}

type Assignment struct {
	TruckID  kernel.ID `json:"truck_id" validate:"gt=0"`
	DriverID kernel.ID `json:"driver_id" validate:"gt=0"`
}

type Shipment struct {
	ID            kernel.ID  `json:"id"`
	OrderNumber   string     `json:"order_number"`
	Description   string     `json:"description"`
	Weight        float64    `json:"weight"`
	Refrigerated  bool       `json:"refrigerated"`
	TruckID       *kernel.ID `json:"truck_id"`
	DriverID      *kernel.ID `json:"driver_id"`
	Distance      float64    `json:"distance"`
	PlannedDate   time.Time  `json:"planned_date"`
	DepartureTime *time.Time `json:"departure_time"`
	ArrivalTime   *time.Time `json:"arrival_time"`
	Status        string     `json:"status"`
	Cost          string     `json:"cost"`
}

func toTruck(t queries.TruckResponse) Truck {
	return Truck{
		ID:              t.ID,
		Registration:    t.Registration,
		Capacity:        t.Capacity,
		FuelConsumption: t.FuelConsumption,
		Status:          t.Status.String(),
	}
}

func toDriver(d queries.DriverResponse) Driver {
	return Driver{
		ID:        d.ID,
		FullName:  d.FullName,
		License:   d.License,
		Available: d.Available,
	}
}

func toShipment(s queries.ShipmentResponse) Shipment {
	return Shipment{
		ID:            s.ID,
		OrderNumber:   s.OrderNumber,
		Description:   s.Description,
		Weight:        s.Weight,
		Refrigerated:  s.Refrigerated,
		TruckID:       s.TruckID,
		DriverID:      s.DriverID,
		Distance:      s.Distance,
		PlannedDate:   s.PlannedDate,
		DepartureTime: s.DepartureTime,
		ArrivalTime:   s.ArrivalTime,
		Status:        s.Status.String(),
		Cost:          s.Cost.String(),
	}
}

func mapAll[T any, R any](items []T, convert func(T) R) []R {
	result := make([]R, 0, len(items))
	for _, item := range items {
		result = append(result, convert(item))
	}
	return result
}
