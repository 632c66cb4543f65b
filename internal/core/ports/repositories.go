// Package ports defines the contracts between the freight core and its adapters.
// Repositories give access to the entity stores, the unit of work groups their
// changes into one atomic step, and the snapshot store persists everything at once.
package ports

import (
	"context"

	"freight/internal/core/domain/model/driver"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/shipment"
	"freight/internal/core/domain/model/truck"
)

// TruckRepository is the persistence contract for trucks.
type TruckRepository interface {
	// Add stores a truck. A zero ID is replaced with the next free identifier;
	// the stored copy with its ID populated is returned.
	Add(ctx context.Context, t *truck.Truck) (*truck.Truck, error)

	// Update replaces an existing truck. Returns errs.ObjectNotFoundError if the ID is unknown.
	Update(ctx context.Context, t *truck.Truck) error

	// Delete removes a truck. Deleting an unknown ID is not an error.
	Delete(ctx context.Context, id kernel.ID) error

	// Get returns a copy of the truck, or errs.ObjectNotFoundError.
	Get(ctx context.Context, id kernel.ID) (*truck.Truck, error)

	// GetAll returns copies of all trucks in insertion order.
	GetAll(ctx context.Context) ([]*truck.Truck, error)
}

// DriverRepository is the persistence contract for drivers.
// It follows the same rules as TruckRepository.
type DriverRepository interface {
	Add(ctx context.Context, d *driver.Driver) (*driver.Driver, error)
	Update(ctx context.Context, d *driver.Driver) error
	Delete(ctx context.Context, id kernel.ID) error
	Get(ctx context.Context, id kernel.ID) (*driver.Driver, error)
	GetAll(ctx context.Context) ([]*driver.Driver, error)
}

// ShipmentRepository is the persistence contract for shipments.
// It follows the same rules as TruckRepository.
type ShipmentRepository interface {
	Add(ctx context.Context, s *shipment.Shipment) (*shipment.Shipment, error)
	Update(ctx context.Context, s *shipment.Shipment) error
	Delete(ctx context.Context, id kernel.ID) error
	Get(ctx context.Context, id kernel.ID) (*shipment.Shipment, error)
	GetAll(ctx context.Context) ([]*shipment.Shipment, error)
}
