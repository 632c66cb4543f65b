package memory

import (
	"context"

	"freight/internal/core/domain/model/driver"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/shipment"
	"freight/internal/core/domain/model/truck"
	"freight/internal/core/ports"
	"freight/internal/pkg/errs"
)

var (
	_ ports.TruckRepository    = (*repository[*truck.Truck])(nil)
	_ ports.DriverRepository   = (*repository[*driver.Driver])(nil)
	_ ports.ShipmentRepository = (*repository[*shipment.Shipment])(nil)
)

// repository adapts a recordSet to the ports repository contracts.
type repository[T Record[T]] struct {
	set recordSet[T]
}

func newRepository[T Record[T]](set recordSet[T]) *repository[T] {
	return &repository[T]{set: set}
}

// NewTruckRepository returns a repository that reads and writes the store directly,
// outside any unit of work. Queries use it.
func NewTruckRepository(store *Store[*truck.Truck]) ports.TruckRepository {
	return newRepository[*truck.Truck](store)
}

// NewDriverRepository is the driver counterpart of NewTruckRepository.
func NewDriverRepository(store *Store[*driver.Driver]) ports.DriverRepository {
	return newRepository[*driver.Driver](store)
}

// NewShipmentRepository is the shipment counterpart of NewTruckRepository.
func NewShipmentRepository(store *Store[*shipment.Shipment]) ports.ShipmentRepository {
	return newRepository[*shipment.Shipment](store)
}

func (r *repository[T]) Add(ctx context.Context, record T) (T, error) {
	var zero T
	if err := ctx.Err(); err != nil {
		return zero, err
	}
	if err := record.Validate(); err != nil {
		return zero, err
	}
	return r.set.add(record)
}

func (r *repository[T]) Update(ctx context.Context, record T) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := record.Validate(); err != nil {
		return err
	}
	return r.set.update(record)
}

func (r *repository[T]) Delete(ctx context.Context, id kernel.ID) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.set.delete(id)
	return nil
}

func (r *repository[T]) Get(ctx context.Context, id kernel.ID) (T, error) {
	var zero T
	if err := ctx.Err(); err != nil {
		return zero, err
	}
	record, ok := r.set.getByID(id)
	if !ok {
		return zero, errs.NewObjectNotFoundError(r.set.entityName(), id)
	}
	return record, nil
}

func (r *repository[T]) GetAll(ctx context.Context) ([]T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return r.set.getAll(), nil
}
