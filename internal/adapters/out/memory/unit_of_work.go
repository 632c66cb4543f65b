package memory

import (
	"context"
	"errors"

	"freight/internal/core/domain/model/driver"
	"freight/internal/core/domain/model/shipment"
	"freight/internal/core/domain/model/truck"
	"freight/internal/core/ports"
)

// ErrNoActiveTransaction is returned by Commit and Rollback outside Begin.
var ErrNoActiveTransaction = errors.New("no active transaction")

// UnitOfWorkFactory creates units of work over one Registry.
type UnitOfWorkFactory struct {
	registry *Registry
}

func NewUnitOfWorkFactory(registry *Registry) *UnitOfWorkFactory {
	return &UnitOfWorkFactory{registry: registry}
}

func (f *UnitOfWorkFactory) Create() ports.UnitOfWork {
	return &UnitOfWork{registry: f.registry}
}

// UnitOfWork holds the engine lock from Begin until Commit or Rollback, so
// commands run one at a time. Writes go to transactional views and reach the
// stores only on Commit; Rollback drops them.
//
// Outside a transaction the repositories read and write the stores directly.
// A UnitOfWork is not safe for use by several goroutines.
type UnitOfWork struct {
	registry  *Registry
	active    bool
	trucks    *txView[*truck.Truck]
	drivers   *txView[*driver.Driver]
	shipments *txView[*shipment.Shipment]
}

// Begin acquires the engine lock, waiting until ctx is done. Calling Begin on an
// active unit of work is a no-op.
func (uow *UnitOfWork) Begin(ctx context.Context) error {
	if uow.active {
		return nil
	}
	if err := uow.registry.acquire(ctx); err != nil {
		return err
	}

	uow.active = true
	uow.trucks = newTxView(uow.registry.trucks)
	uow.drivers = newTxView(uow.registry.drivers)
	uow.shipments = newTxView(uow.registry.shipments)
	return nil
}

// Commit applies all staged writes and releases the engine lock.
func (uow *UnitOfWork) Commit(_ context.Context) error {
	if !uow.active {
		return ErrNoActiveTransaction
	}

	uow.trucks.commit()
	uow.drivers.commit()
	uow.shipments.commit()
	uow.end()
	return nil
}

// Rollback discards staged writes and releases the engine lock.
func (uow *UnitOfWork) Rollback(_ context.Context) error {
	if !uow.active {
		return ErrNoActiveTransaction
	}

	uow.end()
	return nil
}

func (uow *UnitOfWork) TruckRepository() ports.TruckRepository {
	if uow.active {
		return newRepository[*truck.Truck](uow.trucks)
	}
	return NewTruckRepository(uow.registry.trucks)
}

func (uow *UnitOfWork) DriverRepository() ports.DriverRepository {
	if uow.active {
		return newRepository[*driver.Driver](uow.drivers)
	}
	return NewDriverRepository(uow.registry.drivers)
}

func (uow *UnitOfWork) ShipmentRepository() ports.ShipmentRepository {
	if uow.active {
		return newRepository[*shipment.Shipment](uow.shipments)
	}
	return NewShipmentRepository(uow.registry.shipments)
}

func (uow *UnitOfWork) end() {
	uow.active = false
	uow.trucks, uow.drivers, uow.shipments = nil, nil, nil
	uow.registry.release()
}
