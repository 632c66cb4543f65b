package postgres

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"freight/internal/adapters/out/postgres/driverrepo"
	"freight/internal/adapters/out/postgres/shipmentrepo"
	"freight/internal/adapters/out/postgres/truckrepo"
	"freight/internal/core/ports"
)

var _ ports.SnapshotStore = (*SnapshotStore)(nil)

// Migrate creates or updates the engine tables.
func Migrate(ctx context.Context, db *gorm.DB) error {
	if err := db.WithContext(ctx).AutoMigrate(
		&truckrepo.TruckDTO{},
		&driverrepo.DriverDTO{},
		&shipmentrepo.ShipmentDTO{},
	); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}

// SnapshotStore keeps the last saved snapshot in the trucks, drivers and
// shipments tables.
type SnapshotStore struct {
	uowFactory *GormUnitOfWorkFactory
}

func NewSnapshotStore(db *gorm.DB) *SnapshotStore {
	return &SnapshotStore{uowFactory: NewGormUnitOfWorkFactory(db)}
}

// Load reads all three tables inside one transaction. Empty tables give an
// empty snapshot.
func (s *SnapshotStore) Load(ctx context.Context) (ports.Snapshot, error) {
	uow := s.uowFactory.create()
	if err := uow.Begin(ctx); err != nil {
		return ports.Snapshot{}, fmt.Errorf("begin: %w", err)
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	trucks, err := uow.TruckRepository().GetAll(ctx)
	if err != nil {
		return ports.Snapshot{}, fmt.Errorf("read trucks: %w", err)
	}

	drivers, err := uow.DriverRepository().GetAll(ctx)
	if err != nil {
		return ports.Snapshot{}, fmt.Errorf("read drivers: %w", err)
	}

	shipments, err := uow.ShipmentRepository().GetAll(ctx)
	if err != nil {
		return ports.Snapshot{}, fmt.Errorf("read shipments: %w", err)
	}

	return ports.Snapshot{Trucks: trucks, Drivers: drivers, Shipments: shipments}, nil
}

// Save replaces the content of all three tables with the snapshot.
func (s *SnapshotStore) Save(ctx context.Context, snapshot ports.Snapshot) error {
	uow := s.uowFactory.create()
	if err := uow.Begin(ctx); err != nil {
		return fmt.Errorf("begin: %w", err)
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.clear(ctx); err != nil {
		return fmt.Errorf("clear tables: %w", err)
	}

	trucks := uow.TruckRepository()
	for _, t := range snapshot.Trucks {
		if _, err := trucks.Add(ctx, t); err != nil {
			return fmt.Errorf("write truck %s: %w", t.ID(), err)
		}
	}

	drivers := uow.DriverRepository()
	for _, d := range snapshot.Drivers {
		if _, err := drivers.Add(ctx, d); err != nil {
			return fmt.Errorf("write driver %s: %w", d.ID(), err)
		}
	}

	shipments := uow.ShipmentRepository()
	for _, sh := range snapshot.Shipments {
		if _, err := shipments.Add(ctx, sh); err != nil {
			return fmt.Errorf("write shipment %s: %w", sh.ID(), err)
		}
	}

	return uow.Commit(ctx)
}
