// Package postgres persists engine snapshots in PostgreSQL through GORM.
//
// The engine itself keeps its state in memory; this package is the durable
// side. A snapshot is written by replacing every row of the trucks, drivers
// and shipments tables inside one database transaction, so readers see either
// the previous snapshot or the new one.
//
// Basic Transaction Management:
//
//	factory := NewGormUnitOfWorkFactory(db)
//	uow := factory.Create()
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() {
//	    _ = uow.Rollback(ctx)
//	}()
//
//	if _, err := uow.TruckRepository().Add(ctx, t); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
package postgres

import (
	"context"

	"gorm.io/gorm"

	"freight/internal/adapters/out/postgres/driverrepo"
	"freight/internal/adapters/out/postgres/shipmentrepo"
	"freight/internal/adapters/out/postgres/truckrepo"
	"freight/internal/core/ports"
)

var _ ports.UnitOfWorkFactory = (*GormUnitOfWorkFactory)(nil)

// GormUnitOfWorkFactory creates UnitOfWork instances sharing one GORM connection pool.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create produces a new UnitOfWork with no transaction open.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return f.create()
}

func (f *GormUnitOfWorkFactory) create() *GormUnitOfWork {
	return &GormUnitOfWork{db: f.db}
}

// GormUnitOfWork coordinates one database transaction. Repositories obtained
// while the transaction is open run inside it; repositories obtained before
// Begin use the connection pool directly.
type GormUnitOfWork struct {
	db *gorm.DB
	tx *gorm.DB
}

// Begin opens a transaction. Calling Begin again on an open unit of work is a no-op.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	tx := uow.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return tx.Error
	}

	uow.tx = tx
	return nil
}

// Commit makes the changes permanent. Returns gorm.ErrInvalidTransaction if
// no transaction is open.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback discards the changes. Returns gorm.ErrInvalidTransaction if no
// transaction is open, which makes a deferred Rollback after Commit harmless.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

func (uow *GormUnitOfWork) TruckRepository() ports.TruckRepository {
	return truckrepo.NewGormTruckRepository(uow.conn())
}

func (uow *GormUnitOfWork) DriverRepository() ports.DriverRepository {
	return driverrepo.NewGormDriverRepository(uow.conn())
}

func (uow *GormUnitOfWork) ShipmentRepository() ports.ShipmentRepository {
	return shipmentrepo.NewGormShipmentRepository(uow.conn())
}

// clear deletes every row of the engine tables.
func (uow *GormUnitOfWork) clear(ctx context.Context) error {
	conn := uow.conn().WithContext(ctx).Session(&gorm.Session{AllowGlobalUpdate: true})
	for _, model := range []any{&shipmentrepo.ShipmentDTO{}, &driverrepo.DriverDTO{}, &truckrepo.TruckDTO{}} {
		if err := conn.Delete(model).Error; err != nil {
			return err
		}
	}
	return nil
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}
