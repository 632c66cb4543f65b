// Package commands contains the operations that change engine state.
// Every command is a guarded value validated at construction; its handler runs
// inside a unit of work so that all checks pass before any write is committed.
package commands

import (
	"context"
	"time"

	"freight/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Each handler asks only for the repositories it touches.
type (
	// TxManager handles the transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// TruckRepoFactory provides access to the truck repository within a transaction.
	TruckRepoFactory interface {
		TruckRepository() ports.TruckRepository
	}

	// DriverRepoFactory provides access to the driver repository within a transaction.
	DriverRepoFactory interface {
		DriverRepository() ports.DriverRepository
	}

	// ShipmentRepoFactory provides access to the shipment repository within a transaction.
	ShipmentRepoFactory interface {
		ShipmentRepository() ports.ShipmentRepository
	}

	// TruckUoW manages transactions for truck-only operations.
	TruckUoW interface {
		TxManager
		TruckRepoFactory
	}

	// TruckUoWFactory creates new truck unit of work instances.
	TruckUoWFactory interface {
		Create() TruckUoW
	}

	// DriverUoW manages transactions for driver-only operations.
	DriverUoW interface {
		TxManager
		DriverRepoFactory
	}

	// DriverUoWFactory creates new driver unit of work instances.
	DriverUoWFactory interface {
		Create() DriverUoW
	}

	// ShipmentUoW manages transactions for shipment-only operations.
	ShipmentUoW interface {
		TxManager
		ShipmentRepoFactory
	}

	// ShipmentUoWFactory creates new shipment unit of work instances.
	ShipmentUoWFactory interface {
		Create() ShipmentUoW
	}

	// UoW manages transactions across shipments, trucks and drivers.
	// Used by the lifecycle commands that read or change all three.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   shipments := uow.ShipmentRepository()
	//   trucks := uow.TruckRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		TruckRepoFactory
		DriverRepoFactory
		ShipmentRepoFactory
	}

	// UoWFactory creates new unit of work instances for cross-aggregate operations.
	UoWFactory interface {
		Create() UoW
	}

	// Clock returns the current time. Handlers that stamp departure and
	// arrival take one so tests can pin the time.
	Clock func() time.Time
)
