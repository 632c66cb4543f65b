package cmd

import (
	"context"
	"log/slog"
	"time"

	httpin "freight/internal/adapters/in/http"
	"freight/internal/adapters/out/memory"
	"freight/internal/core/application/usecases/commands"
	"freight/internal/core/application/usecases/queries"
	"freight/internal/core/ports"
	"freight/internal/jobs"
)

// CompositionRoot owns the in-memory engine state and builds every handler on top of it.
type CompositionRoot struct {
	registry   *memory.Registry
	uowFactory *memory.UnitOfWorkFactory
	snapshots  ports.SnapshotStore
	logger     *slog.Logger
	now        commands.Clock
}

func NewCompositionRoot(snapshots ports.SnapshotStore, logger *slog.Logger) *CompositionRoot {
	registry := memory.NewRegistry()
	return &CompositionRoot{
		registry:   registry,
		uowFactory: memory.NewUnitOfWorkFactory(registry),
		snapshots:  snapshots,
		logger:     logger,
		now:        time.Now,
	}
}

// Bootstrap loads the last snapshot and seeds demo data into an empty engine.
// A snapshot that cannot be read is logged and the engine starts empty.
func (c *CompositionRoot) Bootstrap(ctx context.Context, seed bool) {
	snapshot, err := c.CreateLoadSnapshotCommandHandler().Handle(ctx, commands.NewLoadSnapshotCommand())
	if err != nil {
		c.logger.WarnContext(ctx, "Snapshot not loaded, starting with empty stores", "error", err)
	} else {
		c.logger.InfoContext(ctx, "Snapshot loaded",
			"trucks", len(snapshot.Trucks),
			"drivers", len(snapshot.Drivers),
			"shipments", len(snapshot.Shipments),
		)
	}

	if !seed {
		return
	}
	seeded, err := c.CreateSeedDemoDataCommandHandler().Handle(ctx, commands.NewSeedDemoDataCommand())
	if err != nil {
		c.logger.ErrorContext(ctx, "Demo data not seeded", "error", err)
		return
	}
	if seeded {
		c.logger.InfoContext(ctx, "Demo data seeded")
	}
}

// Load replaces the engine state with the stored snapshot and fails when it cannot be read.
func (c *CompositionRoot) Load(ctx context.Context) error {
	_, err := c.CreateLoadSnapshotCommandHandler().Handle(ctx, commands.NewLoadSnapshotCommand())
	return err
}

// Save writes the engine state to the snapshot store.
func (c *CompositionRoot) Save(ctx context.Context) error {
	return c.CreateSaveSnapshotCommandHandler().Handle(ctx, commands.NewSaveSnapshotCommand())
}

func (c *CompositionRoot) uow() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) shipmentUoW() commands.ShipmentUoWFactory {
	return FuncShipmentUoWFactory(func() commands.ShipmentUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) truckUoW() commands.TruckUoWFactory {
	return FuncTruckUoWFactory(func() commands.TruckUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) driverUoW() commands.DriverUoWFactory {
	return FuncDriverUoWFactory(func() commands.DriverUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateShipmentCommandHandler() commands.CreateShipmentCommandHandler {
	return commands.NewCreateShipmentCommandHandler(c.shipmentUoW())
}

func (c *CompositionRoot) CreateAssignResourcesCommandHandler() commands.AssignResourcesCommandHandler {
	return commands.NewAssignResourcesCommandHandler(c.uow())
}

func (c *CompositionRoot) CreateStartShipmentCommandHandler() commands.StartShipmentCommandHandler {
	return commands.NewStartShipmentCommandHandler(c.uow(), c.now)
}

func (c *CompositionRoot) CreateCompleteShipmentCommandHandler() commands.CompleteShipmentCommandHandler {
	return commands.NewCompleteShipmentCommandHandler(c.uow(), c.now)
}

func (c *CompositionRoot) CreateCancelShipmentCommandHandler() commands.CancelShipmentCommandHandler {
	return commands.NewCancelShipmentCommandHandler(c.shipmentUoW())
}

func (c *CompositionRoot) CreateAddTruckCommandHandler() commands.AddTruckCommandHandler {
	return commands.NewAddTruckCommandHandler(c.truckUoW())
}

func (c *CompositionRoot) CreateDeleteTruckCommandHandler() commands.DeleteTruckCommandHandler {
	return commands.NewDeleteTruckCommandHandler(c.truckUoW())
}

func (c *CompositionRoot) CreateChangeTruckStatusCommandHandler() commands.ChangeTruckStatusCommandHandler {
	return commands.NewChangeTruckStatusCommandHandler(c.truckUoW())
}

func (c *CompositionRoot) CreateAddDriverCommandHandler() commands.AddDriverCommandHandler {
	return commands.NewAddDriverCommandHandler(c.driverUoW())
}

func (c *CompositionRoot) CreateDeleteDriverCommandHandler() commands.DeleteDriverCommandHandler {
	return commands.NewDeleteDriverCommandHandler(c.driverUoW())
}

func (c *CompositionRoot) CreateChangeDriverAvailabilityCommandHandler() commands.ChangeDriverAvailabilityCommandHandler {
	return commands.NewChangeDriverAvailabilityCommandHandler(c.driverUoW())
}

func (c *CompositionRoot) CreateSeedDemoDataCommandHandler() commands.SeedDemoDataCommandHandler {
	return commands.NewSeedDemoDataCommandHandler(c.uow(), c.now)
}

func (c *CompositionRoot) CreateSaveSnapshotCommandHandler() commands.SaveSnapshotCommandHandler {
	return commands.NewSaveSnapshotCommandHandler(c.registry, c.snapshots)
}

func (c *CompositionRoot) CreateLoadSnapshotCommandHandler() commands.LoadSnapshotCommandHandler {
	return commands.NewLoadSnapshotCommandHandler(c.registry, c.snapshots)
}

func (c *CompositionRoot) CreateGetShipmentQueryHandler() queries.GetShipmentQueryHandler {
	return queries.NewGetShipmentQueryHandler(memory.NewShipmentRepository(c.registry.Shipments()))
}

func (c *CompositionRoot) CreateGetAllShipmentsQueryHandler() queries.GetAllShipmentsQueryHandler {
	return queries.NewGetAllShipmentsQueryHandler(memory.NewShipmentRepository(c.registry.Shipments()))
}

func (c *CompositionRoot) CreateGetShipmentsByPeriodQueryHandler() queries.GetShipmentsByPeriodQueryHandler {
	return queries.NewGetShipmentsByPeriodQueryHandler(memory.NewShipmentRepository(c.registry.Shipments()))
}

func (c *CompositionRoot) CreateGetAllTrucksQueryHandler() queries.GetAllTrucksQueryHandler {
	return queries.NewGetAllTrucksQueryHandler(memory.NewTruckRepository(c.registry.Trucks()))
}

func (c *CompositionRoot) CreateGetAvailableTrucksQueryHandler() queries.GetAvailableTrucksQueryHandler {
	return queries.NewGetAvailableTrucksQueryHandler(memory.NewTruckRepository(c.registry.Trucks()))
}

func (c *CompositionRoot) CreateGetAllDriversQueryHandler() queries.GetAllDriversQueryHandler {
	return queries.NewGetAllDriversQueryHandler(memory.NewDriverRepository(c.registry.Drivers()))
}

func (c *CompositionRoot) CreateGetAvailableDriversQueryHandler() queries.GetAvailableDriversQueryHandler {
	return queries.NewGetAvailableDriversQueryHandler(memory.NewDriverRepository(c.registry.Drivers()))
}

// HTTPHandlers collects the use cases served by the HTTP API.
func (c *CompositionRoot) HTTPHandlers() httpin.Handlers {
	return httpin.Handlers{
		CreateShipment:           c.CreateCreateShipmentCommandHandler(),
		AssignResources:          c.CreateAssignResourcesCommandHandler(),
		StartShipment:            c.CreateStartShipmentCommandHandler(),
		CompleteShipment:         c.CreateCompleteShipmentCommandHandler(),
		CancelShipment:           c.CreateCancelShipmentCommandHandler(),
		AddTruck:                 c.CreateAddTruckCommandHandler(),
		DeleteTruck:              c.CreateDeleteTruckCommandHandler(),
		ChangeTruckStatus:        c.CreateChangeTruckStatusCommandHandler(),
		AddDriver:                c.CreateAddDriverCommandHandler(),
		DeleteDriver:             c.CreateDeleteDriverCommandHandler(),
		ChangeDriverAvailability: c.CreateChangeDriverAvailabilityCommandHandler(),
		SaveSnapshot:             c.CreateSaveSnapshotCommandHandler(),
		GetShipment:              c.CreateGetShipmentQueryHandler(),
		GetAllShipments:          c.CreateGetAllShipmentsQueryHandler(),
		GetShipmentsByPeriod:     c.CreateGetShipmentsByPeriodQueryHandler(),
		GetAllTrucks:             c.CreateGetAllTrucksQueryHandler(),
		GetAvailableTrucks:       c.CreateGetAvailableTrucksQueryHandler(),
		GetAllDrivers:            c.CreateGetAllDriversQueryHandler(),
		GetAvailableDrivers:      c.CreateGetAvailableDriversQueryHandler(),
	}
}

// NewJobManager wires the autosave and daily report jobs.
func (c *CompositionRoot) NewJobManager(cfg Config) *jobs.JobManager {
	return jobs.NewJobManager(
		jobs.NewSnapshotJob(c.CreateSaveSnapshotCommandHandler(), cfg.AutosaveSchedule, c.logger),
		jobs.NewDailyReportJob(c.CreateGetShipmentsByPeriodQueryHandler(), cfg.ReportSchedule, c.now, c.logger),
	)
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}

type FuncShipmentUoWFactory func() commands.ShipmentUoW

func (f FuncShipmentUoWFactory) Create() commands.ShipmentUoW {
	return f()
}

type FuncTruckUoWFactory func() commands.TruckUoW

func (f FuncTruckUoWFactory) Create() commands.TruckUoW {
	return f()
}

type FuncDriverUoWFactory func() commands.DriverUoW

func (f FuncDriverUoWFactory) Create() commands.DriverUoW {
	return f()
}
