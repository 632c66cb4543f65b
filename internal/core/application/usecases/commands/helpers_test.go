package commands_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"freight/internal/adapters/out/memory"
	"freight/internal/core/application/usecases/commands"
	"freight/internal/core/domain/model/driver"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/shipment"
	"freight/internal/core/domain/model/truck"
)

type funcUoWFactory func() commands.UoW

func (f funcUoWFactory) Create() commands.UoW { return f() }

type funcShipmentUoWFactory func() commands.ShipmentUoW

func (f funcShipmentUoWFactory) Create() commands.ShipmentUoW { return f() }

type funcTruckUoWFactory func() commands.TruckUoW

func (f funcTruckUoWFactory) Create() commands.TruckUoW { return f() }

type funcDriverUoWFactory func() commands.DriverUoW

func (f funcDriverUoWFactory) Create() commands.DriverUoW { return f() }

var fixedNow = time.Date(2025, time.June, 10, 8, 0, 0, 0, time.UTC)

// engine wires every command handler to one set of memory stores.
type engine struct {
	registry *memory.Registry

	createShipment commands.CreateShipmentCommandHandler
	assign         commands.AssignResourcesCommandHandler
	start          commands.StartShipmentCommandHandler
	complete       commands.CompleteShipmentCommandHandler
	cancel         commands.CancelShipmentCommandHandler
	addTruck       commands.AddTruckCommandHandler
	addDriver      commands.AddDriverCommandHandler
	deleteTruck    commands.DeleteTruckCommandHandler
	deleteDriver   commands.DeleteDriverCommandHandler
	changeStatus   commands.ChangeTruckStatusCommandHandler
	changeAvail    commands.ChangeDriverAvailabilityCommandHandler
	seed           commands.SeedDemoDataCommandHandler
}

func newEngine() *engine {
	registry := memory.NewRegistry()
	factory := memory.NewUnitOfWorkFactory(registry)
	clock := func() time.Time { return fixedNow }

	uow := funcUoWFactory(func() commands.UoW { return factory.Create() })
	shipments := funcShipmentUoWFactory(func() commands.ShipmentUoW { return factory.Create() })
	trucks := funcTruckUoWFactory(func() commands.TruckUoW { return factory.Create() })
	drivers := funcDriverUoWFactory(func() commands.DriverUoW { return factory.Create() })

	return &engine{
		registry:       registry,
		createShipment: commands.NewCreateShipmentCommandHandler(shipments),
		assign:         commands.NewAssignResourcesCommandHandler(uow),
		start:          commands.NewStartShipmentCommandHandler(uow, clock),
		complete:       commands.NewCompleteShipmentCommandHandler(uow, clock),
		cancel:         commands.NewCancelShipmentCommandHandler(shipments),
		addTruck:       commands.NewAddTruckCommandHandler(trucks),
		addDriver:      commands.NewAddDriverCommandHandler(drivers),
		deleteTruck:    commands.NewDeleteTruckCommandHandler(trucks),
		deleteDriver:   commands.NewDeleteDriverCommandHandler(drivers),
		changeStatus:   commands.NewChangeTruckStatusCommandHandler(trucks),
		changeAvail:    commands.NewChangeDriverAvailabilityCommandHandler(drivers),
		seed:           commands.NewSeedDemoDataCommandHandler(uow, clock),
	}
}

func (e *engine) mustAddTruck(t *testing.T, capacity float64) *truck.Truck {
	t.Helper()
	cmd, err := commands.NewAddTruckCommand("AA1001-BC", capacity, 24)
	require.NoError(t, err)
	tr, err := e.addTruck.Handle(t.Context(), cmd)
	require.NoError(t, err)
	return tr
}

func (e *engine) mustAddDriver(t *testing.T, name string) *driver.Driver {
	t.Helper()
	cmd, err := commands.NewAddDriverCommand(name, "DRV-001")
	require.NoError(t, err)
	d, err := e.addDriver.Handle(t.Context(), cmd)
	require.NoError(t, err)
	return d
}

func (e *engine) mustCreateShipment(t *testing.T, weight, distance float64) *shipment.Shipment {
	t.Helper()
	cmd, err := commands.NewCreateShipmentCommand("Steel coils", weight, false, distance, fixedNow)
	require.NoError(t, err)
	s, err := e.createShipment.Handle(t.Context(), cmd)
	require.NoError(t, err)
	return s
}

func (e *engine) assignResources(t *testing.T, shipmentID, truckID, driverID kernel.ID) error {
	t.Helper()
	cmd, err := commands.NewAssignResourcesCommand(shipmentID, truckID, driverID)
	require.NoError(t, err)
	return e.assign.Handle(t.Context(), cmd)
}

func (e *engine) startShipment(t *testing.T, id kernel.ID) error {
	t.Helper()
	cmd, err := commands.NewStartShipmentCommand(id)
	require.NoError(t, err)
	return e.start.Handle(t.Context(), cmd)
}

func (e *engine) completeShipment(t *testing.T, id kernel.ID) error {
	t.Helper()
	cmd, err := commands.NewCompleteShipmentCommand(id)
	require.NoError(t, err)
	return e.complete.Handle(t.Context(), cmd)
}

func (e *engine) cancelShipment(t *testing.T, id kernel.ID) error {
	t.Helper()
	cmd, err := commands.NewCancelShipmentCommand(id)
	require.NoError(t, err)
	return e.cancel.Handle(t.Context(), cmd)
}

func (e *engine) truckByID(t *testing.T, id kernel.ID) *truck.Truck {
	t.Helper()
	tr, ok := e.registry.Trucks().GetByID(id)
	require.True(t, ok)
	return tr
}

func (e *engine) driverByID(t *testing.T, id kernel.ID) *driver.Driver {
	t.Helper()
	d, ok := e.registry.Drivers().GetByID(id)
	require.True(t, ok)
	return d
}

func (e *engine) shipmentByID(t *testing.T, id kernel.ID) *shipment.Shipment {
	t.Helper()
	s, ok := e.registry.Shipments().GetByID(id)
	require.True(t, ok)
	return s
}
