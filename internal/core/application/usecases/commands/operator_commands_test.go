package commands_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"freight/internal/core/application/usecases/commands"
	"freight/internal/core/domain/model/shipment"
	"freight/internal/core/domain/model/truck"
	"freight/internal/pkg/errs"
)

func TestAddTruck(t *testing.T) {
	e := newEngine()

	first := e.mustAddTruck(t, 10)
	second := e.mustAddTruck(t, 20)

	assert.Equal(t, truck.Available, first.Status())
	assert.Greater(t, second.ID(), first.ID())
	assert.Equal(t, 2, e.registry.Trucks().Len())
}

func TestNewAddTruckCommand_InvalidInput(t *testing.T) {
	_, err := commands.NewAddTruckCommand("  ", 10, 24)
	require.ErrorIs(t, err, commands.ErrRegistrationIsRequired)

	_, err = commands.NewAddTruckCommand("AA1001-BC", 0, 24)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	_, err = commands.NewAddTruckCommand("AA1001-BC", 10, -1)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	_, err = commands.NewAddTruckCommand("AA1001-BC", math.NaN(), 24)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	_, err = commands.NewAddTruckCommand("AA1001-BC", math.Inf(1), 24)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	_, err = commands.NewAddTruckCommand("AA1001-BC", 10, math.NaN())
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestNewAddDriverCommand_InvalidInput(t *testing.T) {
	_, err := commands.NewAddDriverCommand("", "DRV-001")
	require.ErrorIs(t, err, commands.ErrFullNameIsRequired)

	_, err = commands.NewAddDriverCommand("Ivan Petrov", " ")
	require.ErrorIs(t, err, commands.ErrLicenseIsRequired)
}

func TestNewCommands_ZeroID(t *testing.T) {
	_, err := commands.NewStartShipmentCommand(0)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	_, err = commands.NewCompleteShipmentCommand(0)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	_, err = commands.NewCancelShipmentCommand(-1)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	_, err = commands.NewAssignResourcesCommand(1, 0, 1)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	_, err = commands.NewDeleteTruckCommand(0)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	_, err = commands.NewDeleteDriverCommand(0)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	_, err = commands.NewChangeTruckStatusCommand(1, truck.Unknown)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestHandlers_RejectUnconstructedCommands(t *testing.T) {
	e := newEngine()
	ctx := t.Context()

	_, err := e.createShipment.Handle(ctx, commands.CreateShipmentCommand{})
	require.ErrorIs(t, err, commands.ErrCreateShipmentCommandIsNotConstructed)

	require.ErrorIs(t, e.start.Handle(ctx, commands.StartShipmentCommand{}),
		commands.ErrStartShipmentCommandIsNotConstructed)

	require.ErrorIs(t, e.cancel.Handle(ctx, commands.CancelShipmentCommand{}),
		commands.ErrCancelShipmentCommandIsNotConstructed)

	_, err = e.seed.Handle(ctx, commands.SeedDemoDataCommand{})
	require.ErrorIs(t, err, commands.ErrSeedDemoDataCommandIsNotConstructed)
}

func TestDeleteTruck(t *testing.T) {
	e := newEngine()
	tr := e.mustAddTruck(t, 10)

	cmd, err := commands.NewDeleteTruckCommand(tr.ID())
	require.NoError(t, err)
	require.NoError(t, e.deleteTruck.Handle(t.Context(), cmd))
	assert.Equal(t, 0, e.registry.Trucks().Len())

	// deleting twice is not an error
	require.NoError(t, e.deleteTruck.Handle(t.Context(), cmd))
}

func TestDeleteDriver(t *testing.T) {
	e := newEngine()
	d := e.mustAddDriver(t, "Ivan Petrov")

	cmd, err := commands.NewDeleteDriverCommand(d.ID())
	require.NoError(t, err)
	require.NoError(t, e.deleteDriver.Handle(t.Context(), cmd))
	assert.Equal(t, 0, e.registry.Drivers().Len())

	again := e.mustAddDriver(t, "Petr Ivanov")
	assert.Greater(t, again.ID(), d.ID())
}

func TestChangeTruckStatus(t *testing.T) {
	e := newEngine()
	tr := e.mustAddTruck(t, 10)

	cmd, err := commands.NewChangeTruckStatusCommand(tr.ID(), truck.OnRoute)
	require.NoError(t, err)
	require.NoError(t, e.changeStatus.Handle(t.Context(), cmd))
	assert.Equal(t, truck.OnRoute, e.truckByID(t, tr.ID()).Status())

	missing, err := commands.NewChangeTruckStatusCommand(tr.ID()+1, truck.Available)
	require.NoError(t, err)
	require.ErrorIs(t, e.changeStatus.Handle(t.Context(), missing), errs.ErrObjectNotFound)
}

func TestChangeDriverAvailability(t *testing.T) {
	e := newEngine()
	d := e.mustAddDriver(t, "Ivan Petrov")

	cmd, err := commands.NewChangeDriverAvailabilityCommand(d.ID(), false)
	require.NoError(t, err)
	require.NoError(t, e.changeAvail.Handle(t.Context(), cmd))
	assert.False(t, e.driverByID(t, d.ID()).IsAvailable())

	missing, err := commands.NewChangeDriverAvailabilityCommand(d.ID()+1, true)
	require.NoError(t, err)
	require.ErrorIs(t, e.changeAvail.Handle(t.Context(), missing), errs.ErrObjectNotFound)
}

func TestFailedCommand_LeavesStoresUnchanged(t *testing.T) {
	// Given a started shipment and a second one sharing its driver
	e := newEngine()
	first := e.mustCreateShipment(t, 6, 150)
	second := e.mustCreateShipment(t, 3, 90)
	t1 := e.mustAddTruck(t, 10)
	t2 := e.mustAddTruck(t, 10)
	d := e.mustAddDriver(t, "Ivan Petrov")
	require.NoError(t, e.assignResources(t, first.ID(), t1.ID(), d.ID()))
	require.NoError(t, e.assignResources(t, second.ID(), t2.ID(), d.ID()))
	require.NoError(t, e.startShipment(t, first.ID()))

	before, err := e.registry.Snapshot(t.Context())
	require.NoError(t, err)

	// When the second start finds the driver busy after the truck was checked
	err = e.startShipment(t, second.ID())

	// Then nothing of the partial work is visible
	require.ErrorIs(t, err, errs.ErrResourceUnavailable)
	after, err := e.registry.Snapshot(t.Context())
	require.NoError(t, err)
	require.Len(t, after.Trucks, len(before.Trucks))
	for i := range before.Trucks {
		assert.Equal(t, before.Trucks[i].Status(), after.Trucks[i].Status())
	}
	assert.Equal(t, truck.Available, e.truckByID(t, t2.ID()).Status())
	assert.Equal(t, shipment.Planned, e.shipmentByID(t, second.ID()).Status())
}

func TestSeedDemoData(t *testing.T) {
	e := newEngine()

	seeded, err := e.seed.Handle(t.Context(), commands.NewSeedDemoDataCommand())
	require.NoError(t, err)
	assert.True(t, seeded)

	assert.Equal(t, 10, e.registry.Trucks().Len())
	assert.Equal(t, 10, e.registry.Drivers().Len())
	assert.Equal(t, 10, e.registry.Shipments().Len())

	maintenance, unavailable := 0, 0
	for _, tr := range e.registry.Trucks().GetAll() {
		if tr.Status() == truck.Maintenance {
			maintenance++
		}
	}
	for _, d := range e.registry.Drivers().GetAll() {
		if !d.IsAvailable() {
			unavailable++
		}
	}
	assert.Equal(t, 1, maintenance)
	assert.Equal(t, 2, unavailable)

	first := e.shipmentByID(t, 1)
	assert.Equal(t, "1744.00", first.Cost().String())
	assert.Equal(t, shipment.Planned, first.Status())

	seeded, err = e.seed.Handle(t.Context(), commands.NewSeedDemoDataCommand())
	require.NoError(t, err)
	assert.False(t, seeded)
	assert.Equal(t, 10, e.registry.Trucks().Len())
}
