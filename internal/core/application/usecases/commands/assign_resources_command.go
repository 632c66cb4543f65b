package commands

import (
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/guard"
)

var ErrAssignResourcesCommandIsNotConstructed = errors.New(
	"AssignResourcesCommand must be created via NewAssignResourcesCommand constructor",
)

// AssignResourcesCommand binds a truck and a driver to a planned shipment.
//
// Example:
//
//	cmd, err := NewAssignResourcesCommand(shipmentID, truckID, driverID)
//	if err != nil {
//	    return err
//	}
//	if err := handler.Handle(ctx, cmd); errors.Is(err, errs.ErrCapacityExceeded) {
//	    // choose a bigger truck
//	}
type AssignResourcesCommand struct {
	shipmentID kernel.ID
	truckID    kernel.ID
	driverID   kernel.ID

	guard guard.ConstructorGuard
}

func NewAssignResourcesCommand(shipmentID, truckID, driverID kernel.ID) (AssignResourcesCommand, error) {
	if err := errors.Join(shipmentID.Validate(), truckID.Validate(), driverID.Validate()); err != nil {
		return AssignResourcesCommand{}, err
	}

	return AssignResourcesCommand{
		shipmentID: shipmentID,
		truckID:    truckID,
		driverID:   driverID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c AssignResourcesCommand) Validate() error {
	return c.guard.Validate(ErrAssignResourcesCommandIsNotConstructed)
}

func (c AssignResourcesCommand) ShipmentID() kernel.ID {
	return c.shipmentID
}

func (c AssignResourcesCommand) TruckID() kernel.ID {
	return c.truckID
}

func (c AssignResourcesCommand) DriverID() kernel.ID {
	return c.driverID
}
