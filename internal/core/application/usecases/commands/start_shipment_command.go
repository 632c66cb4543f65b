package commands

import (
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/guard"
)

var ErrStartShipmentCommandIsNotConstructed = errors.New(
	"StartShipmentCommand must be created via NewStartShipmentCommand constructor",
)

// StartShipmentCommand dispatches a planned shipment with its assigned truck and driver.
type StartShipmentCommand struct {
	shipmentID kernel.ID

	guard guard.ConstructorGuard
}

func NewStartShipmentCommand(shipmentID kernel.ID) (StartShipmentCommand, error) {
	if err := shipmentID.Validate(); err != nil {
		return StartShipmentCommand{}, err
	}

	return StartShipmentCommand{
		shipmentID: shipmentID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c StartShipmentCommand) Validate() error {
	return c.guard.Validate(ErrStartShipmentCommandIsNotConstructed)
}

func (c StartShipmentCommand) ShipmentID() kernel.ID {
	return c.shipmentID
}
