package commands

import (
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/guard"
)

var ErrCompleteShipmentCommandIsNotConstructed = errors.New(
	"CompleteShipmentCommand must be created via NewCompleteShipmentCommand constructor",
)

// CompleteShipmentCommand marks an in-transit shipment as delivered.
type CompleteShipmentCommand struct {
	shipmentID kernel.ID

	guard guard.ConstructorGuard
}

func NewCompleteShipmentCommand(shipmentID kernel.ID) (CompleteShipmentCommand, error) {
	if err := shipmentID.Validate(); err != nil {
		return CompleteShipmentCommand{}, err
	}

	return CompleteShipmentCommand{
		shipmentID: shipmentID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c CompleteShipmentCommand) Validate() error {
	return c.guard.Validate(ErrCompleteShipmentCommandIsNotConstructed)
}

func (c CompleteShipmentCommand) ShipmentID() kernel.ID {
	return c.shipmentID
}
