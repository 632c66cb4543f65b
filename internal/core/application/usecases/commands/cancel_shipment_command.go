package commands

import (
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/guard"
)

var ErrCancelShipmentCommandIsNotConstructed = errors.New(
	"CancelShipmentCommand must be created via NewCancelShipmentCommand constructor",
)

// CancelShipmentCommand withdraws a shipment that has not departed yet.
type CancelShipmentCommand struct {
	shipmentID kernel.ID

	guard guard.ConstructorGuard
}

func NewCancelShipmentCommand(shipmentID kernel.ID) (CancelShipmentCommand, error) {
	if err := shipmentID.Validate(); err != nil {
		return CancelShipmentCommand{}, err
	}

	return CancelShipmentCommand{
		shipmentID: shipmentID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c CancelShipmentCommand) Validate() error {
	return c.guard.Validate(ErrCancelShipmentCommandIsNotConstructed)
}

func (c CancelShipmentCommand) ShipmentID() kernel.ID {
	return c.shipmentID
}
