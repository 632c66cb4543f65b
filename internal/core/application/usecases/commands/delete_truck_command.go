package commands

import (
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/guard"
)

var ErrDeleteTruckCommandIsNotConstructed = errors.New(
	"DeleteTruckCommand must be created via NewDeleteTruckCommand constructor",
)

// DeleteTruckCommand removes a truck. Shipments referencing it are not checked.
type DeleteTruckCommand struct {
	truckID kernel.ID

	guard guard.ConstructorGuard
}

func NewDeleteTruckCommand(truckID kernel.ID) (DeleteTruckCommand, error) {
	if err := truckID.Validate(); err != nil {
		return DeleteTruckCommand{}, err
	}

	return DeleteTruckCommand{
		truckID: truckID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c DeleteTruckCommand) Validate() error {
	return c.guard.Validate(ErrDeleteTruckCommandIsNotConstructed)
}

func (c DeleteTruckCommand) TruckID() kernel.ID {
	return c.truckID
}
