package commands

import (
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/guard"
)

var ErrDeleteDriverCommandIsNotConstructed = errors.New(
	"DeleteDriverCommand must be created via NewDeleteDriverCommand constructor",
)

// DeleteDriverCommand removes a driver. Shipments referencing it are not checked.
type DeleteDriverCommand struct {
	driverID kernel.ID

	guard guard.ConstructorGuard
}

func NewDeleteDriverCommand(driverID kernel.ID) (DeleteDriverCommand, error) {
	if err := driverID.Validate(); err != nil {
		return DeleteDriverCommand{}, err
	}

	return DeleteDriverCommand{
		driverID: driverID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c DeleteDriverCommand) Validate() error {
	return c.guard.Validate(ErrDeleteDriverCommandIsNotConstructed)
}

func (c DeleteDriverCommand) DriverID() kernel.ID {
	return c.driverID
}
