package commands

import (
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/guard"
)

var ErrChangeDriverAvailabilityCommandIsNotConstructed = errors.New(
	"ChangeDriverAvailabilityCommand must be created via NewChangeDriverAvailabilityCommand constructor",
)

// ChangeDriverAvailabilityCommand is the operator override of a driver's availability.
type ChangeDriverAvailabilityCommand struct {
	driverID  kernel.ID
	available bool

	guard guard.ConstructorGuard
}

func NewChangeDriverAvailabilityCommand(driverID kernel.ID, available bool) (ChangeDriverAvailabilityCommand, error) {
	if err := driverID.Validate(); err != nil {
		return ChangeDriverAvailabilityCommand{}, err
	}

	return ChangeDriverAvailabilityCommand{
		driverID:  driverID,
		available: available,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c ChangeDriverAvailabilityCommand) Validate() error {
	return c.guard.Validate(ErrChangeDriverAvailabilityCommandIsNotConstructed)
}

func (c ChangeDriverAvailabilityCommand) DriverID() kernel.ID {
	return c.driverID
}

func (c ChangeDriverAvailabilityCommand) Available() bool {
	return c.available
}
