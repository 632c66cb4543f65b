package commands

import (
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/truck"
	"freight/internal/pkg/guard"
)

var ErrChangeTruckStatusCommandIsNotConstructed = errors.New(
	"ChangeTruckStatusCommand must be created via NewChangeTruckStatusCommand constructor",
)

// ChangeTruckStatusCommand is the operator override of a truck status, used for
// example to send a truck to Maintenance.
type ChangeTruckStatusCommand struct {
	truckID kernel.ID
	status  truck.Status

	guard guard.ConstructorGuard
}

func NewChangeTruckStatusCommand(truckID kernel.ID, status truck.Status) (ChangeTruckStatusCommand, error) {
	if err := errors.Join(truckID.Validate(), status.Validate()); err != nil {
		return ChangeTruckStatusCommand{}, err
	}

	return ChangeTruckStatusCommand{
		truckID: truckID,
		status:  status,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c ChangeTruckStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeTruckStatusCommandIsNotConstructed)
}

func (c ChangeTruckStatusCommand) TruckID() kernel.ID {
	return c.truckID
}

func (c ChangeTruckStatusCommand) Status() truck.Status {
	return c.status
}
