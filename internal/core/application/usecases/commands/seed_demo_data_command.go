package commands

import (
	"errors"

	"freight/internal/pkg/guard"
)

var ErrSeedDemoDataCommandIsNotConstructed = errors.New(
	"SeedDemoDataCommand must be created via NewSeedDemoDataCommand constructor",
)

// SeedDemoDataCommand fills empty stores with a demonstration fleet:
// ten trucks, ten drivers and ten planned shipments around today.
type SeedDemoDataCommand struct {
	guard guard.ConstructorGuard
}

func NewSeedDemoDataCommand() SeedDemoDataCommand {
	return SeedDemoDataCommand{guard: guard.NewConstructorGuard()}
}

func (c SeedDemoDataCommand) Validate() error {
	return c.guard.Validate(ErrSeedDemoDataCommandIsNotConstructed)
}
