package commands

import (
	"errors"

	"freight/internal/pkg/guard"
)

var (
	ErrSaveSnapshotCommandIsNotConstructed = errors.New(
		"SaveSnapshotCommand must be created via NewSaveSnapshotCommand constructor",
	)
	ErrLoadSnapshotCommandIsNotConstructed = errors.New(
		"LoadSnapshotCommand must be created via NewLoadSnapshotCommand constructor",
	)
)

// SaveSnapshotCommand writes the content of all entity stores to durable storage.
type SaveSnapshotCommand struct {
	guard guard.ConstructorGuard
}

func NewSaveSnapshotCommand() SaveSnapshotCommand {
	return SaveSnapshotCommand{guard: guard.NewConstructorGuard()}
}

func (c SaveSnapshotCommand) Validate() error {
	return c.guard.Validate(ErrSaveSnapshotCommandIsNotConstructed)
}

// LoadSnapshotCommand replaces the content of all entity stores with the last
// saved snapshot.
type LoadSnapshotCommand struct {
	guard guard.ConstructorGuard
}

func NewLoadSnapshotCommand() LoadSnapshotCommand {
	return LoadSnapshotCommand{guard: guard.NewConstructorGuard()}
}

func (c LoadSnapshotCommand) Validate() error {
	return c.guard.Validate(ErrLoadSnapshotCommandIsNotConstructed)
}
