package commands

import (
	"context"
	"fmt"

	"freight/internal/core/ports"
)

// Snapshotter reads and bulk-replaces the entity stores as one consistent unit.
type Snapshotter interface {
	Snapshot(ctx context.Context) (ports.Snapshot, error)
	Restore(ctx context.Context, s ports.Snapshot) error
}

// SaveSnapshotCommandHandler copies the stores under the engine lock and hands the
// copy to the snapshot store. Commands may run again while the copy is written.
type SaveSnapshotCommandHandler struct {
	stores      Snapshotter
	destination ports.SnapshotStore
}

func NewSaveSnapshotCommandHandler(stores Snapshotter, destination ports.SnapshotStore) SaveSnapshotCommandHandler {
	return SaveSnapshotCommandHandler{stores: stores, destination: destination}
}

func (h SaveSnapshotCommandHandler) Handle(ctx context.Context, cmd SaveSnapshotCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	snapshot, err := h.stores.Snapshot(ctx)
	if err != nil {
		return fmt.Errorf("take snapshot: %w", err)
	}

	if err = h.destination.Save(ctx, snapshot); err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}

	return nil
}

// LoadSnapshotCommandHandler loads the last snapshot into the stores.
// On error the stores are left unchanged; whether to continue with them is
// up to the caller.
type LoadSnapshotCommandHandler struct {
	stores Snapshotter
	source ports.SnapshotStore
}

func NewLoadSnapshotCommandHandler(stores Snapshotter, source ports.SnapshotStore) LoadSnapshotCommandHandler {
	return LoadSnapshotCommandHandler{stores: stores, source: source}
}

// Handle returns the snapshot that was loaded.
func (h LoadSnapshotCommandHandler) Handle(ctx context.Context, cmd LoadSnapshotCommand) (ports.Snapshot, error) {
	if err := cmd.Validate(); err != nil {
		return ports.Snapshot{}, err
	}

	snapshot, err := h.source.Load(ctx)
	if err != nil {
		return ports.Snapshot{}, fmt.Errorf("load snapshot: %w", err)
	}

	if err = h.stores.Restore(ctx, snapshot); err != nil {
		return ports.Snapshot{}, fmt.Errorf("restore snapshot: %w", err)
	}

	return snapshot, nil
}
