package ports

import (
	"context"

	"freight/internal/core/domain/model/driver"
	"freight/internal/core/domain/model/shipment"
	"freight/internal/core/domain/model/truck"
)

// Snapshot is the full content of the three entity stores.
type Snapshot struct {
	Trucks    []*truck.Truck
	Drivers   []*driver.Driver
	Shipments []*shipment.Shipment
}

// IsEmpty reports whether the snapshot holds no records at all.
func (s Snapshot) IsEmpty() bool {
	return len(s.Trucks) == 0 && len(s.Drivers) == 0 && len(s.Shipments) == 0
}

// SnapshotStore persists snapshots to durable storage.
type SnapshotStore interface {
	// Load reads the last saved snapshot. A store that was never written
	// returns an empty snapshot and no error.
	Load(ctx context.Context) (Snapshot, error)

	// Save replaces the durable content with s.
	Save(ctx context.Context, s Snapshot) error
}
