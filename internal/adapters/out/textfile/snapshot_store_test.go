package textfile_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"freight/internal/adapters/out/memory"
	"freight/internal/adapters/out/textfile"
	"freight/internal/core/domain/model/driver"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/shipment"
	"freight/internal/core/domain/model/truck"
	"freight/internal/core/ports"
)

func sampleSnapshot(t *testing.T) ports.Snapshot {
	t.Helper()

	available, err := truck.RestoreTruck(1, "AA1001-BC", 10, 24, truck.Available)
	require.NoError(t, err)
	onRoute, err := truck.RestoreTruck(4, "AA1004-BC", 25.5, 30, truck.OnRoute)
	require.NoError(t, err)

	ivan, err := driver.RestoreDriver(2, "Ivan Petrov", "DRV-001", false)
	require.NoError(t, err)
	petr, err := driver.RestoreDriver(3, "Petr, \"the driver\" Ivanov", "DRV-002", true)
	require.NoError(t, err)

	planned := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
	departure := time.Date(2025, 6, 10, 8, 30, 0, 0, time.UTC)

	cargo, err := shipment.NewCargo("Steel coils, rolled", 8.5, false)
	require.NoError(t, err)
	cost, err := kernel.MoneyFromString("1744.00")
	require.NoError(t, err)
	inTransit, err := shipment.RestoreShipment(
		7, kernel.NewOrderNumber(), cargo, kernel.ID(4).Ptr(), kernel.ID(2).Ptr(),
		320, planned, &departure, nil, shipment.InTransit, cost,
	)
	require.NoError(t, err)

	fish, err := shipment.NewCargo("Frozen fish", 6, true)
	require.NoError(t, err)
	fishCost, err := kernel.MoneyFromString("630.00")
	require.NoError(t, err)
	plannedShipment, err := shipment.RestoreShipment(
		9, kernel.NewOrderNumber(), fish, nil, nil,
		150, planned.AddDate(0, 0, 1), nil, nil, shipment.Planned, fishCost,
	)
	require.NoError(t, err)

	return ports.Snapshot{
		Trucks:    []*truck.Truck{available, onRoute},
		Drivers:   []*driver.Driver{ivan, petr},
		Shipments: []*shipment.Shipment{inTransit, plannedShipment},
	}
}

func TestSnapshotStore_SaveAndLoad(t *testing.T) {
	// Given
	store := textfile.NewSnapshotStore(filepath.Join(t.TempDir(), "data", "freight.txt"))
	want := sampleSnapshot(t)

	// When
	require.NoError(t, store.Save(t.Context(), want))
	got, err := store.Load(t.Context())

	// Then
	require.NoError(t, err)
	require.Len(t, got.Trucks, 2)
	require.Len(t, got.Drivers, 2)
	require.Len(t, got.Shipments, 2)

	for i := range want.Trucks {
		assert.Equal(t, want.Trucks[i].ID(), got.Trucks[i].ID())
		assert.Equal(t, want.Trucks[i].Registration(), got.Trucks[i].Registration())
		assert.InDelta(t, want.Trucks[i].Capacity(), got.Trucks[i].Capacity(), 1e-9)
		assert.Equal(t, want.Trucks[i].Status(), got.Trucks[i].Status())
	}
	for i := range want.Drivers {
		assert.Equal(t, want.Drivers[i].FullName(), got.Drivers[i].FullName())
		assert.Equal(t, want.Drivers[i].IsAvailable(), got.Drivers[i].IsAvailable())
	}

	s := got.Shipments[0]
	assert.Equal(t, want.Shipments[0].OrderNumber().String(), s.OrderNumber().String())
	assert.Equal(t, "Steel coils, rolled", s.Cargo().Description())
	assert.Equal(t, kernel.ID(4), *s.TruckID())
	assert.Equal(t, kernel.ID(2), *s.DriverID())
	assert.True(t, want.Shipments[0].DepartureTime().Equal(*s.DepartureTime()))
	assert.Nil(t, s.ArrivalTime())
	assert.Equal(t, shipment.InTransit, s.Status())
	assert.Equal(t, "1744.00", s.Cost().String())

	assert.Nil(t, got.Shipments[1].TruckID())
	assert.True(t, got.Shipments[1].Cargo().Refrigerated())
}

func TestSnapshotStore_RestoredCountersResumeAboveMaxID(t *testing.T) {
	store := textfile.NewSnapshotStore(filepath.Join(t.TempDir(), "freight.txt"))
	require.NoError(t, store.Save(t.Context(), sampleSnapshot(t)))

	loaded, err := store.Load(t.Context())
	require.NoError(t, err)

	registry := memory.NewRegistry()
	require.NoError(t, registry.Restore(t.Context(), loaded))

	assert.Equal(t, kernel.ID(5), registry.Trucks().NextID())
	assert.Equal(t, kernel.ID(4), registry.Drivers().NextID())
	assert.Equal(t, kernel.ID(10), registry.Shipments().NextID())
}

func TestSnapshotStore_Load_MissingFile(t *testing.T) {
	store := textfile.NewSnapshotStore(filepath.Join(t.TempDir(), "absent.txt"))

	got, err := store.Load(t.Context())

	require.NoError(t, err)
	assert.True(t, got.IsEmpty())
}

func TestSnapshotStore_Load_Malformed(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "record before section", content: "1,AA1001-BC,10,24,Available\n"},
		{name: "missing field", content: "[TRUCKS]\n1,AA1001-BC,10,Available\n"},
		{name: "bad number", content: "[TRUCKS]\n1,AA1001-BC,ten,24,Available\n"},
		{name: "bad status", content: "[TRUCKS]\n1,AA1001-BC,10,24,Parked\n"},
		{name: "bad availability", content: "[DRIVERS]\n1,Ivan Petrov,DRV-001,maybe\n"},
		{name: "zero id", content: "[DRIVERS]\n0,Ivan Petrov,DRV-001,true\n"},
		{name: "unbalanced quote", content: "[DRIVERS]\n1,\"Ivan Petrov,DRV-001,true\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "freight.txt")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o600))

			_, err := textfile.NewSnapshotStore(path).Load(t.Context())

			require.Error(t, err)
			assert.Contains(t, err.Error(), path)
		})
	}
}

func TestSnapshotStore_Save_ReplacesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "freight.txt")
	store := textfile.NewSnapshotStore(path)

	require.NoError(t, store.Save(t.Context(), sampleSnapshot(t)))
	require.NoError(t, store.Save(t.Context(), ports.Snapshot{}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "[TRUCKS]\n[DRIVERS]\n[SHIPMENTS]\n", string(data))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.False(t, strings.HasSuffix(entries[0].Name(), ".tmp"))
}

func TestSnapshotStore_HonoursCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(t.Context())
	cancel()
	store := textfile.NewSnapshotStore(filepath.Join(t.TempDir(), "freight.txt"))

	require.ErrorIs(t, store.Save(ctx, ports.Snapshot{}), context.Canceled)
	_, err := store.Load(ctx)
	require.ErrorIs(t, err, context.Canceled)
}
