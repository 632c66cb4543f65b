package queries_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"freight/internal/adapters/out/memory"
	"freight/internal/core/domain/model/driver"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/shipment"
	"freight/internal/core/domain/model/truck"
)

func addTruck(t *testing.T, store *memory.Store[*truck.Truck], capacity float64, status truck.Status) *truck.Truck {
	t.Helper()
	tr, err := truck.NewTruck("AA1001-BC", capacity, 24)
	require.NoError(t, err)
	require.NoError(t, tr.ChangeStatus(status))
	added, err := store.Add(tr)
	require.NoError(t, err)
	return added
}

func addDriver(t *testing.T, store *memory.Store[*driver.Driver], name string, available bool) *driver.Driver {
	t.Helper()
	d, err := driver.NewDriver(name, "DRV-001")
	require.NoError(t, err)
	d.SetAvailable(available)
	added, err := store.Add(d)
	require.NoError(t, err)
	return added
}

func addShipment(t *testing.T, store *memory.Store[*shipment.Shipment], planned time.Time) *shipment.Shipment {
	t.Helper()
	cargo, err := shipment.NewCargo("Steel coils", 8.5, false)
	require.NoError(t, err)
	cost, err := kernel.MoneyFromString("1744.00")
	require.NoError(t, err)
	s, err := shipment.NewShipment(cargo, 320, planned, cost)
	require.NoError(t, err)
	added, err := store.Add(s)
	require.NoError(t, err)
	return added
}

func date(t *testing.T, s string) kernel.Date {
	t.Helper()
	d, err := kernel.ParseDate(s)
	require.NoError(t, err)
	return d
}
