package memory_test

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"freight/internal/adapters/out/memory"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/truck"
	"freight/internal/pkg/errs"
)

func newTruck(t *testing.T, registration string, capacity float64) *truck.Truck {
	t.Helper()
	tr, err := truck.NewTruck(registration, capacity, 20)
	require.NoError(t, err)
	return tr
}

func TestStore_AddAssignsIncreasingIDs(t *testing.T) {
	store := memory.NewStore[*truck.Truck]("truck")

	first, err := store.Add(newTruck(t, "AA1001-BC", 10))
	require.NoError(t, err)
	second, err := store.Add(newTruck(t, "AA1002-BC", 20))
	require.NoError(t, err)

	assert.Equal(t, kernel.ID(1), first.ID())
	assert.Equal(t, kernel.ID(2), second.ID())
	assert.Equal(t, kernel.ID(3), store.NextID())
	assert.Equal(t, 2, store.Len())
}

func TestStore_AddDoesNotMutateArgument(t *testing.T) {
	store := memory.NewStore[*truck.Truck]("truck")
	tr := newTruck(t, "AA1001-BC", 10)

	_, err := store.Add(tr)

	require.NoError(t, err)
	assert.True(t, tr.ID().IsZero())
}

func TestStore_AddWithExplicitID(t *testing.T) {
	store := memory.NewStore[*truck.Truck]("truck")
	tr, err := truck.RestoreTruck(10, "AA1010-BC", 22, 29, truck.Available)
	require.NoError(t, err)

	_, err = store.Add(tr)
	require.NoError(t, err)
	assert.Equal(t, kernel.ID(11), store.NextID())

	_, err = store.Add(tr)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestStore_IDsAreNotReusedAfterDelete(t *testing.T) {
	store := memory.NewStore[*truck.Truck]("truck")
	added, err := store.Add(newTruck(t, "AA1001-BC", 10))
	require.NoError(t, err)

	store.Delete(added.ID())
	again, err := store.Add(newTruck(t, "AA1002-BC", 10))

	require.NoError(t, err)
	assert.Equal(t, kernel.ID(2), again.ID())
}

func TestStore_Update(t *testing.T) {
	store := memory.NewStore[*truck.Truck]("truck")
	added, err := store.Add(newTruck(t, "AA1001-BC", 10))
	require.NoError(t, err)

	require.NoError(t, added.ChangeStatus(truck.Maintenance))
	require.NoError(t, store.Update(added))

	got, ok := store.GetByID(added.ID())
	require.True(t, ok)
	assert.Equal(t, truck.Maintenance, got.Status())

	missing, err := truck.RestoreTruck(99, "XX", 1, 1, truck.Available)
	require.NoError(t, err)
	err = store.Update(missing)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestStore_DeleteAbsentIsNoOp(t *testing.T) {
	store := memory.NewStore[*truck.Truck]("truck")
	_, err := store.Add(newTruck(t, "AA1001-BC", 10))
	require.NoError(t, err)

	store.Delete(42)

	assert.Equal(t, 1, store.Len())
}

func TestStore_GetByIDMissing(t *testing.T) {
	store := memory.NewStore[*truck.Truck]("truck")

	got, ok := store.GetByID(1)

	assert.False(t, ok)
	assert.Nil(t, got)
}

func TestStore_ReadsReturnCopies(t *testing.T) {
	store := memory.NewStore[*truck.Truck]("truck")
	added, err := store.Add(newTruck(t, "AA1001-BC", 10))
	require.NoError(t, err)

	got, _ := store.GetByID(added.ID())
	require.NoError(t, got.Reserve())
	all := store.GetAll()
	require.NoError(t, all[0].ChangeStatus(truck.Maintenance))

	fresh, _ := store.GetByID(added.ID())
	assert.Equal(t, truck.Available, fresh.Status())
}

func TestStore_GetAllKeepsInsertionOrder(t *testing.T) {
	store := memory.NewStore[*truck.Truck]("truck")
	for _, reg := range []string{"C", "A", "B"} {
		_, err := store.Add(newTruck(t, reg, 10))
		require.NoError(t, err)
	}
	store.Delete(2)

	all := store.GetAll()

	require.Len(t, all, 2)
	assert.Equal(t, "C", all[0].Registration())
	assert.Equal(t, "B", all[1].Registration())
}

func TestStore_LoadData(t *testing.T) {
	// Given
	store := memory.NewStore[*truck.Truck]("truck")
	_, err := store.Add(newTruck(t, "OLD", 10))
	require.NoError(t, err)

	t3, err := truck.RestoreTruck(3, "AA1003-BC", 15, 22, truck.Available)
	require.NoError(t, err)
	t7, err := truck.RestoreTruck(7, "AA1007-BC", 18, 27, truck.OnRoute)
	require.NoError(t, err)

	// When
	require.NoError(t, store.LoadData([]*truck.Truck{t7, t3}, 7))

	// Then
	all := store.GetAll()
	require.Len(t, all, 2)
	assert.Equal(t, kernel.ID(7), all[0].ID())
	assert.Equal(t, kernel.ID(3), all[1].ID())
	assert.Equal(t, kernel.ID(7), store.MaxID())
	assert.Equal(t, kernel.ID(8), store.NextID())

	next, err := store.Add(newTruck(t, "NEW", 5))
	require.NoError(t, err)
	assert.Equal(t, kernel.ID(8), next.ID())
}

func TestStore_LoadDataWithStaleCounterKeepsExistingRecords(t *testing.T) {
	// Given records above the counter the caller passes
	store := memory.NewStore[*truck.Truck]("truck")
	t5, err := truck.RestoreTruck(5, "AA1005-BC", 15, 22, truck.Available)
	require.NoError(t, err)

	// When
	require.NoError(t, store.LoadData([]*truck.Truck{t5}, 2))
	next, err := store.Add(newTruck(t, "NEW", 5))

	// Then
	require.NoError(t, err)
	assert.Equal(t, kernel.ID(6), next.ID())
	kept, ok := store.GetByID(5)
	require.True(t, ok)
	assert.Equal(t, "AA1005-BC", kept.Registration())
	assert.Equal(t, 2, store.Len())
}

func TestStore_LoadDataRejectsDuplicates(t *testing.T) {
	store := memory.NewStore[*truck.Truck]("truck")
	t1, err := truck.RestoreTruck(1, "AA1001-BC", 10, 24, truck.Available)
	require.NoError(t, err)

	err = store.LoadData([]*truck.Truck{t1, t1}, 1)

	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	assert.Equal(t, 0, store.Len())
}

func TestStore_ConcurrentAddsGetDistinctIDs(t *testing.T) {
	store := memory.NewStore[*truck.Truck]("truck")
	const n = 50

	var wg sync.WaitGroup
	ids := make(chan kernel.ID, n)
	for range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			tr, err := truck.NewTruck("AA", 10, 20)
			if err != nil {
				return
			}
			added, err := store.Add(tr)
			if err == nil {
				ids <- added.ID()
			}
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[kernel.ID]bool)
	for id := range ids {
		assert.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
	assert.Len(t, seen, n)
	assert.Equal(t, kernel.ID(n+1), store.NextID())
}

func planned() time.Time {
	return time.Date(2025, time.June, 10, 9, 0, 0, 0, time.UTC)
}
