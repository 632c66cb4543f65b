package commands_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"freight/internal/adapters/out/memory"
	"freight/internal/core/application/usecases/commands"
	"freight/internal/core/domain/model/truck"
	"freight/internal/core/ports"
)

type MockSnapshotStore struct{ mock.Mock }

func (m *MockSnapshotStore) Load(ctx context.Context) (ports.Snapshot, error) {
	args := m.Called(ctx)
	return args.Get(0).(ports.Snapshot), args.Error(1)
}

func (m *MockSnapshotStore) Save(ctx context.Context, s ports.Snapshot) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func TestSaveSnapshotCommandHandler_Handle(t *testing.T) {
	// Given
	e := newEngine()
	e.mustAddTruck(t, 10)
	e.mustAddDriver(t, "Ivan Petrov")
	e.mustCreateShipment(t, 6, 150)

	store := new(MockSnapshotStore)
	store.On("Save", mock.Anything, mock.MatchedBy(func(s ports.Snapshot) bool {
		return len(s.Trucks) == 1 && len(s.Drivers) == 1 && len(s.Shipments) == 1
	})).Return(nil).Once()

	// When
	h := commands.NewSaveSnapshotCommandHandler(e.registry, store)
	err := h.Handle(t.Context(), commands.NewSaveSnapshotCommand())

	// Then
	require.NoError(t, err)
	store.AssertExpectations(t)
}

func TestSaveSnapshotCommandHandler_Handle_StoreError(t *testing.T) {
	store := new(MockSnapshotStore)
	store.On("Save", mock.Anything, mock.Anything).Return(errors.New("disk full")).Once()

	h := commands.NewSaveSnapshotCommandHandler(memory.NewRegistry(), store)
	err := h.Handle(t.Context(), commands.NewSaveSnapshotCommand())

	require.ErrorContains(t, err, "save snapshot: disk full")
}

func TestLoadSnapshotCommandHandler_Handle(t *testing.T) {
	// Given a snapshot taken from a populated engine
	source := newEngine()
	tr := source.mustAddTruck(t, 10)
	cmd, err := commands.NewChangeTruckStatusCommand(tr.ID(), truck.Maintenance)
	require.NoError(t, err)
	require.NoError(t, source.changeStatus.Handle(t.Context(), cmd))
	source.mustCreateShipment(t, 6, 150)
	snapshot, err := source.registry.Snapshot(t.Context())
	require.NoError(t, err)

	store := new(MockSnapshotStore)
	store.On("Load", mock.Anything).Return(snapshot, nil).Once()

	// When it is loaded into an empty engine
	target := newEngine()
	h := commands.NewLoadSnapshotCommandHandler(target.registry, store)
	loaded, err := h.Handle(t.Context(), commands.NewLoadSnapshotCommand())

	// Then the stores match and identifiers continue after the loaded ones
	require.NoError(t, err)
	assert.Len(t, loaded.Trucks, 1)
	assert.Equal(t, truck.Maintenance, target.truckByID(t, tr.ID()).Status())
	assert.Equal(t, 1, target.registry.Shipments().Len())

	next := target.mustCreateShipment(t, 1, 10)
	assert.EqualValues(t, 2, next.ID())
}

func TestLoadSnapshotCommandHandler_Handle_LoadError(t *testing.T) {
	// Given
	e := newEngine()
	e.mustAddTruck(t, 10)

	store := new(MockSnapshotStore)
	store.On("Load", mock.Anything).Return(ports.Snapshot{}, errors.New("corrupt file")).Once()

	// When
	h := commands.NewLoadSnapshotCommandHandler(e.registry, store)
	_, err := h.Handle(t.Context(), commands.NewLoadSnapshotCommand())

	// Then the stores are untouched
	require.ErrorContains(t, err, "load snapshot: corrupt file")
	assert.Equal(t, 1, e.registry.Trucks().Len())
}
