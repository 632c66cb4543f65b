package driver_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"freight/internal/core/domain/model/driver"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"
)

func TestNewDriver(t *testing.T) {
	d, err := driver.NewDriver(" Ivan Petrov ", "DRV-001")
	require.NoError(t, err)
	require.NoError(t, d.Validate())

	assert.True(t, d.ID().IsZero())
	assert.Equal(t, "Ivan Petrov", d.FullName())
	assert.Equal(t, "DRV-001", d.License())
	assert.True(t, d.IsAvailable())
}

func TestNewDriver_Invalid(t *testing.T) {
	_, err := driver.NewDriver("", "")

	require.ErrorIs(t, err, driver.ErrNameIsRequired)
	require.ErrorIs(t, err, driver.ErrLicenseIsRequired)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestRestoreDriver(t *testing.T) {
	d, err := driver.RestoreDriver(3, "Sergey Sidorov", "DRV-003", false)
	require.NoError(t, err)
	assert.Equal(t, kernel.ID(3), d.ID())
	assert.False(t, d.IsAvailable())

	_, err = driver.RestoreDriver(0, "Sergey Sidorov", "DRV-003", false)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestDriver_ReserveAndRelease(t *testing.T) {
	d, err := driver.RestoreDriver(1, "Ivan Petrov", "DRV-001", true)
	require.NoError(t, err)

	require.NoError(t, d.Reserve())
	assert.False(t, d.IsAvailable())

	err = d.Reserve()
	require.ErrorIs(t, err, errs.ErrResourceUnavailable)
	assert.Contains(t, err.Error(), "driver 1")

	d.Release()
	assert.True(t, d.IsAvailable())
}

func TestDriver_AssignIDOnce(t *testing.T) {
	d, err := driver.NewDriver("Petr Ivanov", "DRV-002")
	require.NoError(t, err)

	require.NoError(t, d.AssignID(2))
	require.ErrorIs(t, d.AssignID(5), errs.ErrInvalidState)
	assert.Equal(t, kernel.ID(2), d.ID())
}

func TestDriver_CloneIsIndependent(t *testing.T) {
	d, err := driver.RestoreDriver(1, "Ivan Petrov", "DRV-001", true)
	require.NoError(t, err)

	c := d.Clone()
	c.SetAvailable(false)

	assert.True(t, d.IsAvailable())
	assert.False(t, c.IsAvailable())
	assert.True(t, d.IsEqual(c))
}

func TestDriver_ZeroValueIsNotConstructed(t *testing.T) {
	var d driver.Driver
	require.ErrorIs(t, d.Validate(), driver.ErrDriverIsNotConstructed)
}
