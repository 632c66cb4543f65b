package cmd_test

import (
	"bytes"
	"io"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"freight/cmd"
	"freight/internal/pkg/errs"
)

type cli struct {
	t        *testing.T
	envFile  string
	dataFile string
}

func newCLI(t *testing.T) *cli {
	t.Helper()
	unsetEnv(t, configKeys...)
	dir := t.TempDir()
	return &cli{t: t, envFile: filepath.Join(dir, "missing.env"), dataFile: filepath.Join(dir, "data", "freight.dat")}
}

func (c *cli) run(args ...string) (string, error) {
	c.t.Helper()
	c.t.Setenv("STORAGE", "file")
	c.t.Setenv("DATA_FILE", c.dataFile)
	c.t.Setenv("LOG_LEVEL", "error")

	root := cmd.NewRootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetArgs(append([]string{"--env-file", c.envFile}, args...))

	err := root.ExecuteContext(c.t.Context())
	return out.String(), err
}

func (c *cli) mustRun(args ...string) string {
	c.t.Helper()
	out, err := c.run(args...)
	require.NoError(c.t, err, "freight %v", args)
	return out
}

func TestCLI_ShipmentLifecycle(t *testing.T) {
	c := newCLI(t)

	// Given
	assert.Equal(t, "truck 1 added\n",
		c.mustRun("trucks", "add", "--registration", "AA1001-BC", "--capacity", "10", "--fuel", "24"))
	assert.Equal(t, "driver 1 added\n",
		c.mustRun("drivers", "add", "--name", "Ivan Petrov", "--license", "DRV-001"))
	assert.Equal(t, "shipment 1 created, cost 1744.00\n",
		c.mustRun("shipments", "create", "--description", "Steel coils", "--weight", "8.5", "--distance", "320",
			"--date", "2025-06-10"))

	// When
	c.mustRun("shipments", "assign", "1", "--truck", "1", "--driver", "1")
	c.mustRun("shipments", "start", "1")

	// Then every step was persisted between invocations
	show := c.mustRun("shipments", "show", "1")
	assert.Contains(t, show, "InTransit")
	assert.Contains(t, show, "1744.00")
	assert.Contains(t, c.mustRun("trucks", "list"), "OnRoute")
	assert.Contains(t, c.mustRun("drivers", "list"), "false")
	assert.NotContains(t, c.mustRun("drivers", "list", "--available"), "Ivan Petrov")

	report := c.mustRun("shipments", "list", "--from", "2025-06-10", "--to", "2025-06-10")
	assert.Contains(t, report, "Steel coils")
	assert.NotContains(t, c.mustRun("shipments", "list", "--from", "2025-06-11", "--to", "2025-06-12"), "Steel coils")

	c.mustRun("shipments", "complete", "1")
	assert.Contains(t, c.mustRun("shipments", "show", "1"), "Delivered")
	assert.Contains(t, c.mustRun("trucks", "list", "--available"), "AA1001-BC")
}

func TestCLI_FailedCommandIsNotSaved(t *testing.T) {
	c := newCLI(t)
	c.mustRun("trucks", "add", "--registration", "AA1001-BC", "--capacity", "5")
	c.mustRun("drivers", "add", "--name", "Ivan Petrov", "--license", "DRV-001")
	c.mustRun("shipments", "create", "--weight", "8", "--distance", "100", "--date", "2025-06-10")

	_, err := c.run("shipments", "assign", "1", "--truck", "1", "--driver", "1")
	require.ErrorIs(t, err, errs.ErrCapacityExceeded)

	_, err = c.run("shipments", "start", "1")
	require.ErrorIs(t, err, errs.ErrMissingAssignment)

	assert.Contains(t, c.mustRun("shipments", "show", "1"), "Planned")
}

func TestCLI_OperatorCommands(t *testing.T) {
	c := newCLI(t)
	c.mustRun("trucks", "add", "--registration", "AA1001-BC", "--capacity", "10")
	c.mustRun("drivers", "add", "--name", "Ivan Petrov", "--license", "DRV-001")

	assert.Equal(t, "truck 1 is Maintenance\n", c.mustRun("trucks", "status", "1", "Maintenance"))
	assert.NotContains(t, c.mustRun("trucks", "list", "--available"), "AA1001-BC")

	assert.Equal(t, "driver 1 available: false\n", c.mustRun("drivers", "availability", "1", "false"))

	c.mustRun("trucks", "delete", "1")
	c.mustRun("drivers", "delete", "1")
	assert.NotContains(t, c.mustRun("trucks", "list"), "AA1001-BC")
	assert.NotContains(t, c.mustRun("drivers", "list"), "Ivan Petrov")
}

func TestCLI_InvalidArguments(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"id not a number", []string{"shipments", "show", "abc"}},
		{"id not positive", []string{"shipments", "start", "0"}},
		{"unknown truck status", []string{"trucks", "status", "1", "Parked"}},
		{"availability not a bool", []string{"drivers", "availability", "1", "maybe"}},
		{"negative capacity", []string{"trucks", "add", "--registration", "X", "--capacity", "-1"}},
		{"reversed window", []string{"shipments", "list", "--from", "2025-06-12", "--to", "2025-06-10"}},
		{"weight not a number", []string{"shipments", "create", "--weight", "NaN", "--distance", "100"}},
		{"infinite distance", []string{"shipments", "create", "--weight", "1", "--distance", "+Inf"}},
		{"capacity not a number", []string{"trucks", "add", "--registration", "X", "--capacity", "NaN"}},
		{"bad date", []string{"shipments", "create", "--weight", "1", "--distance", "1", "--date", "10.06.2025"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := newCLI(t).run(tt.args...)
			require.Error(t, err)
		})
	}
}

func TestCLI_UnknownShipment(t *testing.T) {
	c := newCLI(t)

	_, err := c.run("shipments", "show", "42")

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}
