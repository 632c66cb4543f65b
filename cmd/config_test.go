package cmd_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"freight/cmd"
)

// unsetEnv removes keys for the duration of the test.
func unsetEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, key := range keys {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

var configKeys = []string{
	"HTTP_PORT", "STORAGE", "DATA_FILE", "DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_NAME",
	"DB_SSLMODE", "AUTOSAVE_SCHEDULE", "REPORT_SCHEDULE", "SEED_DEMO_DATA", "LOG_LEVEL", "LOG_FORMAT",
}

func TestLoadConfig_Defaults(t *testing.T) {
	unsetEnv(t, configKeys...)

	cfg, err := cmd.LoadConfig(filepath.Join(t.TempDir(), "missing.env"))

	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.Equal(t, cmd.StorageFile, cfg.Storage)
	assert.Equal(t, "data/freight.dat", cfg.DataFile)
	assert.Equal(t, "0 */5 * * * *", cfg.AutosaveSchedule)
	assert.True(t, cfg.SeedDemoData)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
}

func TestLoadConfig_EnvFileAndOverrides(t *testing.T) {
	// Given a dotenv file and one variable already set in the environment
	unsetEnv(t, configKeys...)
	envFile := filepath.Join(t.TempDir(), ".env")
	content := "STORAGE=postgres\nDB_HOST=db\nDB_PASSWORD=secret\nHTTP_PORT=9000\nSEED_DEMO_DATA=false\n"
	require.NoError(t, os.WriteFile(envFile, []byte(content), 0o600))
	t.Setenv("HTTP_PORT", "9100")

	// When
	cfg, err := cmd.LoadConfig(envFile)

	// Then
	require.NoError(t, err)
	assert.Equal(t, cmd.StoragePostgres, cfg.Storage)
	assert.Equal(t, "9100", cfg.HTTPPort)
	assert.False(t, cfg.SeedDemoData)
	assert.Equal(t, "host=db port=5432 user=postgres password=secret dbname=freight sslmode=disable", cfg.DSN())
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"unknown storage", "STORAGE", "redis"},
		{"port not numeric", "HTTP_PORT", "http"},
		{"unknown log level", "LOG_LEVEL", "verbose"},
		{"unknown log format", "LOG_FORMAT", "xml"},
		{"seed not a bool", "SEED_DEMO_DATA", "sometimes"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			unsetEnv(t, configKeys...)
			t.Setenv(tt.key, tt.value)

			_, err := cmd.LoadConfig("")

			require.Error(t, err)
		})
	}
}
