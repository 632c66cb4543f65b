package cmd_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"freight/cmd"
)

func TestNewLogger(t *testing.T) {
	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		logger, err := cmd.NewLogger(&buf, "warn", "json")
		require.NoError(t, err)

		logger.Info("hidden")
		logger.Warn("shown", "component", "test")

		assert.NotContains(t, buf.String(), "hidden")
		assert.Contains(t, buf.String(), `"msg":"shown"`)
		assert.Contains(t, buf.String(), `"component":"test"`)
	})

	t.Run("text", func(t *testing.T) {
		var buf bytes.Buffer
		logger, err := cmd.NewLogger(&buf, "debug", "text")
		require.NoError(t, err)

		logger.Debug("shown")

		assert.Contains(t, buf.String(), "level=DEBUG msg=shown")
	})

	t.Run("invalid", func(t *testing.T) {
		_, err := cmd.NewLogger(&bytes.Buffer{}, "loud", "json")
		require.Error(t, err)

		_, err = cmd.NewLogger(&bytes.Buffer{}, "info", "xml")
		require.Error(t, err)
	})
}
