package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, data map[string]any) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cfg.json")
	b, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o600))
	return path
}

func Test_parseJson(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	t.Run("loads from json", func(t *testing.T) {
		path := writeTempJSON(t, map[string]any{
			"endpoint_addr":       "127.0.0.1:9000",
			"database_file":       "alt.json",
			"bcrypt_cost":         12,
			"slow_mode":           true,
			"slow_mode_min_delay": "500ms",
			"slow_mode_max_delay": "3s",
		})
		os.Args = []string{"testbin", "-config", path}

		cfg := &Config{}
		cfg.LoadDefaults()
		parseJson(cfg)

		assert.Equal(t, "127.0.0.1:9000", cfg.EndpointAddr)
		assert.Equal(t, "alt.json", cfg.DatabaseFile)
		assert.Equal(t, 12, cfg.BcryptCost)
		assert.True(t, cfg.SlowMode)
		assert.Equal(t, 500*time.Millisecond, cfg.SlowModeMinDelay)
		assert.Equal(t, 3*time.Second, cfg.SlowModeMaxDelay)
	})

	t.Run("absent fields keep defaults", func(t *testing.T) {
		path := writeTempJSON(t, map[string]any{
			"endpoint_addr": "127.0.0.1:9000",
		})
		os.Args = []string{"testbin", "-c", path}

		cfg := &Config{}
		cfg.LoadDefaults()
		parseJson(cfg)

		assert.Equal(t, "127.0.0.1:9000", cfg.EndpointAddr)
		assert.Equal(t, "data/todos.json", cfg.DatabaseFile)
		assert.Equal(t, 10, cfg.BcryptCost)
	})

	t.Run("no config flag leaves config untouched", func(t *testing.T) {
		os.Args = []string{"testbin"}

		cfg := &Config{EndpointAddr: "defaults:1234"}
		parseJson(cfg)

		assert.Equal(t, "defaults:1234", cfg.EndpointAddr)
	})
}
