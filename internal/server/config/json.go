package config

import (
	"encoding/json"
	"os"

	"github.com/smolenkov/listshare/internal/flagx"
	"github.com/smolenkov/listshare/internal/timex"
)

// JsonConfig mirrors Config for JSON unmarshalling. Delay fields use
// timex.Duration so config files may write either "1s" or integer
// nanoseconds.
type JsonConfig struct {
	EndpointAddr     string          `json:"endpoint_addr"`
	DatabaseFile     string          `json:"database_file"`
	BcryptCost       int             `json:"bcrypt_cost"`
	SlowMode         *bool           `json:"slow_mode"`
	SlowModeMinDelay *timex.Duration `json:"slow_mode_min_delay"`
	SlowModeMaxDelay *timex.Duration `json:"slow_mode_max_delay"`
}

// parseJson overlays configuration values from a JSON file, if one was
// named via the -c or -config flags. Absent fields keep their current
// values. The function panics if the file cannot be read or parsed.
func parseJson(config *Config) {

	jsonConfigFile := flagx.JsonConfigFlags()

	// nothing to load
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	if c.EndpointAddr != "" {
		config.EndpointAddr = c.EndpointAddr
	}
	if c.DatabaseFile != "" {
		config.DatabaseFile = c.DatabaseFile
	}
	if c.BcryptCost != 0 {
		config.BcryptCost = c.BcryptCost
	}
	if c.SlowMode != nil {
		config.SlowMode = *c.SlowMode
	}
	if c.SlowModeMinDelay != nil {
		config.SlowModeMinDelay = c.SlowModeMinDelay.Duration
	}
	if c.SlowModeMaxDelay != nil {
		config.SlowModeMaxDelay = c.SlowModeMaxDelay.Duration
	}
}
