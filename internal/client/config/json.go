package config

import (
	"encoding/json"
	"os"

	"github.com/smolenkov/listshare/internal/flagx"
	"github.com/smolenkov/listshare/internal/timex"
)

// JsonConfig mirrors Config for JSON unmarshalling.
type JsonConfig struct {
	ServerAddr     string          `json:"server_addr"`
	RequestTimeout *timex.Duration `json:"request_timeout"`
}

// parseJson overlays configuration values from a JSON file, if one was
// named via the -c or -config flags. Absent fields keep their current
// values.
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

	if c.ServerAddr != "" {
		config.ServerAddr = c.ServerAddr
	}
	if c.RequestTimeout != nil {
		config.RequestTimeout = c.RequestTimeout.Duration
	}
}
