// Package config handles configuration for the server component,
// including defaults, JSON overlay, and command-line flags.
package config

import "time"

// Config holds runtime settings for the ListShare server.
//
// Fields:
//   - EndpointAddr: bind address for the HTTP endpoint.
//   - DatabaseFile: path to the JSON document holding all state.
//   - BcryptCost: work factor for password hashing (10 or higher).
//   - SlowMode: artificially delay every request; a development aid for
//     exercising client loading states.
//   - SlowModeMinDelay / SlowModeMaxDelay: bounds of the random delay.
type Config struct {
	EndpointAddr     string
	DatabaseFile     string
	BcryptCost       int
	SlowMode         bool
	SlowModeMinDelay time.Duration
	SlowModeMaxDelay time.Duration
}

// LoadDefaults populates Config with development defaults.
func (c *Config) LoadDefaults() {
	c.EndpointAddr = ":8080"
	c.DatabaseFile = "data/todos.json"
	c.BcryptCost = 10
	c.SlowMode = false
	c.SlowModeMinDelay = 1 * time.Second
	c.SlowModeMaxDelay = 2 * time.Second
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file and finally from command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
