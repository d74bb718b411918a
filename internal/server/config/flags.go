package config

import (
	"flag"
	"os"

	"github.com/smolenkov/listshare/internal/flagx"
)

// parseFlags populates selected server Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   HTTP bind address (e.g., ":8080")
//	-f string   path to the JSON database file
//	-b int      bcrypt cost for password hashing
//	-w          enable slow mode
//
// The function first filters os.Args to only the flags it recognizes using
// flagx.FilterArgs, avoiding collisions with other components.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-f", "-b", "-w"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddr, "a", config.EndpointAddr, "address and port to run server")
	fs.StringVar(&config.DatabaseFile, "f", config.DatabaseFile, "path to JSON database file")
	fs.IntVar(&config.BcryptCost, "b", config.BcryptCost, "bcrypt cost")
	fs.BoolVar(&config.SlowMode, "w", config.SlowMode, "delay every request (dev aid)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
