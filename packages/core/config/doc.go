// Package config holds the runtime settings of the CLI.
//
// Settings come only from command-line flags; there is no config file
// and no environment lookup. DefaultConfig provides the baseline that
// flags override.
package config
