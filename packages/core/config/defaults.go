package config

import "github.com/abdul-hamid-achik/httpie/packages/output"

// DefaultConfig returns a configuration with default values
func DefaultConfig() *Config {
	return &Config{
		Timeout: 0, // client default
		NoColor: false,
		Pretty:  false,
		Theme:   output.DefaultTheme,
		Verbose: false,
	}
}
