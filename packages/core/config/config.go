package config

import (
	"fmt"
	"time"
)

// Config represents the CLI settings for one invocation
type Config struct {
	Timeout time.Duration // zero keeps the HTTP client's default
	NoColor bool
	Pretty  bool
	Theme   string
	Verbose bool
}

// Validate rejects settings that cannot be honoured
func (c *Config) Validate() error {
	if c.Timeout < 0 {
		return fmt.Errorf("timeout must not be negative, got %s", c.Timeout)
	}
	if c.Theme == "" {
		return fmt.Errorf("theme must not be empty")
	}
	return nil
}

// LogLevel returns the logger level name for this config
func (c *Config) LogLevel() string {
	if c.Verbose {
		return "debug"
	}
	return "warn"
}
