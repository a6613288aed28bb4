package config

import (
	"fmt"
	"slices"
	"strings"
)

var (
	logLevels  = []string{"debug", "info", "warn", "error"}
	logFormats = []string{"json", "text"}
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port)
	}
	if strings.TrimSpace(c.Dictionary.Path) == "" {
		return fmt.Errorf("dictionary.path is required")
	}
	if c.Dictionary.CompleteLimit < 1 {
		return fmt.Errorf("dictionary.complete_limit must be > 0 (got %d)", c.Dictionary.CompleteLimit)
	}
	if !slices.Contains(logLevels, strings.ToLower(c.Log.Level)) {
		return fmt.Errorf("log.level must be one of %v (got %q)", logLevels, c.Log.Level)
	}
	if !slices.Contains(logFormats, strings.ToLower(c.Log.Format)) {
		return fmt.Errorf("log.format must be one of %v (got %q)", logFormats, c.Log.Format)
	}
	return nil
}
