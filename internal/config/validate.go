package config

import (
	"fmt"
	"regexp"
	"slices"
)

var localeRe = regexp.MustCompile(`^[a-z]{2}(-[A-Z]{2})?$`)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if !slices.Contains([]string{"debug", "info", "warn", "error"}, c.Log.Level) {
		return fmt.Errorf("log.level must be one of debug, info, warn, error (got %q)", c.Log.Level)
	}
	if !slices.Contains([]string{"json", "text"}, c.Log.Format) {
		return fmt.Errorf("log.format must be json or text (got %q)", c.Log.Format)
	}

	if c.Database.MaxConns <= 0 {
		return fmt.Errorf("database.max_conns must be > 0 (got %d)", c.Database.MaxConns)
	}
	if c.Database.MinConns < 0 || c.Database.MinConns > c.Database.MaxConns {
		return fmt.Errorf("database.min_conns must be in [0, max_conns] (got %d)", c.Database.MinConns)
	}

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in (0, 65535] (got %d)", c.Server.Port)
	}

	if !localeRe.MatchString(c.Xapi.DefaultLocale) {
		return fmt.Errorf("xapi.default_locale must look like \"en\" or \"en-US\" (got %q)", c.Xapi.DefaultLocale)
	}
	if c.Xapi.QueueSize <= 0 {
		return fmt.Errorf("xapi.queue_size must be > 0 (got %d)", c.Xapi.QueueSize)
	}

	return nil
}
