package config

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port)
	}

	if err := c.Auth.validate(); err != nil {
		return fmt.Errorf("auth: %w", err)
	}

	if _, err := time.LoadLocation(c.Study.Timezone); err != nil {
		return fmt.Errorf("study.timezone %q: %w", c.Study.Timezone, err)
	}

	if c.Maintenance.SessionSweepInterval < 0 {
		return fmt.Errorf("maintenance.session_sweep_interval must be >= 0 (got %s)", c.Maintenance.SessionSweepInterval)
	}

	switch strings.ToLower(c.Log.Format) {
	case "json", "text":
	default:
		return fmt.Errorf("log.format must be json or text (got %q)", c.Log.Format)
	}

	return nil
}

func (a *AuthConfig) validate() error {
	if a.SessionTTL <= 0 {
		return fmt.Errorf("session_ttl must be > 0 (got %s)", a.SessionTTL)
	}
	if a.PasswordHashCost < bcrypt.MinCost || a.PasswordHashCost > bcrypt.MaxCost {
		return fmt.Errorf("password_hash_cost must be in %d..%d (got %d)", bcrypt.MinCost, bcrypt.MaxCost, a.PasswordHashCost)
	}
	if strings.TrimSpace(a.CookieName) == "" {
		return fmt.Errorf("cookie_name is required")
	}
	if a.MinPasswordLen < 1 {
		return fmt.Errorf("min_password_len must be >= 1 (got %d)", a.MinPasswordLen)
	}
	if a.AttemptsPerMinute < 0 {
		return fmt.Errorf("attempts_per_minute must be >= 0 (got %d)", a.AttemptsPerMinute)
	}
	return nil
}
