package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/iryanin/redfish-monitor/internal/errors"
)

// Minimum cycle lengths. Anything shorter hammers the controllers' management
// processors, which are slow embedded chips.
const (
	MinPollInterval = 100 * time.Millisecond
	MinRenderTick   = 100 * time.Millisecond
)

// Validate checks the config for errors and returns structured error messages.
func Validate(cfg *Config) error {
	if cfg.Version > CurrentConfigVersion {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("This config is from the future (version %d, but only version %d is known)", cfg.Version, CurrentConfigVersion),
			"Update redfish-monitor, or lower the 'version' field")
	}

	seen := make(map[string]bool)
	for _, addr := range cfg.Controllers {
		if err := validateAddress(addr); err != nil {
			return err
		}
		if seen[addr] {
			return errors.New(errors.ErrConfig,
				fmt.Sprintf("Controller '%s' is listed twice", addr),
				"Each controller gets one panel; remove the duplicate entry")
		}
		seen[addr] = true
	}

	if cfg.Username == "" {
		return errors.New(errors.ErrConfig,
			"Username is empty",
			"Set 'username' in the config, or pass --username")
	}

	if cfg.PollInterval < MinPollInterval {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Poll interval %s is too short", cfg.PollInterval),
			"Use at least 100ms; management controllers respond slowly")
	}
	if cfg.RenderTick < MinRenderTick {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Render tick %s is too short", cfg.RenderTick),
			"Use at least 100ms")
	}
	if cfg.Timeout <= 0 {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Request timeout %s is not positive", cfg.Timeout),
			"Use a positive duration like 5s")
	}

	return nil
}

// validateAddress checks that a controller address is a bare host or
// host:port, not a URL.
func validateAddress(addr string) error {
	if strings.TrimSpace(addr) == "" {
		return errors.New(errors.ErrConfig,
			"Controller address is empty",
			"Remove the empty entry from 'controllers'")
	}
	if strings.Contains(addr, "://") || strings.Contains(addr, "/") {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Controller address '%s' looks like a URL", addr),
			"Use a bare host or host:port; the https:// scheme and Redfish paths are added automatically")
	}
	if strings.ContainsAny(addr, " \t") {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Controller address '%s' contains whitespace", addr),
			"Use one address per entry")
	}
	return nil
}
