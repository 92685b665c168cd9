package config

import "time"

// CurrentConfigVersion is the schema version for the config file.
// Increment when making breaking changes to the config structure.
const CurrentConfigVersion = 1

// Config represents the complete .redfish-monitor.yaml configuration file.
type Config struct {
	Version int `yaml:"version" mapstructure:"version"`

	// Controllers are the management-controller addresses (host or host:port)
	// to poll. Order is significant: it fixes the dashboard panel order.
	Controllers []string `yaml:"controllers" mapstructure:"controllers"`

	// Username and Password are the management-API credentials used for the
	// one-time session login against every controller.
	Username string `yaml:"username" mapstructure:"username"`
	Password string `yaml:"password" mapstructure:"password"`

	// PollInterval is the sensor poll cycle length.
	PollInterval time.Duration `yaml:"poll_interval" mapstructure:"poll_interval"`

	// RenderTick is the dashboard refresh interval.
	RenderTick time.Duration `yaml:"render_tick" mapstructure:"render_tick"`

	// Timeout bounds a single HTTPS request to one controller.
	Timeout time.Duration `yaml:"timeout" mapstructure:"timeout"`
}

// DefaultConfig returns a config with factory credentials and 1s cycles.
func DefaultConfig() *Config {
	return &Config{
		Version:      CurrentConfigVersion,
		Controllers:  []string{},
		Username:     "admin",
		Password:     "admin",
		PollInterval: time.Second,
		RenderTick:   time.Second,
		Timeout:      5 * time.Second,
	}
}
