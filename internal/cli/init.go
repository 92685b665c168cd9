package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/iryanin/redfish-monitor/internal/config"
	"github.com/iryanin/redfish-monitor/internal/errors"
)

// InitOptions holds options for the init command.
type InitOptions struct {
	Controllers    []string // Pre-specified controller addresses
	Username       string
	Password       string
	Overwrite      bool // Overwrite existing config without asking
	NonInteractive bool // Skip prompts, use flags and defaults
}

var (
	initForce          bool
	initNonInteractive bool
	initUsername       string
	initPassword       string
)

var initCmd = &cobra.Command{
	Use:   "init [controller...]",
	Short: "Create a .redfish-monitor.yaml config file",
	Long: `Create a .redfish-monitor.yaml configuration file in the current directory.

Interactively prompts for controller addresses and credentials, or takes them
from arguments and flags with --non-interactive.

Examples:
  redfish-monitor init
  redfish-monitor init --non-interactive 10.0.0.1 10.0.0.2
  redfish-monitor init --non-interactive --username root --password secret 10.0.0.1`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return Init(InitOptions{
			Controllers:    args,
			Username:       initUsername,
			Password:       initPassword,
			Overwrite:      initForce,
			NonInteractive: initNonInteractive,
		})
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().BoolVar(&initForce, "force", false, "Overwrite existing config without asking")
	initCmd.Flags().BoolVar(&initNonInteractive, "non-interactive", false, "Skip prompts, use flags and defaults")
	initCmd.Flags().StringVar(&initUsername, "username", "", "Management-API username")
	initCmd.Flags().StringVar(&initPassword, "password", "", "Management-API password")
}

// Init creates a new .redfish-monitor.yaml configuration file.
func Init(opts InitOptions) error {
	configPath := filepath.Join(".", config.ConfigFileName)

	// Check for existing config
	if _, err := os.Stat(configPath); err == nil && !opts.Overwrite {
		if opts.NonInteractive {
			return errors.New(errors.ErrConfig,
				fmt.Sprintf("Config file already exists: %s", configPath),
				"Use --force to overwrite")
		}

		var overwrite bool
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewConfirm().
					Title(fmt.Sprintf("Config file '%s' already exists. Overwrite?", config.ConfigFileName)).
					Value(&overwrite),
			),
		)
		if err := form.Run(); err != nil {
			return errors.WrapWithCode(err, errors.ErrConfig,
				"Failed to get user input",
				"Try running with --force to overwrite")
		}
		if !overwrite {
			fmt.Println("Cancelled.")
			return nil
		}
	}

	cfg := config.DefaultConfig()
	cfg.Controllers = opts.Controllers
	if opts.Username != "" {
		cfg.Username = opts.Username
	}
	if opts.Password != "" {
		cfg.Password = opts.Password
	}

	if opts.NonInteractive {
		if len(cfg.Controllers) == 0 {
			return errors.New(errors.ErrConfig,
				"At least one controller address is required in non-interactive mode",
				"Pass addresses as arguments: redfish-monitor init --non-interactive 10.0.0.1")
		}
	} else {
		if err := promptForConfig(cfg); err != nil {
			return err
		}
	}

	if err := config.Validate(cfg); err != nil {
		return err
	}

	return WriteConfig(configPath, cfg)
}

// promptForConfig fills in cfg from interactive huh prompts. Existing values
// (from arguments and flags) become the prompt defaults.
func promptForConfig(cfg *config.Config) error {
	controllers := strings.Join(cfg.Controllers, ", ")
	username := cfg.Username
	password := cfg.Password
	interval := cfg.PollInterval.String()

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Controller addresses").
				Description("Comma-separated host or host:port addresses").
				Placeholder("10.0.0.1, 10.0.0.2:8443").
				Value(&controllers).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("at least one controller address is required")
					}
					return nil
				}),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Username").
				Description("Management-API username").
				Value(&username),
			huh.NewInput().
				Title("Password").
				Description("Management-API password").
				EchoMode(huh.EchoModePassword).
				Value(&password),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Poll interval").
				Description("How often to poll sensors, e.g. 1s or 500ms").
				Value(&interval).
				Validate(func(s string) error {
					if _, err := time.ParseDuration(s); err != nil {
						return fmt.Errorf("invalid duration: %s", s)
					}
					return nil
				}),
		),
	)

	if err := form.Run(); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to get user input",
			"Try 'redfish-monitor init --non-interactive' with flags instead")
	}

	return applyPrompted(cfg, controllers, username, password, interval)
}

// applyPrompted copies prompt results into cfg. The form validates the
// interval before submission, but the parse error is still surfaced rather
// than dropped.
func applyPrompted(cfg *config.Config, controllers, username, password, interval string) error {
	d, err := time.ParseDuration(interval)
	if err != nil {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Invalid poll interval '%s'", interval),
			"Use a Go duration like 500ms or 1s")
	}

	cfg.Controllers = splitAddresses(controllers)
	cfg.Username = username
	cfg.Password = password
	cfg.PollInterval = d

	return nil
}

// WriteConfig marshals cfg to YAML and writes it to path.
func WriteConfig(path string, cfg *config.Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to serialize config",
			"This is a bug; please report it.")
	}

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			fmt.Sprintf("Failed to write %s", path),
			"Check directory permissions.")
	}

	fmt.Printf("Created %s\n", path)
	return nil
}

// splitAddresses parses a comma-separated address list, dropping empties.
func splitAddresses(s string) []string {
	var addrs []string
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			addrs = append(addrs, part)
		}
	}
	return addrs
}
