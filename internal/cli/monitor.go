package cli

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/iryanin/redfish-monitor/internal/config"
	"github.com/iryanin/redfish-monitor/internal/errors"
	"github.com/iryanin/redfish-monitor/internal/logger"
	"github.com/iryanin/redfish-monitor/internal/monitor"
	"github.com/iryanin/redfish-monitor/internal/redfish"
)

// monitorCommand is the root command's work: resolve config, log in to every
// controller once, start the background poller, and hand the terminal to the
// dashboard until the user quits.
func monitorCommand(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args)
	if err != nil {
		return err
	}

	log := logger.Default()
	client := redfish.NewClient(cfg.Username, cfg.Password, cfg.Timeout, log)

	// One session per controller, acquired up front. A transport failure
	// here is fatal: better to fail loudly at startup than to render a
	// dashboard that can never authenticate.
	loginCtx, cancelLogin := context.WithTimeout(context.Background(), loginBudget(cfg))
	tokens, err := client.LoginAll(loginCtx, cfg.Controllers)
	cancelLogin()
	if err != nil {
		return err
	}

	store := monitor.NewStore()
	poller := monitor.NewPoller(client, store, cfg.Controllers, tokens, cfg.PollInterval, cfg.Timeout, log)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go poller.Run(ctx)

	model := monitor.NewModel(store, cfg.Controllers, cfg.RenderTick)
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return errors.WrapWithCode(err, errors.ErrTerm,
			"Dashboard terminated unexpectedly",
			"Check that this is an interactive terminal.")
	}

	return nil
}

// resolveConfig merges the config file, flags, and positional controller
// arguments into one validated Config. Precedence: flags > config file >
// defaults, and positional addresses replace the file's controllers list.
func resolveConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg, err := config.LoadOrDefault(configFlag)
	if err != nil {
		return nil, err
	}

	if len(args) > 0 {
		cfg.Controllers = args
	}
	if cmd.Flags().Changed("username") {
		cfg.Username = usernameFlag
	}
	if cmd.Flags().Changed("password") {
		cfg.Password = passwordFlag
	}
	if cmd.Flags().Changed("interval") {
		cfg.PollInterval, err = parseDurationFlag("interval", intervalFlag)
		if err != nil {
			return nil, err
		}
	}
	if cmd.Flags().Changed("tick") {
		cfg.RenderTick, err = parseDurationFlag("tick", tickFlag)
		if err != nil {
			return nil, err
		}
	}
	if cmd.Flags().Changed("timeout") {
		cfg.Timeout, err = parseDurationFlag("timeout", timeoutFlag)
		if err != nil {
			return nil, err
		}
	}

	if len(cfg.Controllers) == 0 {
		return nil, errors.New(errors.ErrConfig,
			"No controllers to monitor",
			"Pass controller addresses as arguments, or add a controllers list with 'redfish-monitor init'.")
	}

	if err := config.Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// parseDurationFlag parses a duration flag value into a time.Duration.
func parseDurationFlag(name, value string) (time.Duration, error) {
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, errors.New(errors.ErrConfig,
			fmt.Sprintf("Invalid --%s value '%s'", name, value),
			"Use a Go duration like 500ms, 1s, or 2m.")
	}
	return d, nil
}

// loginBudget bounds the whole startup login pass. Logins run in sequence,
// so the budget scales with the controller count.
func loginBudget(cfg *config.Config) time.Duration {
	n := len(cfg.Controllers)
	if n == 0 {
		n = 1
	}
	return time.Duration(n) * cfg.Timeout
}
