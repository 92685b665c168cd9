package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Global flags available to all commands
var (
	configFlag   string
	usernameFlag string
	passwordFlag string
	intervalFlag string
	tickFlag     string
	timeoutFlag  string
)

// rootCmd is the base command. Running it with controller addresses (or a
// config file listing them) starts the dashboard directly.
var rootCmd = &cobra.Command{
	Use:   "redfish-monitor [controller...]",
	Short: "Live power and thermal dashboard for Redfish controllers",
	Long: `redfish-monitor polls power and temperature sensors from server
management controllers over the Redfish HTTPS API and renders them in a
full-screen terminal dashboard.

Controllers come from positional arguments or from the controllers list in
.redfish-monitor.yaml. Each controller gets one panel, refreshed every poll
cycle; a controller that stops answering shows "no data available" until it
recovers.

Examples:
  redfish-monitor 10.0.0.1 10.0.0.2
  redfish-monitor --interval 2s --username root 10.0.0.1
  redfish-monitor --config ./lab.yaml`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return monitorCommand(cmd, args)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "Path to config file (default: search for .redfish-monitor.yaml)")

	rootCmd.Flags().StringVarP(&usernameFlag, "username", "u", "", "Management-API username (default from config, then \"admin\")")
	rootCmd.Flags().StringVarP(&passwordFlag, "password", "p", "", "Management-API password (default from config, then \"admin\")")
	rootCmd.Flags().StringVarP(&intervalFlag, "interval", "i", "", "Poll interval, e.g. 1s or 500ms")
	rootCmd.Flags().StringVar(&tickFlag, "tick", "", "Dashboard refresh interval, e.g. 1s")
	rootCmd.Flags().StringVar(&timeoutFlag, "timeout", "", "Per-controller request timeout, e.g. 5s")
}

// Execute runs the root command and exits non-zero on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
