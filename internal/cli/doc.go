// Package cli implements the redfish-monitor command-line interface.
//
// The package is organized around Cobra commands, with the root command
// doing the real work:
//
//	redfish-monitor [controller...]  - Start the dashboard
//	redfish-monitor init             - Create .redfish-monitor.yaml
//	redfish-monitor version          - Print version information
//
// # Startup Sequence
//
// The root command resolves its effective config in three layers: the config
// file (found via --config or directory search), then flags, then positional
// controller addresses, which replace the file's controllers list entirely.
// It then authenticates against every controller once, starts the background
// poller, and runs the Bubble Tea program in the alternate screen until the
// user quits.
//
// Startup failures (bad config, unreachable network during login) are fatal
// and reported before the terminal is taken over. Once the dashboard is up,
// per-controller failures never terminate the program; they surface as
// "no data available" panels.
package cli
