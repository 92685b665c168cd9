package cli

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resetRootCmd creates a fresh root command for testing.
// This prevents test pollution from flag state on the real root.
func resetRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "redfish-monitor",
		Short: "Live power and thermal dashboard for Redfish controllers",
	}
}

func TestCompletionBashGeneration(t *testing.T) {
	cmd := resetRootCmd()

	var buf bytes.Buffer
	err := cmd.GenBashCompletion(&buf)

	require.NoError(t, err)
	output := buf.String()

	assert.Contains(t, output, "# bash completion for redfish-monitor")
	assert.Contains(t, output, "__redfish-monitor_debug")
}

func TestCompletionZshGeneration(t *testing.T) {
	cmd := resetRootCmd()

	var buf bytes.Buffer
	err := cmd.GenZshCompletion(&buf)

	require.NoError(t, err)
	output := buf.String()

	assert.Contains(t, output, "#compdef redfish-monitor")
}

func TestRootCommandHasSubcommands(t *testing.T) {
	names := make(map[string]bool)
	for _, sub := range rootCmd.Commands() {
		names[sub.Name()] = true
	}

	assert.True(t, names["init"])
	assert.True(t, names["version"])
}
