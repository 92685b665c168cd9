package cli

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iryanin/redfish-monitor/internal/config"
	"github.com/iryanin/redfish-monitor/internal/errors"
)

// isolate points config discovery at an empty temp dir so tests never pick
// up a real config file.
func isolate(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("HOME", dir)
}

func TestResolveConfigNoControllers(t *testing.T) {
	isolate(t)

	_, err := resolveConfig(rootCmd, nil)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrConfig))
}

func TestResolveConfigPositionalAddresses(t *testing.T) {
	isolate(t)

	cfg, err := resolveConfig(rootCmd, []string{"10.0.0.1", "10.0.0.2:8443"})
	require.NoError(t, err)
	assert.Equal(t, []string{"10.0.0.1", "10.0.0.2:8443"}, cfg.Controllers)
	assert.Equal(t, "admin", cfg.Username)
	assert.Equal(t, time.Second, cfg.PollInterval)
}

func TestResolveConfigFlagOverrides(t *testing.T) {
	isolate(t)

	require.NoError(t, rootCmd.Flags().Set("username", "root"))
	require.NoError(t, rootCmd.Flags().Set("password", "hunter2"))
	require.NoError(t, rootCmd.Flags().Set("interval", "2s"))
	require.NoError(t, rootCmd.Flags().Set("tick", "500ms"))
	require.NoError(t, rootCmd.Flags().Set("timeout", "10s"))

	cfg, err := resolveConfig(rootCmd, []string{"10.0.0.1"})
	require.NoError(t, err)
	assert.Equal(t, "root", cfg.Username)
	assert.Equal(t, "hunter2", cfg.Password)
	assert.Equal(t, 2*time.Second, cfg.PollInterval)
	assert.Equal(t, 500*time.Millisecond, cfg.RenderTick)
	assert.Equal(t, 10*time.Second, cfg.Timeout)
}

func TestResolveConfigBadDuration(t *testing.T) {
	isolate(t)

	require.NoError(t, rootCmd.Flags().Set("interval", "fast"))

	_, err := resolveConfig(rootCmd, []string{"10.0.0.1"})
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrConfig))
}

func TestParseDurationFlag(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    time.Duration
		wantErr bool
	}{
		{name: "seconds", value: "2s", want: 2 * time.Second},
		{name: "milliseconds", value: "500ms", want: 500 * time.Millisecond},
		{name: "compound", value: "1m30s", want: 90 * time.Second},
		{name: "bare number", value: "5", wantErr: true},
		{name: "garbage", value: "fast", wantErr: true},
		{name: "empty", value: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseDurationFlag("interval", tt.value)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.IsCode(err, errors.ErrConfig))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLoginBudgetScalesWithControllers(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Timeout = 5 * time.Second

	cfg.Controllers = []string{"a"}
	assert.Equal(t, 5*time.Second, loginBudget(cfg))

	cfg.Controllers = []string{"a", "b", "c"}
	assert.Equal(t, 15*time.Second, loginBudget(cfg))

	cfg.Controllers = nil
	assert.Equal(t, 5*time.Second, loginBudget(cfg))
}
