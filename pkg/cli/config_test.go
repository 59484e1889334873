package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserConfigRoundTrip(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg := &UserConfig{
		CurrentProfile: "prod",
		Profiles: map[string]Profile{
			"prod": {Driver: "sqlite3", DSN: "/srv/payroll.sqlite", LogLevel: "warn"},
			"dev":  {DSN: "dev.sqlite"},
		},
	}
	require.NoError(t, SaveUserConfig(cfg))

	loaded, err := LoadUserConfig()
	require.NoError(t, err)
	assert.Equal(t, "prod", loaded.CurrentProfile)
	assert.Equal(t, cfg.Profiles["prod"], loaded.Profiles["prod"])
	assert.Equal(t, cfg.Profiles["dev"], loaded.Profiles["dev"])
}

func TestActiveProfile(t *testing.T) {
	cfg := &UserConfig{
		CurrentProfile: "prod",
		Profiles: map[string]Profile{
			"prod": {DSN: "/srv/payroll.sqlite"},
			"dev":  {DSN: "dev.sqlite"},
		},
	}

	assert.Equal(t, "/srv/payroll.sqlite", cfg.ActiveProfile("").DSN)
	assert.Equal(t, "dev.sqlite", cfg.ActiveProfile("dev").DSN)
	// Unknown profiles resolve to an empty profile, not an error.
	assert.Equal(t, Profile{}, cfg.ActiveProfile("staging"))
}

func TestConfigSetCommand(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cmd := newRootCmd()
	cmd.SetArgs([]string{"config", "set", "dsn", "/srv/payroll.sqlite"})
	require.NoError(t, cmd.Execute())

	loaded, err := LoadUserConfig()
	require.NoError(t, err)
	assert.Equal(t, "default", loaded.CurrentProfile)
	assert.Equal(t, "/srv/payroll.sqlite", loaded.Profiles["default"].DSN)
}

func TestConfigSetCommand_UnknownKey(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cmd := newRootCmd()
	cmd.SetArgs([]string{"config", "set", "timeout", "5"})
	assert.Error(t, cmd.Execute())
}

func TestConfigUseProfileCommand(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	require.NoError(t, SaveUserConfig(&UserConfig{
		CurrentProfile: "default",
		Profiles: map[string]Profile{
			"default": {},
			"dev":     {DSN: "dev.sqlite"},
		},
	}))

	cmd := newRootCmd()
	cmd.SetArgs([]string{"config", "use-profile", "dev"})
	require.NoError(t, cmd.Execute())

	loaded, err := LoadUserConfig()
	require.NoError(t, err)
	assert.Equal(t, "dev", loaded.CurrentProfile)

	cmd = newRootCmd()
	cmd.SetArgs([]string{"config", "use-profile", "missing"})
	assert.Error(t, cmd.Execute())
}
