package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tvibe/internal/collection"
)

// Helper function to create a temporary config file
func createTempConfigFile(t *testing.T, dir string, filename string, content string) string {
	t.Helper()
	require.NoError(t, os.MkdirAll(dir, 0755))
	tempFilePath := filepath.Join(dir, filename)
	require.NoError(t, os.WriteFile(tempFilePath, []byte(content), 0644))
	return tempFilePath
}

// withHome points the user config lookup at a temporary home directory.
func withHome(t *testing.T, home string) {
	t.Helper()
	originalGetUserConfigPath := getUserConfigPath
	originalOsUserHomeDir := osUserHomeDir
	t.Cleanup(func() {
		getUserConfigPath = originalGetUserConfigPath
		osUserHomeDir = originalOsUserHomeDir
	})

	osUserHomeDir = func() (string, error) { return home, nil }
	getUserConfigPath = func() (string, error) {
		return filepath.Join(home, userConfigDir, configFileName), nil
	}
}

func TestLoadConfig_DefaultOnly(t *testing.T) {
	withHome(t, t.TempDir())

	loadedConfig, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, GetDefaultConfig(), loadedConfig)
	assert.True(t, loadedConfig.Targets.Alacritty.IsEnabled())
	assert.False(t, loadedConfig.Targets.Nvim.IsEnabled())
	assert.Equal(t, collection.DefaultDeriveParams(), loadedConfig.DeriveParams())
	assert.Equal(t, collection.FilterNone, loadedConfig.DefaultFilter())
}

func TestLoadConfig_UserOverride(t *testing.T) {
	home := t.TempDir()
	withHome(t, home)

	createTempConfigFile(t, filepath.Join(home, userConfigDir), configFileName, `
filter: dark
palette:
  commentBlend: 0.5
targets:
  nvim:
    enabled: true
fonts:
  dirs: [/opt/fonts]
`)

	loadedConfig, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, collection.FilterDark, loadedConfig.DefaultFilter())
	assert.Equal(t, "info", loadedConfig.LogLevel, "unset keys keep the default")

	p := loadedConfig.DeriveParams()
	assert.Equal(t, 0.5, p.CommentBlend)
	assert.Equal(t, collection.DefaultDimShade, p.DimShade)

	assert.True(t, loadedConfig.Targets.Nvim.IsEnabled())
	assert.Equal(t, "~/.config/nvim/colors/tvibe.lua", loadedConfig.Targets.Nvim.Path)
	assert.True(t, loadedConfig.Targets.Alacritty.IsEnabled())
	assert.Equal(t, []string{"/opt/fonts"}, loadedConfig.Fonts.Dirs)
}

func TestLoadConfig_ExplicitOverridesUser(t *testing.T) {
	home := t.TempDir()
	withHome(t, home)

	createTempConfigFile(t, filepath.Join(home, userConfigDir), configFileName, `
logLevel: debug
targets:
  alacritty:
    path: /tmp/user.toml
`)
	explicit := createTempConfigFile(t, t.TempDir(), "custom.yaml", `
targets:
  alacritty:
    enabled: false
    path: /tmp/explicit.toml
`)

	loadedConfig, err := LoadConfig(explicit)
	require.NoError(t, err)

	assert.Equal(t, "debug", loadedConfig.LogLevel)
	assert.False(t, loadedConfig.Targets.Alacritty.IsEnabled())
	assert.Equal(t, "/tmp/explicit.toml", loadedConfig.Targets.Alacritty.Path)
}

func TestLoadConfig_ExplicitMustExist(t *testing.T) {
	withHome(t, t.TempDir())

	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadConfig_MalformedYAML(t *testing.T) {
	home := t.TempDir()
	withHome(t, home)
	createTempConfigFile(t, filepath.Join(home, userConfigDir), configFileName, "filter: [dark\n")

	_, err := LoadConfig("")
	assert.ErrorContains(t, err, "error loading user config")
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{name: "filter", content: "filter: sepia\n", wantErr: "filter"},
		{name: "log level", content: "logLevel: loud\n", wantErr: "logLevel"},
		{name: "dim shade", content: "palette:\n  dimShade: -2\n", wantErr: "palette.dimShade"},
		{name: "comment blend", content: "palette:\n  commentBlend: 1.5\n", wantErr: "palette.commentBlend"},
		{name: "code selection blend", content: "palette:\n  codeSelectionBlend: -0.1\n", wantErr: "palette.codeSelectionBlend"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			withHome(t, t.TempDir())
			path := createTempConfigFile(t, t.TempDir(), configFileName, tt.content)

			_, err := LoadConfig(path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "invalid configuration")
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidate_EnabledTargetNeedsPath(t *testing.T) {
	cfg := GetDefaultConfig()
	cfg.Targets.Nvim = TargetConfig{Enabled: boolPtr(true)}
	assert.ErrorContains(t, cfg.Validate(), "targets.nvim.path")

	cfg.Targets.Nvim.Enabled = boolPtr(false)
	assert.NoError(t, cfg.Validate())
}

func TestExpandPath(t *testing.T) {
	withHome(t, "/home/tester")
	t.Setenv("TVIBE_TEST_DIR", "/srv/themes")

	tests := []struct {
		in   string
		want string
	}{
		{"~", "/home/tester"},
		{"~/.config/alacritty/alacritty.toml", "/home/tester/.config/alacritty/alacritty.toml"},
		{"$TVIBE_TEST_DIR/x.lua", "/srv/themes/x.lua"},
		{"/etc/tvibe.yaml", "/etc/tvibe.yaml"},
		{"~other/file", "~other/file"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ExpandPath(tt.in), tt.in)
	}
}

func TestGetUserConfigDir(t *testing.T) {
	withHome(t, "/home/tester")
	dir, err := GetUserConfigDir()
	require.NoError(t, err)
	assert.Equal(t, "/home/tester/.config/tvibe", dir)
}
