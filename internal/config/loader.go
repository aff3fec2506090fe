package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"tvibe/internal/collection"
	"tvibe/pkg/logging"
)

// For mocking in tests
var osUserHomeDir = os.UserHomeDir

const (
	userConfigDir  = ".config/tvibe"
	configFileName = "config.yaml"
)

// LoadConfig layers the defaults, the user configuration and, when explicitPath
// is not empty, an explicit file. The explicit file must exist.
func LoadConfig(explicitPath string) (TvibeConfig, error) {
	// 1. Start with the default configuration
	config := GetDefaultConfig()

	// 2. User configuration is optional
	userConfigPath, err := getUserConfigPath()
	if err != nil {
		logging.Warn("Config", "Could not determine user config path: %v", err)
	} else if _, err := os.Stat(userConfigPath); err == nil {
		userConfig, err := loadConfigFromFile(userConfigPath)
		if err != nil {
			return TvibeConfig{}, fmt.Errorf("error loading user config from %s: %w", userConfigPath, err)
		}
		logging.Debug("Config", "Loaded user config from %s", userConfigPath)
		config = mergeConfigs(config, userConfig)
	}

	// 3. Explicit configuration from --config
	if explicitPath != "" {
		explicitConfig, err := loadConfigFromFile(ExpandPath(explicitPath))
		if err != nil {
			return TvibeConfig{}, fmt.Errorf("error loading config from %s: %w", explicitPath, err)
		}
		logging.Debug("Config", "Loaded config from %s", explicitPath)
		config = mergeConfigs(config, explicitConfig)
	}

	if err := config.Validate(); err != nil {
		return TvibeConfig{}, err
	}
	return config, nil
}

var getUserConfigPath = func() (string, error) {
	homeDir, err := osUserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, userConfigDir, configFileName), nil
}

// loadConfigFromFile loads a TvibeConfig from a YAML file.
func loadConfigFromFile(filePath string) (TvibeConfig, error) {
	var config TvibeConfig
	data, err := os.ReadFile(filePath)
	if err != nil {
		return TvibeConfig{}, err
	}
	if err := yaml.Unmarshal(data, &config); err != nil {
		return TvibeConfig{}, err
	}
	return config, nil
}

// mergeConfigs merges 'overlay' config into 'base' config. Fields left unset
// in the overlay keep the base value.
func mergeConfigs(base, overlay TvibeConfig) TvibeConfig {
	merged := base

	if overlay.LogLevel != "" {
		merged.LogLevel = overlay.LogLevel
	}
	if overlay.Filter != "" {
		merged.Filter = overlay.Filter
	}

	if overlay.Palette.DimShade != nil {
		merged.Palette.DimShade = overlay.Palette.DimShade
	}
	if overlay.Palette.CommentBlend != nil {
		merged.Palette.CommentBlend = overlay.Palette.CommentBlend
	}
	if overlay.Palette.CodeSelectionBlend != nil {
		merged.Palette.CodeSelectionBlend = overlay.Palette.CodeSelectionBlend
	}

	merged.Targets.Alacritty = mergeTarget(base.Targets.Alacritty, overlay.Targets.Alacritty)
	merged.Targets.Nvim = mergeTarget(base.Targets.Nvim, overlay.Targets.Nvim)

	// Font directories replace the list rather than extend it.
	if overlay.Fonts.Dirs != nil {
		merged.Fonts.Dirs = overlay.Fonts.Dirs
	}

	return merged
}

func mergeTarget(base, overlay TargetConfig) TargetConfig {
	if overlay.Enabled != nil {
		base.Enabled = overlay.Enabled
	}
	if overlay.Path != "" {
		base.Path = overlay.Path
	}
	return base
}

// Validate checks values that cannot be represented by the YAML types alone.
func (c TvibeConfig) Validate() error {
	var errs []error
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, fmt.Errorf("logLevel: %w", err))
	}
	if _, err := collection.ParseFilter(c.Filter); err != nil {
		errs = append(errs, fmt.Errorf("filter: %w", err))
	}

	checkRange := func(name string, v *float64, lo, hi float64) {
		if v != nil && (*v < lo || *v > hi) {
			errs = append(errs, fmt.Errorf("palette.%s: %g is outside [%g, %g]", name, *v, lo, hi))
		}
	}
	checkRange("dimShade", c.Palette.DimShade, -1, 1)
	checkRange("commentBlend", c.Palette.CommentBlend, 0, 1)
	checkRange("codeSelectionBlend", c.Palette.CodeSelectionBlend, 0, 1)

	if c.Targets.Alacritty.IsEnabled() && c.Targets.Alacritty.Path == "" {
		errs = append(errs, errors.New("targets.alacritty.path: required when enabled"))
	}
	if c.Targets.Nvim.IsEnabled() && c.Targets.Nvim.Path == "" {
		errs = append(errs, errors.New("targets.nvim.path: required when enabled"))
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid configuration: %w", errors.Join(errs...))
	}
	return nil
}

// DeriveParams returns the palette factors, falling back to the defaults for
// unset values.
func (c TvibeConfig) DeriveParams() collection.DeriveParams {
	p := collection.DefaultDeriveParams()
	if c.Palette.DimShade != nil {
		p.DimShade = *c.Palette.DimShade
	}
	if c.Palette.CommentBlend != nil {
		p.CommentBlend = *c.Palette.CommentBlend
	}
	if c.Palette.CodeSelectionBlend != nil {
		p.CodeSelectionBlend = *c.Palette.CodeSelectionBlend
	}
	return p
}

// DefaultFilter returns the configured filter. Validate has already rejected
// unknown values.
func (c TvibeConfig) DefaultFilter() collection.Filter {
	f, _ := collection.ParseFilter(c.Filter)
	return f
}

// ExpandPath expands environment variables and a leading "~" in p.
func ExpandPath(p string) string {
	p = os.ExpandEnv(p)
	if p == "~" || strings.HasPrefix(p, "~/") {
		home, err := osUserHomeDir()
		if err != nil {
			return p
		}
		return filepath.Join(home, strings.TrimPrefix(p, "~"))
	}
	return p
}

// GetUserConfigDir returns the user configuration directory path
func GetUserConfigDir() (string, error) {
	homeDir, err := osUserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, userConfigDir), nil
}
