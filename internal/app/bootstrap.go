package app

import (
	"context"
	"fmt"
	"os"

	"tvibe/internal/config"
	"tvibe/pkg/logging"
)

// Application ties the loaded configuration to the theme and font sources.
type Application struct {
	config   *Config
	services *Services
	level    logging.LogLevel
}

// NewApplication creates and initializes a new application instance
func NewApplication(cfg *Config) (*Application, error) {
	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	logging.InitForCLI(level, os.Stderr)

	tvibeCfg, err := config.LoadConfig(cfg.ConfigPath)
	if err != nil {
		logging.Error("Bootstrap", err, "Failed to load configuration")
		return nil, fmt.Errorf("failed to load tvibe configuration: %w", err)
	}
	cfg.TvibeConfig = &tvibeCfg

	// The flag wins over the file.
	if cfg.LogLevel == "" && tvibeCfg.LogLevel != "" {
		level, _ = logging.ParseLevel(tvibeCfg.LogLevel)
		logging.InitForCLI(level, os.Stderr)
	}

	if cfg.Stdout == nil {
		cfg.Stdout = os.Stdout
	}

	services, err := InitializeServices(cfg)
	if err != nil {
		logging.Error("Bootstrap", err, "Failed to initialize services")
		return nil, err
	}

	return &Application{
		config:   cfg,
		services: services,
		level:    level,
	}, nil
}

// Services exposes the opened data sources.
func (a *Application) Services() *Services {
	return a.services
}

// Run resolves the requested theme and font, then shows or applies them.
func (a *Application) Run(ctx context.Context) error {
	if a.config.Options.showing() {
		return a.runShow(ctx)
	}
	return a.runApply(ctx)
}
