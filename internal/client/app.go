package client

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/MKhiriev/go-config-sets/internal/adapter"
	"github.com/MKhiriev/go-config-sets/internal/config"
	"github.com/MKhiriev/go-config-sets/internal/logger"
	"github.com/MKhiriev/go-config-sets/internal/service"
	"github.com/MKhiriev/go-config-sets/internal/store"
	"github.com/MKhiriev/go-config-sets/internal/tui"
)

const logFileName = "config_sets_panel.log"

type App struct {
	tui    *tui.TUI
	logger *logger.Logger
}

func NewApp(cfg *config.ClientConfig) (*App, error) {
	log := logger.NewClientLogger("client", logPath())

	configAdapter, err := adapter.NewHTTPConfigAdapter(cfg.Adapter, log)
	if err != nil {
		return nil, fmt.Errorf("create config adapter: %w", err)
	}

	preferences := store.NewPreferencesStorage(cfg.Storage.PreferencesPath)
	services := service.NewClientServices(preferences, configAdapter, log)

	ui, err := tui.New(services, log)
	if err != nil {
		return nil, fmt.Errorf("create panel: %w", err)
	}

	log.Info().
		Str("server", cfg.Adapter.HTTPAddress).
		Str("preferences", cfg.Storage.PreferencesPath).
		Msg("panel configured")

	return &App{tui: ui, logger: log}, nil
}

func (a *App) Run(ctx context.Context) error {
	a.logger.Info().Msg("panel started")
	defer a.logger.Info().Msg("panel stopped")

	return a.tui.Run(ctx)
}

// logPath places the log next to the executable; the terminal is owned by
// the panel.
func logPath() string {
	exe, err := os.Executable()
	if err != nil {
		return ""
	}
	return filepath.Join(filepath.Dir(exe), logFileName)
}
