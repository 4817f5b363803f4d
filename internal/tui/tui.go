package tui

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-config-sets/internal/logger"
	"github.com/MKhiriev/go-config-sets/internal/service"
	tea "github.com/charmbracelet/bubbletea"
)

type TUI struct {
	services *service.ClientServices

	logger *logger.Logger
}

func New(services *service.ClientServices, logger *logger.Logger) (*TUI, error) {
	if services == nil || services.ConfigService == nil || services.SettingsService == nil {
		return nil, ErrNoServices
	}
	return &TUI{services: services, logger: logger}, nil
}

// Run shows the panel until the user quits.
func (t *TUI) Run(ctx context.Context) error {
	model := newPanelModel(ctx, t.services, t.logger)

	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(ctx))
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("error running panel: %w", err)
	}
	return nil
}
