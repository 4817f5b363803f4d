package service

import (
	"context"

	"github.com/MKhiriev/go-config-sets/internal/adapter"
	"github.com/MKhiriev/go-config-sets/internal/logger"
	"github.com/MKhiriev/go-config-sets/internal/store"
	"github.com/MKhiriev/go-config-sets/internal/validators"
	"github.com/MKhiriev/go-config-sets/models"
)

type clientSettingsService struct {
	preferences store.PreferencesStorage
	adapter     adapter.ConfigAdapter
	validator   validators.Validator

	logger *logger.Logger
}

func NewClientSettingsService(preferences store.PreferencesStorage, configAdapter adapter.ConfigAdapter, logger *logger.Logger) ClientSettingsService {
	return &clientSettingsService{
		preferences: preferences,
		adapter:     configAdapter,
		validator:   validators.NewUISettingsValidator(),
		logger:      logger,
	}
}

func (s *clientSettingsService) LoadLocal(ctx context.Context) models.UISettings {
	settings, err := s.preferences.Load(ctx)
	if err != nil {
		s.logger.Warn().Err(err).Msg("local preferences unreadable, using defaults")
		return models.DefaultUISettings()
	}
	return settings
}

func (s *clientSettingsService) LoadRemote(ctx context.Context) (models.UISettings, error) {
	settings, err := s.adapter.GetUISettings(ctx)
	if err != nil {
		s.logger.Err(err).Msg("get ui settings failed")
		return models.UISettings{}, mapAdapterError(err)
	}

	if !settings.Theme.IsValid() {
		settings.Theme = models.ThemeAuto
	}
	if err = s.preferences.Save(ctx, settings); err != nil {
		s.logger.Warn().Err(err).Msg("saving local preferences failed")
	}
	return settings, nil
}

func (s *clientSettingsService) Save(ctx context.Context, settings models.UISettings) (string, error) {
	if err := s.validator.Validate(ctx, settings); err != nil {
		return "", err
	}

	msg, err := s.adapter.SaveUISettings(ctx, settings)
	if err != nil {
		s.logger.Err(err).Msg("save ui settings failed")
		return "", mapAdapterError(err)
	}

	if err = s.preferences.Save(ctx, settings); err != nil {
		s.logger.Warn().Err(err).Msg("saving local preferences failed")
	}
	return msg, nil
}
