package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-config-sets/internal/logger"
	"github.com/MKhiriev/go-config-sets/internal/store"
	"github.com/MKhiriev/go-config-sets/internal/validators"
	"github.com/MKhiriev/go-config-sets/models"
)

type uiSettingsService struct {
	repository store.UISettingsRepository
	validator  validators.Validator

	logger *logger.Logger
}

func NewUISettingsService(repository store.UISettingsRepository, logger *logger.Logger) UISettingsService {
	return &uiSettingsService{
		repository: repository,
		validator:  validators.NewUISettingsValidator(),
		logger:     logger,
	}
}

func (s *uiSettingsService) Get(ctx context.Context) (models.UISettings, error) {
	settings, err := s.repository.GetUISettings(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("reading ui settings failed")
		return models.UISettings{}, fmt.Errorf("error reading ui settings: %w", err)
	}
	return settings, nil
}

// Save merges the keys present in update into the stored settings.
func (s *uiSettingsService) Save(ctx context.Context, update models.UISettingsUpdate) (models.UISettings, error) {
	if err := s.validator.Validate(ctx, update); err != nil {
		return models.UISettings{}, err
	}

	current, err := s.Get(ctx)
	if err != nil {
		return models.UISettings{}, err
	}

	merged := current.Apply(update)
	if err = s.repository.SaveUISettings(ctx, merged); err != nil {
		logger.FromContext(ctx).Err(err).Msg("saving ui settings failed")
		return models.UISettings{}, fmt.Errorf("error saving ui settings: %w", err)
	}

	logger.FromContext(ctx).Info().Str("theme", string(merged.Theme)).Int("port", merged.Port).Msg("ui settings saved")
	return merged, nil
}
