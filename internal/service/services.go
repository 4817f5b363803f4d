package service

import (
	"fmt"

	"github.com/MKhiriev/go-config-sets/internal/config"
	"github.com/MKhiriev/go-config-sets/internal/logger"
	"github.com/MKhiriev/go-config-sets/internal/store"
	"github.com/MKhiriev/go-config-sets/internal/validators"
	"github.com/MKhiriev/go-config-sets/models"
)

type Services struct {
	ConfigSetService  ConfigSetService
	UISettingsService UISettingsService
	AppInfoService    AppInfoService
	AuthService       AuthService
	HealthService     HealthService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.App, buildInfo, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	var validatorOpts []validators.ConfigSetValidatorOption
	if !cfg.Server.SkipPathCheck {
		validatorOpts = append(validatorOpts, validators.WithPathExistence(nil))
	}

	configSets := NewConfigSetService(storages.ConfigSetRepository, logger)
	configSets = NewConfigSetValidationService(validatorOpts...).Wrap(configSets)

	return &Services{
		ConfigSetService:  configSets,
		UISettingsService: NewUISettingsService(storages.UISettingsRepository, logger),
		AppInfoService:    appInfo,
		AuthService:       NewAuthService(cfg.App, logger),
		HealthService:     NewHealthService(storages.HealthChecker),
	}, nil
}
