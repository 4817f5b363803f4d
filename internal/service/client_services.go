package service

import (
	"github.com/MKhiriev/go-config-sets/internal/adapter"
	"github.com/MKhiriev/go-config-sets/internal/logger"
	"github.com/MKhiriev/go-config-sets/internal/store"
)

type ClientServices struct {
	ConfigService   ClientConfigService
	SettingsService ClientSettingsService
}

func NewClientServices(preferences store.PreferencesStorage, configAdapter adapter.ConfigAdapter, logger *logger.Logger) *ClientServices {
	return &ClientServices{
		ConfigService:   NewClientConfigService(configAdapter, logger),
		SettingsService: NewClientSettingsService(preferences, configAdapter, logger),
	}
}
