package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-config-sets/internal/config"
	"github.com/MKhiriev/go-config-sets/internal/logger"
)

// Storages aggregates the server repositories of the selected backend.
type Storages struct {
	ConfigSetRepository  ConfigSetRepository
	UISettingsRepository UISettingsRepository
	HealthChecker        HealthChecker

	close func() error
}

// NewStorages opens the backend chosen by cfg: the SQL database when a DSN
// is configured, otherwise the config.toml file. SQL migrations are applied
// on open.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	switch {
	case cfg.DB.DSN != "":
		db, err := NewConnectDB(ctx, cfg.DB, log)
		if err != nil {
			return nil, fmt.Errorf("error connecting to database: %w", err)
		}
		if err = db.Migrate(); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("error applying migrations: %w", err)
		}
		log.Info().Str("driver", db.driver).Msg("using SQL storage")

		return &Storages{
			ConfigSetRepository:  NewConfigSetRepository(db, log),
			UISettingsRepository: NewUISettingsRepository(db, log),
			HealthChecker:        db,
			close:                db.Close,
		}, nil

	case cfg.Files.ConfigPath != "":
		files, err := NewFileStorage(cfg.Files, log)
		if err != nil {
			return nil, fmt.Errorf("error opening config file storage: %w", err)
		}
		log.Info().Str("config", cfg.Files.ConfigPath).Msg("using config file storage")

		return &Storages{
			ConfigSetRepository:  files,
			UISettingsRepository: files,
			HealthChecker:        files,
			close:                func() error { return nil },
		}, nil

	default:
		return nil, ErrNoStorageConfigured
	}
}

// Close releases the backend.
func (s *Storages) Close() error {
	if s.close == nil {
		return nil
	}
	return s.close()
}
