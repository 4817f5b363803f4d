package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-config-sets/internal/logger"
	"github.com/MKhiriev/go-config-sets/internal/store"
	"github.com/MKhiriev/go-config-sets/internal/validators"
	"github.com/MKhiriev/go-config-sets/models"
)

type configSetService struct {
	repository store.ConfigSetRepository

	logger *logger.Logger
}

func NewConfigSetService(repository store.ConfigSetRepository, logger *logger.Logger) ConfigSetService {
	return &configSetService{
		repository: repository,
		logger:     logger,
	}
}

func (s *configSetService) List(ctx context.Context) (models.ConfigSets, error) {
	sets, err := s.repository.ListConfigSets(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("listing config sets failed")
		return nil, fmt.Errorf("error listing config sets: %w", err)
	}
	return sets, nil
}

// Create checks uniqueness against the stored sets before inserting. The
// storage constraints still catch a concurrent insert of the same values.
func (s *configSetService) Create(ctx context.Context, req models.CreateConfigRequest) (models.ConfigEntry, error) {
	log := logger.FromContext(ctx).With().Str("config", req.Name).Logger()

	sets, err := s.repository.ListConfigSets(ctx)
	if err != nil {
		log.Err(err).Msg("listing config sets before create failed")
		return models.ConfigEntry{}, fmt.Errorf("error listing config sets: %w", err)
	}

	entry := req.Config.Clone()
	entry.AbsoluteSerialNumber = 0
	entry.InstallOptions = entry.InstallOptions.WithDefaults()
	delete(entry.Fields, models.FieldAbsoluteSerialNumber)
	if entry.Fields == nil {
		entry.Fields = make(map[string]string)
	}
	if entry.Fields[models.FieldBotType] == "" {
		entry.Fields[models.FieldBotType] = models.DefaultBotType
	}

	if err = validators.CheckUniqueness(sets, req.Name, entry, ""); err != nil {
		log.Info().Err(err).Msg("config set rejected")
		return models.ConfigEntry{}, err
	}

	stored, err := s.repository.CreateConfigSet(ctx, req.Name, entry)
	if err != nil {
		if errors.Is(err, store.ErrConfigSetConflict) {
			return models.ConfigEntry{}, store.ErrConfigSetConflict
		}
		log.Err(err).Msg("config set creation failed")
		return models.ConfigEntry{}, fmt.Errorf("error creating config set: %w", err)
	}

	log.Info().Int("absolute_serial_number", stored.AbsoluteSerialNumber).Msg("config set created")
	return stored, nil
}

func (s *configSetService) Update(ctx context.Context, name string, update models.ConfigUpdate) error {
	log := logger.FromContext(ctx).With().Str("config", name).Logger()

	sets, err := s.repository.ListConfigSets(ctx)
	if err != nil {
		log.Err(err).Msg("listing config sets before update failed")
		return fmt.Errorf("error listing config sets: %w", err)
	}

	current, ok := sets[name]
	if !ok {
		return store.ErrConfigSetNotFound
	}

	merged := current.Clone()
	merged.Apply(update)
	delete(merged.Fields, models.FieldAbsoluteSerialNumber)

	if err = validators.CheckUniqueness(sets, name, merged, name); err != nil {
		log.Info().Err(err).Msg("config set update rejected")
		return err
	}

	if err = s.repository.UpdateConfigSet(ctx, name, merged); err != nil {
		switch {
		case errors.Is(err, store.ErrConfigSetNotFound):
			return store.ErrConfigSetNotFound
		case errors.Is(err, store.ErrConfigSetConflict):
			return store.ErrConfigSetConflict
		}
		log.Err(err).Msg("config set update failed")
		return fmt.Errorf("error updating config set: %w", err)
	}

	log.Info().Msg("config set updated")
	return nil
}

func (s *configSetService) Delete(ctx context.Context, name string) error {
	log := logger.FromContext(ctx).With().Str("config", name).Logger()

	if err := s.repository.DeleteConfigSet(ctx, name); err != nil {
		if errors.Is(err, store.ErrConfigSetNotFound) {
			return store.ErrConfigSetNotFound
		}
		log.Err(err).Msg("config set deletion failed")
		return fmt.Errorf("error deleting config set: %w", err)
	}

	log.Info().Msg("config set deleted")
	return nil
}

func (s *configSetService) UIInfo(ctx context.Context, name string) (models.UIInfo, error) {
	managed, err := s.repository.IsUIManaged(ctx, name)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("config", name).Msg("ui registry lookup failed")
		return models.UIInfo{}, fmt.Errorf("error reading ui registry: %w", err)
	}
	return models.UIInfo{EditableInstallOptions: managed}, nil
}
