package service

import (
	"context"
	"maps"
	"strings"

	"github.com/MKhiriev/go-config-sets/internal/adapter"
	"github.com/MKhiriev/go-config-sets/internal/logger"
	"github.com/MKhiriev/go-config-sets/internal/validators"
	"github.com/MKhiriev/go-config-sets/models"
)

type clientConfigService struct {
	adapter   adapter.ConfigAdapter
	validator validators.Validator

	logger *logger.Logger
}

func NewClientConfigService(configAdapter adapter.ConfigAdapter, logger *logger.Logger) ClientConfigService {
	return &clientConfigService{
		adapter:   configAdapter,
		validator: validators.NewConfigSetValidator(),
		logger:    logger,
	}
}

func (s *clientConfigService) List(ctx context.Context) (models.ConfigSets, error) {
	sets, err := s.adapter.ListConfigs(ctx)
	if err != nil {
		s.logger.Err(err).Msg("list configs failed")
		return nil, mapAdapterError(err)
	}
	return sets, nil
}

func (s *clientConfigService) EditableInstallOptions(ctx context.Context, name string) (bool, error) {
	info, err := s.adapter.GetUIInfo(ctx, name)
	if err != nil {
		s.logger.Err(err).Str("config", name).Msg("get ui info failed")
		return false, mapAdapterError(err)
	}
	return info.EditableInstallOptions, nil
}

func (s *clientConfigService) NewDraft(existing models.ConfigSets) models.ConfigEntry {
	draft := models.NewConfigEntry()
	draft.AbsoluteSerialNumber = existing.NextAbsoluteSerial()
	return draft
}

func (s *clientConfigService) Create(ctx context.Context, existing models.ConfigSets, name string, entry models.ConfigEntry) (string, error) {
	req := models.CreateConfigRequest{Name: strings.TrimSpace(name), Config: entry.Clone()}

	if err := s.validator.Validate(ctx, req, validators.FieldName, validators.FieldPaths); err != nil {
		return "", err
	}
	if err := validators.CheckUniqueness(existing, req.Name, req.Config, ""); err != nil {
		return "", err
	}

	msg, err := s.adapter.CreateConfig(ctx, req)
	if err != nil {
		s.logger.Err(err).Str("config", req.Name).Msg("create config failed")
		return "", mapAdapterError(err)
	}

	s.logger.Info().Str("config", req.Name).Msg("config created")
	return msg, nil
}

func (s *clientConfigService) Update(ctx context.Context, existing models.ConfigSets, name string, update models.ConfigUpdate) (string, error) {
	update.Fields = maps.Clone(update.Fields)
	delete(update.Fields, models.FieldAbsoluteSerialNumber)

	if err := s.validator.Validate(ctx, update, validators.FieldChanges, validators.FieldPaths); err != nil {
		return "", err
	}

	if current, ok := existing[name]; ok {
		merged := current.Clone()
		merged.Apply(update)
		if err := validators.CheckUniqueness(existing, name, merged, name); err != nil {
			return "", err
		}
	}

	msg, err := s.adapter.UpdateConfig(ctx, name, update)
	if err != nil {
		s.logger.Err(err).Str("config", name).Msg("update config failed")
		return "", mapAdapterError(err)
	}

	s.logger.Info().Str("config", name).Msg("config updated")
	return msg, nil
}

func (s *clientConfigService) Delete(ctx context.Context, name string) (string, error) {
	msg, err := s.adapter.DeleteConfig(ctx, name)
	if err != nil {
		s.logger.Err(err).Str("config", name).Msg("delete config failed")
		return "", mapAdapterError(err)
	}

	s.logger.Info().Str("config", name).Msg("config deleted")
	return msg, nil
}

// NewConfigUpdate builds the update submitted by the edit form. When the
// install options are editable every known option is sent, unchecked ones
// as false, so a previously enabled option is actually turned off.
// Otherwise the options are left out of the update.
func NewConfigUpdate(values map[string]string, checked models.InstallOptions, editable bool) models.ConfigUpdate {
	fields := make(map[string]string, len(values))
	for k, v := range values {
		if k == models.FieldAbsoluteSerialNumber {
			continue
		}
		fields[k] = v
	}

	update := models.ConfigUpdate{Fields: fields}
	if editable {
		options := make(models.InstallOptions, len(models.InstallOptionKeys))
		for _, key := range checked.WithDefaults().Keys() {
			options[key] = checked[key]
		}
		update.InstallOptions = options
	}
	return update
}
