package service

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-config-sets/internal/validators"
	"github.com/MKhiriev/go-config-sets/models"
)

// ConfigSetValidationService checks request shape and path fields before
// the inner service touches storage.
type ConfigSetValidationService struct {
	inner     ConfigSetService
	validator validators.Validator
}

func NewConfigSetValidationService(opts ...validators.ConfigSetValidatorOption) ConfigSetServiceWrapper {
	return &ConfigSetValidationService{
		validator: validators.NewConfigSetValidator(opts...),
	}
}

func (v *ConfigSetValidationService) List(ctx context.Context) (models.ConfigSets, error) {
	return v.inner.List(ctx)
}

func (v *ConfigSetValidationService) Create(ctx context.Context, req models.CreateConfigRequest) (models.ConfigEntry, error) {
	req.Name = strings.TrimSpace(req.Name)
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.ConfigEntry{}, err
	}
	return v.inner.Create(ctx, req)
}

func (v *ConfigSetValidationService) Update(ctx context.Context, name string, update models.ConfigUpdate) error {
	if strings.TrimSpace(name) == "" {
		return validators.ErrEmptyName
	}
	if err := v.validator.Validate(ctx, update); err != nil {
		return err
	}
	return v.inner.Update(ctx, name, update)
}

func (v *ConfigSetValidationService) Delete(ctx context.Context, name string) error {
	if strings.TrimSpace(name) == "" {
		return validators.ErrEmptyName
	}
	return v.inner.Delete(ctx, name)
}

func (v *ConfigSetValidationService) UIInfo(ctx context.Context, name string) (models.UIInfo, error) {
	return v.inner.UIInfo(ctx, name)
}

func (v *ConfigSetValidationService) Wrap(inner ConfigSetService) ConfigSetService {
	v.inner = inner
	return v
}
