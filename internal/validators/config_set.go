package validators

import (
	"context"
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/MKhiriev/go-config-sets/models"
)

// Field name constants used to restrict validation to a subset of rules.
const (
	// FieldName checks that the config set name is not blank.
	FieldName = "name"

	// FieldPaths checks the format of every non-empty path field.
	FieldPaths = "paths"

	// FieldPathsExist checks that every non-empty path field exists on this
	// host. Only applied when the validator was built with path checks.
	FieldPathsExist = "paths_exist"

	// FieldChanges checks that an update carries at least one change.
	FieldChanges = "changes"
)

// pathPattern accepts "C:\", UNC "\\host" and absolute unix paths.
var pathPattern = regexp.MustCompile(`^[a-zA-Z]:\\|^\\\\|^/`)

// ConfigSetValidator validates create requests and partial updates of
// config sets.
type ConfigSetValidator struct {
	checkPathsExist bool
	stat            func(string) (os.FileInfo, error)
}

// ConfigSetValidatorOption configures a [ConfigSetValidator].
type ConfigSetValidatorOption func(*ConfigSetValidator)

// WithPathExistence makes the validator check that path fields exist on the
// local filesystem. stat defaults to [os.Stat] when nil.
func WithPathExistence(stat func(string) (os.FileInfo, error)) ConfigSetValidatorOption {
	return func(v *ConfigSetValidator) {
		v.checkPathsExist = true
		if stat != nil {
			v.stat = stat
		}
	}
}

func NewConfigSetValidator(opts ...ConfigSetValidatorOption) *ConfigSetValidator {
	v := &ConfigSetValidator{stat: os.Stat}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

func (v *ConfigSetValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.CreateConfigRequest:
		return v.validateCreateRequest(ctx, value, fields...)
	case *models.CreateConfigRequest:
		return v.validateCreateRequest(ctx, *value, fields...)

	case models.ConfigUpdate:
		return v.validateUpdate(ctx, value, fields...)
	case *models.ConfigUpdate:
		return v.validateUpdate(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *ConfigSetValidator) validateCreateRequest(_ context.Context, req models.CreateConfigRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldPaths, FieldPathsExist}
	}

	for _, field := range fields {
		switch field {
		case FieldName:
			if strings.TrimSpace(req.Name) == "" {
				return ErrEmptyName
			}
		case FieldPaths:
			if err := validatePathFormats(req.Config.Fields); err != nil {
				return err
			}
		case FieldPathsExist:
			if err := v.validatePathsExist(req.Config.Fields); err != nil {
				return err
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}

	return nil
}

func (v *ConfigSetValidator) validateUpdate(_ context.Context, update models.ConfigUpdate, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldChanges, FieldPaths, FieldPathsExist}
	}

	for _, field := range fields {
		switch field {
		case FieldChanges:
			if update.IsEmpty() {
				return ErrNoFieldsToUpdate
			}
		case FieldPaths:
			if err := validatePathFormats(update.Fields); err != nil {
				return err
			}
		case FieldPathsExist:
			if err := v.validatePathsExist(update.Fields); err != nil {
				return err
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}

	return nil
}

func validatePathFormats(values map[string]string) error {
	for _, key := range models.PathFields {
		value := strings.TrimSpace(values[key])
		if value == "" {
			continue
		}
		if !pathPattern.MatchString(value) {
			return fmt.Errorf("%w: %s", ErrInvalidPathFormat, models.FieldLabel(key))
		}
	}
	return nil
}

func (v *ConfigSetValidator) validatePathsExist(values map[string]string) error {
	if !v.checkPathsExist {
		return nil
	}

	for _, key := range models.PathFields {
		value := strings.TrimSpace(values[key])
		if value == "" {
			continue
		}
		if _, err := v.stat(value); err != nil {
			return fmt.Errorf("%w: %s (%s)", ErrPathNotFound, models.FieldLabel(key), value)
		}
	}
	return nil
}
