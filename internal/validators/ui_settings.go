package validators

import (
	"context"

	"github.com/MKhiriev/go-config-sets/models"
)

// unsafePorts are the ports browsers refuse to connect to.
var unsafePorts = map[int]struct{}{}

func init() {
	for _, p := range []int{
		1, 7, 9, 11, 13, 15, 17, 19, 20, 21, 22, 23, 25, 37, 42, 43, 53, 77, 79, 87, 95,
		101, 102, 103, 104, 109, 110, 111, 113, 115, 117, 119, 123, 135, 139, 143, 179,
		389, 427, 465, 512, 513, 514, 515, 526, 530, 531, 532, 540, 548, 556, 563, 587,
		601, 636, 993, 995, 2049, 3659, 4045, 6000, 6697, 10080, 33354, 65535,
	} {
		unsafePorts[p] = struct{}{}
	}
	for p := 6665; p <= 6669; p++ {
		unsafePorts[p] = struct{}{}
	}
	for p := 32768; p <= 32785; p++ {
		unsafePorts[p] = struct{}{}
	}
}

// ValidatePort checks that port is in range and not blocked by browsers.
func ValidatePort(port int) error {
	if port < 1 || port > 65535 {
		return ErrInvalidPort
	}
	if _, unsafe := unsafePorts[port]; unsafe {
		return ErrUnsafePort
	}
	return nil
}

// UISettingsValidator validates [models.UISettings] and
// [models.UISettingsUpdate].
type UISettingsValidator struct{}

func NewUISettingsValidator() *UISettingsValidator {
	return &UISettingsValidator{}
}

func (v *UISettingsValidator) Validate(_ context.Context, obj any, _ ...string) error {
	switch value := obj.(type) {
	case models.UISettings:
		if !value.Theme.IsValid() {
			return ErrInvalidTheme
		}
		return ValidatePort(value.Port)
	case models.UISettingsUpdate:
		if value.Theme != nil && !value.Theme.IsValid() {
			return ErrInvalidTheme
		}
		if value.Port != nil {
			return ValidatePort(*value.Port)
		}
		return nil
	default:
		return ErrUnsupportedType
	}
}
