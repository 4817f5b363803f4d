package models

import (
	"encoding/json"
	"maps"
)

// CreateConfigRequest is the body of POST /api/configs.
type CreateConfigRequest struct {
	Name   string      `json:"name"`
	Config ConfigEntry `json:"config"`
}

// ConfigUpdate is a partial update of a config entry, the body of
// POST /api/configs/{name}. Only keys present in Fields are changed.
// InstallOptions is merged key by key; nil leaves the options untouched.
// "absolute_serial_number" is read-only and dropped when decoding.
type ConfigUpdate struct {
	Fields         map[string]string
	InstallOptions InstallOptions
}

// IsEmpty reports whether the update carries no changes.
func (u ConfigUpdate) IsEmpty() bool {
	return len(u.Fields) == 0 && u.InstallOptions == nil
}

// MarshalJSON writes the update as a flat object like [ConfigEntry].
func (u ConfigUpdate) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(u.Fields)+1)
	for k, v := range u.Fields {
		out[k] = v
	}
	if u.InstallOptions != nil {
		out[FieldInstallOptions] = maps.Clone(u.InstallOptions)
	}
	return json.Marshal(out)
}

// UnmarshalJSON decodes a flat object of scalars and ignores the absolute
// serial number.
func (u *ConfigUpdate) UnmarshalJSON(data []byte) error {
	fields, options, _, err := decodeScalarObject(data)
	if err != nil {
		return err
	}
	*u = ConfigUpdate{Fields: fields, InstallOptions: options}
	return nil
}
