// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"maps"
	"strconv"
	"strings"
)

// ConfigEntry is one named bot-instance configuration ("config set").
//
// Scalar keys are kept in Fields as strings so that keys unknown to this
// version of the application are preserved between reads and writes.
// AbsoluteSerialNumber is assigned by the server and never changed by
// updates. InstallOptions is nil when the backend sent none.
type ConfigEntry struct {
	Fields               map[string]string
	AbsoluteSerialNumber int
	InstallOptions       InstallOptions
}

// NewConfigEntry returns an entry pre-filled with the defaults used by the
// create form: bot type "MaiBot" and all install options disabled.
func NewConfigEntry() ConfigEntry {
	return ConfigEntry{
		Fields:         map[string]string{FieldBotType: DefaultBotType},
		InstallOptions: DefaultInstallOptions(),
	}
}

// Get returns the value of the scalar key or "" when it is not set.
func (e ConfigEntry) Get(key string) string {
	if key == FieldAbsoluteSerialNumber {
		if e.AbsoluteSerialNumber == 0 {
			return ""
		}
		return strconv.Itoa(e.AbsoluteSerialNumber)
	}
	return e.Fields[key]
}

// Set assigns a scalar key. The absolute serial key is parsed as an integer.
func (e *ConfigEntry) Set(key, value string) error {
	if key == FieldAbsoluteSerialNumber {
		if strings.TrimSpace(value) == "" {
			e.AbsoluteSerialNumber = 0
			return nil
		}
		n, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			return fmt.Errorf("%w: %q", ErrInvalidAbsoluteSerial, value)
		}
		e.AbsoluteSerialNumber = n
		return nil
	}
	if e.Fields == nil {
		e.Fields = make(map[string]string)
	}
	e.Fields[key] = value
	return nil
}

// Clone returns a deep copy of the entry.
func (e ConfigEntry) Clone() ConfigEntry {
	return ConfigEntry{
		Fields:               maps.Clone(e.Fields),
		AbsoluteSerialNumber: e.AbsoluteSerialNumber,
		InstallOptions:       maps.Clone(e.InstallOptions),
	}
}

// Apply merges a partial update into the entry: present scalar keys are
// overwritten and install options are merged key by key.
func (e *ConfigEntry) Apply(update ConfigUpdate) {
	if e.Fields == nil {
		e.Fields = make(map[string]string, len(update.Fields))
	}
	maps.Copy(e.Fields, update.Fields)

	if update.InstallOptions != nil {
		if e.InstallOptions == nil {
			e.InstallOptions = make(InstallOptions, len(update.InstallOptions))
		}
		maps.Copy(e.InstallOptions, update.InstallOptions)
	}
}

// MarshalJSON writes the entry as a flat JSON object with the scalar keys,
// "absolute_serial_number" as a number and the nested "install_options".
func (e ConfigEntry) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(e.Fields)+2)
	for k, v := range e.Fields {
		out[k] = v
	}
	if e.AbsoluteSerialNumber != 0 {
		out[FieldAbsoluteSerialNumber] = e.AbsoluteSerialNumber
	}
	if e.InstallOptions != nil {
		out[FieldInstallOptions] = e.InstallOptions
	}
	return json.Marshal(out)
}

// UnmarshalJSON accepts any flat object of scalars. Numbers and booleans
// are stored in their textual form; "absolute_serial_number" may be sent
// either as a number or as a numeric string.
func (e *ConfigEntry) UnmarshalJSON(data []byte) error {
	fields, options, rawSerial, err := decodeScalarObject(data)
	if err != nil {
		return err
	}

	entry := ConfigEntry{Fields: fields, InstallOptions: options}
	if rawSerial != "" {
		if err := entry.Set(FieldAbsoluteSerialNumber, rawSerial); err != nil {
			return err
		}
	}

	*e = entry
	return nil
}

// decodeScalarObject splits a JSON object into scalar fields, install
// options and the raw absolute serial text.
func decodeScalarObject(data []byte) (map[string]string, InstallOptions, string, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, nil, "", fmt.Errorf("%w: %w", ErrInvalidConfigEntry, err)
	}

	fields := make(map[string]string, len(raw))
	var options InstallOptions
	var serial string

	for key, value := range raw {
		switch key {
		case FieldInstallOptions:
			if bytes.Equal(bytes.TrimSpace(value), []byte("null")) {
				continue
			}
			if err := json.Unmarshal(value, &options); err != nil {
				return nil, nil, "", fmt.Errorf("%w: install_options: %w", ErrInvalidConfigEntry, err)
			}
		case FieldAbsoluteSerialNumber:
			text, err := scalarText(value)
			if err != nil {
				return nil, nil, "", fmt.Errorf("%w: %s: %w", ErrInvalidConfigEntry, key, err)
			}
			serial = text
		default:
			text, err := scalarText(value)
			if err != nil {
				return nil, nil, "", fmt.Errorf("%w: %s: %w", ErrInvalidConfigEntry, key, err)
			}
			fields[key] = text
		}
	}

	return fields, options, serial, nil
}

func scalarText(value json.RawMessage) (string, error) {
	decoder := json.NewDecoder(bytes.NewReader(value))
	decoder.UseNumber()

	var v any
	if err := decoder.Decode(&v); err != nil {
		return "", err
	}

	switch typed := v.(type) {
	case nil:
		return "", nil
	case string:
		return typed, nil
	case json.Number:
		return typed.String(), nil
	case bool:
		return strconv.FormatBool(typed), nil
	default:
		return "", ErrNotScalarValue
	}
}
