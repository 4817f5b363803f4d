package models

import "errors"

var (
	// ErrInvalidConfigEntry is returned when a config entry body is not a
	// JSON object of scalars.
	ErrInvalidConfigEntry = errors.New("invalid config entry")
	// ErrNotScalarValue is returned for nested objects or arrays in places
	// where only scalars are allowed.
	ErrNotScalarValue = errors.New("value is not a scalar")
	// ErrInvalidAbsoluteSerial is returned when the absolute serial number
	// is not an integer.
	ErrInvalidAbsoluteSerial = errors.New("absolute serial number must be an integer")
)
