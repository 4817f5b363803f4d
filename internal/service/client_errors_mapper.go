// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-config-sets/internal/adapter"
	"github.com/MKhiriev/go-config-sets/internal/validators"
)

// GenericErrorMessage is shown when an error carries no user-facing text.
const GenericErrorMessage = "request failed"

var validationErrors = []error{
	validators.ErrEmptyName,
	validators.ErrNameExists,
	validators.ErrSerialNumberExists,
	validators.ErrAbsoluteSerialExists,
	validators.ErrNicknameExists,
	validators.ErrInvalidPathFormat,
	validators.ErrPathNotFound,
	validators.ErrNoFieldsToUpdate,
	validators.ErrInvalidTheme,
	validators.ErrInvalidPort,
	validators.ErrUnsafePort,
}

// mapAdapterError translates the adapter's transport error into a service
// error. The adapter error stays in the chain so its message is not lost.
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, adapter.ErrServerUnavailable) {
		return fmt.Errorf("%w: %w", ErrServerUnavailable, err)
	}

	if errors.Is(err, adapter.ErrRejected) {
		return fmt.Errorf("%w: %w", ErrRequestRejected, err)
	}

	var apiErr *adapter.APIError
	if !errors.As(err, &apiErr) {
		return fmt.Errorf("%w: %w", ErrUnexpectedServer, err)
	}

	switch apiErr.StatusCode {
	case http.StatusNotFound:
		return fmt.Errorf("%w: %w", ErrConfigNotFound, err)
	case http.StatusConflict:
		return fmt.Errorf("%w: %w", ErrConfigConflict, err)
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %w", ErrRequestRejected, err)
	case http.StatusUnauthorized, http.StatusForbidden:
		return fmt.Errorf("%w: %w", ErrUnauthorized, err)
	default:
		return fmt.Errorf("%w: %w", ErrUnexpectedServer, err)
	}
}

// UserMessage returns the text the panel shows for err: the server's msg
// when present, the validation message for rejected input, or a generic
// fallback.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}

	var apiErr *adapter.APIError
	if errors.As(err, &apiErr) && apiErr.Msg != "" {
		return apiErr.Msg
	}
	if errors.Is(err, ErrServerUnavailable) || errors.Is(err, adapter.ErrServerUnavailable) {
		return ErrServerUnavailable.Error()
	}
	for _, target := range validationErrors {
		if errors.Is(err, target) {
			return err.Error()
		}
	}
	return GenericErrorMessage
}
