// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter talks to the config-sets REST API on behalf of the admin
// panel.
//
// [ConfigAdapter] hides the transport from the service layer. Non-2xx
// responses are mapped by mapHTTPError to the sentinel errors of this package
// so callers can use [errors.Is] (e.g. [ErrConflict] for 409). The "msg"
// field of the response envelope is kept as the error text.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-config-sets/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// ConfigAdapter is the client side of the config-sets REST API.
type ConfigAdapter interface {
	// ListConfigs fetches every config set keyed by name.
	ListConfigs(ctx context.Context) (models.ConfigSets, error)

	// CreateConfig creates a new config set. The server assigns the absolute
	// serial number. Returns the server message on success.
	CreateConfig(ctx context.Context, req models.CreateConfigRequest) (string, error)

	// UpdateConfig applies a partial update to the named config set.
	UpdateConfig(ctx context.Context, name string, update models.ConfigUpdate) (string, error)

	// DeleteConfig removes the named config set.
	DeleteConfig(ctx context.Context, name string) (string, error)

	// GetUIInfo reports whether the install options of the named config set
	// may be edited from the panel.
	GetUIInfo(ctx context.Context, name string) (models.UIInfo, error)

	// GetUISettings fetches the remote UI settings.
	GetUISettings(ctx context.Context) (models.UISettings, error)

	// SaveUISettings stores the UI settings on the server.
	SaveUISettings(ctx context.Context, settings models.UISettings) (string, error)
}
