// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service holds the business logic of both binaries.
//
// Server services (this file) sit between the HTTP handlers and the
// repositories of package store. Errors meant for the user, such as
// validation and uniqueness failures, are returned unwrapped so the
// handler can write their text into the "msg" field as is.
//
// Client services (client_interfaces.go) sit between the terminal UI and
// the REST adapter.
package service

import (
	"context"

	"github.com/MKhiriev/go-config-sets/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// ConfigSetService manages config sets and their UI registry records.
type ConfigSetService interface {
	// List returns all config sets keyed by name.
	List(ctx context.Context) (models.ConfigSets, error)

	// Create stores a new config set. The absolute serial number sent by the
	// caller is ignored and a free one is assigned; missing install options
	// are stored as false.
	Create(ctx context.Context, req models.CreateConfigRequest) (models.ConfigEntry, error)

	// Update merges a partial update into an existing config set.
	Update(ctx context.Context, name string, update models.ConfigUpdate) error

	// Delete removes a config set and its registry record.
	Delete(ctx context.Context, name string) error

	// UIInfo reports whether the install options of name may be edited.
	UIInfo(ctx context.Context, name string) (models.UIInfo, error)
}

// ConfigSetServiceWrapper decorates a ConfigSetService, e.g. with input
// validation.
type ConfigSetServiceWrapper interface {
	Wrap(ConfigSetService) ConfigSetService
}

// UISettingsService reads and merges the panel settings singleton.
type UISettingsService interface {
	Get(ctx context.Context) (models.UISettings, error)
	Save(ctx context.Context, update models.UISettingsUpdate) (models.UISettings, error)
}

// AppInfoService exposes build information.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) models.VersionInfo
}

// AuthService issues and verifies admin bearer tokens.
type AuthService interface {
	// Enabled reports whether bearer auth is configured.
	Enabled() bool
	CreateToken(ctx context.Context, subject string) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// HealthService reports storage readiness.
type HealthService interface {
	Ready(ctx context.Context) error
}
