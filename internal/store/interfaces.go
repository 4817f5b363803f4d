// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store implements persistence for config sets, the UI registry
// and panel settings.
//
// Two server backends share the same interfaces: a SQL database (PostgreSQL
// through pgx or an SQLite file) and the launcher's config.toml with the
// ".config_UI.json" registry next to it. The client keeps its own copy of
// the panel settings in a small JSON file.
package store

import (
	"context"

	"github.com/MKhiriev/go-config-sets/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// ConfigSetRepository stores config sets together with the UI registry, the
// list of config sets created and managed through the panel.
type ConfigSetRepository interface {
	// ListConfigSets returns every stored config set keyed by name.
	ListConfigSets(ctx context.Context) (models.ConfigSets, error)

	// GetConfigSet returns a single config set or [ErrConfigSetNotFound].
	GetConfigSet(ctx context.Context, name string) (models.ConfigEntry, error)

	// CreateConfigSet stores a new config set, assigns its absolute serial
	// number and registers it as UI-managed. The stored entry is returned.
	CreateConfigSet(ctx context.Context, name string, entry models.ConfigEntry) (models.ConfigEntry, error)

	// UpdateConfigSet replaces the stored scalar fields and install options
	// of an existing config set. The absolute serial number is kept.
	UpdateConfigSet(ctx context.Context, name string, entry models.ConfigEntry) error

	// DeleteConfigSet removes the config set and its registry record.
	DeleteConfigSet(ctx context.Context, name string) error

	// IsUIManaged reports whether name is both stored and registered.
	IsUIManaged(ctx context.Context, name string) (bool, error)

	// PruneRegistry drops registry records without a config set and returns
	// how many were removed.
	PruneRegistry(ctx context.Context) (int, error)
}

// UISettingsRepository stores the panel settings singleton.
type UISettingsRepository interface {
	// GetUISettings returns the saved settings or the defaults.
	GetUISettings(ctx context.Context) (models.UISettings, error)

	// SaveUISettings replaces the saved settings.
	SaveUISettings(ctx context.Context, settings models.UISettings) error
}

// HealthChecker reports whether the backend is reachable.
type HealthChecker interface {
	Ping(ctx context.Context) error
}

// PreferencesStorage keeps the client's local copy of the panel settings so
// the theme can be applied before the server answers.
type PreferencesStorage interface {
	Load(ctx context.Context) (models.UISettings, error)
	Save(ctx context.Context, settings models.UISettings) error
}
