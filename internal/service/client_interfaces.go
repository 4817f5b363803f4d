package service

import (
	"context"

	"github.com/MKhiriev/go-config-sets/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// ClientConfigService is the admin panel's view of the config sets API.
//
// Create and Update validate against existing, the list the panel last
// loaded, and reject duplicates and malformed paths before any request is
// sent. The server repeats every check.
type ClientConfigService interface {
	// List fetches all config sets.
	List(ctx context.Context) (models.ConfigSets, error)

	// EditableInstallOptions asks the server whether the install options of
	// name may be changed from the panel.
	EditableInstallOptions(ctx context.Context, name string) (bool, error)

	// NewDraft returns the pre-filled entry of the create form with a
	// suggested absolute serial number.
	NewDraft(existing models.ConfigSets) models.ConfigEntry

	// Create validates and submits a new config set. Returns the server
	// message.
	Create(ctx context.Context, existing models.ConfigSets, name string, entry models.ConfigEntry) (string, error)

	// Update validates and submits a partial update of name.
	Update(ctx context.Context, existing models.ConfigSets, name string, update models.ConfigUpdate) (string, error)

	// Delete removes name on the server.
	Delete(ctx context.Context, name string) (string, error)
}

// ClientSettingsService keeps the panel settings in sync between the local
// preferences file and the server.
type ClientSettingsService interface {
	// LoadLocal returns the locally saved settings, or the defaults.
	LoadLocal(ctx context.Context) models.UISettings

	// LoadRemote fetches the settings from the server and saves them
	// locally.
	LoadRemote(ctx context.Context) (models.UISettings, error)

	// Save validates settings, posts them and saves them locally.
	Save(ctx context.Context, settings models.UISettings) (string, error)
}
