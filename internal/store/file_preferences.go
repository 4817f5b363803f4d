package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/MKhiriev/go-config-sets/models"
)

// preferencesFile is the client's [PreferencesStorage]. An empty path keeps
// the settings in memory only.
type preferencesFile struct {
	path string

	mu       sync.RWMutex
	settings *models.UISettings
}

// NewPreferencesStorage constructs a JSON file backed [PreferencesStorage].
func NewPreferencesStorage(path string) PreferencesStorage {
	return &preferencesFile{path: path}
}

// Load returns the saved settings, or the defaults when nothing was saved.
func (p *preferencesFile) Load(_ context.Context) (models.UISettings, error) {
	p.mu.RLock()
	cached := p.settings
	p.mu.RUnlock()
	if cached != nil {
		return *cached, nil
	}

	if p.path == "" {
		return models.DefaultUISettings(), nil
	}

	data, err := os.ReadFile(p.path)
	if errors.Is(err, os.ErrNotExist) {
		return models.DefaultUISettings(), nil
	}
	if err != nil {
		return models.UISettings{}, fmt.Errorf("read preferences file: %w", err)
	}

	settings := models.DefaultUISettings()
	if err = json.Unmarshal(data, &settings); err != nil {
		return models.UISettings{}, fmt.Errorf("decode preferences file: %w", err)
	}
	if !settings.Theme.IsValid() {
		settings.Theme = models.ThemeAuto
	}

	p.mu.Lock()
	p.settings = &settings
	p.mu.Unlock()

	return settings, nil
}

func (p *preferencesFile) Save(_ context.Context, settings models.UISettings) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.settings = &settings
	if p.path == "" {
		return nil
	}

	payload, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return fmt.Errorf("encode preferences: %w", err)
	}
	if err = writeFileAtomic(p.path, payload, 0o600); err != nil {
		return fmt.Errorf("write preferences file: %w", err)
	}
	return nil
}
