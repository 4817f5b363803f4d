package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"sync"

	"github.com/pelletier/go-toml/v2"

	"github.com/MKhiriev/go-config-sets/internal/config"
	"github.com/MKhiriev/go-config-sets/internal/logger"
	"github.com/MKhiriev/go-config-sets/models"
)

// configurationsTable is the top-level TOML table holding config sets.
const configurationsTable = "configurations"

// DefaultRegistryFileName is the registry file created next to config.toml
// when no explicit path is configured.
const DefaultRegistryFileName = ".config_UI.json"

// registryInstance is one record of the UI registry file.
type registryInstance struct {
	Name                 string `json:"name"`
	AbsoluteSerialNumber int    `json:"absolute_serial_number"`
	SerialNumber         string `json:"serial_number"`
	NicknamePath         string `json:"nickname_path"`
}

// registryFile is the on-disk layout of ".config_UI.json".
type registryFile struct {
	Instances  []registryInstance `json:"instances"`
	UISettings *models.UISettings `json:"ui_settings,omitempty"`
}

// FileStorage keeps config sets in the launcher's config.toml and the UI
// registry plus panel settings in a JSON file next to it. It implements
// [ConfigSetRepository], [UISettingsRepository] and [HealthChecker].
//
// Both files are re-read on every call since the launcher edits config.toml
// on its own. Writes replace the files atomically.
type FileStorage struct {
	configPath   string
	registryPath string

	mu     sync.Mutex
	logger *logger.Logger
}

// NewFileStorage constructs a [FileStorage]. The config file is created
// with an empty configurations table when it does not exist.
func NewFileStorage(cfg config.Files, log *logger.Logger) (*FileStorage, error) {
	registryPath := cfg.RegistryPath
	if registryPath == "" {
		registryPath = filepath.Join(filepath.Dir(cfg.ConfigPath), DefaultRegistryFileName)
	}

	s := &FileStorage{
		configPath:   cfg.ConfigPath,
		registryPath: registryPath,
		logger:       log,
	}

	if _, err := os.Stat(cfg.ConfigPath); errors.Is(err, os.ErrNotExist) {
		if err = s.writeDocument(map[string]any{configurationsTable: map[string]any{}}); err != nil {
			return nil, err
		}
	}

	log.Debug().Str("config", s.configPath).Str("registry", s.registryPath).Msg("file storage created")
	return s, nil
}

func (s *FileStorage) ListConfigSets(_ context.Context) (models.ConfigSets, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.readDocument()
	if err != nil {
		return nil, err
	}

	return configSetsFromDocument(doc)
}

func (s *FileStorage) GetConfigSet(ctx context.Context, name string) (models.ConfigEntry, error) {
	sets, err := s.ListConfigSets(ctx)
	if err != nil {
		return models.ConfigEntry{}, err
	}

	entry, ok := sets[name]
	if !ok {
		return models.ConfigEntry{}, ErrConfigSetNotFound
	}
	return entry, nil
}

func (s *FileStorage) CreateConfigSet(ctx context.Context, name string, entry models.ConfigEntry) (models.ConfigEntry, error) {
	log := logger.FromContext(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.readDocument()
	if err != nil {
		return models.ConfigEntry{}, err
	}
	sets, err := configSetsFromDocument(doc)
	if err != nil {
		return models.ConfigEntry{}, err
	}
	if _, exists := sets[name]; exists {
		return models.ConfigEntry{}, fmt.Errorf("%w: name %q", ErrConfigSetConflict, name)
	}
	if err = checkUniqueFields(sets, name, entry); err != nil {
		return models.ConfigEntry{}, err
	}

	used := make([]int, 0, len(sets))
	for _, e := range sets {
		used = append(used, e.AbsoluteSerialNumber)
	}

	stored := entry.Clone()
	stored.AbsoluteSerialNumber = NextFreeAbsoluteSerial(used)

	configurations(doc)[name] = entryToTable(stored)
	if err = s.writeDocument(doc); err != nil {
		log.Err(err).Str("func", "*FileStorage.CreateConfigSet").Str("name", name).Msg("failed to write config file")
		return models.ConfigEntry{}, err
	}

	registry, err := s.readRegistry()
	if err != nil {
		return models.ConfigEntry{}, err
	}
	registry.Instances = slices.DeleteFunc(registry.Instances, func(i registryInstance) bool { return i.Name == name })
	registry.Instances = append(registry.Instances, registryInstance{
		Name:                 name,
		AbsoluteSerialNumber: stored.AbsoluteSerialNumber,
		SerialNumber:         stored.Get(models.FieldSerialNumber),
		NicknamePath:         stored.Get(models.FieldNicknamePath),
	})
	if err = s.writeRegistry(registry); err != nil {
		log.Err(err).Str("func", "*FileStorage.CreateConfigSet").Str("name", name).Msg("failed to write registry")
		return models.ConfigEntry{}, err
	}

	return stored, nil
}

func (s *FileStorage) UpdateConfigSet(ctx context.Context, name string, entry models.ConfigEntry) error {
	log := logger.FromContext(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.readDocument()
	if err != nil {
		return err
	}

	table := configurations(doc)
	current, ok := table[name].(map[string]any)
	if !ok {
		return ErrConfigSetNotFound
	}

	sets, err := configSetsFromDocument(doc)
	if err != nil {
		return err
	}
	if err = checkUniqueFields(sets, name, entry); err != nil {
		return err
	}

	updated := entry.Clone()
	updated.AbsoluteSerialNumber = absoluteSerialFromTable(current)

	next := entryToTable(updated)
	for k, v := range current {
		if k == models.FieldInstallOptions || k == models.FieldAbsoluteSerialNumber {
			continue
		}
		switch v.(type) {
		case map[string]any, []any:
			next[k] = v
		case string:
		default:
			// unchanged launcher values keep their TOML type
			if text, ok := next[k].(string); ok && text == scalarText(v) {
				next[k] = v
			}
		}
	}
	table[name] = next

	if err = s.writeDocument(doc); err != nil {
		log.Err(err).Str("func", "*FileStorage.UpdateConfigSet").Str("name", name).Msg("failed to write config file")
		return err
	}

	registry, err := s.readRegistry()
	if err != nil {
		return err
	}
	i := slices.IndexFunc(registry.Instances, func(i registryInstance) bool { return i.Name == name })
	if i < 0 {
		return nil
	}
	registry.Instances[i].SerialNumber = updated.Get(models.FieldSerialNumber)
	registry.Instances[i].NicknamePath = updated.Get(models.FieldNicknamePath)
	if err = s.writeRegistry(registry); err != nil {
		log.Err(err).Str("func", "*FileStorage.UpdateConfigSet").Str("name", name).Msg("failed to write registry")
		return err
	}
	return nil
}

// checkUniqueFields rejects entry when another config set than name already
// uses its serial number or nickname. Empty values never collide.
func checkUniqueFields(sets models.ConfigSets, name string, entry models.ConfigEntry) error {
	serial := strings.TrimSpace(entry.Get(models.FieldSerialNumber))
	nickname := strings.TrimSpace(entry.Get(models.FieldNicknamePath))

	for other, existing := range sets {
		if other == name {
			continue
		}
		if serial != "" && strings.TrimSpace(existing.Get(models.FieldSerialNumber)) == serial {
			return fmt.Errorf("%w: serial number %q", ErrConfigSetConflict, serial)
		}
		if nickname != "" && strings.TrimSpace(existing.Get(models.FieldNicknamePath)) == nickname {
			return fmt.Errorf("%w: nickname %q", ErrConfigSetConflict, nickname)
		}
	}
	return nil
}

func (s *FileStorage) DeleteConfigSet(_ context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.readDocument()
	if err != nil {
		return err
	}

	table := configurations(doc)
	if _, ok := table[name]; !ok {
		return ErrConfigSetNotFound
	}
	delete(table, name)

	if err = s.writeDocument(doc); err != nil {
		return err
	}

	registry, err := s.readRegistry()
	if err != nil {
		return err
	}
	registry.Instances = slices.DeleteFunc(registry.Instances, func(i registryInstance) bool { return i.Name == name })
	return s.writeRegistry(registry)
}

func (s *FileStorage) IsUIManaged(_ context.Context, name string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.readDocument()
	if err != nil {
		return false, err
	}
	if _, ok := configurations(doc)[name]; !ok {
		return false, nil
	}

	registry, err := s.readRegistry()
	if err != nil {
		return false, err
	}
	return slices.ContainsFunc(registry.Instances, func(i registryInstance) bool { return i.Name == name }), nil
}

func (s *FileStorage) PruneRegistry(_ context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.readDocument()
	if err != nil {
		return 0, err
	}
	registry, err := s.readRegistry()
	if err != nil {
		return 0, err
	}

	table := configurations(doc)
	before := len(registry.Instances)
	registry.Instances = slices.DeleteFunc(registry.Instances, func(i registryInstance) bool {
		_, ok := table[i.Name]
		return !ok
	})

	removed := before - len(registry.Instances)
	if removed == 0 {
		return 0, nil
	}
	return removed, s.writeRegistry(registry)
}

func (s *FileStorage) GetUISettings(_ context.Context) (models.UISettings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	registry, err := s.readRegistry()
	if err != nil {
		return models.UISettings{}, err
	}

	settings := models.DefaultUISettings()
	if registry.UISettings != nil {
		if registry.UISettings.Theme != "" {
			settings.Theme = registry.UISettings.Theme
		}
		if registry.UISettings.Port != 0 {
			settings.Port = registry.UISettings.Port
		}
	}
	return settings, nil
}

func (s *FileStorage) SaveUISettings(_ context.Context, settings models.UISettings) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	registry, err := s.readRegistry()
	if err != nil {
		return err
	}
	registry.UISettings = &settings
	return s.writeRegistry(registry)
}

// Ping checks that the config file is readable.
func (s *FileStorage) Ping(_ context.Context) error {
	_, err := os.Stat(s.configPath)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrReadingConfigFile, err)
	}
	return nil
}

func (s *FileStorage) readDocument() (map[string]any, error) {
	data, err := os.ReadFile(s.configPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadingConfigFile, err)
	}

	doc := make(map[string]any)
	if err = toml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadingConfigFile, err)
	}
	return doc, nil
}

func (s *FileStorage) writeDocument(doc map[string]any) error {
	data, err := toml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWritingConfigFile, err)
	}
	if err = writeFileAtomic(s.configPath, data, 0o644); err != nil {
		return fmt.Errorf("%w: %w", ErrWritingConfigFile, err)
	}
	return nil
}

func (s *FileStorage) readRegistry() (registryFile, error) {
	var registry registryFile

	data, err := os.ReadFile(s.registryPath)
	if errors.Is(err, os.ErrNotExist) {
		return registry, nil
	}
	if err != nil {
		return registry, fmt.Errorf("%w: %w", ErrReadingRegistry, err)
	}

	if err = json.Unmarshal(data, &registry); err != nil {
		return registry, fmt.Errorf("%w: %w", ErrReadingRegistry, err)
	}
	return registry, nil
}

func (s *FileStorage) writeRegistry(registry registryFile) error {
	if registry.Instances == nil {
		registry.Instances = []registryInstance{}
	}

	data, err := json.MarshalIndent(registry, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWritingRegistry, err)
	}
	if err = writeFileAtomic(s.registryPath, data, 0o644); err != nil {
		return fmt.Errorf("%w: %w", ErrWritingRegistry, err)
	}
	return nil
}

// configurations returns the configurations table of doc, creating it when
// missing.
func configurations(doc map[string]any) map[string]any {
	table, ok := doc[configurationsTable].(map[string]any)
	if !ok {
		table = make(map[string]any)
		doc[configurationsTable] = table
	}
	return table
}

func configSetsFromDocument(doc map[string]any) (models.ConfigSets, error) {
	sets := make(models.ConfigSets)
	for name, raw := range configurations(doc) {
		table, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		entry, err := entryFromTable(table)
		if err != nil {
			return nil, fmt.Errorf("%w: configuration %q: %w", ErrReadingConfigFile, name, err)
		}
		sets[name] = entry
	}
	return sets, nil
}

func entryFromTable(table map[string]any) (models.ConfigEntry, error) {
	entry := models.ConfigEntry{Fields: make(map[string]string, len(table))}

	for key, value := range table {
		switch key {
		case models.FieldAbsoluteSerialNumber:
			entry.AbsoluteSerialNumber = absoluteSerialFromTable(table)
		case models.FieldInstallOptions:
			options, ok := value.(map[string]any)
			if !ok {
				return models.ConfigEntry{}, models.ErrNotScalarValue
			}
			entry.InstallOptions = make(models.InstallOptions, len(options))
			for k, v := range options {
				b, _ := v.(bool)
				entry.InstallOptions[k] = b
			}
		default:
			switch v := value.(type) {
			case map[string]any, []any:
				// nested launcher data is kept in the file but not exposed
				continue
			default:
				entry.Fields[key] = scalarText(v)
			}
		}
	}

	return entry, nil
}

// scalarText renders a decoded TOML scalar the way it is written in the
// file, so floats never switch to exponent notation.
func scalarText(v any) string {
	switch v := v.(type) {
	case string:
		return v
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	default:
		return fmt.Sprint(v)
	}
}

func absoluteSerialFromTable(table map[string]any) int {
	switch v := table[models.FieldAbsoluteSerialNumber].(type) {
	case int64:
		return int(v)
	case float64:
		return int(v)
	case string:
		n, err := strconv.Atoi(v)
		if err != nil {
			return 0
		}
		return n
	default:
		return 0
	}
}

func entryToTable(entry models.ConfigEntry) map[string]any {
	table := make(map[string]any, len(entry.Fields)+2)
	for k, v := range entry.Fields {
		table[k] = v
	}
	table[models.FieldAbsoluteSerialNumber] = int64(entry.AbsoluteSerialNumber)
	if entry.InstallOptions != nil {
		options := make(map[string]any, len(entry.InstallOptions))
		for k, v := range entry.InstallOptions {
			options[k] = v
		}
		table[models.FieldInstallOptions] = options
	}
	return table
}

func writeFileAtomic(path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err = tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err = tmp.Chmod(perm); err != nil {
		tmp.Close()
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}

	return os.Rename(tmp.Name(), path)
}
