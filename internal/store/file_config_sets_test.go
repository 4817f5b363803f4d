package store

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-config-sets/internal/config"
	"github.com/MKhiriev/go-config-sets/internal/logger"
	"github.com/MKhiriev/go-config-sets/models"
)

const launcherConfig = `
[launcher]
language = "en"

[configurations.cli_bot]
serial_number = "1"
absolute_serial_number = 1
bot_type = "MaiBot"
qq_account = 123456
nickname_path = "Cli"

[configurations.cli_bot.install_options]
install_adapter = true

[configurations.cli_bot.extra]
kept = true
`

func newTestFileStorage(t *testing.T, content string) (*FileStorage, string) {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	if content != "" {
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}

	s, err := NewFileStorage(config.Files{ConfigPath: path}, logger.Nop())
	require.NoError(t, err)
	return s, dir
}

func TestFileStorage_CreatesMissingConfigFile(t *testing.T) {
	s, dir := newTestFileStorage(t, "")

	assert.FileExists(t, filepath.Join(dir, "config.toml"))
	assert.NoError(t, s.Ping(context.Background()))

	sets, err := s.ListConfigSets(context.Background())
	require.NoError(t, err)
	assert.Empty(t, sets)
}

func TestFileStorage_ReadsLauncherEntries(t *testing.T) {
	s, _ := newTestFileStorage(t, launcherConfig)
	ctx := context.Background()

	entry, err := s.GetConfigSet(ctx, "cli_bot")
	require.NoError(t, err)
	assert.Equal(t, 1, entry.AbsoluteSerialNumber)
	assert.Equal(t, "123456", entry.Get(models.FieldQQAccount))
	assert.Equal(t, models.InstallOptions{models.InstallAdapter: true}, entry.InstallOptions)
	assert.NotContains(t, entry.Fields, "extra")

	managed, err := s.IsUIManaged(ctx, "cli_bot")
	require.NoError(t, err)
	assert.False(t, managed, "entries written by the launcher are not UI-managed")

	_, err = s.GetConfigSet(ctx, "ghost")
	assert.ErrorIs(t, err, ErrConfigSetNotFound)
}

func TestFileStorage_CreateUpdateDelete(t *testing.T) {
	s, dir := newTestFileStorage(t, launcherConfig)
	ctx := context.Background()

	stored, err := s.CreateConfigSet(ctx, "panel_bot", models.ConfigEntry{
		Fields:         map[string]string{models.FieldSerialNumber: "2", models.FieldNicknamePath: "Panel"},
		InstallOptions: models.DefaultInstallOptions(),
	})
	require.NoError(t, err)
	assert.Equal(t, 2, stored.AbsoluteSerialNumber)

	_, err = s.CreateConfigSet(ctx, "panel_bot", models.ConfigEntry{})
	assert.ErrorIs(t, err, ErrConfigSetConflict)

	managed, err := s.IsUIManaged(ctx, "panel_bot")
	require.NoError(t, err)
	assert.True(t, managed)

	// registry file mirrors the created entry
	data, err := os.ReadFile(filepath.Join(dir, DefaultRegistryFileName))
	require.NoError(t, err)
	var registry registryFile
	require.NoError(t, json.Unmarshal(data, &registry))
	require.Len(t, registry.Instances, 1)
	assert.Equal(t, registryInstance{Name: "panel_bot", AbsoluteSerialNumber: 2, SerialNumber: "2", NicknamePath: "Panel"}, registry.Instances[0])

	// update keeps the absolute serial and nested launcher tables
	cli, err := s.GetConfigSet(ctx, "cli_bot")
	require.NoError(t, err)
	cli.Fields[models.FieldBotType] = "MoFox"
	cli.AbsoluteSerialNumber = 42
	require.NoError(t, s.UpdateConfigSet(ctx, "cli_bot", cli))

	cli, err = s.GetConfigSet(ctx, "cli_bot")
	require.NoError(t, err)
	assert.Equal(t, "MoFox", cli.Get(models.FieldBotType))
	assert.Equal(t, 1, cli.AbsoluteSerialNumber)

	raw, err := os.ReadFile(filepath.Join(dir, "config.toml"))
	require.NoError(t, err)
	assert.Contains(t, string(raw), "kept")
	assert.Contains(t, string(raw), "language")

	assert.ErrorIs(t, s.UpdateConfigSet(ctx, "ghost", models.ConfigEntry{}), ErrConfigSetNotFound)

	// delete removes entry and registry record
	require.NoError(t, s.DeleteConfigSet(ctx, "panel_bot"))
	sets, err := s.ListConfigSets(ctx)
	require.NoError(t, err)
	assert.NotContains(t, sets, "panel_bot")
	managed, err = s.IsUIManaged(ctx, "panel_bot")
	require.NoError(t, err)
	assert.False(t, managed)

	assert.ErrorIs(t, s.DeleteConfigSet(ctx, "panel_bot"), ErrConfigSetNotFound)
}

func TestFileStorage_UpdateRefreshesRegistryRecord(t *testing.T) {
	s, dir := newTestFileStorage(t, launcherConfig)
	ctx := context.Background()

	stored, err := s.CreateConfigSet(ctx, "panel_bot", models.ConfigEntry{
		Fields: map[string]string{models.FieldSerialNumber: "2", models.FieldNicknamePath: "Panel"},
	})
	require.NoError(t, err)

	stored.Fields[models.FieldSerialNumber] = "7"
	stored.Fields[models.FieldNicknamePath] = "Renamed"
	require.NoError(t, s.UpdateConfigSet(ctx, "panel_bot", stored))

	data, err := os.ReadFile(filepath.Join(dir, DefaultRegistryFileName))
	require.NoError(t, err)
	var registry registryFile
	require.NoError(t, json.Unmarshal(data, &registry))
	require.Len(t, registry.Instances, 1)
	assert.Equal(t, registryInstance{Name: "panel_bot", AbsoluteSerialNumber: 2, SerialNumber: "7", NicknamePath: "Renamed"}, registry.Instances[0])

	// launcher entries stay out of the registry
	cli, err := s.GetConfigSet(ctx, "cli_bot")
	require.NoError(t, err)
	require.NoError(t, s.UpdateConfigSet(ctx, "cli_bot", cli))
	managed, err := s.IsUIManaged(ctx, "cli_bot")
	require.NoError(t, err)
	assert.False(t, managed)
}

func TestFileStorage_RejectsDuplicateSerialAndNickname(t *testing.T) {
	s, _ := newTestFileStorage(t, launcherConfig)
	ctx := context.Background()

	_, err := s.CreateConfigSet(ctx, "dup_serial", models.ConfigEntry{
		Fields: map[string]string{models.FieldSerialNumber: " 1 "},
	})
	assert.ErrorIs(t, err, ErrConfigSetConflict)

	_, err = s.CreateConfigSet(ctx, "dup_nick", models.ConfigEntry{
		Fields: map[string]string{models.FieldNicknamePath: "Cli"},
	})
	assert.ErrorIs(t, err, ErrConfigSetConflict)

	stored, err := s.CreateConfigSet(ctx, "panel_bot", models.ConfigEntry{
		Fields: map[string]string{models.FieldSerialNumber: "2"},
	})
	require.NoError(t, err)

	stored.Fields[models.FieldSerialNumber] = "1"
	assert.ErrorIs(t, s.UpdateConfigSet(ctx, "panel_bot", stored), ErrConfigSetConflict)

	// an entry never collides with itself
	cli, err := s.GetConfigSet(ctx, "cli_bot")
	require.NoError(t, err)
	assert.NoError(t, s.UpdateConfigSet(ctx, "cli_bot", cli))

	sets, err := s.ListConfigSets(ctx)
	require.NoError(t, err)
	assert.Len(t, sets, 2)
}

func TestFileStorage_ScalarTypesSurviveUpdate(t *testing.T) {
	s, dir := newTestFileStorage(t, `
[configurations.typed]
absolute_serial_number = 1
serial_number = "1"
qq_account = 123456
ratio = 1000000.0
enabled = true
`)
	ctx := context.Background()

	entry, err := s.GetConfigSet(ctx, "typed")
	require.NoError(t, err)
	assert.Equal(t, "123456", entry.Get(models.FieldQQAccount))
	assert.Equal(t, "1000000", entry.Get("ratio"))
	assert.Equal(t, "true", entry.Get("enabled"))

	entry.Fields[models.FieldBotType] = "MoFox"
	require.NoError(t, s.UpdateConfigSet(ctx, "typed", entry))

	raw, err := os.ReadFile(filepath.Join(dir, "config.toml"))
	require.NoError(t, err)
	var doc map[string]any
	require.NoError(t, toml.Unmarshal(raw, &doc))
	typed := doc["configurations"].(map[string]any)["typed"].(map[string]any)
	assert.Equal(t, int64(123456), typed["qq_account"])
	assert.Equal(t, float64(1000000), typed["ratio"])
	assert.Equal(t, true, typed["enabled"])
	assert.Equal(t, "MoFox", typed["bot_type"])

	// a changed value is written as text
	entry.Fields[models.FieldQQAccount] = "654321"
	require.NoError(t, s.UpdateConfigSet(ctx, "typed", entry))
	entry, err = s.GetConfigSet(ctx, "typed")
	require.NoError(t, err)
	assert.Equal(t, "654321", entry.Get(models.FieldQQAccount))
}

func TestFileStorage_PruneRegistry(t *testing.T) {
	s, dir := newTestFileStorage(t, launcherConfig)
	ctx := context.Background()

	stale := registryFile{Instances: []registryInstance{
		{Name: "cli_bot", AbsoluteSerialNumber: 1},
		{Name: "removed_by_launcher", AbsoluteSerialNumber: 5},
	}}
	data, err := json.Marshal(stale)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, DefaultRegistryFileName), data, 0o644))

	removed, err := s.PruneRegistry(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, removed)

	removed, err = s.PruneRegistry(ctx)
	require.NoError(t, err)
	assert.Zero(t, removed)

	managed, err := s.IsUIManaged(ctx, "cli_bot")
	require.NoError(t, err)
	assert.True(t, managed)
}

func TestFileStorage_UISettings(t *testing.T) {
	s, _ := newTestFileStorage(t, "")
	ctx := context.Background()

	settings, err := s.GetUISettings(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.DefaultUISettings(), settings)

	require.NoError(t, s.SaveUISettings(ctx, models.UISettings{Theme: models.ThemeDark, Port: 9100}))

	settings, err = s.GetUISettings(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.UISettings{Theme: models.ThemeDark, Port: 9100}, settings)
}

func TestFileStorage_InvalidTOML(t *testing.T) {
	s, _ := newTestFileStorage(t, "this is = = not toml")

	_, err := s.ListConfigSets(context.Background())
	assert.ErrorIs(t, err, ErrReadingConfigFile)
}

// ── preferences ───────────────────────────────────────────────────────────────

func TestPreferencesStorage_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs", "ui.json")
	ctx := context.Background()

	prefs := NewPreferencesStorage(path)
	settings, err := prefs.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.DefaultUISettings(), settings)

	require.NoError(t, prefs.Save(ctx, models.UISettings{Theme: models.ThemeLight, Port: 8100}))

	reopened := NewPreferencesStorage(path)
	settings, err = reopened.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.UISettings{Theme: models.ThemeLight, Port: 8100}, settings)
}

func TestPreferencesStorage_InvalidThemeFallsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ui.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"theme":"neon","port":8000}`), 0o600))

	settings, err := NewPreferencesStorage(path).Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, models.ThemeAuto, settings.Theme)
}

func TestPreferencesStorage_InMemory(t *testing.T) {
	prefs := NewPreferencesStorage("")
	ctx := context.Background()

	require.NoError(t, prefs.Save(ctx, models.UISettings{Theme: models.ThemeDark, Port: 8000}))
	settings, err := prefs.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.ThemeDark, settings.Theme)
}

func TestPreferencesStorage_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ui.json")
	require.NoError(t, os.WriteFile(path, []byte(`{not json`), 0o600))

	_, err := NewPreferencesStorage(path).Load(context.Background())
	assert.Error(t, err)
}
