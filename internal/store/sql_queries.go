package store

const (
	tableConfigSets = "config_sets"
	tableUIRegistry = "ui_registry"
	tableUISettings = "ui_settings"

	colName                 = "name"
	colSerialNumber         = "serial_number"
	colAbsoluteSerialNumber = "absolute_serial_number"
	colNicknamePath         = "nickname_path"
	colFields               = "fields"
	colInstallOptions       = "install_options"
	colUpdatedAt            = "updated_at"
	colID                   = "id"
	colTheme                = "theme"
	colPort                 = "port"

	// uiSettingsRowID is the primary key of the settings singleton row.
	uiSettingsRowID = 1

	upsertRegistrySuffix = `ON CONFLICT (name) DO UPDATE SET
		absolute_serial_number = excluded.absolute_serial_number,
		serial_number = excluded.serial_number,
		nickname_path = excluded.nickname_path`

	upsertUISettingsSuffix = `ON CONFLICT (id) DO UPDATE SET
		theme = excluded.theme,
		port = excluded.port`
)

var configSetColumns = []string{colName, colFields, colAbsoluteSerialNumber, colInstallOptions}
