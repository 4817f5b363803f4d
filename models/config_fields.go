package models

// Known scalar keys of a config entry.
const (
	FieldSerialNumber         = "serial_number"
	FieldAbsoluteSerialNumber = "absolute_serial_number"
	FieldVersionPath          = "version_path"
	FieldNicknamePath         = "nickname_path"
	FieldBotType              = "bot_type"
	FieldMaiPath              = "mai_path"
	FieldMofoxPath            = "mofox_path"
	FieldAdapterPath          = "adapter_path"
	FieldNapcatPath           = "napcat_path"
	FieldNapcatVersion        = "napcat_version"
	FieldVenvPath             = "venv_path"
	FieldMongoDBPath          = "mongodb_path"
	FieldWebUIPath            = "webui_path"
	FieldQQAccount            = "qq_account"

	FieldInstallOptions = "install_options"
)

// DefaultBotType is the bot type assigned to new entries.
const DefaultBotType = "MaiBot"

// FieldSpec describes how a scalar key is shown in the panel.
type FieldSpec struct {
	Key      string
	Label    string
	ReadOnly bool
	IsPath   bool
}

// ConfigFields lists the known keys in display order.
var ConfigFields = []FieldSpec{
	{Key: FieldSerialNumber, Label: "Serial number"},
	{Key: FieldAbsoluteSerialNumber, Label: "Absolute serial", ReadOnly: true},
	{Key: FieldVersionPath, Label: "Version"},
	{Key: FieldNicknamePath, Label: "Nickname"},
	{Key: FieldBotType, Label: "Bot type"},
	{Key: FieldMaiPath, Label: "MaiBot path", IsPath: true},
	{Key: FieldMofoxPath, Label: "MoFox path"},
	{Key: FieldAdapterPath, Label: "Adapter path", IsPath: true},
	{Key: FieldNapcatPath, Label: "NapCat path", IsPath: true},
	{Key: FieldNapcatVersion, Label: "NapCat version"},
	{Key: FieldVenvPath, Label: "Venv path", IsPath: true},
	{Key: FieldMongoDBPath, Label: "MongoDB path", IsPath: true},
	{Key: FieldWebUIPath, Label: "WebUI path", IsPath: true},
	{Key: FieldQQAccount, Label: "QQ account"},
}

// PathFields are the keys whose values must look like filesystem paths.
var PathFields = []string{
	FieldMaiPath,
	FieldAdapterPath,
	FieldNapcatPath,
	FieldVenvPath,
	FieldMongoDBPath,
	FieldWebUIPath,
}

// FieldLabel returns the display label of key, or key itself when unknown.
func FieldLabel(key string) string {
	for _, f := range ConfigFields {
		if f.Key == key {
			return f.Label
		}
	}
	return key
}

// IsKnownField reports whether key is one of [ConfigFields].
func IsKnownField(key string) bool {
	for _, f := range ConfigFields {
		if f.Key == key {
			return true
		}
	}
	return false
}
