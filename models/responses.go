package models

// APIResponse is the envelope of every mutating response and every error
// response of the REST API.
type APIResponse struct {
	// Success is false for every error response.
	Success bool `json:"success"`

	// Msg is a human-readable message shown to the user as is.
	Msg string `json:"msg,omitempty"`
}

// UIInfo is returned by GET /api/configs/{name}/uiinfo.
type UIInfo struct {
	// EditableInstallOptions is true when the entry is managed by the panel
	// and its install options may be changed.
	EditableInstallOptions bool `json:"editable_install_options"`
}

// VersionInfo is returned by GET /api/version/.
type VersionInfo struct {
	Version string `json:"version"`
	Date    string `json:"date,omitempty"`
	Commit  string `json:"commit,omitempty"`
}
