package tui

import (
	"time"

	"github.com/MKhiriev/go-config-sets/models"
)

type configsLoadedMsg struct {
	sets models.ConfigSets
	err  error
}

type uiInfoLoadedMsg struct {
	name     string
	editable bool
	err      error
}

// mutationDoneMsg reports the result of create, update or delete of the
// config set named target.
type mutationDoneMsg struct {
	op     mutationOp
	target string
	msg    string
	err    error
}

type settingsLoadedMsg struct {
	settings models.UISettings
	err      error
}

type settingsSavedMsg struct {
	settings models.UISettings
	msg      string
	err      error
}

type tickMsg time.Time

type mutationOp int

const (
	opCreate mutationOp = iota
	opUpdate
	opDelete
)
