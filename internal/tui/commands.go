package tui

import (
	"strings"

	"github.com/MKhiriev/go-config-sets/models"
	tea "github.com/charmbracelet/bubbletea"
)

func (m panelModel) cmdLoadConfigs() tea.Cmd {
	return func() tea.Msg {
		sets, err := m.services.ConfigService.List(m.ctx)
		return configsLoadedMsg{sets: sets, err: err}
	}
}

func (m panelModel) cmdLoadUIInfo(name string) tea.Cmd {
	return func() tea.Msg {
		editable, err := m.services.ConfigService.EditableInstallOptions(m.ctx, name)
		return uiInfoLoadedMsg{name: name, editable: editable, err: err}
	}
}

func (m panelModel) cmdCreate(existing models.ConfigSets, name string, entry models.ConfigEntry) tea.Cmd {
	return func() tea.Msg {
		msg, err := m.services.ConfigService.Create(m.ctx, existing, name, entry)
		return mutationDoneMsg{op: opCreate, target: strings.TrimSpace(name), msg: msg, err: err}
	}
}

func (m panelModel) cmdUpdate(existing models.ConfigSets, name string, update models.ConfigUpdate) tea.Cmd {
	return func() tea.Msg {
		msg, err := m.services.ConfigService.Update(m.ctx, existing, name, update)
		return mutationDoneMsg{op: opUpdate, target: name, msg: msg, err: err}
	}
}

func (m panelModel) cmdDelete(name string) tea.Cmd {
	return func() tea.Msg {
		msg, err := m.services.ConfigService.Delete(m.ctx, name)
		return mutationDoneMsg{op: opDelete, target: name, msg: msg, err: err}
	}
}

func (m panelModel) cmdLoadSettings() tea.Cmd {
	return func() tea.Msg {
		settings, err := m.services.SettingsService.LoadRemote(m.ctx)
		return settingsLoadedMsg{settings: settings, err: err}
	}
}

func (m panelModel) cmdSaveSettings(settings models.UISettings) tea.Cmd {
	return func() tea.Msg {
		msg, err := m.services.SettingsService.Save(m.ctx, settings)
		return settingsSavedMsg{settings: settings, msg: msg, err: err}
	}
}
