package tui

import (
	"context"
	"strings"
	"time"

	"github.com/MKhiriev/go-config-sets/internal/app"
	"github.com/MKhiriev/go-config-sets/internal/logger"
	"github.com/MKhiriev/go-config-sets/internal/service"
	"github.com/MKhiriev/go-config-sets/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

const msgPortAfterRestart = "port change takes effect after restart"

type panelModel struct {
	ctx      context.Context
	services *service.ClientServices
	logger   *logger.Logger

	sets    models.ConfigSets
	names   []string
	cursor  int
	loading bool

	modal        modal
	form         configForm
	settingsForm settingsForm

	settings models.UISettings
	styles   styles
	toasts   toasts
	help     help.Model

	width  int
	height int

	now             func() time.Time
	copyToClipboard func(string) error
}

// newPanelModel applies the locally saved theme right away; the server copy
// replaces it once loaded.
func newPanelModel(ctx context.Context, services *service.ClientServices, logger *logger.Logger) panelModel {
	settings := services.SettingsService.LoadLocal(ctx)

	return panelModel{
		ctx:             ctx,
		services:        services,
		logger:          logger,
		loading:         true,
		settings:        settings,
		styles:          newStyles(settings.Theme),
		help:            help.New(),
		now:             time.Now,
		copyToClipboard: clipboard.WriteAll,
	}
}

func (m panelModel) Init() tea.Cmd {
	return tea.Batch(m.cmdLoadConfigs(), m.cmdLoadSettings(), tick())
}

func (m panelModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tickMsg:
		m.toasts = m.toasts.prune(time.Time(msg))
		return m, tick()

	case configsLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.notifyError(msg.err)
			return m, nil
		}
		m.setConfigs(msg.sets)
		return m, nil

	case uiInfoLoadedMsg:
		if m.modal.kind != modalConfig || m.form.mode != formEdit || m.form.target != msg.name {
			return m, nil
		}
		if msg.err != nil {
			m.notifyError(msg.err)
			m.form.setEditable(false)
			return m, nil
		}
		m.form.setEditable(msg.editable)
		return m, nil

	case mutationDoneMsg:
		return m.handleMutation(msg)

	case settingsLoadedMsg:
		if msg.err != nil {
			m.logger.Warn().Err(msg.err).Msg("using local settings")
			m.notifyError(msg.err)
			return m, nil
		}
		m.applySettings(msg.settings)
		return m, nil

	case settingsSavedMsg:
		awaiting := m.modal.kind == modalSettings && m.settingsForm.submitting
		if awaiting {
			m.settingsForm.submitting = false
		}
		if msg.err != nil {
			m.notifyError(msg.err)
			return m, nil
		}
		portChanged := msg.settings.Port != m.settings.Port
		m.applySettings(msg.settings)
		if awaiting {
			m.closeModal()
		}

		text := msg.msg
		if text == "" {
			text = app.MsgUISettingsSaved
		}
		if portChanged {
			text += ", " + msgPortAfterRestart
		}
		m.notify(text)
		return m, nil

	case tea.MouseMsg:
		return m.updateMouse(msg)

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		switch m.modal.kind {
		case modalConfig:
			return m.updateConfigModal(msg)
		case modalDelete:
			return m.updateConfirm(msg)
		case modalSettings:
			return m.updateSettings(msg)
		default:
			return m.updateList(msg)
		}
	}

	return m, nil
}

// handleMutation reports a finished mutation. Only the config form that
// submitted it reacts; any other modal opened meanwhile stays as it is.
func (m panelModel) handleMutation(msg mutationDoneMsg) (tea.Model, tea.Cmd) {
	awaiting := m.awaitingMutation(msg)
	if msg.err != nil {
		if awaiting {
			m.form.submitting = false
		}
		m.notifyError(msg.err)
		return m, nil
	}

	text := msg.msg
	if text == "" {
		switch msg.op {
		case opCreate:
			text = app.MsgConfigCreated
		case opUpdate:
			text = app.MsgConfigUpdated
		case opDelete:
			text = app.MsgConfigDeleted
		}
	}

	if awaiting {
		m.closeModal()
	}
	m.notify(text)
	m.loading = true
	return m, m.cmdLoadConfigs()
}

// awaitingMutation reports whether the open config form is the one waiting
// for msg. Delete closes its confirmation before the request is sent.
func (m panelModel) awaitingMutation(msg mutationDoneMsg) bool {
	if m.modal.kind != modalConfig || !m.form.submitting {
		return false
	}
	switch msg.op {
	case opCreate:
		return m.form.mode == formCreate && strings.TrimSpace(m.form.name.Value()) == msg.target
	case opUpdate:
		return m.form.mode == formEdit && m.form.target == msg.target
	default:
		return false
	}
}

func (m panelModel) updateConfigModal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, keys.cancel) {
		m.closeModal()
		return m, nil
	}
	if m.form.submitting {
		return m, nil
	}

	if key.Matches(msg, keys.submit) {
		m.form.submitting = true
		if m.form.mode == formCreate {
			return m, m.cmdCreate(m.sets, m.form.name.Value(), m.form.entry())
		}
		return m, m.cmdUpdate(m.sets, m.form.target, m.form.configUpdate())
	}

	return m, m.form.update(msg)
}

func (m panelModel) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.yes):
		target := m.modal.target
		m.closeModal()
		return m, m.cmdDelete(target)
	case key.Matches(msg, keys.no):
		m.closeModal()
	}
	return m, nil
}

func (m panelModel) updateSettings(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, keys.cancel) {
		m.closeModal()
		return m, nil
	}
	if m.settingsForm.submitting {
		return m, nil
	}

	if key.Matches(msg, keys.submit) {
		settings, err := m.settingsForm.settings()
		if err != nil {
			m.notifyError(err)
			return m, nil
		}
		m.settingsForm.submitting = true
		return m, m.cmdSaveSettings(settings)
	}

	return m, m.settingsForm.update(msg)
}

func (m *panelModel) setConfigs(sets models.ConfigSets) {
	if sets == nil {
		sets = models.ConfigSets{}
	}
	m.sets = sets
	m.names = sets.Names()
	if m.cursor >= len(m.names) {
		m.cursor = len(m.names) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *panelModel) selected() (string, models.ConfigEntry, bool) {
	if len(m.names) == 0 {
		return "", models.ConfigEntry{}, false
	}
	name := m.names[m.cursor]
	return name, m.sets[name], true
}

func (m *panelModel) applySettings(settings models.UISettings) {
	m.settings = settings
	m.styles = newStyles(settings.Theme)
}

func (m *panelModel) notify(text string) {
	m.toasts = m.toasts.push(text, false, m.now())
}

func (m *panelModel) notifyError(err error) {
	text := service.UserMessage(err)
	if text == service.GenericErrorMessage {
		text = err.Error()
	}
	m.toasts = m.toasts.push(text, true, m.now())
}

func (m panelModel) View() string {
	if m.modal.open() {
		box := m.modalBox()
		if m.width == 0 || m.height == 0 {
			return box
		}
		return placeModal(m.width, m.height, box)
	}
	return m.styles.app.Render(m.listView())
}
