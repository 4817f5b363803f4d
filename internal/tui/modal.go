package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type modalKind int

const (
	modalClosed modalKind = iota
	modalConfig
	modalDelete
	modalSettings
)

// modal is closed or open; an open modal knows what it shows and, for
// edit and delete, which config set it targets.
type modal struct {
	kind   modalKind
	target string
}

func (md modal) open() bool {
	return md.kind != modalClosed
}

func (m *panelModel) openConfigModal(form configForm) {
	m.form = form
	m.modal = modal{kind: modalConfig, target: form.target}
}

func (m *panelModel) closeModal() {
	m.modal = modal{}
	m.form = configForm{}
	m.settingsForm = settingsForm{}
}

// modalBox renders the open modal with its toasts and key help inside the
// border.
func (m panelModel) modalBox() string {
	var body, helpView string
	switch m.modal.kind {
	case modalConfig:
		body = m.form.view(m.styles)
		helpView = m.help.View(formHelp{})
	case modalDelete:
		body = m.confirmView()
		helpView = m.help.View(confirmHelp{})
	case modalSettings:
		body = m.settingsForm.view(m.styles)
		helpView = m.help.View(settingsHelp{})
	}

	parts := []string{body}
	if t := m.toasts.view(m.styles); t != "" {
		parts = append(parts, t)
	}
	parts = append(parts, helpView)
	return m.styles.modal.Render(strings.Join(parts, "\n\n"))
}

func (m panelModel) confirmView() string {
	return m.styles.danger.Render("Delete "+m.modal.target+"?") + "\n\n" +
		m.styles.muted.Render("The config set and its panel record are removed.")
}

func placeModal(width, height int, box string) string {
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}

// modalBounds returns the top-left corner and size of the modal box as
// placed by placeModal.
func (m panelModel) modalBounds() (x, y, w, h int) {
	box := m.modalBox()
	w, h = lipgloss.Width(box), lipgloss.Height(box)
	x = max(0, (m.width-w)/2)
	y = max(0, (m.height-h)/2)
	return x, y, w, h
}

// updateMouse closes an open modal on a click outside its box and scrolls
// the list with the wheel.
func (m panelModel) updateMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.modal.open() {
		if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		x, y, w, h := m.modalBounds()
		inside := msg.X >= x && msg.X < x+w && msg.Y >= y && msg.Y < y+h
		if !inside && !m.form.submitting && !m.settingsForm.submitting {
			m.closeModal()
		}
		return m, nil
	}

	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.moveCursor(-1)
	case tea.MouseButtonWheelDown:
		m.moveCursor(1)
	}
	return m, nil
}
