package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-config-sets/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	cardHeight   = 5
	maxCardWidth = 72
	chromeHeight = 9
)

func (m panelModel) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	case key.Matches(msg, keys.up):
		m.moveCursor(-1)
	case key.Matches(msg, keys.down):
		m.moveCursor(1)
	case key.Matches(msg, keys.help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, keys.reload):
		m.loading = true
		return m, m.cmdLoadConfigs()

	case key.Matches(msg, keys.newItem):
		m.openConfigModal(newCreateForm(m.services.ConfigService.NewDraft(m.sets)))
		return m, nil

	case key.Matches(msg, keys.edit):
		name, entry, ok := m.selected()
		if !ok {
			m.notifyError(errNothingSelected)
			return m, nil
		}
		m.openConfigModal(newEditForm(name, entry))
		return m, m.cmdLoadUIInfo(name)

	case key.Matches(msg, keys.delete):
		name, _, ok := m.selected()
		if !ok {
			m.notifyError(errNothingSelected)
			return m, nil
		}
		m.modal = modal{kind: modalDelete, target: name}

	case key.Matches(msg, keys.copy):
		name, entry, ok := m.selected()
		if !ok {
			m.notifyError(errNothingSelected)
			return m, nil
		}
		text := entry.Get(models.FieldMaiPath)
		if text == "" {
			text = name
		}
		if err := m.copyToClipboard(text); err != nil {
			m.logger.Warn().Err(err).Msg("clipboard write failed")
			m.notifyError(err)
			return m, nil
		}
		m.notify("copied " + text)

	case key.Matches(msg, keys.settings):
		m.settingsForm = newSettingsForm(m.settings)
		m.modal = modal{kind: modalSettings}
	}

	return m, nil
}

func (m *panelModel) moveCursor(delta int) {
	if len(m.names) == 0 {
		return
	}
	m.cursor = min(max(m.cursor+delta, 0), len(m.names)-1)
}

// visibleRange returns the slice of names that fits the terminal, keeping
// the cursor on screen.
func (m panelModel) visibleRange() (int, int) {
	if m.height == 0 {
		return 0, len(m.names)
	}
	per := max(1, (m.height-chromeHeight)/cardHeight)
	start := 0
	if m.cursor >= per {
		start = m.cursor - per + 1
	}
	return start, min(len(m.names), start+per)
}

func (m panelModel) listView() string {
	var b strings.Builder

	header := m.styles.title.Render("Config sets")
	header += m.styles.muted.Render(fmt.Sprintf("  %d  ·  theme %s", len(m.names), m.settings.Theme))
	b.WriteString(header)
	b.WriteString("\n\n")

	switch {
	case m.loading && m.sets == nil:
		b.WriteString(m.styles.muted.Render("loading..."))
		b.WriteString("\n")
	case len(m.names) == 0:
		b.WriteString(m.styles.muted.Render("No config sets yet. Press n to create one."))
		b.WriteString("\n")
	default:
		start, end := m.visibleRange()
		for i := start; i < end; i++ {
			b.WriteString(m.cardView(m.names[i], m.sets[m.names[i]], i == m.cursor))
			b.WriteString("\n")
		}
		if end-start < len(m.names) {
			b.WriteString(m.styles.muted.Render(fmt.Sprintf("%d-%d of %d", start+1, end, len(m.names))))
			b.WriteString("\n")
		}
	}

	if t := m.toasts.view(m.styles); t != "" {
		b.WriteString("\n")
		b.WriteString(t)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(listHelp{}))
	return b.String()
}

func dash(v string) string {
	if v == "" {
		return "-"
	}
	return v
}

func (m panelModel) cardView(name string, entry models.ConfigEntry, selected bool) string {
	style := m.styles.card
	if selected {
		style = m.styles.selectedCard
	}
	if m.width > 0 {
		style = style.Width(min(maxCardWidth, max(20, m.width-8)))
	}

	title := m.styles.cardTitle.Render(name)
	if entry.AbsoluteSerialNumber > 0 {
		title += m.styles.muted.Render("  #" + strconv.Itoa(entry.AbsoluteSerialNumber))
	}

	line1 := fmt.Sprintf("Serial %s · %s · Version %s",
		dash(entry.Get(models.FieldSerialNumber)),
		dash(entry.Get(models.FieldBotType)),
		dash(entry.Get(models.FieldVersionPath)))
	line2 := fmt.Sprintf("Nickname %s · QQ %s",
		dash(entry.Get(models.FieldNicknamePath)),
		dash(entry.Get(models.FieldQQAccount)))

	return style.Render(title + "\n" + line1 + "\n" + line2)
}
