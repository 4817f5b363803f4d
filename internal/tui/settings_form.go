package tui

import (
	"strconv"
	"strings"

	"github.com/MKhiriev/go-config-sets/models"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	settingsFocusTheme = iota
	settingsFocusPort
)

// settingsForm edits the theme (cycled with ←/→) and the API port.
type settingsForm struct {
	theme      models.Theme
	port       textinput.Model
	focus      int
	submitting bool
}

func newSettingsForm(current models.UISettings) settingsForm {
	port := newInput(strconv.Itoa(current.Port))
	port.CharLimit = 5
	port.Width = 8

	theme := current.Theme
	if !theme.IsValid() {
		theme = models.ThemeAuto
	}
	return settingsForm{theme: theme, port: port}
}

func (f *settingsForm) update(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "tab", "shift+tab", "up", "down":
		if f.focus == settingsFocusTheme {
			f.focus = settingsFocusPort
			return f.port.Focus()
		}
		f.focus = settingsFocusTheme
		f.port.Blur()
		return nil
	}

	if f.focus == settingsFocusTheme {
		switch msg.String() {
		case "left":
			f.theme = f.theme.Prev()
		case "right", " ":
			f.theme = f.theme.Next()
		}
		return nil
	}

	var cmd tea.Cmd
	f.port, cmd = f.port.Update(msg)
	return cmd
}

// settings parses the form. Range checks are left to the settings service.
func (f *settingsForm) settings() (models.UISettings, error) {
	port, err := strconv.Atoi(strings.TrimSpace(f.port.Value()))
	if err != nil {
		return models.UISettings{}, errPortNotNumber
	}
	return models.UISettings{Theme: f.theme, Port: port}, nil
}

func (f settingsForm) view(s styles) string {
	var b strings.Builder
	b.WriteString(s.title.Render("Settings"))
	b.WriteString("\n\n")

	themes := make([]string, 0, len(models.Themes))
	for _, t := range models.Themes {
		if t == f.theme {
			themes = append(themes, s.focused.Render("‹"+string(t)+"›"))
			continue
		}
		themes = append(themes, s.muted.Render(string(t)))
	}

	themeLabel := s.label.Render("Theme")
	if f.focus == settingsFocusTheme {
		themeLabel = s.focused.Width(18).Render("Theme")
	}
	b.WriteString(themeLabel + strings.Join(themes, " "))
	b.WriteString("\n")

	portLabel := s.label.Render("Port")
	if f.focus == settingsFocusPort {
		portLabel = s.focused.Width(18).Render("Port")
	}
	b.WriteString(portLabel + f.port.View())
	b.WriteString("\n\n")
	b.WriteString(s.muted.Render("A new port is used after the server restarts."))

	if f.submitting {
		b.WriteString("\n")
		b.WriteString(s.muted.Render("saving..."))
	}
	return b.String()
}
