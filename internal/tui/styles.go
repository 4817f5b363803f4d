package tui

import (
	"github.com/MKhiriev/go-config-sets/models"
	"github.com/charmbracelet/lipgloss"
)

// detectDarkBackground resolves the "auto" theme. Tests replace it.
var detectDarkBackground = lipgloss.HasDarkBackground

type palette struct {
	text    lipgloss.Color
	muted   lipgloss.Color
	accent  lipgloss.Color
	border  lipgloss.Color
	success lipgloss.Color
	danger  lipgloss.Color
}

var (
	darkPalette = palette{
		text:    lipgloss.Color("#E4E4E7"),
		muted:   lipgloss.Color("#71717A"),
		accent:  lipgloss.Color("#60A5FA"),
		border:  lipgloss.Color("#3F3F46"),
		success: lipgloss.Color("#4ADE80"),
		danger:  lipgloss.Color("#F87171"),
	}
	lightPalette = palette{
		text:    lipgloss.Color("#18181B"),
		muted:   lipgloss.Color("#71717A"),
		accent:  lipgloss.Color("#2563EB"),
		border:  lipgloss.Color("#D4D4D8"),
		success: lipgloss.Color("#16A34A"),
		danger:  lipgloss.Color("#DC2626"),
	}
)

type styles struct {
	dark bool

	app          lipgloss.Style
	title        lipgloss.Style
	card         lipgloss.Style
	selectedCard lipgloss.Style
	cardTitle    lipgloss.Style
	label        lipgloss.Style
	muted        lipgloss.Style
	focused      lipgloss.Style
	modal        lipgloss.Style
	danger       lipgloss.Style
	toastOK      lipgloss.Style
	toastErr     lipgloss.Style
}

// resolveDark maps a theme to a dark or light palette.
func resolveDark(theme models.Theme) bool {
	switch theme {
	case models.ThemeDark:
		return true
	case models.ThemeLight:
		return false
	default:
		return detectDarkBackground()
	}
}

func newStyles(theme models.Theme) styles {
	dark := resolveDark(theme)
	p := lightPalette
	if dark {
		p = darkPalette
	}

	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.border).
		Foreground(p.text).
		Padding(0, 1).
		MarginBottom(0)

	return styles{
		dark:         dark,
		app:          lipgloss.NewStyle().Padding(1, 2).Foreground(p.text),
		title:        lipgloss.NewStyle().Bold(true).Foreground(p.accent),
		card:         card,
		selectedCard: card.BorderForeground(p.accent),
		cardTitle:    lipgloss.NewStyle().Bold(true).Foreground(p.text),
		label:        lipgloss.NewStyle().Foreground(p.muted).Width(18),
		muted:        lipgloss.NewStyle().Foreground(p.muted),
		focused:      lipgloss.NewStyle().Foreground(p.accent).Bold(true),
		modal:        lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(p.accent).Padding(1, 2),
		danger:       lipgloss.NewStyle().Foreground(p.danger).Bold(true),
		toastOK:      lipgloss.NewStyle().Foreground(p.success),
		toastErr:     lipgloss.NewStyle().Foreground(p.danger),
	}
}
