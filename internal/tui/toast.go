package tui

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

const (
	toastDuration = 3 * time.Second
	tickInterval  = 500 * time.Millisecond
)

type toast struct {
	text    string
	failed  bool
	expires time.Time
}

type toasts []toast

func (t toasts) push(text string, failed bool, now time.Time) toasts {
	return append(t, toast{text: text, failed: failed, expires: now.Add(toastDuration)})
}

// prune drops expired toasts.
func (t toasts) prune(now time.Time) toasts {
	kept := make(toasts, 0, len(t))
	for _, item := range t {
		if now.Before(item.expires) {
			kept = append(kept, item)
		}
	}
	return kept
}

func (t toasts) view(s styles) string {
	lines := make([]string, 0, len(t))
	for _, item := range t {
		if item.failed {
			lines = append(lines, s.toastErr.Render("✗ "+item.text))
			continue
		}
		lines = append(lines, s.toastOK.Render("✓ "+item.text))
	}
	return strings.Join(lines, "\n")
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}
