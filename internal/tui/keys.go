package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up       key.Binding
	down     key.Binding
	left     key.Binding
	right    key.Binding
	newItem  key.Binding
	edit     key.Binding
	delete   key.Binding
	copy     key.Binding
	settings key.Binding
	reload   key.Binding
	help     key.Binding
	quit     key.Binding

	next   key.Binding
	prev   key.Binding
	toggle key.Binding
	submit key.Binding
	cancel key.Binding
	yes    key.Binding
	no     key.Binding
}

var keys = keyMap{
	up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	left:     key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "prev theme")),
	right:    key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "next theme")),
	newItem:  key.NewBinding(key.WithKeys("n", "a"), key.WithHelp("n", "new")),
	edit:     key.NewBinding(key.WithKeys("e", "enter"), key.WithHelp("e", "edit")),
	delete:   key.NewBinding(key.WithKeys("d", "delete"), key.WithHelp("d", "delete")),
	copy:     key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "copy path")),
	settings: key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "settings")),
	reload:   key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload")),
	help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more")),
	quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),

	next:   key.NewBinding(key.WithKeys("tab", "down"), key.WithHelp("tab", "next field")),
	prev:   key.NewBinding(key.WithKeys("shift+tab", "up"), key.WithHelp("shift+tab", "prev field")),
	toggle: key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "toggle")),
	submit: key.NewBinding(key.WithKeys("enter", "ctrl+s"), key.WithHelp("enter", "save")),
	cancel: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
	yes:    key.NewBinding(key.WithKeys("y", "Y"), key.WithHelp("y", "delete")),
	no:     key.NewBinding(key.WithKeys("n", "N", "esc"), key.WithHelp("n", "keep")),
}

// listHelp, formHelp, confirmHelp and settingsHelp implement help.KeyMap
// for the corresponding screen.
type listHelp struct{}

func (listHelp) ShortHelp() []key.Binding {
	return []key.Binding{keys.newItem, keys.edit, keys.delete, keys.settings, keys.help, keys.quit}
}

func (listHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{keys.up, keys.down},
		{keys.newItem, keys.edit, keys.delete},
		{keys.copy, keys.reload, keys.settings},
		{keys.help, keys.quit},
	}
}

type formHelp struct{}

func (formHelp) ShortHelp() []key.Binding {
	return []key.Binding{keys.next, keys.prev, keys.toggle, keys.submit, keys.cancel}
}

func (f formHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{f.ShortHelp()}
}

type confirmHelp struct{}

func (confirmHelp) ShortHelp() []key.Binding {
	return []key.Binding{keys.yes, keys.no}
}

func (c confirmHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{c.ShortHelp()}
}

type settingsHelp struct{}

func (settingsHelp) ShortHelp() []key.Binding {
	return []key.Binding{keys.left, keys.right, keys.next, keys.submit, keys.cancel}
}

func (s settingsHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{s.ShortHelp()}
}
