package tui

import (
	"slices"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-config-sets/internal/service"
	"github.com/MKhiriev/go-config-sets/models"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const inputWidth = 40

type formMode int

const (
	formCreate formMode = iota
	formEdit
)

type fieldInput struct {
	key   string
	label string
	input textinput.Model
}

type optionBox struct {
	key     string
	checked bool
}

// configForm is the create/edit form shown in the config modal. Focus
// moves over the name (create only), the scalar fields and, when they may
// be edited, the install option checkboxes.
type configForm struct {
	mode   formMode
	target string

	name           textinput.Model
	absoluteSerial int
	fields         []fieldInput
	options        []optionBox

	editable    bool
	infoLoading bool
	focus       int
	submitting  bool
}

func newInput(value string) textinput.Model {
	in := textinput.New()
	in.Prompt = ""
	in.Width = inputWidth
	in.SetValue(value)
	return in
}

func newFieldInputs(entry models.ConfigEntry) []fieldInput {
	fields := make([]fieldInput, 0, len(models.ConfigFields)+len(entry.Fields))
	for _, known := range models.ConfigFields {
		if known.ReadOnly {
			continue
		}
		fields = append(fields, fieldInput{key: known.Key, label: known.Label, input: newInput(entry.Get(known.Key))})
	}

	extra := make([]string, 0)
	for key := range entry.Fields {
		if !models.IsKnownField(key) {
			extra = append(extra, key)
		}
	}
	slices.Sort(extra)
	for _, key := range extra {
		fields = append(fields, fieldInput{key: key, label: key, input: newInput(entry.Fields[key])})
	}
	return fields
}

func newOptionBoxes(options models.InstallOptions) []optionBox {
	options = options.WithDefaults()
	boxes := make([]optionBox, 0, len(options))
	for _, key := range options.Keys() {
		boxes = append(boxes, optionBox{key: key, checked: options[key]})
	}
	return boxes
}

func newCreateForm(draft models.ConfigEntry) configForm {
	f := configForm{
		mode:           formCreate,
		name:           newInput(""),
		absoluteSerial: draft.AbsoluteSerialNumber,
		fields:         newFieldInputs(draft),
		options:        newOptionBoxes(draft.InstallOptions),
		editable:       true,
	}
	f.name.Placeholder = "bot-1"
	f.setFocus(0)
	return f
}

// newEditForm opens with the install options locked until the server
// reports whether they are editable.
func newEditForm(name string, entry models.ConfigEntry) configForm {
	f := configForm{
		mode:           formEdit,
		target:         name,
		absoluteSerial: entry.AbsoluteSerialNumber,
		fields:         newFieldInputs(entry),
		options:        newOptionBoxes(entry.InstallOptions),
		infoLoading:    true,
	}
	f.setFocus(0)
	return f
}

func (f *configForm) optionsEnabled() bool {
	return f.mode == formCreate || (f.editable && !f.infoLoading)
}

func (f *configForm) nameOffset() int {
	if f.mode == formCreate {
		return 1
	}
	return 0
}

func (f *configForm) focusCount() int {
	n := f.nameOffset() + len(f.fields)
	if f.optionsEnabled() {
		n += len(f.options)
	}
	return n
}

// focusedOption returns the index of the focused checkbox or -1.
func (f *configForm) focusedOption() int {
	i := f.focus - f.nameOffset() - len(f.fields)
	if i < 0 || !f.optionsEnabled() || i >= len(f.options) {
		return -1
	}
	return i
}

func (f *configForm) focusedInput() *textinput.Model {
	if f.mode == formCreate && f.focus == 0 {
		return &f.name
	}
	i := f.focus - f.nameOffset()
	if i >= 0 && i < len(f.fields) {
		return &f.fields[i].input
	}
	return nil
}

func (f *configForm) setFocus(i int) tea.Cmd {
	if n := f.focusCount(); n > 0 {
		f.focus = (i%n + n) % n
	}

	f.name.Blur()
	for idx := range f.fields {
		f.fields[idx].input.Blur()
	}
	if in := f.focusedInput(); in != nil {
		return in.Focus()
	}
	return nil
}

// setEditable applies the uiinfo answer.
func (f *configForm) setEditable(editable bool) {
	f.editable = editable
	f.infoLoading = false
	if f.focus >= f.focusCount() {
		f.setFocus(0)
	}
}

func (f *configForm) update(msg tea.KeyMsg) tea.Cmd {
	switch {
	case msg.String() == "tab" || msg.String() == "down":
		return f.setFocus(f.focus + 1)
	case msg.String() == "shift+tab" || msg.String() == "up":
		return f.setFocus(f.focus - 1)
	}

	if opt := f.focusedOption(); opt >= 0 {
		if msg.String() == " " || msg.String() == "x" {
			f.options[opt].checked = !f.options[opt].checked
		}
		return nil
	}

	if in := f.focusedInput(); in != nil {
		var cmd tea.Cmd
		*in, cmd = in.Update(msg)
		return cmd
	}
	return nil
}

// values returns every scalar field of the form, trimmed.
func (f *configForm) values() map[string]string {
	values := make(map[string]string, len(f.fields))
	for _, field := range f.fields {
		values[field.key] = strings.TrimSpace(field.input.Value())
	}
	return values
}

func (f *configForm) checked() models.InstallOptions {
	options := make(models.InstallOptions, len(f.options))
	for _, box := range f.options {
		options[box.key] = box.checked
	}
	return options
}

// entry builds the new config set of the create form. Empty fields are
// left out.
func (f *configForm) entry() models.ConfigEntry {
	entry := models.ConfigEntry{
		Fields:               make(map[string]string, len(f.fields)),
		AbsoluteSerialNumber: f.absoluteSerial,
		InstallOptions:       f.checked(),
	}
	for key, value := range f.values() {
		if value != "" {
			entry.Fields[key] = value
		}
	}
	return entry
}

func (f *configForm) configUpdate() models.ConfigUpdate {
	return service.NewConfigUpdate(f.values(), f.checked(), f.optionsEnabled())
}

func (f configForm) view(s styles) string {
	var b strings.Builder

	title := "New config"
	if f.mode == formEdit {
		title = "Edit " + f.target
	}
	b.WriteString(s.title.Render(title))
	b.WriteString("\n\n")

	row := func(label, value string, focused bool) {
		l := s.label.Render(label)
		if focused {
			l = s.focused.Width(18).Render(label)
		}
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, l, value))
		b.WriteString("\n")
	}

	if f.mode == formCreate {
		row("Name", f.name.View(), f.focus == 0)
	}

	serial := "-"
	if f.absoluteSerial > 0 {
		serial = strconv.Itoa(f.absoluteSerial)
	}
	row(models.FieldLabel(models.FieldAbsoluteSerialNumber), s.muted.Render(serial+" (read-only)"), false)

	for i, field := range f.fields {
		row(field.label, field.input.View(), f.focus == f.nameOffset()+i)
	}

	b.WriteString("\n")
	b.WriteString(s.muted.Render("Install options"))
	b.WriteString("\n")
	switch {
	case f.infoLoading:
		b.WriteString(s.muted.Render("  loading..."))
		b.WriteString("\n")
	case !f.optionsEnabled():
		b.WriteString(s.muted.Render("  not managed by the panel"))
		b.WriteString("\n")
	}

	for i, box := range f.options {
		mark := "[ ]"
		if box.checked {
			mark = "[x]"
		}
		line := "  " + mark + " " + box.key
		switch {
		case !f.optionsEnabled():
			line = s.muted.Render(line)
		case f.focusedOption() == i:
			line = s.focused.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	if f.submitting {
		b.WriteString("\n")
		b.WriteString(s.muted.Render("saving..."))
	}

	return strings.TrimRight(b.String(), "\n")
}
