package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/glfs/glfs-client/internal/actions"
	"github.com/glfs/glfs-client/internal/api"
	"github.com/glfs/glfs-client/internal/logging/events"
)

// settingsForm holds the editable copy of the configuration record: one
// input per path field plus the theme toggle (on means dark).
type settingsForm struct {
	inputs map[actions.Field]*textinput.Model
	focus  int
	dark   bool
}

var fieldLabels = map[actions.Field]string{
	actions.FieldMinecraft: "Minecraft path",
	actions.FieldShaders:   "Shaders path",
	actions.FieldBRD:       "BetterRenderDragon path",
}

func newSettingsForm() *settingsForm {
	f := &settingsForm{
		inputs: make(map[actions.Field]*textinput.Model, len(actions.Fields)),
		dark:   true,
	}
	for _, field := range actions.Fields {
		ti := textinput.New()
		ti.Prompt = ""
		ti.Placeholder = "(not set)"
		ti.CharLimit = 1024
		ti.Cursor.SetMode(cursor.CursorStatic)
		f.inputs[field] = &ti
	}
	f.focusIndex(0)
	return f
}

func (f *settingsForm) focusedField() actions.Field {
	return actions.Fields[f.focus]
}

func (f *settingsForm) focusIndex(idx int) {
	n := len(actions.Fields)
	idx = ((idx % n) + n) % n
	f.focus = idx
	for i, field := range actions.Fields {
		if i == idx {
			f.inputs[field].Focus()
		} else {
			f.inputs[field].Blur()
		}
	}
	events.UI.Focus(f.focusedField().String())
}

func (f *settingsForm) moveFocus(delta int) {
	f.focusIndex(f.focus + delta)
}

func (f *settingsForm) value(field actions.Field) string {
	input, ok := f.inputs[field]
	if !ok {
		return ""
	}
	return strings.TrimSpace(input.Value())
}

func (f *settingsForm) setValue(field actions.Field, value string) {
	input, ok := f.inputs[field]
	if !ok {
		return
	}
	input.SetValue(value)
	input.CursorEnd()
}

// load copies a record into the form. Missing paths become empty fields.
func (f *settingsForm) load(record api.ConfigRecord) {
	f.setValue(actions.FieldMinecraft, record.MinecraftPath)
	f.setValue(actions.FieldShaders, record.ShadersPath)
	f.setValue(actions.FieldBRD, record.BRDPath)
	f.dark = record.Normalized().Theme == api.ThemeDark
}

// record reads the form into a fresh configuration record.
func (f *settingsForm) record() api.ConfigRecord {
	theme := api.ThemeLight
	if f.dark {
		theme = api.ThemeDark
	}
	return api.ConfigRecord{
		MinecraftPath: f.value(actions.FieldMinecraft),
		ShadersPath:   f.value(actions.FieldShaders),
		BRDPath:       f.value(actions.FieldBRD),
		Theme:         theme,
	}
}

func (f *settingsForm) toggleTheme() api.Theme {
	f.dark = !f.dark
	return f.record().Theme
}

// update forwards a key to the focused input.
func (f *settingsForm) update(msg tea.KeyMsg) tea.Cmd {
	input := f.inputs[f.focusedField()]
	if msg.String() == "ctrl+u" {
		input.SetValue("")
		input.CursorStart()
		return nil
	}
	updated, cmd := input.Update(msg)
	*input = updated
	return cmd
}

func (f *settingsForm) inputView(field actions.Field) string {
	input, ok := f.inputs[field]
	if !ok {
		return ""
	}
	return input.View()
}
