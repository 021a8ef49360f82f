package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/glfs/glfs-client/internal/actions"
	"github.com/glfs/glfs-client/internal/logging"
	"github.com/glfs/glfs-client/internal/logging/events"
	uistate "github.com/glfs/glfs-client/internal/ui/state"
)

var tabKeys = map[string]string{
	"f1": uistate.TabHome,
	"f2": uistate.TabShaders,
	"f3": uistate.TabSettings,
}

// wire installs the per-tab key bindings. Until it runs, keys other than
// quit are ignored, so nothing can be triggered before startup completes.
func (m *Model) wire() {
	if m.keymap != nil {
		return
	}
	m.keymap = map[string]map[string]string{
		uistate.TabHome: {
			"l": actions.TriggerLaunch,
			"s": actions.TriggerLoaderStatus,
			"i": actions.TriggerInstallLoader,
		},
		uistate.TabShaders: {
			"ctrl+r": actions.TriggerRefreshShaders,
			"ctrl+o": actions.TriggerImportShader,
			"enter":  actions.TriggerApplyShader,
		},
		uistate.TabSettings: {
			"ctrl+s": actions.TriggerSaveSettings,
			"ctrl+r": actions.TriggerLoadSettings,
			"ctrl+b": actions.TriggerBrowsePath,
		},
	}
}

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	key := keyMsg.String()
	if key == "ctrl+c" {
		return tea.Quit
	}
	if m.keymap == nil {
		if m.halted && (key == "q" || key == "esc") {
			return tea.Quit
		}
		return nil
	}
	switch key {
	case "tab":
		m.cycleTab(1)
		return nil
	case "shift+tab":
		m.cycleTab(-1)
		return nil
	}
	if name, ok := tabKeys[key]; ok {
		m.selectTab(name)
		return nil
	}
	tab := m.tabs.Active()
	if trigger, ok := m.keymap[tab][key]; ok {
		events.UI.Key(tab, key, trigger)
		return m.dispatch(trigger)
	}
	switch tab {
	case uistate.TabShaders:
		return m.handleListKey(keyMsg)
	case uistate.TabSettings:
		return m.handleSettingsKey(keyMsg)
	default:
		if key == "q" || key == "esc" {
			return tea.Quit
		}
	}
	return nil
}

// selectTab makes name the single visible tab.
func (m *Model) selectTab(name string) {
	changed, err := m.tabs.Select(strings.ToLower(name))
	if err != nil {
		logging.Error(err)
		return
	}
	if changed {
		events.UI.TabSelect(m.tabs.Active())
	}
	if m.tabs.IsActive(uistate.TabShaders) {
		m.syncViewport()
	}
}

func (m *Model) cycleTab(delta int) {
	events.UI.TabSelect(m.tabs.Cycle(delta))
	if m.tabs.IsActive(uistate.TabShaders) {
		m.syncViewport()
	}
}

func (m *Model) handleListKey(msg tea.KeyMsg) tea.Cmd {
	moved := false
	switch msg.String() {
	case "up", "ctrl+p":
		moved = m.list.MoveCursor(-1)
	case "down", "ctrl+n":
		moved = m.list.MoveCursor(1)
	case "pgup":
		moved = m.list.MoveCursorPageUp(m.maxVisibleRows())
	case "pgdown":
		moved = m.list.MoveCursorPageDown(m.maxVisibleRows())
	case "home":
		moved = m.list.MoveCursorHome()
	case "end":
		moved = m.list.MoveCursorEnd()
	case "esc":
		if m.list.Filter == "" {
			return tea.Quit
		}
		m.clearFilter()
		return nil
	default:
		_, cmd := m.handleTextInput(msg)
		return cmd
	}
	if moved {
		m.syncViewport()
		events.UI.Cursor(m.list.ID, m.list.Cursor)
	}
	return nil
}

func (m *Model) handleSettingsKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "up":
		m.form.moveFocus(-1)
		return nil
	case "down", "enter":
		m.form.moveFocus(1)
		return nil
	case "ctrl+t":
		m.form.toggleTheme()
		m.applyTheme()
		return nil
	case "esc":
		return tea.Quit
	}
	return m.form.update(msg)
}

func (m *Model) syncViewport() {
	m.list.EnsureCursorVisible(m.maxVisibleRows())
}
