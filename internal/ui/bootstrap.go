package ui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/glfs/glfs-client/internal/actions"
	"github.com/glfs/glfs-client/internal/logging"
	"github.com/glfs/glfs-client/internal/logging/events"
	"github.com/glfs/glfs-client/internal/theme"
	uistate "github.com/glfs/glfs-client/internal/ui/state"
)

// handleBootstrapMsg finishes startup once the probe and configuration load
// have returned: wire the key map, refresh the catalog, apply the theme and
// show the default tab. A failed probe stops here and nothing is wired.
func (m *Model) handleBootstrapMsg(msg tea.Msg) (cmd tea.Cmd) {
	result, ok := msg.(actions.BootstrapResult)
	if !ok {
		return nil
	}
	m.finishPending(actions.TriggerBootstrap)
	defer func() {
		if r := recover(); r != nil {
			logging.Error(fmt.Errorf("bootstrap panic: %v", r))
			m.halted = true
			m.setStatus(actions.InitFailure())
			cmd = nil
		}
	}()
	if !result.Ready {
		m.halted = true
		if result.Status != nil {
			m.setStatus(*result.Status)
		}
		return nil
	}

	m.applyResult(result.Config)

	events.Bootstrap.Step("wire")
	m.wire()

	events.Bootstrap.Step("catalog")
	cmd = m.dispatch(actions.TriggerRefreshShaders)

	events.Bootstrap.Step("theme")
	m.applyTheme()

	tab := uistate.TabHome
	if uistate.ValidTab(m.initialTab) {
		tab = m.initialTab
	}
	m.selectTab(tab)
	m.booted = true
	events.Bootstrap.Done(tab)
	return cmd
}

// applyTheme switches the style set to match the theme toggle.
func (m *Model) applyTheme() {
	name := theme.Dark
	if !m.form.dark {
		name = theme.Light
	}
	if m.styles != nil && m.styles.Name == name {
		return
	}
	m.styles = theme.ForName(name)
	events.UI.Theme(name)
}
