package ui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/glfs/glfs-client/internal/actions"
	"github.com/glfs/glfs-client/internal/logging"
	"github.com/glfs/glfs-client/internal/logging/events"
	"github.com/glfs/glfs-client/internal/state"
	"github.com/glfs/glfs-client/internal/ui/command"
	uistate "github.com/glfs/glfs-client/internal/ui/state"
)

// actionContext snapshots the state an action may read.
func (m *Model) actionContext() actions.Context {
	record, ok := m.configs.Record()
	return actions.Context{
		Backend:    m.backend,
		Config:     record,
		HasConfig:  ok,
		Form:       m.form.record(),
		Shaders:    m.catalog.Entries(),
		Generation: m.catalog.Generation(),
	}
}

// dispatch resolves trigger through the dispatch table and runs its action.
func (m *Model) dispatch(trigger string) tea.Cmd {
	node, ok := m.registry.Find(trigger)
	if !ok {
		logging.Error(fmt.Errorf("no action registered for trigger %q", trigger))
		return nil
	}
	ctx := m.actionContext()
	switch trigger {
	case actions.TriggerApplyShader:
		row, ok := m.list.Selected()
		if !ok {
			return nil
		}
		ctx.Target = row.Binding
	case actions.TriggerBrowsePath:
		ctx.Field = m.form.focusedField()
		ctx.FieldValue = m.form.value(ctx.Field)
	}
	return m.execute(node.ID, node.Label, node.Action, ctx)
}

func (m *Model) execute(id, label string, action actions.Action, ctx actions.Context) tea.Cmd {
	cmd := m.bus.Execute(ctx, command.Request{ID: id, Label: label, Handler: action})
	if cmd != nil {
		m.pending[id]++
	}
	return cmd
}

func (m *Model) finishPending(id string) {
	if m.pending[id] <= 1 {
		delete(m.pending, id)
		return
	}
	m.pending[id]--
}

func (m *Model) handleActionResultMsg(msg tea.Msg) tea.Cmd {
	result, ok := msg.(actions.ActionResult)
	if !ok {
		return nil
	}
	m.finishPending(result.ID)
	m.applyResult(result)
	if result.Refresh {
		return m.dispatch(actions.TriggerRefreshShaders)
	}
	return nil
}

// applyResult hands store updates to the dispatcher, then refreshes whatever
// the view derives from them. The status line is written last.
func (m *Model) applyResult(result actions.ActionResult) {
	out := m.dispatcher.Handle(result)
	if out.ConfigUpdated && result.SyncForm {
		if record, ok := m.configs.Record(); ok {
			m.form.load(record)
			m.applyTheme()
		}
	}
	if out.CatalogUpdated {
		m.list.SetRows(uistate.RowsFor(m.catalog.Entries(), out.Generation))
		m.syncViewport()
	}
	if result.Loader != nil {
		m.loader = *result.Loader
	}
	if result.PathSelected {
		m.form.setValue(result.Field, result.Path)
	}
	if result.Status != nil {
		m.setStatus(*result.Status)
	}
}

func (m *Model) setStatus(line state.StatusLine) {
	m.status = line
	events.UI.Status(line.Message, string(line.Severity))
}

func (m *Model) pendingLabels() []string {
	labels := make([]string, 0, len(m.pending))
	for _, id := range m.registry.Triggers() {
		if m.pending[id] == 0 {
			continue
		}
		if node, ok := m.registry.Find(id); ok {
			labels = append(labels, node.Label)
		}
	}
	if m.pending[actions.TriggerBootstrap] > 0 {
		labels = append(labels, "Startup")
	}
	return labels
}
