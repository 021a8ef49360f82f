package actions

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/glfs/glfs-client/internal/logging"
	"github.com/glfs/glfs-client/internal/logging/events"
	"github.com/glfs/glfs-client/internal/state"
)

// LoadSettings re-reads the configuration record from the backend.
func LoadSettings(ctx Context) tea.Cmd {
	return func() tea.Msg {
		return loadConfig(ctx)
	}
}

func loadConfig(ctx Context) ActionResult {
	events.Config.Load()
	record, err := ctx.Backend.Config(requestContext())
	if err != nil {
		logging.Error(fmt.Errorf("load config: %w", err))
		events.Action.Error(TriggerLoadSettings, err)
		return ActionResult{ID: TriggerLoadSettings, Status: errorLine(failureMessage(err, msgLoadConfig))}
	}
	return ActionResult{ID: TriggerLoadSettings, Config: &record, SyncForm: true}
}

// SaveSettings submits the values from the settings view as a fresh record.
// On success the mirror becomes exactly what was sent; it is not re-fetched.
func SaveSettings(ctx Context) tea.Cmd {
	record := ctx.Form.Normalized()
	return func() tea.Msg {
		events.Config.Save(string(record.Theme))
		res, err := ctx.Backend.SaveConfig(requestContext(), record)
		if err != nil {
			logging.Error(fmt.Errorf("save config: %w", err))
			events.Action.Error(TriggerSaveSettings, err)
			return ActionResult{ID: TriggerSaveSettings, Status: errorLine(msgSaveConfig)}
		}
		if !res.OK() {
			events.Action.Failure(TriggerSaveSettings, res.Status, res.Message)
			return ActionResult{ID: TriggerSaveSettings, Status: errorLine(msgSaveConfig + ": " + res.Message)}
		}
		events.Action.Success(TriggerSaveSettings, msgSaved)
		return ActionResult{
			ID:     TriggerSaveSettings,
			Status: statusLine(msgSaved, state.SeveritySuccess),
			Config: &record,
		}
	}
}

// BrowsePath opens a folder picker seeded with the field's current value and
// overwrites only that field when a folder is chosen.
func BrowsePath(ctx Context) tea.Cmd {
	field := ctx.Field
	initialDir := ctx.FieldValue
	return func() tea.Msg {
		res, err := ctx.Backend.OpenFolder(requestContext(), initialDir)
		if err != nil {
			logging.Error(fmt.Errorf("open folder dialog for %s: %w", field, err))
			events.Action.Error(TriggerBrowsePath, err)
			return ActionResult{ID: TriggerBrowsePath, Status: errorLine(msgSelectFolder)}
		}
		path, ok := res.Selected()
		if !ok {
			if res.Failed() {
				events.Action.Failure(TriggerBrowsePath, res.Status, res.Message)
				return ActionResult{ID: TriggerBrowsePath, Status: errorLine(rejectedMessage(res, msgSelectFolder))}
			}
			events.Action.Cancelled(TriggerBrowsePath)
			return ActionResult{ID: TriggerBrowsePath}
		}
		return ActionResult{ID: TriggerBrowsePath, PathSelected: true, Field: field, Path: path}
	}
}
