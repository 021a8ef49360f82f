package actions

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/glfs/glfs-client/internal/logging"
	"github.com/glfs/glfs-client/internal/logging/events"
	"github.com/glfs/glfs-client/internal/state"
)

// RefreshShaders fetches the full catalog. A failed fetch carries no catalog
// so the previous snapshot stays in place.
func RefreshShaders(ctx Context) tea.Cmd {
	return func() tea.Msg {
		events.Catalog.Refresh()
		shaders, err := ctx.Backend.Shaders(requestContext())
		if err != nil {
			logging.Error(fmt.Errorf("load shaders: %w", err))
			events.Action.Error(TriggerRefreshShaders, err)
			return ActionResult{ID: TriggerRefreshShaders, Status: errorLine(failureMessage(err, msgLoadShaders))}
		}
		return ActionResult{ID: TriggerRefreshShaders, Catalog: shaders, CatalogLoaded: true}
	}
}

// ApplyShader activates the shader the user picked. The binding must belong
// to the snapshot captured in ctx; entries from an older render are rejected
// without contacting the backend.
func ApplyShader(ctx Context) tea.Cmd {
	shader, ok := state.ResolveIn(ctx.Shaders, ctx.Generation, ctx.Target)
	if !ok {
		events.Catalog.Stale(ctx.Target.Path, ctx.Target.Generation, ctx.Generation)
		return resultCmd(ActionResult{ID: TriggerApplyShader, Status: errorLine(msgStaleSelection)})
	}
	path := shader.Path
	return func() tea.Msg {
		res, err := ctx.Backend.ApplyShader(requestContext(), path)
		if err != nil {
			logging.Error(fmt.Errorf("apply shader %s: %w", path, err))
			events.Action.Error(TriggerApplyShader, err)
			return ActionResult{ID: TriggerApplyShader, Status: errorLine(msgApplyShader)}
		}
		line := state.ResultStatus(res)
		if res.OK() {
			events.Action.Success(TriggerApplyShader, res.Message)
		} else {
			events.Action.Failure(TriggerApplyShader, res.Status, res.Message)
		}
		return ActionResult{ID: TriggerApplyShader, Status: &line}
	}
}

// ImportShader runs the two step import: pick a file, then submit it. Only
// the second step's outcome is reported, and a successful import refreshes
// the catalog. Dismissing the dialog ends the action silently.
func ImportShader(ctx Context) tea.Cmd {
	initialDir := ""
	if ctx.HasConfig {
		initialDir = ctx.Config.ShadersPath
	}
	return func() tea.Msg {
		selection, err := ctx.Backend.OpenFile(requestContext(), initialDir, ShaderFileTypes)
		if err != nil {
			logging.Error(fmt.Errorf("open file dialog: %w", err))
			events.Action.Error(TriggerImportShader, err)
			return ActionResult{ID: TriggerImportShader, Status: errorLine(msgImportShader)}
		}
		path, ok := selection.Selected()
		if !ok {
			if selection.Failed() {
				events.Action.Failure(TriggerImportShader, selection.Status, selection.Message)
				return ActionResult{ID: TriggerImportShader, Status: errorLine(rejectedMessage(selection, msgImportShader))}
			}
			events.Action.Cancelled(TriggerImportShader)
			return ActionResult{ID: TriggerImportShader}
		}

		res, err := ctx.Backend.ImportShader(requestContext(), path)
		if err != nil {
			logging.Error(fmt.Errorf("import shader %s: %w", path, err))
			events.Action.Error(TriggerImportShader, err)
			return ActionResult{ID: TriggerImportShader, Status: errorLine(msgImportShader)}
		}
		line := state.ResultStatus(res)
		if !res.OK() {
			events.Action.Failure(TriggerImportShader, res.Status, res.Message)
			return ActionResult{ID: TriggerImportShader, Status: &line}
		}
		events.Action.Success(TriggerImportShader, res.Message)
		return ActionResult{ID: TriggerImportShader, Status: &line, Refresh: true}
	}
}
