package actions

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/glfs/glfs-client/internal/logging"
	"github.com/glfs/glfs-client/internal/logging/events"
	"github.com/glfs/glfs-client/internal/state"
)

// CheckLoaderStatus refreshes the MaterialBinLoader panel.
func CheckLoaderStatus(ctx Context) tea.Cmd {
	return func() tea.Msg {
		return checkLoader(ctx, TriggerLoaderStatus)
	}
}

// InstallLoader installs MaterialBinLoader and, when that succeeds, runs one
// status check whose message becomes the reported outcome.
func InstallLoader(ctx Context) tea.Cmd {
	return func() tea.Msg {
		res, err := ctx.Backend.InstallLoader(requestContext())
		if err != nil {
			logging.Error(fmt.Errorf("install loader: %w", err))
			events.Action.Error(TriggerInstallLoader, err)
			return ActionResult{ID: TriggerInstallLoader, Status: errorLine(msgInstallLoader)}
		}
		if !res.OK() {
			line := state.ResultStatus(res)
			events.Action.Failure(TriggerInstallLoader, res.Status, res.Message)
			return ActionResult{ID: TriggerInstallLoader, Status: &line}
		}
		events.Action.Chain(TriggerInstallLoader, TriggerLoaderStatus)
		return checkLoader(ctx, TriggerInstallLoader)
	}
}

func checkLoader(ctx Context, id string) ActionResult {
	res, err := ctx.Backend.LoaderStatus(requestContext())
	if err != nil {
		logging.Error(fmt.Errorf("check loader status: %w", err))
		events.Action.Error(id, err)
		return ActionResult{ID: id, Status: errorLine(msgLoaderStatus)}
	}
	loader := state.LoaderStatus{Message: res.Message, Class: res.Status}
	return ActionResult{
		ID:     id,
		Loader: &loader,
		Status: statusLine(res.Message, loader.Severity()),
	}
}

// Launch starts the game.
func Launch(ctx Context) tea.Cmd {
	return func() tea.Msg {
		res, err := ctx.Backend.Launch(requestContext())
		if err != nil {
			logging.Error(fmt.Errorf("launch: %w", err))
			events.Action.Error(TriggerLaunch, err)
			return ActionResult{ID: TriggerLaunch, Status: errorLine(msgLaunch)}
		}
		line := state.ResultStatus(res)
		return ActionResult{ID: TriggerLaunch, Status: &line}
	}
}
