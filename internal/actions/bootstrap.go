package actions

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/glfs/glfs-client/internal/logging"
	"github.com/glfs/glfs-client/internal/logging/events"
	"github.com/glfs/glfs-client/internal/state"
)

// BootstrapResult carries the network half of startup: the readiness probe
// and, when the probe passed, the configuration load.
type BootstrapResult struct {
	Ready  bool
	Status *state.StatusLine
	Config ActionResult
}

// Bootstrap probes the backend and loads the configuration. A failed probe
// halts startup with the probe's own message; a transport failure or panic
// halts it with a generic message.
func Bootstrap(ctx Context) tea.Cmd {
	return func() (msg tea.Msg) {
		defer func() {
			if r := recover(); r != nil {
				logging.Error(fmt.Errorf("bootstrap panic: %v", r))
				msg = halted(msgInitFailed)
			}
		}()
		probe, err := ctx.Backend.Init(requestContext())
		if err != nil {
			logging.Error(fmt.Errorf("readiness probe: %w", err))
			events.Bootstrap.Halt(err.Error())
			return halted(msgInitFailed)
		}
		events.Bootstrap.Probe(probe.Status, probe.Message)
		if !probe.OK() {
			events.Bootstrap.Halt(probe.Message)
			return halted(rejectedMessage(probe, msgInitFailed))
		}
		events.Bootstrap.Step("config")
		return BootstrapResult{Ready: true, Config: loadConfig(ctx)}
	}
}

func halted(message string) BootstrapResult {
	return BootstrapResult{Status: errorLine(message)}
}

// InitFailure is the status reported when startup fails unexpectedly.
func InitFailure() state.StatusLine {
	return state.Status(msgInitFailed, state.SeverityError)
}
