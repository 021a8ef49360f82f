package command

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/glfs/glfs-client/internal/actions"
	"github.com/glfs/glfs-client/internal/logging/events"
)

// Request encapsulates an action invocation.
type Request struct {
	ID      string
	Label   string
	Handler actions.Action
}

// Bus coordinates the execution of actions.
type Bus struct{}

// New initialises a command bus instance.
func New() *Bus {
	return &Bus{}
}

// Execute runs the action's synchronous half on the caller's goroutine and
// wraps the returned command while emitting trace logs.
func (b *Bus) Execute(ctx actions.Context, req Request) tea.Cmd {
	events.Command.Queue(req.ID, req.Label)
	if req.Handler == nil {
		events.Command.Skip(req.ID, req.Label)
		return nil
	}
	cmd := req.Handler(ctx)
	if cmd == nil {
		events.Command.NoOp(req.ID, req.Label)
		return nil
	}
	return func() tea.Msg {
		msg := cmd()
		events.Command.Result(req.ID, req.Label, fmt.Sprintf("%T", msg))
		return msg
	}
}
