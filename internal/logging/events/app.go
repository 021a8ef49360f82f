package events

import "github.com/glfs/glfs-client/internal/logging"

type AppTracer struct{}

type BootstrapTracer struct{}

var (
	App       = AppTracer{}
	Bootstrap = BootstrapTracer{}
)

func (AppTracer) Start(payload map[string]interface{}) {
	logging.Trace("app.start", payload)
}

func (BootstrapTracer) Probe(status, message string) {
	logging.Trace("bootstrap.probe", map[string]interface{}{"status": status, "message": message})
}

func (BootstrapTracer) Step(step string) {
	logging.Trace("bootstrap.step", map[string]interface{}{"step": step})
}

func (BootstrapTracer) Halt(reason string) {
	logging.Trace("bootstrap.halt", map[string]interface{}{"reason": reason})
}

func (BootstrapTracer) Done(tab string) {
	logging.Trace("bootstrap.done", map[string]interface{}{"tab": tab})
}
