package events

import "github.com/glfs/glfs-client/internal/logging"

type UITracer struct{}

type FilterTracer struct{}

type ActionTracer struct{}

type CommandTracer struct{}

var (
	UI      = UITracer{}
	Filter  = FilterTracer{}
	Action  = ActionTracer{}
	Command = CommandTracer{}
)

func (UITracer) TabSelect(tab string) {
	logging.Trace("ui.tab", map[string]interface{}{"tab": tab})
}

func (UITracer) Cursor(view string, cursor int) {
	logging.Trace("ui.cursor", map[string]interface{}{"view": view, "cursor": cursor})
}

func (UITracer) Focus(field string) {
	logging.Trace("ui.focus", map[string]interface{}{"field": field})
}

func (UITracer) Theme(theme string) {
	logging.Trace("ui.theme", map[string]interface{}{"theme": theme})
}

func (UITracer) Status(message, severity string) {
	logging.Trace("ui.status", map[string]interface{}{"message": message, "severity": severity})
}

func (UITracer) Key(tab, key, trigger string) {
	logging.Trace("ui.key", map[string]interface{}{"tab": tab, "key": key, "trigger": trigger})
}

func (ActionTracer) Error(id string, err error) {
	if err == nil {
		return
	}
	logging.Trace("action.error", map[string]interface{}{"id": id, "error": err.Error()})
}

func (ActionTracer) Failure(id, status, message string) {
	logging.Trace("action.failure", map[string]interface{}{"id": id, "status": status, "message": message})
}

func (ActionTracer) Success(id, info string) {
	logging.Trace("action.success", map[string]interface{}{"id": id, "info": info})
}

func (ActionTracer) Cancelled(id string) {
	logging.Trace("action.cancelled", map[string]interface{}{"id": id})
}

func (ActionTracer) Chain(from, to string) {
	logging.Trace("action.chain", map[string]interface{}{"from": from, "to": to})
}

func (FilterTracer) Cleared(view string) {
	logging.Trace("filter.clear", map[string]interface{}{"view": view})
}

func (FilterTracer) WordBackspace(view, filter string) {
	logging.Trace("filter.word-backspace", map[string]interface{}{"view": view, "filter": filter})
}

func (FilterTracer) Cursor(view string, pos int) {
	logging.Trace("filter.cursor", map[string]interface{}{"view": view, "cursor": pos})
}

func (FilterTracer) Append(view, filter string) {
	logging.Trace("filter.append", map[string]interface{}{"view": view, "filter": filter})
}

func (FilterTracer) Backspace(view, filter string) {
	logging.Trace("filter.backspace", map[string]interface{}{"view": view, "filter": filter})
}

func (CommandTracer) Queue(id, label string) {
	logging.Trace("command.queue", map[string]interface{}{"id": id, "label": label})
}

func (CommandTracer) Skip(id, label string) {
	logging.Trace("command.skip", map[string]interface{}{"id": id, "label": label})
}

func (CommandTracer) NoOp(id, label string) {
	logging.Trace("command.noop", map[string]interface{}{"id": id, "label": label})
}

func (CommandTracer) Result(id, label, msgType string) {
	logging.Trace("command.result", map[string]interface{}{"id": id, "label": label, "msg": msgType})
}
