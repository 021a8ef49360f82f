package ui

import (
	"reflect"

	"github.com/charmbracelet/bubbles/cursor"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/glfs/glfs-client/internal/actions"
	"github.com/glfs/glfs-client/internal/data/dispatcher"
	"github.com/glfs/glfs-client/internal/state"
	"github.com/glfs/glfs-client/internal/theme"
	"github.com/glfs/glfs-client/internal/ui/command"
	uistate "github.com/glfs/glfs-client/internal/ui/state"
)

const catalogListID = "shaders"

type msgHandler func(tea.Msg) tea.Cmd

// Options configures the model.
type Options struct {
	Width      int
	Height     int
	ShowFooter bool
	// InitialTab is selected instead of home once startup completes.
	InitialTab string
}

// Model implements the Bubble Tea model for the shader manager.
type Model struct {
	backend    actions.Backend
	registry   *actions.Registry
	bus        *command.Bus
	dispatcher *dispatcher.Dispatcher
	configs    state.ConfigStore
	catalog    state.CatalogStore

	tabs       uistate.Tabs
	initialTab string
	list       *uistate.List
	form       *settingsForm
	status     state.StatusLine
	loader     state.LoaderStatus
	styles     *theme.Styles

	// keymap maps tab -> key -> trigger. It stays nil until startup wires it.
	keymap  map[string]map[string]string
	booted  bool
	halted  bool
	pending map[string]int

	width        int
	height       int
	fixedWidth   bool
	fixedHeight  bool
	showFooter   bool
	filterCursor cursor.Model

	handlers map[reflect.Type]msgHandler
}

// NewModel initialises the UI state. Nothing is requested from the backend
// until Init runs.
func NewModel(backend actions.Backend, opts Options) *Model {
	configs := state.NewConfigStore()
	catalog := state.NewCatalogStore()
	m := &Model{
		backend:    backend,
		registry:   actions.BuildRegistry(),
		bus:        command.New(),
		dispatcher: dispatcher.New(configs, catalog),
		configs:    configs,
		catalog:    catalog,
		tabs:       uistate.NewTabs(),
		initialTab: opts.InitialTab,
		list:       uistate.NewList(catalogListID, nil),
		form:       newSettingsForm(),
		styles:     theme.Default(),
		pending:    make(map[string]int),
		showFooter: opts.ShowFooter,
	}
	if opts.Width > 0 {
		m.width = opts.Width
		m.fixedWidth = true
	}
	if opts.Height > 0 {
		m.height = opts.Height
		m.fixedHeight = true
	}
	c := cursor.New()
	c.SetMode(cursor.CursorStatic)
	c.SetChar(" ")
	c.Focus()
	m.filterCursor = c
	m.registerHandlers()
	return m
}

// Init starts the bootstrap sequence.
func (m *Model) Init() tea.Cmd {
	return m.execute(actions.TriggerBootstrap, "Startup", actions.Bootstrap, actions.Context{Backend: m.backend})
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if handler := m.handlerFor(msg); handler != nil {
		return m, handler(msg)
	}
	return m, nil
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):              m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}):       m.handleWindowSizeMsg,
		reflect.TypeOf(actions.BootstrapResult{}): m.handleBootstrapMsg,
		reflect.TypeOf(actions.ActionResult{}):    m.handleActionResultMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

// ActiveTab returns the name of the visible tab.
func (m *Model) ActiveTab() string {
	return m.tabs.Active()
}

// Status returns the current status line.
func (m *Model) Status() state.StatusLine {
	return m.status
}

// Booted reports whether the startup sequence completed.
func (m *Model) Booted() bool {
	return m.booted
}

// Loading reports whether any dispatched action is still outstanding.
func (m *Model) Loading() bool {
	return len(m.pending) > 0
}
