// Package actions holds the request/response cycles triggered from the UI.
// Each action performs its exchange inside a tea.Cmd and reports the outcome
// as a single ActionResult message; state is never mutated here.
package actions

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/glfs/glfs-client/internal/api"
	"github.com/glfs/glfs-client/internal/state"
)

// Trigger identifiers used by the dispatch table.
const (
	TriggerRefreshShaders = "shaders:refresh"
	TriggerImportShader   = "shaders:import"
	TriggerApplyShader    = "shaders:apply"
	TriggerLoadSettings   = "settings:load"
	TriggerSaveSettings   = "settings:save"
	TriggerBrowsePath     = "settings:browse"
	TriggerLaunch         = "home:launch"
	TriggerLoaderStatus   = "home:loader-status"
	TriggerInstallLoader  = "home:loader-install"

	// TriggerBootstrap is never bound to a key.
	TriggerBootstrap = "bootstrap"
)

// Generic messages shown when a request fails below the envelope level.
const (
	msgInitFailed     = "Error initializing application"
	msgLoadConfig     = "Error loading configuration"
	msgSaveConfig     = "Error saving settings"
	msgSaved          = "Settings saved successfully"
	msgLoadShaders    = "Error loading shaders"
	msgApplyShader    = "Error applying shader"
	msgImportShader   = "Error importing shader"
	msgSelectFolder   = "Error selecting folder"
	msgLoaderStatus   = "Error checking MaterialBinLoader status"
	msgInstallLoader  = "Error installing MaterialBinLoader"
	msgLaunch         = "Error launching Minecraft"
	msgStaleSelection = "Shader list changed, refresh and try again"
)

// ShaderFileTypes are offered by the import dialog.
var ShaderFileTypes = []api.FileType{
	{"Shader Files", "*.glsl;*.hlsl;*.shader;*.mcpack;*.bin"},
	{"All Files", "*.*"},
}

// Backend is the subset of the backend client the actions depend on.
type Backend interface {
	Init(context.Context) (api.Result, error)
	Config(context.Context) (api.ConfigRecord, error)
	SaveConfig(context.Context, api.ConfigRecord) (api.Result, error)
	Shaders(context.Context) ([]api.Shader, error)
	ApplyShader(context.Context, string) (api.Result, error)
	OpenFile(context.Context, string, []api.FileType) (api.Result, error)
	ImportShader(context.Context, string) (api.Result, error)
	OpenFolder(context.Context, string) (api.Result, error)
	LoaderStatus(context.Context) (api.Result, error)
	InstallLoader(context.Context) (api.Result, error)
	Launch(context.Context) (api.Result, error)
}

// Field identifies one of the editable path fields.
type Field int

const (
	FieldMinecraft Field = iota
	FieldShaders
	FieldBRD
)

// Fields lists the path fields in display order.
var Fields = []Field{FieldMinecraft, FieldShaders, FieldBRD}

func (f Field) String() string {
	switch f {
	case FieldMinecraft:
		return "minecraft"
	case FieldShaders:
		return "shaders"
	case FieldBRD:
		return "brd"
	default:
		return "unknown"
	}
}

// Context is a snapshot of everything an action may read. It is built on the
// UI goroutine at dispatch time and copied into the command, so actions never
// touch live state.
type Context struct {
	Backend Backend

	// Config is the mirrored configuration record, if one was loaded.
	Config    api.ConfigRecord
	HasConfig bool

	// Form holds the values currently entered in the settings view.
	Form api.ConfigRecord

	// Catalog snapshot and the binding selected by the user.
	Shaders    []api.Shader
	Generation uint64
	Target     state.Binding

	// Field and FieldValue parameterise the browse action.
	Field      Field
	FieldValue string
}

// Action turns a context into a command. The outer function runs on the UI
// goroutine and may reject the request before any exchange happens.
type Action func(Context) tea.Cmd

// ActionResult communicates the outcome of one action.
type ActionResult struct {
	ID string

	// Status replaces the shared status line; nil leaves it unchanged.
	Status *state.StatusLine

	// Config replaces the configuration mirror when set. SyncForm asks the
	// UI to copy it back into the settings fields.
	Config   *api.ConfigRecord
	SyncForm bool

	// Catalog replaces the shader snapshot when CatalogLoaded is set.
	Catalog       []api.Shader
	CatalogLoaded bool

	Loader *state.LoaderStatus

	// PathSelected overwrites Field with Path.
	PathSelected bool
	Field        Field
	Path         string

	// Refresh asks for a catalog refresh once the result is applied.
	Refresh bool
}

// requestContext is the context for every backend request. Requests are not
// cancelled or timed out; a hung request keeps its action pending.
func requestContext() context.Context {
	return context.Background()
}

func statusLine(message string, severity state.Severity) *state.StatusLine {
	line := state.Status(message, severity)
	return &line
}

func errorLine(message string) *state.StatusLine {
	return statusLine(message, state.SeverityError)
}

// failureMessage picks the backend supplied message for envelope failures and
// the generic message for everything else.
func failureMessage(err error, generic string) string {
	if msg, ok := api.BackendMessage(err); ok {
		return msg
	}
	return generic
}

// rejectedMessage returns r's message, or generic when the backend sent none.
func rejectedMessage(r api.Result, generic string) string {
	if r.Message != "" {
		return r.Message
	}
	return generic
}

func resultCmd(res ActionResult) tea.Cmd {
	return func() tea.Msg { return res }
}
