package api

// Result status values returned by the backend.
const (
	StatusOK        = "ok"
	StatusError     = "error"
	StatusCancelled = "cancelled"
)

// Theme names the colour scheme persisted in the configuration record.
type Theme string

const (
	ThemeDark  Theme = "dark"
	ThemeLight Theme = "light"
)

// ConfigRecord mirrors the backend configuration document.
type ConfigRecord struct {
	MinecraftPath string `json:"minecraft_path"`
	ShadersPath   string `json:"shaders_path"`
	BRDPath       string `json:"brd_path"`
	Theme         Theme  `json:"theme"`
}

// Normalized returns a copy with the theme defaulted to dark when it is
// missing or unknown.
func (r ConfigRecord) Normalized() ConfigRecord {
	if r.Theme != ThemeLight {
		r.Theme = ThemeDark
	}
	return r
}

// Shader describes one installed shader package.
type Shader struct {
	Name     string `json:"name"`
	Path     string `json:"path"`
	Size     int64  `json:"size"`
	Modified string `json:"modified"`
}

// Result is the envelope returned by every action endpoint.
type Result struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	Path    string `json:"path,omitempty"`
}

// OK reports whether the backend accepted the request.
func (r Result) OK() bool {
	return r.Status == StatusOK
}

// Failed reports whether the backend rejected the request.
func (r Result) Failed() bool {
	return r.Status == StatusError
}

// Selected returns the chosen path of a dialog result. A dialog that was
// dismissed reports ok without a path, or the cancelled status.
func (r Result) Selected() (string, bool) {
	if !r.OK() || r.Path == "" {
		return "", false
	}
	return r.Path, true
}

// FileType is a (label, pattern) pair for the native file dialog.
type FileType [2]string

type fileDialogRequest struct {
	InitialDir string     `json:"initial_dir"`
	FileTypes  []FileType `json:"file_types"`
}

type folderDialogRequest struct {
	InitialDir string `json:"initial_dir"`
}

type pathRequest struct {
	Path string `json:"path"`
}
