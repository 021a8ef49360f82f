package state

import (
	"github.com/glfs/glfs-client/internal/api"
	"github.com/glfs/glfs-client/internal/state"
)

// Row is one rendered catalog entry. Binding ties it to the snapshot it was
// rendered from, so acting on a row after the snapshot changed is detectable.
type Row struct {
	Shader  api.Shader
	Binding state.Binding
}

// ID returns the row identity, the shader path.
func (r Row) ID() string {
	return r.Shader.Path
}

// Name returns the label the filter matches against.
func (r Row) Name() string {
	return r.Shader.Name
}

// RowsFor binds every shader of a snapshot taken at generation.
func RowsFor(shaders []api.Shader, generation uint64) []Row {
	rows := make([]Row, len(shaders))
	for i, shader := range shaders {
		rows[i] = Row{Shader: shader, Binding: state.Binding{Path: shader.Path, Generation: generation}}
	}
	return rows
}

// CloneRows produces a shallow copy of the provided rows.
func CloneRows(rows []Row) []Row {
	dup := make([]Row, len(rows))
	copy(dup, rows)
	return dup
}

// List tracks the rows of a scrollable, filterable view.
type List struct {
	ID             string
	Rows           []Row
	Full           []Row
	Filter         string
	FilterCursor   int
	Cursor         int
	LastCursor     int
	ViewportOffset int
}

// NewList constructs a List over rows.
func NewList(id string, rows []Row) *List {
	l := &List{ID: id, LastCursor: -1}
	l.SetRows(rows)
	return l
}

// IndexOf returns the visible index for a row identifier.
func (l *List) IndexOf(id string) int {
	if id == "" {
		return -1
	}
	for i, row := range l.Rows {
		if row.ID() == id {
			return i
		}
	}
	return -1
}

// SetRows replaces the full row set. The filter is re-applied and the cursor
// follows the previously selected row when it is still present.
func (l *List) SetRows(rows []Row) {
	var keep string
	if row, ok := l.Selected(); ok {
		keep = row.ID()
	}
	l.Full = CloneRows(rows)
	l.applyFilter()
	if idx := l.IndexOf(keep); idx >= 0 {
		l.Cursor = idx
	}
}

// Selected returns the row under the cursor.
func (l *List) Selected() (Row, bool) {
	if l.Cursor < 0 || l.Cursor >= len(l.Rows) {
		return Row{}, false
	}
	return l.Rows[l.Cursor], true
}
