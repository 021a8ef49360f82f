package state

import (
	"testing"

	"github.com/glfs/glfs-client/internal/api"
)

func newTestList(names ...string) *List {
	shaders := make([]api.Shader, len(names))
	for i, name := range names {
		shaders[i] = api.Shader{Name: name, Path: "/shaders/" + name}
	}
	return NewList("test", RowsFor(shaders, 1))
}

func TestMoveCursorHome(t *testing.T) {
	l := newTestList("a", "b", "c")
	l.Cursor = 2
	if !l.MoveCursorHome() {
		t.Fatalf("expected move when rows exist")
	}
	if l.Cursor != 0 {
		t.Fatalf("expected cursor 0, got %d", l.Cursor)
	}

	empty := newTestList()
	empty.Cursor = 5
	if empty.MoveCursorHome() {
		t.Fatalf("expected no movement for empty list")
	}
	if empty.Cursor != 0 {
		t.Fatalf("expected cursor reset to 0, got %d", empty.Cursor)
	}
}

func TestMoveCursorEnd(t *testing.T) {
	l := newTestList("a", "b", "c")
	if !l.MoveCursorEnd() {
		t.Fatalf("expected movement to end")
	}
	if l.Cursor != 2 {
		t.Fatalf("expected cursor 2, got %d", l.Cursor)
	}
	if l.MoveCursorEnd() {
		t.Fatalf("expected no movement when already at end")
	}
}

func TestMoveCursorClampsAtEdges(t *testing.T) {
	l := newTestList("a", "b")
	if l.MoveCursor(-1) {
		t.Fatalf("expected no movement above first row")
	}
	if !l.MoveCursor(1) || l.Cursor != 1 {
		t.Fatalf("expected cursor 1, got %d", l.Cursor)
	}
	if l.MoveCursor(1) {
		t.Fatalf("expected no movement below last row")
	}
}

func TestMoveCursorPaging(t *testing.T) {
	l := newTestList("a", "b", "c", "d", "e")
	if !l.MoveCursorPageDown(2) {
		t.Fatalf("expected movement on first page down")
	}
	if l.Cursor != 2 {
		t.Fatalf("expected cursor 2, got %d", l.Cursor)
	}
	if !l.MoveCursorPageDown(2) {
		t.Fatalf("expected movement on second page down")
	}
	if l.Cursor != 4 {
		t.Fatalf("expected cursor 4, got %d", l.Cursor)
	}
	if l.MoveCursorPageDown(2) {
		t.Fatalf("expected no further movement past end")
	}
	if !l.MoveCursorPageUp(10) {
		t.Fatalf("expected movement back to start")
	}
	if l.Cursor != 0 {
		t.Fatalf("expected cursor at start, got %d", l.Cursor)
	}
}

func TestEnsureCursorVisibleAdjustsViewport(t *testing.T) {
	l := newTestList("a", "b", "c", "d", "e")
	l.Cursor = 4
	l.EnsureCursorVisible(2)
	if l.ViewportOffset != 3 {
		t.Fatalf("expected offset 3, got %d", l.ViewportOffset)
	}
	visible := l.Visible(2)
	if len(visible) != 2 || visible[1].Name() != "e" {
		t.Fatalf("unexpected visible rows %#v", visible)
	}

	l.Cursor = -1
	l.EnsureCursorVisible(2)
	if l.Cursor != 0 {
		t.Fatalf("expected cursor normalized to 0, got %d", l.Cursor)
	}
	if l.ViewportOffset != 0 {
		t.Fatalf("expected offset to follow cursor, got %d", l.ViewportOffset)
	}

	l.ViewportOffset = 4
	l.EnsureCursorVisible(0)
	if l.ViewportOffset != 0 {
		t.Fatalf("expected offset reset when maxVisible <= 0, got %d", l.ViewportOffset)
	}
}

func TestSetRowsKeepsSelectedRow(t *testing.T) {
	l := newTestList("a", "b", "c")
	l.Cursor = 1
	shaders := []api.Shader{
		{Name: "z", Path: "/shaders/z"},
		{Name: "a", Path: "/shaders/a"},
		{Name: "b", Path: "/shaders/b"},
	}
	l.SetRows(RowsFor(shaders, 2))
	row, ok := l.Selected()
	if !ok || row.ID() != "/shaders/b" {
		t.Fatalf("expected cursor to follow b, got %#v", row)
	}
	if row.Binding.Generation != 2 {
		t.Fatalf("expected rebound generation 2, got %d", row.Binding.Generation)
	}

	l.SetRows(nil)
	if _, ok := l.Selected(); ok {
		t.Fatalf("expected no selection for empty list")
	}
}
