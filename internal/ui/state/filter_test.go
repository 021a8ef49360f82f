package state

import (
	"testing"

	"github.com/glfs/glfs-client/internal/api"
)

func TestSetFilterTracksCursorAndRestoresPosition(t *testing.T) {
	l := newTestList("one", "two", "three")
	l.Cursor = 2
	l.SetFilter("two", len("two"))

	if l.Filter != "two" {
		t.Fatalf("expected filter persisted, got %q", l.Filter)
	}
	if l.FilterCursor != len("two") {
		t.Fatalf("expected cursor at end, got %d", l.FilterCursor)
	}
	if len(l.Rows) != 1 || l.Rows[0].Name() != "two" {
		t.Fatalf("expected filtered rows to contain only 'two', got %#v", l.Rows)
	}
	if l.Cursor != 0 {
		t.Fatalf("expected filtered cursor at 0, got %d", l.Cursor)
	}

	l.SetFilter("", 0)
	if l.Cursor != 2 {
		t.Fatalf("expected cursor restored to 2, got %d", l.Cursor)
	}
	if l.LastCursor != -1 {
		t.Fatalf("expected last cursor reset, got %d", l.LastCursor)
	}
	if len(l.Rows) != 3 {
		t.Fatalf("expected all rows visible again, got %d", len(l.Rows))
	}
}

func TestInsertAndDeleteFilterText(t *testing.T) {
	l := newTestList("alpha")

	if !l.InsertFilterText("ab") {
		t.Fatal("expected insert to succeed")
	}
	if l.Filter != "ab" || l.FilterCursor != 2 {
		t.Fatalf("unexpected filter state %q/%d", l.Filter, l.FilterCursor)
	}

	l.FilterCursor = 1
	if !l.InsertFilterText("z") {
		t.Fatal("expected insert in middle to succeed")
	}
	if l.Filter != "azb" || l.FilterCursor != 2 {
		t.Fatalf("unexpected filter state %q/%d", l.Filter, l.FilterCursor)
	}

	if !l.DeleteFilterRuneBackward() {
		t.Fatal("expected rune deletion to succeed")
	}
	if l.Filter != "ab" || l.FilterCursor != 1 {
		t.Fatalf("unexpected filter state after delete %q/%d", l.Filter, l.FilterCursor)
	}

	l.SetFilter("abc def", len("abc def"))
	if !l.DeleteFilterWordBackward() {
		t.Fatal("expected word deletion to succeed")
	}
	if l.Filter != "abc " {
		t.Fatalf("expected trailing word removed, got %q", l.Filter)
	}

	l.SetFilter("abc", 0)
	if l.DeleteFilterRuneBackward() {
		t.Fatal("expected delete at start to fail")
	}
}

func TestFilterCursorNavigation(t *testing.T) {
	l := newTestList("one")
	l.SetFilter("one two", len("one two"))

	if !l.MoveFilterCursorRuneBackward() {
		t.Fatal("expected rune backward movement")
	}
	if l.FilterCursor != len("one two")-1 {
		t.Fatalf("expected cursor len-1, got %d", l.FilterCursor)
	}
	if !l.MoveFilterCursorRuneForward() {
		t.Fatal("expected rune forward movement")
	}
	if l.MoveFilterCursorRuneForward() {
		t.Fatal("expected no movement past end")
	}
	if !l.MoveFilterCursorStart() || l.FilterCursor != 0 {
		t.Fatalf("expected cursor at 0, got %d", l.FilterCursor)
	}
	if l.MoveFilterCursorStart() {
		t.Fatal("expected no movement when already at start")
	}
	if !l.MoveFilterCursorEnd() || l.FilterCursor != len("one two") {
		t.Fatalf("expected cursor at end, got %d", l.FilterCursor)
	}
}

func TestFilterRowsPreservesCatalogOrder(t *testing.T) {
	rows := RowsFor([]api.Shader{
		{Name: "Alpha", Path: "/a"},
		{Name: "Beta", Path: "/b"},
		{Name: "Alphabet", Path: "/c"},
	}, 1)
	filtered := FilterRows(rows, "alp")
	if len(filtered) != 2 || filtered[0].Name() != "Alpha" || filtered[1].Name() != "Alphabet" {
		t.Fatalf("unexpected filtered results %#v", filtered)
	}
	filtered = FilterRows(rows, "ta")
	if len(filtered) != 1 || filtered[0].Name() != "Beta" {
		t.Fatalf("expected match for Beta, got %#v", filtered)
	}
	if len(FilterRows(rows, "nomatch")) != 0 {
		t.Fatal("expected empty results when nothing matches")
	}
	if len(FilterRows(rows, "  ")) != 3 {
		t.Fatal("expected blank query to keep every row")
	}
}

func TestFilterDoesNotChangeBindings(t *testing.T) {
	l := NewList("catalog", RowsFor([]api.Shader{{Name: "Alpha", Path: "/a"}, {Name: "Beta", Path: "/b"}}, 7))
	l.SetFilter("beta", 4)
	row, ok := l.Selected()
	if !ok {
		t.Fatal("expected a selected row")
	}
	if row.Binding.Path != "/b" || row.Binding.Generation != 7 {
		t.Fatalf("unexpected binding %#v", row.Binding)
	}
}

func TestBestMatchIndex(t *testing.T) {
	rows := RowsFor([]api.Shader{
		{Name: "First", Path: "/1"},
		{Name: "Second", Path: "/2"},
		{Name: "Third", Path: "/3"},
	}, 1)

	if idx := BestMatchIndex(rows, "Second"); idx != 1 {
		t.Fatalf("expected exact match index 1, got %d", idx)
	}
	if idx := BestMatchIndex(rows, "th"); idx != 2 {
		t.Fatalf("expected prefix match index 2, got %d", idx)
	}
	if idx := BestMatchIndex(rows, "zzz"); idx != 0 {
		t.Fatalf("expected fallback index 0, got %d", idx)
	}
	if idx := BestMatchIndex(nil, "anything"); idx != -1 {
		t.Fatalf("expected -1 for empty slice, got %d", idx)
	}
}
