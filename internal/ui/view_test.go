package ui

import (
	"net/http"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/glfs/glfs-client/internal/testutil"
)

func TestViewShowsTabsStatusAndFooter(t *testing.T) {
	backend := testutil.NewFakeBackend(t)
	backend.ServeDefaults(map[string]interface{}{"minecraft_path": "/games/mc"})
	backend.RespondResult(http.MethodPost, "/api/minecraft/launch", "ok", "Minecraft launched")
	h := startHarness(t, backend, Options{Width: 100, Height: 20, ShowFooter: true})

	h.Send(runes("l"))
	view := h.View()
	for _, want := range []string{"Home", "Shaders", "Settings", "/games/mc", "Minecraft launched", "l launch"} {
		if !strings.Contains(view, want) {
			t.Fatalf("expected %q in view:\n%s", want, view)
		}
	}
	if lines := strings.Split(view, "\n"); len(lines) > 20 {
		t.Fatalf("expected view within 20 rows, got %d", len(lines))
	}
}

func TestViewRendersCatalogTable(t *testing.T) {
	h := startShaders(t)
	h.Send(tea.WindowSizeMsg{Width: 80, Height: 20})

	view := h.View()
	for _, want := range []string{"Name", "Size", "Modified", "Alpha", "2.0 KB", "10.0 B", "2024-01-02 11:00:00"} {
		if !strings.Contains(view, want) {
			t.Fatalf("expected %q in view:\n%s", want, view)
		}
	}
}

func TestViewReportsEmptyFilterResult(t *testing.T) {
	h := startShaders(t)
	h.Send(runes("zzz"))
	if view := h.View(); !strings.Contains(view, `No matches for "zzz"`) {
		t.Fatalf("expected no-match message, got:\n%s", view)
	}
}

func TestViewShowsPendingWork(t *testing.T) {
	backend := testutil.NewFakeBackend(t)
	backend.ServeDefaults(map[string]interface{}{})
	h := startHarness(t, backend, Options{})

	m := h.Model()
	cmd := m.dispatch("home:loader-status")
	if !strings.Contains(h.View(), "Check loader status") {
		t.Fatalf("expected pending label in view:\n%s", h.View())
	}
	h.Run(cmd)
	if strings.Contains(h.View(), "Working:") {
		t.Fatalf("expected loading line gone:\n%s", h.View())
	}
}

func TestViewportFollowsCursor(t *testing.T) {
	backend := testutil.NewFakeBackend(t)
	backend.ServeDefaults(map[string]interface{}{})
	many := make([]map[string]interface{}, 30)
	for i := range many {
		name := string(rune('A'+i%26)) + strings.Repeat("x", i/26)
		many[i] = map[string]interface{}{"name": name, "path": "/sh/" + name}
	}
	backend.RespondJSON(http.MethodGet, "/api/shaders", http.StatusOK, many)
	h := startHarness(t, backend, Options{InitialTab: "shaders", Width: 60, Height: 12})

	h.Send(tea.KeyMsg{Type: tea.KeyEnd})
	m := h.Model()
	limit := m.maxVisibleRows()
	if got := len(m.list.Visible(limit)); got != limit {
		t.Fatalf("expected %d visible rows, got %d", limit, got)
	}
	if m.list.Cursor < m.list.ViewportOffset || m.list.Cursor >= m.list.ViewportOffset+limit {
		t.Fatalf("cursor %d outside viewport at %d", m.list.Cursor, m.list.ViewportOffset)
	}
	if lines := strings.Split(h.View(), "\n"); len(lines) > 12 {
		t.Fatalf("expected view within 12 rows, got %d", len(lines))
	}
}
