package state

import (
	"testing"

	"github.com/glfs/glfs-client/internal/api"
)

func TestConfigStoreReplacesWholesale(t *testing.T) {
	store := NewConfigStore()
	if _, ok := store.Record(); ok {
		t.Fatal("expected no record before the first load")
	}
	store.Replace(api.ConfigRecord{MinecraftPath: "/mc", ShadersPath: "/sh", Theme: "light"})
	store.Replace(api.ConfigRecord{BRDPath: "/brd"})
	record, ok := store.Record()
	if !ok {
		t.Fatal("expected record after replace")
	}
	want := api.ConfigRecord{BRDPath: "/brd", Theme: api.ThemeDark}
	if record != want {
		t.Fatalf("expected %#v, got %#v", want, record)
	}
}

func TestCatalogReplaceBumpsGeneration(t *testing.T) {
	store := NewCatalogStore()
	if store.Generation() != 0 {
		t.Fatalf("expected generation 0, got %d", store.Generation())
	}
	shaders := []api.Shader{{Name: "A", Path: "/a"}, {Name: "B", Path: "/b"}}
	if gen := store.Replace(shaders); gen != 1 {
		t.Fatalf("expected generation 1, got %d", gen)
	}
	shaders[0].Name = "mutated"
	if store.Entries()[0].Name != "A" {
		t.Fatal("expected store to hold its own copy")
	}
	if gen := store.Replace(nil); gen != 2 {
		t.Fatalf("expected generation 2, got %d", gen)
	}
	if len(store.Entries()) != 0 {
		t.Fatalf("expected empty snapshot, got %#v", store.Entries())
	}
}

func TestCatalogBindingsGoStaleAfterReplace(t *testing.T) {
	store := NewCatalogStore()
	store.Replace([]api.Shader{{Name: "A", Path: "/a"}})
	binding := store.Bind(api.Shader{Path: "/a"})
	if shader, ok := store.Resolve(binding); !ok || shader.Name != "A" {
		t.Fatalf("expected binding to resolve, got %#v/%v", shader, ok)
	}
	store.Replace([]api.Shader{{Name: "A", Path: "/a"}})
	if _, ok := store.Resolve(binding); ok {
		t.Fatal("expected binding from previous generation to be rejected")
	}
	if _, ok := store.Resolve(store.Bind(api.Shader{Path: "/missing"})); ok {
		t.Fatal("expected unknown path to be rejected")
	}
}

func TestResolveInRejectsZeroGeneration(t *testing.T) {
	entries := []api.Shader{{Path: "/a"}}
	if _, ok := ResolveIn(entries, 0, Binding{Path: "/a"}); ok {
		t.Fatal("expected zero generation to be rejected")
	}
}

func TestStatusSeverities(t *testing.T) {
	if got := Status("hello", ""); got.Severity != SeverityInfo {
		t.Fatalf("expected info default, got %q", got.Severity)
	}
	if got := ResultStatus(api.Result{Status: "ok", Message: "done"}); got != (StatusLine{"done", SeveritySuccess}) {
		t.Fatalf("unexpected ok status %#v", got)
	}
	if got := ResultStatus(api.Result{Status: "error", Message: "bad"}); got != (StatusLine{"bad", SeverityError}) {
		t.Fatalf("unexpected error status %#v", got)
	}
}

func TestLoaderStatusSeverity(t *testing.T) {
	cases := map[string]Severity{
		"ok":      SeveritySuccess,
		"error":   SeverityError,
		"missing": SeverityInfo,
	}
	for class, want := range cases {
		l := LoaderStatus{Message: "m", Class: class}
		if got := l.Severity(); got != want {
			t.Fatalf("class %q: expected %q, got %q", class, want, got)
		}
		if !l.Known() {
			t.Fatalf("class %q: expected known", class)
		}
	}
	if (LoaderStatus{}).Known() {
		t.Fatal("expected zero loader status to be unknown")
	}
}
