package dispatcher

import (
	"testing"

	"github.com/glfs/glfs-client/internal/actions"
	"github.com/glfs/glfs-client/internal/api"
	"github.com/glfs/glfs-client/internal/state"
)

func TestHandleAppliesConfigAndCatalog(t *testing.T) {
	configs := state.NewConfigStore()
	catalog := state.NewCatalogStore()
	d := New(configs, catalog)

	record := api.ConfigRecord{ShadersPath: "/sh", Theme: "light"}
	res := d.Handle(actions.ActionResult{
		Config:        &record,
		Catalog:       []api.Shader{{Name: "A", Path: "/a"}},
		CatalogLoaded: true,
		Loader:        &state.LoaderStatus{Class: "ok"},
	})
	if !res.ConfigUpdated || !res.CatalogUpdated || !res.LoaderUpdated {
		t.Fatalf("expected every store updated, got %#v", res)
	}
	if res.Generation != 1 {
		t.Fatalf("expected generation 1, got %d", res.Generation)
	}
	got, ok := configs.Record()
	if !ok || got.ShadersPath != "/sh" || got.Theme != api.ThemeLight {
		t.Fatalf("unexpected config %#v", got)
	}
	if len(catalog.Entries()) != 1 {
		t.Fatalf("expected catalog entry, got %#v", catalog.Entries())
	}
}

func TestHandleLeavesStoresOnFailure(t *testing.T) {
	configs := state.NewConfigStore()
	catalog := state.NewCatalogStore()
	d := New(configs, catalog)
	d.Handle(actions.ActionResult{Catalog: []api.Shader{{Path: "/a"}}, CatalogLoaded: true})

	res := d.Handle(actions.ActionResult{
		ID:     actions.TriggerRefreshShaders,
		Status: &state.StatusLine{Message: "Error loading shaders", Severity: state.SeverityError},
	})
	if res.ConfigUpdated || res.CatalogUpdated {
		t.Fatalf("expected no store updates, got %#v", res)
	}
	if catalog.Generation() != 1 || len(catalog.Entries()) != 1 {
		t.Fatalf("expected previous snapshot retained, got gen %d entries %#v", catalog.Generation(), catalog.Entries())
	}
	if _, ok := configs.Record(); ok {
		t.Fatal("expected config to stay unloaded")
	}
}

func TestHandleEmptyCatalogStillReplaces(t *testing.T) {
	catalog := state.NewCatalogStore()
	d := New(state.NewConfigStore(), catalog)
	d.Handle(actions.ActionResult{Catalog: []api.Shader{{Path: "/a"}}, CatalogLoaded: true})
	res := d.Handle(actions.ActionResult{Catalog: []api.Shader{}, CatalogLoaded: true})
	if !res.CatalogUpdated || len(catalog.Entries()) != 0 {
		t.Fatalf("expected empty snapshot to replace the old one, got %#v", catalog.Entries())
	}
}
