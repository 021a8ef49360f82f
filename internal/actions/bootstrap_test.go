package actions

import (
	"context"
	"net/http"
	"testing"

	"github.com/glfs/glfs-client/internal/api"
	"github.com/glfs/glfs-client/internal/state"
	"github.com/glfs/glfs-client/internal/testutil"
)

func runBootstrap(t *testing.T, ctx Context) BootstrapResult {
	t.Helper()
	res, ok := Bootstrap(ctx)().(BootstrapResult)
	if !ok {
		t.Fatal("expected BootstrapResult")
	}
	return res
}

func TestBootstrapHaltsOnFailedProbe(t *testing.T) {
	backend := testutil.NewFakeBackend(t)
	backend.RespondResult(http.MethodGet, "/api/init", "error", "Backend not ready")
	backend.ServeConfigStore(map[string]interface{}{})

	res := runBootstrap(t, Context{Backend: backend.Client()})
	if res.Ready {
		t.Fatal("expected bootstrap to halt")
	}
	if res.Status == nil || res.Status.Message != "Backend not ready" || res.Status.Severity != state.SeverityError {
		t.Fatalf("expected probe message as error, got %#v", res.Status)
	}
	if backend.Calls(http.MethodGet, "/api/config") != 0 {
		t.Fatal("expected no config request after a failed probe")
	}
}

func TestBootstrapTransportFailure(t *testing.T) {
	backend := testutil.NewFakeBackend(t)
	res := runBootstrap(t, Context{Backend: backend.Client()})
	if res.Ready || res.Status == nil || res.Status.Message != "Error initializing application" {
		t.Fatalf("expected generic init failure, got %#v", res)
	}
}

func TestBootstrapLoadsConfigAfterProbe(t *testing.T) {
	backend := testutil.NewFakeBackend(t)
	backend.ServeDefaults(map[string]interface{}{"theme": "light", "shaders_path": "/sh"})

	res := runBootstrap(t, Context{Backend: backend.Client()})
	if !res.Ready || res.Status != nil {
		t.Fatalf("expected ready bootstrap, got %#v", res)
	}
	if res.Config.Config == nil || res.Config.Config.Theme != api.ThemeLight {
		t.Fatalf("expected loaded config, got %#v", res.Config)
	}
}

func TestBootstrapConfigFailureDoesNotHalt(t *testing.T) {
	backend := testutil.NewFakeBackend(t)
	backend.RespondResult(http.MethodGet, "/api/init", "ok", "ready")
	res := runBootstrap(t, Context{Backend: backend.Client()})
	if !res.Ready {
		t.Fatal("expected bootstrap to continue without config")
	}
	if res.Config.Status == nil || res.Config.Status.Message != "Error loading configuration" {
		t.Fatalf("expected config error status, got %#v", res.Config.Status)
	}
}

type panickingBackend struct {
	Backend
}

func (panickingBackend) Init(context.Context) (api.Result, error) {
	panic("boom")
}

func TestBootstrapRecoversPanic(t *testing.T) {
	res := runBootstrap(t, Context{Backend: panickingBackend{}})
	if res.Ready || res.Status == nil || res.Status.Message != "Error initializing application" {
		t.Fatalf("expected panic reported as init failure, got %#v", res)
	}
}

func TestRegistryMapsEveryTriggerOnce(t *testing.T) {
	reg := BuildRegistry()
	triggers := reg.Triggers()
	if len(triggers) != len(Handlers()) {
		t.Fatalf("expected %d triggers, got %d", len(Handlers()), len(triggers))
	}
	labels := Labels()
	for _, id := range triggers {
		node, ok := reg.Find(id)
		if !ok || node.Action == nil {
			t.Fatalf("expected action for %s", id)
		}
		if node.Label == "" || node.Label != labels[id] {
			t.Fatalf("expected label for %s, got %q", id, node.Label)
		}
	}
	if _, ok := reg.Find(TriggerBootstrap); ok {
		t.Fatal("bootstrap must not be bindable")
	}
	var nilRegistry *Registry
	if _, ok := nilRegistry.Find(TriggerLaunch); ok {
		t.Fatal("expected nil registry lookup to fail")
	}
}
