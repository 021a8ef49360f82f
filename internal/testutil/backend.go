// Package testutil provides an in-process stand-in for the GLFS backend.
package testutil

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync"
	"testing"

	"github.com/glfs/glfs-client/internal/api"
	"github.com/glfs/glfs-client/internal/logging"
)

// FakeBackend serves canned responses keyed by "METHOD path" and records
// every request it receives. Unregistered routes answer 404 with a plain
// text body, which the client treats as a transport failure.
type FakeBackend struct {
	server *httptest.Server

	mu       sync.Mutex
	handlers map[string]http.HandlerFunc
	calls    map[string]int
	order    []string
	bodies   map[string][]byte
	headers  map[string]http.Header
}

// NewFakeBackend starts a fake backend for the duration of t and points the
// shared log at a temporary directory.
func NewFakeBackend(t *testing.T) *FakeBackend {
	t.Helper()
	logging.Configure(filepath.Join(t.TempDir(), "glfs-client.log"))
	f := &FakeBackend{
		handlers: make(map[string]http.HandlerFunc),
		calls:    make(map[string]int),
		bodies:   make(map[string][]byte),
		headers:  make(map[string]http.Header),
	}
	f.server = httptest.NewServer(http.HandlerFunc(f.serve))
	t.Cleanup(func() {
		f.server.Close()
		logging.Configure("")
	})
	return f
}

func (f *FakeBackend) serve(w http.ResponseWriter, r *http.Request) {
	key := r.Method + " " + r.URL.Path
	body, _ := io.ReadAll(r.Body)
	f.mu.Lock()
	f.calls[key]++
	f.order = append(f.order, key)
	f.bodies[key] = body
	f.headers[key] = r.Header.Clone()
	handler := f.handlers[key]
	f.mu.Unlock()
	if handler == nil {
		http.Error(w, "not found", http.StatusNotFound)
		return
	}
	r.Body = io.NopCloser(bytes.NewReader(body))
	handler(w, r)
}

// URL returns the base URL of the fake backend.
func (f *FakeBackend) URL() string {
	return f.server.URL
}

// Client returns an api client bound to the fake backend.
func (f *FakeBackend) Client() *api.Client {
	return api.New(api.Options{BaseURL: f.server.URL, HTTPClient: f.server.Client()})
}

// Handle registers h for method and path, replacing any earlier handler.
func (f *FakeBackend) Handle(method, path string, h http.HandlerFunc) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.handlers[method+" "+path] = h
}

// RespondJSON answers method and path with v encoded as JSON.
func (f *FakeBackend) RespondJSON(method, path string, code int, v interface{}) {
	f.Handle(method, path, func(w http.ResponseWriter, _ *http.Request) {
		WriteJSON(w, code, v)
	})
}

// RespondResult answers method and path with a result envelope.
func (f *FakeBackend) RespondResult(method, path, status, message string) {
	f.RespondJSON(method, path, http.StatusOK, map[string]string{"status": status, "message": message})
}

// ServeConfigStore keeps a configuration record in memory: GET returns the
// last record posted (initially initial) and POST replaces it.
func (f *FakeBackend) ServeConfigStore(initial map[string]interface{}) {
	var mu sync.Mutex
	current := initial
	f.Handle(http.MethodGet, "/api/config", func(w http.ResponseWriter, _ *http.Request) {
		mu.Lock()
		defer mu.Unlock()
		WriteJSON(w, http.StatusOK, current)
	})
	f.Handle(http.MethodPost, "/api/config", func(w http.ResponseWriter, r *http.Request) {
		var next map[string]interface{}
		if err := json.NewDecoder(r.Body).Decode(&next); err != nil {
			WriteJSON(w, http.StatusBadRequest, map[string]string{"status": "error", "message": err.Error()})
			return
		}
		mu.Lock()
		current = next
		mu.Unlock()
		WriteJSON(w, http.StatusOK, map[string]string{"status": "ok", "message": "Configuration saved"})
	})
}

// ServeDefaults registers a healthy backend: a passing probe, the given
// configuration, an empty catalog and an installed loader.
func (f *FakeBackend) ServeDefaults(config map[string]interface{}) {
	f.RespondResult(http.MethodGet, "/api/init", "ok", "ready")
	f.ServeConfigStore(config)
	f.RespondJSON(http.MethodGet, "/api/shaders", http.StatusOK, []interface{}{})
	f.RespondResult(http.MethodGet, "/api/mbl/status", "ok", "MaterialBinLoader is installed")
}

// Calls returns how often method and path were requested.
func (f *FakeBackend) Calls(method, path string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[method+" "+path]
}

// Requests returns every request key in arrival order.
func (f *FakeBackend) Requests() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.order...)
}

// LastBody returns the body of the most recent request to method and path.
func (f *FakeBackend) LastBody(method, path string) []byte {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.bodies[method+" "+path]
}

// DecodeLastBody unmarshals the most recent body for method and path into v.
func (f *FakeBackend) DecodeLastBody(t *testing.T, method, path string, v interface{}) {
	t.Helper()
	body := f.LastBody(method, path)
	if err := json.Unmarshal(body, v); err != nil {
		t.Fatalf("decode %s %s body %q: %v", method, path, body, err)
	}
}

// LastHeader returns the headers of the most recent request to method and path.
func (f *FakeBackend) LastHeader(method, path string) http.Header {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.headers[method+" "+path]
}

// WriteJSON encodes v as the response body.
func WriteJSON(w http.ResponseWriter, code int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}
