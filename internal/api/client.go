// Package api is the HTTP client for the local GLFS backend service.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	// DefaultBaseURL is where the desktop backend listens by default.
	DefaultBaseURL = "http://127.0.0.1:5000"

	requestIDHeader = "X-Request-ID"
)

// Observer receives one notification per completed exchange. code is zero
// when no HTTP response was received.
type Observer interface {
	ObserveRequest(method, endpoint string, code int, elapsed time.Duration)
}

// Options configures a Client.
type Options struct {
	BaseURL    string
	HTTPClient *http.Client
	Observer   Observer
}

// Client talks to the backend endpoints. It applies no timeouts or retries;
// callers own the lifetime of each request through ctx.
type Client struct {
	baseURL    string
	httpClient *http.Client
	observer   Observer
}

// New creates a client for the backend at opts.BaseURL.
func New(opts Options) *Client {
	base := strings.TrimRight(strings.TrimSpace(opts.BaseURL), "/")
	if base == "" {
		base = DefaultBaseURL
	}
	hc := opts.HTTPClient
	if hc == nil {
		hc = &http.Client{}
	}
	return &Client{baseURL: base, httpClient: hc, observer: opts.Observer}
}

// BaseURL returns the normalised backend address.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Init performs the readiness probe.
func (c *Client) Init(ctx context.Context) (Result, error) {
	var res Result
	err := c.do(ctx, http.MethodGet, "/api/init", nil, &res)
	return res, err
}

// Config fetches the configuration record. Absent fields decode to their
// zero values and the theme is normalised.
func (c *Client) Config(ctx context.Context) (ConfigRecord, error) {
	var payload struct {
		ConfigRecord
		Status  string `json:"status"`
		Message string `json:"message"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/config", nil, &payload); err != nil {
		return ConfigRecord{}, err
	}
	if payload.Status == StatusError {
		return ConfigRecord{}, &BackendError{Op: "load config", Message: payload.Message}
	}
	return payload.ConfigRecord.Normalized(), nil
}

// SaveConfig submits a full configuration record.
func (c *Client) SaveConfig(ctx context.Context, record ConfigRecord) (Result, error) {
	var res Result
	err := c.do(ctx, http.MethodPost, "/api/config", record, &res)
	return res, err
}

// Shaders lists the installed shader packages in server order.
func (c *Client) Shaders(ctx context.Context) ([]Shader, error) {
	var raw json.RawMessage
	if err := c.do(ctx, http.MethodGet, "/api/shaders", nil, &raw); err != nil {
		return nil, err
	}
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) > 0 && trimmed[0] == '{' {
		var res Result
		if err := json.Unmarshal(trimmed, &res); err != nil {
			return nil, &TransportError{Op: "GET /api/shaders", Err: err}
		}
		return nil, &BackendError{Op: "list shaders", Message: res.Message}
	}
	var shaders []Shader
	if err := json.Unmarshal(trimmed, &shaders); err != nil {
		return nil, &TransportError{Op: "GET /api/shaders", Err: err}
	}
	if shaders == nil {
		shaders = []Shader{}
	}
	return shaders, nil
}

// ApplyShader activates the shader at path.
func (c *Client) ApplyShader(ctx context.Context, path string) (Result, error) {
	var res Result
	err := c.do(ctx, http.MethodPost, "/api/shaders/apply", pathRequest{Path: path}, &res)
	return res, err
}

// OpenFile asks the backend to show a native file picker.
func (c *Client) OpenFile(ctx context.Context, initialDir string, types []FileType) (Result, error) {
	var res Result
	body := fileDialogRequest{InitialDir: initialDir, FileTypes: types}
	err := c.do(ctx, http.MethodPost, "/api/dialog/open_file", body, &res)
	return res, err
}

// ImportShader copies the file at path into the shaders directory.
func (c *Client) ImportShader(ctx context.Context, path string) (Result, error) {
	var res Result
	err := c.do(ctx, http.MethodPost, "/api/shaders/import", pathRequest{Path: path}, &res)
	return res, err
}

// OpenFolder asks the backend to show a native folder picker.
func (c *Client) OpenFolder(ctx context.Context, initialDir string) (Result, error) {
	var res Result
	err := c.do(ctx, http.MethodPost, "/api/dialog/open_folder", folderDialogRequest{InitialDir: initialDir}, &res)
	return res, err
}

// LoaderStatus reports whether MaterialBinLoader is installed.
func (c *Client) LoaderStatus(ctx context.Context) (Result, error) {
	var res Result
	err := c.do(ctx, http.MethodGet, "/api/mbl/status", nil, &res)
	return res, err
}

// InstallLoader installs or repairs MaterialBinLoader.
func (c *Client) InstallLoader(ctx context.Context) (Result, error) {
	var res Result
	err := c.do(ctx, http.MethodPost, "/api/mbl/install", nil, &res)
	return res, err
}

// Launch starts the game through the BetterRenderDragon launcher.
func (c *Client) Launch(ctx context.Context) (Result, error) {
	var res Result
	err := c.do(ctx, http.MethodPost, "/api/minecraft/launch", nil, &res)
	return res, err
}

func (c *Client) do(ctx context.Context, method, endpoint string, body, out interface{}) error {
	op := method + " " + endpoint
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return &TransportError{Op: op, Err: fmt.Errorf("encode request: %w", err)}
		}
		reader = bytes.NewReader(data)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpoint, reader)
	if err != nil {
		return &TransportError{Op: op, Err: err}
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set(requestIDHeader, uuid.NewString())

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.observe(method, endpoint, 0, start)
		return &TransportError{Op: op, Err: err}
	}
	defer resp.Body.Close()
	c.observe(method, endpoint, resp.StatusCode, start)

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return &TransportError{Op: op, Err: fmt.Errorf("read response: %w", err)}
	}
	if err := json.Unmarshal(data, out); err != nil {
		if resp.StatusCode < 200 || resp.StatusCode > 299 {
			err = errors.Join(fmt.Errorf("unexpected status %d", resp.StatusCode), err)
		}
		return &TransportError{Op: op, Err: fmt.Errorf("decode response: %w", err)}
	}
	return nil
}

func (c *Client) observe(method, endpoint string, code int, start time.Time) {
	if c.observer == nil {
		return
	}
	c.observer.ObserveRequest(method, endpoint, code, time.Since(start))
}
