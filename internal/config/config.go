package config

import (
	"flag"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"

	"github.com/glfs/glfs-client/internal/api"
	"github.com/glfs/glfs-client/internal/app"
	uistate "github.com/glfs/glfs-client/internal/ui/state"
)

// Config captures runtime configuration for the application.
type Config struct {
	App      app.Config
	Logging  Logging
	Features Features
	Flags    map[string]string
	Args     []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

type Features struct {
	Verbose bool
}

const (
	envBaseURL     = "GLFS_CLIENT_URL"
	envWidth       = "GLFS_CLIENT_WIDTH"
	envHeight      = "GLFS_CLIENT_HEIGHT"
	envShowFooter  = "GLFS_CLIENT_FOOTER"
	envVerbose     = "GLFS_CLIENT_VERBOSE"
	envTrace       = "GLFS_CLIENT_TRACE"
	envLogFile     = "GLFS_CLIENT_LOG_FILE"
	envMetricsAddr = "GLFS_CLIENT_METRICS_ADDR"
	envInitialTab  = "GLFS_CLIENT_TAB"
)

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	fs := flag.NewFlagSet("glfs-client", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	baseURL := fs.String("url", envOrDefault(env, envBaseURL, api.DefaultBaseURL), "base URL of the GLFS backend service")
	width := fs.Int("width", envOrInt(env, envWidth, 0), "desired viewport width in cells (0 uses terminal width)")
	height := fs.Int("height", envOrInt(env, envHeight, 0), "desired viewport height in rows (0 uses terminal height)")
	footer := fs.Bool("footer", envOrBool(env, envShowFooter, false), "enable footer hint row (disabled by default)")
	trace := fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging")
	verbose := fs.Bool("verbose", envOrBool(env, envVerbose, false), "log every backend exchange")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file")
	metricsAddr := fs.String("metrics-addr", envOrDefault(env, envMetricsAddr, ""), "listen address for the Prometheus metrics endpoint (empty disables it)")
	tab := fs.String("tab", envOrDefault(env, envInitialTab, ""), "tab to open once startup completes (home, shaders, settings)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if *width < 0 {
		return Config{}, fmt.Errorf("width must be >= 0 (got %d)", *width)
	}
	if *height < 0 {
		return Config{}, fmt.Errorf("height must be >= 0 (got %d)", *height)
	}

	cfg := Config{
		App: app.Config{
			BaseURL:     strings.TrimSpace(*baseURL),
			Width:       *width,
			Height:      *height,
			ShowFooter:  *footer,
			Verbose:     *verbose,
			InitialTab:  strings.ToLower(strings.TrimSpace(*tab)),
			MetricsAddr: strings.TrimSpace(*metricsAddr),
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		Features: Features{
			Verbose: *verbose,
		},
		Flags: map[string]string{
			"url":         *baseURL,
			"width":       strconv.Itoa(*width),
			"height":      strconv.Itoa(*height),
			"footer":      strconv.FormatBool(*footer),
			"trace":       strconv.FormatBool(*trace),
			"verbose":     strconv.FormatBool(*verbose),
			"logFile":     *logFile,
			"metricsAddr": *metricsAddr,
			"tab":         *tab,
		},
		Args: append([]string(nil), args...),
	}

	return cfg, nil
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		key, value, ok := strings.Cut(entry, "=")
		if !ok || key == "" {
			continue
		}
		values[key] = value
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}

// Validate ensures the backend address is usable and the initial tab exists.
func Validate(cfg Config) error {
	u, err := url.Parse(cfg.App.BaseURL)
	if err != nil {
		return fmt.Errorf("invalid backend url %q: %w", cfg.App.BaseURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("backend url %q must use http or https", cfg.App.BaseURL)
	}
	if u.Host == "" {
		return fmt.Errorf("backend url %q has no host", cfg.App.BaseURL)
	}
	if cfg.App.InitialTab != "" && !uistate.ValidTab(cfg.App.InitialTab) {
		return fmt.Errorf("unknown tab %q (want one of %s)", cfg.App.InitialTab, strings.Join(uistate.TabNames, ", "))
	}
	return nil
}
