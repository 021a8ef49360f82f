package app

import (
	"context"
	"errors"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/glfs/glfs-client/internal/api"
	"github.com/glfs/glfs-client/internal/logging"
	"github.com/glfs/glfs-client/internal/metrics"
	"github.com/glfs/glfs-client/internal/ui"
)

// Config describes user-provided application options.
type Config struct {
	BaseURL     string
	Width       int
	Height      int
	ShowFooter  bool
	Verbose     bool
	InitialTab  string
	MetricsAddr string
}

// Run bootstraps and executes the Bubble Tea program.
func Run(cfg Config) error {
	recorder := metrics.New()
	var observer api.Observer = recorder
	if cfg.Verbose {
		observer = requestLogger{next: recorder}
	}
	client := api.New(api.Options{BaseURL: cfg.BaseURL, Observer: observer})

	if cfg.MetricsAddr != "" {
		srv := metrics.Serve(cfg.MetricsAddr, recorder)
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			if err := srv.Shutdown(ctx); err != nil {
				logging.Error(err)
			}
		}()
	}

	model := ui.NewModel(client, ui.Options{
		Width:      cfg.Width,
		Height:     cfg.Height,
		ShowFooter: cfg.ShowFooter,
		InitialTab: cfg.InitialTab,
	})
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err := program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}

// requestLogger writes one log entry per backend exchange before handing the
// observation on.
type requestLogger struct {
	next api.Observer
}

func (l requestLogger) ObserveRequest(method, endpoint string, code int, elapsed time.Duration) {
	logging.Info("backend request",
		zap.String("method", method),
		zap.String("endpoint", endpoint),
		zap.Int("code", code),
		zap.Duration("elapsed", elapsed),
	)
	if l.next != nil {
		l.next.ObserveRequest(method, endpoint, code, elapsed)
	}
}
