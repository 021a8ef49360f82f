// Package metrics records backend request metrics with Prometheus.
package metrics

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/glfs/glfs-client/internal/logging"
)

// Recorder owns a private registry so tests and multiple clients never clash
// on the global default registerer.
type Recorder struct {
	registry *prometheus.Registry

	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
}

// New builds a Recorder with its own registry.
func New() *Recorder {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)
	return &Recorder{
		registry: reg,
		requestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "glfs_client_backend_requests_total",
				Help: "Total number of backend requests by endpoint and response code",
			},
			[]string{"method", "endpoint", "code"},
		),
		requestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "glfs_client_backend_request_duration_seconds",
				Help:    "Backend request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "endpoint"},
		),
	}
}

// ObserveRequest implements api.Observer.
func (r *Recorder) ObserveRequest(method, endpoint string, code int, elapsed time.Duration) {
	label := "transport_error"
	if code > 0 {
		label = strconv.Itoa(code)
	}
	r.requestsTotal.WithLabelValues(method, endpoint, label).Inc()
	r.requestDuration.WithLabelValues(method, endpoint).Observe(elapsed.Seconds())
}

// Requests returns the counter for a method/endpoint/code triple.
func (r *Recorder) Requests(method, endpoint, code string) prometheus.Counter {
	return r.requestsTotal.WithLabelValues(method, endpoint, code)
}

// Handler exposes the registry in the Prometheus text format.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}

// Serve starts a metrics listener on addr in the background.
func Serve(addr string, r *Recorder) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", r.Handler())
	srv := &http.Server{Addr: addr, Handler: mux}
	go func() {
		logging.Info("metrics server listening", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Error(err)
		}
	}()
	return srv
}
