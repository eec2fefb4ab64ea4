// Package api configures and exposes the HTTP server: callable functions,
// metrics, docs, health and the middlewares around them.
package api

import (
	_ "embed"
	"fmt"
	"net/http"
	"time"
	"userlookup/internal/api/handler/callable"
	"userlookup/internal/config"
	"userlookup/internal/lookup"
	"userlookup/pkg/controller"
	"userlookup/pkg/logger"
	"userlookup/pkg/metrics"
	"userlookup/pkg/serrors"
	"userlookup/pkg/storage"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/swaggest/swgui/v5emb"
	otelprom "go.opentelemetry.io/otel/exporters/prometheus"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.uber.org/zap"
)

// v1Spec is the OpenAPI description of the callable functions.
//
//go:embed specs/v1.yaml
var v1Spec []byte

const msgTimedOut = "Request timed out."

// Options holds configuration for the HTTP server. Zero durations fall back
// to net/http defaults.
type Options struct {
	// Addr is the TCP address the server listens on, e.g. ":8080".
	Addr string
	// ReadTimeout is the maximum duration for reading the entire request, including the body.
	ReadTimeout time.Duration
	// ReadHeaderTimeout is the amount of time allowed to read request headers.
	ReadHeaderTimeout time.Duration
	// WriteTimeout is the maximum duration before timing out writes of the response.
	WriteTimeout time.Duration
	// IdleTimeout is the maximum amount of time to wait for the next request when keep-alives are enabled.
	IdleTimeout time.Duration
	// RequestTimeout bounds every request; late requests get DEADLINE_EXCEEDED.
	RequestTimeout time.Duration
	// MaxHeaderBytes controls the maximum number of bytes the server
	// will read parsing the request header's keys and values, including the request line.
	MaxHeaderBytes int
	// MetricsPath is the HTTP path at which Prometheus metrics are served.
	MetricsPath string
	// AllowedOrigin is the CORS origin allowed to call functions.
	AllowedOrigin string
	// EnablePprof mounts net/http/pprof under controller.PprofPath.
	EnablePprof bool
	// Registry receives the exported metrics. Nil means the Prometheus default registry.
	Registry *prometheus.Registry
}

// NewOptions maps the HTTP section of the application config to Options.
func NewOptions(cfg *config.Config) Options {
	return Options{
		Addr:              cfg.HTTP.Addr,
		ReadTimeout:       cfg.HTTP.ReadTimeout,
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		WriteTimeout:      cfg.HTTP.WriteTimeout,
		IdleTimeout:       cfg.HTTP.IdleTimeout,
		RequestTimeout:    cfg.HTTP.RequestTimeout,
		MaxHeaderBytes:    cfg.HTTP.MaxHeaderBytes,
		MetricsPath:       cfg.HTTP.MetricsPath,
		AllowedOrigin:     cfg.HTTP.AllowedOrigin,
		EnablePprof:       cfg.HTTP.EnablePprof,
	}
}

// Deps are the collaborators the server routes to.
type Deps struct {
	Lookup  lookup.Lookup
	Storage storage.Storage
}

// NewServer wires up and returns a configured *http.Server. It sets up:
//   - callable functions under /<function name>
//   - Prometheus metrics (MetricsPath) fed by an OpenTelemetry exporter
//   - the embedded OpenAPI document and Swagger UI
//   - /healthz, which pings the store
//   - pprof endpoints for profiling, when enabled
//
// The mux is wrapped with a request timeout, then CORS and logging
// middlewares, so timeout responses still carry CORS headers.
func NewServer(deps Deps, opts Options) (*http.Server, error) {
	mux := http.NewServeMux()

	var (
		registerer prometheus.Registerer = prometheus.DefaultRegisterer
		gatherer   prometheus.Gatherer   = prometheus.DefaultGatherer
	)
	if opts.Registry != nil {
		registerer, gatherer = opts.Registry, opts.Registry
	}
	mux.Handle(opts.MetricsPath, promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))

	exp, err := otelprom.New(otelprom.WithRegisterer(registerer))
	if err != nil {
		return nil, fmt.Errorf("could not create otel exporter: %w", err)
	}
	calls, err := metrics.NewCalls(sdkmetric.NewMeterProvider(sdkmetric.WithReader(exp)))
	if err != nil {
		return nil, fmt.Errorf("could not create call metrics: %w", err)
	}

	mux.HandleFunc("GET /specs/v1.yaml", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/yaml")
		_, _ = w.Write(v1Spec)
	})
	mux.Handle("/docs/", v5emb.New(
		"User Lookup Functions",
		"/specs/v1.yaml",
		"/docs/",
	))

	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		if err := deps.Storage.Ping(r.Context()); err != nil {
			logger.Warn(r.Context(), "health check failed", zap.Error(err))
			http.Error(w, "unavailable", http.StatusServiceUnavailable)

			return
		}
		_, _ = w.Write([]byte("ok"))
	})

	if opts.EnablePprof {
		mux.Handle(controller.PprofPath, controller.Pprof())
	}

	callable.New(callable.Deps{
		Lookup: deps.Lookup,
		Calls:  calls,
	}).Register(mux)

	var handler http.Handler = mux
	if opts.RequestTimeout > 0 {
		handler = controller.WithTimeout(opts.RequestTimeout,
			callable.EncodeError(serrors.ErrDeadlineExceeded, msgTimedOut), handler)
	}
	handler = controller.WithCORS(opts.AllowedOrigin, handler)
	handler = controller.WithLogger(handler)

	return &http.Server{
		Addr:              opts.Addr,
		Handler:           handler,
		ReadTimeout:       opts.ReadTimeout,
		ReadHeaderTimeout: opts.ReadHeaderTimeout,
		WriteTimeout:      opts.WriteTimeout,
		IdleTimeout:       opts.IdleTimeout,
		MaxHeaderBytes:    opts.MaxHeaderBytes,
	}, nil
}
