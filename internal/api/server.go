// Package api configures and exposes the HTTP status server, its routes,
// metrics, profiling endpoints and related middleware.
package api

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap/exp/zapslog"

	"wifiscan/internal/api/handler/v1handler"
	"wifiscan/internal/config"
	"wifiscan/pkg/controller"
	"wifiscan/pkg/logger"
)

// Options holds configuration for the HTTP server.
// It is typically created from a config.Config via NewOptions.
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
	// RequestTimeout is the global timeout applied via http.TimeoutHandler for handling requests.
	RequestTimeout time.Duration
	// MaxHeaderBytes controls the maximum number of bytes the server
	// will read parsing the request header's keys and values, including the request line.
	MaxHeaderBytes int
	// MetricsPath is the HTTP path at which Prometheus metrics are served.
	MetricsPath string
	// AllowedOrigins lists the CORS origins allowed to call the API.
	AllowedOrigins []string
	// EnablePprof mounts the profiling endpoints.
	EnablePprof bool
}

// NewOptions constructs an Options value from the provided application configuration.
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
		AllowedOrigins:    cfg.HTTP.AllowedOrigins,
		EnablePprof:       cfg.HTTP.EnablePprof,
	}
}

type Deps struct {
	v1handler.Deps

	// Registerer receives the HTTP instruments.
	Registerer prometheus.Registerer
	// Gatherer is served at MetricsPath.
	Gatherer prometheus.Gatherer
}

// NewHandler builds the routed and instrumented handler of the status API.
// It sets up:
// - Prometheus metrics endpoint (MetricsPath)
// - v1 status routes
// - pprof endpoints for profiling
// It also wraps the router with CORS, metrics and logging middlewares.
func NewHandler(ctx context.Context, deps Deps, opts Options) (http.Handler, error) {
	router := mux.NewRouter()

	// prometheus metrics server
	router.Handle(opts.MetricsPath, promhttp.InstrumentMetricHandler(deps.Registerer,
		promhttp.HandlerFor(deps.Gatherer, promhttp.HandlerOpts{
			ErrorLog: slog.NewLogLogger(zapslog.NewHandler(logger.Get(ctx).Core()), slog.LevelError),
		}))).Methods(http.MethodGet)

	// v1 api
	v1handler.New(deps.Deps).Register(router.PathPrefix("/v1").Subrouter())

	// pprof
	if opts.EnablePprof {
		router.PathPrefix(controller.PprofPrefix).Handler(controller.PprofMux())
	}

	metricsMW, err := controller.WithMetrics(deps.Registerer)
	if err != nil {
		return nil, fmt.Errorf("could not register http metrics: %w", err)
	}

	router.Use(controller.WithLogger, metricsMW)

	// cors answers preflight requests before routing
	return controller.WithCORS(opts.AllowedOrigins)(router), nil
}

// NewServer wires up and returns a configured *http.Server using the provided Options.
func NewServer(ctx context.Context, deps Deps, opts Options) (*http.Server, error) {
	handler, err := NewHandler(ctx, deps, opts)
	if err != nil {
		return nil, err
	}

	return &http.Server{
		Addr:              opts.Addr,
		Handler:           http.TimeoutHandler(handler, opts.RequestTimeout, `{"code":"TIMEOUT","message":"request timed out"}`),
		ReadTimeout:       opts.ReadTimeout,
		ReadHeaderTimeout: opts.ReadHeaderTimeout,
		WriteTimeout:      opts.WriteTimeout,
		IdleTimeout:       opts.IdleTimeout,
		MaxHeaderBytes:    opts.MaxHeaderBytes,
		ErrorLog:          slog.NewLogLogger(zapslog.NewHandler(logger.Get(ctx).Core()), slog.LevelError),
	}, nil
}
