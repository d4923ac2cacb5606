package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"wifiscan/internal/api"
	"wifiscan/internal/api/handler/v1handler"
	"wifiscan/internal/config"
	"wifiscan/internal/executor"
	"wifiscan/internal/scanner"
	"wifiscan/internal/worker"
	"wifiscan/pkg/domain"
	"wifiscan/pkg/logger"
	"wifiscan/pkg/metrics"
	"wifiscan/pkg/radio/simulated"
)

func setupServer(
	ctx context.Context,
	cfg *config.Config,
	scn scanner.Scanner,
	pump *worker.EventPump,
) func(ctx context.Context) {
	server, err := api.NewServer(ctx, api.Deps{
		Deps:       v1handler.Deps{Scanner: scn, Events: pump},
		Registerer: prometheus.DefaultRegisterer,
		Gatherer:   prometheus.DefaultGatherer,
	}, api.NewOptions(cfg))
	if err != nil {
		logger.Fatal(ctx, "could not create webserver", zap.Error(err))
	}

	go func() {
		logger.Info(ctx, "starting webserver...", zap.String("addr", cfg.HTTP.Addr))
		if err := server.ListenAndServe(); err != nil {
			if !errors.Is(err, http.ErrServerClosed) {
				logger.Error(ctx, "could not start webserver", zap.Error(err))
			}
		}
	}()

	return func(ctx context.Context) {
		logger.Info(ctx, "stopping webserver...")
		if err := server.Shutdown(ctx); err != nil {
			logger.Error(ctx, "could not stop webserver", zap.Error(err))
		}
	}
}

// requestLogger reports the results demultiplexed for one configured request.
type requestLogger struct {
	ctx context.Context //nolint: containedctx
}

func (l requestLogger) OnFullResult(id domain.RequestID, result domain.ScanResult) {
	logger.Debug(l.ctx, "full scan result",
		zap.Stringer("request_id", id),
		zap.String("bssid", result.BSSID),
		zap.Int("level", result.Level))
}

func (l requestLogger) OnResults(id domain.RequestID, results []domain.ScanData) {
	logger.Info(l.ctx, "scan results reported",
		zap.Stringer("request_id", id), zap.Int("scans", len(results)))
}

type hotlistLogger struct {
	ctx context.Context //nolint: containedctx
}

func bssids(results []domain.ScanResult) []string {
	out := make([]string, 0, len(results))
	for _, r := range results {
		out = append(out, r.BSSID)
	}

	return out
}

func (l hotlistLogger) OnFound(results []domain.ScanResult) {
	logger.Info(l.ctx, "hotlist networks found", zap.Strings("bssids", bssids(results)))
}

func (l hotlistLogger) OnLost(results []domain.ScanResult) {
	logger.Info(l.ctx, "hotlist networks lost", zap.Strings("bssids", bssids(results)))
}

// installRequests loads the requests file, installs its schedule and hotlist
// and starts background scanning.
func installRequests(ctx context.Context, cfg *config.Config, scn scanner.Scanner) {
	file, err := config.LoadRequests(cfg.RequestsFile)
	if errors.Is(err, os.ErrNotExist) {
		logger.Warn(ctx, "requests file not found, background scanning is idle",
			zap.String("path", cfg.RequestsFile))

		return
	}
	if err != nil {
		logger.Fatal(ctx, "could not load requests", zap.Error(err))
	}

	requests, err := file.ScanRequests()
	if err != nil {
		logger.Fatal(ctx, "invalid requests file", zap.Error(err))
	}

	background := make([]scanner.BackgroundRequest, 0, len(requests))
	for i, r := range requests {
		reqCtx := logger.WithFields(ctx, zap.String("request", file.Requests[i].Name))
		background = append(background, scanner.BackgroundRequest{Request: r, Listener: requestLogger{ctx: reqCtx}})
	}

	if len(background) > 0 {
		schedule, err := scn.InstallSchedule(ctx, background)
		if err != nil {
			logger.Fatal(ctx, "could not install schedule", zap.Error(err))
		}
		logger.Info(ctx, "schedule installed",
			zap.Int("buckets", len(schedule.Buckets)),
			zap.Duration("base_period", schedule.BasePeriod))

		if err = scn.StartBackground(ctx); err != nil {
			logger.Fatal(ctx, "could not start background scanning", zap.Error(err))
		}
	}

	if settings, ok := file.HotlistSettings(); ok {
		if err = scn.SetHotlist(ctx, settings, hotlistLogger{ctx: logger.Named(ctx, "hotlist")}); err != nil {
			logger.Fatal(ctx, "could not set hotlist", zap.Error(err))
		}
	}
}

func serveCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Runs the scan scheduler against the simulated radio and starts the status API",
		Run: func(cmd *cobra.Command, args []string) {
			ctx, _ := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

			r := simulated.New(simulated.NewOptions(cfg))
			defer r.Close()

			exec := executor.New(ctx, executor.NewOptions(cfg), r,
				executor.SystemClock(), executor.NewTimerAlarm(),
				metrics.NewCollector(prometheus.DefaultRegisterer))

			pump, err := worker.Start(ctx, r, exec)
			if err != nil {
				logger.Fatal(ctx, "could not start radio event pump", zap.Error(err))
			}

			mp, err := metrics.NewMeterProvider(prometheus.DefaultRegisterer)
			if err != nil {
				logger.Fatal(ctx, "could not create meter provider", zap.Error(err))
			}

			scn, err := scanner.New(exec, scanner.NewOptions(r.Capabilities(), cfg), mp)
			if err != nil {
				logger.Fatal(ctx, "could not create scanner", zap.Error(err))
			}

			installRequests(ctx, cfg, scn)
			stopWebserver := setupServer(ctx, cfg, scn, pump)

			// wait for interrupt
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GracefulShutdownTimeout)
			defer cancel()

			stopWebserver(shutdownCtx)
			scn.StopBackground(shutdownCtx)
			scn.ClearHotlist(shutdownCtx)
			if err = pump.Stop(shutdownCtx); err != nil {
				logger.Warn(shutdownCtx, "could not stop event pump", zap.Error(err))
			}
			logger.Info(shutdownCtx, "radio event pump stopped", zap.Uint64("processed", pump.Processed()))
			if err = mp.Shutdown(shutdownCtx); err != nil {
				logger.Warn(shutdownCtx, "could not shutdown meter provider", zap.Error(err))
			}
		},
	}

	return cmd
}
