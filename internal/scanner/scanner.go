package scanner

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"

	"wifiscan/internal/allocator"
	"wifiscan/internal/config"
	"wifiscan/internal/executor"
	"wifiscan/internal/hotlist"
	"wifiscan/pkg/domain"
	"wifiscan/pkg/logger"
	"wifiscan/pkg/radio"
	"wifiscan/pkg/serrors"
)

const meterName = "wifiscan/internal/scanner"

// Options configure how schedules are packed.
type Options struct {
	Allocator allocator.Options
}

// NewOptions constructs an Options value from the radio capabilities and the application config.
func NewOptions(caps radio.Capabilities, cfg *config.Config) Options {
	return Options{Allocator: allocator.NewOptions(caps, cfg)}
}

type state int

const (
	stateStopped state = iota
	stateRunning
	statePaused
)

func (st state) String() string {
	switch st {
	case stateRunning:
		return "running"
	case statePaused:
		return "paused"
	default:
		return "stopped"
	}
}

// scanner is the concrete implementation of the Scanner interface.
// It owns the installed schedule and drives the executor with it.
type scanner struct {
	options Options
	exec    Executor

	// installed is read lock-free by status queries.
	installed atomic.Pointer[installation]

	// mu serializes the background lifecycle.
	mu          sync.Mutex
	state       state
	pausedInst  *installation
	operations  metric.Int64Counter
	delivered   metric.Int64Counter
	singleShots metric.Int64Counter
}

// New returns a Scanner driving exec. Instruments are created from mp.
func New(exec Executor, options Options, mp metric.MeterProvider) (Scanner, error) {
	meter := mp.Meter(meterName)

	operations, err := meter.Int64Counter("wifiscan.scanner.operations",
		metric.WithDescription("Scanner operations by name and outcome."))
	if err != nil {
		return nil, fmt.Errorf("could not create operations counter: %w", err)
	}
	delivered, err := meter.Int64Counter("wifiscan.scanner.delivered",
		metric.WithDescription("Scan generations delivered to background requests."))
	if err != nil {
		return nil, fmt.Errorf("could not create delivered counter: %w", err)
	}
	singleShots, err := meter.Int64Counter("wifiscan.scanner.single_shots",
		metric.WithDescription("Single-shot scans accepted."))
	if err != nil {
		return nil, fmt.Errorf("could not create single-shot counter: %w", err)
	}

	return &scanner{
		options:     options,
		exec:        exec,
		operations:  operations,
		delivered:   delivered,
		singleShots: singleShots,
	}, nil
}

func (s *scanner) record(ctx context.Context, op string, err error) {
	s.operations.Add(ctx, 1, metric.WithAttributes(
		attribute.String("operation", op),
		attribute.Bool("ok", err == nil),
	))
}

func (s *scanner) listenerFor(ctx context.Context, inst *installation) *demux {
	return &demux{ctx: ctx, inst: inst, delivered: s.delivered}
}

// InstallSchedule packs the requests into a new schedule and swaps it in.
// A running background scan switches to the new schedule immediately.
func (s *scanner) InstallSchedule(ctx context.Context, requests []BackgroundRequest) (*allocator.Schedule, error) {
	reqs := make([]domain.ScanRequest, 0, len(requests))
	for _, r := range requests {
		reqs = append(reqs, r.Request)
	}

	sched, err := allocator.Build(ctx, reqs, s.options.Allocator)
	if err != nil {
		s.record(ctx, "install", err)

		return nil, fmt.Errorf("could not build schedule: %w", err)
	}
	inst := newInstallation(sched, requests)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.installed.Store(inst)
	if s.state == stateRunning {
		if err := s.exec.StartBackground(ctx, sched, s.listenerFor(ctx, inst)); err != nil {
			s.record(ctx, "install", err)

			return nil, fmt.Errorf("could not start schedule: %w", err)
		}
	}
	s.record(ctx, "install", nil)
	logger.Info(ctx, "schedule installed",
		zap.Int("requests", len(requests)),
		zap.Int("buckets", len(sched.Buckets)),
		zap.Duration("basePeriod", sched.BasePeriod))

	return sched, nil
}

// Schedule returns the installed schedule.
func (s *scanner) Schedule(_ context.Context) (*allocator.Schedule, error) {
	inst := s.installed.Load()
	if inst == nil {
		return nil, serrors.With(serrors.ErrNotFound, "no schedule installed")
	}

	return inst.schedule, nil
}

// StartBackground starts scanning with the installed schedule.
func (s *scanner) StartBackground(ctx context.Context) error {
	inst := s.installed.Load()
	if inst == nil {
		err := serrors.With(serrors.ErrNotFound, "no schedule installed")
		s.record(ctx, "start", err)

		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.exec.StartBackground(ctx, inst.schedule, s.listenerFor(ctx, inst)); err != nil {
		s.record(ctx, "start", err)

		return fmt.Errorf("could not start background scan: %w", err)
	}
	s.state = stateRunning
	s.pausedInst = nil
	s.record(ctx, "start", nil)

	return nil
}

// StopBackground stops scanning and drops the executor's schedule. The
// installed schedule is kept for a later StartBackground.
func (s *scanner) StopBackground(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.exec.StopBackground(ctx)
	s.state = stateStopped
	s.pausedInst = nil
	s.record(ctx, "stop", nil)
}

// PauseBackground pauses scanning and returns the results buffered so far.
func (s *scanner) PauseBackground(ctx context.Context) []domain.ScanData {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != stateRunning {
		return nil
	}
	results := s.exec.PauseBackground(ctx)
	s.state = statePaused
	s.pausedInst = s.installed.Load()
	s.record(ctx, "pause", nil)

	return results
}

// RestartBackground resumes a paused scan. A schedule installed while paused
// takes over on restart.
func (s *scanner) RestartBackground(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != statePaused {
		err := serrors.With(serrors.ErrInvalidArgument, "background scanning is not paused")
		s.record(ctx, "restart", err)

		return err
	}

	inst := s.installed.Load()
	if inst != s.pausedInst {
		if err := s.exec.StartBackground(ctx, inst.schedule, s.listenerFor(ctx, inst)); err != nil {
			s.record(ctx, "restart", err)

			return fmt.Errorf("could not start background scan: %w", err)
		}
	} else {
		s.exec.RestartBackground(ctx)
	}
	s.state = stateRunning
	s.pausedInst = nil
	s.record(ctx, "restart", nil)

	return nil
}

// StartSingleShot queues a one-off scan. It fails with ErrBusy while another
// single-shot scan is queued or in flight.
func (s *scanner) StartSingleShot(
	ctx context.Context,
	settings executor.SingleShotSettings,
	listener executor.SingleShotListener,
) error {
	err := s.exec.StartSingleShot(ctx, settings, listener)
	s.record(ctx, "single_shot", err)
	if err != nil {
		return fmt.Errorf("could not start single-shot scan: %w", err)
	}
	s.singleShots.Add(ctx, 1, metric.WithAttributes(attribute.String("band", settings.Channels.Band.String())))

	return nil
}

// LatestSingleShotResult returns the last completed single-shot scan or
// ErrNotFound before the first one completes.
func (s *scanner) LatestSingleShotResult(_ context.Context) (domain.ScanData, error) {
	data, ok := s.exec.LatestSingleShotResult()
	if !ok {
		return domain.ScanData{}, serrors.With(serrors.ErrNotFound, "no single-shot scan completed yet")
	}

	return data, nil
}

// BufferedBackgroundResults returns the buffered background generations and
// empties the buffer when flush is set.
func (s *scanner) BufferedBackgroundResults(_ context.Context, flush bool) []domain.ScanData {
	return s.exec.BufferedResults(flush)
}

// SetHotlist validates and installs the tracked networks.
func (s *scanner) SetHotlist(
	ctx context.Context,
	settings domain.HotlistSettings,
	listener executor.HotlistListener,
) error {
	settings, err := normalizeHotlist(settings)
	if err != nil {
		s.record(ctx, "set_hotlist", err)

		return err
	}
	s.exec.SetHotlist(ctx, settings, listener)
	s.record(ctx, "set_hotlist", nil)

	return nil
}

// ClearHotlist stops hotlist tracking.
func (s *scanner) ClearHotlist(ctx context.Context) {
	s.exec.ClearHotlist(ctx)
	s.record(ctx, "clear_hotlist", nil)
}

// HotlistResults returns the found and lost sets that fired last.
func (s *scanner) HotlistResults(_ context.Context) ([]domain.ScanResult, []domain.ScanResult) {
	return s.exec.HotlistResults(hotlist.EventFound), s.exec.HotlistResults(hotlist.EventLost)
}

// Status reports the background lifecycle state and whether a scan is in flight.
func (s *scanner) Status(_ context.Context) Status {
	s.mu.Lock()
	st := s.state
	s.mu.Unlock()

	status := Status{State: st.String(), Busy: s.exec.Busy()}
	if inst := s.installed.Load(); inst != nil {
		status.Buckets = len(inst.schedule.Buckets)
	}

	return status
}
