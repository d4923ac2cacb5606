package scanner

import (
	"context"

	"wifiscan/internal/allocator"
	"wifiscan/internal/executor"
	"wifiscan/internal/hotlist"
	"wifiscan/pkg/domain"
)

// Status is a snapshot of the background lifecycle.
type Status struct {
	// State is one of "stopped", "running" or "paused".
	State string
	// Busy reports whether a radio scan is in flight.
	Busy bool
	// Buckets is the number of buckets of the installed schedule, zero when none.
	Buckets int
}

// BackgroundRequest is a scan request together with the listener that
// receives the results demultiplexed for it.
type BackgroundRequest struct {
	Request  domain.ScanRequest
	Listener RequestListener
}

//go:generate mockgen -package mockscanner -source=interface.go -destination=mock/mockscanner.go *
type Scanner interface {
	InstallSchedule(ctx context.Context, requests []BackgroundRequest) (*allocator.Schedule, error)
	Schedule(ctx context.Context) (*allocator.Schedule, error)
	StartBackground(ctx context.Context) error
	StopBackground(ctx context.Context)
	PauseBackground(ctx context.Context) []domain.ScanData
	RestartBackground(ctx context.Context) error
	StartSingleShot(ctx context.Context, settings executor.SingleShotSettings, listener executor.SingleShotListener) error
	LatestSingleShotResult(ctx context.Context) (domain.ScanData, error)
	BufferedBackgroundResults(ctx context.Context, flush bool) []domain.ScanData
	SetHotlist(ctx context.Context, settings domain.HotlistSettings, listener executor.HotlistListener) error
	ClearHotlist(ctx context.Context)
	HotlistResults(ctx context.Context) (found []domain.ScanResult, lost []domain.ScanResult)
	Status(ctx context.Context) Status
}

// RequestListener receives the results of one background request. It is
// called with the executor lock held and must not call back into the Scanner.
type RequestListener interface {
	OnFullResult(id domain.RequestID, result domain.ScanResult)
	OnResults(id domain.RequestID, results []domain.ScanData)
}

// Executor is the scan-cycle state machine the Scanner drives.
type Executor interface {
	StartBackground(ctx context.Context, s *allocator.Schedule, listener executor.BackgroundListener) error
	StopBackground(ctx context.Context)
	PauseBackground(ctx context.Context) []domain.ScanData
	RestartBackground(ctx context.Context)
	StartSingleShot(ctx context.Context, settings executor.SingleShotSettings, listener executor.SingleShotListener) error
	LatestSingleShotResult() (domain.ScanData, bool)
	BufferedResults(flush bool) []domain.ScanData
	SetHotlist(ctx context.Context, settings domain.HotlistSettings, listener executor.HotlistListener)
	ClearHotlist(ctx context.Context)
	HotlistResults(event hotlist.Event) []domain.ScanResult
	Busy() bool
}
