// Package radio defines the polling radio interface the executor drives: a
// scan is issued synchronously, completion or failure is signalled
// asynchronously through Events, and results are fetched by polling.
package radio

import (
	"context"

	"wifiscan/pkg/domain"
)

// Capabilities are the hardware ceilings reported by the radio.
type Capabilities struct {
	// MaxBuckets is the maximum number of concurrently active scan buckets.
	MaxBuckets int
	// MaxChannelsPerBucket is the maximum explicit channel list size per bucket.
	MaxChannelsPerBucket int
	// MaxApPerScan is the maximum number of results kept per scan.
	MaxApPerScan int
	// MaxScanCacheSize is the maximum number of cached scan generations.
	MaxScanCacheSize int
}

// EventType identifies an asynchronous radio signal.
type EventType int

const (
	// EventResultsReady signals that the issued scan completed.
	EventResultsReady EventType = iota + 1
	// EventScanFailed signals that the issued scan failed.
	EventScanFailed
)

func (t EventType) String() string {
	switch t {
	case EventResultsReady:
		return "results-ready"
	case EventScanFailed:
		return "scan-failed"
	default:
		return "unknown"
	}
}

// Event is an asynchronous radio signal.
type Event struct {
	Type EventType
}

// Radio is the polling radio driven by the executor.
//
//go:generate mockgen -package mockradio -source=interface.go -destination=mock/mockradio.go *
type Radio interface {
	// Scan issues a single scan over freqs. A returned error means the scan
	// was not started and no event will follow.
	Scan(ctx context.Context, freqs []int) error
	// ScanResults returns every result the radio currently holds, including
	// stale results from earlier scans.
	ScanResults(ctx context.Context) ([]domain.ScanResult, error)
	// Capabilities returns the hardware ceilings.
	Capabilities() Capabilities
	// Events returns the channel of asynchronous completion signals.
	Events() <-chan Event
}
