// Package simulated implements radio.Radio over a set of virtual access
// points. Scans complete asynchronously after a fixed duration.
package simulated

import (
	"context"
	"fmt"
	"math/rand"
	"slices"
	"sync"
	"time"

	"wifiscan/internal/config"
	"wifiscan/pkg/channels"
	"wifiscan/pkg/domain"
	"wifiscan/pkg/radio"
	"wifiscan/pkg/serrors"
)

const eventBufferSize = 8

// AccessPoint is a virtual access point.
type AccessPoint struct {
	BSSID     string
	SSID      string
	Frequency int
	Level     int
}

// Options configure the simulated radio.
type Options struct {
	Capabilities radio.Capabilities
	AccessPoints []AccessPoint
	ScanDuration time.Duration
	// FailureRate is the probability that a scan fails asynchronously.
	FailureRate float64
	// DropoutRate is the probability that an access point is not seen by a scan.
	DropoutRate float64
	// Jitter is the maximum absolute noise added to signal levels.
	Jitter int
	Seed   int64
}

// NewOptions builds the options from config, generating the configured
// number of access points from the seed.
func NewOptions(cfg *config.Config) Options {
	return Options{
		Capabilities: radio.Capabilities{
			MaxBuckets:           cfg.Radio.MaxBuckets,
			MaxChannelsPerBucket: cfg.Radio.MaxChannelsPerBucket,
			MaxApPerScan:         cfg.Radio.MaxApPerScan,
			MaxScanCacheSize:     cfg.Radio.MaxScanCacheSize,
		},
		AccessPoints: GenerateAccessPoints(cfg.Simulation.AccessPoints, cfg.Simulation.Seed),
		ScanDuration: cfg.Simulation.ScanDuration,
		FailureRate:  cfg.Simulation.FailureRate,
		DropoutRate:  cfg.Simulation.DropoutRate,
		Jitter:       cfg.Simulation.Jitter,
		Seed:         cfg.Simulation.Seed,
	}
}

// GenerateAccessPoints returns n access points spread over every band.
func GenerateAccessPoints(n int, seed int64) []AccessPoint {
	rng := rand.New(rand.NewSource(seed)) //nolint: gosec
	freqs := channels.BandFrequencies(domain.BandBothWithDFS)

	aps := make([]AccessPoint, 0, n)
	for i := range n {
		aps = append(aps, AccessPoint{
			BSSID:     fmt.Sprintf("02:00:00:%02x:%02x:%02x", (i>>16)&0xff, (i>>8)&0xff, i&0xff),
			SSID:      fmt.Sprintf("sim-%d", i),
			Frequency: freqs[rng.Intn(len(freqs))],
			Level:     -30 - rng.Intn(61),
		})
	}

	return aps
}

// Radio is the simulated radio.
type Radio struct {
	options Options
	events  chan radio.Event
	done    chan struct{}
	once    sync.Once

	mu       sync.Mutex
	rng      *rand.Rand
	scanning bool
	timer    *time.Timer
	results  []domain.ScanResult
}

var _ radio.Radio = (*Radio)(nil)

// New returns a simulated radio. Close stops pending scans.
func New(options Options) *Radio {
	return &Radio{
		options: options,
		events:  make(chan radio.Event, eventBufferSize),
		done:    make(chan struct{}),
		rng:     rand.New(rand.NewSource(options.Seed)), //nolint: gosec
	}
}

// Capabilities returns the configured hardware ceilings.
func (r *Radio) Capabilities() radio.Capabilities { return r.options.Capabilities }

// Events delivers scan completions and failures.
func (r *Radio) Events() <-chan radio.Event { return r.events }

// Scan starts scanning freqs. Only one scan may run at a time.
func (r *Radio) Scan(_ context.Context, freqs []int) error {
	if len(freqs) == 0 {
		return serrors.With(serrors.ErrInvalidArgument, "no frequencies to scan")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	select {
	case <-r.done:
		return serrors.With(serrors.ErrRadio, "radio is closed")
	default:
	}
	if r.scanning {
		return serrors.With(serrors.ErrRadio, "a scan is already running")
	}

	r.scanning = true
	freqs = slices.Clone(freqs)
	r.timer = time.AfterFunc(r.options.ScanDuration, func() { r.complete(freqs) })

	return nil
}

func (r *Radio) complete(freqs []int) {
	r.mu.Lock()
	r.scanning = false
	r.timer = nil
	ev := radio.Event{Type: radio.EventResultsReady}
	if r.rng.Float64() < r.options.FailureRate {
		ev.Type = radio.EventScanFailed
	} else {
		r.results = r.observe(freqs)
	}
	r.mu.Unlock()

	select {
	case r.events <- ev:
	case <-r.done:
	}
}

func (r *Radio) observe(freqs []int) []domain.ScanResult {
	now := time.Now()
	results := make([]domain.ScanResult, 0, len(r.options.AccessPoints))
	for _, ap := range r.options.AccessPoints {
		if !slices.Contains(freqs, ap.Frequency) {
			continue
		}
		if r.rng.Float64() < r.options.DropoutRate {
			continue
		}

		level := ap.Level
		if r.options.Jitter > 0 {
			level += r.rng.Intn(2*r.options.Jitter+1) - r.options.Jitter
		}
		results = append(results, domain.ScanResult{
			BSSID:     ap.BSSID,
			SSID:      ap.SSID,
			Frequency: ap.Frequency,
			Level:     level,
			Timestamp: now,
		})
	}

	return results
}

// ScanResults returns the results of the last completed scan.
func (r *Radio) ScanResults(_ context.Context) ([]domain.ScanResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return slices.Clone(r.results), nil
}

// Close cancels any running scan. It is safe to call more than once.
func (r *Radio) Close() {
	r.once.Do(func() {
		r.mu.Lock()
		defer r.mu.Unlock()

		close(r.done)
		if r.timer != nil {
			r.timer.Stop()
			r.timer = nil
		}
		r.scanning = false
	})
}
