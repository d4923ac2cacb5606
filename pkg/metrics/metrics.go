// Package metrics exposes the Prometheus instruments of the scan pipeline.
// Every method is safe to call on a nil *Collector.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// DefaultBuckets provides a common set of histogram buckets in seconds that can
// be reused across the application for latency metrics.
var DefaultBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10} //nolint: gochecknoglobals

const namespace = "wifiscan"

// Collector groups the scan pipeline instruments.
type Collector struct {
	cyclesIssued    *prometheus.CounterVec
	issueFailures   prometheus.Counter
	asyncFailures   prometheus.Counter
	staleResults    prometheus.Counter
	bufferEvictions prometheus.Counter
	hotlistEvents   *prometheus.CounterVec
	activeBuckets   prometheus.Gauge
	basePeriod      prometheus.Gauge
	cycleDuration   prometheus.Histogram
}

// NewCollector creates the instruments and registers them with reg when it is not nil.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		cyclesIssued: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "scan_cycles_issued_total",
			Help:      "Radio scans issued, by kind of scanning folded into the cycle.",
		}, []string{"kind"}),
		issueFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "scan_issue_failures_total",
			Help:      "Radio scans that could not be issued.",
		}),
		asyncFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "scan_async_failures_total",
			Help:      "Scan failures reported asynchronously by the radio.",
		}),
		staleResults: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "stale_results_dropped_total",
			Help:      "Results dropped because they predate the scan cycle.",
		}),
		bufferEvictions: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "buffer_evictions_total",
			Help:      "Buffered background scans evicted by newer ones.",
		}),
		hotlistEvents: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "hotlist_events_total",
			Help:      "Hotlist networks reported, by event.",
		}, []string{"event"}),
		activeBuckets: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "schedule_active_buckets",
			Help:      "Buckets in the installed schedule.",
		}),
		basePeriod: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "schedule_base_period_seconds",
			Help:      "Base period of the installed schedule.",
		}),
		cycleDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "scan_cycle_duration_seconds",
			Help:      "Time from issuing a scan until its results are processed.",
			Buckets:   DefaultBuckets,
		}),
	}

	if reg != nil {
		reg.MustRegister(
			c.cyclesIssued,
			c.issueFailures,
			c.asyncFailures,
			c.staleResults,
			c.bufferEvictions,
			c.hotlistEvents,
			c.activeBuckets,
			c.basePeriod,
			c.cycleDuration,
		)
	}

	return c
}

// CycleIssued counts an issued scan. kind is background, single or both.
func (c *Collector) CycleIssued(kind string) {
	if c == nil {
		return
	}
	c.cyclesIssued.WithLabelValues(kind).Inc()
}

// IssueFailed counts a scan the radio refused to start.
func (c *Collector) IssueFailed() {
	if c == nil {
		return
	}
	c.issueFailures.Inc()
}

// AsyncFailed counts a scan the radio reported as failed after it started.
func (c *Collector) AsyncFailed() {
	if c == nil {
		return
	}
	c.asyncFailures.Inc()
}

// StaleDropped counts results older than the scan that returned them.
func (c *Collector) StaleDropped(n int) {
	if c == nil || n == 0 {
		return
	}
	c.staleResults.Add(float64(n))
}

// BufferEvicted counts a generation evicted from a full buffer.
func (c *Collector) BufferEvicted() {
	if c == nil {
		return
	}
	c.bufferEvictions.Inc()
}

// HotlistReported counts n networks reported with the given event label.
func (c *Collector) HotlistReported(event string, n int) {
	if c == nil || n == 0 {
		return
	}
	c.hotlistEvents.WithLabelValues(event).Add(float64(n))
}

// ScheduleInstalled records the shape of the active schedule.
func (c *Collector) ScheduleInstalled(buckets int, base time.Duration) {
	if c == nil {
		return
	}
	c.activeBuckets.Set(float64(buckets))
	c.basePeriod.Set(base.Seconds())
}

// CycleCompleted observes the time from issue to results of a scan.
func (c *Collector) CycleCompleted(d time.Duration) {
	if c == nil {
		return
	}
	c.cycleDuration.Observe(d.Seconds())
}
