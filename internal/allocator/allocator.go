// Package allocator packs an arbitrary set of periodic scan requests onto the
// limited number of scan buckets a radio can run concurrently.
package allocator

import (
	"context"
	"sort"
	"time"

	"go.uber.org/zap"

	"wifiscan/internal/config"
	"wifiscan/pkg/channels"
	"wifiscan/pkg/domain"
	"wifiscan/pkg/logger"
	"wifiscan/pkg/radio"
	"wifiscan/pkg/serrors"
)

const (
	// MinPeriod is the scheduling granularity. Every predefined period is a
	// power-of-two multiple of it.
	MinPeriod = 10 * time.Second
	// DefaultPeriod is the base period of an empty schedule.
	DefaultPeriod = 30 * time.Second
	// DefaultReportThresholdPercent reports once the buffer is full.
	DefaultReportThresholdPercent = 100
)

// Options holds the hardware ceilings the allocator packs against.
type Options struct {
	MaxBuckets             int
	MaxChannelsPerBucket   int
	MaxApPerScan           int
	MaxScanCacheSize       int
	ReportThresholdPercent int
}

// NewOptions merges the radio capabilities with the scheduler configuration.
func NewOptions(caps radio.Capabilities, cfg *config.Config) Options {
	percent := cfg.Scheduler.ReportThresholdPercent
	if percent <= 0 || percent > 100 {
		percent = DefaultReportThresholdPercent
	}

	return Options{
		MaxBuckets:             caps.MaxBuckets,
		MaxChannelsPerBucket:   caps.MaxChannelsPerBucket,
		MaxApPerScan:           caps.MaxApPerScan,
		MaxScanCacheSize:       caps.MaxScanCacheSize,
		ReportThresholdPercent: percent,
	}
}

func (o Options) validate() error {
	if o.MaxBuckets <= 0 {
		return serrors.With(serrors.ErrInvalidArgument, "max buckets must be positive, got %d", o.MaxBuckets)
	}
	if o.MaxChannelsPerBucket <= 0 {
		return serrors.With(serrors.ErrInvalidArgument, "max channels per bucket must be positive, got %d",
			o.MaxChannelsPerBucket)
	}
	if o.MaxApPerScan <= 0 {
		return serrors.With(serrors.ErrInvalidArgument, "max aps per scan must be positive, got %d", o.MaxApPerScan)
	}
	if o.MaxScanCacheSize <= 0 {
		return serrors.With(serrors.ErrInvalidArgument, "max scan cache size must be positive, got %d",
			o.MaxScanCacheSize)
	}

	return nil
}

// ValidateRequest rejects requests the allocator cannot place.
func ValidateRequest(r domain.ScanRequest) error {
	if r.Period <= 0 {
		return serrors.With(serrors.ErrInvalidArgument, "request %s: period must be positive", r.ID)
	}
	if r.MaxPeriod != 0 && r.MaxPeriod < r.Period {
		return serrors.With(serrors.ErrInvalidArgument, "request %s: max period %s is below period %s",
			r.ID, r.MaxPeriod, r.Period)
	}
	if r.IsBackoff() && r.StepCount <= 0 {
		return serrors.With(serrors.ErrInvalidArgument, "request %s: back-off requires a positive step count", r.ID)
	}
	if r.Channels.IsEmpty() {
		return serrors.With(serrors.ErrInvalidArgument, "request %s: no band or channels given", r.ID)
	}
	if r.MaxBSSIDs < 0 || r.MaxScansToCache < 0 {
		return serrors.With(serrors.ErrInvalidArgument, "request %s: negative limits", r.ID)
	}

	return nil
}

// Build computes the Schedule for the complete set of active requests. The
// result only depends on the requests (including their order) and opts.
func Build(ctx context.Context, requests []domain.ScanRequest, opts Options) (*Schedule, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}

	seen := make(map[domain.RequestID]struct{}, len(requests))
	var slots slotTable
	for _, r := range requests {
		if err := ValidateRequest(r); err != nil {
			return nil, err
		}
		if _, ok := seen[r.ID]; ok {
			return nil, serrors.With(serrors.ErrInvalidArgument, "duplicate request %s", r.ID)
		}
		seen[r.ID] = struct{}{}
		slots.add(r)
	}

	slots.compact(opts.MaxBuckets)
	if n := slots.activeTotal(); n > opts.MaxBuckets {
		// one regular bucket is always kept, so only a back-off request with
		// a single bucket available gets here
		return nil, serrors.With(serrors.ErrInvalidArgument,
			"%d buckets needed for the back-off request exceed the limit of %d", n, opts.MaxBuckets)
	}

	return assemble(ctx, &slots, requests, opts), nil
}

type slotBucket struct {
	slot   int
	bucket Bucket
}

func assemble(ctx context.Context, slots *slotTable, requests []domain.ScanRequest, opts Options) *Schedule {
	built := make([]slotBucket, 0, len(slots))
	for i := range slots {
		if !slots.active(i) {
			continue
		}
		built = append(built, slotBucket{slot: i, bucket: bucketFor(i, slots[i], opts)})
	}
	sort.SliceStable(built, func(a, b int) bool {
		return built[a].bucket.Period < built[b].bucket.Period
	})

	s := &Schedule{
		Buckets:                 make([]Bucket, 0, len(built)),
		BasePeriod:              basePeriod(ctx, built),
		MaxApPerScan:            maxApPerScan(requests, opts.MaxApPerScan),
		ReportThresholdNumScans: batchThreshold(requests, opts.MaxScanCacheSize),
		ReportThresholdPercent:  opts.ReportThresholdPercent,
		assignments:             make(map[domain.RequestID]int, len(requests)),
	}
	for idx, sb := range built {
		s.Buckets = append(s.Buckets, sb.bucket)
		for _, id := range sb.bucket.Requests {
			s.assignments[id] = idx
		}
	}

	return s
}

func bucketFor(slot int, requests []domain.ScanRequest, opts Options) Bucket {
	b := Bucket{
		Period:       predefinedPeriods[slot],
		ReportEvents: domain.ReportNoBatch,
		Requests:     make([]domain.RequestID, 0, len(requests)),
	}

	collection := channels.New()
	for i, r := range requests {
		if !r.ReportEvents.Has(domain.ReportNoBatch) {
			b.ReportEvents &^= domain.ReportNoBatch
		}
		b.ReportEvents |= r.ReportEvents & (domain.ReportAfterEachScan | domain.ReportFullResult)

		// first back-off request wins
		if slot == backoffSlot && i == 0 {
			b.Period = predefinedPeriods[bestRegularSlot(r.Period, numRegularBuckets)]
			b.MaxPeriod = r.MaxPeriod
			b.StepCount = r.StepCount
		}

		collection.AddSpec(r.Channels)
		b.Requests = append(b.Requests, r.ID)
	}
	b.Channels = collection.BucketChannels(opts.MaxChannelsPerBucket)

	return b
}

func gcd(a, b time.Duration) time.Duration {
	for b != 0 {
		a, b = b, a%b
	}

	return a
}

func basePeriod(ctx context.Context, built []slotBucket) time.Duration {
	if len(built) == 0 {
		return DefaultPeriod
	}

	var base time.Duration
	for _, sb := range built {
		base = gcd(base, sb.bucket.Period)
	}
	if base < MinPeriod {
		logger.Error(ctx, "base period below scheduling granularity",
			zap.Duration("basePeriod", base), zap.Duration("minPeriod", MinPeriod))

		return MinPeriod
	}

	return base
}

func maxApPerScan(requests []domain.ScanRequest, ceiling int) int {
	n := 0
	for _, r := range requests {
		n = max(n, r.MaxBSSIDs)
	}
	if n == 0 || n > ceiling {
		return ceiling
	}

	return n
}

func batchThreshold(requests []domain.ScanRequest, ceiling int) int {
	n := ceiling
	for _, r := range requests {
		if r.MaxScansToCache != 0 && r.MaxScansToCache < n {
			n = r.MaxScansToCache
		}
	}

	return n
}
