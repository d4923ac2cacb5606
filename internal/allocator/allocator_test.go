package allocator_test

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"wifiscan/internal/allocator"
	"wifiscan/pkg/domain"
	"wifiscan/pkg/serrors"
)

// regular periods in preference order
var regularPeriods = []time.Duration{ //nolint: gochecknoglobals
	40 * time.Second, 20 * time.Second, 160 * time.Second, 320 * time.Second,
	10 * time.Second, 1280 * time.Second, 640 * time.Second, 2560 * time.Second,
}

func opts(maxBuckets int) allocator.Options {
	return allocator.Options{
		MaxBuckets:             maxBuckets,
		MaxChannelsPerBucket:   16,
		MaxApPerScan:           32,
		MaxScanCacheSize:       10,
		ReportThresholdPercent: 100,
	}
}

func request(period time.Duration, opts ...func(*domain.ScanRequest)) domain.ScanRequest {
	r := domain.ScanRequest{
		ID:       domain.NewRequestID(),
		Period:   period,
		Channels: domain.ChannelSpec{Band: domain.Band24GHz},
	}
	for _, o := range opts {
		o(&r)
	}

	return r
}

func withEvents(e domain.ReportEvents) func(*domain.ScanRequest) {
	return func(r *domain.ScanRequest) { r.ReportEvents = e }
}

func withBackoff(maxPeriod time.Duration, steps int) func(*domain.ScanRequest) {
	return func(r *domain.ScanRequest) {
		r.MaxPeriod = maxPeriod
		r.StepCount = steps
	}
}

func withFrequencies(freqs ...int) func(*domain.ScanRequest) {
	return func(r *domain.ScanRequest) { r.Channels = domain.ChannelSpec{Frequencies: freqs} }
}

func nearest(period time.Duration) time.Duration {
	best := regularPeriods[0]
	for _, p := range regularPeriods {
		if (p - period).Abs() < (best - period).Abs() {
			best = p
		}
	}

	return best
}

func periods(s *allocator.Schedule) []time.Duration {
	out := make([]time.Duration, 0, len(s.Buckets))
	for _, b := range s.Buckets {
		out = append(out, b.Period)
	}

	return out
}

func TestBuildFoldsIntoPreferredBuckets(t *testing.T) {
	r40 := request(40 * time.Second)
	r20 := request(20 * time.Second)
	r10 := request(10 * time.Second)

	s, err := allocator.Build(context.Background(), []domain.ScanRequest{r40, r20, r10}, opts(2))
	require.NoError(t, err)
	require.Equal(t, []time.Duration{20 * time.Second, 40 * time.Second}, periods(s))

	_, b, ok := s.BucketFor(r10.ID)
	require.True(t, ok)
	require.Equal(t, 20*time.Second, b.Period)
	require.Equal(t, []domain.RequestID{r20.ID, r10.ID}, b.Requests)

	_, b, ok = s.BucketFor(r40.ID)
	require.True(t, ok)
	require.Equal(t, 40*time.Second, b.Period)
	require.Equal(t, 20*time.Second, s.BasePeriod)
}

func TestBuildCascadingEviction(t *testing.T) {
	// 2560s is evicted to 1280s which is evicted to 640s and so on down to
	// the single most preferred bucket.
	reqs := []domain.ScanRequest{
		request(2560 * time.Second),
		request(1280 * time.Second),
		request(10 * time.Second),
	}

	s, err := allocator.Build(context.Background(), reqs, opts(1))
	require.NoError(t, err)
	require.Len(t, s.Buckets, 1)
	require.Len(t, s.Buckets[0].Requests, 3)
	require.Equal(t, 40*time.Second, s.Buckets[0].Period)
}

func TestBuildNearestPeriod(t *testing.T) {
	tests := []struct {
		name   string
		period time.Duration
		want   time.Duration
	}{
		{name: "exact", period: 160 * time.Second, want: 160 * time.Second},
		{name: "below minimum", period: time.Second, want: 10 * time.Second},
		{name: "tie goes to preferred", period: 30 * time.Second, want: 40 * time.Second},
		{name: "tie between 10s and 20s", period: 15 * time.Second, want: 20 * time.Second},
		{name: "between 40s and 160s", period: 90 * time.Second, want: 40 * time.Second},
		{name: "huge", period: time.Hour, want: 2560 * time.Second},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := request(tt.period)
			s, err := allocator.Build(context.Background(), []domain.ScanRequest{r}, opts(16))
			require.NoError(t, err)
			_, b, ok := s.BucketFor(r.ID)
			require.True(t, ok)
			require.Equal(t, tt.want, b.Period)
		})
	}
}

func TestBuildBackoffBucket(t *testing.T) {
	first := request(25*time.Second, withBackoff(5*time.Minute, 3))
	second := request(100*time.Second, withBackoff(10*time.Minute, 8))
	regular := request(20 * time.Second)

	s, err := allocator.Build(context.Background(), []domain.ScanRequest{first, regular, second}, opts(4))
	require.NoError(t, err)
	require.Equal(t, 1, s.NumBackoffBuckets())

	idx, b, ok := s.BucketFor(second.ID)
	require.True(t, ok)
	require.Equal(t, len(s.Buckets)-1, idx)
	require.True(t, b.IsBackoff())
	require.Equal(t, 20*time.Second, b.Period)
	require.Equal(t, 5*time.Minute, b.MaxPeriod)
	require.Equal(t, 3, b.StepCount)
	require.Equal(t, []domain.RequestID{first.ID, second.ID}, b.Requests)

	// the regular bucket of the same period sorts first
	require.False(t, s.Buckets[0].IsBackoff())
	require.Equal(t, 20*time.Second, s.Buckets[0].Period)
}

func TestBuildBackoffNeverEvicted(t *testing.T) {
	reqs := []domain.ScanRequest{
		request(10 * time.Second),
		request(40 * time.Second),
		request(160 * time.Second),
		request(30*time.Second, withBackoff(time.Hour, 2)),
	}

	s, err := allocator.Build(context.Background(), reqs, opts(2))
	require.NoError(t, err)
	require.Len(t, s.Buckets, 2)
	require.Equal(t, 1, s.NumBackoffBuckets())
	require.Equal(t, []domain.RequestID{reqs[3].ID}, s.Buckets[1].Requests)
	require.Len(t, s.Buckets[0].Requests, 3)
}

func TestBuildBackoffExceedsSingleBucket(t *testing.T) {
	reqs := []domain.ScanRequest{
		request(10 * time.Second),
		request(30*time.Second, withBackoff(time.Hour, 2)),
	}

	s, err := allocator.Build(context.Background(), reqs, opts(1))
	require.ErrorIs(t, err, serrors.ErrInvalidArgument)
	require.Nil(t, s)

	// either kind alone fits
	for _, r := range reqs {
		s, err = allocator.Build(context.Background(), []domain.ScanRequest{r}, opts(1))
		require.NoError(t, err)
		require.Len(t, s.Buckets, 1)
	}
}

func TestBuildMergesReportEvents(t *testing.T) {
	tests := []struct {
		name   string
		events []domain.ReportEvents
		want   domain.ReportEvents
	}{
		{
			name:   "no batch only when everyone opts out",
			events: []domain.ReportEvents{domain.ReportNoBatch, domain.ReportAfterBufferFull},
			want:   domain.ReportAfterBufferFull,
		},
		{
			name:   "all no batch",
			events: []domain.ReportEvents{domain.ReportNoBatch, domain.ReportNoBatch | domain.ReportFullResult},
			want:   domain.ReportNoBatch | domain.ReportFullResult,
		},
		{
			name:   "after each scan and full result are ored",
			events: []domain.ReportEvents{domain.ReportAfterEachScan, domain.ReportFullResult},
			want:   domain.ReportAfterEachScan | domain.ReportFullResult,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reqs := make([]domain.ScanRequest, 0, len(tt.events))
			for _, e := range tt.events {
				reqs = append(reqs, request(40*time.Second, withEvents(e)))
			}
			s, err := allocator.Build(context.Background(), reqs, opts(16))
			require.NoError(t, err)
			require.Len(t, s.Buckets, 1)
			require.Equal(t, tt.want, s.Buckets[0].ReportEvents)
		})
	}
}

func TestBuildChannelUnion(t *testing.T) {
	reqs := []domain.ScanRequest{
		request(40*time.Second, withFrequencies(2412, 2437)),
		request(40*time.Second, withFrequencies(2437, 5180)),
	}

	s, err := allocator.Build(context.Background(), reqs, opts(16))
	require.NoError(t, err)
	require.Equal(t, []int{2412, 2437, 5180}, s.Buckets[0].Channels.Frequencies)

	small := opts(16)
	small.MaxChannelsPerBucket = 2
	s, err = allocator.Build(context.Background(), reqs, small)
	require.NoError(t, err)
	require.Equal(t, domain.BandBoth, s.Buckets[0].Channels.Band)
}

func TestBuildGlobalParameters(t *testing.T) {
	s, err := allocator.Build(context.Background(), nil, opts(16))
	require.NoError(t, err)
	require.Empty(t, s.Buckets)
	require.Equal(t, allocator.DefaultPeriod, s.BasePeriod)
	require.Equal(t, 32, s.MaxApPerScan)
	require.Equal(t, 10, s.ReportThresholdNumScans)
	require.Equal(t, 100, s.ReportThresholdPercent)

	reqs := []domain.ScanRequest{
		request(40*time.Second, func(r *domain.ScanRequest) { r.MaxBSSIDs = 8; r.MaxScansToCache = 0 }),
		request(160*time.Second, func(r *domain.ScanRequest) { r.MaxBSSIDs = 12; r.MaxScansToCache = 6 }),
		request(320*time.Second, func(r *domain.ScanRequest) { r.MaxScansToCache = 4 }),
	}
	s, err = allocator.Build(context.Background(), reqs, opts(16))
	require.NoError(t, err)
	require.Equal(t, 12, s.MaxApPerScan)
	require.Equal(t, 4, s.ReportThresholdNumScans)
	require.Equal(t, 40*time.Second, s.BasePeriod)

	reqs[1].MaxBSSIDs = 100
	reqs[2].MaxScansToCache = 50
	reqs[1].MaxScansToCache = 0
	s, err = allocator.Build(context.Background(), reqs, opts(16))
	require.NoError(t, err)
	require.Equal(t, 32, s.MaxApPerScan)
	require.Equal(t, 10, s.ReportThresholdNumScans)
}

func TestBuildRejectsInvalidInput(t *testing.T) {
	dup := request(40 * time.Second)
	tests := []struct {
		name string
		reqs []domain.ScanRequest
		opts allocator.Options
	}{
		{name: "zero period", reqs: []domain.ScanRequest{request(0)}, opts: opts(4)},
		{
			name: "max period below period",
			reqs: []domain.ScanRequest{request(time.Minute, withBackoff(time.Second, 2))},
			opts: opts(4),
		},
		{
			name: "backoff without steps",
			reqs: []domain.ScanRequest{request(time.Minute, withBackoff(time.Hour, 0))},
			opts: opts(4),
		},
		{
			name: "no channels",
			reqs: []domain.ScanRequest{request(time.Minute, func(r *domain.ScanRequest) { r.Channels = domain.ChannelSpec{} })},
			opts: opts(4),
		},
		{name: "duplicate id", reqs: []domain.ScanRequest{dup, dup}, opts: opts(4)},
		{name: "no buckets", reqs: nil, opts: opts(0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := allocator.Build(context.Background(), tt.reqs, tt.opts)
			require.ErrorIs(t, err, serrors.ErrInvalidArgument)
			require.Nil(t, s)
		})
	}
}

func TestBuildDeterministic(t *testing.T) {
	rng := rand.New(rand.NewSource(7)) //nolint: gosec
	reqs := randomRequests(rng, 12)

	a, err := allocator.Build(context.Background(), reqs, opts(3))
	require.NoError(t, err)
	b, err := allocator.Build(context.Background(), reqs, opts(3))
	require.NoError(t, err)
	require.Equal(t, a, b)
}

func TestBuildProperties(t *testing.T) {
	rng := rand.New(rand.NewSource(42)) //nolint: gosec
	for range 200 {
		maxBuckets := 1 + rng.Intn(8)
		reqs := randomRequests(rng, 1+rng.Intn(20))

		backoff, regular := 0, 0
		for _, r := range reqs {
			if r.IsBackoff() {
				backoff = 1
			} else {
				regular = 1
			}
		}

		s, err := allocator.Build(context.Background(), reqs, opts(maxBuckets))
		if backoff+regular > maxBuckets {
			require.ErrorIs(t, err, serrors.ErrInvalidArgument)
			require.Nil(t, s)

			continue
		}
		require.NoError(t, err)
		require.Equal(t, backoff, s.NumBackoffBuckets())
		require.LessOrEqual(t, len(s.Buckets), maxBuckets)
		require.GreaterOrEqual(t, s.BasePeriod, allocator.MinPeriod)

		for _, b := range s.Buckets {
			require.Zero(t, b.Period%s.BasePeriod)
		}
		for i := 1; i < len(s.Buckets); i++ {
			require.LessOrEqual(t, s.Buckets[i-1].Period, s.Buckets[i].Period)
		}

		assigned := 0
		for _, b := range s.Buckets {
			assigned += len(b.Requests)
		}
		require.Equal(t, len(reqs), assigned)

		if len(reqs) > maxBuckets-backoff {
			continue
		}
		for _, r := range reqs {
			_, b, ok := s.BucketFor(r.ID)
			require.True(t, ok)
			if r.IsBackoff() {
				require.True(t, b.IsBackoff())

				continue
			}
			require.Equal(t, nearest(r.Period), b.Period)
		}
	}
}

func TestBuildCompactionIdempotent(t *testing.T) {
	rng := rand.New(rand.NewSource(3)) //nolint: gosec
	for range 50 {
		maxBuckets := 1 + rng.Intn(5)
		reqs := randomRequests(rng, 1+rng.Intn(15))
		for i := range reqs {
			reqs[i].MaxPeriod = 0
		}

		first, err := allocator.Build(context.Background(), reqs, opts(maxBuckets))
		require.NoError(t, err)

		// resubmitting every request at its installed period yields the same schedule
		again := make([]domain.ScanRequest, len(reqs))
		copy(again, reqs)
		for i, r := range again {
			_, b, ok := first.BucketFor(r.ID)
			require.True(t, ok)
			again[i].Period = b.Period
		}
		second, err := allocator.Build(context.Background(), again, opts(maxBuckets))
		require.NoError(t, err)
		require.Equal(t, periods(first), periods(second))
		for _, r := range again {
			i1, _, _ := first.BucketFor(r.ID)
			i2, _, _ := second.BucketFor(r.ID)
			require.Equal(t, i1, i2)
		}
	}
}

func randomRequests(rng *rand.Rand, n int) []domain.ScanRequest {
	reqs := make([]domain.ScanRequest, 0, n)
	for range n {
		r := request(time.Duration(1+rng.Intn(3000)) * time.Second)
		if rng.Intn(5) == 0 {
			r.MaxPeriod = r.Period * 8
			r.StepCount = 1 + rng.Intn(4)
		}
		r.ReportEvents = domain.ReportEvents(rng.Intn(8))
		r.MaxBSSIDs = rng.Intn(40)
		r.MaxScansToCache = rng.Intn(12)
		reqs = append(reqs, r)
	}

	return reqs
}
