package allocator

import (
	"time"

	"wifiscan/pkg/domain"
)

// Bucket is one hardware scan bucket of a Schedule.
type Bucket struct {
	// Period is the interval between scans of this bucket.
	Period time.Duration
	// MaxPeriod and StepCount are only set on the back-off bucket.
	MaxPeriod time.Duration
	StepCount int
	// ReportEvents is the merged report policy of every request in the bucket.
	ReportEvents domain.ReportEvents
	// Channels is the channel-limit-aware descriptor of the bucket.
	Channels domain.ChannelSpec
	// Requests lists the assigned requests in insertion order.
	Requests []domain.RequestID
}

// IsBackoff reports whether the bucket is the exponential back-off bucket.
func (b Bucket) IsBackoff() bool { return b.MaxPeriod != 0 }

// Schedule is the hardware-facing description of every active bucket plus
// the derived global parameters. A Schedule is never mutated after Build
// returns it.
type Schedule struct {
	// Buckets are ordered by increasing period; the back-off bucket sorts
	// after regular buckets of the same period.
	Buckets []Bucket
	// BasePeriod is the GCD of all bucket periods.
	BasePeriod time.Duration
	// MaxApPerScan is the number of results kept per scan.
	MaxApPerScan int
	// ReportThresholdNumScans is the buffered generation count that triggers a report.
	ReportThresholdNumScans int
	// ReportThresholdPercent is the buffer fill ratio that triggers a report.
	ReportThresholdPercent int

	assignments map[domain.RequestID]int
}

// BucketFor returns the index and bucket a request was assigned to.
func (s *Schedule) BucketFor(id domain.RequestID) (int, Bucket, bool) {
	idx, ok := s.assignments[id]
	if !ok {
		return -1, Bucket{}, false
	}

	return idx, s.Buckets[idx], true
}

// NumBackoffBuckets returns 1 when the schedule carries a back-off bucket.
func (s *Schedule) NumBackoffBuckets() int {
	n := 0
	for _, b := range s.Buckets {
		if b.IsBackoff() {
			n++
		}
	}

	return n
}
