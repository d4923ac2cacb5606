package allocator

import (
	"time"

	"wifiscan/pkg/domain"
)

// predefinedPeriods is the fixed preference-ordered period table: lower index
// means more preferred. Every regular period is a multiple of MinPeriod. The
// last entry is reserved for exponential back-off requests.
var predefinedPeriods = [...]time.Duration{ //nolint: gochecknoglobals
	4 * MinPeriod,
	2 * MinPeriod,
	16 * MinPeriod,
	32 * MinPeriod,
	1 * MinPeriod,
	128 * MinPeriod,
	64 * MinPeriod,
	256 * MinPeriod,
	0,
}

const (
	backoffSlot       = len(predefinedPeriods) - 1
	numRegularBuckets = len(predefinedPeriods) - 1
)

// bestRegularSlot returns the index among the first limit regular slots whose
// period is closest to period. Ties go to the lowest index.
func bestRegularSlot(period time.Duration, limit int) int {
	limit = min(limit, numRegularBuckets)
	best := -1
	var bestDiff time.Duration
	for i := range limit {
		diff := predefinedPeriods[i] - period
		if diff < 0 {
			diff = -diff
		}
		if best == -1 || diff < bestDiff {
			best, bestDiff = i, diff
		}
	}

	return best
}

// slotTable holds the requests assigned to every predefined slot.
type slotTable [len(predefinedPeriods)][]domain.ScanRequest

func (t *slotTable) add(r domain.ScanRequest) {
	if r.IsBackoff() {
		t[backoffSlot] = append(t[backoffSlot], r)

		return
	}
	idx := bestRegularSlot(r.Period, numRegularBuckets)
	t[idx] = append(t[idx], r)
}

func (t *slotTable) active(i int) bool { return len(t[i]) > 0 }

func (t *slotTable) activeRegular() int {
	n := 0
	for i := range numRegularBuckets {
		if t.active(i) {
			n++
		}
	}

	return n
}

func (t *slotTable) activeTotal() int {
	n := t.activeRegular()
	if t.active(backoffSlot) {
		n++
	}

	return n
}

// compact evicts the least preferred regular slots until the active buckets
// fit into maxBuckets. One bucket is reserved for back-off requests when
// any exist. Requests of an evicted slot are re-assigned one by one to the
// best slot among the more preferred ones, which may itself be evicted
// later. Slot 0 is never evicted since nothing is more preferred.
func (t *slotTable) compact(maxBuckets int) {
	maxRegular := maxBuckets
	if t.active(backoffSlot) {
		maxRegular--
	}

	for i := numRegularBuckets - 1; i > 0 && t.activeRegular() > maxRegular; i-- {
		if !t.active(i) {
			continue
		}
		for _, r := range t[i] {
			j := bestRegularSlot(r.Period, i)
			t[j] = append(t[j], r)
		}
		t[i] = nil
	}
}
