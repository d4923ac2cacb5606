// Package hotlist raises debounced found and lost events for a fixed set of
// tracked access points over a stream of background scan results.
package hotlist

import (
	"math"
	"strings"

	"wifiscan/pkg/domain"
)

// Event is a bit mask of hotlist transitions.
type Event uint8

const (
	// EventNone means no transition.
	EventNone Event = 0
	// EventLost is raised when a network stays below its threshold for the lost threshold of batches.
	EventLost Event = 1 << 0
	// EventFound is raised when a network presumed lost is seen at or above its threshold.
	EventFound Event = 1 << 1
)

func (e Event) String() string {
	switch e {
	case EventNone:
		return "none"
	case EventLost:
		return "lost"
	case EventFound:
		return "found"
	case EventLost | EventFound:
		return "lost|found"
	default:
		return "unknown"
	}
}

type entry struct {
	network   domain.HotlistNetwork
	lostCount int
	recent    domain.ScanResult
	pending   Event
}

// Detector tracks the presence of hotlist networks. It is not safe for
// concurrent use; the executor serializes every call.
type Detector struct {
	entries       []entry
	lostThreshold int
	minEvents     int
	fired         bool

	firedFound []domain.ScanResult
	firedLost  []domain.ScanResult
}

// New returns a Detector where every network starts out presumed lost.
func New(settings domain.HotlistSettings) *Detector {
	threshold := settings.LostThreshold
	if threshold <= 0 {
		threshold = 1
	}

	d := &Detector{
		entries:       make([]entry, 0, len(settings.Networks)),
		lostThreshold: threshold,
		minEvents:     settings.MinEvents,
	}
	for _, n := range settings.Networks {
		d.entries = append(d.entries, entry{
			network:   n,
			lostCount: threshold,
			recent:    domain.ScanResult{BSSID: n.BSSID},
		})
	}

	return d
}

// Process feeds one scan generation into the detector and returns the mask
// of events that fired, or EventNone when fewer than the minimum number of
// networks changed state.
func (d *Detector) Process(results []domain.ScanResult) Event {
	if d.fired {
		for i := range d.entries {
			d.entries[i].pending = EventNone
		}
		d.fired = false
	}

	count := 0
	var mask Event
	for i := range d.entries {
		e := &d.entries[i]

		level := math.MinInt
		if r, ok := find(results, e.network.BSSID); ok {
			e.recent = r
			level = r.Level
		}

		if level < e.network.Low {
			if e.lostCount < d.lostThreshold {
				e.lostCount++
				if e.lostCount >= d.lostThreshold {
					e.pending = cancelOr(e.pending, EventFound, EventLost)
				}
			}
		} else {
			if e.lostCount >= d.lostThreshold {
				e.pending = cancelOr(e.pending, EventLost, EventFound)
			}
			e.lostCount = 0
		}

		if e.pending != EventNone {
			count++
			mask |= e.pending
		}
	}

	if count == 0 || count < d.minEvents {
		return EventNone
	}
	d.fired = true
	if mask&EventFound != 0 {
		d.firedFound = d.LastResults(EventFound)
	}
	if mask&EventLost != 0 {
		d.firedLost = d.LastResults(EventLost)
	}

	return mask
}

// cancelOr returns EventNone when the opposite transition is still pending
// and next otherwise.
func cancelOr(pending, opposite, next Event) Event {
	if pending == opposite {
		return EventNone
	}

	return next
}

// LastResults returns the most recent result of every network carrying the
// given pending event. Tags held back by the minimum event count are
// included.
func (d *Detector) LastResults(event Event) []domain.ScanResult {
	var out []domain.ScanResult
	for _, e := range d.entries {
		if e.pending == event {
			out = append(out, e.recent)
		}
	}

	return out
}

// Fired returns the networks reported the last time event fired. A set is
// replaced only when its event fires again.
func (d *Detector) Fired(event Event) []domain.ScanResult {
	switch event {
	case EventFound:
		return d.firedFound
	case EventLost:
		return d.firedLost
	default:
		return nil
	}
}

// Len returns the number of tracked networks.
func (d *Detector) Len() int { return len(d.entries) }

func find(results []domain.ScanResult, bssid string) (domain.ScanResult, bool) {
	for _, r := range results {
		if strings.EqualFold(r.BSSID, bssid) {
			return r, true
		}
	}

	return domain.ScanResult{}, false
}
