package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// RequestID uniquely identifies a background scan request.
// It wraps uuid.UUID to provide type safety at the domain layer.
type RequestID uuid.UUID

// NewRequestID returns a fresh random RequestID.
func NewRequestID() RequestID { return RequestID(uuid.New()) }

// String returns the canonical textual form of the ID.
func (id RequestID) String() string { return uuid.UUID(id).String() }

// ReportEvents is a bit set describing how and when a requester wants
// results delivered.
type ReportEvents uint8

const (
	// ReportAfterBufferFull is the zero policy: results are batched and
	// reported once the buffer crosses its thresholds.
	ReportAfterBufferFull ReportEvents = 0
	// ReportAfterEachScan reports a batch after every completed scan.
	ReportAfterEachScan ReportEvents = 1 << 0
	// ReportFullResult delivers every raw result as soon as it is polled.
	ReportFullResult ReportEvents = 1 << 1
	// ReportNoBatch suppresses buffering of the scan generation.
	ReportNoBatch ReportEvents = 1 << 2
)

var reportEventNames = []struct { //nolint: gochecknoglobals
	flag ReportEvents
	name string
}{
	{ReportAfterEachScan, "afterEachScan"},
	{ReportFullResult, "fullResult"},
	{ReportNoBatch, "noBatch"},
}

// Has reports whether all bits of flag are set.
func (r ReportEvents) Has(flag ReportEvents) bool { return r&flag == flag }

func (r ReportEvents) String() string {
	if r == ReportAfterBufferFull {
		return "afterBufferFull"
	}

	names := make([]string, 0, len(reportEventNames))
	for _, e := range reportEventNames {
		if r.Has(e.flag) {
			names = append(names, e.name)
		}
	}

	return strings.Join(names, "|")
}

// ParseReportEvents combines the named flags. Unknown names are rejected.
func ParseReportEvents(names []string) (ReportEvents, error) {
	var r ReportEvents
	for _, name := range names {
		if strings.EqualFold(name, "afterBufferFull") {
			continue
		}

		found := false
		for _, e := range reportEventNames {
			if strings.EqualFold(name, e.name) {
				r |= e.flag
				found = true

				break
			}
		}
		if !found {
			return 0, fmt.Errorf("unknown report event %q", name)
		}
	}

	return r, nil
}

// ScanRequest is a single client's periodic scan request. It is immutable
// once submitted.
type ScanRequest struct {
	// ID identifies the request across schedule rebuilds.
	ID RequestID
	// Period is the desired interval between scans.
	Period time.Duration
	// MaxPeriod, when different from Period, turns the request into an
	// exponential back-off request growing up to MaxPeriod.
	MaxPeriod time.Duration
	// StepCount is the number of scans at each back-off step.
	StepCount int
	// Channels selects the band or the explicit frequency list to scan.
	Channels ChannelSpec
	// ReportEvents is the report policy of the request.
	ReportEvents ReportEvents
	// MaxBSSIDs caps the number of results reported per scan. Zero means no preference.
	MaxBSSIDs int
	// MaxScansToCache is the number of generations that may be cached before a
	// forced report. Zero means no preference.
	MaxScansToCache int
}

// IsBackoff reports whether the request asks for exponential back-off.
func (r ScanRequest) IsBackoff() bool {
	return r.MaxPeriod != 0 && r.MaxPeriod != r.Period
}
