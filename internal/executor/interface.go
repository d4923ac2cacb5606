package executor

import (
	"time"

	"wifiscan/pkg/domain"
)

// BackgroundListener receives the events of the installed background schedule.
// Methods are invoked with the executor lock held and must not call back into
// the executor.
//
//go:generate mockgen -package mockexecutor -source=interface.go -destination=mock/mockexecutor.go *
type BackgroundListener interface {
	// OnFullResult delivers one fresh result of a cycle whose merged flags ask
	// for full results. buckets is the mask of schedule buckets scanned.
	OnFullResult(result domain.ScanResult, buckets uint32)
	// OnBatchReady delivers the flushed background buffer once a report
	// threshold is crossed.
	OnBatchReady(batch []domain.ScanData)
	// OnPaused delivers whatever was buffered when scanning was paused.
	OnPaused(buffered []domain.ScanData)
	// OnRestarted is called before a paused schedule is evaluated again.
	OnRestarted()
}

// SingleShotListener receives the outcome of one single-shot scan.
type SingleShotListener interface {
	OnFullResult(result domain.ScanResult)
	OnResultsAvailable(data domain.ScanData)
	OnFailure(err error)
}

// HotlistListener receives debounced hotlist transitions.
type HotlistListener interface {
	OnFound(results []domain.ScanResult)
	OnLost(results []domain.ScanResult)
}

// Clock tells the executor the current time.
type Clock interface {
	Now() time.Time
}

// Alarm is a single re-armable wake-up. Scheduling replaces any previously
// scheduled wake-up.
type Alarm interface {
	Schedule(d time.Duration, fn func())
	Cancel()
}
