// Package executor plays an allocator schedule back against a radio. It owns
// at most one in-flight scan, folds pending single-shot requests into the
// background cycle, attributes results by timestamp and feeds the hotlist
// detector.
package executor

import (
	"context"
	"sort"
	"sync"
	"time"

	"go.uber.org/zap"

	"wifiscan/internal/allocator"
	"wifiscan/internal/config"
	"wifiscan/internal/hotlist"
	"wifiscan/pkg/channels"
	"wifiscan/pkg/domain"
	"wifiscan/pkg/logger"
	"wifiscan/pkg/metrics"
	"wifiscan/pkg/radio"
	"wifiscan/pkg/serrors"
)

const maxReportThresholdPercent = 100

// Options configure the executor.
type Options struct {
	// BufferCapacity is the number of background scan generations kept.
	BufferCapacity int
	// DefaultPeriod re-arms the tick when a schedule carries no base period.
	DefaultPeriod time.Duration
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		BufferCapacity: cfg.Executor.BufferCapacity,
		DefaultPeriod:  cfg.Executor.DefaultPeriod,
	}
}

// SingleShotSettings describe a one-off scan.
type SingleShotSettings struct {
	Channels     domain.ChannelSpec
	ReportEvents domain.ReportEvents
}

// cycle is the bookkeeping of the scan currently in flight.
type cycle struct {
	id        int
	startTime time.Time

	background     bool
	bgEvents       domain.ReportEvents
	maxAp          int
	numScans       int
	percent        int
	bucketsScanned uint32

	single         bool
	singleEvents   domain.ReportEvents
	singleChannels *channels.Collection
	singleListener SingleShotListener
}

type pendingSingle struct {
	settings SingleShotSettings
	listener SingleShotListener
}

// Executor is the scan-cycle state machine. All methods are safe for
// concurrent use.
type Executor struct {
	ctx     context.Context //nolint: containedctx
	options Options
	radio   radio.Radio
	caps    radio.Capabilities
	clock   Clock
	alarm   Alarm
	metrics *metrics.Collector

	mu sync.Mutex

	last *cycle

	schedule        *allocator.Schedule
	bgListener      BackgroundListener
	pendingSchedule *allocator.Schedule
	pendingListener BackgroundListener
	paused          bool
	periodPending   bool
	tick            int
	alarmGen        uint64

	single *pendingSingle
	nextID int

	buffer       *ScanBuffer
	latestSingle *domain.ScanData

	hotlist         *hotlist.Detector
	hotlistListener HotlistListener
}

// New creates an Executor driving r. ctx carries the logger used by timer
// driven work.
func New(
	ctx context.Context,
	options Options,
	r radio.Radio,
	clock Clock,
	alarm Alarm,
	collector *metrics.Collector,
) *Executor {
	if options.DefaultPeriod <= 0 {
		options.DefaultPeriod = allocator.DefaultPeriod
	}

	return &Executor{
		ctx:     logger.Named(ctx, "executor"),
		options: options,
		radio:   r,
		caps:    r.Capabilities(),
		clock:   clock,
		alarm:   alarm,
		metrics: collector,
		buffer:  NewScanBuffer(options.BufferCapacity),
	}
}

func (e *Executor) validate(s *allocator.Schedule) error {
	switch {
	case s == nil:
		return serrors.With(serrors.ErrInvalidArgument, "no schedule")
	case s.MaxApPerScan < 0 || s.MaxApPerScan > e.caps.MaxApPerScan:
		return serrors.With(serrors.ErrInvalidArgument, "max aps per scan %d out of range [0, %d]",
			s.MaxApPerScan, e.caps.MaxApPerScan)
	case len(s.Buckets) > e.caps.MaxBuckets:
		return serrors.With(serrors.ErrInvalidArgument, "%d buckets exceed the limit of %d",
			len(s.Buckets), e.caps.MaxBuckets)
	case s.ReportThresholdNumScans < 0 || s.ReportThresholdNumScans > e.buffer.Cap():
		return serrors.With(serrors.ErrInvalidArgument, "report threshold of %d scans out of range [0, %d]",
			s.ReportThresholdNumScans, e.buffer.Cap())
	case s.ReportThresholdPercent < 0 || s.ReportThresholdPercent > maxReportThresholdPercent:
		return serrors.With(serrors.ErrInvalidArgument, "report threshold of %d%% out of range",
			s.ReportThresholdPercent)
	case s.BasePeriod <= 0:
		return serrors.With(serrors.ErrInvalidArgument, "base period must be positive")
	}

	for i, b := range s.Buckets {
		if b.Period <= 0 || b.Period%s.BasePeriod != 0 {
			return serrors.With(serrors.ErrInvalidArgument, "bucket %d period %s is not a multiple of the base period %s",
				i, b.Period, s.BasePeriod)
		}
	}

	return nil
}

// StartBackground replaces the background schedule. The new schedule starts
// from tick zero once no scan is in flight.
func (e *Executor) StartBackground(ctx context.Context, s *allocator.Schedule, listener BackgroundListener) error {
	if err := e.validate(s); err != nil {
		return err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	e.stopLocked(ctx)
	e.pendingSchedule = s
	e.pendingListener = listener
	e.metrics.ScheduleInstalled(len(s.Buckets), s.BasePeriod)
	logger.Info(ctx, "background schedule installed",
		zap.Int("buckets", len(s.Buckets)), zap.Duration("basePeriod", s.BasePeriod))

	e.periodPending = true
	e.processPendingLocked(ctx)

	return nil
}

// StopBackground drops the active and pending background schedules. A scan
// already in flight completes without reaching the background listener.
func (e *Executor) StopBackground(ctx context.Context) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.stopLocked(ctx)
	e.metrics.ScheduleInstalled(0, 0)
	e.processPendingLocked(ctx)
}

func (e *Executor) stopLocked(ctx context.Context) {
	e.pendingSchedule, e.pendingListener = nil, nil
	e.schedule, e.bgListener = nil, nil
	e.paused = false
	e.periodPending = false
	e.cancelAlarmLocked()
	if e.last != nil {
		e.last.background = false
	}
	logger.Debug(ctx, "background scanning stopped")
}

// PauseBackground keeps the schedule aside until RestartBackground and hands
// the flushed buffer to the listener.
func (e *Executor) PauseBackground(ctx context.Context) []domain.ScanData {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.pendingSchedule == nil {
		e.pendingSchedule, e.pendingListener = e.schedule, e.bgListener
	}
	listener := e.pendingListener
	e.schedule, e.bgListener = nil, nil
	e.periodPending = false
	e.paused = true
	e.cancelAlarmLocked()
	if e.last != nil {
		e.last.background = false
	}

	results := e.buffer.Get()
	e.buffer.Clear()
	if listener != nil {
		listener.OnPaused(results)
	}
	logger.Info(ctx, "background scanning paused", zap.Int("buffered", len(results)))

	return results
}

// RestartBackground resumes a paused schedule.
func (e *Executor) RestartBackground(ctx context.Context) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.paused {
		return
	}
	if e.pendingListener != nil {
		e.pendingListener.OnRestarted()
	}
	e.paused = false
	e.periodPending = true
	logger.Info(ctx, "background scanning restarted")
	e.processPendingLocked(ctx)
}

// StartSingleShot queues a single-shot scan. It fails with ErrBusy while
// another single-shot scan is queued or in flight.
func (e *Executor) StartSingleShot(ctx context.Context, settings SingleShotSettings, listener SingleShotListener) error {
	if settings.Channels.IsEmpty() {
		return serrors.With(serrors.ErrInvalidArgument, "single-shot scan without channels")
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.single != nil || (e.last != nil && e.last.single) {
		logger.Warn(ctx, "a single-shot scan is already running")

		return serrors.With(serrors.ErrBusy, "a single-shot scan is already running")
	}
	e.single = &pendingSingle{settings: settings, listener: listener}
	e.processPendingLocked(ctx)

	return nil
}

// LatestSingleShotResult returns the snapshot of the last completed single-shot scan.
func (e *Executor) LatestSingleShotResult() (domain.ScanData, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.latestSingle == nil {
		return domain.ScanData{}, false
	}

	return *e.latestSingle, true
}

// BufferedResults returns the buffered background generations, oldest first,
// and empties the buffer when flush is set.
func (e *Executor) BufferedResults(flush bool) []domain.ScanData {
	e.mu.Lock()
	defer e.mu.Unlock()

	results := e.buffer.Get()
	if flush {
		e.buffer.Clear()
	}

	return results
}

// SetHotlist replaces the tracked networks and resets their state.
func (e *Executor) SetHotlist(ctx context.Context, settings domain.HotlistSettings, listener HotlistListener) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.hotlist = hotlist.New(settings)
	e.hotlistListener = listener
	logger.Info(ctx, "hotlist installed", zap.Int("networks", e.hotlist.Len()))
}

// ClearHotlist stops hotlist tracking.
func (e *Executor) ClearHotlist(ctx context.Context) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.hotlist, e.hotlistListener = nil, nil
	logger.Info(ctx, "hotlist cleared")
}

// HotlistResults returns the networks reported the last time event fired.
func (e *Executor) HotlistResults(event hotlist.Event) []domain.ScanResult {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.hotlist == nil {
		return nil
	}

	return e.hotlist.Fired(event)
}

// Busy reports whether a scan is in flight.
func (e *Executor) Busy() bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.last != nil
}

func (e *Executor) cancelAlarmLocked() {
	e.alarmGen++
	e.alarm.Cancel()
}

func (e *Executor) armAlarmLocked(d time.Duration) {
	e.alarmGen++
	gen := e.alarmGen
	e.alarm.Schedule(d, func() { e.onAlarm(gen) })
}

func (e *Executor) onAlarm(gen uint64) {
	e.mu.Lock()
	defer e.mu.Unlock()

	// a wake-up that raced with Cancel or Schedule
	if gen != e.alarmGen {
		return
	}
	e.periodPending = true
	e.processPendingLocked(e.ctx)
}

// processPendingLocked issues the next radio scan when none is in flight,
// covering every due background bucket and any queued single-shot scan.
func (e *Executor) processPendingLocked(ctx context.Context) {
	if e.last != nil {
		return
	}

	all := channels.New()
	next := &cycle{startTime: e.clock.Now()}

	if e.pendingSchedule != nil && !e.paused {
		e.schedule, e.bgListener = e.pendingSchedule, e.pendingListener
		e.pendingSchedule, e.pendingListener = nil, nil
		e.tick = 0
		e.periodPending = true
	}

	if e.periodPending && e.schedule != nil {
		s := e.schedule
		events := domain.ReportNoBatch
		var mask uint32
		for i, b := range s.Buckets {
			if e.tick%int(b.Period/s.BasePeriod) != 0 {
				continue
			}
			events |= b.ReportEvents & (domain.ReportAfterEachScan | domain.ReportFullResult)
			if !b.ReportEvents.Has(domain.ReportNoBatch) {
				events &^= domain.ReportNoBatch
			}
			all.AddSpec(b.Channels)
			mask |= 1 << uint(i)
		}
		if !all.IsEmpty() {
			next.background = true
			next.bgEvents = events
			next.maxAp = s.MaxApPerScan
			next.numScans = s.ReportThresholdNumScans
			next.percent = s.ReportThresholdPercent
			next.bucketsScanned = mask
		}
		e.tick++
		e.periodPending = false

		period := s.BasePeriod
		if period <= 0 {
			period = e.options.DefaultPeriod
		}
		e.armAlarmLocked(period)
	}

	if e.single != nil {
		singleChannels := channels.New()
		singleChannels.AddSpec(e.single.settings.Channels)
		next.single = true
		next.singleEvents = e.single.settings.ReportEvents
		next.singleChannels = singleChannels
		next.singleListener = e.single.listener
		all.AddSpec(e.single.settings.Channels)
		e.single = nil
	}

	if !next.background && !next.single {
		return
	}

	freqs := all.Frequencies()
	if len(freqs) == 0 {
		logger.Error(ctx, "no channel available to scan")
		e.metrics.IssueFailed()

		return
	}

	next.id = e.nextID
	e.nextID++
	if err := e.radio.Scan(ctx, freqs); err != nil {
		// pending requests of this cycle are dropped without notification
		logger.Warn(ctx, "could not start scan", zap.Error(err), zap.Ints("freqs", freqs))
		e.metrics.IssueFailed()

		return
	}

	e.last = next
	e.metrics.CycleIssued(next.kind())
	if logger.IsDebug(ctx) {
		logger.Debug(ctx, "scan issued",
			zap.Int("id", next.id),
			zap.Bool("background", next.background),
			zap.Bool("single", next.single),
			zap.Uint32("buckets", next.bucketsScanned),
			zap.Ints("freqs", freqs))
	}
}

func (c *cycle) kind() string {
	switch {
	case c.background && c.single:
		return "both"
	case c.background:
		return "background"
	default:
		return "single"
	}
}

// OnScanResultsReady fetches the results of the in-flight scan, distributes
// them and moves on to the next pending scan.
func (e *Executor) OnScanResultsReady(ctx context.Context) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.last == nil {
		logger.Debug(ctx, "results ready without a scan in flight")

		return
	}

	e.pollLocked(ctx)
	e.last = nil
	e.processPendingLocked(ctx)
}

// OnScanFailed abandons the in-flight scan.
func (e *Executor) OnScanFailed(ctx context.Context) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.last == nil {
		return
	}

	logger.Warn(ctx, "scan failed", zap.Int("id", e.last.id))
	e.metrics.AsyncFailed()
	if e.last.single && e.last.singleListener != nil {
		e.last.singleListener.OnFailure(serrors.With(serrors.ErrRadio, "scan %d failed", e.last.id))
	}
	e.last = nil
	e.processPendingLocked(ctx)
}

func (e *Executor) pollLocked(ctx context.Context) {
	last := e.last
	defer func() { e.metrics.CycleCompleted(e.clock.Now().Sub(last.startTime)) }()

	raw, err := e.radio.ScanResults(ctx)
	if err != nil {
		logger.Warn(ctx, "could not fetch scan results", zap.Error(err))
		if last.single && last.singleListener != nil {
			last.singleListener.OnFailure(serrors.Wrap(serrors.ErrRadio, err, "could not fetch scan results"))
		}

		return
	}

	var background, single []domain.ScanResult
	stale := 0
	for _, r := range raw {
		if !r.Timestamp.After(last.startTime) {
			stale++

			continue
		}
		if last.background {
			background = append(background, r)
		}
		if last.single && last.singleChannels.Contains(r.Frequency) {
			single = append(single, r)
		}
	}
	if stale > 0 {
		logger.Debug(ctx, "filtered stale scan results", zap.Int("count", stale), zap.Int("id", last.id))
		e.metrics.StaleDropped(stale)
	}

	if last.background {
		e.deliverBackgroundLocked(ctx, last, background)
	}

	if last.single {
		if last.singleEvents.Has(domain.ReportFullResult) && last.singleListener != nil {
			for _, r := range single {
				last.singleListener.OnFullResult(r)
			}
		}
		sortByLevel(single)
		e.latestSingle = &domain.ScanData{ID: last.id, Results: single}
		if last.singleListener != nil {
			last.singleListener.OnResultsAvailable(*e.latestSingle)
		}
	}
}

func (e *Executor) deliverBackgroundLocked(ctx context.Context, last *cycle, results []domain.ScanResult) {
	if last.bgEvents.Has(domain.ReportFullResult) && e.bgListener != nil {
		for _, r := range results {
			e.bgListener.OnFullResult(r, last.bucketsScanned)
		}
	}

	sortByLevel(results)
	kept := results
	if last.maxAp > 0 && len(kept) > last.maxAp {
		kept = kept[:last.maxAp]
	}
	if !last.bgEvents.Has(domain.ReportNoBatch) {
		if e.buffer.Add(domain.ScanData{
			ID:             last.id,
			BucketsScanned: last.bucketsScanned,
			Results:        append([]domain.ScanResult(nil), kept...),
		}) {
			e.metrics.BufferEvicted()
		}
	}

	if e.bgListener != nil && e.batchReady(last) {
		batch := e.buffer.Get()
		e.buffer.Clear()
		e.bgListener.OnBatchReady(batch)
	}

	if e.hotlist == nil {
		return
	}
	event := e.hotlist.Process(results)
	if event == hotlist.EventNone || e.hotlistListener == nil {
		return
	}
	if event&hotlist.EventFound != 0 {
		found := e.hotlist.Fired(hotlist.EventFound)
		e.metrics.HotlistReported(hotlist.EventFound.String(), len(found))
		e.hotlistListener.OnFound(found)
	}
	if event&hotlist.EventLost != 0 {
		lost := e.hotlist.Fired(hotlist.EventLost)
		e.metrics.HotlistReported(hotlist.EventLost.String(), len(lost))
		e.hotlistListener.OnLost(lost)
	}
	logger.Debug(ctx, "hotlist event fired", zap.Stringer("event", event))
}

func (e *Executor) batchReady(last *cycle) bool {
	if last.bgEvents.Has(domain.ReportFullResult) || last.bgEvents.Has(domain.ReportAfterEachScan) {
		return true
	}
	if last.bgEvents != domain.ReportAfterBufferFull {
		return false
	}

	size := e.buffer.Len()

	return size >= e.buffer.Cap()*last.percent/maxReportThresholdPercent ||
		(last.numScans > 0 && size >= last.numScans)
}

func sortByLevel(results []domain.ScanResult) {
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Level > results[j].Level
	})
}
