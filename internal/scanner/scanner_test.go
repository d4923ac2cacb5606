package scanner_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	"go.uber.org/mock/gomock"

	"wifiscan/internal/allocator"
	"wifiscan/internal/executor"
	"wifiscan/internal/hotlist"
	"wifiscan/internal/scanner"
	mockscanner "wifiscan/internal/scanner/mock"
	"wifiscan/pkg/domain"
	"wifiscan/pkg/serrors"
)

func newTestScanner(t *testing.T) (*gomock.Controller, *mockscanner.MockExecutor, *sdkmetric.ManualReader, scanner.Scanner) {
	t.Helper()

	ctrl := gomock.NewController(t)
	exec := mockscanner.NewMockExecutor(ctrl)
	reader := sdkmetric.NewManualReader()
	s, err := scanner.New(exec, scanner.Options{Allocator: allocator.Options{
		MaxBuckets:             16,
		MaxChannelsPerBucket:   16,
		MaxApPerScan:           32,
		MaxScanCacheSize:       10,
		ReportThresholdPercent: 100,
	}}, sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader)))
	require.NoError(t, err)

	return ctrl, exec, reader, s
}

func background(period time.Duration, listener scanner.RequestListener, freqs ...int) scanner.BackgroundRequest {
	return scanner.BackgroundRequest{
		Request: domain.ScanRequest{
			ID:       domain.NewRequestID(),
			Period:   period,
			Channels: domain.ChannelSpec{Frequencies: freqs},
		},
		Listener: listener,
	}
}

func result(bssid string, freq, level int) domain.ScanResult {
	return domain.ScanResult{BSSID: bssid, Frequency: freq, Level: level}
}

// expectStart captures the background listener handed to the executor.
func expectStart(exec *mockscanner.MockExecutor, listener *executor.BackgroundListener) *gomock.Call {
	return exec.EXPECT().StartBackground(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ *allocator.Schedule, l executor.BackgroundListener) error {
			*listener = l

			return nil
		},
	)
}

func TestScanner_NoSchedule(t *testing.T) {
	_, exec, _, s := newTestScanner(t)

	_, err := s.Schedule(context.Background())
	require.ErrorIs(t, err, serrors.ErrNotFound)
	require.ErrorIs(t, s.StartBackground(context.Background()), serrors.ErrNotFound)

	exec.EXPECT().Busy().Return(false)
	require.Equal(t, scanner.Status{State: "stopped"}, s.Status(context.Background()))
}

func TestScanner_InstallSchedule(t *testing.T) {
	_, _, _, s := newTestScanner(t)

	sched, err := s.InstallSchedule(context.Background(), []scanner.BackgroundRequest{
		background(20*time.Second, nil, 2412),
		background(40*time.Second, nil, 5180),
	})
	require.NoError(t, err)
	require.Len(t, sched.Buckets, 2)

	installed, err := s.Schedule(context.Background())
	require.NoError(t, err)
	require.Same(t, sched, installed)

	_, err = s.InstallSchedule(context.Background(), []scanner.BackgroundRequest{background(0, nil, 2412)})
	require.ErrorIs(t, err, serrors.ErrInvalidArgument)

	// the previous schedule stays installed
	installed, err = s.Schedule(context.Background())
	require.NoError(t, err)
	require.Same(t, sched, installed)
}

func TestScanner_Demultiplex(t *testing.T) {
	ctrl, exec, _, s := newTestScanner(t)
	fast := mockscanner.NewMockRequestListener(ctrl)
	slow := mockscanner.NewMockRequestListener(ctrl)

	fastReq := background(20*time.Second, fast, 2412)
	fastReq.Request.MaxBSSIDs = 1
	fastReq.Request.ReportEvents = domain.ReportFullResult
	slowReq := background(40*time.Second, slow, 5180)

	_, err := s.InstallSchedule(context.Background(), []scanner.BackgroundRequest{fastReq, slowReq})
	require.NoError(t, err)

	var listener executor.BackgroundListener
	expectStart(exec, &listener)
	require.NoError(t, s.StartBackground(context.Background()))
	require.NotNil(t, listener)

	strong := result("00:00:00:00:00:01", 2412, -40)
	weak := result("00:00:00:00:00:02", 2412, -60)
	other := result("00:00:00:00:00:03", 5180, -50)

	fast.EXPECT().OnResults(fastReq.Request.ID, []domain.ScanData{
		{ID: 0, BucketsScanned: 0b01, Results: []domain.ScanResult{strong}},
		{ID: 1, BucketsScanned: 0b11, Results: []domain.ScanResult{strong}},
		{ID: 2, Results: []domain.ScanResult{strong}},
	})
	slow.EXPECT().OnResults(slowReq.Request.ID, []domain.ScanData{
		{ID: 1, BucketsScanned: 0b11, Results: []domain.ScanResult{other}},
		{ID: 2, Results: []domain.ScanResult{other}},
	})
	listener.OnBatchReady([]domain.ScanData{
		{ID: 0, BucketsScanned: 0b01, Results: []domain.ScanResult{strong, weak}},
		{ID: 1, BucketsScanned: 0b11, Results: []domain.ScanResult{strong, other, weak}},
		{ID: 2, Results: []domain.ScanResult{strong, other}},
	})

	// only the request asking for full results on that channel gets it
	fast.EXPECT().OnFullResult(fastReq.Request.ID, weak)
	listener.OnFullResult(weak, 0b01)
	listener.OnFullResult(other, 0b10)

	// paused results are demultiplexed the same way
	slow.EXPECT().OnResults(slowReq.Request.ID, []domain.ScanData{
		{ID: 3, BucketsScanned: 0b10, Results: []domain.ScanResult{other}},
	})
	listener.OnPaused([]domain.ScanData{{ID: 3, BucketsScanned: 0b10, Results: []domain.ScanResult{other}}})
	listener.OnRestarted()
}

func TestScanner_FullResultFollowsBucketsScanned(t *testing.T) {
	ctrl, exec, _, s := newTestScanner(t)
	fast := mockscanner.NewMockRequestListener(ctrl)
	slow := mockscanner.NewMockRequestListener(ctrl)

	fastReq := background(20*time.Second, fast, 2412)
	fastReq.Request.ReportEvents = domain.ReportFullResult
	slowReq := background(40*time.Second, slow, 2412)
	slowReq.Request.ReportEvents = domain.ReportFullResult

	sched, err := s.InstallSchedule(context.Background(), []scanner.BackgroundRequest{fastReq, slowReq})
	require.NoError(t, err)
	fastBucket, _, ok := sched.BucketFor(fastReq.Request.ID)
	require.True(t, ok)
	slowBucket, _, ok := sched.BucketFor(slowReq.Request.ID)
	require.True(t, ok)
	require.NotEqual(t, fastBucket, slowBucket)

	var listener executor.BackgroundListener
	expectStart(exec, &listener)
	require.NoError(t, s.StartBackground(context.Background()))

	r := result("00:00:00:00:00:01", 2412, -40)

	// a cycle that only scanned the 20s bucket
	fast.EXPECT().OnFullResult(fastReq.Request.ID, r)
	listener.OnFullResult(r, 1<<uint(fastBucket))

	// both buckets due
	fast.EXPECT().OnFullResult(fastReq.Request.ID, r)
	slow.EXPECT().OnFullResult(slowReq.Request.ID, r)
	listener.OnFullResult(r, 1<<uint(fastBucket)|1<<uint(slowBucket))

	// unknown mask reaches everyone
	fast.EXPECT().OnFullResult(fastReq.Request.ID, r)
	slow.EXPECT().OnFullResult(slowReq.Request.ID, r)
	listener.OnFullResult(r, 0)
}

func TestScanner_InstallWhileRunning(t *testing.T) {
	_, exec, _, s := newTestScanner(t)

	_, err := s.InstallSchedule(context.Background(), []scanner.BackgroundRequest{background(20*time.Second, nil, 2412)})
	require.NoError(t, err)

	var listener executor.BackgroundListener
	expectStart(exec, &listener).Times(2)
	require.NoError(t, s.StartBackground(context.Background()))

	sched, err := s.InstallSchedule(context.Background(), []scanner.BackgroundRequest{background(40*time.Second, nil, 5180)})
	require.NoError(t, err)
	require.Equal(t, 40*time.Second, sched.Buckets[0].Period)

	exec.EXPECT().StopBackground(gomock.Any())
	s.StopBackground(context.Background())

	// stopped: installing does not touch the executor
	_, err = s.InstallSchedule(context.Background(), []scanner.BackgroundRequest{background(20*time.Second, nil, 2412)})
	require.NoError(t, err)
}

func TestScanner_PauseRestart(t *testing.T) {
	_, exec, _, s := newTestScanner(t)

	_, err := s.InstallSchedule(context.Background(), []scanner.BackgroundRequest{background(20*time.Second, nil, 2412)})
	require.NoError(t, err)

	// nothing to pause or restart yet
	require.Nil(t, s.PauseBackground(context.Background()))
	require.ErrorIs(t, s.RestartBackground(context.Background()), serrors.ErrInvalidArgument)

	var listener executor.BackgroundListener
	expectStart(exec, &listener)
	require.NoError(t, s.StartBackground(context.Background()))

	exec.EXPECT().Busy().Return(true)
	require.Equal(t, scanner.Status{State: "running", Busy: true, Buckets: 1}, s.Status(context.Background()))

	buffered := []domain.ScanData{{ID: 7}}
	exec.EXPECT().PauseBackground(gomock.Any()).Return(buffered)
	require.Equal(t, buffered, s.PauseBackground(context.Background()))

	exec.EXPECT().Busy().Return(false)
	require.Equal(t, scanner.Status{State: "paused", Buckets: 1}, s.Status(context.Background()))

	exec.EXPECT().RestartBackground(gomock.Any())
	require.NoError(t, s.RestartBackground(context.Background()))

	// a schedule installed while paused takes over on restart
	exec.EXPECT().PauseBackground(gomock.Any()).Return(nil)
	s.PauseBackground(context.Background())
	sched, err := s.InstallSchedule(context.Background(), []scanner.BackgroundRequest{background(40*time.Second, nil, 5180)})
	require.NoError(t, err)

	exec.EXPECT().StartBackground(gomock.Any(), sched, gomock.Any()).Return(nil)
	require.NoError(t, s.RestartBackground(context.Background()))
}

func TestScanner_SingleShot(t *testing.T) {
	_, exec, _, s := newTestScanner(t)
	listener := executor.SingleShotListener(nil)
	settings := executor.SingleShotSettings{Channels: domain.ChannelSpec{Band: domain.Band5GHz}}

	exec.EXPECT().StartSingleShot(gomock.Any(), settings, listener).Return(nil)
	require.NoError(t, s.StartSingleShot(context.Background(), settings, listener))

	exec.EXPECT().StartSingleShot(gomock.Any(), settings, listener).
		Return(serrors.With(serrors.ErrBusy, "a single-shot scan is already running"))
	err := s.StartSingleShot(context.Background(), settings, listener)
	require.ErrorIs(t, err, serrors.ErrBusy)

	exec.EXPECT().LatestSingleShotResult().Return(domain.ScanData{}, false)
	_, err = s.LatestSingleShotResult(context.Background())
	require.ErrorIs(t, err, serrors.ErrNotFound)

	data := domain.ScanData{ID: 3, Results: []domain.ScanResult{result("00:00:00:00:00:01", 5180, -50)}}
	exec.EXPECT().LatestSingleShotResult().Return(data, true)
	got, err := s.LatestSingleShotResult(context.Background())
	require.NoError(t, err)
	require.Equal(t, data, got)

	exec.EXPECT().BufferedResults(true).Return([]domain.ScanData{data})
	require.Equal(t, []domain.ScanData{data}, s.BufferedBackgroundResults(context.Background(), true))
}

func TestScanner_Hotlist(t *testing.T) {
	_, exec, _, s := newTestScanner(t)

	tests := []struct {
		name     string
		settings domain.HotlistSettings
	}{
		{name: "empty", settings: domain.HotlistSettings{}},
		{name: "bad bssid", settings: domain.HotlistSettings{Networks: []domain.HotlistNetwork{{BSSID: "nope"}}}},
		{name: "negative min events", settings: domain.HotlistSettings{
			Networks:  []domain.HotlistNetwork{{BSSID: "00:11:22:33:44:55"}},
			MinEvents: -1,
		}},
		{name: "duplicate network", settings: domain.HotlistSettings{
			Networks: []domain.HotlistNetwork{{BSSID: "00:11:22:33:44:AA"}, {BSSID: "00-11-22-33-44-aa"}},
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.ErrorIs(t, s.SetHotlist(context.Background(), tt.settings, nil), serrors.ErrInvalidArgument)
		})
	}

	valid := domain.HotlistSettings{Networks: []domain.HotlistNetwork{{BSSID: "00:11:22:33:44:AA", Low: -70}}}
	normalized := domain.HotlistSettings{Networks: []domain.HotlistNetwork{{BSSID: "00:11:22:33:44:aa", Low: -70}}}
	exec.EXPECT().SetHotlist(gomock.Any(), normalized, nil)
	require.NoError(t, s.SetHotlist(context.Background(), valid, nil))

	found := []domain.ScanResult{result("00:11:22:33:44:55", 2412, -50)}
	exec.EXPECT().HotlistResults(hotlist.EventFound).Return(found)
	exec.EXPECT().HotlistResults(hotlist.EventLost).Return(nil)
	gotFound, gotLost := s.HotlistResults(context.Background())
	require.Equal(t, found, gotFound)
	require.Empty(t, gotLost)

	exec.EXPECT().ClearHotlist(gomock.Any())
	s.ClearHotlist(context.Background())
}

func TestScanner_OperationMetrics(t *testing.T) {
	_, exec, reader, s := newTestScanner(t)

	_, err := s.InstallSchedule(context.Background(), []scanner.BackgroundRequest{background(20*time.Second, nil, 2412)})
	require.NoError(t, err)
	exec.EXPECT().StartBackground(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("radio off"))
	require.Error(t, s.StartBackground(context.Background()))

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))

	counts := map[string]int64{}
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if m.Name != "wifiscan.scanner.operations" {
				continue
			}
			sum, ok := m.Data.(metricdata.Sum[int64])
			require.True(t, ok)
			for _, dp := range sum.DataPoints {
				op, _ := dp.Attributes.Value(attribute.Key("operation"))
				success, _ := dp.Attributes.Value(attribute.Key("ok"))
				key := op.AsString()
				if !success.AsBool() {
					key += ":failed"
				}
				counts[key] += dp.Value
			}
		}
	}
	require.Equal(t, map[string]int64{"install": 1, "start:failed": 1}, counts)
}
