package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"wifiscan/internal/config"
	"wifiscan/pkg/domain"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoadAppliesDefaults(t *testing.T) {
	path := writeFile(t, "config.yaml", `
environment: production
radio:
  maxBuckets: 4
executor:
  defaultPeriod: 1m
`)

	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, "production", cfg.Environment)
	require.Equal(t, 4, cfg.Radio.MaxBuckets)
	require.Equal(t, 16, cfg.Radio.MaxChannelsPerBucket)
	require.Equal(t, 32, cfg.Radio.MaxApPerScan)
	require.Equal(t, 10, cfg.Radio.MaxScanCacheSize)
	require.Equal(t, 100, cfg.Scheduler.ReportThresholdPercent)
	require.Equal(t, 10, cfg.Executor.BufferCapacity)
	require.Equal(t, time.Minute, cfg.Executor.DefaultPeriod)
	require.Equal(t, ":8080", cfg.HTTP.Addr)
	require.Equal(t, "/metrics", cfg.HTTP.MetricsPath)
	require.Equal(t, []string{"*"}, cfg.HTTP.AllowedOrigins)
	require.True(t, cfg.HTTP.EnablePprof)
	require.Equal(t, 10*time.Second, cfg.GracefulShutdownTimeout)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("RADIO_MAX_BUCKETS", "2")
	t.Setenv("SIMULATION_SEED", "99")
	path := writeFile(t, "config.yaml", "radio:\n  maxBuckets: 8\n")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, 2, cfg.Radio.MaxBuckets)
	require.Equal(t, int64(99), cfg.Simulation.Seed)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestLoadRequests(t *testing.T) {
	path := writeFile(t, "requests.yaml", `
requests:
  - name: location
    period: 20s
    band: 24ghz
    reportEvents: [afterEachScan, fullResult]
    maxBssids: 8
  - name: backoff
    period: 30s
    maxPeriod: 5m
    stepCount: 3
    frequencies: [2412, 5180]
    maxScansToCache: 4
hotlist:
  lostThreshold: 2
  minEvents: 1
  networks:
    - bssid: "02:00:00:00:00:01"
      low: -70
`)

	f, err := config.LoadRequests(path)
	require.NoError(t, err)

	reqs, err := f.ScanRequests()
	require.NoError(t, err)
	require.Len(t, reqs, 2)

	require.Equal(t, 20*time.Second, reqs[0].Period)
	require.Equal(t, domain.ChannelSpec{Band: domain.Band24GHz}, reqs[0].Channels)
	require.Equal(t, domain.ReportAfterEachScan|domain.ReportFullResult, reqs[0].ReportEvents)
	require.Equal(t, 8, reqs[0].MaxBSSIDs)

	require.True(t, reqs[1].IsBackoff())
	require.Equal(t, 5*time.Minute, reqs[1].MaxPeriod)
	require.Equal(t, 3, reqs[1].StepCount)
	require.Equal(t, []int{2412, 5180}, reqs[1].Channels.Frequencies)
	require.Equal(t, 4, reqs[1].MaxScansToCache)
	require.NotEqual(t, reqs[0].ID, reqs[1].ID)

	hl, ok := f.HotlistSettings()
	require.True(t, ok)
	require.Equal(t, domain.HotlistSettings{
		Networks:      []domain.HotlistNetwork{{BSSID: "02:00:00:00:00:01", Low: -70}},
		LostThreshold: 2,
		MinEvents:     1,
	}, hl)
}

func TestLoadRequestsInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "unknown band", content: "requests:\n  - name: a\n    period: 20s\n    band: 60ghz\n"},
		{name: "unknown event", content: "requests:\n  - name: a\n    period: 20s\n    band: both\n    reportEvents: [never]\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := config.LoadRequests(writeFile(t, "requests.yaml", tt.content))
			require.NoError(t, err)
			_, err = f.ScanRequests()
			require.Error(t, err)
		})
	}

	_, err := config.LoadRequests(writeFile(t, "requests.yaml", "requests: [\n"))
	require.Error(t, err)

	f, err := config.LoadRequests(writeFile(t, "requests.yaml", "requests: []\n"))
	require.NoError(t, err)
	_, ok := f.HotlistSettings()
	require.False(t, ok)
}
