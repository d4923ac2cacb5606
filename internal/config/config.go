package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config represents the application configuration structure.
// It contains settings for the environment, the radio, the scheduler and
// executor, the simulated radio, the HTTP status server, and graceful
// shutdown behavior.
type Config struct {
	// Environment specifies the current running environment (development, production, etc.)
	Environment string `env:"ENVIRONMENT" env-default:"development" yaml:"environment"`
	// LogLevel is the minimum level of emitted log entries
	LogLevel string `env:"LOG_LEVEL" env-default:"info" yaml:"logLevel"`

	// Radio holds the capability ceilings of the radio
	Radio struct {
		// MaxBuckets is the number of scan buckets the radio runs concurrently
		MaxBuckets int `env:"RADIO_MAX_BUCKETS" env-default:"16" yaml:"maxBuckets"`
		// MaxChannelsPerBucket is the longest explicit channel list a bucket may carry
		MaxChannelsPerBucket int `env:"RADIO_MAX_CHANNELS_PER_BUCKET" env-default:"16" yaml:"maxChannelsPerBucket"`
		// MaxApPerScan is the number of results the radio reports per scan
		MaxApPerScan int `env:"RADIO_MAX_AP_PER_SCAN" env-default:"32" yaml:"maxApPerScan"`
		// MaxScanCacheSize is the number of scan generations the radio can batch
		MaxScanCacheSize int `env:"RADIO_MAX_SCAN_CACHE_SIZE" env-default:"10" yaml:"maxScanCacheSize"`
	} `yaml:"radio"`

	Scheduler struct {
		// ReportThresholdPercent is the buffer fill ratio that triggers a batch report
		ReportThresholdPercent int `env:"SCHEDULER_REPORT_THRESHOLD_PERCENT" env-default:"100" yaml:"reportThresholdPercent"` //nolint: lll
	} `yaml:"scheduler"`

	Executor struct {
		// BufferCapacity is the number of background scan generations kept
		BufferCapacity int `env:"EXECUTOR_BUFFER_CAPACITY" env-default:"10" yaml:"bufferCapacity"`
		// DefaultPeriod re-arms the tick when no base period is known
		DefaultPeriod time.Duration `env:"EXECUTOR_DEFAULT_PERIOD" env-default:"30s" yaml:"defaultPeriod"`
	} `yaml:"executor"`

	// Simulation configures the in-process simulated radio
	Simulation struct {
		// AccessPoints is the number of generated virtual access points
		AccessPoints int `env:"SIMULATION_ACCESS_POINTS" env-default:"24" yaml:"accessPoints"`
		// ScanDuration is how long a simulated scan takes to complete
		ScanDuration time.Duration `env:"SIMULATION_SCAN_DURATION" env-default:"200ms" yaml:"scanDuration"`
		// FailureRate is the probability of an asynchronous scan failure
		FailureRate float64 `env:"SIMULATION_FAILURE_RATE" env-default:"0" yaml:"failureRate"`
		// DropoutRate is the probability of an access point being missed by a scan
		DropoutRate float64 `env:"SIMULATION_DROPOUT_RATE" env-default:"0.1" yaml:"dropoutRate"`
		// Jitter is the maximum signal level noise in dBm
		Jitter int `env:"SIMULATION_JITTER" env-default:"4" yaml:"jitter"`
		// Seed makes the simulation reproducible
		Seed int64 `env:"SIMULATION_SEED" env-default:"1" yaml:"seed"`
	} `yaml:"simulation"`

	// RequestsFile is the path of the YAML file listing the scan requests and hotlist
	RequestsFile string `env:"REQUESTS_FILE" env-default:"requests.yaml" yaml:"requestsFile"`

	// HTTP contains all HTTP server related configurations
	HTTP struct {
		// Addr is the address and port the HTTP server will listen on
		Addr string `env:"HTTP_ADDR" env-default:":8080" yaml:"addr"`
		// ReadTimeout is the maximum duration for reading the entire request, including the body
		ReadTimeout time.Duration `env:"HTTP_READ_TIMEOUT" env-default:"1m" yaml:"readTimeout"`
		// ReadHeaderTimeout is the amount of time allowed to read request headers
		ReadHeaderTimeout time.Duration `env:"HTTP_READ_HEADER_TIMEOUT" env-default:"10s" yaml:"readHeaderTimeout"`
		// WriteTimeout is the maximum duration before timing out writes of the response
		WriteTimeout time.Duration `env:"HTTP_WRITE_TIMEOUT" env-default:"2m" yaml:"writeTimeout"`
		// IdleTimeout is the maximum amount of time to wait for the next request when keep-alives are enabled
		IdleTimeout time.Duration `env:"HTTP_IDLE_TIMEOUT" env-default:"2m" yaml:"idleTimeout"`
		// RequestTimeout is the maximum time allowed for processing a single request
		RequestTimeout time.Duration `env:"HTTP_REQUEST_TIMEOUT" env-default:"10s" yaml:"requestTimeout"`
		// MaxHeaderBytes controls the maximum number of bytes the server will read parsing the request header
		MaxHeaderBytes int `env:"HTTP_MAX_HEADER_BYTES" env-default:"0" yaml:"maxHeaderBytes"`
		// MetricsPath defines the URL path where metrics are exposed
		MetricsPath string `env:"HTTP_METRICS_PATH" env-default:"/metrics" yaml:"metricsPath"`
		// AllowedOrigins lists the CORS origins allowed to query the status API
		AllowedOrigins []string `env:"HTTP_ALLOWED_ORIGINS" env-default:"*" env-separator:"," yaml:"allowedOrigins"`
		// EnablePprof exposes the profiling endpoints
		EnablePprof bool `env:"HTTP_ENABLE_PPROF" env-default:"true" yaml:"enablePprof"`
	} `yaml:"http"`

	// GracefulShutdownTimeout is the maximum duration to wait for ongoing requests to complete during shutdown
	GracefulShutdownTimeout time.Duration `env:"GRACEFUL_SHUTDOWN_TIMEOUT" env-default:"10s" yaml:"gracefulShutdownTimeout"` //nolint: lll
}

// Load receives the path for yaml config file and returns a filled Config struct.
func Load(configPath string) (*Config, error) {
	var cfg Config
	err := cleanenv.ReadConfig(configPath, &cfg)
	if err != nil {
		return nil, fmt.Errorf("could not read config: %w", err)
	}

	return &cfg, nil
}

// Default returns a Config filled from defaults and the environment only.
func Default() (*Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("could not read environment: %w", err)
	}

	return &cfg, nil
}
