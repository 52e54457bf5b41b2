package config

import (
	"time"

	"go.trai.ch/degrees/internal/core/domain"
)

// File is the structure of degrees.yaml.
type File struct {
	Search    SearchDTO    `yaml:"search"`
	Cache     CacheDTO     `yaml:"cache"`
	Relays    RelaysDTO    `yaml:"relays"`
	Listen    ListenDTO    `yaml:"listen"`
	Metrics   MetricsDTO   `yaml:"metrics"`
	Telemetry TelemetryDTO `yaml:"telemetry"`
}

// SearchDTO bounds a connection search.
type SearchDTO struct {
	MaxDepth         int           `yaml:"max_depth" validate:"gte=1,lte=12"`
	FetchTimeout     time.Duration `yaml:"fetch_timeout" validate:"gt=0"`
	SearchTimeout    time.Duration `yaml:"search_timeout" validate:"gt=0"`
	FetchConcurrency int           `yaml:"fetch_concurrency" validate:"gte=1,lte=64"`
	VerifyPath       bool          `yaml:"verify_path"`
	VerifyAttempts   int           `yaml:"verify_attempts" validate:"gte=1,lte=5"`
}

// CacheDTO tunes the neighbor cache.
type CacheDTO struct {
	TTL      time.Duration `yaml:"ttl" validate:"gte=0"`
	Capacity int           `yaml:"capacity" validate:"gte=0"`
}

// RelaysDTO lists relays.
type RelaysDTO struct {
	URLs             []string      `yaml:"urls" validate:"required,min=1,dive,url"`
	QueriesPerSecond float64       `yaml:"queries_per_second" validate:"gt=0"`
	DialTimeout      time.Duration `yaml:"dial_timeout" validate:"gt=0"`
}

// ListenDTO tunes the mention listener.
type ListenDTO struct {
	PollInterval time.Duration `yaml:"poll_interval" validate:"gt=0"`
	Workers      int           `yaml:"workers" validate:"gte=1,lte=64"`
	QueueSize    int           `yaml:"queue_size" validate:"gte=1"`
	LedgerDir    string        `yaml:"ledger_dir" validate:"required"`
}

// MetricsDTO configures the metrics endpoint.
type MetricsDTO struct {
	Addr string `yaml:"addr"`
}

// TelemetryDTO configures trace export.
type TelemetryDTO struct {
	Stdout bool `yaml:"stdout"`
}

func fromDomain(c domain.Config) File {
	return File{
		Search: SearchDTO{
			MaxDepth:         c.Search.MaxDepth,
			FetchTimeout:     c.Search.FetchTimeout,
			SearchTimeout:    c.Search.SearchTimeout,
			FetchConcurrency: c.Search.FetchConcurrency,
			VerifyPath:       c.Search.VerifyPath,
			VerifyAttempts:   c.Search.VerifyAttempts,
		},
		Cache: CacheDTO{TTL: c.Cache.TTL, Capacity: c.Cache.Capacity},
		Relays: RelaysDTO{
			URLs:             c.Relays.URLs,
			QueriesPerSecond: c.Relays.QueriesPerSecond,
			DialTimeout:      c.Relays.DialTimeout,
		},
		Listen: ListenDTO{
			PollInterval: c.Listen.PollInterval,
			Workers:      c.Listen.Workers,
			QueueSize:    c.Listen.QueueSize,
			LedgerDir:    c.Listen.LedgerDir,
		},
		Metrics:   MetricsDTO{Addr: c.Metrics.Addr},
		Telemetry: TelemetryDTO{Stdout: c.Telemetry.Stdout},
	}
}

func (f *File) toDomain(secretKey string) domain.Config {
	return domain.Config{
		Search: domain.SearchConfig{
			MaxDepth:         f.Search.MaxDepth,
			FetchTimeout:     f.Search.FetchTimeout,
			SearchTimeout:    f.Search.SearchTimeout,
			FetchConcurrency: f.Search.FetchConcurrency,
			VerifyPath:       f.Search.VerifyPath,
			VerifyAttempts:   f.Search.VerifyAttempts,
		},
		Cache: domain.CacheConfig{TTL: f.Cache.TTL, Capacity: f.Cache.Capacity},
		Relays: domain.RelayConfig{
			URLs:             f.Relays.URLs,
			QueriesPerSecond: f.Relays.QueriesPerSecond,
			DialTimeout:      f.Relays.DialTimeout,
		},
		Listen: domain.ListenConfig{
			PollInterval: f.Listen.PollInterval,
			Workers:      f.Listen.Workers,
			QueueSize:    f.Listen.QueueSize,
			LedgerDir:    f.Listen.LedgerDir,
		},
		Metrics:   domain.MetricsConfig{Addr: f.Metrics.Addr},
		Telemetry: domain.TelemetryConfig{Stdout: f.Telemetry.Stdout},
		SecretKey: secretKey,
	}
}
