package domain

import "time"

// DefaultRelays are queried when no relay is configured.
var DefaultRelays = []string{
	"wss://relay.damus.io",
	"wss://relay.primal.net",
	"wss://nos.lol",
	"wss://strfry.iris.to",
}

// Config is the resolved runtime configuration.
type Config struct {
	Search    SearchConfig
	Cache     CacheConfig
	Relays    RelayConfig
	Listen    ListenConfig
	Metrics   MetricsConfig
	Telemetry TelemetryConfig

	// SecretKey is the bot key as nsec or hex. Only needed to listen and reply.
	SecretKey string
}

// SearchConfig bounds a single connection search.
type SearchConfig struct {
	MaxDepth         int
	FetchTimeout     time.Duration
	SearchTimeout    time.Duration
	FetchConcurrency int
	VerifyPath       bool
	VerifyAttempts   int
}

// CacheConfig tunes the shared neighbor cache.
type CacheConfig struct {
	TTL      time.Duration
	Capacity int
}

// RelayConfig lists the relays and how hard they may be queried.
type RelayConfig struct {
	URLs             []string
	QueriesPerSecond float64
	DialTimeout      time.Duration
}

// ListenConfig tunes the mention listener.
type ListenConfig struct {
	PollInterval time.Duration
	Workers      int
	QueueSize    int
	LedgerDir    string
}

// MetricsConfig controls the Prometheus endpoint. An empty Addr disables it.
type MetricsConfig struct {
	Addr string
}

// TelemetryConfig controls trace export.
type TelemetryConfig struct {
	Stdout bool
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() Config {
	return Config{
		Search: SearchConfig{
			MaxDepth:         DefaultMaxDepth,
			FetchTimeout:     10 * time.Second,
			SearchTimeout:    2 * time.Minute,
			FetchConcurrency: 8,
			VerifyAttempts:   2,
		},
		Cache: CacheConfig{
			TTL:      30 * time.Minute,
			Capacity: 100_000,
		},
		Relays: RelayConfig{
			URLs:             append([]string(nil), DefaultRelays...),
			QueriesPerSecond: 10,
			DialTimeout:      5 * time.Second,
		},
		Listen: ListenConfig{
			PollInterval: 100 * time.Second,
			Workers:      4,
			QueueSize:    64,
			LedgerDir:    ".degrees/ledger",
		},
	}
}
