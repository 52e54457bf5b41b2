package ports

import "time"

// Metrics records counters for searches, fetches and the listener.
//
//go:generate mockgen -source=metrics.go -destination=mocks/mock_metrics.go -package=mocks
type Metrics interface {
	// ObserveSearch records a finished search.
	ObserveSearch(outcome, reason string, degrees int, elapsed time.Duration)
	// ObserveFetch records a neighbor fetch outcome ("ok" or a fetch error kind).
	ObserveFetch(outcome string)
	// ObserveCacheLookup records a neighbor cache hit or miss.
	ObserveCacheLookup(hit bool)
	// ObserveMention records how a mention was handled.
	ObserveMention(outcome string)
}
