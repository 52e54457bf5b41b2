// Package metrics exposes search, fetch, cache and mention counters to Prometheus.
package metrics

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.trai.ch/degrees/internal/core/domain"
	"go.trai.ch/zerr"
)

const namespace = "degrees"

// Prometheus implements ports.Metrics on a private registry.
type Prometheus struct {
	registry *prometheus.Registry

	searches      *prometheus.CounterVec
	searchSeconds *prometheus.HistogramVec
	searchDegrees prometheus.Histogram
	fetches       *prometheus.CounterVec
	cacheLookups  *prometheus.CounterVec
	mentions      *prometheus.CounterVec
}

// New creates a Prometheus recorder with Go and process collectors registered.
func New() *Prometheus {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Prometheus{
		registry: reg,
		searches: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "searches_total",
			Help:      "Connection searches by outcome and not-connected reason.",
		}, []string{"outcome", "reason"}),
		searchSeconds: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "search_duration_seconds",
			Help:      "Wall time of connection searches.",
			Buckets:   []float64{0.1, 0.5, 1, 2.5, 5, 10, 30, 60, 120},
		}, []string{"outcome"}),
		searchDegrees: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "search_degrees",
			Help:      "Degrees of separation of connected searches.",
			Buckets:   prometheus.LinearBuckets(0, 1, domain.DefaultMaxDepth+1),
		}),
		fetches: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "neighbor_fetches_total",
			Help:      "Neighbor fetches by outcome.",
		}, []string{"outcome"}),
		cacheLookups: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cache_lookups_total",
			Help:      "Neighbor cache lookups by result.",
		}, []string{"result"}),
		mentions: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "mentions_total",
			Help:      "Mentions handled by the listener, by outcome.",
		}, []string{"outcome"}),
	}
}

// ObserveSearch records a finished search.
func (p *Prometheus) ObserveSearch(outcome, reason string, degrees int, elapsed time.Duration) {
	p.searches.WithLabelValues(outcome, reason).Inc()
	p.searchSeconds.WithLabelValues(outcome).Observe(elapsed.Seconds())
	if degrees >= 0 {
		p.searchDegrees.Observe(float64(degrees))
	}
}

// ObserveFetch records one neighbor fetch.
func (p *Prometheus) ObserveFetch(outcome string) {
	p.fetches.WithLabelValues(outcome).Inc()
}

// ObserveCacheLookup records a cache hit or miss.
func (p *Prometheus) ObserveCacheLookup(hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	p.cacheLookups.WithLabelValues(result).Inc()
}

// ObserveMention records how a mention was handled.
func (p *Prometheus) ObserveMention(outcome string) {
	p.mentions.WithLabelValues(outcome).Inc()
}

// Registry returns the registry backing the recorder.
func (p *Prometheus) Registry() *prometheus.Registry {
	return p.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (p *Prometheus) Handler() http.Handler {
	return promhttp.HandlerFor(p.registry, promhttp.HandlerOpts{Registry: p.registry})
}

// Serve exposes /metrics on addr until ctx is done.
func (p *Prometheus) Serve(ctx context.Context, addr string) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", p.Handler())

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrMetricsServerFailed.Error()), "addr", addr)
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Serve(ln) }()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return zerr.With(zerr.Wrap(err, domain.ErrMetricsServerFailed.Error()), "addr", addr)
	}
}
