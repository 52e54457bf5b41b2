// Package app implements the find, suggest and listen use cases.
package app

import (
	"context"
	"io"
	"os"
	"strings"
	"time"

	"go.trai.ch/degrees/internal/adapters/telemetry"
	"go.trai.ch/degrees/internal/core/domain"
	"go.trai.ch/degrees/internal/core/ports"
	"go.trai.ch/degrees/internal/engine/suggest"
	"go.trai.ch/zerr"
)

// MetricsServer exposes collected metrics over HTTP.
type MetricsServer interface {
	Serve(ctx context.Context, addr string) error
}

// App wires configuration, the neighbor sources and the search engine together.
type App struct {
	loader    ports.ConfigLoader
	connector ports.NetworkConnector
	graphs    ports.GraphSource
	ledgers   ports.LedgerOpener
	logger    ports.Logger
	tracer    ports.Tracer
	metrics   ports.Metrics
	server    MetricsServer
	traceOut  io.Writer
	now       func() time.Time
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	connector ports.NetworkConnector,
	graphs ports.GraphSource,
	ledgers ports.LedgerOpener,
	log ports.Logger,
	tracer ports.Tracer,
) *App {
	return &App{
		loader:    loader,
		connector: connector,
		graphs:    graphs,
		ledgers:   ledgers,
		logger:    log,
		tracer:    tracer,
		metrics:   nopMetrics{},
		traceOut:  os.Stderr,
		now:       time.Now,
	}
}

// WithMetrics records searches, fetches and mentions on m. srv, when not nil,
// is started by Listen if a metrics address is configured.
func (a *App) WithMetrics(m ports.Metrics, srv MetricsServer) *App {
	a.metrics = m
	a.server = srv
	return a
}

// WithClock replaces the wall clock. Used by tests.
func (a *App) WithClock(now func() time.Time) *App {
	a.now = now
	return a
}

// WithTraceOutput sets where spans go when stdout tracing is configured.
func (a *App) WithTraceOutput(w io.Writer) *App {
	a.traceOut = w
	return a
}

// SourceOptions selects the configuration and the neighbor source.
type SourceOptions struct {
	// ConfigPath is the config file. Empty means degrees.yaml if present.
	ConfigPath string
	// GraphPath switches to an offline graph file instead of relays.
	GraphPath string
}

// FindOptions configures Find.
type FindOptions struct {
	SourceOptions
	// MaxDepth overrides the configured depth when positive.
	MaxDepth int
}

// Find searches for the shortest chain of mutuals between source and target.
func (a *App) Find(ctx context.Context, source, target string, opts FindOptions) (domain.SearchResult, error) {
	cfg, err := a.loadConfig(opts.ConfigPath)
	if err != nil {
		return domain.SearchResult{}, err
	}
	if opts.MaxDepth > 0 {
		cfg.Search.MaxDepth = opts.MaxDepth
	}

	graphMode := opts.GraphPath != ""
	src, err := resolveIdentity(source, graphMode)
	if err != nil {
		return domain.SearchResult{}, err
	}
	tgt, err := resolveIdentity(target, graphMode)
	if err != nil {
		return domain.SearchResult{}, err
	}

	provider, closeFn, err := a.openProvider(ctx, cfg, opts.GraphPath)
	if err != nil {
		return domain.SearchResult{}, err
	}
	defer closeFn()

	tracer, shutdown := a.tracerFor(cfg)
	defer shutdown()

	return a.newSearcher(cfg, provider, tracer).search(ctx, src, tgt)
}

// SuggestOptions configures Suggest.
type SuggestOptions struct {
	SourceOptions
	// Limit caps the number of suggestions. Zero returns all.
	Limit int
}

// Suggest ranks identities two hops from identity by shared mutuals.
func (a *App) Suggest(ctx context.Context, identity string, opts SuggestOptions) ([]domain.Suggestion, error) {
	cfg, err := a.loadConfig(opts.ConfigPath)
	if err != nil {
		return nil, err
	}

	root, err := resolveIdentity(identity, opts.GraphPath != "")
	if err != nil {
		return nil, err
	}

	provider, closeFn, err := a.openProvider(ctx, cfg, opts.GraphPath)
	if err != nil {
		return nil, err
	}
	defer closeFn()

	cache := a.newCache(cfg, provider)
	return suggest.New(cache, a.logger, cfg.Search.FetchConcurrency).Suggest(ctx, root, opts.Limit)
}

func (a *App) loadConfig(path string) (domain.Config, error) {
	cfg, err := a.loader.Load(path)
	if err != nil {
		return domain.Config{}, zerr.Wrap(err, "failed to load configuration")
	}
	return cfg, nil
}

// openProvider returns the graph file provider when graphPath is set and a
// relay session otherwise. The returned func releases it.
func (a *App) openProvider(
	ctx context.Context,
	cfg domain.Config,
	graphPath string,
) (ports.NeighborProvider, func(), error) {
	if graphPath != "" {
		p, err := a.graphs.Open(graphPath)
		if err != nil {
			return nil, nil, err
		}
		return p, func() {}, nil
	}

	// Searching needs no key.
	cfg.SecretKey = ""
	network, err := a.connector.Connect(ctx, cfg)
	if err != nil {
		return nil, nil, zerr.Wrap(err, "failed to connect to relays")
	}
	return network, func() { _ = network.Close() }, nil
}

func (a *App) tracerFor(cfg domain.Config) (ports.Tracer, func()) {
	if !cfg.Telemetry.Stdout {
		return a.tracer, func() {}
	}
	tracer, err := telemetry.NewStdoutTracer(telemetry.InstrumentationName, a.traceOut)
	if err != nil {
		a.logger.Warn("stdout tracing unavailable: " + err.Error())
		return a.tracer, func() {}
	}
	return tracer, func() { _ = tracer.Shutdown(context.Background()) }
}

// resolveIdentity parses s as a public key. Offline graphs also accept free-form names.
func resolveIdentity(s string, graphMode bool) (domain.Identity, error) {
	id, err := domain.ParseIdentity(s)
	if err == nil {
		return id, nil
	}
	if graphMode {
		if name := domain.Identity(strings.TrimSpace(s)); !name.IsZero() {
			return name, nil
		}
	}
	return "", err
}

type nopMetrics struct{}

func (nopMetrics) ObserveSearch(string, string, int, time.Duration) {}
func (nopMetrics) ObserveFetch(string)                               {}
func (nopMetrics) ObserveCacheLookup(bool)                           {}
func (nopMetrics) ObserveMention(string)                             {}
