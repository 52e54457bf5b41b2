package app

import (
	"context"
	"fmt"

	"go.trai.ch/degrees/internal/core/domain"
	"go.trai.ch/degrees/internal/core/ports"
	"go.trai.ch/degrees/internal/engine/finder"
	"go.trai.ch/degrees/internal/engine/neighborcache"
)

// searcher runs searches over one shared cache.
type searcher struct {
	app      *App
	cache    *neighborcache.Cache
	finder   *finder.Finder
	opts     finder.SearchOptions
	verify   bool
	attempts int
}

func (a *App) newCache(cfg domain.Config, provider ports.NeighborProvider) *neighborcache.Cache {
	return neighborcache.New(provider, neighborcache.Options{
		TTL:          cfg.Cache.TTL,
		Capacity:     cfg.Cache.Capacity,
		FetchTimeout: cfg.Search.FetchTimeout,
	}, a.metrics)
}

func (a *App) newSearcher(cfg domain.Config, provider ports.NeighborProvider, tracer ports.Tracer) *searcher {
	cache := a.newCache(cfg, provider)
	return &searcher{
		app:    a,
		cache:  cache,
		finder: finder.New(cache, a.logger, tracer, cfg.Search.FetchConcurrency),
		opts: finder.SearchOptions{
			MaxDepth: cfg.Search.MaxDepth,
			Timeout:  cfg.Search.SearchTimeout,
		},
		verify:   cfg.Search.VerifyPath,
		attempts: max(cfg.Search.VerifyAttempts, 1),
	}
}

// search runs Find and, when verification is on, retries while the found
// path no longer holds.
func (s *searcher) search(ctx context.Context, source, target domain.Identity) (domain.SearchResult, error) {
	start := s.app.now()

	var res domain.SearchResult
	for attempt := 1; ; attempt++ {
		var err error
		res, err = s.finder.Find(ctx, source, target, s.opts)
		if err != nil {
			return domain.SearchResult{}, err
		}
		if !s.verify || !res.IsConnected() || s.holds(ctx, res.Path()) {
			break
		}
		if attempt >= s.attempts {
			res = domain.NotConnected(s.opts.MaxDepth, domain.ReasonStalled).WithStats(res.Stats())
			break
		}
		s.app.logger.Warn(fmt.Sprintf("path changed during search, retrying (%d/%d)", attempt, s.attempts))
	}

	s.app.metrics.ObserveSearch(res.Outcome(), res.Reason().String(), res.Degrees(), s.app.now().Sub(start))
	return res, nil
}

// holds refetches every node on path and checks that consecutive nodes are
// still mutual. A node that cannot be refetched does not break the path.
func (s *searcher) holds(ctx context.Context, path []domain.Identity) bool {
	sets := make([]domain.NeighborSet, len(path))
	known := make([]bool, len(path))
	for i, id := range path {
		s.cache.Invalidate(id)
		ns, err := s.cache.GetOrFetch(ctx, id)
		if err != nil {
			s.app.logger.Warn(fmt.Sprintf("cannot verify %s: %v", id.Short(), err))
			continue
		}
		sets[i], known[i] = ns, true
	}

	for i := 0; i+1 < len(path); i++ {
		if known[i] && !sets[i].Contains(path[i+1]) {
			return false
		}
		if known[i+1] && !sets[i+1].Contains(path[i]) {
			return false
		}
	}
	return true
}
