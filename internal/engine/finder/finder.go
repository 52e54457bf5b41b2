// Package finder implements the bounded bidirectional search over the mutual-follow graph.
package finder

import (
	"context"
	"fmt"
	"slices"
	"time"

	"go.trai.ch/degrees/internal/core/domain"
	"go.trai.ch/degrees/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency is the number of concurrent fetches per round when none is set.
const DefaultConcurrency = 8

// SearchOptions bounds a single search.
type SearchOptions struct {
	// MaxDepth is the longest path, in hops, the search may return.
	MaxDepth int
	// Timeout bounds the whole search. Zero means no bound besides ctx.
	Timeout time.Duration
}

// Finder searches for the shortest chain of mutual relationships between two identities.
type Finder struct {
	lookup      ports.NeighborLookup
	logger      ports.Logger
	tracer      ports.Tracer
	concurrency int
}

// New creates a Finder resolving neighbors through lookup.
// concurrency bounds the fetches issued per round.
func New(lookup ports.NeighborLookup, logger ports.Logger, tracer ports.Tracer, concurrency int) *Finder {
	if concurrency < 1 {
		concurrency = DefaultConcurrency
	}
	return &Finder{
		lookup:      lookup,
		logger:      logger,
		tracer:      tracer,
		concurrency: concurrency,
	}
}

// Find returns the shortest path from source to target within opts.MaxDepth hops.
//
// Fetch failures never surface as errors; they shrink the explored graph and may
// turn the result into NotConnected. The only errors are invalid arguments,
// reported before any fetch is issued.
func (f *Finder) Find(
	ctx context.Context,
	source, target domain.Identity,
	opts SearchOptions,
) (domain.SearchResult, error) {
	if source.IsZero() || target.IsZero() {
		return domain.SearchResult{}, zerr.With(
			zerr.With(domain.ErrInvalidIdentity, "source", source.String()),
			"target", target.String(),
		)
	}
	if opts.MaxDepth < 1 {
		return domain.SearchResult{}, zerr.With(domain.ErrInvalidMaxDepth, "max_depth", opts.MaxDepth)
	}

	if source == target {
		return domain.Connected([]domain.Identity{source}).WithStats(domain.SearchStats{Visited: 1}), nil
	}

	if opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
	}

	ctx, span := f.tracer.Start(ctx, "finder.find")
	defer span.End()
	span.SetAttribute("source", source.String())
	span.SetAttribute("target", target.String())
	span.SetAttribute("max_depth", opts.MaxDepth)

	s := newSearch(source, target)
	res := f.run(ctx, s, opts.MaxDepth)

	span.SetAttribute("outcome", res.Outcome())
	span.SetAttribute("degrees", res.Degrees())
	span.SetAttribute("reason", res.Reason().String())
	span.SetAttribute("rounds", s.stats.Rounds)
	span.SetAttribute("fetched", s.stats.Fetched)
	return res, nil
}

func (f *Finder) run(ctx context.Context, s *search, maxDepth int) domain.SearchResult {
	for {
		if ctx.Err() != nil {
			return s.notConnected(maxDepth, domain.ReasonTimedOut)
		}
		if s.fwd.depth+s.bwd.depth+1 > maxDepth {
			return s.notConnected(maxDepth, domain.ReasonDepthExhausted)
		}

		side, other := s.pick()
		if side == nil {
			if s.fwd.stalled || s.bwd.stalled {
				return s.notConnected(maxDepth, domain.ReasonStalled)
			}
			return s.notConnected(maxDepth, domain.ReasonFrontierExhausted)
		}

		meeting, ok := f.expand(ctx, s, side, other)
		if ok {
			return domain.Connected(s.path(meeting)).WithStats(s.finalStats())
		}
	}
}

// expand fetches the neighbors of every node on side's frontier and merges them.
// It reports the meeting point of the round, if any.
func (f *Finder) expand(ctx context.Context, s *search, side, other *frontier) (domain.Identity, bool) {
	s.stats.Rounds++
	nodes := side.nodes
	results := make([]domain.NeighborSet, len(nodes))
	failed := make([]bool, len(nodes))

	g := &errgroup.Group{}
	g.SetLimit(f.concurrency)
	for i, node := range nodes {
		g.Go(func() error {
			ns, err := f.lookup.GetOrFetch(ctx, node)
			if err != nil {
				failed[i] = true
				f.logger.Warn(fmt.Sprintf("skipping %s: %v", node.Short(), err))
				return nil
			}
			results[i] = ns
			return nil
		})
	}
	_ = g.Wait()

	var (
		next      []domain.Identity
		meeting   domain.Identity
		bestDepth = -1
		progress  bool
	)
	for i, node := range nodes {
		s.stats.Fetched++
		if failed[i] {
			s.stats.Failed++
			continue
		}
		progress = true

		for nb := range results[i].All() {
			if _, seen := side.visited[nb]; seen {
				continue
			}
			side.visited[nb] = visit{parent: node, hasParent: true, depth: side.depth + 1}
			next = append(next, nb)

			if v, ok := other.visited[nb]; ok {
				total := side.depth + 1 + v.depth
				if bestDepth < 0 || total < bestDepth {
					meeting, bestDepth = nb, total
				}
			}
		}
	}

	if !progress {
		// Every fetch failed: keep the frontier for a later round.
		side.stalled = true
		return "", false
	}

	side.nodes = next
	side.depth++
	side.stalled = false
	other.stalled = false
	return meeting, bestDepth >= 0
}

type visit struct {
	parent    domain.Identity
	hasParent bool
	depth     int
}

type frontier struct {
	visited map[domain.Identity]visit
	nodes   []domain.Identity
	depth   int
	stalled bool
}

func newFrontier(root domain.Identity) *frontier {
	return &frontier{
		visited: map[domain.Identity]visit{root: {}},
		nodes:   []domain.Identity{root},
	}
}

func (fr *frontier) eligible() bool {
	return len(fr.nodes) > 0 && !fr.stalled
}

// search is the state of one Find call.
type search struct {
	fwd   *frontier
	bwd   *frontier
	stats domain.SearchStats
}

func newSearch(source, target domain.Identity) *search {
	return &search{fwd: newFrontier(source), bwd: newFrontier(target)}
}

// pick returns the side to expand next and its opposite.
// The smaller eligible frontier wins; ties go to the source side.
func (s *search) pick() (side, other *frontier) {
	switch {
	case s.fwd.eligible() && s.bwd.eligible():
		if len(s.bwd.nodes) < len(s.fwd.nodes) {
			return s.bwd, s.fwd
		}
		return s.fwd, s.bwd
	case s.fwd.eligible():
		return s.fwd, s.bwd
	case s.bwd.eligible():
		return s.bwd, s.fwd
	default:
		return nil, nil
	}
}

// path joins the source-side chain ending at meeting with the target-side chain starting after it.
func (s *search) path(meeting domain.Identity) []domain.Identity {
	var out []domain.Identity
	for cur := meeting; ; {
		out = append(out, cur)
		v := s.fwd.visited[cur]
		if !v.hasParent {
			break
		}
		cur = v.parent
	}
	slices.Reverse(out)

	for cur := meeting; ; {
		v := s.bwd.visited[cur]
		if !v.hasParent {
			break
		}
		cur = v.parent
		out = append(out, cur)
	}
	return out
}

func (s *search) finalStats() domain.SearchStats {
	stats := s.stats
	stats.Visited = len(s.fwd.visited) + len(s.bwd.visited)
	return stats
}

func (s *search) notConnected(maxDepth int, reason domain.NotConnectedReason) domain.SearchResult {
	return domain.NotConnected(maxDepth, reason).WithStats(s.finalStats())
}
