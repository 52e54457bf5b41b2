// Package suggest ranks second-degree identities by how many mutuals they share with a root.
package suggest

import (
	"cmp"
	"context"
	"fmt"
	"slices"

	"go.trai.ch/degrees/internal/core/domain"
	"go.trai.ch/degrees/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Suggester builds suggestions from the neighbors of the root's neighbors.
type Suggester struct {
	lookup      ports.NeighborLookup
	logger      ports.Logger
	concurrency int
}

// New creates a Suggester.
func New(lookup ports.NeighborLookup, logger ports.Logger, concurrency int) *Suggester {
	return &Suggester{lookup: lookup, logger: logger, concurrency: max(concurrency, 1)}
}

// Suggest returns up to limit identities two hops from root, most shared mutuals first.
// A limit of zero returns every candidate.
func (s *Suggester) Suggest(ctx context.Context, root domain.Identity, limit int) ([]domain.Suggestion, error) {
	if root.IsZero() {
		return nil, zerr.With(domain.ErrInvalidIdentity, "identity", root.String())
	}
	if limit < 0 {
		return nil, zerr.With(domain.ErrInvalidLimit, "limit", limit)
	}

	level1, err := s.lookup.GetOrFetch(ctx, root)
	if err != nil {
		return nil, err
	}

	first := level1.Slice()
	sets := make([]domain.NeighborSet, len(first))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)
	for i, id := range first {
		g.Go(func() error {
			ns, err := s.lookup.GetOrFetch(gctx, id)
			if err != nil {
				s.logger.Warn(fmt.Sprintf("skipping %s: %v", id.Short(), err))
				return nil
			}
			sets[i] = ns
			return nil
		})
	}
	_ = g.Wait()

	shared := make(map[domain.Identity]int)
	for _, ns := range sets {
		for id := range ns.All() {
			if id == root || level1.Contains(id) {
				continue
			}
			shared[id]++
		}
	}

	out := make([]domain.Suggestion, 0, len(shared))
	for id, n := range shared {
		out = append(out, domain.Suggestion{Identity: id, Shared: n})
	}
	slices.SortFunc(out, func(a, b domain.Suggestion) int {
		if c := cmp.Compare(b.Shared, a.Shared); c != 0 {
			return c
		}
		return cmp.Compare(a.Identity, b.Identity)
	})

	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
