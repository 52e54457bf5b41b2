// Package neighborcache memoizes neighbor fetches with TTL expiry,
// LRU eviction and per-identity request coalescing.
package neighborcache

import (
	"container/list"
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"go.trai.ch/degrees/internal/core/domain"
	"go.trai.ch/degrees/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/singleflight"
)

// Options configures a Cache.
type Options struct {
	// TTL is how long a fetched set stays fresh. Zero keeps entries until evicted.
	TTL time.Duration
	// Capacity bounds the number of entries. Zero means unbounded.
	Capacity int
	// FetchTimeout bounds each provider call. Zero means no timeout.
	FetchTimeout time.Duration
}

// Stats is a snapshot of cache counters.
type Stats struct {
	Hits      int64
	Misses    int64
	Fetches   int64
	Failures  int64
	Evictions int64
	Size      int
}

type entry struct {
	id        domain.Identity
	neighbors domain.NeighborSet
	fetchedAt time.Time
}

// Cache is a process-wide neighbor cache in front of a provider.
// It is safe for concurrent use.
type Cache struct {
	provider ports.NeighborProvider
	metrics  ports.Metrics
	opts     Options

	mu      sync.Mutex
	entries map[domain.Identity]*list.Element
	lru     *list.List
	flight  singleflight.Group

	hits      atomic.Int64
	misses    atomic.Int64
	fetches   atomic.Int64
	failures  atomic.Int64
	evictions atomic.Int64
}

// New creates a cache over provider. metrics may be nil.
func New(provider ports.NeighborProvider, opts Options, metrics ports.Metrics) *Cache {
	return &Cache{
		provider: provider,
		metrics:  metrics,
		opts:     opts,
		entries:  make(map[domain.Identity]*list.Element),
		lru:      list.New(),
	}
}

// GetOrFetch returns the fresh cached neighbors of id or fetches them.
//
// Concurrent calls for the same id share one provider call. The provider call
// is not cancelled when the caller that started it gives up; it is bounded by
// the fetch timeout instead. Each caller stops waiting when its own ctx ends.
// Failed fetches are not cached.
func (c *Cache) GetOrFetch(ctx context.Context, id domain.Identity) (domain.NeighborSet, error) {
	if ns, ok := c.lookup(id); ok {
		c.hits.Add(1)
		c.observeLookup(true)
		return ns, nil
	}
	c.misses.Add(1)
	c.observeLookup(false)

	ch := c.flight.DoChan(string(id), func() (any, error) {
		// Double check cache
		if ns, ok := c.lookup(id); ok {
			return ns, nil
		}
		return c.fetch(context.WithoutCancel(ctx), id)
	})

	select {
	case res := <-ch:
		if res.Err != nil {
			return domain.NeighborSet{}, res.Err
		}
		return res.Val.(domain.NeighborSet), nil
	case <-ctx.Done():
		return domain.NeighborSet{}, fetchError(id, ctx.Err())
	}
}

// Invalidate drops the entry for id, if any.
func (c *Cache) Invalidate(id domain.Identity) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if el, ok := c.entries[id]; ok {
		c.lru.Remove(el)
		delete(c.entries, id)
	}
}

// Stats returns a snapshot of the cache counters.
func (c *Cache) Stats() Stats {
	c.mu.Lock()
	size := len(c.entries)
	c.mu.Unlock()

	return Stats{
		Hits:      c.hits.Load(),
		Misses:    c.misses.Load(),
		Fetches:   c.fetches.Load(),
		Failures:  c.failures.Load(),
		Evictions: c.evictions.Load(),
		Size:      size,
	}
}

func (c *Cache) fetch(ctx context.Context, id domain.Identity) (domain.NeighborSet, error) {
	if c.opts.FetchTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.opts.FetchTimeout)
		defer cancel()
	}

	c.fetches.Add(1)
	ns, err := c.provider.Mutuals(ctx, id)
	if err == nil && ctx.Err() != nil {
		err = ctx.Err()
	}
	if err != nil {
		c.failures.Add(1)
		err = fetchError(id, err)
		c.observeFetch(domain.ClassifyFetchError(err).String())
		return domain.NeighborSet{}, err
	}

	ns = ns.Without(id)
	c.store(id, ns)
	c.observeFetch("ok")
	return ns, nil
}

func (c *Cache) lookup(id domain.Identity) (domain.NeighborSet, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	el, ok := c.entries[id]
	if !ok {
		return domain.NeighborSet{}, false
	}

	e := el.Value.(*entry)
	if c.opts.TTL > 0 && time.Since(e.fetchedAt) >= c.opts.TTL {
		c.lru.Remove(el)
		delete(c.entries, id)
		return domain.NeighborSet{}, false
	}

	c.lru.MoveToFront(el)
	return e.neighbors, true
}

func (c *Cache) store(id domain.Identity, ns domain.NeighborSet) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e := &entry{id: id, neighbors: ns, fetchedAt: time.Now()}
	if el, ok := c.entries[id]; ok {
		// Entries are replaced, never mutated.
		el.Value = e
		c.lru.MoveToFront(el)
		return
	}
	c.entries[id] = c.lru.PushFront(e)

	for c.opts.Capacity > 0 && c.lru.Len() > c.opts.Capacity {
		oldest := c.lru.Back()
		c.lru.Remove(oldest)
		delete(c.entries, oldest.Value.(*entry).id)
		c.evictions.Add(1)
	}
}

func (c *Cache) observeLookup(hit bool) {
	if c.metrics != nil {
		c.metrics.ObserveCacheLookup(hit)
	}
}

func (c *Cache) observeFetch(outcome string) {
	if c.metrics != nil {
		c.metrics.ObserveFetch(outcome)
	}
}

// fetchError joins err with the fetch sentinel matching it.
func fetchError(id domain.Identity, err error) error {
	kind := domain.ClassifyFetchError(err)
	if errors.Is(err, context.Canceled) {
		kind = domain.FetchTimeout
	}

	sentinel := domain.FetchSentinel(kind)
	if errors.Is(err, sentinel) {
		return err
	}
	return errors.Join(sentinel, zerr.With(err, "identity", id.String()))
}
