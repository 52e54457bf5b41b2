package nostr

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"go.trai.ch/degrees/internal/core/domain"
	"go.trai.ch/degrees/internal/core/ports"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

// Querier runs REQ subscriptions to completion.
type Querier interface {
	Query(ctx context.Context, filters ...Filter) ([]*Event, error)
}

// Publisher sends signed events.
type Publisher interface {
	Publish(ctx context.Context, ev *Event) error
}

// PoolOptions tunes a Pool.
type PoolOptions struct {
	DialTimeout time.Duration
	// QueriesPerSecond throttles Query across all relays. Zero disables the throttle.
	QueriesPerSecond float64
}

// Pool fans requests out to a fixed set of relays and redials dropped connections.
type Pool struct {
	members []*member
	limiter *rate.Limiter
	logger  ports.Logger
}

type member struct {
	url     string
	timeout time.Duration
	logger  ports.Logger

	mu    sync.Mutex
	relay *Relay
}

func (m *member) get(ctx context.Context) (*Relay, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.relay != nil && !m.relay.Closed() {
		return m.relay, nil
	}
	r, err := DialRelay(ctx, m.url, m.timeout, m.logger)
	if err != nil {
		return nil, err
	}
	m.relay = r
	return r, nil
}

func (m *member) close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.relay == nil {
		return nil
	}
	err := m.relay.Close()
	m.relay = nil
	return err
}

// NewPool creates a pool over urls. No connection is opened until Connect or the first request.
func NewPool(urls []string, opts PoolOptions, logger ports.Logger) (*Pool, error) {
	if len(urls) == 0 {
		return nil, domain.ErrNoRelays
	}

	limit := rate.Inf
	burst := 1
	if opts.QueriesPerSecond > 0 {
		limit = rate.Limit(opts.QueriesPerSecond)
		burst = max(1, int(opts.QueriesPerSecond))
	}

	p := &Pool{limiter: rate.NewLimiter(limit, burst), logger: logger}
	for _, u := range slices.Compact(slices.Sorted(slices.Values(urls))) {
		p.members = append(p.members, &member{url: u, timeout: opts.DialTimeout, logger: logger})
	}
	return p, nil
}

// Connect dials every relay and succeeds when at least one connection is open.
func (p *Pool) Connect(ctx context.Context) error {
	return p.each(ctx, func(ctx context.Context, r *Relay) error { return nil })
}

// Query runs filters on every relay and merges the results, newest first,
// without duplicates. It fails only when every relay fails.
func (p *Pool) Query(ctx context.Context, filters ...Filter) ([]*Event, error) {
	if err := p.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	var (
		mu   sync.Mutex
		seen = make(map[string]*Event)
	)
	err := p.each(ctx, func(ctx context.Context, r *Relay) error {
		events, err := r.Query(ctx, filters...)
		if err != nil {
			return err
		}
		mu.Lock()
		for _, ev := range events {
			seen[ev.ID] = ev
		}
		mu.Unlock()
		return nil
	})
	if err != nil {
		return nil, err
	}

	out := make([]*Event, 0, len(seen))
	for _, ev := range seen {
		out = append(out, ev)
	}
	slices.SortFunc(out, func(a, b *Event) int {
		if c := cmp.Compare(b.CreatedAt, a.CreatedAt); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
	return out, nil
}

// Publish sends ev to every relay and succeeds when at least one accepts it.
func (p *Pool) Publish(ctx context.Context, ev *Event) error {
	return p.each(ctx, func(ctx context.Context, r *Relay) error {
		return r.Publish(ctx, ev)
	})
}

// Close closes every open connection.
func (p *Pool) Close() error {
	var errs []error
	for _, m := range p.members {
		if err := m.close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// each runs fn on every relay concurrently. Failures on some relays are logged;
// failure on all of them is returned.
func (p *Pool) each(ctx context.Context, fn func(context.Context, *Relay) error) error {
	errs := make([]error, len(p.members))

	var g errgroup.Group
	for i, m := range p.members {
		g.Go(func() error {
			r, err := m.get(ctx)
			if err == nil {
				err = fn(ctx, r)
			}
			errs[i] = err
			return nil
		})
	}
	_ = g.Wait()

	var failed []error
	for i, err := range errs {
		if err == nil {
			continue
		}
		failed = append(failed, err)
		if ctx.Err() == nil {
			p.logger.Warn(fmt.Sprintf("relay %s: %v", p.members[i].url, err))
		}
	}
	if len(failed) < len(p.members) {
		return nil
	}
	if ctx.Err() != nil {
		return ctx.Err()
	}
	return errors.Join(append([]error{domain.ErrAllRelaysFailed}, failed...)...)
}
