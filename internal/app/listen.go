package app

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.trai.ch/degrees/internal/core/domain"
	"go.trai.ch/degrees/internal/core/ports"
	"go.trai.ch/degrees/internal/ui/reply"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Mention outcomes reported to metrics.
const (
	MentionConnected    = "connected"
	MentionNotConnected = "not_connected"
	MentionUsage        = "usage"
	MentionReplyFailed  = "reply_failed"
)

// ListenOptions configures Listen.
type ListenOptions struct {
	ConfigPath string
}

// Listen polls relays for mentions of the bot and answers each once until ctx is done.
func (a *App) Listen(ctx context.Context, opts ListenOptions) error {
	cfg, err := a.loadConfig(opts.ConfigPath)
	if err != nil {
		return err
	}
	if cfg.SecretKey == "" {
		return domain.ErrMissingSecretKey
	}

	network, err := a.connector.Connect(ctx, cfg)
	if err != nil {
		return zerr.Wrap(err, "failed to connect to relays")
	}
	defer func() { _ = network.Close() }()

	bot := network.Self()
	if bot.IsZero() {
		return domain.ErrMissingSecretKey
	}

	ledger, err := a.ledgers.Open(cfg.Listen.LedgerDir)
	if err != nil {
		return err
	}
	defer func() { _ = ledger.Close() }()

	tracer, shutdown := a.tracerFor(cfg)
	defer shutdown()

	l := &listener{
		app:     a,
		cfg:     cfg,
		bot:     bot,
		network: network,
		ledger:  ledger,
		search:  a.newSearcher(cfg, network, tracer),
		queued:  make(map[string]bool),
	}

	npub, _ := bot.Npub()
	a.logger.Info(fmt.Sprintf("listening for mentions of %s on %d relays", npub, len(cfg.Relays.URLs)))

	g, gctx := errgroup.WithContext(ctx)
	if a.server != nil && cfg.Metrics.Addr != "" {
		g.Go(func() error { return a.server.Serve(gctx, cfg.Metrics.Addr) })
	}

	queue := make(chan domain.Mention, cfg.Listen.QueueSize)
	g.Go(func() error {
		defer close(queue)
		return l.poll(gctx, queue)
	})
	for range max(cfg.Listen.Workers, 1) {
		g.Go(func() error {
			for m := range queue {
				l.handle(gctx, m)
			}
			return nil
		})
	}

	err = g.Wait()
	if ctx.Err() != nil && (err == nil || errors.Is(err, context.Canceled)) {
		a.logger.Info("listener stopped")
		return nil
	}
	return err
}

type listener struct {
	app     *App
	cfg     domain.Config
	bot     domain.Identity
	network ports.Network
	ledger  ports.Ledger
	search  *searcher

	mu     sync.Mutex
	queued map[string]bool
}

// poll fetches mentions every PollInterval, looking back two intervals so that
// late arrivals are not missed, and enqueues the ones not yet answered.
func (l *listener) poll(ctx context.Context, queue chan<- domain.Mention) error {
	interval := l.cfg.Listen.PollInterval
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		since := l.app.now().Add(-2 * interval)
		mentions, err := l.network.Mentions(ctx, since)
		switch {
		case ctx.Err() != nil:
			return nil
		case err != nil:
			l.app.logger.Warn(fmt.Sprintf("polling mentions failed: %v", err))
		default:
			for _, m := range mentions {
				if !l.claim(m) {
					continue
				}
				select {
				case queue <- m:
				case <-ctx.Done():
					return nil
				}
			}
		}

		select {
		case <-ticker.C:
		case <-ctx.Done():
			return nil
		}
	}
}

// claim reports whether m should be queued, marking it as in flight.
func (l *listener) claim(m domain.Mention) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.queued[m.ID] {
		return false
	}
	answered, err := l.ledger.Answered(m.ID)
	if err != nil {
		l.app.logger.Error(err)
		return false
	}
	if answered {
		return false
	}
	l.queued[m.ID] = true
	return true
}

func (l *listener) release(id string) {
	l.mu.Lock()
	delete(l.queued, id)
	l.mu.Unlock()
}

// handle answers one mention and records it in the ledger.
func (l *listener) handle(ctx context.Context, m domain.Mention) {
	defer l.release(m.ID)

	outcome, content, ok := l.answer(ctx, m)
	if !ok || ctx.Err() != nil {
		return
	}

	if err := l.network.Reply(ctx, m, content); err != nil {
		l.app.metrics.ObserveMention(MentionReplyFailed)
		l.app.logger.Error(zerr.With(zerr.Wrap(err, "failed to reply"), "mention", m.ID))
		return
	}
	if err := l.ledger.MarkAnswered(m.ID); err != nil {
		l.app.logger.Error(err)
	}

	l.app.metrics.ObserveMention(outcome)
	l.app.logger.Info(fmt.Sprintf("answered %s from %s: %s", m.ID, m.Author.Short(), outcome))
}

func (l *listener) answer(ctx context.Context, m domain.Mention) (outcome, content string, ok bool) {
	source, target, err := m.Targets(l.bot)
	if err != nil {
		return MentionUsage, reply.Usage(err), true
	}

	res, err := l.search.search(ctx, source, target)
	if err != nil {
		l.app.logger.Error(zerr.With(err, "mention", m.ID))
		return "", "", false
	}
	if res.IsConnected() {
		return MentionConnected, reply.Note(res), true
	}
	return MentionNotConnected, reply.Note(res), true
}
