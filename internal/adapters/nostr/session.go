package nostr

import (
	"context"
	"time"

	"go.trai.ch/degrees/internal/core/domain"
	"go.trai.ch/degrees/internal/core/ports"
)

// Session implements ports.Network over a relay pool.
type Session struct {
	*MutualsProvider

	pool      *Pool
	keys      *Keys
	mentions  *MentionSource
	publisher *ReplyPublisher
}

// NewSession builds a session on pool. keys may be nil for read-only use.
func NewSession(pool *Pool, keys *Keys) *Session {
	s := &Session{
		MutualsProvider: NewMutualsProvider(pool),
		pool:            pool,
		keys:            keys,
	}
	if keys != nil {
		s.mentions = NewMentionSource(pool, keys.Public())
		s.publisher = NewReplyPublisher(pool, keys)
	}
	return s
}

// Self returns the bot identity, or the zero identity without keys.
func (s *Session) Self() domain.Identity {
	if s.keys == nil {
		return ""
	}
	return s.keys.Public()
}

// Mentions lists notes addressed to the bot.
func (s *Session) Mentions(ctx context.Context, since time.Time) ([]domain.Mention, error) {
	if s.mentions == nil {
		return nil, domain.ErrListenerUnavailable
	}
	return s.mentions.Mentions(ctx, since)
}

// Reply publishes a signed reply.
func (s *Session) Reply(ctx context.Context, m domain.Mention, content string) error {
	if s.publisher == nil {
		return domain.ErrMissingSecretKey
	}
	return s.publisher.Reply(ctx, m, content)
}

// Close closes the relay connections.
func (s *Session) Close() error {
	return s.pool.Close()
}

// Connector opens relay sessions from configuration.
type Connector struct {
	Logger ports.Logger
}

// NewConnector creates a Connector.
func NewConnector(logger ports.Logger) *Connector {
	return &Connector{Logger: logger}
}

// Connect dials the configured relays. The secret key is optional; without it
// the session can search but neither listen nor reply.
func (c *Connector) Connect(ctx context.Context, cfg domain.Config) (ports.Network, error) {
	var keys *Keys
	if cfg.SecretKey != "" {
		k, err := ParseSecretKey(cfg.SecretKey)
		if err != nil {
			return nil, err
		}
		keys = k
	}

	pool, err := NewPool(cfg.Relays.URLs, PoolOptions{
		DialTimeout:      cfg.Relays.DialTimeout,
		QueriesPerSecond: cfg.Relays.QueriesPerSecond,
	}, c.Logger)
	if err != nil {
		return nil, err
	}
	if err := pool.Connect(ctx); err != nil {
		return nil, err
	}
	return NewSession(pool, keys), nil
}
