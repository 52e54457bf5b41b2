package ports

import (
	"context"
	"time"

	"go.trai.ch/degrees/internal/core/domain"
)

//go:generate mockgen -source=network.go -destination=mocks/mock_network.go -package=mocks

// MentionSource lists notes that mention the bot.
type MentionSource interface {
	// Mentions returns notes addressed to the bot created at or after since.
	Mentions(ctx context.Context, since time.Time) ([]domain.Mention, error)
}

// ReplyPublisher posts replies on behalf of the bot.
type ReplyPublisher interface {
	// Reply publishes content as a reply to mention.
	Reply(ctx context.Context, mention domain.Mention, content string) error
}

// Network is a connected social network session.
type Network interface {
	NeighborProvider
	MentionSource
	ReplyPublisher
	// Self returns the identity of the bot, or the zero identity without a key.
	Self() domain.Identity
	// Close releases all connections.
	Close() error
}

// NetworkConnector opens network sessions.
type NetworkConnector interface {
	// Connect opens a session using the relay settings and secret key of cfg.
	Connect(ctx context.Context, cfg domain.Config) (Network, error)
}

// GraphSource loads offline graphs.
type GraphSource interface {
	// Open loads the graph stored at path.
	Open(path string) (NeighborProvider, error)
}
