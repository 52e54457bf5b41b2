package ports

import (
	"context"

	"go.trai.ch/degrees/internal/core/domain"
)

//go:generate mockgen -source=neighbors.go -destination=mocks/mock_neighbors.go -package=mocks

// NeighborProvider fetches the mutual relationships of an identity from the network.
type NeighborProvider interface {
	// Mutuals returns the identities that both follow and are followed by id.
	// The result never contains id. The deadline of ctx bounds the fetch.
	Mutuals(ctx context.Context, id domain.Identity) (domain.NeighborSet, error)
}

// NeighborLookup resolves neighbor sets, usually through a cache in front of a NeighborProvider.
type NeighborLookup interface {
	// GetOrFetch returns the neighbors of id, fetching them if no fresh copy is held.
	GetOrFetch(ctx context.Context, id domain.Identity) (domain.NeighborSet, error)
	// Invalidate drops any cached neighbors of id.
	Invalidate(id domain.Identity)
}
