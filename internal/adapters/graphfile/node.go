package graphfile

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/degrees/internal/core/ports"
)

// NodeID is the unique identifier for the graph file Graft node.
const NodeID graft.ID = "adapter.graphfile"

func init() {
	graft.Register(graft.Node[ports.GraphSource]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.GraphSource, error) {
			return Source{}, nil
		},
	})
}
