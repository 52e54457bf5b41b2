package nostr

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/degrees/internal/adapters/logger"
	"go.trai.ch/degrees/internal/core/ports"
)

// NodeID is the unique identifier for the relay connector Graft node.
const NodeID graft.ID = "adapter.nostr"

func init() {
	graft.Register(graft.Node[ports.NetworkConnector]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.NetworkConnector, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewConnector(log), nil
		},
	})
}
