package ledger

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/degrees/internal/adapters/logger"
	"go.trai.ch/degrees/internal/core/ports"
)

// NodeID is the unique identifier for the ledger opener Graft node.
const NodeID graft.ID = "adapter.ledger"

func init() {
	graft.Register(graft.Node[ports.LedgerOpener]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.LedgerOpener, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return Opener{Logger: log}, nil
		},
	})
}
