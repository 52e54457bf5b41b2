package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/degrees/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"go.trai.ch/degrees/internal/adapters/graphfile" //nolint:depguard // Wired in app layer
	"go.trai.ch/degrees/internal/adapters/ledger"    //nolint:depguard // Wired in app layer
	"go.trai.ch/degrees/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.trai.ch/degrees/internal/adapters/metrics"   //nolint:depguard // Wired in app layer
	"go.trai.ch/degrees/internal/adapters/nostr"     //nolint:depguard // Wired in app layer
	"go.trai.ch/degrees/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"go.trai.ch/degrees/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			nostr.NodeID,
			graphfile.NodeID,
			ledger.NodeID,
			logger.NodeID,
			telemetry.TracerNodeID,
			metrics.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	connector, err := graft.Dep[ports.NetworkConnector](ctx)
	if err != nil {
		return nil, err
	}

	graphs, err := graft.Dep[ports.GraphSource](ctx)
	if err != nil {
		return nil, err
	}

	ledgers, err := graft.Dep[ports.LedgerOpener](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	tracer, err := graft.Dep[ports.Tracer](ctx)
	if err != nil {
		return nil, err
	}

	prom, err := graft.Dep[*metrics.Prometheus](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, connector, graphs, ledgers, log, tracer).WithMetrics(prom, prom), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	app, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return &Components{App: app, Logger: log}, nil
}
