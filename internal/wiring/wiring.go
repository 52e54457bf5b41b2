// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/degrees/internal/adapters/config"
	_ "go.trai.ch/degrees/internal/adapters/graphfile"
	_ "go.trai.ch/degrees/internal/adapters/ledger"
	_ "go.trai.ch/degrees/internal/adapters/logger"
	_ "go.trai.ch/degrees/internal/adapters/metrics"
	_ "go.trai.ch/degrees/internal/adapters/nostr"
	_ "go.trai.ch/degrees/internal/adapters/telemetry"
	// Register app nodes.
	_ "go.trai.ch/degrees/internal/app"
)
