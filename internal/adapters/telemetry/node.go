package telemetry

import (
	"context"
	"os"

	"github.com/grindlemire/graft"
	"go.trai.ch/degrees/internal/core/ports"
)

// TracerNodeID is the unique identifier for the Telemetry adapter Graft node.
const TracerNodeID graft.ID = "adapter.telemetry"

// StdoutEnv enables the stdout span exporter when set to a non-empty value.
const StdoutEnv = "DEGREES_TRACE_STDOUT"

func init() {
	graft.Register(graft.Node[ports.Tracer]{
		ID:        TracerNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Tracer, error) {
			if os.Getenv(StdoutEnv) != "" {
				return NewStdoutTracer(InstrumentationName, os.Stderr)
			}
			return NewOTelTracer(InstrumentationName), nil
		},
	})
}
