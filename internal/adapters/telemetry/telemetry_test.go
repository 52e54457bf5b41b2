package telemetry_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.trai.ch/degrees/internal/adapters/telemetry"
	"go.trai.ch/degrees/internal/core/domain"
)

func newRecordingTracer() (*tracetest.SpanRecorder, *telemetry.OTelTracer) {
	sr := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))
	return sr, telemetry.NewProviderTracer("test", tp)
}

func TestOTelTracer_Attributes(t *testing.T) {
	sr, tracer := newRecordingTracer()
	defer func() { _ = tracer.Shutdown(context.Background()) }()

	_, span := tracer.Start(context.Background(), "finder.find")
	span.SetAttribute("source", "a")
	span.SetAttribute("degrees", 2)
	span.SetAttribute("fetched", int64(7))
	span.SetAttribute("ratio", 0.5)
	span.SetAttribute("connected", true)
	span.SetAttribute("path", []string{"a", "b"})
	span.SetAttribute("reason", domain.ReasonStalled)
	span.SetAttribute("other", struct{ X int }{1})
	span.End()

	spans := sr.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, "finder.find", spans[0].Name())

	attrs := map[attribute.Key]attribute.Value{}
	for _, kv := range spans[0].Attributes() {
		attrs[kv.Key] = kv.Value
	}
	assert.Equal(t, "a", attrs["source"].AsString())
	assert.Equal(t, int64(2), attrs["degrees"].AsInt64())
	assert.Equal(t, int64(7), attrs["fetched"].AsInt64())
	assert.InDelta(t, 0.5, attrs["ratio"].AsFloat64(), 0)
	assert.True(t, attrs["connected"].AsBool())
	assert.Equal(t, []string{"a", "b"}, attrs["path"].AsStringSlice())
	assert.Equal(t, "stalled", attrs["reason"].AsString())
	assert.Equal(t, "{1}", attrs["other"].AsString())
}

func TestOTelTracer_RecordError(t *testing.T) {
	sr, tracer := newRecordingTracer()

	_, span := tracer.Start(context.Background(), "listen.mention")
	span.RecordError(errors.New("publish failed"))
	span.End()

	spans := sr.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, codes.Error, spans[0].Status().Code)
	assert.Equal(t, "publish failed", spans[0].Status().Description)
}

func TestStdoutTracer(t *testing.T) {
	var buf bytes.Buffer
	tracer, err := telemetry.NewStdoutTracer("test", &buf)
	require.NoError(t, err)

	_, span := tracer.Start(context.Background(), "finder.find")
	span.End()
	require.NoError(t, tracer.Shutdown(context.Background()))

	assert.Contains(t, buf.String(), `"Name":"finder.find"`)
}

func TestNoOpTracer(t *testing.T) {
	tracer := telemetry.NewNoOpTracer()
	ctx := context.Background()

	newCtx, span := tracer.Start(ctx, "test")
	assert.Equal(t, ctx, newCtx)
	span.SetAttribute("key", "value")
	span.RecordError(errors.New("ignored"))
	span.End()
	assert.NoError(t, tracer.Shutdown(ctx))
	assert.NoError(t, telemetry.NewOTelTracer("global").Shutdown(ctx))
}
