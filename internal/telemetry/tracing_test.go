package telemetry_test

import (
	"context"
	"testing"

	"github.com/aaravmahajanofficial/tienda/internal/config"
	"github.com/aaravmahajanofficial/tienda/internal/telemetry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
)

func TestSetupWithoutExporter(t *testing.T) {
	provider, shutdown, err := telemetry.Setup(context.Background(), config.OTel{ServiceName: "tienda-test", SamplerRatio: 1}, "test")
	require.NoError(t, err)
	require.NotNil(t, provider)

	assert.Same(t, provider, otel.GetTracerProvider())

	_, span := otel.Tracer("test").Start(context.Background(), "op")
	assert.True(t, span.SpanContext().IsValid())
	assert.True(t, span.SpanContext().IsSampled())
	span.End()

	assert.NoError(t, shutdown(context.Background()))
}

func TestSetupZeroRatioDropsRootSpans(t *testing.T) {
	provider, shutdown, err := telemetry.Setup(context.Background(), config.OTel{ServiceName: "tienda-test", SamplerRatio: 0}, "test")
	require.NoError(t, err)
	defer func() { _ = shutdown(context.Background()) }()

	_, span := provider.Tracer("test").Start(context.Background(), "op")
	assert.False(t, span.SpanContext().IsSampled())
	span.End()
}

func TestSetupWithExporterEndpoint(t *testing.T) {
	_, shutdown, err := telemetry.Setup(context.Background(), config.OTel{
		ServiceName:      "tienda-test",
		ExporterEndpoint: "http://127.0.0.1:4318/v1/traces",
		SamplerRatio:     1,
	}, "test")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_ = shutdown(ctx)
}
