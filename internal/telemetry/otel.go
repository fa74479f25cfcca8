// Package telemetry wires OpenTelemetry tracing to Langfuse's OTLP endpoint.
package telemetry

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/blaisecz/sleep-journal/internal/config"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// ShutdownFunc flushes and stops the tracer provider.
type ShutdownFunc func(context.Context) error

// InitTracer initializes the global OpenTelemetry tracer provider.
// If Langfuse is not configured, this function is a no-op.
func InitTracer(ctx context.Context, cfg *config.Config, serviceName string) (ShutdownFunc, error) {
	if cfg.Langfuse.BaseURL == "" || !cfg.LangfuseEnabled() {
		// Langfuse not configured; keep default noop tracer provider.
		return func(context.Context) error { return nil }, nil
	}

	exporter, err := otlptracehttp.New(
		ctx,
		otlptracehttp.WithEndpointURL(TracesEndpoint(cfg.Langfuse.BaseURL)),
		otlptracehttp.WithHeaders(map[string]string{
			"Authorization": BasicAuth(cfg.Langfuse.PublicKey, cfg.Langfuse.SecretKey),
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("create otlp exporter: %w", err)
	}

	res, err := resource.New(
		ctx,
		resource.WithAttributes(
			attribute.String("service.name", serviceName),
			attribute.String("langfuse.environment", cfg.Langfuse.Env),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("build otel resource: %w", err)
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.TraceContext{})

	return tp.Shutdown, nil
}

// TracesEndpoint returns Langfuse's OTLP/HTTP traces URL under baseURL.
func TracesEndpoint(baseURL string) string {
	return strings.TrimSuffix(baseURL, "/") + "/api/public/otel/v1/traces"
}

// BasicAuth builds the Authorization header value from Langfuse keys.
func BasicAuth(publicKey, secretKey string) string {
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(publicKey+":"+secretKey))
}
