// Package telemetry wires OpenTelemetry tracing for level generation and play.
package telemetry

import (
	"context"
	"os"
	"runtime"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
)

const (
	serviceName    = "dungeoncrawl"
	serviceVersion = "0.2.0"
)

// Enabled reports whether an OTLP endpoint is configured in the environment.
func Enabled() bool {
	for _, key := range []string{"OTEL_EXPORTER_OTLP_ENDPOINT", "OTEL_EXPORTER_OTLP_TRACES_ENDPOINT"} {
		if os.Getenv(key) != "" {
			return true
		}
	}
	return false
}

// Setup exports spans over OTLP/HTTP in batches. Endpoint and headers come
// from the OTEL_EXPORTER_OTLP_* variables. The returned func flushes and
// stops the provider.
func Setup(ctx context.Context) (func(context.Context) error, error) {
	exporter, err := otlptracehttp.New(ctx)
	if err != nil {
		return nil, err
	}
	res, err := Resource(ctx)
	if err != nil {
		return nil, err
	}
	tp := Install(sdktrace.WithBatcher(exporter), sdktrace.WithResource(res))
	return tp.Shutdown, nil
}

// Resource identifies the dungeoncrawl process. resource.Default() is not
// merged in; its schema URL conflicts with ours.
func Resource(ctx context.Context) (*resource.Resource, error) {
	host, err := os.Hostname()
	if err != nil {
		host = "unknown"
	}
	return resource.New(ctx, resource.WithAttributes(
		attribute.String("service.name", serviceName),
		attribute.String("service.version", serviceVersion),
		attribute.String("host.name", host),
		attribute.String("os.type", runtime.GOOS),
		attribute.String("process.runtime.name", "go"),
		attribute.String("process.runtime.version", runtime.Version()),
	))
}

// Install registers a tracer provider built from opts as the global one.
func Install(opts ...sdktrace.TracerProviderOption) *sdktrace.TracerProvider {
	tp := sdktrace.NewTracerProvider(opts...)
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.TraceContext{})
	return tp
}

// Tracer returns the tracer for one component, e.g. "world" or "game".
// Until Install runs, spans are no-ops.
func Tracer(component string) trace.Tracer {
	return otel.Tracer(serviceName + "/" + component)
}
