// Package otel wires OpenTelemetry tracing, metrics and logging for the
// study service and decorates providers with per-call spans.
package otel

import (
	"context"
	"os"

	"go.opentelemetry.io/otel/attribute"

	sdkresource "go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.34.0"
)

const instrumentationName = "github.com/annikahug/cadenza"

var (
	EnableDebug     = false
	EnableTelemetry = false
)

func init() {
	EnableDebug = os.Getenv("DEBUG") != ""
	EnableTelemetry = os.Getenv("TELEMETRY") != ""
}

type Observable interface {
	otelSetup()
}

// Setup installs the global trace, metric and log providers. It is a no-op
// unless TELEMETRY is set.
func Setup(name, version string) error {
	if !EnableTelemetry {
		return nil
	}

	ctx := context.Background()

	resource := sdkresource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceName(name),
		semconv.ServiceVersion(version),
	)

	if err := setupTracer(ctx, resource); err != nil {
		return err
	}

	if err := setupMeter(ctx, resource); err != nil {
		return err
	}

	if err := setupLogger(ctx, resource); err != nil {
		return err
	}

	return nil
}

type KeyValue = attribute.KeyValue

func String(key string, val string) KeyValue {
	return attribute.String(key, val)
}
