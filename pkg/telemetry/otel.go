package telemetry

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"
)

// Config describes the metrics bootstrap options.
type Config struct {
	ServiceName  string
	Environment  string
	ResourceTags map[string]string
}

// SetupMeterProvider installs a process-wide OpenTelemetry meter provider
// feeding the supplied readers and returns its shutdown function, which
// callers must invoke to flush pending measurements. Without readers no
// provider is installed and the shutdown function is a no-op.
func SetupMeterProvider(ctx context.Context, cfg Config, readers ...sdkmetric.Reader) (func(context.Context) error, error) {
	if len(readers) == 0 {
		return func(context.Context) error { return nil }, nil
	}

	serviceName := cfg.ServiceName
	if serviceName == "" {
		serviceName = "measure"
	}
	attrs := []attribute.KeyValue{semconv.ServiceName(serviceName)}
	if cfg.Environment != "" {
		attrs = append(attrs, attribute.String("deployment.environment", cfg.Environment))
	}
	for k, v := range cfg.ResourceTags {
		attrs = append(attrs, attribute.String(k, v))
	}

	res, err := resource.New(ctx,
		resource.WithSchemaURL(semconv.SchemaURL),
		resource.WithAttributes(attrs...),
	)
	if err != nil {
		return nil, fmt.Errorf("create resource: %w", err)
	}

	opts := []sdkmetric.Option{sdkmetric.WithResource(res)}
	for _, r := range readers {
		opts = append(opts, sdkmetric.WithReader(r))
	}
	provider := sdkmetric.NewMeterProvider(opts...)
	otel.SetMeterProvider(provider)
	// Instruments cached against the previous provider would keep reporting there.
	resetMetrics()

	return provider.Shutdown, nil
}
