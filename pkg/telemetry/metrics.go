package telemetry

import (
	"context"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Conversion outcomes.
const (
	OutcomeOK    = "ok"
	OutcomeError = "error"
)

var (
	metricsOnce          sync.Once
	metricsInitErr       error
	conversionCounter    metric.Int64Counter
	conversionErrCounter metric.Int64Counter
	conversionLatency    metric.Float64Histogram
	autoScaleCounter     metric.Int64Counter
)

// ConversionMetrics captures the fields needed to record one conversion.
type ConversionMetrics struct {
	Dimension string
	// Kind is affine when either unit's rule is affine, multiplicative when
	// neither is, and identity for same-unit conversions.
	Kind      string
	Outcome   string
	ErrorCode string
	Duration  time.Duration
}

// RecordConversion emits counters and a latency histogram for one conversion.
func RecordConversion(ctx context.Context, m ConversionMetrics) {
	if err := ensureMetrics(); err != nil {
		return
	}

	attrs := []attribute.KeyValue{
		attribute.String("measure.dimension", m.Dimension),
		attribute.String("measure.rule.kind", m.Kind),
		attribute.String("measure.outcome", m.Outcome),
	}
	conversionCounter.Add(ctx, 1, metric.WithAttributes(attrs...))

	if m.Duration > 0 {
		conversionLatency.Record(ctx, float64(m.Duration)/float64(time.Microsecond), metric.WithAttributes(attrs...))
	}

	if m.Outcome == OutcomeError {
		conversionErrCounter.Add(ctx, 1, metric.WithAttributes(
			attribute.String("measure.dimension", m.Dimension),
			attribute.String("measure.error.code", m.ErrorCode),
		))
	}
}

// AutoScaleMetrics captures the result of one auto-scaling call.
type AutoScaleMetrics struct {
	Dimension  string
	Family     string
	Candidates int
	Rescaled   bool
}

// RecordAutoScale counts auto-scaling calls and whether the unit changed.
func RecordAutoScale(ctx context.Context, m AutoScaleMetrics) {
	if err := ensureMetrics(); err != nil {
		return
	}

	autoScaleCounter.Add(ctx, 1, metric.WithAttributes(
		attribute.String("measure.dimension", m.Dimension),
		attribute.String("measure.family", m.Family),
		attribute.Int("measure.candidates", m.Candidates),
		attribute.Bool("measure.rescaled", m.Rescaled),
	))
}

func ensureMetrics() error {
	metricsOnce.Do(func() {
		meter := otel.GetMeterProvider().Meter("measure")

		conversionCounter, metricsInitErr = meter.Int64Counter(
			"measure.conversions_total",
			metric.WithDescription("Unit conversions partitioned by dimension, rule kind and outcome"),
			metric.WithUnit("{count}"),
		)
		if metricsInitErr != nil {
			return
		}

		conversionErrCounter, metricsInitErr = meter.Int64Counter(
			"measure.conversion_errors_total",
			metric.WithDescription("Failed unit conversions partitioned by error code"),
			metric.WithUnit("{count}"),
		)
		if metricsInitErr != nil {
			return
		}

		conversionLatency, metricsInitErr = meter.Float64Histogram(
			"measure.conversion.duration_us",
			metric.WithDescription("Observed conversion latency"),
			metric.WithUnit("us"),
		)
		if metricsInitErr != nil {
			return
		}

		autoScaleCounter, metricsInitErr = meter.Int64Counter(
			"measure.autoscale_total",
			metric.WithDescription("Auto-scaling calls partitioned by whether the unit changed"),
			metric.WithUnit("{count}"),
		)
	})

	return metricsInitErr
}

func resetMetrics() {
	metricsOnce = sync.Once{}
	metricsInitErr = nil
	conversionCounter = nil
	conversionErrCounter = nil
	conversionLatency = nil
	autoScaleCounter = nil
}
