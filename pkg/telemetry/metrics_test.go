package telemetry

import (
	"context"
	"testing"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

func collectMetrics(t *testing.T, reader *sdkmetric.ManualReader) map[string]metricdata.Metrics {
	t.Helper()

	var rm metricdata.ResourceMetrics
	if err := reader.Collect(context.Background(), &rm); err != nil {
		t.Fatalf("collect metrics: %v", err)
	}

	metrics := map[string]metricdata.Metrics{}
	for _, scope := range rm.ScopeMetrics {
		for _, m := range scope.Metrics {
			metrics[m.Name] = m
		}
	}
	return metrics
}

func installReader(t *testing.T) *sdkmetric.ManualReader {
	t.Helper()

	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	prev := otel.GetMeterProvider()
	otel.SetMeterProvider(provider)
	t.Cleanup(func() {
		otel.SetMeterProvider(prev)
		ResetMetricsForTest()
	})
	ResetMetricsForTest()
	return reader
}

func TestRecordConversion(t *testing.T) {
	ctx := context.Background()
	reader := installReader(t)

	RecordConversion(ctx, ConversionMetrics{
		Dimension: "temperature",
		Kind:      "affine",
		Outcome:   OutcomeOK,
		Duration:  150 * time.Microsecond,
	})
	RecordConversion(ctx, ConversionMetrics{
		Dimension: "length",
		Kind:      "multiplicative",
		Outcome:   OutcomeError,
		ErrorCode: "arith.division_by_zero",
	})

	metrics := collectMetrics(t, reader)

	total, ok := metrics["measure.conversions_total"]
	if !ok {
		t.Fatalf("missing measure.conversions_total metric")
	}
	totalData, ok := total.Data.(metricdata.Sum[int64])
	if !ok {
		t.Fatalf("unexpected data type for conversions metric")
	}
	if len(totalData.DataPoints) != 2 {
		t.Fatalf("expected 2 datapoints, got %d", len(totalData.DataPoints))
	}

	errs, ok := metrics["measure.conversion_errors_total"]
	if !ok {
		t.Fatalf("missing measure.conversion_errors_total metric")
	}
	errData := errs.Data.(metricdata.Sum[int64])
	if len(errData.DataPoints) != 1 || errData.DataPoints[0].Value != 1 {
		t.Fatalf("expected a single error datapoint with value 1, got %+v", errData.DataPoints)
	}
	if value, ok := errData.DataPoints[0].Attributes.Value(attribute.Key("measure.error.code")); !ok || value.AsString() != "arith.division_by_zero" {
		t.Fatalf("expected error code attribute, got %v", value)
	}

	hist, ok := metrics["measure.conversion.duration_us"]
	if !ok {
		t.Fatalf("missing measure.conversion.duration_us metric")
	}
	histData := hist.Data.(metricdata.Histogram[float64])
	if len(histData.DataPoints) != 1 {
		t.Fatalf("expected only the timed conversion in the histogram, got %d", len(histData.DataPoints))
	}
	if histData.DataPoints[0].Sum != 150 {
		t.Fatalf("expected histogram sum 150, got %v", histData.DataPoints[0].Sum)
	}
}

func TestRecordAutoScale(t *testing.T) {
	ctx := context.Background()
	reader := installReader(t)

	RecordAutoScale(ctx, AutoScaleMetrics{Dimension: "length", Family: "metric-length", Candidates: 9, Rescaled: true})
	RecordAutoScale(ctx, AutoScaleMetrics{Dimension: "length", Family: "metric-length", Candidates: 9, Rescaled: true})

	metrics := collectMetrics(t, reader)
	scale, ok := metrics["measure.autoscale_total"]
	if !ok {
		t.Fatalf("missing measure.autoscale_total metric")
	}
	data := scale.Data.(metricdata.Sum[int64])
	if len(data.DataPoints) != 1 || data.DataPoints[0].Value != 2 {
		t.Fatalf("expected one datapoint with value 2, got %+v", data.DataPoints)
	}
	if value, ok := data.DataPoints[0].Attributes.Value(attribute.Key("measure.rescaled")); !ok || !value.AsBool() {
		t.Fatalf("expected measure.rescaled=true")
	}
}

func TestSetupMeterProvider(t *testing.T) {
	ctx := context.Background()
	prev := otel.GetMeterProvider()
	t.Cleanup(func() {
		otel.SetMeterProvider(prev)
		ResetMetricsForTest()
	})

	shutdown, err := SetupMeterProvider(ctx, Config{})
	if err != nil {
		t.Fatalf("setup without readers: %v", err)
	}
	if err := shutdown(ctx); err != nil {
		t.Fatalf("no-op shutdown: %v", err)
	}

	reader := sdkmetric.NewManualReader()
	shutdown, err = SetupMeterProvider(ctx, Config{ServiceName: "measure-test", Environment: "ci"}, reader)
	if err != nil {
		t.Fatalf("setup: %v", err)
	}

	RecordConversion(ctx, ConversionMetrics{Dimension: "mass", Kind: "multiplicative", Outcome: OutcomeOK})

	var rm metricdata.ResourceMetrics
	if err := reader.Collect(ctx, &rm); err != nil {
		t.Fatalf("collect metrics: %v", err)
	}
	if value, ok := rm.Resource.Set().Value(attribute.Key("service.name")); !ok || value.AsString() != "measure-test" {
		t.Fatalf("expected service.name resource attribute, got %v", value)
	}
	if len(rm.ScopeMetrics) == 0 {
		t.Fatalf("expected conversion metrics through the installed provider")
	}

	if err := shutdown(ctx); err != nil {
		t.Fatalf("shutdown: %v", err)
	}
}
