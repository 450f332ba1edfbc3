package convert

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	"pgregory.net/rapid"

	"github.com/polisai/measure/pkg/domain"
	"github.com/polisai/measure/pkg/number"
	"github.com/polisai/measure/pkg/quantity"
	"github.com/polisai/measure/pkg/registry"
	"github.com/polisai/measure/pkg/telemetry"
	"github.com/polisai/measure/pkg/units"
)

func TestConvert(t *testing.T) {
	conv := NewConverter(registry.Default())

	tests := []struct {
		name     string
		value    string
		from, to domain.Unit
		scale    int32
		want     string
	}{
		{"celsius to kelvin", "0", units.Celsius, units.Kelvin, 2, "273.15"},
		{"kelvin to celsius", "273.15", units.Kelvin, units.Celsius, 2, "0.00"},
		{"fahrenheit to celsius", "32", units.Fahrenheit, units.Celsius, 2, "0.00"},
		{"celsius to fahrenheit", "-40", units.Celsius, units.Fahrenheit, 2, "-40.00"},
		{"fahrenheit to kelvin", "212", units.Fahrenheit, units.Kelvin, 2, "373.15"},
		{"rankine to fahrenheit", "0", units.Rankine, units.Fahrenheit, 2, "-459.67"},
		{"kilogram to gram", "2", units.Kilogram, units.Gram, 4, "2000.0000"},
		{"stone to pound", "1", units.Stone, units.Pound, 4, "14.0000"},
		{"mile to kilometer", "1", units.Mile, units.Kilometer, 6, "1.609344"},
		{"foot to inch", "3", units.Foot, units.Inch, 0, "36"},
		{"kilowatt hour to megajoule", "1", units.KilowattHour, units.Megajoule, 1, "3.6"},
		{"gibibyte to megabyte", "1", units.Gibibyte, units.Megabyte, 3, "1073.742"},
		{"byte to bit", "1", units.Byte, units.Bit, 0, "8"},
		{"hectare to square meter", "1.5", units.Hectare, units.SquareMeter, 0, "15000"},
		{"bar to kilopascal", "1", units.Bar, units.Kilopascal, 0, "100"},
		{"hour to second", "0.5", units.Hour, units.Second, 0, "1800"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := conv.Convert(number.MustParse(tt.value), tt.from, tt.to, tt.scale, number.HalfUp)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestConvertRoundsOnce(t *testing.T) {
	conv := NewConverter(registry.Default())

	// 1 °F above freezing is exactly 5/9 °C; rounding at each step would drift.
	got, err := conv.Convert(number.MustParse("33"), units.Fahrenheit, units.Celsius, 5, number.HalfUp)
	require.NoError(t, err)
	assert.Equal(t, "0.55556", got.String())

	got, err = conv.Convert(number.MustParse("33"), units.Fahrenheit, units.Celsius, 5, number.Down)
	require.NoError(t, err)
	assert.Equal(t, "0.55555", got.String())

	_, err = conv.Convert(number.MustParse("33"), units.Fahrenheit, units.Celsius, 5, number.Unnecessary)
	require.ErrorIs(t, err, domain.ErrInvalidOperation)
	assert.Equal(t, domain.CodeRoundingNecessary, domain.ErrorCode(err))
}

func TestConvertIdentity(t *testing.T) {
	conv := NewConverter(registry.Default())

	v := number.MustParse("1.23456789")
	got, err := conv.Convert(v, units.Meter, units.Meter, 2, number.HalfUp)
	require.NoError(t, err)
	assert.Equal(t, v, got)
	assert.Equal(t, "1.23456789", got.String())

	q := quantity.MustParse("7.125", units.Celsius)
	same, err := conv.ConvertQuantity(q, units.Celsius, 0, number.HalfUp)
	require.NoError(t, err)
	assert.Same(t, q, same)
}

func TestConvertQuantity(t *testing.T) {
	conv := NewConverter(registry.Default())

	q := quantity.MustParse("1200", units.Meter)
	got, err := conv.ConvertQuantity(q, units.Kilometer, 1, number.HalfUp)
	require.NoError(t, err)
	assert.Equal(t, "1.2 km", got.String())
	assert.Equal(t, "1200 m", q.String())

	_, err = conv.ConvertQuantity(nil, units.Meter, 1, number.HalfUp)
	require.ErrorIs(t, err, domain.ErrInvalidOperation)
}

func TestConvertDimensionGuard(t *testing.T) {
	conv := NewConverter(registry.Default())

	_, err := conv.Convert(number.One(), units.Joule, units.Meter, 2, number.HalfUp)
	require.ErrorIs(t, err, domain.ErrIncompatibleDimension)
	assert.Equal(t, domain.CodeIncompatibleDimension, domain.ErrorCode(err))

	_, err = conv.Convert(number.One(), nil, units.Meter, 2, number.HalfUp)
	require.ErrorIs(t, err, domain.ErrInvalidUnit)

	_, err = conv.Convert(nil, units.Meter, units.Meter, 2, number.HalfUp)
	require.ErrorIs(t, err, domain.ErrInvalidOperation)
}

func TestConvertRegistryErrors(t *testing.T) {
	reg, err := registry.NewBuilder().
		Base(units.Meter).
		Register(units.Foot, registry.Factor("0")).
		Build()
	require.NoError(t, err)
	conv := NewConverter(reg)

	_, err = conv.Convert(number.One(), units.Meter, units.Foot, 2, number.HalfUp)
	require.ErrorIs(t, err, domain.ErrInvalidOperation)
	assert.Equal(t, domain.CodeDivisionByZero, domain.ErrorCode(err))

	_, err = conv.Convert(number.One(), units.Meter, units.Kilometer, 2, number.HalfUp)
	require.ErrorIs(t, err, domain.ErrUnregisteredUnit)

	_, err = conv.Convert(number.One(), units.Kilometer, units.Meter, 2, number.HalfUp)
	require.ErrorIs(t, err, domain.ErrUnregisteredUnit)
}

func TestConvertRoundTrip(t *testing.T) {
	reg := registry.Default()
	conv := NewConverter(reg)
	all := reg.Units()
	tolerance := number.MustParse("1e-20")

	rapid.Check(t, func(t *rapid.T) {
		from := rapid.SampledFrom(all).Draw(t, "from")
		var compatible []domain.Unit
		for _, u := range all {
			if u.Dimension() == from.Dimension() {
				compatible = append(compatible, u)
			}
		}
		to := rapid.SampledFrom(compatible).Draw(t, "to")
		v := number.FromUnscaled(
			rapid.Int64Range(-1_000_000_000, 1_000_000_000).Draw(t, "unscaled"),
			rapid.Int32Range(0, 6).Draw(t, "scale"),
		)

		there, err := conv.Convert(v, from, to, 40, number.HalfEven)
		if err != nil {
			t.Fatalf("convert %s -> %s: %v", from, to, err)
		}
		back, err := conv.Convert(there, to, from, 40, number.HalfEven)
		if err != nil {
			t.Fatalf("convert %s -> %s: %v", to, from, err)
		}
		if !back.Equal(v, tolerance) {
			t.Fatalf("round trip %s %s -> %s -> %s gave %s", v, from, to, from, back)
		}
	})
}

func TestConvertInstrumentation(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	prev := otel.GetMeterProvider()
	otel.SetMeterProvider(provider)
	telemetry.ResetMetricsForTest()
	t.Cleanup(func() {
		otel.SetMeterProvider(prev)
		telemetry.ResetMetricsForTest()
	})

	conv := NewConverter(registry.Default(), WithInstrumentation())
	_, err := conv.Convert(number.One(), units.Celsius, units.Kelvin, 2, number.HalfUp)
	require.NoError(t, err)
	_, err = conv.Convert(number.One(), units.Kelvin, units.Celsius, 2, number.HalfUp)
	require.NoError(t, err)
	_, err = conv.Convert(number.One(), units.Rankine, units.Kelvin, 2, number.HalfUp)
	require.NoError(t, err)
	_, err = conv.Convert(number.One(), units.Kelvin, units.Kelvin, 2, number.HalfUp)
	require.NoError(t, err)
	_, err = conv.Convert(number.One(), units.Joule, units.Meter, 2, number.HalfUp)
	require.Error(t, err)

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))

	found := map[string]bool{}
	byKind := map[string]int64{}
	for _, scope := range rm.ScopeMetrics {
		for _, m := range scope.Metrics {
			found[m.Name] = true
			if m.Name != "measure.conversions_total" {
				continue
			}
			sum, ok := m.Data.(metricdata.Sum[int64])
			require.True(t, ok)
			for _, dp := range sum.DataPoints {
				if v, ok := dp.Attributes.Value("measure.dimension"); !ok || v.AsString() != "temperature" {
					continue
				}
				kind, _ := dp.Attributes.Value("measure.rule.kind")
				byKind[kind.AsString()] += dp.Value
			}
		}
	}
	assert.True(t, found["measure.conversions_total"])
	assert.True(t, found["measure.conversion_errors_total"])
	assert.Equal(t, map[string]int64{"affine": 2, "multiplicative": 1, "identity": 1}, byKind,
		"affine whenever either side is affine")
}
