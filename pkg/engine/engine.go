package engine

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"

	"github.com/polisai/measure/pkg/autoscale"
	"github.com/polisai/measure/pkg/compare"
	"github.com/polisai/measure/pkg/config"
	"github.com/polisai/measure/pkg/convert"
	"github.com/polisai/measure/pkg/domain"
	"github.com/polisai/measure/pkg/number"
	"github.com/polisai/measure/pkg/quantity"
	"github.com/polisai/measure/pkg/registry"
	"github.com/polisai/measure/pkg/telemetry"
)

// ErrNoCatalogs is returned by Watch when no rule files are configured or
// watching is disabled.
var ErrNoCatalogs = errors.New("engine: no watched rule catalogs")

// components is one consistent generation of registry and the operations
// built on it.
type components struct {
	generation int64
	registry   *registry.Registry
	converter  *convert.Converter
	comparator *compare.Comparator
	scaler     *autoscale.AutoScaler
}

// Engine owns the active registry and the converter, comparator and
// auto-scaler built on it. Every method is safe for concurrent use; a reload
// swaps the whole component set at once, so a call never mixes registries.
type Engine struct {
	cfg    *config.Config
	logger zerolog.Logger

	base      *registry.Registry
	provider  *registry.FileProvider
	collector *telemetry.RegistryCollector
	promReg   prometheus.Registerer
	readers   []sdkmetric.Reader

	shutdownMetrics func(context.Context) error

	current    atomic.Pointer[components]
	generation atomic.Int64

	closeOnce sync.Once
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger for load and reload events (default: no-op).
func WithLogger(logger zerolog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithBaseRegistry replaces the builtin registry the catalogs extend.
func WithBaseRegistry(reg *registry.Registry) Option {
	return func(e *Engine) {
		e.base = reg
	}
}

// WithPrometheusRegisterer registers a registry collector on reg.
func WithPrometheusRegisterer(reg prometheus.Registerer) Option {
	return func(e *Engine) {
		e.promReg = reg
	}
}

// WithMetricReader installs an OpenTelemetry meter provider feeding reader
// when metrics are enabled in the configuration.
func WithMetricReader(reader sdkmetric.Reader) Option {
	return func(e *Engine) {
		e.readers = append(e.readers, reader)
	}
}

// New builds an engine from cfg. A nil cfg uses config.Default().
func New(cfg *config.Config, opts ...Option) (*Engine, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	e := &Engine{
		cfg:    cfg,
		logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.base == nil {
		e.base = registry.Default()
	}

	if cfg.Telemetry.Metrics && len(e.readers) > 0 {
		shutdown, err := telemetry.SetupMeterProvider(context.Background(), telemetry.Config{
			ServiceName: cfg.Telemetry.ServiceName,
			Environment: cfg.Telemetry.Environment,
		}, e.readers...)
		if err != nil {
			return nil, fmt.Errorf("setup metrics: %w", err)
		}
		e.shutdownMetrics = shutdown
	}

	if e.promReg != nil {
		e.collector = telemetry.NewRegistryCollector(func() telemetry.UnitLister {
			if c := e.current.Load(); c != nil {
				return c.registry
			}
			return nil
		})
	}

	reg := e.base
	if len(cfg.Rules.Files) > 0 {
		providerOpts := []registry.ProviderOption{
			registry.WithBaseRegistry(e.base),
			registry.WithLogger(e.logger),
			registry.WithDebounce(cfg.Rules.Debounce),
			registry.WithWatch(cfg.Rules.Watch),
		}
		if e.collector != nil {
			providerOpts = append(providerOpts, registry.WithReloadHook(e.collector.ObserveReload))
		}
		provider, err := registry.NewFileProvider(cfg.Rules.Files, providerOpts...)
		if err != nil {
			_ = e.shutdown()
			return nil, fmt.Errorf("load rule catalogs: %w", err)
		}
		e.provider = provider
		reg = provider.Current()
	}

	e.apply(reg)

	if e.promReg != nil {
		if err := e.promReg.Register(e.collector); err != nil {
			_ = e.Close()
			return nil, fmt.Errorf("register registry collector: %w", err)
		}
	}

	e.logger.Info().
		Int("units", reg.Len()).
		Int("catalogs", len(cfg.Rules.Files)).
		Bool("watch", cfg.Rules.Watch).
		Bool("metrics", cfg.Telemetry.Metrics).
		Msg("measurement engine ready")

	return e, nil
}

// apply builds a new component generation on reg and publishes it.
func (e *Engine) apply(reg *registry.Registry) int64 {
	convOpts := []convert.Option{}
	scaleOpts := []autoscale.Option{
		autoscale.WithRange(e.cfg.AutoScale.Range()),
		autoscale.WithPrecision(e.cfg.AutoScale.Precision.Scale, e.cfg.AutoScale.Precision.Mode()),
	}
	if system, ok := e.cfg.AutoScale.SystemFilter(); ok {
		scaleOpts = append(scaleOpts, autoscale.WithSystem(system))
	}
	if e.cfg.Telemetry.Metrics {
		convOpts = append(convOpts, convert.WithInstrumentation())
		scaleOpts = append(scaleOpts, autoscale.WithInstrumentation())
	}

	conv := convert.NewConverter(reg, convOpts...)
	c := &components{
		generation: e.generation.Add(1),
		registry:   reg,
		converter:  conv,
		comparator: compare.New(conv, compare.WithPrecision(e.cfg.Comparison.Scale, e.cfg.Comparison.Mode())),
		scaler:     autoscale.New(conv, reg, scaleOpts...),
	}
	e.current.Store(c)
	return c.generation
}

func (e *Engine) load() *components {
	return e.current.Load()
}

// Registry returns the active registry.
func (e *Engine) Registry() *registry.Registry {
	return e.load().registry
}

// Generation increments every time a new registry is applied.
func (e *Engine) Generation() int64 {
	return e.load().generation
}

func (e *Engine) Converter() *convert.Converter {
	return e.load().converter
}

func (e *Engine) Comparator() *compare.Comparator {
	return e.load().comparator
}

func (e *Engine) AutoScaler() *autoscale.AutoScaler {
	return e.load().scaler
}

// Convert converts value at the configured precision.
func (e *Engine) Convert(value number.Number, from, to domain.Unit) (number.Number, error) {
	return e.load().converter.Convert(value, from, to, e.cfg.Precision.Scale, e.cfg.Precision.Mode())
}

// ConvertQuantity converts q at the configured precision.
func (e *Engine) ConvertQuantity(q *quantity.Quantity, to domain.Unit) (*quantity.Quantity, error) {
	return e.load().converter.ConvertQuantity(q, to, e.cfg.Precision.Scale, e.cfg.Precision.Mode())
}

// Compare compares a and b at the configured comparison precision.
func (e *Engine) Compare(a, b *quantity.Quantity) (int, error) {
	return e.load().comparator.Compare(a, b)
}

// AutoScale rescales q with the configured defaults; opts override them.
func (e *Engine) AutoScale(q *quantity.Quantity, opts ...autoscale.Option) (*quantity.Quantity, error) {
	return e.load().scaler.Scale(q, opts...)
}

// Reload re-reads the rule catalogs and applies the result. Without catalogs
// it is a no-op.
func (e *Engine) Reload() error {
	if e.provider == nil {
		return nil
	}
	err := e.provider.Reload()
	if e.collector != nil {
		e.collector.ObserveReload(err)
	}
	if err != nil {
		e.logger.Error().Err(err).Msg("unit catalog reload failed, keeping previous registry")
		return err
	}
	e.applyIfChanged(e.provider.Current())
	return nil
}

func (e *Engine) applyIfChanged(reg *registry.Registry) {
	if reg == nil || reg == e.Registry() {
		return
	}
	generation := e.apply(reg)
	e.logger.Info().
		Int64("generation", generation).
		Int("units", reg.Len()).
		Msg("unit registry updated")
}

// Close stops watching catalogs, unregisters the collector and flushes
// metrics. It is safe to call more than once.
func (e *Engine) Close() error {
	var err error
	e.closeOnce.Do(func() {
		if e.promReg != nil && e.collector != nil {
			e.promReg.Unregister(e.collector)
		}
		if e.provider != nil {
			err = errors.Join(err, e.provider.Close())
		}
		err = errors.Join(err, e.shutdown())
	})
	return err
}

func (e *Engine) shutdown() error {
	if e.shutdownMetrics == nil {
		return nil
	}
	return e.shutdownMetrics(context.Background())
}
