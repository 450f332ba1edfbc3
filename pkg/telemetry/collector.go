package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/polisai/measure/pkg/domain"
)

// UnitLister is the registry view the collector reads. *registry.Registry
// satisfies it.
type UnitLister interface {
	Units() []domain.Unit
}

// RegistryCollector exports the contents of the active unit registry and the
// outcome of catalog reloads as Prometheus metrics.
type RegistryCollector struct {
	current func() UnitLister

	unitsDesc      *prometheus.Desc
	dimensionsDesc *prometheus.Desc
	reloads        *prometheus.CounterVec
}

// NewRegistryCollector returns a collector that reads the registry returned by
// current at every scrape, so reloads are picked up without re-registration.
func NewRegistryCollector(current func() UnitLister) *RegistryCollector {
	return &RegistryCollector{
		current: current,
		unitsDesc: prometheus.NewDesc(
			"measure_registered_units",
			"Units registered for conversion",
			[]string{"dimension", "family", "system"}, nil,
		),
		dimensionsDesc: prometheus.NewDesc(
			"measure_registered_dimensions",
			"Dimensions with a base unit in the active registry",
			nil, nil,
		),
		reloads: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "measure_catalog_reloads_total",
				Help: "Unit catalog reloads by status",
			},
			[]string{"status"},
		),
	}
}

// ObserveReload counts one catalog reload attempt.
func (c *RegistryCollector) ObserveReload(err error) {
	status := "success"
	if err != nil {
		status = "failure"
	}
	c.reloads.WithLabelValues(status).Inc()
}

func (c *RegistryCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.unitsDesc
	ch <- c.dimensionsDesc
	c.reloads.Describe(ch)
}

func (c *RegistryCollector) Collect(ch chan<- prometheus.Metric) {
	c.reloads.Collect(ch)

	var lister UnitLister
	if c.current != nil {
		lister = c.current()
	}
	if lister == nil {
		return
	}

	type key struct{ dimension, family, system string }
	counts := make(map[key]int)
	var order []key
	dims := make(map[*domain.Dimension]bool)
	for _, u := range lister.Units() {
		k := key{u.Dimension().Name(), u.Family().Name(), u.System().String()}
		if _, ok := counts[k]; !ok {
			order = append(order, k)
		}
		counts[k]++
		dims[u.Dimension()] = true
	}

	for _, k := range order {
		ch <- prometheus.MustNewConstMetric(c.unitsDesc, prometheus.GaugeValue, float64(counts[k]),
			k.dimension, k.family, k.system)
	}
	ch <- prometheus.MustNewConstMetric(c.dimensionsDesc, prometheus.GaugeValue, float64(len(dims)))
}
