// Package telemetry records conversion metrics through OpenTelemetry and
// exposes the unit registry to Prometheus.
//
// Instruments are created lazily against the global MeterProvider, so callers
// that never install one pay only for no-op instruments. SetupMeterProvider
// installs an SDK provider with the service resource attributes when metrics
// are enabled.
package telemetry
