// Package engine wires the measurement components together from
// configuration.
//
// Architecture:
//
// engine.go  - Engine construction, option handling and the atomically swapped component set
// watch.go   - Catalog reload loop applying new registries without interrupting callers
//
// Callers that need a single conversion can use the convert, compare and
// autoscale packages directly with registry.Default(); the engine adds rule
// catalogs, hot reload, metrics and logging around them.
package engine
