// Package otel provides OpenTelemetry metric exporter bindings for seckit counters and
// histograms.
//
// [NewOTelExporter] registers Int64ObservableCounter instruments for each seckit metric
// and Int64ObservableGauge per histogram bucket. A single callback reads
// [seckit.Kit.MetricsSnapshot] on each collection cycle.
//
// # What this package must NOT do
//
//   - Own the OTel MeterProvider — callers supply the Meter.
//   - Mutate kit state.
package otel
