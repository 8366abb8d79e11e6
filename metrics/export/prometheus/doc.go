// Package prometheus provides Prometheus collectors for seckit metrics.
//
// [NewPrometheusExporter] accepts a [seckit.Kit] and exposes an [http.Handler]
// that renders all seckit counters and histograms in Prometheus text exposition format.
// Counter names are prefixed seckit_*_total; the single histogram is
// seckit_password_hash_latency_seconds.
//
// # What this package must NOT do
//
//   - Register metrics in a global Prometheus registry — callers mount the Handler.
//   - Mutate kit state.
package prometheus
