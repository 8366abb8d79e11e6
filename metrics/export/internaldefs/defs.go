package internaldefs

import (
	seckit "github.com/hexvault/seckit"
)

// CounterDef defines a public type used by seckit APIs.
//
// CounterDef instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type CounterDef struct {
	ID   seckit.MetricID
	Name string
	Help string
}

// HistogramDef defines a public type used by seckit APIs.
//
// HistogramDef instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type HistogramDef struct {
	ID   seckit.MetricID
	Name string
	Help string
}

// CounterDefs is an exported constant or variable used by the seckit exporters.
var CounterDefs = []CounterDef{
	{ID: seckit.MetricTokenIssued, Name: "seckit_token_issued_total", Help: "Secure tokens generated."},
	{ID: seckit.MetricTokenRejected, Name: "seckit_token_rejected_total", Help: "Token requests rejected for an out-of-range length."},
	{ID: seckit.MetricHashIssued, Name: "seckit_password_hash_total", Help: "Password hash records produced."},
	{ID: seckit.MetricVerifySuccess, Name: "seckit_password_verify_success_total", Help: "Successful password verifications."},
	{ID: seckit.MetricVerifyFailure, Name: "seckit_password_verify_failure_total", Help: "Failed password verifications against well-formed records."},
	{ID: seckit.MetricMalformedRecord, Name: "seckit_malformed_record_total", Help: "Stored password records that did not parse."},
	{ID: seckit.MetricEntropyFailure, Name: "seckit_entropy_failure_total", Help: "Reads from the secure entropy source that failed."},
	{ID: seckit.MetricInputSanitized, Name: "seckit_input_sanitized_total", Help: "Inputs passed through the sanitizer."},
	{ID: seckit.MetricInputTruncated, Name: "seckit_input_truncated_total", Help: "Sanitized inputs that exceeded the length limit."},
	{ID: seckit.MetricEmailAccepted, Name: "seckit_email_accepted_total", Help: "Email validations that matched the format."},
	{ID: seckit.MetricEmailRejected, Name: "seckit_email_rejected_total", Help: "Email validations that did not match the format."},
}

// HistogramDefs is an exported constant or variable used by the seckit exporters.
var HistogramDefs = []HistogramDef{
	{ID: seckit.MetricHashLatency, Name: "seckit_password_hash_latency_seconds", Help: "Password hashing latency histogram."},
}

// HistogramBounds is an exported constant or variable used by the seckit exporters.
var HistogramBounds = []string{
	"0.005",
	"0.01",
	"0.025",
	"0.05",
	"0.1",
	"0.25",
	"0.5",
	"+Inf",
}

// HistogramBoundSuffix is an exported constant or variable used by the seckit exporters.
var HistogramBoundSuffix = []string{
	"0_005",
	"0_01",
	"0_025",
	"0_05",
	"0_1",
	"0_25",
	"0_5",
	"inf",
}

// NormalizeBuckets describes the normalizebuckets operation and its observable behavior.
//
// NormalizeBuckets does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func NormalizeBuckets(raw []uint64) [8]uint64 {
	var out [8]uint64
	for i := 0; i < len(out) && i < len(raw); i++ {
		out[i] = raw[i]
	}
	return out
}

// CumulativeBuckets describes the cumulativebuckets operation and its observable behavior.
//
// CumulativeBuckets does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func CumulativeBuckets(raw [8]uint64) [8]uint64 {
	var out [8]uint64
	var running uint64
	for i := 0; i < len(raw); i++ {
		running += raw[i]
		out[i] = running
	}
	return out
}
