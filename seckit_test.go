package seckit

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/hexvault/seckit/token"
)

func newTestKit(t *testing.T, cfg Config) *Kit {
	t.Helper()
	kit, err := New(cfg)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	t.Cleanup(kit.Close)
	return kit
}

func metricsKitConfig() Config {
	cfg := DefaultConfig()
	cfg.Metrics = MetricsConfig{Enabled: true, EnableLatencyHistograms: true}
	return cfg
}

func TestKitRoundTrip(t *testing.T) {
	kit := newTestKit(t, DefaultConfig())

	record, err := kit.HashPassword("kit round trip")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	if !kit.VerifyPassword("kit round trip", record) {
		t.Fatal("expected verification to succeed")
	}
	if kit.VerifyPassword("something else", record) {
		t.Fatal("expected wrong password to fail")
	}
}

func TestKitGenerateSecureToken(t *testing.T) {
	kit := newTestKit(t, metricsKitConfig())

	out, err := kit.GenerateSecureToken(token.DefaultLength)
	if err != nil {
		t.Fatalf("GenerateSecureToken error: %v", err)
	}
	if len(out) != 2*token.DefaultLength {
		t.Fatalf("expected %d hex chars, got %d", 2*token.DefaultLength, len(out))
	}
	if got := kit.MetricsSnapshot().Counters[MetricTokenIssued]; got != 1 {
		t.Fatalf("expected 1 issued token, got %d", got)
	}

	if _, err := kit.GenerateSecureToken(-1); !errors.Is(err, token.ErrLength) {
		t.Fatalf("expected ErrLength, got %v", err)
	}
	if got := kit.MetricsSnapshot().Counters[MetricTokenRejected]; got != 1 {
		t.Fatalf("expected 1 rejected token request, got %d", got)
	}
}

func TestKitVerifyMalformedRecordSurfaced(t *testing.T) {
	cfg := metricsKitConfig()
	cfg.Events = EventsConfig{Enabled: true, BufferSize: 4}
	sink := NewChannelSink(4)
	cfg.EventSink = sink
	kit := newTestKit(t, cfg)

	if kit.VerifyPassword("anything", "not-a-valid-format") {
		t.Fatal("expected malformed record to fail verification")
	}

	if got := kit.MetricsSnapshot().Counters[MetricMalformedRecord]; got != 1 {
		t.Fatalf("expected 1 malformed record, got %d", got)
	}

	select {
	case event := <-sink.Events():
		if event.Kind != EventMalformedRecord {
			t.Fatalf("unexpected event kind: %s", event.Kind)
		}
		if event.Operation != "verify_password" {
			t.Fatalf("unexpected operation: %s", event.Operation)
		}
	case <-time.After(time.Second):
		t.Fatal("expected a malformed-record event within 1s")
	}
}

func TestKitVerifyCountsOutcomes(t *testing.T) {
	kit := newTestKit(t, metricsKitConfig())

	record, err := kit.HashPassword("count me")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	kit.VerifyPassword("count me", record)
	kit.VerifyPassword("wrong", record)

	snapshot := kit.MetricsSnapshot()
	if got := snapshot.Counters[MetricVerifySuccess]; got != 1 {
		t.Fatalf("expected 1 verify success, got %d", got)
	}
	if got := snapshot.Counters[MetricVerifyFailure]; got != 1 {
		t.Fatalf("expected 1 verify failure, got %d", got)
	}
	if got := snapshot.Counters[MetricHashIssued]; got != 1 {
		t.Fatalf("expected 1 hash issued, got %d", got)
	}

	buckets := snapshot.Histograms[MetricHashLatency]
	var total uint64
	for _, b := range buckets {
		total += b
	}
	if total != 1 {
		t.Fatalf("expected 1 hash latency observation, got %d (%v)", total, buckets)
	}
}

func TestKitSanitizeInput(t *testing.T) {
	cfg := metricsKitConfig()
	cfg.Sanitize = SanitizeConfig{MaxLength: 5}
	kit := newTestKit(t, cfg)

	if got := kit.SanitizeInput(strings.Repeat("y", 100)); got != "yyyyy" {
		t.Fatalf("SanitizeInput: got %q", got)
	}

	snapshot := kit.MetricsSnapshot()
	if got := snapshot.Counters[MetricInputSanitized]; got != 1 {
		t.Fatalf("expected 1 sanitized input, got %d", got)
	}
	if got := snapshot.Counters[MetricInputTruncated]; got != 1 {
		t.Fatalf("expected 1 truncated input, got %d", got)
	}
}

func TestKitValidateEmail(t *testing.T) {
	kit := newTestKit(t, metricsKitConfig())

	if !kit.ValidateEmail("user@example.com") {
		t.Fatal("expected valid email")
	}
	if kit.ValidateEmail("not-an-email") {
		t.Fatal("expected invalid email")
	}

	snapshot := kit.MetricsSnapshot()
	if snapshot.Counters[MetricEmailAccepted] != 1 || snapshot.Counters[MetricEmailRejected] != 1 {
		t.Fatalf("unexpected email counters: %+v", snapshot.Counters)
	}
}

func TestKitSignedTokens(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Signer = token.SignerConfig{
		Secret: []byte(strings.Repeat("k", 32)),
		TTL:    time.Minute,
		Issuer: "seckit-test",
	}
	kit := newTestKit(t, cfg)

	tokenStr, err := kit.IssueToken("subject-1")
	if err != nil {
		t.Fatalf("IssueToken error: %v", err)
	}
	claims, err := kit.ValidateToken(tokenStr)
	if err != nil {
		t.Fatalf("ValidateToken error: %v", err)
	}
	if claims.Subject != "subject-1" {
		t.Fatalf("unexpected subject: %s", claims.Subject)
	}
}

func TestKitSignerNotConfigured(t *testing.T) {
	kit := newTestKit(t, DefaultConfig())

	if _, err := kit.IssueToken("x"); err != ErrSignerNotConfigured {
		t.Fatalf("expected ErrSignerNotConfigured, got %v", err)
	}
	if _, err := kit.ValidateToken("x"); err != ErrSignerNotConfigured {
		t.Fatalf("expected ErrSignerNotConfigured, got %v", err)
	}
}

func TestKitNeedsRehash(t *testing.T) {
	kit := newTestKit(t, DefaultConfig())

	record, err := kit.HashPassword("fresh")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}

	needs, err := kit.NeedsRehash(record)
	if err != nil {
		t.Fatalf("NeedsRehash error: %v", err)
	}
	if needs {
		t.Fatal("expected fresh record to not need rehash")
	}

	if _, err := kit.NeedsRehash("garbage"); err == nil {
		t.Fatal("expected malformed record to error")
	}
}

func TestKitRejectsInvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Sanitize.MaxLength = -1
	if _, err := New(cfg); err == nil {
		t.Fatal("expected negative sanitize limit to be rejected")
	}

	cfg = DefaultConfig()
	cfg.Password.Iterations = 1
	if _, err := New(cfg); err == nil {
		t.Fatal("expected weak password config to be rejected")
	}

	cfg = DefaultConfig()
	cfg.Signer = token.SignerConfig{Secret: []byte("short"), TTL: time.Minute}
	if _, err := New(cfg); err == nil {
		t.Fatal("expected short signer secret to be rejected")
	}
}

func TestPackageLevelDefaults(t *testing.T) {
	out, err := GenerateSecureToken(8)
	if err != nil {
		t.Fatalf("GenerateSecureToken error: %v", err)
	}
	if len(out) != 16 {
		t.Fatalf("expected 16 hex chars, got %d", len(out))
	}

	record, err := HashPassword("package level")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	if !VerifyPassword("package level", record) {
		t.Fatal("expected verification to succeed")
	}

	if got := SanitizeInput("  <b>hi</b>  "); got != "bhi/b" {
		t.Fatalf("SanitizeInput: got %q", got)
	}
	if !ValidateEmail("a@b.co") || ValidateEmail("a@b.c") {
		t.Fatal("unexpected email validation results")
	}
}
