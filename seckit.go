package seckit

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/hexvault/seckit/password"
	"github.com/hexvault/seckit/sanitize"
	"github.com/hexvault/seckit/token"
	"github.com/hexvault/seckit/validate"
)

// SanitizeConfig defines a public type used by seckit APIs.
//
// SanitizeConfig instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type SanitizeConfig struct {
	MaxLength int
}

// Config defines a public type used by seckit APIs.
//
// Config instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Config struct {
	Password password.Config
	Sanitize SanitizeConfig
	Metrics  MetricsConfig
	Events   EventsConfig

	// Signer is optional; leave Secret empty to run without signed tokens.
	Signer token.SignerConfig

	// EventSink receives security events when Events.Enabled is set.
	EventSink EventSink
}

// DefaultConfig returns the compatibility configuration: contract PBKDF2
// parameters, a 1000-character sanitizer limit, and metrics, events, and
// signed tokens disabled.
func DefaultConfig() Config {
	return Config{
		Password: password.DefaultConfig(),
		Sanitize: SanitizeConfig{MaxLength: sanitize.DefaultLimit},
	}
}

// Kit is the front object for all seckit operations. It owns no mutable
// domain state; the only state behind a Kit is its metrics counters and the
// event dispatcher, so every method is safe for concurrent use.
type Kit struct {
	hasher   *password.Hasher
	signer   *token.Signer
	maxInput int
	metrics  *Metrics
	events   *eventDispatcher
}

// New describes the new operation and its observable behavior.
//
// New may return an error when input validation, dependency calls, or security checks fail.
// New does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func New(cfg Config) (*Kit, error) {
	if cfg.Sanitize.MaxLength < 0 {
		return nil, errors.New("sanitize max length must be >= 0")
	}
	if cfg.Sanitize.MaxLength == 0 {
		cfg.Sanitize.MaxLength = sanitize.DefaultLimit
	}

	hasher, err := password.New(cfg.Password)
	if err != nil {
		return nil, err
	}

	var signer *token.Signer
	if len(cfg.Signer.Secret) > 0 {
		signer, err = token.NewSigner(cfg.Signer)
		if err != nil {
			return nil, err
		}
	}

	return &Kit{
		hasher:   hasher,
		signer:   signer,
		maxInput: cfg.Sanitize.MaxLength,
		metrics:  NewMetrics(cfg.Metrics),
		events:   newEventDispatcher(cfg.Events, cfg.EventSink),
	}, nil
}

// Close stops the event dispatcher, draining queued events. The Kit remains
// usable afterwards; further events are discarded.
func (k *Kit) Close() {
	if k == nil {
		return
	}
	k.events.Close()
}

// GenerateSecureToken describes the generatesecuretoken operation and its observable behavior.
//
// GenerateSecureToken may return an error when input validation, dependency calls, or security checks fail.
// GenerateSecureToken does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (k *Kit) GenerateSecureToken(numBytes int) (string, error) {
	if k == nil {
		return "", ErrKitNotReady
	}

	out, err := token.Generate(numBytes)
	if err != nil {
		if errors.Is(err, token.ErrLength) {
			k.metrics.Inc(MetricTokenRejected)
			k.emit(EventTokenRejected, "generate_secure_token", err.Error())
			return "", err
		}
		k.metrics.Inc(MetricEntropyFailure)
		k.emit(EventEntropyFailure, "generate_secure_token", err.Error())
		return "", fmt.Errorf("%w: %w", ErrEntropyUnavailable, err)
	}

	k.metrics.Inc(MetricTokenIssued)
	return out, nil
}

// HashPassword describes the hashpassword operation and its observable behavior.
//
// HashPassword may return an error when input validation, dependency calls, or security checks fail.
// HashPassword does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (k *Kit) HashPassword(plaintext string) (string, error) {
	if k == nil {
		return "", ErrKitNotReady
	}

	start := time.Now()
	record, err := k.hasher.Hash(plaintext)
	if err != nil {
		k.metrics.Inc(MetricEntropyFailure)
		k.emit(EventEntropyFailure, "hash_password", err.Error())
		return "", fmt.Errorf("%w: %w", ErrEntropyUnavailable, err)
	}

	k.metrics.Inc(MetricHashIssued)
	k.metrics.Observe(MetricHashLatency, time.Since(start))
	return record, nil
}

// VerifyPassword reports whether plaintext matches the stored record.
// Malformed records are reported as a failed match, never as an error: the
// boolean result leaks nothing about why verification failed. The malformed
// case is still counted under [MetricMalformedRecord] and emitted as an
// [EventMalformedRecord] so data corruption upstream stays visible.
func (k *Kit) VerifyPassword(plaintext, stored string) bool {
	if k == nil {
		return false
	}

	ok, err := k.hasher.Verify(plaintext, stored)
	if err != nil {
		k.metrics.Inc(MetricMalformedRecord)
		k.emit(EventMalformedRecord, "verify_password", err.Error())
		return false
	}

	if ok {
		k.metrics.Inc(MetricVerifySuccess)
	} else {
		k.metrics.Inc(MetricVerifyFailure)
	}
	return ok
}

// NeedsRehash describes the needsrehash operation and its observable behavior.
//
// NeedsRehash may return an error when input validation, dependency calls, or security checks fail.
// NeedsRehash does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (k *Kit) NeedsRehash(stored string) (bool, error) {
	if k == nil {
		return false, ErrKitNotReady
	}

	needs, err := k.hasher.NeedsRehash(stored)
	if err != nil {
		k.metrics.Inc(MetricMalformedRecord)
		k.emit(EventMalformedRecord, "needs_rehash", err.Error())
		return false, err
	}
	return needs, nil
}

// SanitizeInput describes the sanitizeinput operation and its observable behavior.
//
// SanitizeInput does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (k *Kit) SanitizeInput(raw string) string {
	if k == nil {
		return ""
	}

	if utf8.RuneCountInString(raw) > k.maxInput {
		k.metrics.Inc(MetricInputTruncated)
	}
	k.metrics.Inc(MetricInputSanitized)
	return sanitize.Clean(raw, k.maxInput)
}

// ValidateEmail describes the validateemail operation and its observable behavior.
//
// ValidateEmail does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (k *Kit) ValidateEmail(email string) bool {
	if k == nil {
		return false
	}

	ok := validate.Email(email)
	if ok {
		k.metrics.Inc(MetricEmailAccepted)
	} else {
		k.metrics.Inc(MetricEmailRejected)
	}
	return ok
}

// IssueToken describes the issuetoken operation and its observable behavior.
//
// IssueToken may return an error when input validation, dependency calls, or security checks fail.
// IssueToken does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (k *Kit) IssueToken(subject string) (string, error) {
	if k == nil {
		return "", ErrKitNotReady
	}
	if k.signer == nil {
		return "", ErrSignerNotConfigured
	}
	return k.signer.Issue(subject)
}

// ValidateToken describes the validatetoken operation and its observable behavior.
//
// ValidateToken may return an error when input validation, dependency calls, or security checks fail.
// ValidateToken does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (k *Kit) ValidateToken(tokenStr string) (*token.Claims, error) {
	if k == nil {
		return nil, ErrKitNotReady
	}
	if k.signer == nil {
		return nil, ErrSignerNotConfigured
	}
	return k.signer.Validate(tokenStr)
}

// MetricsSnapshot describes the metricssnapshot operation and its observable behavior.
//
// MetricsSnapshot does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (k *Kit) MetricsSnapshot() MetricsSnapshot {
	if k == nil {
		return MetricsSnapshot{
			Counters:   map[MetricID]uint64{},
			Histograms: map[MetricID][]uint64{},
		}
	}
	return k.metrics.Snapshot()
}

// EventsDropped describes the eventsdropped operation and its observable behavior.
//
// EventsDropped does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (k *Kit) EventsDropped() uint64 {
	if k == nil {
		return 0
	}
	return k.events.Dropped()
}

func (k *Kit) emit(kind EventKind, operation, detail string) {
	if k.events == nil {
		return
	}
	k.events.Emit(context.Background(), Event{
		Timestamp: time.Now(),
		Kind:      kind,
		Operation: operation,
		Detail:    detail,
	})
}

var (
	defaultKit     *Kit
	defaultKitOnce sync.Once
)

func defaultKitInstance() *Kit {
	defaultKitOnce.Do(func() {
		// DefaultConfig always validates.
		defaultKit, _ = New(DefaultConfig())
	})
	return defaultKit
}

// GenerateSecureToken draws numBytes from the platform CSPRNG and returns a
// lowercase hex string of length 2*numBytes, using the default Kit.
func GenerateSecureToken(numBytes int) (string, error) {
	return defaultKitInstance().GenerateSecureToken(numBytes)
}

// HashPassword hashes plaintext under the compatibility scheme using the
// default Kit, returning a "<salt_hex>$<key_hex>" record.
func HashPassword(plaintext string) (string, error) {
	return defaultKitInstance().HashPassword(plaintext)
}

// VerifyPassword checks plaintext against a stored record using the default
// Kit. Malformed records yield false, never an error.
func VerifyPassword(plaintext, stored string) bool {
	return defaultKitInstance().VerifyPassword(plaintext, stored)
}

// SanitizeInput cleans raw with the default 1000-character limit.
func SanitizeInput(raw string) string {
	return defaultKitInstance().SanitizeInput(raw)
}

// ValidateEmail reports whether email is shaped like an email address.
func ValidateEmail(email string) bool {
	return defaultKitInstance().ValidateEmail(email)
}
