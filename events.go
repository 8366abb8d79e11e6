package seckit

import (
	"context"
	"encoding/json"
	"io"
	"sync"
	"time"
)

// EventKind names the security signals a Kit can emit. Events exist so that
// operational anomalies stay visible even where the public API deliberately
// collapses them into a boolean, as VerifyPassword does for malformed
// stored records.
type EventKind string

const (
	// EventMalformedRecord is an exported constant or variable used by the seckit facade.
	EventMalformedRecord EventKind = "malformed_record"
	// EventEntropyFailure is an exported constant or variable used by the seckit facade.
	EventEntropyFailure EventKind = "entropy_failure"
	// EventTokenRejected is an exported constant or variable used by the seckit facade.
	EventTokenRejected EventKind = "token_rejected"
)

// Event defines a public type used by seckit APIs.
//
// Event instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Event struct {
	Timestamp time.Time `json:"timestamp"`
	Kind      EventKind `json:"kind"`
	Operation string    `json:"operation"`
	Detail    string    `json:"detail,omitempty"`
}

// EventsConfig defines a public type used by seckit APIs.
//
// EventsConfig instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type EventsConfig struct {
	Enabled    bool
	BufferSize int
	DropIfFull bool
}

// EventSink receives security events from a Kit's dispatcher. Emit must be
// safe for concurrent use.
type EventSink interface {
	Emit(ctx context.Context, event Event)
}

// NoOpSink defines a public type used by seckit APIs.
type NoOpSink struct{}

// Emit discards the event.
func (NoOpSink) Emit(context.Context, Event) {}

// ChannelSink defines a public type used by seckit APIs.
//
// ChannelSink instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type ChannelSink struct {
	events chan Event
}

// NewChannelSink describes the newchannelsink operation and its observable behavior.
//
// NewChannelSink does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func NewChannelSink(buffer int) *ChannelSink {
	if buffer <= 0 {
		buffer = 1
	}
	return &ChannelSink{
		events: make(chan Event, buffer),
	}
}

// Emit describes the emit operation and its observable behavior.
//
// Emit does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (s *ChannelSink) Emit(ctx context.Context, event Event) {
	select {
	case s.events <- event:
	case <-ctx.Done():
	}
}

// Events describes the events operation and its observable behavior.
//
// Events does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (s *ChannelSink) Events() <-chan Event {
	return s.events
}

// JSONWriterSink defines a public type used by seckit APIs.
//
// JSONWriterSink instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type JSONWriterSink struct {
	writer io.Writer
	mu     sync.Mutex
}

// NewJSONWriterSink describes the newjsonwritersink operation and its observable behavior.
//
// NewJSONWriterSink does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func NewJSONWriterSink(w io.Writer) *JSONWriterSink {
	return &JSONWriterSink{
		writer: w,
	}
}

// Emit describes the emit operation and its observable behavior.
//
// Emit does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (s *JSONWriterSink) Emit(ctx context.Context, event Event) {
	if s == nil || s.writer == nil {
		return
	}
	data, err := json.Marshal(event)
	if err != nil {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	_, _ = s.writer.Write(data)
	_, _ = s.writer.Write([]byte("\n"))
}
