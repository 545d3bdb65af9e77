// Package monitor reports CORS violations to an external sink.
package monitor

import (
	"context"
	"log/slog"
	"time"

	"github.com/nadavyigal/originguard/internal/policy"
)

// EventType is the type tag of every violation event.
const EventType = "CORS_VIOLATION"

// maxReportedOrigin truncates hostile origins before they reach a sink.
const maxReportedOrigin = 512

// Event is a single rejected validation.
type Event struct {
	Type          string    `json:"type"`
	Origin        string    `json:"origin"`
	ViolationType string    `json:"violationType"`
	Timestamp     time.Time `json:"timestamp"`
}

// NewEvent builds the event for a rejected verdict.
func NewEvent(v policy.Verdict, at time.Time) Event {
	origin := v.Origin()
	if len(origin) > maxReportedOrigin {
		origin = origin[:maxReportedOrigin] + "…"
	}
	return Event{
		Type:          EventType,
		Origin:        origin,
		ViolationType: v.Violation().String(),
		Timestamp:     at.UTC(),
	}
}

// Sink receives violation events. Implementations may fail in any way,
// including panicking; callers go through Notify.
type Sink interface {
	Report(Event)
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(Event)

// Report calls f(e).
func (f SinkFunc) Report(e Event) { f(e) }

// Notify delivers e to sink, swallowing any panic so that a broken sink
// can never fail the request being validated. It reports whether delivery
// completed.
func Notify(sink Sink, e Event) (delivered bool) {
	if sink == nil {
		return false
	}
	defer func() {
		if r := recover(); r != nil {
			delivered = false
		}
	}()
	sink.Report(e)
	return true
}

// LogSink writes events to a structured logger at warn level.
type LogSink struct {
	Logger *slog.Logger
}

// Report implements Sink.
func (s LogSink) Report(e Event) {
	logger := s.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger.LogAttrs(context.Background(), slog.LevelWarn, "cors violation",
		slog.String("type", e.Type),
		slog.String("origin", e.Origin),
		slog.String("violation_type", e.ViolationType),
		slog.Time("timestamp", e.Timestamp),
	)
}
