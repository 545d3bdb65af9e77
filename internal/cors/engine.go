// Package cors turns origin verdicts into CORS responses.
package cors

import (
	"log/slog"
	"time"

	"github.com/nadavyigal/originguard/internal/monitor"
	"github.com/nadavyigal/originguard/internal/origin"
	"github.com/nadavyigal/originguard/internal/policy"
)

// SnapshotSource supplies the policy for one evaluation.
type SnapshotSource interface {
	Snapshot() policy.Snapshot
}

// Engine evaluates request origins against the current policy. It keeps
// no per-request state; every call resolves its own snapshot.
type Engine struct {
	source    SnapshotSource
	validator origin.Validator
	sink      monitor.Sink
	metrics   *monitor.Metrics
	now       func() time.Time
}

// Option configures an Engine.
type Option func(*Engine)

// WithSink sets the monitoring sink for violation events.
func WithSink(s monitor.Sink) Option {
	return func(e *Engine) { e.sink = s }
}

// WithMetrics sets the Prometheus collectors.
func WithMetrics(m *monitor.Metrics) Option {
	return func(e *Engine) { e.metrics = m }
}

// WithLogger sets the logger for invalid-pattern warnings.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) { e.validator.Logger = l }
}

// WithClock overrides time.Now for event timestamps.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// NewEngine returns an Engine reading policy from source.
func NewEngine(source SnapshotSource, opts ...Option) *Engine {
	e := &Engine{
		source: source,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	e.validator.OnInvalidPattern = func(string, error) {
		e.metrics.RecordInvalidPattern()
	}
	return e
}

// Validate returns the verdict for origin and, when monitoring is enabled
// and the origin is rejected, emits exactly one violation event.
func (e *Engine) Validate(origin string) policy.Verdict {
	snap := e.source.Snapshot()
	return e.validate(origin, snap)
}

// Evaluate returns the verdict for origin without any monitoring side
// effect.
func (e *Engine) Evaluate(origin string) policy.Verdict {
	return e.validator.Validate(origin, e.source.Snapshot())
}

func (e *Engine) validate(origin string, snap policy.Snapshot) policy.Verdict {
	v := e.validator.Validate(origin, snap)
	e.metrics.RecordVerdict(v)
	if !v.Allowed() && snap.MonitoringEnabled {
		if !monitor.Notify(e.sink, monitor.NewEvent(v, e.now())) && e.sink != nil {
			e.metrics.RecordSinkFailure()
		}
	}
	return v
}

// Summary returns the effective configuration without validating anything.
func (e *Engine) Summary() policy.Summary {
	return e.source.Snapshot().Summary()
}
