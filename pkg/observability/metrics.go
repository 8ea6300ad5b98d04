// Package observability adapts dispatch lifecycle hooks into Prometheus
// metrics.
package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/aretw0/parley"
)

// Metrics holds the dispatch counters and timing for one dispatcher.
// Hooks run synchronously on the dispatching goroutine, so the in-flight
// start time needs no locking.
type Metrics struct {
	dispatches prometheus.Counter
	runs       *prometheus.CounterVec
	failures   *prometheus.CounterVec
	duration   prometheus.Histogram

	// started is the in-flight dispatch's start time, cleared once its
	// duration is observed. A dispatch whose outcome is entering a nested
	// loop ends with neither a run nor an error and is not observed: its
	// wall time is user time at the inner prompt, not dispatch work.
	started time.Time
}

// NewMetrics creates and registers the metric set on reg. Pass
// prometheus.DefaultRegisterer for the default registry.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		dispatches: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "parley_dispatches_total",
			Help: "Total number of execute-mode dispatches",
		}),
		runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "parley_command_runs_total",
			Help: "Handler executions by command usage",
		}, []string{"command"}),
		failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "parley_dispatch_failures_total",
			Help: "Dispatch failures by kind",
		}, []string{"kind"}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name: "parley_dispatch_duration_seconds",
			Help: "Wall time from dispatch start to handler return or failure",
		}),
	}

	for _, c := range []prometheus.Collector{m.dispatches, m.runs, m.failures, m.duration} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Hooks returns the lifecycle hooks feeding this metric set, for
// parley.WithLifecycleHooks.
func (m *Metrics) Hooks() parley.LifecycleHooks {
	return parley.LifecycleHooks{
		OnDispatch: func(e *parley.DispatchEvent) {
			m.started = e.Timestamp
			m.dispatches.Inc()
		},
		OnRun: func(e *parley.RunEvent) {
			m.runs.WithLabelValues(e.Usage).Inc()
			m.observe(e.Timestamp)
		},
		OnError: func(e *parley.ErrorEvent) {
			m.failures.WithLabelValues(e.Kind).Inc()
			m.observe(e.Timestamp)
		},
	}
}

func (m *Metrics) observe(end time.Time) {
	if m.started.IsZero() {
		return
	}
	m.duration.Observe(end.Sub(m.started).Seconds())
	m.started = time.Time{}
}
