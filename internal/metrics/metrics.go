// Package metrics provides Prometheus observability for the assignment
// engine and scheduler.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Registry is the application's own prometheus registry — exposed on /metrics
// without the default Go collectors noise.
var Registry = prometheus.NewRegistry()

var factory = promauto.With(Registry)

// AssignmentRunsTotal counts auto-assignment runs by outcome ("ok" | "error").
var AssignmentRunsTotal = factory.NewCounterVec(prometheus.CounterOpts{
	Namespace: "assignment",
	Name:      "runs_total",
	Help:      "Total auto-assignment runs by outcome",
}, []string{"outcome"})

// CallersAssignedTotal counts callers successfully assigned, by method.
var CallersAssignedTotal = factory.NewCounterVec(prometheus.CounterOpts{
	Namespace: "assignment",
	Name:      "callers_assigned_total",
	Help:      "Total callers successfully assigned, by method",
}, []string{"method"})

// AssignmentFailuresTotal counts per-caller commit failures, by reason.
var AssignmentFailuresTotal = factory.NewCounterVec(prometheus.CounterOpts{
	Namespace: "assignment",
	Name:      "failures_total",
	Help:      "Per-caller assignment commit failures, by reason",
}, []string{"reason"})

// RunDurationSeconds tracks how long one auto-assignment run takes.
var RunDurationSeconds = factory.NewHistogram(prometheus.HistogramOpts{
	Namespace: "assignment",
	Name:      "run_duration_seconds",
	Help:      "Duration of one auto-assignment run",
	Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
})

// JobLastSuccessTimestamp records the unix time of each scheduler job's last
// successful firing.
var JobLastSuccessTimestamp = factory.NewGaugeVec(prometheus.GaugeOpts{
	Namespace: "scheduler",
	Name:      "job_last_success_timestamp_seconds",
	Help:      "Unix timestamp of the last successful run per scheduler job",
}, []string{"job"})
