// Package metrics exposes Prometheus instrumentation for the processing
// pipeline.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// AttemptsTotal counts pipeline runs by mode and terminal status.
	AttemptsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "visionassist_processing_attempts_total",
		Help: "Processing attempts by mode and terminal status.",
	}, []string{"mode", "status"})

	// StageDuration observes wall-clock duration of model gateway calls.
	StageDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "visionassist_model_stage_duration_seconds",
		Help:    "Wall-clock duration of vision and language model calls.",
		Buckets: []float64{0.25, 0.5, 1, 2, 5, 10, 20, 30, 60, 120},
	}, []string{"stage", "provider"})
)
