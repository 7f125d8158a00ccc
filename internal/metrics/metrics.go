// Package metrics exposes Prometheus collectors for the tracker
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// RPC metrics
var (
	RPCsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameRPCsTotal,
			Help: HelpTextRPCsTotal,
		},
		[]string{LabelMethod, LabelCode},
	)

	RPCDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameRPCDuration,
			Help:    HelpTextRPCDuration,
			Buckets: RPCLatencyBuckets,
		},
		[]string{LabelMethod},
	)
)

// Tracker metrics
var (
	EvaluationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEvaluationsTotal,
			Help: HelpTextEvaluationsTotal,
		},
		[]string{LabelKind, LabelVerdict},
	)

	MutationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameMutationsTotal,
			Help: HelpTextMutationsTotal,
		},
		[]string{LabelOp},
	)

	SnapshotsSaved = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameSnapshotsSaved,
			Help: HelpTextSnapshotsSaved,
		},
	)

	SnapshotsRestored = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameSnapshotsRestored,
			Help: HelpTextSnapshotsRestored,
		},
	)

	LocationsAvailable = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameLocationsAvailable,
			Help: HelpTextLocationsAvailable,
		},
	)
)

// RecordBoss counts a boss evaluation
func RecordBoss(defeatable bool) {
	verdict := "false"
	if defeatable {
		verdict = "true"
	}
	EvaluationsTotal.WithLabelValues(KindBoss, verdict).Inc()
}

// RecordLocation counts a location evaluation
func RecordLocation(verdict string) {
	EvaluationsTotal.WithLabelValues(KindLocation, verdict).Inc()
}

// RecordMutation counts a state change
func RecordMutation(op string) {
	MutationsTotal.WithLabelValues(op).Inc()
}
