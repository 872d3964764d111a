package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters and histograms for the classifier.
type Metrics struct {
	PlantsClassified prometheus.Counter
	ScoringFaults    prometheus.Counter

	ProfileAssignments *prometheus.CounterVec // labels: profile
	Fallbacks          *prometheus.CounterVec // labels: reason={below_threshold,fault}
	CacheLookups       *prometheus.CounterVec // labels: result={hit,miss}

	ClassifyDuration prometheus.Histogram
}

// NewMetrics creates and registers all classifier metrics with the default
// Prometheus registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		PlantsClassified: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "vivarium_match",
			Name:      "plants_classified_total",
			Help:      "Total plant records classified.",
		}),
		ScoringFaults: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "vivarium_match",
			Name:      "scoring_faults_total",
			Help:      "Total runtime faults recovered during classification.",
		}),
		ProfileAssignments: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "vivarium_match",
			Name:      "profile_assignments_total",
			Help:      "Top-ranked profile assignments by profile name.",
		}, []string{"profile"}),
		Fallbacks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "vivarium_match",
			Name:      "fallbacks_total",
			Help:      "Fallback classifications by reason.",
		}, []string{"reason"}),
		CacheLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "vivarium_match",
			Name:      "cache_lookups_total",
			Help:      "Classification cache lookups by result.",
		}, []string{"result"}),
		ClassifyDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "vivarium_match",
			Name:      "classify_duration_seconds",
			Help:      "Duration of a single record classification.",
			Buckets:   []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1},
		}),
	}

	prometheus.MustRegister(
		m.PlantsClassified,
		m.ScoringFaults,
		m.ProfileAssignments,
		m.Fallbacks,
		m.CacheLookups,
		m.ClassifyDuration,
	)

	return m
}

// NewMetricsForTesting creates Metrics with a fresh registry to avoid
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return &Metrics{
		PlantsClassified:   prometheus.NewCounter(prometheus.CounterOpts{Namespace: "vivarium_match", Name: "plants_classified_total"}),
		ScoringFaults:      prometheus.NewCounter(prometheus.CounterOpts{Namespace: "vivarium_match", Name: "scoring_faults_total"}),
		ProfileAssignments: prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "vivarium_match", Name: "profile_assignments_total"}, []string{"profile"}),
		Fallbacks:          prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "vivarium_match", Name: "fallbacks_total"}, []string{"reason"}),
		CacheLookups:       prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "vivarium_match", Name: "cache_lookups_total"}, []string{"result"}),
		ClassifyDuration:   prometheus.NewHistogram(prometheus.HistogramOpts{Namespace: "vivarium_match", Name: "classify_duration_seconds"}),
	}
}
