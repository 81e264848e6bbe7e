// Package metrics provides Prometheus instrumentation for the scoring engine.
package metrics

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// ScoringCallsTotal counts scoring invocations by engine component.
	ScoringCallsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "fundmatch",
			Name:      "scoring_calls_total",
			Help:      "Total scoring calls by component.",
		},
		[]string{"component"},
	)

	// FallbacksTotal counts fallback activations by component. A rising rate
	// means the model path or an input shape is broken.
	FallbacksTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "fundmatch",
			Name:      "fallbacks_total",
			Help:      "Total fallback activations by component.",
		},
		[]string{"component"},
	)

	// MatchCandidatesSkippedTotal counts opportunities dropped from a match
	// batch because their individual computation failed.
	MatchCandidatesSkippedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "fundmatch",
			Name:      "match_candidates_skipped_total",
			Help:      "Opportunities skipped during match batches.",
		},
	)

	// MatchScores observes the distribution of emitted match scores.
	MatchScores = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "fundmatch",
			Name:      "match_scores",
			Help:      "Distribution of emitted match scores.",
			Buckets:   prometheus.LinearBuckets(30, 10, 8),
		},
	)
)

func init() {
	prometheus.MustRegister(
		ScoringCallsTotal,
		FallbacksTotal,
		MatchCandidatesSkippedTotal,
		MatchScores,
	)
}

// Handler exposes the registry for a gin route.
func Handler() gin.HandlerFunc {
	return gin.WrapH(promhttp.Handler())
}
