package assistant

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	completionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "chefmate_completions_total",
			Help: "Total number of completion calls by operation and outcome",
		},
		[]string{"operation", "outcome"},
	)

	completionDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "chefmate_completion_duration_seconds",
			Help:    "Completion provider latency in seconds",
			Buckets: []float64{0.5, 1, 2.5, 5, 10, 20, 40, 80},
		},
		[]string{"operation"},
	)
)

func outcome(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}
