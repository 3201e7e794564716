package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// Content Prometheus metrics.
var (
	ChecklistEvaluationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "earlyhelp",
			Name:      "checklist_evaluations_total",
			Help:      "Checklist evaluations by resulting level",
		},
		[]string{"level"},
	)

	SearchResults = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "earlyhelp",
			Name:      "search_results",
			Help:      "Number of records matching a listing query before pagination",
			Buckets:   []float64{0, 1, 2, 5, 10, 20, 50, 100, 250},
		},
		[]string{"kind", "mode"},
	)

	ContentUpsertsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "earlyhelp",
			Name:      "content_upserts_total",
			Help:      "Content writes by record kind and outcome",
		},
		[]string{"kind", "result"}, // "created" / "updated"
	)
)

var registerContentOnce sync.Once

// RegisterContentMetrics registers content metrics. Safe to call more than once.
func RegisterContentMetrics() {
	registerContentOnce.Do(func() {
		prometheus.MustRegister(ChecklistEvaluationsTotal)
		prometheus.MustRegister(SearchResults)
		prometheus.MustRegister(ContentUpsertsTotal)
	})
}

// UpsertResult returns the outcome label for a write.
func UpsertResult(created bool) string {
	if created {
		return "created"
	}
	return "updated"
}
