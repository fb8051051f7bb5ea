package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	RunsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "kaitori_runs_total",
			Help: "Total aggregation runs executed",
		},
	)

	ObservationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kaitori_observations_total",
			Help: "Observations processed per shop",
		},
		[]string{"shop"},
	)

	ObservationsRejected = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kaitori_observations_rejected_total",
			Help: "Observations rejected before scoring, by reason",
		},
		[]string{"shop", "reason"},
	)

	ObservationsUnmatched = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kaitori_observations_unmatched_total",
			Help: "Eligible observations below the match threshold",
		},
		[]string{"shop"},
	)

	EntriesMatched = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kaitori_entries_matched_total",
			Help: "Distinct catalog entries matched per shop run",
		},
		[]string{"shop"},
	)

	PricedEntries = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "kaitori_priced_entries",
			Help: "Catalog entries with at least one recorded price after the last run",
		},
	)
)

// Register registers all collectors with the default registry. Call once at
// process start; the /metrics endpoint is wired in the HTTP router.
func Register() {
	prometheus.MustRegister(
		RunsTotal,
		ObservationsTotal,
		ObservationsRejected,
		ObservationsUnmatched,
		EntriesMatched,
		PricedEntries,
	)
}
