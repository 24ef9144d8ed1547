// Package metrics holds the prometheus collectors exported on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	SimulationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "credit_simulations_total",
			Help: "Credit simulations by amortization method and outcome",
		},
		[]string{"method", "outcome"},
	)

	SimulationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "credit_simulation_duration_seconds",
			Help:    "Time spent building a simulation, reference data lookups included",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method"},
	)

	ProformasSaved = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "credit_proformas_saved_total",
			Help: "Proformas persisted",
		},
	)

	ProformasExpired = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "credit_proformas_expired_total",
			Help: "Draft proformas moved to EXPIRED by the expiry job",
		},
	)

	ProfileCacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "credit_profile_cache_lookups_total",
			Help: "Financing profile cache lookups by result",
		},
		[]string{"result"},
	)
)

// Outcome labels a simulation result for SimulationsTotal.
func Outcome(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}
