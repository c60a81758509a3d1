// Package metrics exposes dexboard's Prometheus counters
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "dexboard"

// Fetch results
const (
	ResultOK    = "ok"
	ResultError = "error"
)

// Cache lookups
const (
	CacheHit  = "hit"
	CacheMiss = "miss"
)

// Event outcomes
const (
	OutcomeApplied = "applied"
	OutcomeNoop    = "noop"
	OutcomeMiss    = "miss"
	OutcomeError   = "error"
)

var (
	// apiFetches counts creature API requests.
	// Labels: endpoint (pokemon, species, evolution_chain), result (ok, error)
	apiFetches = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "api",
		Name:      "fetches_total",
		Help:      "Creature API requests by endpoint and result",
	}, []string{"endpoint", "result"})

	// apiCache counts response cache lookups.
	// Labels: result (hit, miss)
	apiCache = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "api",
		Name:      "cache_lookups_total",
		Help:      "Response cache lookups by result",
	}, []string{"result"})

	// dashboardEvents counts selection events.
	// Labels: action (view, pick, reset), outcome (applied, noop, miss, error)
	dashboardEvents = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "dashboard",
		Name:      "events_total",
		Help:      "Selection events by action and outcome",
	}, []string{"action", "outcome"})

	// loadedRecords is the size of the in-memory creature table
	loadedRecords = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "store",
		Name:      "records",
		Help:      "Creatures loaded into the record store",
	})

	// coercionFailures counts values that could not be read as numbers at load
	coercionFailures = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "store",
		Name:      "coercion_failures_total",
		Help:      "Stored values that failed numeric coercion",
	})
)

// RecordFetch records one API request
func RecordFetch(endpoint, result string) {
	apiFetches.WithLabelValues(endpoint, result).Inc()
}

// RecordCache records one cache lookup
func RecordCache(result string) {
	apiCache.WithLabelValues(result).Inc()
}

// RecordEvent records one dashboard event
func RecordEvent(action, outcome string) {
	dashboardEvents.WithLabelValues(action, outcome).Inc()
}

// RecordLoad records the outcome of a store load
func RecordLoad(records, failures int) {
	loadedRecords.Set(float64(records))
	coercionFailures.Add(float64(failures))
}

// Handler serves the default registry
func Handler() http.Handler {
	return promhttp.Handler()
}
