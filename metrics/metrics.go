// Package metrics holds the Prometheus collectors exposed on /metrics.
package metrics

import (
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	registry *prometheus.Registry
	once     sync.Once
)

// Counter metrics
var (
	HTTPRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "sportshub",
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests by route and status code",
	}, []string{"method", "route", "status"})
	StandingsComputationsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "sportshub",
		Name:      "standings_computations_total",
		Help:      "Total number of league tables computed from match results",
	}, []string{"sport"})
	StandingsCacheHitsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "sportshub",
		Name:      "standings_cache_hits_total",
		Help:      "Total number of standings served from the cache",
	}, []string{"sport"})
	StandingsCacheMissesTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "sportshub",
		Name:      "standings_cache_misses_total",
		Help:      "Total number of standings requests that missed the cache",
	}, []string{"sport"})
	MatchResultsRecordedTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "sportshub",
		Name:      "match_results_recorded_total",
		Help:      "Total number of match results written",
	}, []string{"sport", "status"})
	SeedRecordsCreatedTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "sportshub",
		Name:      "seed_records_created_total",
		Help:      "Total number of rows created by the fixture loader",
	}, []string{"kind"})
)

// Histogram metrics
var (
	HTTPRequestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "sportshub",
		Name:      "http_request_duration_seconds",
		Help:      "Duration of HTTP requests in seconds",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route"})
	StandingsComputeDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "sportshub",
		Name:      "standings_compute_duration_seconds",
		Help:      "Duration of loading and computing a league table in seconds",
		Buckets:   []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
	}, []string{"sport"})
)

// InitRegistry initializes the global Prometheus registry.
func InitRegistry() *prometheus.Registry {
	once.Do(func() {
		registry = prometheus.NewRegistry()

		registry.MustRegister(HTTPRequestsTotal)
		registry.MustRegister(StandingsComputationsTotal)
		registry.MustRegister(StandingsCacheHitsTotal)
		registry.MustRegister(StandingsCacheMissesTotal)
		registry.MustRegister(MatchResultsRecordedTotal)
		registry.MustRegister(SeedRecordsCreatedTotal)

		registry.MustRegister(HTTPRequestDuration)
		registry.MustRegister(StandingsComputeDuration)
	})
	return registry
}

// Handler returns the Prometheus HTTP handler.
func Handler() http.Handler {
	return promhttp.HandlerFor(InitRegistry(), promhttp.HandlerOpts{})
}

func RecordHTTPRequest(method, route, status string, durationSeconds float64) {
	HTTPRequestsTotal.WithLabelValues(method, route, status).Inc()
	HTTPRequestDuration.WithLabelValues(method, route).Observe(durationSeconds)
}

// RecordStandingsComputation records a table built from the database.
func RecordStandingsComputation(sport string, durationSeconds float64) {
	StandingsComputationsTotal.WithLabelValues(sport).Inc()
	StandingsComputeDuration.WithLabelValues(sport).Observe(durationSeconds)
}

func RecordStandingsCacheHit(sport string) {
	StandingsCacheHitsTotal.WithLabelValues(sport).Inc()
}

func RecordStandingsCacheMiss(sport string) {
	StandingsCacheMissesTotal.WithLabelValues(sport).Inc()
}

func RecordMatchResult(sport, status string) {
	MatchResultsRecordedTotal.WithLabelValues(sport, status).Inc()
}

// RecordSeedCreated counts rows inserted by the fixture loader, by kind
// (team, match, stats, performance).
func RecordSeedCreated(kind string, n int) {
	SeedRecordsCreatedTotal.WithLabelValues(kind).Add(float64(n))
}
