package metrics

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
)

// Collectors for the Sunbright backend. Registered once at startup via Init;
// the request-level middleware lives in the handler package.
var (
	// DiscoveryRequests counts discovery requests by tier and role.
	DiscoveryRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sunbright_discovery_requests_total",
			Help: "Discovery requests, by zoom tier and viewer role.",
		},
		[]string{"tier", "role"},
	)

	// GeocodeResults counts geocode outcomes: cache_hit, resolved, unresolved.
	GeocodeResults = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sunbright_geocode_results_total",
			Help: "Geocoding outcomes, by result (cache_hit, resolved, unresolved).",
		},
		[]string{"result"},
	)

	// TogglesTotal counts toggle flips by target kind, relation and outcome.
	TogglesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sunbright_toggles_total",
			Help: "Toggle flips, by target kind, relation and outcome (created, removed).",
		},
		[]string{"kind", "relation", "outcome"},
	)

	// RequestDuration observes HTTP request latency per endpoint.
	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "sunbright_api_request_duration_seconds",
			Help:    "HTTP request duration in seconds, by endpoint, method and status.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"endpoint", "method", "status"},
	)

	// RequestsInFlight gauges concurrently served requests.
	RequestsInFlight = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "sunbright_requests_in_flight",
			Help: "Number of HTTP requests currently being served.",
		},
	)
)

// Init registers all collectors, plus live pool gauges when a pool is given.
// Call once at startup.
func Init(pool *pgxpool.Pool) {
	prometheus.MustRegister(
		DiscoveryRequests,
		GeocodeResults,
		TogglesTotal,
		RequestDuration,
		RequestsInFlight,
	)

	if pool != nil {
		prometheus.MustRegister(
			prometheus.NewGaugeFunc(
				prometheus.GaugeOpts{
					Name: "sunbright_db_connection_pool_active",
					Help: "Number of active database connections.",
				},
				func() float64 { return float64(pool.Stat().AcquiredConns()) },
			),
			prometheus.NewGaugeFunc(
				prometheus.GaugeOpts{
					Name: "sunbright_db_connection_pool_idle",
					Help: "Number of idle database connections.",
				},
				func() float64 { return float64(pool.Stat().IdleConns()) },
			),
		)
	}
}
