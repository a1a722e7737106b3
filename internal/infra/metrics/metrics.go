// Package metrics registers the Prometheus collectors exported at /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Owner alert outcomes
const (
	OutcomeSent        = "sent"
	OutcomeSimulated   = "simulated"
	OutcomeRateLimited = "rate_limited"
	OutcomeFailed      = "failed"
)

// Geolocation lookup results
const (
	GeoSkipped  = "skipped"
	GeoCacheHit = "cache_hit"
	GeoResolved = "resolved"
	GeoFailed   = "failed"
)

var (
	OwnerAlerts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "petnfc_owner_alerts_total",
			Help: "Owner alerts handled, by outcome.",
		},
		[]string{"outcome"},
	)

	WebhookDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "petnfc_webhook_request_duration_seconds",
			Help:    "Duration of owner alert webhook requests.",
			Buckets: []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"status"},
	)

	GeoLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "petnfc_geo_lookups_total",
			Help: "Client IP geolocation lookups, by result.",
		},
		[]string{"provider", "result"},
	)

	RateLimitChecks = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "petnfc_rate_limit_checks_total",
			Help: "Owner alert throttling decisions, by store and decision.",
		},
		[]string{"store", "decision"},
	)
)

// Decision maps a throttling outcome to its label value.
func Decision(allowed bool) string {
	if allowed {
		return "allow"
	}

	return "reject"
}

// DBConnections tracks the pet directory connection pool.
var DBConnections = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Name: "petnfc_db_connections",
		Help: "Pet directory connection pool, by state.",
	},
	[]string{"state"},
)

// DBPoolWaits counts queries that had to wait for a free connection.
var DBPoolWaits = promauto.NewCounter(
	prometheus.CounterOpts{
		Name: "petnfc_db_pool_waits_total",
		Help: "Pet directory queries that waited for a pooled connection.",
	},
)

// HTTPRequests counts API requests by method, route and status.
var HTTPRequests = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "petnfc_http_requests_total",
		Help: "HTTP requests, by method, route and status.",
	},
	[]string{"method", "route", "status"},
)

// AlertEvents counts owner alert events by provider and result.
var AlertEvents = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "petnfc_alert_events_total",
		Help: "Owner alert events published, by provider and result.",
	},
	[]string{"provider", "result"},
)
