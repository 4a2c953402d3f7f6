package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Replication metrics
	IsLeader = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "parley_is_leader",
			Help: "Whether this server is the leader (1 = leader, 0 = follower)",
		},
	)

	PeersTotal = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "parley_peers_total",
			Help: "Number of known peer servers",
		},
	)

	EventsQueued = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "parley_replication_events_queued",
			Help: "Replication events waiting in the fan-out queue",
		},
	)

	EventsDelivered = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "parley_replication_events_delivered_total",
			Help: "Replication events delivered to followers",
		},
	)

	EventDeliveryErrors = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "parley_replication_delivery_errors_total",
			Help: "Failed replication event deliveries",
		},
	)

	EventsApplied = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "parley_replication_events_applied_total",
			Help: "Replication events applied locally by table and op",
		},
		[]string{"table", "op"},
	)

	EventApplyErrors = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "parley_replication_apply_errors_total",
			Help: "Replication events that failed to apply",
		},
	)

	SnapshotsServed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "parley_snapshots_served_total",
			Help: "Full snapshots served to registering followers",
		},
	)

	// Heartbeat and election metrics
	HeartbeatFailures = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "parley_heartbeat_failures_total",
			Help: "Heartbeat rounds in which the leader did not answer",
		},
	)

	Elections = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "parley_elections_total",
			Help: "Elections this server has participated in",
		},
	)

	Promotions = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "parley_promotions_total",
			Help: "Times this server promoted itself to leader",
		},
	)

	// Client API metrics
	ClientRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "parley_client_requests_total",
			Help: "Client requests by method and status code",
		},
		[]string{"method", "code"},
	)

	ClientRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "parley_client_request_duration_seconds",
			Help:    "Client request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method"},
	)
)

func init() {
	// Register all metrics
	prometheus.MustRegister(IsLeader)
	prometheus.MustRegister(PeersTotal)
	prometheus.MustRegister(EventsQueued)
	prometheus.MustRegister(EventsDelivered)
	prometheus.MustRegister(EventDeliveryErrors)
	prometheus.MustRegister(EventsApplied)
	prometheus.MustRegister(EventApplyErrors)
	prometheus.MustRegister(SnapshotsServed)
	prometheus.MustRegister(HeartbeatFailures)
	prometheus.MustRegister(Elections)
	prometheus.MustRegister(Promotions)
	prometheus.MustRegister(ClientRequestsTotal)
	prometheus.MustRegister(ClientRequestDuration)
}

// Handler returns the Prometheus HTTP handler
func Handler() http.Handler {
	return promhttp.Handler()
}
