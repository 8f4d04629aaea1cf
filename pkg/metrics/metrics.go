package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Configuration metrics
	ServersConfigured = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "helmsman_servers_configured",
			Help: "Target number of daemons in the cluster",
		},
	)

	SeedsConfigured = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "helmsman_seeds_configured",
			Help: "Target number of seed daemons in the cluster",
		},
	)

	ConfigUpdatesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "helmsman_config_updates_total",
			Help: "Total number of committed configuration updates by field",
		},
		[]string{"field"},
	)

	ConfigUpdateFailuresTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "helmsman_config_update_failures_total",
			Help: "Total number of configuration updates rejected by the store, by field",
		},
		[]string{"field"},
	)

	// Reconciliation metrics
	ReconcileRunsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "helmsman_reconcile_runs_total",
			Help: "Total number of startup reconciliations by mode",
		},
		[]string{"mode"},
	)

	ReconcileFailuresTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "helmsman_reconcile_failures_total",
			Help: "Total number of failed startup reconciliations",
		},
	)

	ReconcileDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "helmsman_reconcile_duration_seconds",
			Help:    "Startup reconciliation duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)

	// Provisioning metrics
	DaemonsProvisioned = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "helmsman_daemons_provisioned_total",
			Help: "Total number of daemon descriptors minted",
		},
	)

	ExecutorsProvisioned = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "helmsman_executors_provisioned_total",
			Help: "Total number of executor descriptors minted",
		},
	)
)

func init() {
	// Register all metrics
	prometheus.MustRegister(ServersConfigured)
	prometheus.MustRegister(SeedsConfigured)
	prometheus.MustRegister(ConfigUpdatesTotal)
	prometheus.MustRegister(ConfigUpdateFailuresTotal)
	prometheus.MustRegister(ReconcileRunsTotal)
	prometheus.MustRegister(ReconcileFailuresTotal)
	prometheus.MustRegister(ReconcileDuration)
	prometheus.MustRegister(DaemonsProvisioned)
	prometheus.MustRegister(ExecutorsProvisioned)
}

// Handler returns the Prometheus HTTP handler
func Handler() http.Handler {
	return promhttp.Handler()
}
