/*
Package metrics provides Prometheus metrics and health endpoints for the
Helmsman coordinator.

# Metrics

Configuration:
  - helmsman_servers_configured / helmsman_seeds_configured (gauges,
    sampled by the Collector)
  - helmsman_config_updates_total{field} and
    helmsman_config_update_failures_total{field}

Reconciliation:
  - helmsman_reconcile_runs_total{mode} with mode "update" or "steady-state"
  - helmsman_reconcile_failures_total
  - helmsman_reconcile_duration_seconds

Provisioning:
  - helmsman_daemons_provisioned_total
  - helmsman_executors_provisioned_total

# Usage

Timing an operation:

	timer := metrics.NewTimer()
	defer timer.ObserveDuration(metrics.ReconcileDuration)

Serving the endpoints (done by cmd/helmsman):

	mux.Handle("/metrics", metrics.Handler())
	mux.HandleFunc("/health", metrics.HealthHandler())
	mux.HandleFunc("/ready", metrics.ReadyHandler())
	mux.HandleFunc("/live", metrics.LivenessHandler())

# Health

Components register themselves with RegisterComponent and update state with
UpdateComponent. Readiness requires the "store" and "config" components to
be healthy; until reconciliation commits, /ready reports not_ready.
*/
package metrics
