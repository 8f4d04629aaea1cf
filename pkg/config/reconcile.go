package config

import (
	"errors"
	"fmt"

	"github.com/quorumlab/helmsman/pkg/metrics"
)

// Invariant violations raised during reconciliation. Both are fatal for the
// starting process: the coordinator must not serve with an inconsistent
// configuration.
var (
	// ErrServerGrowth is returned when update mode requests more servers
	// than a previous run persisted. Cluster growth goes through the
	// explicit server-addition workflow, never through a relaunch.
	ErrServerGrowth = errors.New("server count exceeds persisted configuration")

	// ErrSeedsExceedServers is returned when more seeds than servers are
	// requested.
	ErrSeedsExceedServers = errors.New("seed count exceeds server count")
)

// reconcile merges the supplied configuration with whatever an earlier run
// of this cluster persisted, and guarantees the winning values are durable
// before returning.
//
// In update mode the supplied values are checked against the invariants and
// then overwrite the store. In steady-state mode each value is written only
// if absent and the persisted value is adopted, so a restart always
// converges on the configuration of the first run.
func (m *Manager) reconcile(updateConfig bool) error {
	timer := metrics.NewTimer()
	defer timer.ObserveDuration(metrics.ReconcileDuration)

	m.logger.Info().Msg("reconciling supplied and persisted configuration")

	persisted, found, err := m.servers.ref.Load()
	if err != nil {
		return err
	}

	if updateConfig {
		metrics.ReconcileRunsTotal.WithLabelValues("update").Inc()
		m.logger.Info().Msg("configuration update requested")

		servers := m.servers.get()
		seeds := m.seeds.get()

		if found && servers > persisted {
			err := fmt.Errorf(
				"%w: %d servers requested but %d are configured; "+
					"add servers through the server-addition workflow",
				ErrServerGrowth, servers, persisted)
			m.logger.Error().Err(err).Msg("rejecting configuration update")
			return err
		}

		if seeds > servers {
			err := fmt.Errorf(
				"%w: %d seeds requested for %d servers; "+
					"reduce the seeds or increase the servers",
				ErrSeedsExceedServers, seeds, servers)
			m.logger.Error().Err(err).Msg("rejecting configuration update")
			return err
		}

		if err := m.servers.set(servers); err != nil {
			return err
		}
		if err := m.seeds.set(seeds); err != nil {
			return err
		}
		if err := m.clusterConfig.set(m.clusterConfig.get()); err != nil {
			return err
		}
		if err := m.executorConfig.set(m.executorConfig.get()); err != nil {
			return err
		}
	} else {
		metrics.ReconcileRunsTotal.WithLabelValues("steady-state").Inc()
		m.logger.Info().Msg("using persisted configuration")

		if err := m.servers.adopt(); err != nil {
			return err
		}
		if err := m.seeds.adopt(); err != nil {
			return err
		}
		if err := m.clusterConfig.adopt(); err != nil {
			return err
		}
		if err := m.executorConfig.adopt(); err != nil {
			return err
		}
	}

	m.logger.Info().
		Int("servers", m.servers.get()).
		Int("seeds", m.seeds.get()).
		Msg("configuration reconciled")

	return nil
}
