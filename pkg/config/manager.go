package config

import (
	"context"
	"fmt"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/quorumlab/helmsman/pkg/events"
	"github.com/quorumlab/helmsman/pkg/log"
	"github.com/quorumlab/helmsman/pkg/metrics"
	"github.com/quorumlab/helmsman/pkg/storage"
	"github.com/quorumlab/helmsman/pkg/types"
)

// Store keys, one per configuration field.
const (
	keyClusterConfig  = "clusterConfig"
	keyExecutorConfig = "executorConfig"
	keyServerCount    = "serverCount"
	keySeedCount      = "seedCount"
)

// Options is the launch configuration bundle supplied at process start.
type Options struct {
	ClusterConfig  types.ClusterConfig
	ExecutorConfig types.ExecutorConfig
	Servers        int
	Seeds          int

	// UpdateConfig selects update mode: apply the supplied values, subject
	// to the safety invariants. When false the previously persisted
	// configuration wins.
	UpdateConfig bool

	PlacementStrategy string
	PlanStrategy      string

	// SeedsURL is the coordinator's seed-discovery endpoint, stamped into
	// every provisioned daemon's seed provider.
	SeedsURL string
}

// Manager holds the authoritative cluster configuration for the lifetime of
// the process. It reconciles supplied and persisted configuration exactly
// once at construction; afterwards every setter persists durably before the
// new value becomes visible to readers.
//
// One Manager is constructed at startup and handed to every consumer.
type Manager struct {
	clusterConfig  *field[types.ClusterConfig]
	executorConfig *field[types.ExecutorConfig]
	servers        *field[int]
	seeds          *field[int]

	placementStrategy string
	planStrategy      string
	seedsURL          string

	broker *events.Broker // optional
	logger zerolog.Logger
}

// NewManager creates the configuration manager and reconciles the supplied
// options against the store. Any failure here, invariant violation or store
// error alike, means the coordinator must not come up; the returned error
// wraps the cause. broker may be nil.
func NewManager(opts Options, store storage.Store, broker *events.Broker) (*Manager, error) {
	m := &Manager{
		clusterConfig:     newField(store, keyClusterConfig, opts.ClusterConfig),
		executorConfig:    newField(store, keyExecutorConfig, opts.ExecutorConfig),
		servers:           newField(store, keyServerCount, opts.Servers),
		seeds:             newField(store, keySeedCount, opts.Seeds),
		placementStrategy: opts.PlacementStrategy,
		planStrategy:      opts.PlanStrategy,
		seedsURL:          opts.SeedsURL,
		broker:            broker,
		logger:            log.WithComponent("config"),
	}

	if err := m.reconcile(opts.UpdateConfig); err != nil {
		metrics.ReconcileFailuresTotal.Inc()
		return nil, fmt.Errorf("failed to reconcile configuration: %w", err)
	}

	m.publishEvent(events.EventConfigReconciled, map[string]string{
		"servers": strconv.Itoa(m.Servers()),
		"seeds":   strconv.Itoa(m.Seeds()),
	})

	return m, nil
}

// ClusterConfig returns the current cluster configuration template. The
// result is an independent copy; callers may derive from it freely.
func (m *Manager) ClusterConfig() types.ClusterConfig {
	return m.clusterConfig.get().Clone()
}

// ExecutorConfig returns the current executor configuration template.
func (m *Manager) ExecutorConfig() types.ExecutorConfig {
	return m.executorConfig.get().Clone()
}

// Servers returns the target number of daemons.
func (m *Manager) Servers() int {
	return m.servers.get()
}

// Seeds returns the target number of seed daemons.
func (m *Manager) Seeds() int {
	return m.seeds.get()
}

// PlacementStrategy returns the configured placement strategy identifier.
func (m *Manager) PlacementStrategy() string {
	return m.placementStrategy
}

// PlanStrategy returns the configured plan strategy identifier.
func (m *Manager) PlanStrategy() string {
	return m.planStrategy
}

// SeedsURL returns the coordinator's seed-discovery endpoint.
func (m *Manager) SeedsURL() string {
	return m.seedsURL
}

// SetClusterConfig persists the new template, then publishes it. On a store
// error the previous template stays in effect and the error is returned.
func (m *Manager) SetClusterConfig(cfg types.ClusterConfig) error {
	return m.commit(keyClusterConfig, func() error {
		return m.clusterConfig.set(cfg.Clone())
	})
}

// SetExecutorConfig persists the new executor template, then publishes it.
func (m *Manager) SetExecutorConfig(cfg types.ExecutorConfig) error {
	return m.commit(keyExecutorConfig, func() error {
		return m.executorConfig.set(cfg.Clone())
	})
}

// SetServers persists the new server count, then publishes it.
func (m *Manager) SetServers(servers int) error {
	return m.commit(keyServerCount, func() error {
		return m.servers.set(servers)
	})
}

// SetSeeds persists the new seed count, then publishes it.
func (m *Manager) SetSeeds(seeds int) error {
	return m.commit(keySeedCount, func() error {
		return m.seeds.set(seeds)
	})
}

func (m *Manager) commit(key string, set func() error) error {
	if err := set(); err != nil {
		metrics.ConfigUpdateFailuresTotal.WithLabelValues(key).Inc()
		m.logger.Error().Err(err).Str("field", key).Msg("configuration update rejected")
		return err
	}

	metrics.ConfigUpdatesTotal.WithLabelValues(key).Inc()
	m.logger.Info().Str("field", key).Msg("configuration updated")
	m.publishEvent(events.EventConfigUpdated, map[string]string{"field": key})
	return nil
}

func (m *Manager) publishEvent(t events.EventType, metadata map[string]string) {
	if m.broker == nil {
		return
	}
	m.broker.Publish(&events.Event{Type: t, Metadata: metadata})
}

// Start implements the coordinator lifecycle. Reconciliation already ran at
// construction, so there is nothing left to do.
func (m *Manager) Start(ctx context.Context) error {
	return nil
}

// Stop implements the coordinator lifecycle.
func (m *Manager) Stop(ctx context.Context) error {
	return nil
}
