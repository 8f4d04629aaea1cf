package provision

import (
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/quorumlab/helmsman/pkg/config"
	"github.com/quorumlab/helmsman/pkg/events"
	"github.com/quorumlab/helmsman/pkg/log"
	"github.com/quorumlab/helmsman/pkg/metrics"
	"github.com/quorumlab/helmsman/pkg/types"
)

// Factory mints descriptors for new worker daemons and their executors from
// the current configuration snapshot. Construction is pure in-memory work;
// the factory never touches the store.
type Factory struct {
	cfg    *config.Manager
	broker *events.Broker // optional
	logger zerolog.Logger
}

// NewFactory creates a factory backed by the given configuration manager.
// broker may be nil.
func NewFactory(cfg *config.Manager, broker *events.Broker) *Factory {
	return &Factory{
		cfg:    cfg,
		broker: broker,
		logger: log.WithComponent("provision"),
	}
}

// CreateExecutor builds an executor descriptor from the current executor
// configuration template.
func (f *Factory) CreateExecutor(clusterID, executorID string) types.Executor {
	cfg := f.cfg.ExecutorConfig()

	metrics.ExecutorsProvisioned.Inc()

	return types.Executor{
		ID:        executorID,
		Command:   cfg.Command,
		Arguments: cfg.Arguments,
		CPUs:      cfg.CPUs,
		MemoryMB:  cfg.MemoryMB,
		DiskMB:    cfg.DiskMB,
		HeapMB:    cfg.HeapMB,
		APIPort:   cfg.APIPort,
		AdminPort: cfg.AdminPort,
		URIs: []string{
			cfg.RuntimeLocation,
			cfg.ExecutorLocation,
			cfg.DaemonLocation,
		},
		RuntimeHome: cfg.RuntimeHome,
	}
}

// CreateDaemon builds a daemon descriptor with a freshly generated identity
// and a stamped copy of the current cluster configuration. The stamp assigns
// a new volume identity and points the seed provider at this coordinator's
// seed-discovery endpoint, so the descriptor is fully self-contained: later
// template updates never reach it.
func (f *Factory) CreateDaemon(clusterID, agentID, hostname, name, role, principal string) types.DaemonTask {
	unique := uuid.New().String()

	daemonID := name + "_" + unique
	executorID := name + "_" + unique + "_executor"

	cfg := f.cfg.ClusterConfig()
	stamped := cfg.
		WithVolume(cfg.Volume.WithID()).
		WithSeedProvider(types.HTTPSeedProvider(f.cfg.SeedsURL()))

	task := types.DaemonTask{
		ID:        daemonID,
		ClusterID: clusterID,
		AgentID:   agentID,
		Hostname:  hostname,
		Executor:  f.CreateExecutor(clusterID, executorID),
		Name:      name,
		Role:      role,
		Principal: principal,
		CPUs:      cfg.CPUs,
		MemoryMB:  cfg.MemoryMB,
		DiskMB:    cfg.DiskMB,
		Config:    stamped,
		Status: types.DaemonStatus{
			State:    types.DaemonStateStaging,
			Mode:     types.ModeStarting,
			DaemonID: daemonID,
			AgentID:  agentID,
			Name:     name,
		},
	}

	metrics.DaemonsProvisioned.Inc()
	f.logger.Info().
		Str("daemon_id", daemonID).
		Str("hostname", hostname).
		Msg("provisioned daemon descriptor")

	if f.broker != nil {
		f.broker.Publish(&events.Event{
			Type: events.EventDaemonProvisioned,
			Metadata: map[string]string{
				"daemon_id":   daemonID,
				"executor_id": executorID,
				"hostname":    hostname,
			},
		})
	}

	return task
}
