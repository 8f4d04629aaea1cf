package types

import (
	"github.com/google/uuid"
)

// ClusterConfig is the per-daemon resource shape plus the application-level
// configuration every daemon in the cluster is launched with. It is a value
// type: holders derive new configurations with the With* helpers or Clone,
// never by mutating a shared instance.
type ClusterConfig struct {
	CPUs     float64   `json:"cpus"`
	MemoryMB int       `json:"memory_mb"`
	DiskMB   int       `json:"disk_mb"`
	App      AppConfig `json:"app"`
	Volume   Volume    `json:"volume"`
}

// AppConfig carries the datastore software settings baked into each daemon.
type AppConfig struct {
	ClusterName  string            `json:"cluster_name"`
	Version      string            `json:"version"`
	GossipPort   int               `json:"gossip_port"`
	ClientPort   int               `json:"client_port"`
	Settings     map[string]string `json:"settings,omitempty"`
	SeedProvider SeedProvider      `json:"seed_provider"`
}

// SeedProvider describes how daemons discover the cluster's seed peers.
type SeedProvider struct {
	Kind       string            `json:"kind"`
	Parameters map[string]string `json:"parameters,omitempty"`
}

// SeedProvider kinds.
const (
	SeedProviderStatic = "static"
	SeedProviderHTTP   = "http"
)

// HTTPSeedProvider returns a seed provider that resolves seeds from the
// coordinator's seed-discovery endpoint.
func HTTPSeedProvider(seedsURL string) SeedProvider {
	return SeedProvider{
		Kind:       SeedProviderHTTP,
		Parameters: map[string]string{"seeds_url": seedsURL},
	}
}

// Clone returns a deep copy of the seed provider.
func (p SeedProvider) Clone() SeedProvider {
	out := p
	out.Parameters = cloneMap(p.Parameters)
	return out
}

// Volume is the persistent data volume attached to a daemon.
type Volume struct {
	ID            string `json:"id"`
	ContainerPath string `json:"container_path"`
	SizeMB        int    `json:"size_mb"`
}

// WithID returns a copy of the volume carrying a freshly generated identity.
func (v Volume) WithID() Volume {
	v.ID = uuid.New().String()
	return v
}

// Clone returns a deep copy of the configuration. The settings map and seed
// provider parameters are copied so the result shares no mutable state with
// the receiver.
func (c ClusterConfig) Clone() ClusterConfig {
	out := c
	out.App.Settings = cloneMap(c.App.Settings)
	out.App.SeedProvider = c.App.SeedProvider.Clone()
	return out
}

// WithVolume returns a deep copy of the configuration with the volume
// replaced.
func (c ClusterConfig) WithVolume(v Volume) ClusterConfig {
	out := c.Clone()
	out.Volume = v
	return out
}

// WithSeedProvider returns a deep copy of the configuration with the seed
// provider replaced.
func (c ClusterConfig) WithSeedProvider(p SeedProvider) ClusterConfig {
	out := c.Clone()
	out.App.SeedProvider = p.Clone()
	return out
}

// ExecutorConfig is the template for the executor process that launches and
// supervises one daemon. Same ownership discipline as ClusterConfig.
type ExecutorConfig struct {
	Command   string   `json:"command"`
	Arguments []string `json:"arguments,omitempty"`
	CPUs      float64  `json:"cpus"`
	MemoryMB  int      `json:"memory_mb"`
	DiskMB    int      `json:"disk_mb"`
	HeapMB    int      `json:"heap_mb"`
	APIPort   int      `json:"api_port"`
	AdminPort int      `json:"admin_port"`

	// Artifact locations fetched before launch.
	RuntimeLocation  string `json:"runtime_location"`
	ExecutorLocation string `json:"executor_location"`
	DaemonLocation   string `json:"daemon_location"`

	RuntimeHome string `json:"runtime_home"`
}

// Clone returns a deep copy of the executor configuration.
func (c ExecutorConfig) Clone() ExecutorConfig {
	out := c
	out.Arguments = cloneSlice(c.Arguments)
	return out
}

// Executor identifies the executor process backing one daemon. Built once by
// the provisioner and never modified afterwards.
type Executor struct {
	ID          string   `json:"id"`
	Command     string   `json:"command"`
	Arguments   []string `json:"arguments,omitempty"`
	CPUs        float64  `json:"cpus"`
	MemoryMB    int      `json:"memory_mb"`
	DiskMB      int      `json:"disk_mb"`
	HeapMB      int      `json:"heap_mb"`
	APIPort     int      `json:"api_port"`
	AdminPort   int      `json:"admin_port"`
	URIs        []string `json:"uris,omitempty"`
	RuntimeHome string   `json:"runtime_home"`
}

// DaemonTask identifies one worker daemon instance: where it is placed, the
// executor that supervises it, and the configuration it was stamped with.
// Each task owns its own ClusterConfig copy, so later template updates never
// reach already-issued tasks.
type DaemonTask struct {
	ID        string        `json:"id"`
	ClusterID string        `json:"cluster_id"`
	AgentID   string        `json:"agent_id"`
	Hostname  string        `json:"hostname"`
	Executor  Executor      `json:"executor"`
	Name      string        `json:"name"`
	Role      string        `json:"role"`
	Principal string        `json:"principal"`
	CPUs      float64       `json:"cpus"`
	MemoryMB  int           `json:"memory_mb"`
	DiskMB    int           `json:"disk_mb"`
	Config    ClusterConfig `json:"config"`
	Status    DaemonStatus  `json:"status"`
}

// DaemonStatus is the lifecycle state reported for a daemon.
type DaemonStatus struct {
	State       DaemonState `json:"state"`
	Mode        DaemonMode  `json:"mode"`
	DaemonID    string      `json:"daemon_id"`
	AgentID     string      `json:"agent_id"`
	Name        string      `json:"name"`
	ClusterRole string      `json:"cluster_role,omitempty"` // empty until the daemon joins the ring
}

// DaemonState represents the scheduling state of a daemon task.
type DaemonState string

const (
	DaemonStateStaging  DaemonState = "staging"
	DaemonStateRunning  DaemonState = "running"
	DaemonStateFailed   DaemonState = "failed"
	DaemonStateFinished DaemonState = "finished"
)

// DaemonMode represents the datastore-level mode a daemon reports.
type DaemonMode string

const (
	ModeStarting DaemonMode = "starting"
	ModeNormal   DaemonMode = "normal"
	ModeJoining  DaemonMode = "joining"
	ModeLeaving  DaemonMode = "leaving"
	ModeDraining DaemonMode = "draining"
	ModeDrained  DaemonMode = "drained"
)

func cloneMap(in map[string]string) map[string]string {
	if in == nil {
		return nil
	}
	out := make(map[string]string, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}

func cloneSlice(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}
