package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quorumlab/helmsman/pkg/storage"
	"github.com/quorumlab/helmsman/pkg/types"
)

func testOptions() Options {
	return Options{
		ClusterConfig: types.ClusterConfig{
			CPUs:     2,
			MemoryMB: 8192,
			DiskMB:   20480,
			App: types.AppConfig{
				ClusterName: "ring-1",
				Version:     "4.1.3",
				Settings:    map[string]string{"num_tokens": "256"},
			},
			Volume: types.Volume{ContainerPath: "/var/lib/data", SizeMB: 10240},
		},
		ExecutorConfig: types.ExecutorConfig{
			Command:   "./executor",
			Arguments: []string{"-Xmx512m"},
			CPUs:      0.5,
			MemoryMB:  1024,
		},
		Servers:           3,
		Seeds:             2,
		PlacementStrategy: "node",
		PlanStrategy:      "install",
		SeedsURL:          "http://coordinator:9000/seeds",
	}
}

func newManagerStore(t *testing.T) *storage.BoltStore {
	t.Helper()
	store, err := storage.NewBoltStore(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

// seedStore persists an initial configuration the way a previous run would
// have left it.
func seedStore(t *testing.T, store storage.Store, servers, seeds int) {
	t.Helper()
	opts := testOptions()
	opts.Servers = servers
	opts.Seeds = seeds
	_, err := NewManager(opts, store, nil)
	require.NoError(t, err)
}

func TestFirstRunSteadyStateAdoptsSuppliedDefaults(t *testing.T) {
	store := newManagerStore(t)

	m, err := NewManager(testOptions(), store, nil)
	require.NoError(t, err)

	assert.Equal(t, 3, m.Servers())
	assert.Equal(t, 2, m.Seeds())
	assert.Equal(t, "ring-1", m.ClusterConfig().App.ClusterName)
	assert.Equal(t, "./executor", m.ExecutorConfig().Command)

	// The store now holds the defaults.
	ref := storage.NewRef[int](store, "serverCount")
	servers, found, err := ref.Load()
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, 3, servers)
}

func TestSteadyStateTrustsPersistedOverSupplied(t *testing.T) {
	store := newManagerStore(t)
	seedStore(t, store, 3, 2)

	// Relaunch with different defaults; the persisted values win.
	opts := testOptions()
	opts.Servers = 10
	opts.Seeds = 1
	opts.ClusterConfig.App.ClusterName = "other-ring"

	m, err := NewManager(opts, store, nil)
	require.NoError(t, err)

	assert.Equal(t, 3, m.Servers())
	assert.Equal(t, 2, m.Seeds())
	assert.Equal(t, "ring-1", m.ClusterConfig().App.ClusterName)
}

func TestSteadyStateIsIdempotent(t *testing.T) {
	store := newManagerStore(t)
	seedStore(t, store, 3, 2)

	first, err := NewManager(testOptions(), store, nil)
	require.NoError(t, err)
	second, err := NewManager(testOptions(), store, nil)
	require.NoError(t, err)

	assert.Equal(t, first.Servers(), second.Servers())
	assert.Equal(t, first.Seeds(), second.Seeds())
	assert.Equal(t, first.ClusterConfig(), second.ClusterConfig())
	assert.Equal(t, first.ExecutorConfig(), second.ExecutorConfig())
}

func TestUpdateModeRejectsGrowth(t *testing.T) {
	store := newManagerStore(t)
	seedStore(t, store, 3, 2)

	opts := testOptions()
	opts.UpdateConfig = true
	opts.Servers = 5
	opts.Seeds = 2

	_, err := NewManager(opts, store, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrServerGrowth)

	// The persisted configuration is untouched.
	servers, _, err := storage.NewRef[int](store, "serverCount").Load()
	require.NoError(t, err)
	assert.Equal(t, 3, servers)
}

func TestUpdateModeRejectsSeedsExceedingServers(t *testing.T) {
	store := newManagerStore(t)
	seedStore(t, store, 3, 2)

	opts := testOptions()
	opts.UpdateConfig = true
	opts.Servers = 3
	opts.Seeds = 4

	_, err := NewManager(opts, store, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSeedsExceedServers)
}

func TestUpdateModeSeedCheckOnFirstRun(t *testing.T) {
	// Even with an empty store the seed/server relation must hold.
	store := newManagerStore(t)

	opts := testOptions()
	opts.UpdateConfig = true
	opts.Servers = 2
	opts.Seeds = 3

	_, err := NewManager(opts, store, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSeedsExceedServers)
}

func TestUpdateModeAcceptsEqualServers(t *testing.T) {
	store := newManagerStore(t)
	seedStore(t, store, 3, 2)

	opts := testOptions()
	opts.UpdateConfig = true
	opts.Servers = 3
	opts.Seeds = 2
	opts.ClusterConfig.App.Version = "4.2.0"

	m, err := NewManager(opts, store, nil)
	require.NoError(t, err)

	assert.Equal(t, 3, m.Servers())
	assert.Equal(t, 2, m.Seeds())
	// Update mode overwrites the persisted templates.
	assert.Equal(t, "4.2.0", m.ClusterConfig().App.Version)
}

func TestUpdateModeAcceptsShrink(t *testing.T) {
	store := newManagerStore(t)
	seedStore(t, store, 5, 2)

	opts := testOptions()
	opts.UpdateConfig = true
	opts.Servers = 3
	opts.Seeds = 2

	m, err := NewManager(opts, store, nil)
	require.NoError(t, err)
	assert.Equal(t, 3, m.Servers())

	// A later steady-state relaunch sees the reduced count.
	m2, err := NewManager(testOptions(), store, nil)
	require.NoError(t, err)
	assert.Equal(t, 3, m2.Servers())
}

func TestUpdateModeOnEmptyStorePersistsSupplied(t *testing.T) {
	store := newManagerStore(t)

	opts := testOptions()
	opts.UpdateConfig = true

	m, err := NewManager(opts, store, nil)
	require.NoError(t, err)
	assert.Equal(t, 3, m.Servers())

	servers, found, err := storage.NewRef[int](store, "serverCount").Load()
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, 3, servers)
}

func TestRatchetMatrix(t *testing.T) {
	tests := []struct {
		name      string
		persisted int
		requested int
		wantErr   bool
	}{
		{"equal counts pass", 3, 3, false},
		{"shrink passes", 5, 3, false},
		{"shrink to one passes", 4, 1, false},
		{"grow by one fails", 3, 4, true},
		{"grow fails", 3, 5, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newManagerStore(t)
			seedStore(t, store, tt.persisted, 1)

			opts := testOptions()
			opts.UpdateConfig = true
			opts.Servers = tt.requested
			opts.Seeds = 1

			_, err := NewManager(opts, store, nil)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrServerGrowth)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
