package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/quorumlab/helmsman/pkg/config"
	"github.com/quorumlab/helmsman/pkg/log"
	"github.com/quorumlab/helmsman/pkg/provision"
	"github.com/quorumlab/helmsman/pkg/storage"
	"github.com/quorumlab/helmsman/pkg/types"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect persisted configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the configuration persisted in a state directory",
	RunE: func(cmd *cobra.Command, args []string) error {
		dataDir, _ := cmd.Flags().GetString("data-dir")

		store, err := storage.NewBoltStore(dataDir)
		if err != nil {
			return fmt.Errorf("failed to open store: %w", err)
		}
		defer store.Close()

		out := struct {
			Servers        *int                  `yaml:"servers,omitempty"`
			Seeds          *int                  `yaml:"seeds,omitempty"`
			ClusterConfig  *types.ClusterConfig  `yaml:"clusterConfig,omitempty"`
			ExecutorConfig *types.ExecutorConfig `yaml:"executorConfig,omitempty"`
		}{}

		if v, found, err := storage.NewRef[int](store, "serverCount").Load(); err != nil {
			return err
		} else if found {
			out.Servers = &v
		}
		if v, found, err := storage.NewRef[int](store, "seedCount").Load(); err != nil {
			return err
		} else if found {
			out.Seeds = &v
		}
		if v, found, err := storage.NewRef[types.ClusterConfig](store, "clusterConfig").Load(); err != nil {
			return err
		} else if found {
			out.ClusterConfig = &v
		}
		if v, found, err := storage.NewRef[types.ExecutorConfig](store, "executorConfig").Load(); err != nil {
			return err
		} else if found {
			out.ExecutorConfig = &v
		}

		if out.Servers == nil && out.Seeds == nil && out.ClusterConfig == nil && out.ExecutorConfig == nil {
			fmt.Println("no configuration persisted")
			return nil
		}

		return yaml.NewEncoder(os.Stdout).Encode(out)
	},
}

var provisionCmd = &cobra.Command{
	Use:   "provision",
	Short: "Mint a daemon descriptor from the current configuration (dry run)",
	Long: `Reconcile against the state directory in steady-state mode, build a
daemon descriptor exactly as the coordinator would, and print it as YAML.
Nothing is launched; the descriptor is not recorded anywhere.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		optionsFile, _ := cmd.Flags().GetString("options")
		dataDir, _ := cmd.Flags().GetString("data-dir")
		clusterID, _ := cmd.Flags().GetString("cluster-id")
		agentID, _ := cmd.Flags().GetString("agent-id")
		hostname, _ := cmd.Flags().GetString("hostname")
		name, _ := cmd.Flags().GetString("name")
		role, _ := cmd.Flags().GetString("role")
		principal, _ := cmd.Flags().GetString("principal")

		log.Init(log.Config{Level: log.ErrorLevel})

		opts, err := loadLaunchOptions(optionsFile)
		if err != nil {
			return err
		}
		// Dry runs never apply new configuration.
		opts.UpdateConfig = false

		store, err := storage.NewBoltStore(dataDir)
		if err != nil {
			return fmt.Errorf("failed to open store: %w", err)
		}
		defer store.Close()

		mgr, err := config.NewManager(opts, store, nil)
		if err != nil {
			return err
		}

		factory := provision.NewFactory(mgr, nil)
		task := factory.CreateDaemon(clusterID, agentID, hostname, name, role, principal)

		return yaml.NewEncoder(os.Stdout).Encode(task)
	},
}

func init() {
	configShowCmd.Flags().String("data-dir", "/var/lib/helmsman", "State directory")
	configCmd.AddCommand(configShowCmd)

	provisionCmd.Flags().StringP("options", "f", "", "launch options YAML file (required)")
	provisionCmd.Flags().String("data-dir", "/var/lib/helmsman", "State directory")
	provisionCmd.Flags().String("cluster-id", "", "Cluster identifier")
	provisionCmd.Flags().String("agent-id", "", "Agent the daemon is placed on")
	provisionCmd.Flags().String("hostname", "", "Host the daemon is placed on")
	provisionCmd.Flags().String("name", "node-0", "Daemon name")
	provisionCmd.Flags().String("role", "datastore", "Daemon role")
	provisionCmd.Flags().String("principal", "helmsman", "Security principal")
	_ = provisionCmd.MarkFlagRequired("options")
}
