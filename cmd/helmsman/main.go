package main

import (
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/quorumlab/helmsman/pkg/config"
	"github.com/quorumlab/helmsman/pkg/events"
	"github.com/quorumlab/helmsman/pkg/log"
	"github.com/quorumlab/helmsman/pkg/metrics"
	"github.com/quorumlab/helmsman/pkg/storage"
)

var (
	// Version information (set via ldflags during build)
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "helmsman",
	Short: "Helmsman - cluster daemon coordinator",
	Long: `Helmsman coordinates the daemons of a seed-based distributed datastore.

On startup it reconciles the supplied launch configuration against the
configuration persisted by earlier runs of the same cluster, then serves as
the authoritative source of configuration and as the mint for new daemon
and executor descriptors.`,
	Version: Version,
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"Helmsman version %s\nCommit: %s\nBuilt: %s\n",
		Version, Commit, BuildTime,
	))

	runCmd.Flags().StringP("options", "f", "", "launch options YAML file (required)")
	runCmd.Flags().String("data-dir", "/var/lib/helmsman", "State directory")
	runCmd.Flags().String("metrics-addr", ":9090", "Metrics and health listen address")
	runCmd.Flags().Bool("update-config", false, "Apply the supplied configuration instead of the persisted one")
	runCmd.Flags().String("log-level", "info", "Log level (debug, info, warn, error)")
	runCmd.Flags().Bool("log-json", false, "Log JSON lines instead of console output")
	_ = runCmd.MarkFlagRequired("options")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(provisionCmd)
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the coordinator",
	Long: `Run the coordinator: reconcile configuration against the state
directory and serve metrics and health endpoints until interrupted.

A reconciliation failure (server-count ratchet, seed/server ratio, or an
unreachable store) aborts startup.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		optionsFile, _ := cmd.Flags().GetString("options")
		dataDir, _ := cmd.Flags().GetString("data-dir")
		metricsAddr, _ := cmd.Flags().GetString("metrics-addr")
		updateConfig, _ := cmd.Flags().GetBool("update-config")
		logLevel, _ := cmd.Flags().GetString("log-level")
		logJSON, _ := cmd.Flags().GetBool("log-json")

		log.Init(log.Config{Level: log.Level(logLevel), JSONOutput: logJSON})
		metrics.SetVersion(Version)

		opts, err := loadLaunchOptions(optionsFile)
		if err != nil {
			return err
		}
		if updateConfig {
			opts.UpdateConfig = true
		}

		if err := os.MkdirAll(dataDir, 0755); err != nil {
			return fmt.Errorf("failed to create data directory: %w", err)
		}

		store, err := storage.NewBoltStore(dataDir)
		if err != nil {
			metrics.RegisterComponent("store", false, err.Error())
			return fmt.Errorf("failed to open store: %w", err)
		}
		defer store.Close()
		metrics.RegisterComponent("store", true, "open")

		broker := events.NewBroker()
		broker.Start()
		defer broker.Stop()

		mgr, err := config.NewManager(opts, store, broker)
		if err != nil {
			metrics.RegisterComponent("config", false, err.Error())
			return err
		}
		metrics.RegisterComponent("config", true, "reconciled")

		collector := metrics.NewCollector(mgr)
		collector.Start()
		defer collector.Stop()

		mux := http.NewServeMux()
		mux.Handle("/metrics", metrics.Handler())
		mux.HandleFunc("/health", metrics.HealthHandler())
		mux.HandleFunc("/ready", metrics.ReadyHandler())
		mux.HandleFunc("/live", metrics.LivenessHandler())

		errCh := make(chan error, 1)
		go func() {
			if err := http.ListenAndServe(metricsAddr, mux); err != nil {
				errCh <- fmt.Errorf("metrics server error: %w", err)
			}
		}()

		log.Logger.Info().
			Int("servers", mgr.Servers()).
			Int("seeds", mgr.Seeds()).
			Str("metrics_addr", metricsAddr).
			Msg("coordinator is running")

		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

		select {
		case <-sigCh:
			log.Info("shutting down")
		case err := <-errCh:
			return err
		}

		return nil
	},
}
