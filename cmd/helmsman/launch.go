package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/quorumlab/helmsman/pkg/config"
	"github.com/quorumlab/helmsman/pkg/types"
)

// launchOptions is the YAML shape of the launch configuration bundle.
type launchOptions struct {
	Cluster struct {
		CPUs     float64 `yaml:"cpus"`
		MemoryMB int     `yaml:"memoryMb"`
		DiskMB   int     `yaml:"diskMb"`
		App      struct {
			ClusterName string            `yaml:"clusterName"`
			Version     string            `yaml:"version"`
			GossipPort  int               `yaml:"gossipPort"`
			ClientPort  int               `yaml:"clientPort"`
			Settings    map[string]string `yaml:"settings,omitempty"`
		} `yaml:"app"`
		Volume struct {
			ContainerPath string `yaml:"containerPath"`
			SizeMB        int    `yaml:"sizeMb"`
		} `yaml:"volume"`
	} `yaml:"cluster"`

	Executor struct {
		Command          string   `yaml:"command"`
		Arguments        []string `yaml:"arguments,omitempty"`
		CPUs             float64  `yaml:"cpus"`
		MemoryMB         int      `yaml:"memoryMb"`
		DiskMB           int      `yaml:"diskMb"`
		HeapMB           int      `yaml:"heapMb"`
		APIPort          int      `yaml:"apiPort"`
		AdminPort        int      `yaml:"adminPort"`
		RuntimeLocation  string   `yaml:"runtimeLocation"`
		ExecutorLocation string   `yaml:"executorLocation"`
		DaemonLocation   string   `yaml:"daemonLocation"`
		RuntimeHome      string   `yaml:"runtimeHome"`
	} `yaml:"executor"`

	Servers           int    `yaml:"servers"`
	Seeds             int    `yaml:"seeds"`
	UpdateConfig      bool   `yaml:"updateConfig"`
	PlacementStrategy string `yaml:"placementStrategy"`
	PlanStrategy      string `yaml:"planStrategy"`
	SeedsURL          string `yaml:"seedsUrl"`
}

// loadLaunchOptions reads and converts the launch bundle.
func loadLaunchOptions(filename string) (config.Options, error) {
	var opts config.Options

	data, err := os.ReadFile(filename)
	if err != nil {
		return opts, fmt.Errorf("failed to read options file: %w", err)
	}

	var launch launchOptions
	if err := yaml.Unmarshal(data, &launch); err != nil {
		return opts, fmt.Errorf("failed to parse options file: %w", err)
	}

	opts = config.Options{
		ClusterConfig: types.ClusterConfig{
			CPUs:     launch.Cluster.CPUs,
			MemoryMB: launch.Cluster.MemoryMB,
			DiskMB:   launch.Cluster.DiskMB,
			App: types.AppConfig{
				ClusterName: launch.Cluster.App.ClusterName,
				Version:     launch.Cluster.App.Version,
				GossipPort:  launch.Cluster.App.GossipPort,
				ClientPort:  launch.Cluster.App.ClientPort,
				Settings:    launch.Cluster.App.Settings,
			},
			Volume: types.Volume{
				ContainerPath: launch.Cluster.Volume.ContainerPath,
				SizeMB:        launch.Cluster.Volume.SizeMB,
			},
		},
		ExecutorConfig: types.ExecutorConfig{
			Command:          launch.Executor.Command,
			Arguments:        launch.Executor.Arguments,
			CPUs:             launch.Executor.CPUs,
			MemoryMB:         launch.Executor.MemoryMB,
			DiskMB:           launch.Executor.DiskMB,
			HeapMB:           launch.Executor.HeapMB,
			APIPort:          launch.Executor.APIPort,
			AdminPort:        launch.Executor.AdminPort,
			RuntimeLocation:  launch.Executor.RuntimeLocation,
			ExecutorLocation: launch.Executor.ExecutorLocation,
			DaemonLocation:   launch.Executor.DaemonLocation,
			RuntimeHome:      launch.Executor.RuntimeHome,
		},
		Servers:           launch.Servers,
		Seeds:             launch.Seeds,
		UpdateConfig:      launch.UpdateConfig,
		PlacementStrategy: launch.PlacementStrategy,
		PlanStrategy:      launch.PlanStrategy,
		SeedsURL:          launch.SeedsURL,
	}

	return opts, nil
}
