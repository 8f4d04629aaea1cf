/*
Package types defines the core data structures used throughout Helmsman.

This package contains the domain model of the coordinator: the cluster-wide
configuration templates every daemon is launched from, and the immutable
descriptors minted for individual daemons and their executors.

# Ownership Discipline

Configuration values follow a copy-with-changes discipline:

  - ClusterConfig and ExecutorConfig are process-wide templates owned by the
    configuration manager. Nothing outside the manager mutates them.
  - Derivations go through Clone, WithVolume and WithSeedProvider, each of
    which returns an independent deep copy (settings maps and argument
    slices included).
  - Every DaemonTask carries its own stamped ClusterConfig copy. Updating
    the template later never changes a task that was already issued.

# Core Types

Configuration templates:
  - ClusterConfig: resource shape + AppConfig + Volume
  - AppConfig: datastore software settings and seed discovery
  - ExecutorConfig: executor command, resources, artifact locations

Descriptors:
  - DaemonTask: one worker daemon instance and its placement
  - Executor: the supervising executor process (1:1 with DaemonTask)
  - DaemonStatus: lifecycle state, initially staging/starting

All types serialize to JSON for persistence in the bolt-backed value store.
*/
package types
