/*
Package config holds the authoritative cluster configuration and reconciles
it against the persisted state of earlier runs.

# Reconciliation

On every startup the operator supplies a launch bundle (Options) and a
mode flag:

	               UpdateConfig=true                UpdateConfig=false
	┌────────────────────────────────────┐  ┌────────────────────────────────┐
	│ check invariants:                  │  │ for each field:                │
	│   servers <= persisted servers     │  │   StoreIfAbsent(supplied)      │
	│   seeds   <= servers               │  │   adopt persisted value        │
	│ then overwrite all four keys       │  │ (first run seeds the store,    │
	│ (violation = fatal startup error)  │  │  restarts converge unchanged)  │
	└────────────────────────────────────┘  └────────────────────────────────┘

The server-count check is a ratchet: a relaunch may never implicitly grow
the cluster past what a previous run committed. Growing happens through the
explicit server-addition workflow; a violation aborts startup with
ErrServerGrowth. Likewise seeds can never outnumber servers
(ErrSeedsExceedServers).

# State discipline

The Manager owns four fields (cluster config, executor config, server
count, seed count), each with its own persistent reference and its own
writer lock. Setters persist first and publish the in-memory snapshot only
after the store accepted the write, so readers always observe fully
committed values and a failed write leaves no trace in memory. Readers load
an atomically published snapshot and never block on store I/O; writers to
different fields do not block each other.

Construction runs reconciliation exactly once; a Manager never exists in an
unreconciled state. Start and Stop are lifecycle no-ops.
*/
package config
