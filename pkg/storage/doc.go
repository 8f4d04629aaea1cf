/*
Package storage provides BoltDB-backed persistence for Helmsman's
configuration values.

The package has two layers:

	┌──────────────────────────────────────────────┐
	│              Ref[T]                          │
	│  typed reference to one key                  │
	│  Load / Store / StoreIfAbsent, JSON codec    │
	└──────────────────┬───────────────────────────┘
	                   │
	┌──────────────────▼───────────────────────────┐
	│              Store                           │
	│  raw key-addressed bytes                     │
	│  implemented by BoltStore                    │
	│  (<dataDir>/helmsman.db, bucket "config")    │
	└──────────────────────────────────────────────┘

StoreIfAbsent is the primitive steady-state reconciliation is built on: the
existence check and the write happen inside a single bolt transaction, so a
restart never overwrites configuration persisted by an earlier run, and the
caller always adopts whichever value ended up durable.

The configuration manager owns four references (clusterConfig,
executorConfig, serverCount, seedCount), one per configuration field.
*/
package storage
