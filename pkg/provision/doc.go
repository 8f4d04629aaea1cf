/*
Package provision mints daemon and executor descriptors from the current
cluster configuration.

Each CreateDaemon call generates a unique identity suffix shared by the
daemon and its executor:

	daemon:   <name>_<uuid>
	executor: <name>_<uuid>_executor

and stamps the daemon with its own deep copy of the cluster configuration,
carrying a fresh volume identity and a seed provider pointing at the
coordinator's seed-discovery endpoint. Descriptors are immutable after
creation; updating the configuration templates later never alters a
descriptor that was already issued.

Every daemon starts in state "staging", mode "starting", with no cluster
role assigned. Role assignment and lifecycle progression belong to the
placement and plan machinery, not to this package.
*/
package provision
