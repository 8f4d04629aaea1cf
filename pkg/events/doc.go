/*
Package events provides an in-process pub/sub broker for coordinator events.

Components publish events when configuration changes commit or when a new
daemon is provisioned; observers (CLI streams, audit sinks) subscribe to a
buffered channel. Delivery is best effort: a subscriber that falls behind
has events dropped rather than blocking the publisher.

Event types:

	config.reconciled    startup reconciliation committed
	config.updated       a setter persisted and published a new value
	daemon.provisioned   a daemon/executor descriptor pair was minted
*/
package events
