package metrics

import (
	"time"
)

// ConfigSource exposes the configuration counts the collector samples.
// Satisfied by the config manager.
type ConfigSource interface {
	Servers() int
	Seeds() int
}

// Collector periodically samples configuration gauges
type Collector struct {
	source ConfigSource
	stopCh chan struct{}
}

// NewCollector creates a new metrics collector
func NewCollector(source ConfigSource) *Collector {
	return &Collector{
		source: source,
		stopCh: make(chan struct{}),
	}
}

// Start begins collecting metrics
func (c *Collector) Start() {
	ticker := time.NewTicker(15 * time.Second)
	go func() {
		// Collect immediately on start
		c.collect()

		for {
			select {
			case <-ticker.C:
				c.collect()
			case <-c.stopCh:
				ticker.Stop()
				return
			}
		}
	}()
}

// Stop stops the collector
func (c *Collector) Stop() {
	close(c.stopCh)
}

func (c *Collector) collect() {
	ServersConfigured.Set(float64(c.source.Servers()))
	SeedsConfigured.Set(float64(c.source.Seeds()))
}
