// Package metrics keeps in-process counters for the conversion playground.
package metrics

import (
	"sync"
	"sync/atomic"
	"time"
)

// Collector provides simple built-in metrics collection with no external dependencies
type Collector struct {
	metrics        *ConversionMetrics
	customCounters map[string]*int64
	mu             sync.RWMutex
	startTime      time.Time
}

// ConversionMetrics tracks conversion and connection counts
type ConversionMetrics struct {
	// Conversions
	Conversions      int64 `json:"conversions"`
	ConversionErrors int64 `json:"conversion_errors"`
	HandlerFallbacks int64 `json:"handler_fallbacks"`
	BytesIn          int64 `json:"bytes_in"`
	BytesOut         int64 `json:"bytes_out"`

	// Live connections
	ConnectionsOpened        int64 `json:"connections_opened"`
	ConnectionsClosed        int64 `json:"connections_closed"`
	ActiveConnections        int64 `json:"active_connections"`
	MaxConcurrentConnections int64 `json:"max_concurrent_connections"`

	// Uptime
	StartTime time.Time     `json:"start_time"`
	Uptime    time.Duration `json:"uptime"`
}

// NewCollector creates a new metrics collector
func NewCollector() *Collector {
	now := time.Now()
	return &Collector{
		metrics:        &ConversionMetrics{StartTime: now},
		customCounters: make(map[string]*int64),
		startTime:      now,
	}
}

// IncrementConnectionOpened records a new live connection
func (c *Collector) IncrementConnectionOpened() {
	atomic.AddInt64(&c.metrics.ConnectionsOpened, 1)
	currentActive := atomic.AddInt64(&c.metrics.ActiveConnections, 1)

	// Update max concurrent if needed
	for {
		max := atomic.LoadInt64(&c.metrics.MaxConcurrentConnections)
		if currentActive <= max {
			break
		}
		if atomic.CompareAndSwapInt64(&c.metrics.MaxConcurrentConnections, max, currentActive) {
			break
		}
	}
}

// IncrementConnectionClosed records a closed live connection
func (c *Collector) IncrementConnectionClosed() {
	atomic.AddInt64(&c.metrics.ConnectionsClosed, 1)
	atomic.AddInt64(&c.metrics.ActiveConnections, -1)
}

// RecordConversion records a successful conversion
func (c *Collector) RecordConversion(bytesIn, bytesOut, handlerFallbacks int) {
	atomic.AddInt64(&c.metrics.Conversions, 1)
	atomic.AddInt64(&c.metrics.BytesIn, int64(bytesIn))
	atomic.AddInt64(&c.metrics.BytesOut, int64(bytesOut))
	atomic.AddInt64(&c.metrics.HandlerFallbacks, int64(handlerFallbacks))
}

// RecordConversionError records a conversion that failed
func (c *Collector) RecordConversionError() {
	atomic.AddInt64(&c.metrics.ConversionErrors, 1)
}

// IncrementCustomCounter increments a custom named counter
func (c *Collector) IncrementCustomCounter(name string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if counter, exists := c.customCounters[name]; exists {
		atomic.AddInt64(counter, 1)
	} else {
		var newCounter int64 = 1
		c.customCounters[name] = &newCounter
	}
}

// Snapshot returns a copy of the current metrics
func (c *Collector) Snapshot() ConversionMetrics {
	c.mu.RLock()
	start := c.startTime
	c.mu.RUnlock()

	return ConversionMetrics{
		Conversions:              atomic.LoadInt64(&c.metrics.Conversions),
		ConversionErrors:         atomic.LoadInt64(&c.metrics.ConversionErrors),
		HandlerFallbacks:         atomic.LoadInt64(&c.metrics.HandlerFallbacks),
		BytesIn:                  atomic.LoadInt64(&c.metrics.BytesIn),
		BytesOut:                 atomic.LoadInt64(&c.metrics.BytesOut),
		ConnectionsOpened:        atomic.LoadInt64(&c.metrics.ConnectionsOpened),
		ConnectionsClosed:        atomic.LoadInt64(&c.metrics.ConnectionsClosed),
		ActiveConnections:        atomic.LoadInt64(&c.metrics.ActiveConnections),
		MaxConcurrentConnections: atomic.LoadInt64(&c.metrics.MaxConcurrentConnections),
		StartTime:                start,
		Uptime:                   time.Since(start),
	}
}

// GetCustomCounters returns all custom counters
func (c *Collector) GetCustomCounters() map[string]int64 {
	c.mu.RLock()
	defer c.mu.RUnlock()

	result := make(map[string]int64)
	for name, counter := range c.customCounters {
		result[name] = atomic.LoadInt64(counter)
	}
	return result
}

// Reset resets all metrics to zero
func (c *Collector) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()

	atomic.StoreInt64(&c.metrics.Conversions, 0)
	atomic.StoreInt64(&c.metrics.ConversionErrors, 0)
	atomic.StoreInt64(&c.metrics.HandlerFallbacks, 0)
	atomic.StoreInt64(&c.metrics.BytesIn, 0)
	atomic.StoreInt64(&c.metrics.BytesOut, 0)
	atomic.StoreInt64(&c.metrics.ConnectionsOpened, 0)
	atomic.StoreInt64(&c.metrics.ConnectionsClosed, 0)
	atomic.StoreInt64(&c.metrics.ActiveConnections, 0)
	atomic.StoreInt64(&c.metrics.MaxConcurrentConnections, 0)

	c.customCounters = make(map[string]*int64)
	c.startTime = time.Now()
	c.metrics.StartTime = c.startTime
}

// GetErrorRate returns the percentage of conversions that failed
func (c *Collector) GetErrorRate() float64 {
	converted := atomic.LoadInt64(&c.metrics.Conversions)
	errors := atomic.LoadInt64(&c.metrics.ConversionErrors)

	if converted+errors == 0 {
		return 0.0
	}

	return float64(errors) / float64(converted+errors) * 100.0
}
