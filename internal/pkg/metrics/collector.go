package metrics

import (
	"context"
	"runtime"
	"sync"
	"time"

	"github.com/shirou/gopsutil/cpu"
	"github.com/shirou/gopsutil/mem"

	"hashAnalysisBackend/internal/core/domain"
	"hashAnalysisBackend/internal/pkg/logging"
)

const DefaultInterval = 5 * time.Second

// Collector samples host CPU and memory on an interval and keeps the latest reading.
type Collector struct {
	mu             sync.RWMutex
	latest         domain.ResourceMetrics
	updateInterval time.Duration
}

func NewCollector(interval time.Duration) *Collector {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Collector{updateInterval: interval}
}

// Start takes a first sample immediately and then one per interval until ctx is done.
func (c *Collector) Start(ctx context.Context) {
	c.Sample()

	go func() {
		ticker := time.NewTicker(c.updateInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				c.Sample()
			}
		}
	}()
}

// Sample reads the host counters once. A failing gopsutil probe keeps the previous value.
func (c *Collector) Sample() domain.ResourceMetrics {
	c.mu.RLock()
	next := c.latest
	c.mu.RUnlock()

	if percents, err := cpu.Percent(0, false); err != nil {
		logging.Debugf("cpu sample failed: %v", err)
	} else if len(percents) > 0 {
		next.CPUUsage = percents[0]
	}

	if vm, err := mem.VirtualMemory(); err != nil {
		logging.Debugf("memory sample failed: %v", err)
	} else {
		next.SystemMemUsed = vm.UsedPercent
	}

	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	next.MemoryUsageMB = int64(m.Alloc / 1024 / 1024)
	next.LastUpdated = time.Now()

	c.mu.Lock()
	c.latest = next
	c.mu.Unlock()

	return next
}

func (c *Collector) GetMetrics() domain.ResourceMetrics {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.latest
}

// Merge overlays the host readings onto pool counters.
func (c *Collector) Merge(pool domain.ResourceMetrics) domain.ResourceMetrics {
	host := c.GetMetrics()
	pool.CPUUsage = host.CPUUsage
	pool.MemoryUsageMB = host.MemoryUsageMB
	pool.SystemMemUsed = host.SystemMemUsed
	if host.LastUpdated.After(pool.LastUpdated) {
		pool.LastUpdated = host.LastUpdated
	}
	return pool
}
