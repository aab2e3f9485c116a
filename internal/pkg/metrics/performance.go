package metrics

import (
	"runtime"
	"time"
)

type PerformanceMetrics struct {
	StartTime    time.Time
	EndTime      time.Time
	Duration     time.Duration
	MemoryUsage  uint64
	AllocObjects uint64
	GCCycles     uint32
}

// Seconds is the measured wall time as fractional seconds.
func (p *PerformanceMetrics) Seconds() float64 {
	return p.Duration.Seconds()
}

func CapturePerformance(fn func()) *PerformanceMetrics {
	var stats runtime.MemStats
	runtime.ReadMemStats(&stats)
	startAlloc := stats.TotalAlloc
	startMallocs := stats.Mallocs
	startGC := stats.NumGC

	metrics := &PerformanceMetrics{
		StartTime: time.Now(),
	}

	fn()

	metrics.EndTime = time.Now()
	runtime.ReadMemStats(&stats)
	metrics.Duration = metrics.EndTime.Sub(metrics.StartTime)
	metrics.MemoryUsage = stats.TotalAlloc - startAlloc
	metrics.AllocObjects = stats.Mallocs - startMallocs
	metrics.GCCycles = stats.NumGC - startGC

	return metrics
}
