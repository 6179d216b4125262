package profiler

import (
	"log"
	"runtime"
	"time"
)

// Profiler tracks frame rate and redraw statistics for the viewer loop.
// Because controllers report whether the camera changed each frame, the
// profiler can also log how many frames actually needed a re-render versus
// how many were skipped. Outputs stats to the log at a configurable interval.
type Profiler struct {
	frameCount  int
	redrawCount int

	lastTime       time.Time
	updateInterval time.Duration
	memStats       runtime.MemStats
}

// NewProfiler creates a new Profiler with default settings.
// Update interval defaults to 1 second.
//
// Returns:
//   - *Profiler: the newly created profiler instance
func NewProfiler() *Profiler {
	return &Profiler{
		lastTime:       time.Now(),
		updateInterval: time.Second,
	}
}

// Tick should be called once per frame with the frame's camera-changed flag.
// Logs performance statistics when the update interval has elapsed:
// FPS, the fraction of frames that required a redraw, and heap usage.
//
// Parameters:
//   - redrawn: whether the camera changed and the frame was re-rendered
//
// Returns:
//   - bool: true if stats were logged this tick, false otherwise
func (p *Profiler) Tick(redrawn bool) bool {
	p.frameCount++
	if redrawn {
		p.redrawCount++
	}

	currentTime := time.Now()
	elapsed := currentTime.Sub(p.lastTime)
	if elapsed < p.updateInterval {
		return false
	}

	fps := float64(p.frameCount) / elapsed.Seconds()
	redrawPct := 100 * float64(p.redrawCount) / float64(p.frameCount)

	runtime.ReadMemStats(&p.memStats)
	allocMB := float64(p.memStats.Alloc) / 1024 / 1024

	log.Printf("[Profiler] FPS: %.2f | Redrawn: %.1f%% | Heap: %.2f MB",
		fps, redrawPct, allocMB)

	p.frameCount = 0
	p.redrawCount = 0
	p.lastTime = currentTime
	return true
}
