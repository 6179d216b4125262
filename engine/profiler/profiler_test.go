package profiler

import (
	"testing"
	"time"
)

func TestTickDoesNotLogBeforeInterval(t *testing.T) {
	p := NewProfiler()

	for i := 0; i < 10; i++ {
		if p.Tick(i%2 == 0) {
			t.Fatal("Tick logged before the update interval elapsed")
		}
	}
	if p.frameCount != 10 {
		t.Errorf("frameCount = %d, want 10", p.frameCount)
	}
	if p.redrawCount != 5 {
		t.Errorf("redrawCount = %d, want 5", p.redrawCount)
	}
}

func TestTickLogsAndResetsAfterInterval(t *testing.T) {
	p := NewProfiler()
	p.updateInterval = 0
	p.lastTime = time.Now().Add(-time.Millisecond)

	if !p.Tick(true) {
		t.Fatal("Tick did not log once the interval elapsed")
	}
	if p.frameCount != 0 || p.redrawCount != 0 {
		t.Errorf("counters = (%d, %d), want reset to (0, 0)", p.frameCount, p.redrawCount)
	}
}
