package scheduler

import (
	"testing"
	"time"

	"github.com/dayweave/planner/internal/domain"
	"github.com/dayweave/planner/internal/index"
	"github.com/dayweave/planner/internal/logger"
)

func TestSessionGCCollect(t *testing.T) {
	log := logger.New("error", false)
	memIndex := index.NewMemoryIndex()

	memIndex.Put(&domain.DayPlan{ID: "open-plan", Title: "open"})

	// A generous threshold keeps the fresh session alive.
	gc := NewSessionGC(memIndex, log, time.Hour, time.Hour)
	gc.Collect()
	if memIndex.Count() != 1 {
		t.Fatalf("fresh session evicted, count = %d", memIndex.Count())
	}

	// A negative threshold puts the cutoff in the future, so every
	// session counts as idle.
	gc = &SessionGC{index: memIndex, logger: log, threshold: -time.Minute}
	gc.Collect()
	if memIndex.Count() != 0 {
		t.Fatalf("idle session survived, count = %d", memIndex.Count())
	}
}

func TestSessionGCDefaultThreshold(t *testing.T) {
	gc := NewSessionGC(index.NewMemoryIndex(), logger.New("error", false), time.Hour, 0)
	if gc.threshold != DefaultIdleThreshold {
		t.Errorf("threshold = %v, want default %v", gc.threshold, DefaultIdleThreshold)
	}
}
