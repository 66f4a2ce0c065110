package scheduler

import (
	"context"
	"time"

	"github.com/dayweave/planner/internal/index"
	"github.com/dayweave/planner/internal/logger"
)

const (
	// DefaultIdleThreshold is how long a session may sit untouched in
	// memory before it is evicted. The Redis copy (with its own TTL)
	// stays authoritative, so eviction only ends the in-memory session.
	DefaultIdleThreshold = 6 * time.Hour
)

// SessionGC periodically evicts idle editing sessions from the memory
// index.
type SessionGC struct {
	index     *index.MemoryIndex
	logger    logger.Logger
	interval  time.Duration
	threshold time.Duration
	stopCh    chan struct{}
}

// NewSessionGC creates a new session garbage collector
func NewSessionGC(
	idx *index.MemoryIndex,
	log logger.Logger,
	interval time.Duration,
	threshold time.Duration,
) *SessionGC {
	if threshold <= 0 {
		threshold = DefaultIdleThreshold
	}

	return &SessionGC{
		index:     idx,
		logger:    log,
		interval:  interval,
		threshold: threshold,
		stopCh:    make(chan struct{}),
	}
}

// Start begins the periodic collection process
func (gc *SessionGC) Start(ctx context.Context) error {
	// Run immediately on start
	gc.Collect()

	ticker := time.NewTicker(gc.interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				gc.Collect()
			case <-gc.stopCh:
				return
			case <-ctx.Done():
				return
			}
		}
	}()

	return nil
}

// Stop stops the collector
func (gc *SessionGC) Stop() {
	close(gc.stopCh)
}

// Collect evicts sessions idle beyond the threshold
func (gc *SessionGC) Collect() {
	cutoff := time.Now().Add(-gc.threshold)
	evicted := gc.index.EvictIdle(cutoff)

	if len(evicted) > 0 {
		gc.logger.Info("evicted idle plan sessions",
			logger.Int("count", len(evicted)))
		for _, id := range evicted {
			gc.logger.Debug("session evicted",
				logger.String("plan_id", id))
		}
	} else {
		gc.logger.Debug("no idle sessions to evict")
	}
}
