package index

import (
	"sync"
	"time"

	"github.com/dayweave/planner/internal/domain"
)

// MemoryIndex holds the plans currently open for editing, keyed by plan
// ID. It is the single-writer working set: handlers read a plan, run a
// reconciliation on a copy, and replace the entry wholesale on success.
// The Redis store remains the durable copy.
type MemoryIndex struct {
	mu      sync.RWMutex
	plans   map[string]*domain.DayPlan
	touched map[string]time.Time
}

// NewMemoryIndex creates an empty index.
func NewMemoryIndex() *MemoryIndex {
	return &MemoryIndex{
		plans:   make(map[string]*domain.DayPlan),
		touched: make(map[string]time.Time),
	}
}

// ReplaceAll swaps the whole working set, used by the startup sync.
func (idx *MemoryIndex) ReplaceAll(plans []*domain.DayPlan) {
	idx.mu.Lock()
	defer idx.mu.Unlock()

	idx.plans = make(map[string]*domain.DayPlan, len(plans))
	idx.touched = make(map[string]time.Time, len(plans))
	now := time.Now()
	for _, p := range plans {
		idx.plans[p.ID] = p
		idx.touched[p.ID] = now
	}
}

// Get retrieves a plan and marks its session as active.
func (idx *MemoryIndex) Get(id string) (*domain.DayPlan, bool) {
	idx.mu.Lock()
	defer idx.mu.Unlock()

	p, ok := idx.plans[id]
	if ok {
		idx.touched[id] = time.Now()
	}
	return p, ok
}

// Put adds or replaces a plan.
func (idx *MemoryIndex) Put(p *domain.DayPlan) {
	idx.mu.Lock()
	defer idx.mu.Unlock()

	idx.plans[p.ID] = p
	idx.touched[p.ID] = time.Now()
}

// Delete removes a plan from the working set.
func (idx *MemoryIndex) Delete(id string) {
	idx.mu.Lock()
	defer idx.mu.Unlock()

	delete(idx.plans, id)
	delete(idx.touched, id)
}

// All returns the plans currently in the working set.
func (idx *MemoryIndex) All() []*domain.DayPlan {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	plans := make([]*domain.DayPlan, 0, len(idx.plans))
	for _, p := range idx.plans {
		plans = append(plans, p)
	}
	return plans
}

// Count returns the number of open plans.
func (idx *MemoryIndex) Count() int {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	return len(idx.plans)
}

// EvictIdle drops plans whose session has been inactive since before
// the cutoff and returns the evicted ids.
func (idx *MemoryIndex) EvictIdle(cutoff time.Time) []string {
	idx.mu.Lock()
	defer idx.mu.Unlock()

	var evicted []string
	for id, last := range idx.touched {
		if last.Before(cutoff) {
			delete(idx.plans, id)
			delete(idx.touched, id)
			evicted = append(evicted, id)
		}
	}
	return evicted
}
