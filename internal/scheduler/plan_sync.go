package scheduler

import (
	"context"

	"github.com/dayweave/planner/internal/index"
	"github.com/dayweave/planner/internal/logger"
	redisstore "github.com/dayweave/planner/internal/store/redis"
)

// PlanSyncer loads the surviving plans from Redis into the memory index
// on startup, so open editing sessions recover after a restart.
type PlanSyncer struct {
	store  *redisstore.Store
	index  *index.MemoryIndex
	logger logger.Logger
}

// NewPlanSyncer creates a new plan syncer
func NewPlanSyncer(
	store *redisstore.Store,
	idx *index.MemoryIndex,
	log logger.Logger,
) *PlanSyncer {
	return &PlanSyncer{
		store:  store,
		index:  idx,
		logger: log,
	}
}

// Sync loads plans from Redis and replaces the memory working set
func (ps *PlanSyncer) Sync(ctx context.Context) error {
	ps.logger.Info("syncing plans from redis to memory")

	plans, err := ps.store.GetAllPlans(ctx)
	if err != nil {
		return err
	}

	if len(plans) == 0 {
		ps.logger.Info("no plans found in redis")
		return nil
	}

	ps.index.ReplaceAll(plans)

	ps.logger.Info("synced plans from redis",
		logger.Int("count", len(plans)))

	return nil
}
