package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/dayweave/planner/internal/domain"
)

const (
	// DefaultPlanTTL bounds how long a working plan copy survives
	// without being re-saved. Long-term saves belong to the hosted
	// backend, not this store.
	DefaultPlanTTL = 72 * time.Hour
)

// ErrPlanNotFound is returned when a plan id has no entry (or its TTL expired).
var ErrPlanNotFound = errors.New("plan not found")

// Store handles Redis persistence for plans and session checkpoints.
type Store struct {
	client  *redis.Client
	planTTL time.Duration
}

// NewStore creates a new Redis store. A zero planTTL uses the default.
func NewStore(client *redis.Client, planTTL time.Duration) *Store {
	if planTTL <= 0 {
		planTTL = DefaultPlanTTL
	}
	return &Store{client: client, planTTL: planTTL}
}

// SavePlan stores a plan as a TTL'd JSON blob and tracks its id.
func (s *Store) SavePlan(ctx context.Context, plan *domain.DayPlan) error {
	data, err := json.Marshal(plan)
	if err != nil {
		return fmt.Errorf("failed to marshal plan: %w", err)
	}

	pipe := s.client.Pipeline()
	pipe.Set(ctx, PlanKey(plan.ID), data, s.planTTL)
	pipe.SAdd(ctx, AllPlansKey(), plan.ID)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save plan: %w", err)
	}
	return nil
}

// GetPlan retrieves a plan by ID.
func (s *Store) GetPlan(ctx context.Context, id string) (*domain.DayPlan, error) {
	data, err := s.client.Get(ctx, PlanKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, fmt.Errorf("%w: %s", ErrPlanNotFound, id)
		}
		return nil, fmt.Errorf("failed to get plan: %w", err)
	}

	var plan domain.DayPlan
	if err := json.Unmarshal(data, &plan); err != nil {
		return nil, fmt.Errorf("failed to unmarshal plan: %w", err)
	}
	return &plan, nil
}

// GetAllPlans retrieves every live plan. Ids whose blobs have expired
// are dropped from the tracking set along the way.
func (s *Store) GetAllPlans(ctx context.Context) ([]*domain.DayPlan, error) {
	ids, err := s.client.SMembers(ctx, AllPlansKey()).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get plan IDs: %w", err)
	}

	plans := make([]*domain.DayPlan, 0, len(ids))
	for _, id := range ids {
		plan, err := s.GetPlan(ctx, id)
		if err != nil {
			if errors.Is(err, ErrPlanNotFound) {
				_ = s.client.SRem(ctx, AllPlansKey(), id).Err()
			}
			continue
		}
		plans = append(plans, plan)
	}
	return plans, nil
}

// DeletePlan removes a plan and its tracking entry.
func (s *Store) DeletePlan(ctx context.Context, id string) error {
	pipe := s.client.Pipeline()
	pipe.Del(ctx, PlanKey(id))
	pipe.SRem(ctx, AllPlansKey(), id)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete plan: %w", err)
	}
	return nil
}
