package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// DefaultCheckpointTTL bounds how long an in-progress edit survives
	// an out-of-band interruption (ex: an auth redirect).
	DefaultCheckpointTTL = 30 * time.Minute
)

// Checkpoint is a time-bounded snapshot of an in-progress editing
// session, written at well-defined points (post-generation,
// pre-redirect) and read exactly once at a controlled resume point.
type Checkpoint struct {
	SessionID string `json:"sessionId"`

	// Kind names the checkpoint point, ex: "post-generation".
	Kind string `json:"kind"`

	// Payload is the plan (or fragment) being carried across the
	// interruption; the store does not interpret it.
	Payload json.RawMessage `json:"payload"`

	CreatedAt time.Time `json:"createdAt"`
}

// SaveCheckpoint writes a session checkpoint with the given TTL,
// replacing any previous checkpoint for the session. A zero TTL uses
// the default.
func (s *Store) SaveCheckpoint(ctx context.Context, cp *Checkpoint, ttl time.Duration) error {
	if cp.SessionID == "" {
		return errors.New("checkpoint requires a session id")
	}
	if ttl <= 0 {
		ttl = DefaultCheckpointTTL
	}

	data, err := json.Marshal(cp)
	if err != nil {
		return fmt.Errorf("failed to marshal checkpoint: %w", err)
	}
	if err := s.client.Set(ctx, CheckpointKey(cp.SessionID), data, ttl).Err(); err != nil {
		return fmt.Errorf("failed to save checkpoint: %w", err)
	}
	return nil
}

// ClaimCheckpoint atomically reads and deletes a session's checkpoint.
// Returns (nil, nil) when there is nothing to resume — never written,
// already claimed, or expired.
func (s *Store) ClaimCheckpoint(ctx context.Context, sessionID string) (*Checkpoint, error) {
	data, err := s.client.GetDel(ctx, CheckpointKey(sessionID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to claim checkpoint: %w", err)
	}

	var cp Checkpoint
	if err := json.Unmarshal(data, &cp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal checkpoint: %w", err)
	}
	return &cp, nil
}
