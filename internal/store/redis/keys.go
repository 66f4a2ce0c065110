package redis

const (
	// KeyPrefixPlan is the prefix for plan keys
	KeyPrefixPlan = "dayweave:plan:"
	// KeyPrefixCheckpoint is the prefix for session checkpoint keys
	KeyPrefixCheckpoint = "dayweave:checkpoint:"
	// KeyAllPlans is the key for the set of all plan IDs
	KeyAllPlans = "dayweave:plans:all"
)

// PlanKey returns the Redis key for a plan by ID
func PlanKey(id string) string {
	return KeyPrefixPlan + id
}

// CheckpointKey returns the Redis key for a session checkpoint
func CheckpointKey(sessionID string) string {
	return KeyPrefixCheckpoint + sessionID
}

// AllPlansKey returns the key for the set of all plan IDs
func AllPlansKey() string {
	return KeyAllPlans
}
