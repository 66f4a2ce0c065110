package deps

import (
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/dayweave/planner/internal/domain"
	"github.com/dayweave/planner/internal/index"
	"github.com/dayweave/planner/internal/logger"
	"github.com/dayweave/planner/internal/sources/genai"
	redisstore "github.com/dayweave/planner/internal/store/redis"
)

type Deps struct {
	Logger    logger.Logger
	StartTime time.Time
	Version   string
	Commit    string
	BuildDate string
	GoVersion string
	TimeNow   func() time.Time // for testing, defaults to time.Now

	RedisClient *redis.Client      // Redis client connection
	Store       *redisstore.Store  // Plan and checkpoint persistence
	MemoryIndex *index.MemoryIndex // In-memory working set of open plans

	Reconciler *domain.Reconciler // Itinerary reconciliation operations
	Mapper     *genai.Mapper      // Upstream payload normalization

	CheckpointTTL time.Duration // Lifetime of a saved session checkpoint

	JWTSecret       string   // HMAC secret for bearer token verification
	AllowedOrigins  []string // Browser origins allowed to call the API
	RateLimitBurst  int      // Per-IP token bucket capacity
	RateLimitPerMin int      // Per-IP refill rate per minute
	TrustProxy      bool     // true if running behind a trusted reverse proxy
}
