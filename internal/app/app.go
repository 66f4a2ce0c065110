package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/dayweave/planner/internal/config"
	"github.com/dayweave/planner/internal/domain"
	"github.com/dayweave/planner/internal/httpserver"
	"github.com/dayweave/planner/internal/httpserver/deps"
	"github.com/dayweave/planner/internal/index"
	"github.com/dayweave/planner/internal/logger"
	"github.com/dayweave/planner/internal/redis"
	"github.com/dayweave/planner/internal/scheduler"
	"github.com/dayweave/planner/internal/sources/genai"
	"github.com/dayweave/planner/internal/sources/transport"
	redisstore "github.com/dayweave/planner/internal/store/redis"
	"github.com/dayweave/planner/internal/version"
)

type App struct {
	cfg         *config.Config
	logger      logger.Logger
	server      *httpserver.Server
	redisClient *goredis.Client
	memIndex    *index.MemoryIndex
	gc          *scheduler.SessionGC
}

func New() *App {
	cfg := config.Load()

	loggerClient := logger.New(cfg.LogLevel, cfg.PrettyLog)

	// Initialize Redis early - fail fast if unavailable
	loggerClient.Infof("Connecting to Redis at %s", cfg.RedisAddr)
	redisClient, err := redis.New(redis.ConnectOptions{
		Addr:           cfg.RedisAddr,
		User:           cfg.RedisUser,
		Password:       cfg.RedisPassword,
		DB:             cfg.RedisDB,
		DialTimeout:    cfg.RedisDialTimeout,
		ReadTimeout:    cfg.RedisReadTimeout,
		WriteTimeout:   cfg.RedisWriteTimeout,
		PoolSize:       cfg.RedisPoolSize,
		ConnectTimeout: cfg.RedisConnectTimeout,
		RetryInterval:  cfg.RedisRetryInterval,
		MaxWait:        cfg.RedisMaxWait,
		PingTimeout:    cfg.RedisPingTimeout,
	}, loggerClient)
	if err != nil {
		loggerClient.Errorf("Failed to connect to Redis: %v", err)
		os.Exit(1)
	}
	loggerClient.Info("Redis initialized successfully")

	// Working set and persistence
	memIndex := index.NewMemoryIndex()
	store := redisstore.NewStore(redisClient, cfg.PlanTTL)

	// Recover open sessions from Redis on startup
	syncer := scheduler.NewPlanSyncer(store, memIndex, loggerClient)
	if err := syncer.Sync(context.Background()); err != nil {
		loggerClient.Warn("failed to sync plans from redis on startup",
			logger.Error(err))
	}

	// Transport profile (defaults, optionally merged with a YAML file)
	profile, err := transport.NewLoader(cfg.TransportProfileFile).Load()
	if err != nil {
		loggerClient.Errorf("Failed to load transport profile: %v", err)
		os.Exit(1)
	}

	seed := cfg.DistanceSeed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	synth := domain.NewSynthesizer(profile, domain.NewRandomDistance(seed))
	reconciler := domain.NewReconciler(synth)

	// Initialize session garbage collector
	gc := scheduler.NewSessionGC(memIndex, loggerClient, cfg.GCInterval, cfg.SessionIdleTTL)

	// Dependencies passed to routes (extend as needed).
	d := deps.Deps{
		Logger:          loggerClient,
		StartTime:       time.Now(),
		Version:         version.Version,
		Commit:          version.Commit,
		BuildDate:       version.BuildDate,
		GoVersion:       version.GoVersion,
		TimeNow:         time.Now,
		RedisClient:     redisClient,
		Store:           store,
		MemoryIndex:     memIndex,
		Reconciler:      reconciler,
		Mapper:          genai.NewMapper(),
		CheckpointTTL:   cfg.CheckpointTTL,
		JWTSecret:       cfg.JWTSecret,
		AllowedOrigins:  cfg.AllowedOrigins,
		RateLimitBurst:  cfg.RateLimitBurst,
		RateLimitPerMin: cfg.RateLimitPerMin,
		TrustProxy:      cfg.TrustProxy,
	}

	server := httpserver.New(cfg, loggerClient, d)

	return &App{
		cfg:         cfg,
		logger:      loggerClient,
		server:      server,
		redisClient: redisClient,
		memIndex:    memIndex,
		gc:          gc,
	}
}

func (a *App) Run() error {
	a.logger.Infof("🚀 Starting DayWeave v%s on %s", version.Version, a.cfg.ListenPort)
	a.logger.Infof("DayWeave %s (commit=%s, built=%s, go=%s)",
		version.Version, version.Commit, version.BuildDate, version.GoVersion)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Start session garbage collector
	if err := a.gc.Start(ctx); err != nil {
		return fmt.Errorf("failed to start session gc: %w", err)
	}
	a.logger.Info("session gc started",
		logger.Duration("interval", a.cfg.GCInterval))

	errCh := make(chan error, 1)
	go func() {
		if err := a.server.Start(); err != nil {
			errCh <- fmt.Errorf("http server error: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.logger.Info("⏳ Shutting down gracefully...")
	case err := <-errCh:
		return err
	}

	// Stop session garbage collector
	a.gc.Stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
	defer cancel()
	if err := a.server.Stop(shutdownCtx); err != nil {
		return fmt.Errorf("failed to stop server: %w", err)
	}

	if a.redisClient != nil {
		if err := a.redisClient.Close(); err != nil {
			a.logger.Warnf("failed to close redis: %v", err)
		} else {
			a.logger.Info("✅ Redis closed cleanly")
		}
	}

	a.logger.Info("✅ DayWeave stopped cleanly")
	return nil
}
