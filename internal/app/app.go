package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/contesthub/contesthub/internal/aggregator"
	"github.com/contesthub/contesthub/internal/config"
	"github.com/contesthub/contesthub/internal/domain"
	"github.com/contesthub/contesthub/internal/httpserver"
	"github.com/contesthub/contesthub/internal/httpserver/deps"
	"github.com/contesthub/contesthub/internal/index"
	"github.com/contesthub/contesthub/internal/logger"
	"github.com/contesthub/contesthub/internal/redis"
	"github.com/contesthub/contesthub/internal/scheduler"
	"github.com/contesthub/contesthub/internal/sources/catalog"
	"github.com/contesthub/contesthub/internal/sources/codechef"
	"github.com/contesthub/contesthub/internal/sources/codeforces"
	"github.com/contesthub/contesthub/internal/sources/leetcode"
	"github.com/contesthub/contesthub/internal/sources/youtube"
	redisstore "github.com/contesthub/contesthub/internal/store/redis"
	"github.com/contesthub/contesthub/internal/version"
)

type App struct {
	cfg         *config.Config
	logger      logger.Logger
	server      *httpserver.Server
	redisClient *goredis.Client
	memIndex    *index.MemoryIndex
	refresher   *scheduler.Refresher
}

// timedFetcher caps every refresh cycle with the configured upstream budget.
type timedFetcher struct {
	agg    *aggregator.Aggregator
	budget time.Duration
}

func (f timedFetcher) Fetch(ctx context.Context) *aggregator.Snapshot {
	ctx, cancel := context.WithTimeout(ctx, f.budget)
	defer cancel()
	return f.agg.Fetch(ctx)
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
		RedisDB:        cfg.RedisDB,
		DialTimeout:    cfg.RedisDialTimeout,
		ReadTimeout:    cfg.RedisReadTimeout,
		WriteTimeout:   cfg.RedisWriteTimeout,
		PoolSize:       cfg.RedisPoolSize,
		ConnectTimeout: cfg.RedisConnectTimeout,
		RetryInterval:  cfg.RedisRetryInterval,
		MaxWait:        cfg.RedisRetryMaxWait,
		PingTimeout:    cfg.RedisPingTimeout,
	}, loggerClient)
	if err != nil {
		loggerClient.Errorf("Failed to connect to Redis: %v", err)
		os.Exit(1)
	}
	loggerClient.Info("Redis initialized successfully")

	memIndex := index.NewMemoryIndex()
	store := redisstore.NewStore(redisClient)

	// Warm-fill the index from the last persisted snapshot so the API can
	// answer before the first refresh cycle lands.
	syncer := scheduler.NewRedisSyncer(store, memIndex, loggerClient)
	if err := syncer.Sync(context.Background()); err != nil {
		loggerClient.Warn("failed to sync from redis on startup, waiting for first refresh",
			logger.Error(err))
	}

	cat, err := catalog.Load(cfg.SourcesFile)
	if err != nil {
		loggerClient.Errorf("Failed to load source catalog: %v", err)
		os.Exit(1)
	}

	agg := aggregator.New(
		codeforces.New(cat.Codeforces.URL, loggerClient),
		leetcode.New(cat.LeetCode.URL, loggerClient),
		codechef.New(cat.CodeChef.URL, loggerClient),
		youtube.New(cat.YouTube.URL, cfg.YouTubeAPIKey, loggerClient),
		map[domain.Platform]string{
			domain.PlatformCodeforces: cat.PlaylistFor(domain.PlatformCodeforces),
			domain.PlatformLeetCode:   cat.PlaylistFor(domain.PlatformLeetCode),
			domain.PlatformCodeChef:   cat.PlaylistFor(domain.PlatformCodeChef),
		},
		loggerClient,
	)

	refreshTrigger := make(chan struct{}, 1)
	refresher := scheduler.NewRefresher(
		timedFetcher{agg: agg, budget: cfg.FetchTimeout},
		store,
		memIndex,
		loggerClient,
		cfg.RefreshInterval,
		refreshTrigger,
	)

	// Dependencies passed to routes (extend as needed).
	d := deps.Deps{
		Logger:         loggerClient,
		StartTime:      time.Now(),
		Version:        version.Version,
		Commit:         version.Commit,
		BuildDate:      version.BuildDate,
		GoVersion:      version.GoVersion,
		TimeNow:        time.Now,
		RedisClient:    redisClient,
		MemoryIndex:    memIndex,
		RefreshTrigger: refreshTrigger,
	}

	server := httpserver.New(cfg, loggerClient, d)

	return &App{
		cfg:         cfg,
		logger:      loggerClient,
		server:      server,
		redisClient: redisClient,
		memIndex:    memIndex,
		refresher:   refresher,
	}
}

func (a *App) Run() error {
	a.logger.Infof("🚀 Starting ContestHub v%s on %s", version.Version, a.cfg.ListenPort)
	a.logger.Infof("ContestHub %s (commit=%s, built=%s, go=%s)",
		version.Version, version.Commit, version.BuildDate, version.GoVersion)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Runs one refresh synchronously, then ticks in the background.
	a.refresher.Start(ctx)
	a.logger.Info("refresher started",
		logger.Duration("interval", a.cfg.RefreshInterval))

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

	a.refresher.Stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
	defer cancel()
	if err := a.server.Stop(shutdownCtx); err != nil {
		return fmt.Errorf("failed to stop server: %w", err)
	}

	if a.redisClient != nil {
		if err := a.redisClient.Close(); err != nil {
			a.logger.Warnf("failed to close redis: %v", err)
		} else {
			a.logger.Info("redis connection closed")
		}
	}

	a.logger.Info("✅ Shutdown complete")
	return nil
}
