package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"

	httpadp "lostfound-backend/internal/adapter/http"
	"lostfound-backend/internal/adapter/repository/mysql"
	"lostfound-backend/internal/config"
	"lostfound-backend/internal/infrastructure/cache"
	"lostfound-backend/internal/infrastructure/db"
	"lostfound-backend/internal/infrastructure/embedding"
	"lostfound-backend/internal/infrastructure/logger"
	"lostfound-backend/internal/infrastructure/metrics"
	ucClaim "lostfound-backend/internal/usecase/claim"
	ucItem "lostfound-backend/internal/usecase/item"
	ucMatching "lostfound-backend/internal/usecase/matching"
	ucNotification "lostfound-backend/internal/usecase/notification"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "api:", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	log, err := logger.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	if cfg.DBMigrate {
		if err := db.RunMigrations(cfg.MigrateURL()); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	gdb, err := db.OpenGorm(cfg.MySQLDSN(), cfg.DBLogSQL)
	if err != nil {
		return fmt.Errorf("open mysql: %w", err)
	}

	var rdb *redis.Client
	if cfg.RedisAddr != "" {
		if rdb, err = cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB); err != nil {
			log.Warn("redis unavailable, running without idempotency and embedding cache",
				zap.String("addr", cfg.RedisAddr), zap.Error(err))
			rdb = nil
		} else {
			defer rdb.Close()
		}
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	rec := metrics.NewCollector(reg)

	provider := newEmbeddingProvider(cfg.Embedding, rdb, log, rec)
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Embedding.Timeout())
	if err := provider.Warmup(ctx); err != nil {
		// items are still stored without vectors; the provider retries on use
		log.Warn("embedding warmup failed", zap.Error(err))
	}
	cancel()

	items := mysql.NewItemRepository(gdb)
	matches := mysql.NewMatchRepository(gdb)
	claims := mysql.NewClaimRepository(gdb)
	users := mysql.NewUserRepository(gdb)
	tx := mysql.NewGormUoW(gdb)

	notifications := ucNotification.NewService(mysql.NewNotificationRepository(gdb), cfg.NotificationLimit, log, rec)
	matching := ucMatching.NewUsecase(matches, tx, cfg.MatchThreshold, log, rec)
	itemUC := ucItem.NewUsecase(items, provider, matching, log)
	claimUC := ucClaim.NewUsecase(claims, users, tx, notifications, log, rec)

	e := httpadp.NewRouter(httpadp.Handlers{
		Health:        httpadp.NewHandler(pinger(gdb)),
		Items:         httpadp.NewItemHandler(itemUC, log),
		Matches:       httpadp.NewMatchHandler(matching, log),
		Claims:        httpadp.NewClaimHandler(claimUC, log),
		Notifications: httpadp.NewNotificationHandler(notifications, log),
	}, httpadp.RouterConfig{
		JWTSecret:      []byte(cfg.JWTSecret),
		Redis:          rdb,
		IdempotencyTTL: cfg.IdempotencyTTL(),
		Metrics:        metrics.Handler(reg),
		Logger:         log,
	})

	addr := ":" + cfg.AppPort
	errCh := make(chan error, 1)
	go func() {
		log.Info("listening", zap.String("addr", addr))
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-stop:
		log.Info("shutting down", zap.String("signal", sig.String()))
	case err := <-errCh:
		if err != nil {
			return err
		}
	}

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancelShutdown()
	if err := e.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	if sqlDB, err := gdb.DB(); err == nil {
		_ = sqlDB.Close()
	}
	return nil
}

func newEmbeddingProvider(cfg config.EmbeddingConfig, rdb *redis.Client, log *zap.Logger, rec metrics.Recorder) *embedding.Provider {
	var (
		load  embedding.Loader
		model string
	)
	switch cfg.Backend {
	case "openai":
		model = cfg.Model
		load = embedding.OpenAILoader(embedding.OpenAIConfig{
			BaseURL: cfg.BaseURL,
			APIKey:  cfg.APIKey,
			Model:   cfg.Model,
			Timeout: cfg.Timeout(),
		})
	default:
		model = fmt.Sprintf("hashing-%d", cfg.Dim)
		load = embedding.HashingLoader(cfg.Dim)
	}
	if rdb != nil {
		load = embedding.WithCache(load, cache.NewVectorCache(rdb, model, cfg.CacheTTL()), log)
	}
	return embedding.NewProvider(cfg.Backend, load, log, rec)
}

func pinger(gdb *gorm.DB) func(context.Context) error {
	return func(ctx context.Context) error {
		sqlDB, err := gdb.DB()
		if err != nil {
			return err
		}
		return sqlDB.PingContext(ctx)
	}
}
