// Command matcher runs the matching pipeline once, for cron style scheduling.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"lostfound-backend/internal/adapter/repository/mysql"
	"lostfound-backend/internal/config"
	"lostfound-backend/internal/infrastructure/db"
	"lostfound-backend/internal/infrastructure/logger"
	ucMatching "lostfound-backend/internal/usecase/matching"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "matcher:", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	threshold := flag.Float64("threshold", cfg.MatchThreshold, "cosine similarity cut-off in [-1, 1]")
	flag.Parse()

	log, err := logger.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	gdb, err := db.OpenGorm(cfg.MySQLDSN(), cfg.DBLogSQL)
	if err != nil {
		return fmt.Errorf("open mysql: %w", err)
	}
	if sqlDB, err := gdb.DB(); err == nil {
		defer sqlDB.Close()
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	uc := ucMatching.NewUsecase(mysql.NewMatchRepository(gdb), mysql.NewGormUoW(gdb), *threshold, log, nil)
	res, err := uc.RunPipeline(ctx, *threshold)
	if err != nil {
		return err
	}
	log.Info("done", zap.Int("candidates", res.Candidates), zap.Int("inserted", res.Inserted))
	return nil
}
