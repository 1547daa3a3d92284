package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/hibiken/asynq"

	"github.com/rbcastillo/collegeinfo-ms-go/internal/config"
	"github.com/rbcastillo/collegeinfo-ms-go/internal/db"
	"github.com/rbcastillo/collegeinfo-ms-go/internal/downloader"
	workerHandler "github.com/rbcastillo/collegeinfo-ms-go/internal/handler/worker"
	"github.com/rbcastillo/collegeinfo-ms-go/internal/localstore"
	"github.com/rbcastillo/collegeinfo-ms-go/internal/logger"
	"github.com/rbcastillo/collegeinfo-ms-go/internal/repository/mariadb"
	"github.com/rbcastillo/collegeinfo-ms-go/internal/task"
	mediaSvc "github.com/rbcastillo/collegeinfo-ms-go/internal/usecase/media"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		logger.Errorf(ctx, "❌  Configuration error: %v", err)
		os.Exit(1)
	}

	logger.Init()

	database := initDb(cfg)
	defer func() {
		if err := database.Close(); err != nil {
			logger.Warnf(ctx, "DB close error: %v", err)
		}
	}()

	kv := localstore.NewRedisKV(cfg.RedisAddr, cfg.RedisPassword)
	files, err := localstore.NewDiskFileCache(cfg.CacheDir)
	if err != nil {
		logger.Errorf(ctx, "❌  Failed to initialise file cache at %q: %v", cfg.CacheDir, err)
		os.Exit(1)
	}
	dl := downloader.NewHTTPDownloader()

	repo := mariadb.NewMediaMappingRepository(database.DB)
	warmSvc := mediaSvc.NewCacheWarmer(repo, kv, files, dl)

	mux := asynq.NewServeMux()
	mux.HandleFunc(task.TypeWarmMediaCache, func(ctx context.Context, t *asynq.Task) error {
		p, err := task.ParseWarmMediaCachePayload(t)
		if err != nil {
			return err
		}
		return workerHandler.WarmMediaCacheHandler(ctx, p, warmSvc)
	})

	runWorker(ctx, mux, cfg, database)
}

func initDb(cfg *config.Settings) *db.Database {
	ctx := context.Background()
	logger.Info(ctx, "initialising database...")

	database, err := db.New(cfg.MariaDBDSN, cfg.MaxOpenConns, cfg.MaxIdleConns, cfg.ConnMaxLifetime)
	if err != nil {
		logger.Errorf(ctx, "❌  Failed to connect to db: %v", err)
		os.Exit(1)
	}
	return database
}

func runWorker(ctx context.Context, mux *asynq.ServeMux, cfg *config.Settings, database *db.Database) {
	srv := asynq.NewServer(asynq.RedisClientOpt{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	}, asynq.Config{Concurrency: 10})

	// Run server in background
	go func() {
		if err := srv.Run(mux); err != nil {
			logger.Errorf(context.Background(), "❌  Worker failed: %v", err)
			os.Exit(1)
		}
	}()
	logger.Info(ctx, "🚀 Worker started")

	// Wait for interrupt signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh
	logger.Info(ctx, "🛑 Shutdown signal received, exiting…")

	// Give Asynq up to 30 sec to finish tasks
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	srv.Shutdown()       // stop accepting new tasks, finish in-flight
	<-shutdownCtx.Done() // either timeout or done

	logger.Info(ctx, "✅  Worker gracefully stopped")
}
