package testutil

import (
	"context"
	"log"

	"github.com/hibiken/asynq"

	"github.com/rbcastillo/collegeinfo-ms-go/internal/db"
	"github.com/rbcastillo/collegeinfo-ms-go/internal/downloader"
	workerHandler "github.com/rbcastillo/collegeinfo-ms-go/internal/handler/worker"
	"github.com/rbcastillo/collegeinfo-ms-go/internal/localstore"
	"github.com/rbcastillo/collegeinfo-ms-go/internal/repository/mariadb"
	"github.com/rbcastillo/collegeinfo-ms-go/internal/task"
	mediaSvc "github.com/rbcastillo/collegeinfo-ms-go/internal/usecase/media"
)

// StartWorker starts an asynq worker processing warm-media-cache tasks.
// It returns a function to gracefully shut down the worker.
func StartWorker(dbConn *db.Database, redisAddr, cacheDir string) (func(), error) {
	repo := mariadb.NewMediaMappingRepository(dbConn.DB)
	kv := localstore.NewRedisKV(redisAddr, "")
	files, err := localstore.NewDiskFileCache(cacheDir)
	if err != nil {
		return nil, err
	}
	dl := downloader.NewHTTPDownloader()
	warmSvc := mediaSvc.NewCacheWarmer(repo, kv, files, dl)

	mux := asynq.NewServeMux()
	mux.HandleFunc(task.TypeWarmMediaCache, func(ctx context.Context, t *asynq.Task) error {
		p, err := task.ParseWarmMediaCachePayload(t)
		if err != nil {
			return err
		}
		return workerHandler.WarmMediaCacheHandler(ctx, p, warmSvc)
	})

	srv := asynq.NewServer(asynq.RedisClientOpt{Addr: redisAddr}, asynq.Config{Concurrency: 5})
	go func() {
		if err := srv.Run(mux); err != nil {
			log.Printf("worker stopped: %v", err)
		}
	}()

	return func() {
		srv.Shutdown()
	}, nil
}
