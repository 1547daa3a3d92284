package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	_ "github.com/go-sql-driver/mysql"

	"github.com/rbcastillo/collegeinfo-ms-go/internal/config"
	"github.com/rbcastillo/collegeinfo-ms-go/internal/db"
	"github.com/rbcastillo/collegeinfo-ms-go/internal/downloader"
	"github.com/rbcastillo/collegeinfo-ms-go/internal/handler/api"
	"github.com/rbcastillo/collegeinfo-ms-go/internal/localstore"
	"github.com/rbcastillo/collegeinfo-ms-go/internal/logger"
	"github.com/rbcastillo/collegeinfo-ms-go/internal/port"
	"github.com/rbcastillo/collegeinfo-ms-go/internal/repository/mariadb"
	"github.com/rbcastillo/collegeinfo-ms-go/internal/storage"
	"github.com/rbcastillo/collegeinfo-ms-go/internal/task"
	feesSvc "github.com/rbcastillo/collegeinfo-ms-go/internal/usecase/fees"
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

	database := initDb(ctx, cfg)

	r := initRouter(ctx)

	strg := initStorage(ctx, cfg)

	kv := localstore.NewRedisKV(cfg.RedisAddr, cfg.RedisPassword)
	files, err := localstore.NewDiskFileCache(cfg.CacheDir)
	if err != nil {
		logger.Errorf(ctx, "❌  Failed to initialise file cache at %q: %v", cfg.CacheDir, err)
		os.Exit(1)
	}
	dl := downloader.NewHTTPDownloader()
	dispatcher := task.NewDispatcher(cfg.RedisAddr, cfg.RedisPassword)

	mappingRepo := mariadb.NewMediaMappingRepository(database.DB)
	feeRepo := mariadb.NewFeeScheduleRepository(database.DB)

	auth := api.WithJWTAuth(cfg.JWTPublicKey)

	r.Get("/departments", api.ListDepartmentsHandler())

	resolveMediaSvc := mediaSvc.NewMediaResolver(mappingRepo, kv, files, dl)
	r.With(api.WithPlacement()).
		Get("/medias/{department}/{slot}", api.GetMediaHandler(resolveMediaSvc))

	uploadMediaSvc := mediaSvc.NewMediaUploader(mappingRepo, strg, dispatcher, db.NewUUID)
	r.With(api.WithPlacement(), auth).
		Post("/medias/{department}/{slot}", api.UploadMediaHandler(uploadMediaSvc))

	resolveFeesSvc := feesSvc.NewFeeResolver(feeRepo, kv)
	r.With(api.WithDepartment()).
		Get("/fees/{department}", api.GetFeesHandler(resolveFeesSvc))

	saveFeesSvc := feesSvc.NewFeeSaver(feeRepo, resolveFeesSvc, db.NewUUID)
	r.With(api.WithDepartment(), auth).
		Put("/fees/{department}", api.SaveFeesHandler(saveFeesSvc))

	listenRouter(ctx, r, cfg, database)
}

func initDb(ctx context.Context, cfg *config.Settings) *db.Database {
	logger.Info(ctx, "initialising database...")

	database, err := db.New(cfg.MariaDBDSN, cfg.MaxOpenConns, cfg.MaxIdleConns, cfg.ConnMaxLifetime)
	if err != nil {
		logger.Errorf(ctx, "❌  Failed to connect to db: %v", err)
		os.Exit(1)
	}

	return database
}

func initRouter(ctx context.Context) *chi.Mux {
	logger.Info(ctx, "initialising router...")

	r := chi.NewRouter()

	r.Use(middleware.Logger)

	r.NotFound(api.NotFoundHandler())
	r.MethodNotAllowed(api.MethodNotAllowedHandler())

	return r
}

func initStorage(ctx context.Context, cfg *config.Settings) port.Storage {
	strg, err := storage.NewStorage(
		cfg.MinioEndpoint,
		cfg.MinioAccessKey,
		cfg.MinioSecretKey,
		cfg.MinioUseSSL,
		cfg.MinioBucket,
		cfg.PublicBaseURL,
	)
	if err != nil {
		logger.Errorf(ctx, "❌  Failed to initialize MinIO client: %v", err)
		os.Exit(1)
	}
	if err := strg.InitBucket(); err != nil {
		logger.Errorf(ctx, "❌  Failed to initialize bucket %q: %v", cfg.MinioBucket, err)
		os.Exit(1)
	}

	return strg
}

func listenRouter(ctx context.Context, r *chi.Mux, cfg *config.Settings, database *db.Database) {
	srv := &http.Server{Addr: ":" + strconv.Itoa(cfg.ServerPort), Handler: r}

	// start serving
	go func() {
		logger.Infof(ctx, "🚀 API listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			logger.Errorf(ctx, "❌  Listen error: %v", err)
			os.Exit(1)
		}
	}()

	// block until we get SIGINT/SIGTERM
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info(ctx, "🛑 Shutdown signal received, exiting…")

	// graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Errorf(ctx, "❌  Server shutdown failed: %v", err)
		os.Exit(1)
	}
	logger.Info(ctx, "✅  Server gracefully stopped")

	if err := database.Close(); err != nil {
		logger.Errorf(ctx, "DB close error: %v", err)
		os.Exit(1)
	}
}
