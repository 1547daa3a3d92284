package main

import (
	"context"
	"log"

	_ "github.com/go-sql-driver/mysql"

	"github.com/rbcastillo/collegeinfo-ms-go/internal/config"
	"github.com/rbcastillo/collegeinfo-ms-go/internal/db"
	"github.com/rbcastillo/collegeinfo-ms-go/internal/port"
	"github.com/rbcastillo/collegeinfo-ms-go/internal/repository/mariadb"
	"github.com/rbcastillo/collegeinfo-ms-go/internal/task"
	mediaSvc "github.com/rbcastillo/collegeinfo-ms-go/internal/usecase/media"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌  Configuration error: %v", err)
	}

	database := initDb(cfg)
	defer func() {
		if err := database.Close(); err != nil {
			log.Printf("DB close error: %v", err)
		}
	}()

	dispatcher := initDispatcher(cfg)
	repo := mariadb.NewMediaMappingRepository(database.DB)

	prefetcher := mediaSvc.NewCachePrefetcher(repo, dispatcher)
	if err := prefetcher.PrefetchAll(context.Background()); err != nil {
		log.Fatalf("❌  Cache prefetch failed: %v", err)
	}
	log.Println("✅  Cache prefetch completed")
}

func initDb(cfg *config.Settings) *db.Database {
	log.Println("initialising database...")
	database, err := db.New(cfg.MariaDBDSN, cfg.MaxOpenConns, cfg.MaxIdleConns, cfg.ConnMaxLifetime)
	if err != nil {
		log.Fatalf("❌  Failed to connect to db: %v", err)
	}
	return database
}

func initDispatcher(cfg *config.Settings) port.TaskDispatcher {
	if cfg.RedisAddr == "" {
		log.Fatalf("❌  Redis not configured: this command requires a running Redis instance")
	}
	return task.NewDispatcher(cfg.RedisAddr, cfg.RedisPassword)
}
