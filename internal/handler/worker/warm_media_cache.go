package worker

import (
	"context"
	"fmt"
	"log"

	"github.com/rbcastillo/collegeinfo-ms-go/internal/port"
	"github.com/rbcastillo/collegeinfo-ms-go/internal/task"
)

// WarmMediaCacheHandler handles a warm-media-cache task.
// It unpacks the task payload and delegates to the port.CacheWarmer service,
// which downloads the mapped image and indexes it locally.
func WarmMediaCacheHandler(ctx context.Context, p task.WarmMediaCachePayload, svc port.CacheWarmer) error {
	if p.Department == "" || p.Slot == "" {
		log.Printf("❌  Invalid warm-cache payload %+v", p)
		return fmt.Errorf("invalid warm-cache payload %+v", p)
	}

	if err := svc.WarmMediaCache(ctx, p.Department, p.Slot); err != nil {
		log.Printf("❌  Failed to warm cache for %q/%q: %v", p.Department, p.Slot, err)
		return err
	}

	log.Printf("✅  Successfully warmed cache for %q/%q", p.Department, p.Slot)
	return nil
}
