package media

import (
	"context"
	"fmt"

	"github.com/rbcastillo/collegeinfo-ms-go/internal/logger"
	"github.com/rbcastillo/collegeinfo-ms-go/internal/port"
)

type cachePrefetcherSrv struct {
	repo       port.MediaMappingRepository
	dispatcher port.TaskDispatcher
}

// NewCachePrefetcher wires the bulk warm path used to prepare a device for
// offline use.
func NewCachePrefetcher(repo port.MediaMappingRepository, dispatcher port.TaskDispatcher) port.CachePrefetcher {
	return &cachePrefetcherSrv{repo: repo, dispatcher: dispatcher}
}

func (s *cachePrefetcherSrv) PrefetchAll(ctx context.Context) error {
	mappings, err := s.repo.List(ctx)
	if err != nil {
		return fmt.Errorf("listing media mappings: %w", err)
	}

	var failed int
	for _, m := range mappings {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := s.dispatcher.EnqueueWarmMediaCache(ctx, m.Department, m.Slot); err != nil {
			logger.Warnf(ctx, "could not enqueue cache warm for %q/%q: %v", m.Department, m.Slot, err)
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("failed to enqueue %d of %d warm tasks", failed, len(mappings))
	}

	logger.Infof(ctx, "enqueued %d warm tasks", len(mappings))
	return nil
}
