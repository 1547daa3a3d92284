package media

import (
	"context"
	"errors"
	"fmt"

	"github.com/rbcastillo/collegeinfo-ms-go/internal/model"
	"github.com/rbcastillo/collegeinfo-ms-go/internal/port"
	"github.com/rbcastillo/collegeinfo-ms-go/internal/retry"
)

type cacheWarmerSrv struct {
	repo port.MediaMappingRepository
	pop  populator
}

// NewCacheWarmer wires the cache-populate step on its own, for the worker
// and the prefetch command. Unlike ResolveMedia it overwrites the local
// entry unconditionally, so a fresh upload replaces a still-valid old image.
func NewCacheWarmer(repo port.MediaMappingRepository, kv port.KV, files port.FileCache, dl port.Downloader) port.CacheWarmer {
	return &cacheWarmerSrv{
		repo: repo,
		pop:  populator{kv: kv, files: files, dl: dl},
	}
}

func (s *cacheWarmerSrv) WarmMediaCache(ctx context.Context, department, slot string) error {
	if department == "" || slot == "" {
		return ErrValidation
	}

	var mapping *model.MediaMapping
	err := retry.Do(ctx, RemoteTimeout, transientRemoteErr, func(ctx context.Context) error {
		m, err := s.repo.Get(ctx, department, slot)
		if err != nil {
			return err
		}
		mapping = m
		return nil
	})
	if errors.Is(err, port.ErrNotFound) {
		// nothing mapped, nothing to warm
		return nil
	}
	if err != nil {
		return fmt.Errorf("warming cache for %q/%q: %w", department, slot, err)
	}

	if _, err := s.pop.populate(ctx, department, slot, mapping.URL); err != nil {
		return err
	}
	return nil
}
