package media

import (
	"context"
	"errors"

	"golang.org/x/sync/singleflight"

	"github.com/rbcastillo/collegeinfo-ms-go/internal/logger"
	"github.com/rbcastillo/collegeinfo-ms-go/internal/model"
	"github.com/rbcastillo/collegeinfo-ms-go/internal/port"
	"github.com/rbcastillo/collegeinfo-ms-go/internal/retry"
)

type mediaResolverSrv struct {
	repo  port.MediaMappingRepository
	pop   populator
	group singleflight.Group
}

// NewMediaResolver wires the cache-first image resolver. Department codes are
// passed through uninterpreted; slot is any non-empty placement name.
func NewMediaResolver(repo port.MediaMappingRepository, kv port.KV, files port.FileCache, dl port.Downloader) port.MediaResolver {
	return &mediaResolverSrv{
		repo: repo,
		pop:  populator{kv: kv, files: files, dl: dl},
	}
}

func (s *mediaResolverSrv) ResolveMedia(ctx context.Context, department, slot string) (*port.MediaRef, error) {
	if department == "" || slot == "" {
		return nil, ErrValidation
	}

	// offline fast path: a valid cache entry means zero network traffic
	if local, src := s.pop.cachedPath(ctx, department, slot); local != "" {
		return &port.MediaRef{URI: local, Cached: true, SourceURL: src}, nil
	}

	// collapse concurrent resolves for the same key into one round-trip
	v, err, _ := s.group.Do(department+":"+slot, func() (any, error) {
		return s.resolveRemote(ctx, department, slot)
	})
	if err != nil {
		return nil, err
	}
	ref, _ := v.(*port.MediaRef)
	return ref, nil
}

func (s *mediaResolverSrv) resolveRemote(ctx context.Context, department, slot string) (*port.MediaRef, error) {
	var mapping *model.MediaMapping
	err := retry.Do(ctx, RemoteTimeout, transientRemoteErr, func(ctx context.Context) error {
		m, err := s.repo.Get(ctx, department, slot)
		if err != nil {
			return err
		}
		mapping = m
		return nil
	})
	if err != nil {
		// absence and lookup failure are both the normal "no image" outcome
		if !errors.Is(err, port.ErrNotFound) {
			logger.Warnf(ctx, "media lookup failed for %q/%q: %v", department, slot, err)
		}
		return nil, nil
	}

	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	local, err := s.pop.populate(ctx, department, slot, mapping.URL)
	if err != nil {
		// degraded mode: usable now, cached next time
		logger.Warnf(ctx, "serving remote URL uncached for %q/%q: %v", department, slot, err)
		return &port.MediaRef{URI: mapping.URL, Cached: false, SourceURL: mapping.URL}, nil
	}

	return &port.MediaRef{URI: local, Cached: true, SourceURL: mapping.URL}, nil
}

func transientRemoteErr(err error) bool {
	return !errors.Is(err, port.ErrNotFound) && !errors.Is(err, port.ErrUnauthorized)
}
