package media

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"path"
	"time"

	"github.com/rbcastillo/collegeinfo-ms-go/internal/localstore"
	"github.com/rbcastillo/collegeinfo-ms-go/internal/logger"
	"github.com/rbcastillo/collegeinfo-ms-go/internal/port"
)

// populator is the shared cache-populate step: download a remote image into
// the local file area and overwrite the index entry for its key.
type populator struct {
	kv    port.KV
	files port.FileCache
	dl    port.Downloader
}

// populate returns the local path the image was cached under. An index write
// failure is logged and swallowed: the file is on disk and usable either way.
func (p *populator) populate(ctx context.Context, department, slot, sourceURL string) (string, error) {
	key := localstore.MediaCacheKey(department, slot)

	// an extension change moves the deterministic path, orphaning the old file
	prevPath := ""
	if raw, ok, err := p.kv.Get(ctx, key); err == nil && ok {
		var prev localstore.MediaCacheEntry
		if json.Unmarshal([]byte(raw), &prev) == nil {
			prevPath = prev.LocalPath
		}
	}

	dest := p.files.ImagePath(department, slot, extFromURL(sourceURL))
	if err := p.dl.DownloadToFile(ctx, sourceURL, dest); err != nil {
		return "", fmt.Errorf("caching image for %q/%q: %w", department, slot, err)
	}

	if prevPath != "" && prevPath != dest && p.files.Exists(prevPath) {
		if err := p.files.Remove(prevPath); err != nil {
			logger.Warnf(ctx, "could not remove stale cached file %q: %v", prevPath, err)
		}
	}

	entry := localstore.MediaCacheEntry{
		LocalPath: dest,
		SourceURL: sourceURL,
		UpdatedAt: time.Now().UTC(),
	}
	data, err := json.Marshal(entry)
	if err != nil {
		logger.Warnf(ctx, "could not marshal cache entry for %q/%q: %v", department, slot, err)
		return dest, nil
	}
	if err := p.kv.Set(ctx, key, string(data)); err != nil {
		logger.Warnf(ctx, "could not index cached image for %q/%q: %v", department, slot, err)
	}
	return dest, nil
}

// cachedPath returns the locally cached file for the key, or "" when the
// entry is absent, unreadable, or its file no longer exists on disk.
func (p *populator) cachedPath(ctx context.Context, department, slot string) (string, string) {
	raw, ok, err := p.kv.Get(ctx, localstore.MediaCacheKey(department, slot))
	if err != nil {
		logger.Warnf(ctx, "cache index read failed for %q/%q: %v", department, slot, err)
		return "", ""
	}
	if !ok {
		return "", ""
	}

	var entry localstore.MediaCacheEntry
	if err := json.Unmarshal([]byte(raw), &entry); err != nil {
		// malformed snapshot, treat as a miss
		logger.Warnf(ctx, "malformed cache entry for %q/%q: %v", department, slot, err)
		return "", ""
	}
	if !p.files.Exists(entry.LocalPath) {
		return "", ""
	}
	return entry.LocalPath, entry.SourceURL
}

func extFromURL(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	return path.Ext(u.Path)
}
