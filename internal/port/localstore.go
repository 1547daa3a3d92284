package port

import "context"

// KV is durable string key-value storage for JSON snapshots. Every read and
// write is a single independent key operation; there is no TTL and no
// transactional guarantee across keys.
type KV interface {
	// Get returns the stored value and whether the key exists.
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
}

// FileCache manages the local on-disk area for downloaded images.
type FileCache interface {
	// ImagePath returns the deterministic local path for a (department, slot)
	// image, so a re-download overwrites instead of accumulating.
	ImagePath(department, slot, ext string) string
	// Exists re-checks validity against the filesystem; an index entry whose
	// file has gone away must never be trusted.
	Exists(path string) bool
	Remove(path string) error
}
