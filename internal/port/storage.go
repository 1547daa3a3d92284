package port

import (
	"context"
	"io"
)

// Storage defines blob storage operations against a single bucket.
type Storage interface {
	InitBucket() error
	// SaveFile uploads with overwrite semantics: reusing a key replaces the blob.
	SaveFile(ctx context.Context, fileKey string, reader io.Reader, fileSize int64, opts map[string]string) error
	FileExists(ctx context.Context, fileKey string) (bool, error)
	RemoveFile(ctx context.Context, fileKey string) error
	// PublicURL derives the publicly reachable URL for a stored blob.
	PublicURL(fileKey string) string
}
