package port

import (
	"context"

	"github.com/rbcastillo/collegeinfo-ms-go/internal/db"
	"github.com/rbcastillo/collegeinfo-ms-go/internal/model"
)

type UUIDGen func() db.UUID

// MediaRef is a displayable image reference. URI is a local file path when
// the image was served from (or just written to) the device cache, or the
// remote URL in degraded mode.
type MediaRef struct {
	URI       string `json:"uri"`
	Cached    bool   `json:"cached"`
	SourceURL string `json:"source_url,omitempty"`
}

// MediaResolver resolves a (department, slot) placement to an image
// reference, preferring the local cache. A nil ref with a nil error means
// no image exists for the key.
type MediaResolver interface {
	ResolveMedia(ctx context.Context, department, slot string) (*MediaRef, error)
}

// CacheWarmer re-populates the local image cache for a placement,
// unconditionally overwriting the prior entry.
type CacheWarmer interface {
	WarmMediaCache(ctx context.Context, department, slot string) error
}

// MediaUploader pushes a local file to blob storage and repoints the
// (department, slot) mapping at it.
type MediaUploader interface {
	UploadMedia(ctx context.Context, in UploadMediaInput) (string, error)
}
type UploadMediaInput struct {
	Department string `json:"department" validate:"required,max=20"`
	Slot       string `json:"slot" validate:"required,max=60"`
	LocalPath  string `json:"local_path" validate:"required"`
}

// CachePrefetcher enqueues a warm task for every known placement, so a
// device can be prepared for offline use in one pass.
type CachePrefetcher interface {
	PrefetchAll(ctx context.Context) error
}

// FeeResolver resolves a department to its fee record, network-first with
// cache fallback. A nil record with a nil error means nothing is known.
type FeeResolver interface {
	ResolveFees(ctx context.Context, department string) (model.FeeRecord, error)
}

// FeeSaver upserts a department's fee record remotely and refreshes the
// local snapshot on success.
type FeeSaver interface {
	SaveFees(ctx context.Context, department string, record model.FeeRecord) error
}
