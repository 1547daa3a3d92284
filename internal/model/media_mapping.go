package model

import (
	"time"

	"github.com/rbcastillo/collegeinfo-ms-go/internal/db"
)

// MediaMapping is one row of the media-mapping table: the latest uploaded
// image for a (department, slot) placement. Upserting the same key replaces
// the row and the blob it pointed at gets cleaned up best-effort.
type MediaMapping struct {
	ID         db.UUID   `json:"id"`
	Department string    `json:"department"`
	Slot       string    `json:"slot"`
	ObjectKey  string    `json:"object_key"`
	URL        string    `json:"url"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
