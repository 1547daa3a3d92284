package localstore

import "time"

// MediaCacheEntry is the JSON snapshot indexed under a media cache key. The
// entry alone is never authoritative: the local file must still exist on
// disk for the entry to count as valid.
type MediaCacheEntry struct {
	LocalPath string    `json:"local_path"`
	SourceURL string    `json:"source_url"`
	UpdatedAt time.Time `json:"updated_at"`
}

// MediaCacheKey builds the key for a (department, slot) image snapshot.
func MediaCacheKey(department, slot string) string {
	return "mediaCache:" + department + ":" + slot
}

// FeesCacheKey builds the key for a department's fee snapshot.
func FeesCacheKey(department string) string {
	return "feesCache:" + department
}
