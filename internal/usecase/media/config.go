package media

import "time"

// RemoteTimeout bounds each remote table lookup attempt.
const RemoteTimeout = 5 * time.Second

// FallbackContentType is used for uploads whose extension is not in the
// image allow-list. The blob is still stored; browsers treat it as opaque.
const FallbackContentType = "application/octet-stream"

var imageContentTypes = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".gif":  "image/gif",
	".webp": "image/webp",
}

// ContentTypeForExtension maps a lowercase file extension (with dot) to its
// content type, defaulting to FallbackContentType for anything unknown.
func ContentTypeForExtension(ext string) string {
	if ct, ok := imageContentTypes[ext]; ok {
		return ct
	}
	return FallbackContentType
}
