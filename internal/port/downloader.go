package port

import "context"

// Downloader fetches a remote URL into a local file.
type Downloader interface {
	DownloadToFile(ctx context.Context, url, destPath string) error
}
