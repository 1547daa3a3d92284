package mock

import (
	"context"
	"os"
)

// Downloader implements the blob downloader for tests. On success it writes
// a placeholder file so path checks against the result succeed.
type Downloader struct {
	Err error

	Called bool
	URLs   []string
	Paths  []string
}

func (m *Downloader) DownloadToFile(ctx context.Context, url, destPath string) error {
	m.Called = true
	m.URLs = append(m.URLs, url)
	m.Paths = append(m.Paths, destPath)
	if m.Err != nil {
		return m.Err
	}
	return os.WriteFile(destPath, []byte("downloaded"), 0o644)
}
