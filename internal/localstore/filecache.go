package localstore

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"github.com/rbcastillo/collegeinfo-ms-go/internal/port"
)

// DiskFileCache is the managed directory for downloaded images. File names
// are derived from (department, slot) so a re-download for the same key
// overwrites the previous file instead of accumulating copies.
type DiskFileCache struct {
	dir string
}

// compile-time check: *DiskFileCache must satisfy port.FileCache
var _ port.FileCache = (*DiskFileCache)(nil)

var unsafeChars = regexp.MustCompile(`[^a-zA-Z0-9_-]`)

func NewDiskFileCache(dir string) (*DiskFileCache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("could not create cache dir %q: %w", dir, err)
	}
	return &DiskFileCache{dir: dir}, nil
}

func (c *DiskFileCache) Dir() string {
	return c.dir
}

func (c *DiskFileCache) ImagePath(department, slot, ext string) string {
	if ext == "" {
		ext = ".img"
	}
	name := fmt.Sprintf("%s_%s%s", sanitize(department), sanitize(slot), ext)
	return filepath.Join(c.dir, name)
}

func (c *DiskFileCache) Exists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

func (c *DiskFileCache) Remove(path string) error {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

func sanitize(s string) string {
	return unsafeChars.ReplaceAllString(s, "-")
}
