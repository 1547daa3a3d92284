package localstore

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNewDiskFileCache_CreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "cache")

	c, err := NewDiskFileCache(dir)
	if err != nil {
		t.Fatalf("NewDiskFileCache: %v", err)
	}

	info, err := os.Stat(c.Dir())
	if err != nil || !info.IsDir() {
		t.Fatalf("cache dir was not created: %v", err)
	}
}

func TestImagePath_Deterministic(t *testing.T) {
	c, err := NewDiskFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewDiskFileCache: %v", err)
	}

	first := c.ImagePath("bsit", "home-banner", ".png")
	second := c.ImagePath("bsit", "home-banner", ".png")
	if first != second {
		t.Errorf("paths differ for the same key: %q vs %q", first, second)
	}
	if filepath.Base(first) != "bsit_home-banner.png" {
		t.Errorf("unexpected file name %q", filepath.Base(first))
	}
}

func TestImagePath_SanitisesAndDefaultsExt(t *testing.T) {
	c, err := NewDiskFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewDiskFileCache: %v", err)
	}

	p := c.ImagePath("bsit", "hero/../../etc", "")
	base := filepath.Base(p)
	if base != "bsit_hero-------etc.img" {
		t.Errorf("unexpected sanitised name %q", base)
	}
	if filepath.Dir(p) != c.Dir() {
		t.Errorf("path escaped the cache dir: %q", p)
	}
}

func TestExists(t *testing.T) {
	c, err := NewDiskFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewDiskFileCache: %v", err)
	}

	p := c.ImagePath("bscs", "home-banner", ".jpg")
	if c.Exists(p) {
		t.Error("Exists: true before the file was written")
	}

	if err := os.WriteFile(p, []byte("img"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if !c.Exists(p) {
		t.Error("Exists: false after the file was written")
	}

	// directories do not count as cached files
	if c.Exists(c.Dir()) {
		t.Error("Exists: reported true for a directory")
	}
}

func TestRemove_MissingFileIsFine(t *testing.T) {
	c, err := NewDiskFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewDiskFileCache: %v", err)
	}

	if err := c.Remove(c.ImagePath("bsit", "gone", ".png")); err != nil {
		t.Errorf("Remove of missing file: %v", err)
	}
}
