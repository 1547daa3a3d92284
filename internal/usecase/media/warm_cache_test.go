package media

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"testing"

	"github.com/rbcastillo/collegeinfo-ms-go/internal/localstore"
	"github.com/rbcastillo/collegeinfo-ms-go/internal/model"
	"github.com/rbcastillo/collegeinfo-ms-go/internal/port"
)

func makeWarmer(t *testing.T, repo *mockRepo, kv *mockKV, dl *mockDownloader) *cacheWarmerSrv {
	t.Helper()
	files, err := localstore.NewDiskFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewDiskFileCache: %v", err)
	}
	return &cacheWarmerSrv{
		repo: repo,
		pop:  populator{kv: kv, files: files, dl: dl},
	}
}

func TestWarmMediaCache_EmptyInputs(t *testing.T) {
	svc := makeWarmer(t, &mockRepo{}, newMockKV(), &mockDownloader{})

	if err := svc.WarmMediaCache(context.Background(), "", "slot"); !errors.Is(err, ErrValidation) {
		t.Errorf("empty department: got %v; want ErrValidation", err)
	}
}

func TestWarmMediaCache_NothingMapped(t *testing.T) {
	repo := &mockRepo{getErr: port.ErrNotFound}
	dl := &mockDownloader{}
	svc := makeWarmer(t, repo, newMockKV(), dl)

	if err := svc.WarmMediaCache(context.Background(), "bsit", "home-banner"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dl.calls != 0 {
		t.Errorf("download attempted with nothing mapped")
	}
}

func TestWarmMediaCache_OverwritesExistingEntry(t *testing.T) {
	repo := &mockRepo{mapping: &model.MediaMapping{
		Department: "bsit",
		Slot:       "home-banner",
		URL:        "http://cdn.example.edu/bsit/home-banner_2.png",
	}}
	kv := newMockKV()
	key := localstore.MediaCacheKey("bsit", "home-banner")
	kv.data[key] = `{"local_path":"/old/path.png","source_url":"http://old"}`
	dl := &mockDownloader{}
	svc := makeWarmer(t, repo, kv, dl)

	if err := svc.WarmMediaCache(context.Background(), "bsit", "home-banner"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dl.calls != 1 {
		t.Fatalf("download calls = %d; want 1", dl.calls)
	}
	if dl.urls[0] != repo.mapping.URL {
		t.Errorf("downloaded %q; want %q", dl.urls[0], repo.mapping.URL)
	}
	if kv.data[key] == `{"local_path":"/old/path.png","source_url":"http://old"}` {
		t.Error("existing entry was not overwritten")
	}
}

func TestWarmMediaCache_DownloadFailurePropagates(t *testing.T) {
	repo := &mockRepo{mapping: &model.MediaMapping{URL: "http://cdn.example.edu/x.png"}}
	svc := makeWarmer(t, repo, newMockKV(), &mockDownloader{err: errors.New("flake")})

	if err := svc.WarmMediaCache(context.Background(), "bsit", "home-banner"); err == nil {
		t.Fatal("expected error, got nil")
	}
}

func TestWarmMediaCache_RemovesStaleFileOnExtensionChange(t *testing.T) {
	repo := &mockRepo{mapping: &model.MediaMapping{
		Department: "bsit",
		Slot:       "home-banner",
		URL:        "http://cdn.example.edu/bsit/home-banner_2.png",
	}}
	kv := newMockKV()
	dl := &mockDownloader{}
	files, err := localstore.NewDiskFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewDiskFileCache: %v", err)
	}

	// previous cache round stored the image as a .jpg
	stale := files.ImagePath("bsit", "home-banner", ".jpg")
	if err := os.WriteFile(stale, []byte("old image"), 0o644); err != nil {
		t.Fatalf("seed stale file: %v", err)
	}
	entry, err := json.Marshal(localstore.MediaCacheEntry{
		LocalPath: stale,
		SourceURL: "http://cdn.example.edu/bsit/home-banner_1.jpg",
	})
	if err != nil {
		t.Fatalf("marshal entry: %v", err)
	}
	kv.data[localstore.MediaCacheKey("bsit", "home-banner")] = string(entry)

	svc := &cacheWarmerSrv{
		repo: repo,
		pop:  populator{kv: kv, files: files, dl: dl},
	}
	if err := svc.WarmMediaCache(context.Background(), "bsit", "home-banner"); err != nil {
		t.Fatalf("WarmMediaCache: %v", err)
	}

	if files.Exists(stale) {
		t.Error("stale .jpg still on disk after the source moved to .png")
	}
	if fresh := files.ImagePath("bsit", "home-banner", ".png"); !files.Exists(fresh) {
		t.Errorf("expected fresh cache file at %q", fresh)
	}
}
