package downloader

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
)

func TestDownloadToFile_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("image-bytes"))
	}))
	defer srv.Close()

	dest := filepath.Join(t.TempDir(), "bsit_home-banner.png")
	d := NewHTTPDownloader()

	if err := d.DownloadToFile(context.Background(), srv.URL, dest); err != nil {
		t.Fatalf("DownloadToFile: %v", err)
	}

	data, err := os.ReadFile(dest)
	if err != nil {
		t.Fatalf("read downloaded file: %v", err)
	}
	if string(data) != "image-bytes" {
		t.Errorf("content = %q; want %q", data, "image-bytes")
	}
}

func TestDownloadToFile_OverwritesExisting(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("new"))
	}))
	defer srv.Close()

	dest := filepath.Join(t.TempDir(), "bsit_home-banner.png")
	if err := os.WriteFile(dest, []byte("old"), 0o644); err != nil {
		t.Fatalf("seed file: %v", err)
	}

	if err := NewHTTPDownloader().DownloadToFile(context.Background(), srv.URL, dest); err != nil {
		t.Fatalf("DownloadToFile: %v", err)
	}

	data, _ := os.ReadFile(dest)
	if string(data) != "new" {
		t.Errorf("content = %q; want %q", data, "new")
	}
}

func TestDownloadToFile_BadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	dir := t.TempDir()
	dest := filepath.Join(dir, "x.png")
	err := NewHTTPDownloader().DownloadToFile(context.Background(), srv.URL, dest)
	if err == nil {
		t.Fatal("expected error for 404, got nil")
	}

	// no partial file left behind
	if _, statErr := os.Stat(dest); !os.IsNotExist(statErr) {
		t.Errorf("dest file should not exist after failure")
	}
	entries, _ := os.ReadDir(dir)
	if len(entries) != 0 {
		t.Errorf("temp files left behind: %v", entries)
	}
}

func TestDownloadToFile_ServerDown(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	dest := filepath.Join(t.TempDir(), "x.png")
	if err := NewHTTPDownloader().DownloadToFile(context.Background(), srv.URL, dest); err == nil {
		t.Fatal("expected connection error, got nil")
	}
}
