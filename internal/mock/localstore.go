package mock

import (
	"context"
	"os"
	"path/filepath"
	"strings"
)

// KV implements the key/value store for tests.
type KV struct {
	Data map[string]string

	GetErr error
	SetErr error

	GetCalled bool
	SetCalled bool
}

func NewKV() *KV {
	return &KV{Data: map[string]string{}}
}

func (m *KV) Get(ctx context.Context, key string) (string, bool, error) {
	m.GetCalled = true
	if m.GetErr != nil {
		return "", false, m.GetErr
	}
	v, ok := m.Data[key]
	return v, ok, nil
}

func (m *KV) Set(ctx context.Context, key, value string) error {
	m.SetCalled = true
	if m.SetErr != nil {
		return m.SetErr
	}
	m.Data[key] = value
	return nil
}

// FileCache implements the on-disk image cache for tests.
type FileCache struct {
	Root string

	RemoveErr    error
	RemoveCalled bool
}

func (m *FileCache) ImagePath(department, slot, ext string) string {
	if ext == "" {
		ext = ".img"
	} else if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return filepath.Join(m.Root, department+"_"+slot+ext)
}

func (m *FileCache) Exists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

func (m *FileCache) Remove(path string) error {
	m.RemoveCalled = true
	return m.RemoveErr
}
