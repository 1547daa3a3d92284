package media

import (
	"context"
	"os"
	"sync"

	"github.com/rbcastillo/collegeinfo-ms-go/internal/model"
)

type mockRepo struct {
	mu       sync.Mutex
	mapping  *model.MediaMapping
	mappings []model.MediaMapping
	getErr   error
	upErr    error
	getCalls int
	upserted []*model.MediaMapping
}

func (m *mockRepo) Get(ctx context.Context, department, slot string) (*model.MediaMapping, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.getCalls++
	if m.getErr != nil {
		return nil, m.getErr
	}
	return m.mapping, nil
}

func (m *mockRepo) Upsert(ctx context.Context, mapping *model.MediaMapping) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.upErr != nil {
		return m.upErr
	}
	m.upserted = append(m.upserted, mapping)
	return nil
}

func (m *mockRepo) List(ctx context.Context) ([]model.MediaMapping, error) {
	return m.mappings, nil
}

type mockKV struct {
	mu     sync.Mutex
	data   map[string]string
	getErr error
	setErr error
}

func newMockKV() *mockKV {
	return &mockKV{data: map[string]string{}}
}

func (m *mockKV) Get(ctx context.Context, key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.getErr != nil {
		return "", false, m.getErr
	}
	v, ok := m.data[key]
	return v, ok, nil
}

func (m *mockKV) Set(ctx context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.setErr != nil {
		return m.setErr
	}
	m.data[key] = value
	return nil
}

// mockDownloader writes a real file so the cache validity check passes.
type mockDownloader struct {
	mu    sync.Mutex
	err   error
	calls int
	urls  []string
}

func (m *mockDownloader) DownloadToFile(ctx context.Context, url, destPath string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = m.calls + 1
	m.urls = append(m.urls, url)
	if m.err != nil {
		return m.err
	}
	return os.WriteFile(destPath, []byte("cached image"), 0o644)
}

type mockDispatcher struct {
	err        error
	calls      int
	department string
	slot       string
}

func (m *mockDispatcher) EnqueueWarmMediaCache(ctx context.Context, department, slot string) error {
	m.calls++
	m.department = department
	m.slot = slot
	return m.err
}
