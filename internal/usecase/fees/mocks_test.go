package fees

import (
	"context"
	"sync"

	"github.com/rbcastillo/collegeinfo-ms-go/internal/model"
)

type mockFeeRepo struct {
	mu       sync.Mutex
	sched    *model.FeeSchedule
	getErr   error
	upErr    error
	getCalls int
	upserted []*model.FeeSchedule
}

func (m *mockFeeRepo) GetByDepartment(ctx context.Context, department string) (*model.FeeSchedule, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.getCalls++
	if m.getErr != nil {
		return nil, m.getErr
	}
	return m.sched, nil
}

func (m *mockFeeRepo) Upsert(ctx context.Context, sched *model.FeeSchedule) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.upErr != nil {
		return m.upErr
	}
	m.upserted = append(m.upserted, sched)
	return nil
}

type mockKV struct {
	mu     sync.Mutex
	data   map[string]string
	getErr error
	setErr error
	sets   int
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
	m.sets++
	m.data[key] = value
	return nil
}

type mockResolver struct {
	calls      int
	department string
	record     model.FeeRecord
	err        error
}

func (m *mockResolver) ResolveFees(ctx context.Context, department string) (model.FeeRecord, error) {
	m.calls++
	m.department = department
	return m.record, m.err
}
