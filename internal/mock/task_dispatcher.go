package mock

import "context"

// MockDispatcher implements task dispatching for tests.
type MockDispatcher struct {
	WarmCalled      bool
	WarmDepartments []string
	WarmSlots       []string
	WarmErr         error
}

func (m *MockDispatcher) EnqueueWarmMediaCache(ctx context.Context, department, slot string) error {
	m.WarmCalled = true
	m.WarmDepartments = append(m.WarmDepartments, department)
	m.WarmSlots = append(m.WarmSlots, slot)
	return m.WarmErr
}
