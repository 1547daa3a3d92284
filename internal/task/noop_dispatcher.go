package task

import (
	"context"

	"github.com/rbcastillo/collegeinfo-ms-go/internal/port"
)

type NoopDispatcher struct{}

var _ port.TaskDispatcher = (*NoopDispatcher)(nil)

func NewNoopDispatcher() *NoopDispatcher { return &NoopDispatcher{} }

func (d *NoopDispatcher) EnqueueWarmMediaCache(ctx context.Context, department, slot string) error {
	return nil
}
