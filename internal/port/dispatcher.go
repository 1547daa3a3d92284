package port

import "context"

// TaskDispatcher enqueues background tasks.
type TaskDispatcher interface {
	EnqueueWarmMediaCache(ctx context.Context, department, slot string) error
}
