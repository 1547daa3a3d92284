package port

import (
	"context"

	"github.com/rbcastillo/collegeinfo-ms-go/internal/model"
)

// MediaMappingRepository defines persistence operations for the
// media-mapping table, keyed by (department, slot).
type MediaMappingRepository interface {
	// Get returns the mapping for the composite key, or ErrNotFound.
	Get(ctx context.Context, department, slot string) (*model.MediaMapping, error)
	// Upsert replaces any existing row with the same (department, slot).
	Upsert(ctx context.Context, m *model.MediaMapping) error
	// List returns every mapping, for cache prefetching.
	List(ctx context.Context) ([]model.MediaMapping, error)
}

// FeeScheduleRepository defines persistence operations for the fees table,
// one row per department.
type FeeScheduleRepository interface {
	// GetByDepartment returns the department's row, or ErrNotFound.
	GetByDepartment(ctx context.Context, department string) (*model.FeeSchedule, error)
	// Upsert fully replaces any existing row for the same department.
	Upsert(ctx context.Context, f *model.FeeSchedule) error
}
