package mock

import (
	"context"

	"github.com/rbcastillo/collegeinfo-ms-go/internal/model"
)

// MediaMappingRepo implements repository operations for tests.
type MediaMappingRepo struct {
	MappingRecord *model.MediaMapping

	GetErr    error
	UpsertErr error
	ListErr   error
	ListOut   []model.MediaMapping

	GetCalled  bool
	Upserted   *model.MediaMapping
	ListCalled bool
}

func (m *MediaMappingRepo) Get(ctx context.Context, department, slot string) (*model.MediaMapping, error) {
	m.GetCalled = true
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	return m.MappingRecord, nil
}

func (m *MediaMappingRepo) Upsert(ctx context.Context, mapping *model.MediaMapping) error {
	m.Upserted = mapping
	return m.UpsertErr
}

func (m *MediaMappingRepo) List(ctx context.Context) ([]model.MediaMapping, error) {
	m.ListCalled = true
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	return m.ListOut, nil
}

// FeeScheduleRepo implements repository operations for tests.
type FeeScheduleRepo struct {
	ScheduleRecord *model.FeeSchedule

	GetErr    error
	UpsertErr error

	GetCalled bool
	Upserted  *model.FeeSchedule
}

func (m *FeeScheduleRepo) GetByDepartment(ctx context.Context, department string) (*model.FeeSchedule, error) {
	m.GetCalled = true
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	return m.ScheduleRecord, nil
}

func (m *FeeScheduleRepo) Upsert(ctx context.Context, sched *model.FeeSchedule) error {
	m.Upserted = sched
	return m.UpsertErr
}
