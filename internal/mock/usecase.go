package mock

import (
	"context"

	"github.com/rbcastillo/collegeinfo-ms-go/internal/model"
	"github.com/rbcastillo/collegeinfo-ms-go/internal/port"
)

// MediaResolver implements port.MediaResolver for tests.
type MediaResolver struct {
	Out    *port.MediaRef
	Err    error
	Called bool

	Department string
	Slot       string
}

func (m *MediaResolver) ResolveMedia(ctx context.Context, department, slot string) (*port.MediaRef, error) {
	m.Called = true
	m.Department = department
	m.Slot = slot
	return m.Out, m.Err
}

// CacheWarmer implements port.CacheWarmer for tests.
type CacheWarmer struct {
	Err    error
	Called bool

	Department string
	Slot       string
}

func (m *CacheWarmer) WarmMediaCache(ctx context.Context, department, slot string) error {
	m.Called = true
	m.Department = department
	m.Slot = slot
	return m.Err
}

// MediaUploader implements port.MediaUploader for tests.
type MediaUploader struct {
	URL    string
	Err    error
	Called bool

	In port.UploadMediaInput
}

func (m *MediaUploader) UploadMedia(ctx context.Context, in port.UploadMediaInput) (string, error) {
	m.Called = true
	m.In = in
	return m.URL, m.Err
}

// FeeResolver implements port.FeeResolver for tests.
type FeeResolver struct {
	Out    model.FeeRecord
	Err    error
	Called bool

	Department string
}

func (m *FeeResolver) ResolveFees(ctx context.Context, department string) (model.FeeRecord, error) {
	m.Called = true
	m.Department = department
	return m.Out, m.Err
}

// FeeSaver implements port.FeeSaver for tests.
type FeeSaver struct {
	Err    error
	Called bool

	Department string
	Record     model.FeeRecord
}

func (m *FeeSaver) SaveFees(ctx context.Context, department string, record model.FeeRecord) error {
	m.Called = true
	m.Department = department
	m.Record = record
	return m.Err
}
