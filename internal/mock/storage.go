package mock

import (
	"context"
	"io"
)

// Storage implements the storage interface for tests.
type Storage struct {
	// stored values
	ExistsOut bool
	URLOut    string

	// captured inputs
	ObjectKey string
	Opts      map[string]string

	// errors
	InitBucketErr error
	SaveErr       error
	RemoveErr     error
	FileExistsErr error

	// call flags
	InitBucketCalled bool
	SaveCalled       bool
	RemoveCalled     bool
	FileExistsCalled bool
}

func (m *Storage) InitBucket() error {
	m.InitBucketCalled = true
	return m.InitBucketErr
}

func (m *Storage) SaveFile(ctx context.Context, fileKey string, reader io.Reader, fileSize int64, opts map[string]string) error {
	m.SaveCalled = true
	m.ObjectKey = fileKey
	m.Opts = opts
	return m.SaveErr
}

func (m *Storage) FileExists(ctx context.Context, fileKey string) (bool, error) {
	m.FileExistsCalled = true
	if m.FileExistsErr != nil {
		return false, m.FileExistsErr
	}
	return m.ExistsOut, nil
}

func (m *Storage) RemoveFile(ctx context.Context, fileKey string) error {
	m.RemoveCalled = true
	m.ObjectKey = fileKey
	return m.RemoveErr
}

func (m *Storage) PublicURL(fileKey string) string {
	if m.URLOut != "" {
		return m.URLOut
	}
	return "https://cdn.example.edu/" + fileKey
}
