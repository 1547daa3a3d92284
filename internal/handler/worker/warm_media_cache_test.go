package worker

import (
	"context"
	"errors"
	"testing"

	"github.com/rbcastillo/collegeinfo-ms-go/internal/mock"
	"github.com/rbcastillo/collegeinfo-ms-go/internal/task"
)

func TestWarmMediaCacheHandler_InvalidPayload(t *testing.T) {
	svc := &mock.CacheWarmer{}
	err := WarmMediaCacheHandler(context.Background(), task.WarmMediaCachePayload{Slot: "home-banner"}, svc)
	if err == nil {
		t.Fatal("expected error for empty department")
	}
	if svc.Called {
		t.Error("service should not be called on invalid payload")
	}
}

func TestWarmMediaCacheHandler_ServiceError(t *testing.T) {
	svcErr := errors.New("svc fail")
	svc := &mock.CacheWarmer{Err: svcErr}

	err := WarmMediaCacheHandler(context.Background(), task.WarmMediaCachePayload{Department: "bsit", Slot: "home-banner"}, svc)
	if !errors.Is(err, svcErr) {
		t.Fatalf("got error %v; want %v", err, svcErr)
	}
	if !svc.Called {
		t.Error("service not called")
	}
}

func TestWarmMediaCacheHandler_Success(t *testing.T) {
	svc := &mock.CacheWarmer{}

	err := WarmMediaCacheHandler(context.Background(), task.WarmMediaCachePayload{Department: "bsit", Slot: "home-banner"}, svc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !svc.Called {
		t.Error("service not called")
	}
	if svc.Department != "bsit" || svc.Slot != "home-banner" {
		t.Errorf("service got %q/%q; want bsit/home-banner", svc.Department, svc.Slot)
	}
}
