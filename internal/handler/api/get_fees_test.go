package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rbcastillo/collegeinfo-ms-go/internal/apictx"
	"github.com/rbcastillo/collegeinfo-ms-go/internal/mock"
	"github.com/rbcastillo/collegeinfo-ms-go/internal/model"
)

func departmentRequest(t *testing.T, method, target, department string) *http.Request {
	t.Helper()
	req := httptest.NewRequest(method, target, nil)
	return req.WithContext(apictx.WithDepartment(req.Context(), department))
}

func TestGetFeesHandler_MissingDepartment(t *testing.T) {
	svc := &mock.FeeResolver{}
	rec := httptest.NewRecorder()

	GetFeesHandler(svc).ServeHTTP(rec, httptest.NewRequest("GET", "/fees/bsit", nil))

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d; want %d", rec.Code, http.StatusBadRequest)
	}
	if svc.Called {
		t.Error("service should not be called without a department in context")
	}
}

func TestGetFeesHandler_NothingKnown(t *testing.T) {
	svc := &mock.FeeResolver{Out: nil}
	rec := httptest.NewRecorder()

	GetFeesHandler(svc).ServeHTTP(rec, departmentRequest(t, "GET", "/fees/bsit", "bsit"))

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d; want %d", rec.Code, http.StatusNotFound)
	}
}

func TestGetFeesHandler_ServiceError(t *testing.T) {
	svc := &mock.FeeResolver{Err: errors.New("boom")}
	rec := httptest.NewRecorder()

	GetFeesHandler(svc).ServeHTTP(rec, departmentRequest(t, "GET", "/fees/bsit", "bsit"))

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d; want %d", rec.Code, http.StatusInternalServerError)
	}
}

func TestGetFeesHandler_Success(t *testing.T) {
	svc := &mock.FeeResolver{Out: model.FeeRecord{"tuition": "15000", "misc": "2500"}}
	rec := httptest.NewRecorder()

	GetFeesHandler(svc).ServeHTTP(rec, departmentRequest(t, "GET", "/fees/bsit", "bsit"))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d; want %d", rec.Code, http.StatusOK)
	}
	if svc.Department != "bsit" {
		t.Errorf("service got %q; want bsit", svc.Department)
	}

	var record model.FeeRecord
	if err := json.NewDecoder(rec.Body).Decode(&record); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if record["tuition"] != "15000" {
		t.Errorf("tuition = %v; want 15000", record["tuition"])
	}
}
