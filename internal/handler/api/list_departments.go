package api

import (
	"net/http"

	"github.com/rbcastillo/collegeinfo-ms-go/internal/model"
)

type ListDepartmentsResponse struct {
	Departments []model.Department `json:"departments"`
}

// ListDepartmentsHandler returns the closed enumeration of department codes,
// which clients use to build their navigation.
func ListDepartmentsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		RespondJSON(w, http.StatusOK, ListDepartmentsResponse{Departments: model.Departments()})
	}
}
