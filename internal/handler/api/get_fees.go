package api

import (
	"log"
	"net/http"

	"github.com/rbcastillo/collegeinfo-ms-go/internal/apictx"
	"github.com/rbcastillo/collegeinfo-ms-go/internal/port"
)

func GetFeesHandler(svc port.FeeResolver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		department, ok := apictx.DepartmentFromContext(r.Context())
		if !ok {
			WriteError(w, http.StatusBadRequest, "department is required", nil)
			return
		}

		record, err := svc.ResolveFees(r.Context(), department)
		if err != nil {
			WriteError(w, http.StatusInternalServerError, "could not resolve fees", err)
			return
		}
		if record == nil {
			WriteError(w, http.StatusNotFound, "no fee schedule for this department", nil)
			return
		}

		RespondJSON(w, http.StatusOK, record)
		log.Printf("✅  Successfully resolved fees for %q", department)
	}
}
