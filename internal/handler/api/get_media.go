package api

import (
	"log"
	"net/http"

	"github.com/rbcastillo/collegeinfo-ms-go/internal/apictx"
	"github.com/rbcastillo/collegeinfo-ms-go/internal/port"
)

func GetMediaHandler(svc port.MediaResolver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		department, ok := apictx.DepartmentFromContext(r.Context())
		if !ok {
			WriteError(w, http.StatusBadRequest, "department is required", nil)
			return
		}
		slot, ok := apictx.SlotFromContext(r.Context())
		if !ok {
			WriteError(w, http.StatusBadRequest, "slot is required", nil)
			return
		}

		ref, err := svc.ResolveMedia(r.Context(), department, slot)
		if err != nil {
			WriteError(w, http.StatusInternalServerError, "could not resolve media", err)
			return
		}
		if ref == nil {
			WriteError(w, http.StatusNotFound, "no image for this placement", nil)
			return
		}

		RespondJSON(w, http.StatusOK, ref)
		log.Printf("✅  Successfully resolved media for %q/%q", department, slot)
	}
}
