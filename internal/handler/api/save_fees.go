package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/rbcastillo/collegeinfo-ms-go/internal/apictx"
	"github.com/rbcastillo/collegeinfo-ms-go/internal/model"
	"github.com/rbcastillo/collegeinfo-ms-go/internal/port"
	"github.com/rbcastillo/collegeinfo-ms-go/internal/usecase/media"
	"github.com/rbcastillo/collegeinfo-ms-go/internal/validation"
)

func SaveFeesHandler(svc port.FeeSaver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		department, ok := apictx.DepartmentFromContext(r.Context())
		if !ok {
			WriteError(w, http.StatusBadRequest, "department is required", nil)
			return
		}

		var record model.FeeRecord
		if err := json.NewDecoder(r.Body).Decode(&record); err != nil {
			WriteError(w, http.StatusBadRequest, "invalid request payload", err)
			return
		}

		if err := svc.SaveFees(r.Context(), department, record); err != nil {
			if errors.Is(err, media.ErrValidation) {
				var fieldErrs validator.ValidationErrors
				if errors.As(err, &fieldErrs) {
					errsJSON, jsonErr := validation.ErrorsToJson(fieldErrs)
					if jsonErr != nil {
						WriteError(w, http.StatusInternalServerError, "failed to encode validation errors", jsonErr)
						return
					}
					RespondRawJSON(w, http.StatusBadRequest, []byte(errsJSON))
					log.Printf("❌  Validation failed: %s", errsJSON)
					return
				}
				WriteError(w, http.StatusBadRequest, "invalid fee record", err)
				return
			}
			// the remote table is the system of record, a failed write there
			// means nothing was saved anywhere
			WriteError(w, http.StatusBadGateway, fmt.Sprintf("could not save fees for %q", department), err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
		log.Printf("✅  Successfully saved fees for %q", department)
	}
}
